package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerInstitutionRoutes(
	api fiber.Router,
	h *handler.InstitutionHandler,
	authRequired fiber.Handler,
	assocCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSys func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	insts := api.Group("/institutions", authRequired)

	// Platform admin CRUD
	insts.Post("/", requireSys(authorize.ResourceInstitution, authorize.ActionCreate), h.Create)
	insts.Get("/", requireSys(authorize.ResourceInstitution, authorize.ActionRead), h.List)
	insts.Patch("/:id", requireSys(authorize.ResourceInstitution, authorize.ActionUpdate), h.Update)
	insts.Delete("/:id", requireSys(authorize.ResourceInstitution, authorize.ActionDelete), h.Delete)

	// Members see their own institution; the roster is tutor/admin territory
	insts.Get("/:id", assocCtx, requirePerm(authorize.ResourceInstitution, authorize.ActionRead), h.Get)
	insts.Get("/:id/roster", assocCtx, requirePerm(authorize.ResourceRoster, authorize.ActionRead), h.GetRoster)
}
