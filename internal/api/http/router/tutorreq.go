package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerTutorRequestRoutes(
	api fiber.Router,
	h *handler.TutorRequestHandler,
	authRequired fiber.Handler,
	requireSys func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	reqs := api.Group("/tutor-requests", authRequired)

	reqs.Post("/", h.Submit)
	reqs.Post("/verify", h.Verify)

	// Admin review queue
	reqs.Get("/", requireSys(authorize.ResourceTutorRequest, authorize.ActionRead), h.List)
	reqs.Get("/:id", requireSys(authorize.ResourceTutorRequest, authorize.ActionRead), h.Get)
	reqs.Post("/:id/approve", requireSys(authorize.ResourceTutorRequest, authorize.ActionApprove), h.Approve)
	reqs.Post("/:id/reject", requireSys(authorize.ResourceTutorRequest, authorize.ActionReject), h.Reject)
}
