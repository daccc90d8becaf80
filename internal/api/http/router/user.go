package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requireSys func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/me", h.GetMe)
	users.Post("/me/student-profile", h.CompleteStudentProfile)

	// Admin directory
	users.Get("/", requireSys(authorize.ResourceUser, authorize.ActionRead), h.List)
	users.Get("/:id", requireSys(authorize.ResourceUser, authorize.ActionRead), h.Get)
	users.Delete("/:id", requireSys(authorize.ResourceUser, authorize.ActionDelete), h.Remove)
}
