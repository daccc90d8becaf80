package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
)

func (r *Router) registerEnrollmentRoutes(api fiber.Router, h *handler.EnrollmentHandler, authRequired fiber.Handler) {
	group := api.Group("/enrollment", authRequired)
	group.Post("/join", h.Join)
}
