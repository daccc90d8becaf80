package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
)

func (r *Router) registerAcademicRoutes(api fiber.Router, h *handler.AcademicHandler, authRequired fiber.Handler) {
	group := api.Group("/academic", authRequired)
	group.Get("/me", h.Get)
	group.Post("/me/grades", h.SubmitGrades)
}
