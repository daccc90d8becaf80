package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	h *handler.InventoryHandler,
	authRequired fiber.Handler,
	requireSys func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	inv := api.Group("/inventory", authRequired)

	inv.Get("/questions", h.ListQuestions)
	inv.Post("/questions", requireSys(authorize.ResourceHollandQuestion, authorize.ActionCreate), h.CreateQuestion)

	inv.Get("/me", h.Get)
	inv.Post("/me/answers", h.RecordAnswer)
	inv.Post("/me/finalize", h.Finalize)
}
