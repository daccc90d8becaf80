package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerChatRoutes(
	api fiber.Router,
	h *handler.ChatHandler,
	authRequired fiber.Handler,
	assocCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	convs := api.Group("/conversations", authRequired, assocCtx)

	convs.Get("/", requirePerm(authorize.ResourceConversation, authorize.ActionRead), h.List)
	convs.Post("/", requirePerm(authorize.ResourceConversation, authorize.ActionCreate), h.Create)

	c := convs.Group("/:id")
	c.Get("/", requirePerm(authorize.ResourceConversation, authorize.ActionRead), h.Get)
	c.Get("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionRead), h.ListMessages)
	c.Post("/messages", requirePerm(authorize.ResourceMessage, authorize.ActionCreate), h.SendMessage)
	c.Post("/read", requirePerm(authorize.ResourceMessage, authorize.ActionRead), h.MarkRead)
	c.Delete("/messages/:msg_id", requirePerm(authorize.ResourceMessage, authorize.ActionDelete), h.DeleteMessage)
}
