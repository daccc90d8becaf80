package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

func (r *Router) registerForumRoutes(
	api fiber.Router,
	h *handler.ForumHandler,
	authRequired fiber.Handler,
	assocCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	posts := api.Group("/forum/posts", authRequired, assocCtx)

	posts.Get("/", requirePerm(authorize.ResourceForumPost, authorize.ActionRead), h.ListPosts)
	posts.Post("/", requirePerm(authorize.ResourceForumPost, authorize.ActionCreate), h.CreatePost)

	p := posts.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourceForumPost, authorize.ActionRead), h.GetPost)
	p.Delete("/", requirePerm(authorize.ResourceForumPost, authorize.ActionDelete), h.DeletePost)
	p.Get("/comments", requirePerm(authorize.ResourceForumComment, authorize.ActionRead), h.ListComments)
	p.Post("/comments", requirePerm(authorize.ResourceForumComment, authorize.ActionCreate), h.AddComment)
	p.Delete("/comments/:comment_id", requirePerm(authorize.ResourceForumComment, authorize.ActionDelete), h.DeleteComment)
}
