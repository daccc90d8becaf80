package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/api/http/middleware"
	"github.com/orienta-pe/orienta_backend/internal/service/forum"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
)

type ForumHandler struct {
	svc forum.Service
}

func NewForumHandler(svc forum.Service) *ForumHandler {
	return &ForumHandler{svc: svc}
}

func mapForumError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, forum.ErrPostNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, forum.ErrCommentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, forum.ErrUnauthorized):
		return forbidden(c)
	case errors.Is(err, forum.ErrNoAssociation):
		return forbidden(c)
	case errors.Is(err, forum.ErrMissingField):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// isAdminCaller reports whether the caller carries the platform admin role.
func isAdminCaller(c fiber.Ctx) bool {
	role, ok := middleware.RoleFromLocals(c)
	return ok && role == authorize.ProfileRoleAdmin
}

// POST /api/v1/forum/posts
func (h *ForumHandler) CreatePost(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.CreatePost(c.Context(), userID, forum.CreatePostRequest{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		return mapForumError(c, err)
	}

	return created(c, p)
}

// GET /api/v1/forum/posts
func (h *ForumHandler) ListPosts(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	posts, err := h.svc.ListPosts(c.Context(), userID, q.Page, q.PerPage)
	if err != nil {
		return mapForumError(c, err)
	}

	return ok(c, posts)
}

// GET /api/v1/forum/posts/:id
func (h *ForumHandler) GetPost(c fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	p, err := h.svc.GetPost(c.Context(), postID)
	if err != nil {
		return mapForumError(c, err)
	}

	return ok(c, p)
}

// DELETE /api/v1/forum/posts/:id
func (h *ForumHandler) DeletePost(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	if err := h.svc.DeletePost(c.Context(), postID, userID, isAdminCaller(c)); err != nil {
		return mapForumError(c, err)
	}

	return noContent(c)
}

// POST /api/v1/forum/posts/:id/comments
func (h *ForumHandler) AddComment(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cm, err := h.svc.AddComment(c.Context(), postID, userID, body.Content)
	if err != nil {
		return mapForumError(c, err)
	}

	return created(c, cm)
}

// GET /api/v1/forum/posts/:id/comments
func (h *ForumHandler) ListComments(c fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	comments, err := h.svc.ListComments(c.Context(), postID, q.Page, q.PerPage)
	if err != nil {
		return mapForumError(c, err)
	}

	return ok(c, comments)
}

// DELETE /api/v1/forum/posts/:id/comments/:comment_id
func (h *ForumHandler) DeleteComment(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid post id")
	}

	commentID, err := uuid.Parse(c.Params("comment_id"))
	if err != nil {
		return badRequest(c, "invalid comment id")
	}

	if err := h.svc.DeleteComment(c.Context(), postID, commentID, userID, isAdminCaller(c)); err != nil {
		return mapForumError(c, err)
	}

	return noContent(c)
}
