package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/service/chat"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrUnauthorized):
		return forbidden(c)
	case errors.Is(err, chat.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, chat.ErrMessageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrSameUser):
		return badRequest(c, err.Error())
	case errors.Is(err, chat.ErrDifferentAssoc):
		return forbidden(c)
	case errors.Is(err, chat.ErrNoAssociation):
		return forbidden(c)
	case errors.Is(err, chat.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/conversations
func (h *ChatHandler) List(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	convs, err := h.svc.List(c.Context(), userID, q.Page, q.PerPage)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, convs)
}

// POST /api/v1/conversations
func (h *ChatHandler) Create(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ParticipantID string `json:"participant_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	otherID, err := uuid.Parse(body.ParticipantID)
	if err != nil {
		return badRequest(c, "invalid participant_id")
	}

	conv, err := h.svc.Create(c.Context(), userID, otherID)
	if err != nil {
		return mapChatError(c, err)
	}

	return created(c, conv)
}

// GET /api/v1/conversations/:id
func (h *ChatHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	conv, err := h.svc.GetByID(c.Context(), convID, userID)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, conv)
}

// GET /api/v1/conversations/:id/messages
func (h *ChatHandler) ListMessages(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.ListMessages(c.Context(), convID, userID, chat.ListMessagesRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, msgs)
}

// POST /api/v1/conversations/:id/messages
func (h *ChatHandler) SendMessage(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Context(), convID, userID, body.Content)
	if err != nil {
		return mapChatError(c, err)
	}

	return created(c, msg)
}

// POST /api/v1/conversations/:id/read
func (h *ChatHandler) MarkRead(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	if err := h.svc.MarkRead(c.Context(), convID, userID); err != nil {
		return mapChatError(c, err)
	}

	return noContent(c)
}

// DELETE /api/v1/conversations/:id/messages/:msg_id
func (h *ChatHandler) DeleteMessage(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	convID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid conversation id")
	}

	msgID, err := uuid.Parse(c.Params("msg_id"))
	if err != nil {
		return badRequest(c, "invalid message id")
	}

	if err := h.svc.DeleteMessage(c.Context(), convID, msgID, userID); err != nil {
		return mapChatError(c, err)
	}

	return noContent(c)
}
