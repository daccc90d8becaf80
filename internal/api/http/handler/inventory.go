package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/riasec"
	"github.com/orienta-pe/orienta_backend/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrUnknownQuestion):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrInvalidAnswer):
		return badRequest(c, err.Error())
	case errors.Is(err, inventory.ErrLocked):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrNotReady):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrClassifierUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, inventory.ErrEmptyBank):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrQuestionPositionTaken):
		return conflict(c, err.Error())
	case errors.Is(err, riasec.ErrInvalidSection):
		return badRequest(c, err.Error())
	case errors.Is(err, riasec.ErrInvalidCategory):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// snapshotResponse flattens the stored record plus derived status into the
// shape the dashboard polls.
func snapshotResponse(s *inventory.Snapshot) fiber.Map {
	return fiber.Map{
		"status":            s.Status,
		"answers":           s.Record.Answers,
		"progress_overall":  s.Record.ProgressOverall,
		"progress_sections": s.Record.ProgressSections,
		"result":            s.Record.Result,
		"results":           s.Record.Results,
		"completed_at":      s.Record.CompletedAt,
	}
}

// GET /api/v1/inventory/questions
func (h *InventoryHandler) ListQuestions(c fiber.Ctx) error {
	qs, err := h.svc.ListQuestions(c.Context())
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, qs)
}

// POST /api/v1/inventory/questions  (admin)
func (h *InventoryHandler) CreateQuestion(c fiber.Ctx) error {
	var body struct {
		Text     string `json:"text"`
		Section  string `json:"section"`
		Category string `json:"category"`
		Position int    `json:"position"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Text == "" {
		return badRequest(c, "text is required")
	}

	q, err := h.svc.CreateQuestion(c.Context(), inventory.CreateQuestionRequest{
		Text:     body.Text,
		Section:  body.Section,
		Category: body.Category,
		Position: body.Position,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, q)
}

// GET /api/v1/inventory/me
func (h *InventoryHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	snap, err := h.svc.Get(c.Context(), userID)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, snapshotResponse(snap))
}

// POST /api/v1/inventory/me/answers
func (h *InventoryHandler) RecordAnswer(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		QuestionID string `json:"question_id"`
		Answer     string `json:"answer"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.QuestionID == "" {
		return badRequest(c, "question_id is required")
	}

	snap, err := h.svc.RecordAnswer(c.Context(), userID, body.QuestionID, body.Answer)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, snapshotResponse(snap))
}

// POST /api/v1/inventory/me/finalize
func (h *InventoryHandler) Finalize(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	snap, err := h.svc.Finalize(c.Context(), userID)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, snapshotResponse(snap))
}
