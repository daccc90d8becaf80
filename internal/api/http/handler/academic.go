package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/service/academic"
)

type AcademicHandler struct {
	svc academic.Service
}

func NewAcademicHandler(svc academic.Service) *AcademicHandler {
	return &AcademicHandler{svc: svc}
}

func mapAcademicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, academic.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, academic.ErrLocked):
		return conflict(c, err.Error())
	case errors.Is(err, academic.ErrNoGrades):
		return badRequest(c, err.Error())
	case errors.Is(err, academic.ErrInvalidGrade):
		return badRequest(c, err.Error())
	case errors.Is(err, academic.ErrClassifierUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}

// GET /api/v1/academic/me
func (h *AcademicHandler) Get(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Get(c.Context(), userID)
	if err != nil {
		return mapAcademicError(c, err)
	}

	return ok(c, p)
}

// POST /api/v1/academic/me/grades
func (h *AcademicHandler) SubmitGrades(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Grades map[string]string `json:"grades"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.SubmitGrades(c.Context(), userID, body.Grades)
	if err != nil {
		return mapAcademicError(c, err)
	}

	return ok(c, p)
}
