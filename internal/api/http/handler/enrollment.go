package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/service/enrollment"
)

type EnrollmentHandler struct {
	svc enrollment.Service
}

func NewEnrollmentHandler(svc enrollment.Service) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

func mapEnrollmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, enrollment.ErrInvalidCode):
		return notFound(c, err.Error())
	case errors.Is(err, enrollment.ErrQuotaExceeded):
		return conflict(c, err.Error())
	case errors.Is(err, enrollment.ErrAlreadyLinked):
		return conflict(c, err.Error())
	case errors.Is(err, enrollment.ErrInvalidRoleHint):
		return badRequest(c, err.Error())
	case errors.Is(err, enrollment.ErrUserNotFound):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/enrollment/join
func (h *EnrollmentHandler) Join(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Code string `json:"code"`
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Code == "" {
		return badRequest(c, "code is required")
	}

	m, err := h.svc.JoinByCode(c.Context(), userID, body.Code, enrollment.Role(body.Role))
	if err != nil {
		return mapEnrollmentError(c, err)
	}

	return ok(c, fiber.Map{
		"institution_id": m.InstitutionID,
		"group_id":       m.GroupID,
		"is_hero":        m.IsHero,
	})
}
