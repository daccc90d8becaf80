package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/service/user"
	pasetotoken "github.com/orienta-pe/orienta_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func userIDFromClaims(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrMissingField):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidDNI):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrProfileComplete):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrRoleAlreadySet):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrCannotRemoveSelf):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), userID.String())
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// POST /api/v1/users/me/student-profile
func (h *UserHandler) CompleteStudentProfile(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		DNI          string `json:"dni"`
		Grade        string `json:"grade"`
		ClassSection string `json:"class_section"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.CompleteStudentProfile(c.Context(), userID, user.CompleteStudentProfileRequest{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		DNI:          body.DNI,
		Grade:        body.Grade,
		ClassSection: body.ClassSection,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// GET /api/v1/users  (admin)
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Role          string `query:"role"`
		InstitutionID string `query:"institution_id"`
		GroupID       string `query:"group_id"`
		Page          int    `query:"page"`
		PerPage       int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{
		Role:    q.Role,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.InstitutionID != "" {
		id, err := uuid.Parse(q.InstitutionID)
		if err != nil {
			return badRequest(c, "invalid institution_id")
		}
		req.InstitutionID = &id
	}
	if q.GroupID != "" {
		id, err := uuid.Parse(q.GroupID)
		if err != nil {
			return badRequest(c, "invalid group_id")
		}
		req.GroupID = &id
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, users)
}

// GET /api/v1/users/:id  (admin)
func (h *UserHandler) Get(c fiber.Ctx) error {
	u, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// DELETE /api/v1/users/:id  (admin)
func (h *UserHandler) Remove(c fiber.Ctx) error {
	adminID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Remove(c.Context(), adminID, targetID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
