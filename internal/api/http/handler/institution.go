package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/service/institution"
)

type InstitutionHandler struct {
	svc institution.Service
}

func NewInstitutionHandler(svc institution.Service) *InstitutionHandler {
	return &InstitutionHandler{svc: svc}
}

func mapInstitutionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, institution.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, institution.ErrMissingField):
		return badRequest(c, err.Error())
	case errors.Is(err, institution.ErrInvalidLimit):
		return badRequest(c, err.Error())
	case errors.Is(err, institution.ErrCodeGeneration):
		return internalError(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/institutions  (admin)
func (h *InstitutionHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name          string `json:"name"`
		StudentLimit  int    `json:"student_limit"`
		TutorLimit    int    `json:"tutor_limit"`
		Description   string `json:"description"`
		DirectorName  string `json:"director_name"`
		DirectorEmail string `json:"director_email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		City          string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inst, err := h.svc.Create(c.Context(), institution.CreateRequest{
		Name:          body.Name,
		StudentLimit:  body.StudentLimit,
		TutorLimit:    body.TutorLimit,
		Description:   body.Description,
		DirectorName:  body.DirectorName,
		DirectorEmail: body.DirectorEmail,
		Phone:         body.Phone,
		Address:       body.Address,
		City:          body.City,
	})
	if err != nil {
		return mapInstitutionError(c, err)
	}

	return created(c, inst)
}

// GET /api/v1/institutions  (admin)
func (h *InstitutionHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	insts, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapInstitutionError(c, err)
	}

	return ok(c, insts)
}

// GET /api/v1/institutions/:id
func (h *InstitutionHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid institution id")
	}

	inst, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapInstitutionError(c, err)
	}

	return ok(c, inst)
}

// PATCH /api/v1/institutions/:id  (admin)
func (h *InstitutionHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid institution id")
	}

	var body struct {
		Name          *string `json:"name"`
		StudentLimit  *int    `json:"student_limit"`
		TutorLimit    *int    `json:"tutor_limit"`
		Description   *string `json:"description"`
		DirectorName  *string `json:"director_name"`
		DirectorEmail *string `json:"director_email"`
		Phone         *string `json:"phone"`
		Address       *string `json:"address"`
		City          *string `json:"city"`
		IsActive      *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	inst, err := h.svc.Update(c.Context(), id, institution.UpdateRequest{
		Name:          body.Name,
		StudentLimit:  body.StudentLimit,
		TutorLimit:    body.TutorLimit,
		Description:   body.Description,
		DirectorName:  body.DirectorName,
		DirectorEmail: body.DirectorEmail,
		Phone:         body.Phone,
		Address:       body.Address,
		City:          body.City,
		IsActive:      body.IsActive,
	})
	if err != nil {
		return mapInstitutionError(c, err)
	}

	return ok(c, inst)
}

// DELETE /api/v1/institutions/:id  (admin)
func (h *InstitutionHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid institution id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapInstitutionError(c, err)
	}

	return noContent(c)
}

// GET /api/v1/institutions/:id/roster
func (h *InstitutionHandler) GetRoster(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid institution id")
	}

	roster, err := h.svc.GetRoster(c.Context(), id)
	if err != nil {
		return mapInstitutionError(c, err)
	}

	return ok(c, fiber.Map{
		"students": roster.Students,
		"tutors":   roster.Tutors,
	})
}
