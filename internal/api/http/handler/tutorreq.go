package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/service/tutorreq"
)

type TutorRequestHandler struct {
	svc tutorreq.Service
}

func NewTutorRequestHandler(svc tutorreq.Service) *TutorRequestHandler {
	return &TutorRequestHandler{svc: svc}
}

func mapTutorRequestError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tutorreq.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, tutorreq.ErrMissingField):
		return badRequest(c, err.Error())
	case errors.Is(err, tutorreq.ErrInvalidDNI):
		return badRequest(c, err.Error())
	case errors.Is(err, tutorreq.ErrDuplicateRequest):
		return conflict(c, err.Error())
	case errors.Is(err, tutorreq.ErrNotPending):
		return conflict(c, err.Error())
	case errors.Is(err, tutorreq.ErrReasonRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, tutorreq.ErrVerificationFailed):
		return forbidden(c)
	case errors.Is(err, tutorreq.ErrCodeGeneration):
		return internalError(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/tutor-requests
func (h *TutorRequestHandler) Submit(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		DNI        string `json:"dni"`
		WorkArea   string `json:"work_area"`
		Motivation string `json:"motivation"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Submit(c.Context(), userID, tutorreq.SubmitRequest{
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		DNI:        body.DNI,
		WorkArea:   body.WorkArea,
		Motivation: body.Motivation,
	})
	if err != nil {
		return mapTutorRequestError(c, err)
	}

	return created(c, r)
}

// GET /api/v1/tutor-requests  (admin)
func (h *TutorRequestHandler) List(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	reqs, err := h.svc.List(c.Context(), q.Status, q.Page, q.PerPage)
	if err != nil {
		return mapTutorRequestError(c, err)
	}

	return ok(c, reqs)
}

// GET /api/v1/tutor-requests/:id  (admin)
func (h *TutorRequestHandler) Get(c fiber.Ctx) error {
	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	r, err := h.svc.GetByID(c.Context(), reqID)
	if err != nil {
		return mapTutorRequestError(c, err)
	}

	return ok(c, r)
}

// POST /api/v1/tutor-requests/:id/approve  (admin)
func (h *TutorRequestHandler) Approve(c fiber.Ctx) error {
	adminID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	r, err := h.svc.Approve(c.Context(), reqID, adminID)
	if err != nil {
		return mapTutorRequestError(c, err)
	}

	return ok(c, r)
}

// POST /api/v1/tutor-requests/:id/reject  (admin)
func (h *TutorRequestHandler) Reject(c fiber.Ctx) error {
	adminID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	reqID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid request id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.RejectWithReason(c.Context(), reqID, adminID, body.Reason)
	if err != nil {
		return mapTutorRequestError(c, err)
	}

	return ok(c, r)
}

// POST /api/v1/tutor-requests/verify
func (h *TutorRequestHandler) Verify(c fiber.Ctx) error {
	userID, valid := userIDFromClaims(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DNI  string `json:"dni"`
		Code string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DNI == "" || body.Code == "" {
		return badRequest(c, "dni and code are required")
	}

	if err := h.svc.VerifyTutor(c.Context(), userID, body.DNI, body.Code); err != nil {
		return mapTutorRequestError(c, err)
	}

	return ok(c, fiber.Map{"verified": true})
}
