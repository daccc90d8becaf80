package tutorreq

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	entinst "github.com/orienta-pe/orienta_backend/internal/repo/institution"
	entgroup "github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
	entreq "github.com/orienta-pe/orienta_backend/internal/repo/tutorrequest"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/pkg/crypto"
	"github.com/orienta-pe/orienta_backend/pkg/notifier"
	"github.com/orienta-pe/orienta_backend/pkg/util/codes"
)

const (
	defaultStudentLimit = 5
	defaultTutorLimit   = 1
)

var reDNI = regexp.MustCompile(`^\d{8}$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	FirstName  string
	LastName   string
	DNI        string // raw digits, stored encrypted on the profile
	WorkArea   string
	Motivation string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit files a tutor onboarding request for the user. A rejected
	// request for the same applicant is reset to pending in place, so at
	// most one request row exists per email.
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*repo.TutorRequest, error)

	List(ctx context.Context, status string, page, perPage int) ([]*repo.TutorRequest, error)
	GetByID(ctx context.Context, requestID uuid.UUID) (*repo.TutorRequest, error)

	// Approve creates the tutor's group with a fresh unique join code and
	// promotes the requester's profile, all in one transaction. Outbound
	// notifications are sent best-effort after commit.
	Approve(ctx context.Context, requestID, adminID uuid.UUID) (*repo.TutorRequest, error)

	RejectWithReason(ctx context.Context, requestID, adminID uuid.UUID, reason string) (*repo.TutorRequest, error)

	// VerifyTutor confirms the two-factor check (profile DNI + group join
	// code) before granting tutor access. A mismatch on either factor
	// yields the same generic error.
	VerifyTutor(ctx context.Context, userID uuid.UUID, dni, code string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type tutorReqService struct {
	db       *repo.Client
	notifier *notifier.Client
	nc       *nats.Conn
	cfg      *config.Config
	encKey   []byte // AES-256 key for DNI encryption
}

func New(db *repo.Client, ntf *notifier.Client, nc *nats.Conn, cfg *config.Config) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("tutor request service: invalid encryption key: %w", err)
	}
	return &tutorReqService{db: db, notifier: ntf, nc: nc, cfg: cfg, encKey: encKey}, nil
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func (s *tutorReqService) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*repo.TutorRequest, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.DNI = strings.TrimSpace(req.DNI)
	req.WorkArea = strings.TrimSpace(req.WorkArea)

	if req.FirstName == "" || req.LastName == "" {
		return nil, ErrMissingField
	}
	if !reDNI.MatchString(req.DNI) {
		return nil, ErrInvalidDNI
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	dniHash := crypto.Hash(req.DNI)

	// At most one active (pending|approved) request per DNI or email.
	active, err := s.db.TutorRequest.Query().
		Where(
			entreq.StatusIn("pending", "approved"),
			entreq.Or(
				entreq.DniHash(dniHash),
				entreq.Email(u.Email),
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check active request: %w", err)
	}
	if active {
		return nil, ErrDuplicateRequest
	}

	// Store the applicant's DNI and work area on the profile.
	encDNI, err := crypto.Encrypt(s.encKey, req.DNI)
	if err != nil {
		return nil, fmt.Errorf("encrypt DNI: %w", err)
	}
	upd := s.db.User.UpdateOne(u).
		SetDniEncrypted(encDNI).
		SetDniHash(dniHash).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)
	if req.WorkArea != "" {
		upd = upd.SetWorkArea(req.WorkArea)
	}
	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	// Reuse a rejected request in place so reapplication keeps the history.
	rejected, err := s.db.TutorRequest.Query().
		Where(entreq.Email(u.Email), entreq.StatusEQ("rejected")).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check rejected request: %w", err)
	}
	if rejected != nil {
		r, uErr := s.db.TutorRequest.UpdateOne(rejected).
			SetFirstName(req.FirstName).
			SetLastName(req.LastName).
			SetDniHash(dniHash).
			SetNillableWorkArea(nilIfEmpty(req.WorkArea)).
			SetNillableMotivation(nilIfEmpty(req.Motivation)).
			SetStatus("pending").
			ClearRejectionReason().
			ClearDecidedAt().
			ClearDecidedBy().
			Save(ctx)
		if uErr != nil {
			return nil, fmt.Errorf("reopen rejected request: %w", uErr)
		}
		s.publish("orienta.tutor_request.submitted", r.ID)
		return r, nil
	}

	r, err := s.db.TutorRequest.Create().
		SetUserID(userID).
		SetEmail(u.Email).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetDniHash(dniHash).
		SetNillableWorkArea(nilIfEmpty(req.WorkArea)).
		SetNillableMotivation(nilIfEmpty(req.Motivation)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create tutor request: %w", err)
	}
	s.publish("orienta.tutor_request.submitted", r.ID)
	return r, nil
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func (s *tutorReqService) List(ctx context.Context, status string, page, perPage int) ([]*repo.TutorRequest, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := s.db.TutorRequest.Query()
	if status != "" {
		q = q.Where(entreq.StatusEQ(entreq.Status(status)))
	}

	reqs, err := q.
		Order(entreq.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutor requests: %w", err)
	}
	return reqs, nil
}

func (s *tutorReqService) GetByID(ctx context.Context, requestID uuid.UUID) (*repo.TutorRequest, error) {
	r, err := s.db.TutorRequest.Get(ctx, requestID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tutor request: %w", err)
	}
	return r, nil
}

// ---------------------------------------------------------------------------
// Approve
// ---------------------------------------------------------------------------

func (s *tutorReqService) Approve(ctx context.Context, requestID, adminID uuid.UUID) (*repo.TutorRequest, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	r, err := tx.TutorRequest.Get(ctx, requestID)
	if err != nil {
		if repo.IsNotFound(err) {
			err = ErrNotFound
			return nil, err
		}
		return nil, fmt.Errorf("get tutor request: %w", err)
	}
	if r.Status != "pending" {
		err = ErrNotPending
		return nil, err
	}

	code, err := s.uniqueJoinCode(ctx, tx)
	if err != nil {
		return nil, err
	}

	grp, err := tx.TutorGroup.Create().
		SetName(fmt.Sprintf("Grupo de %s %s", r.FirstName, r.LastName)).
		SetTutorID(r.UserID).
		SetJoinCode(code).
		SetStudentLimit(defaultStudentLimit).
		SetTutorLimit(defaultTutorLimit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create tutor group: %w", err)
	}

	if _, err = tx.User.UpdateOneID(r.UserID).
		SetRole("tutor").
		SetIsProfileComplete(true).
		SetTutorVerified(false).
		SetGroupID(grp.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("promote requester: %w", err)
	}

	now := time.Now()
	r, err = tx.TutorRequest.UpdateOne(r).
		SetStatus("approved").
		SetDecidedAt(now).
		SetDecidedBy(adminID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Three independent best-effort notifications; a failure here never
	// rolls back the approval.
	name := r.FirstName + " " + r.LastName
	if nErr := s.notifier.SendWelcome(ctx, r.Email, name); nErr != nil {
		slog.Warn("send welcome notification", "request_id", r.ID, "error", nErr)
	}
	if nErr := s.notifier.SendAccountApproved(ctx, r.Email, name); nErr != nil {
		slog.Warn("send approval notification", "request_id", r.ID, "error", nErr)
	}
	if director := s.cfg.Notifier.DirectorEmail; director != "" {
		if nErr := s.notifier.SendGroupAssignment(ctx, director, name, grp.JoinCode); nErr != nil {
			slog.Warn("send group assignment notification", "request_id", r.ID, "error", nErr)
		}
	}

	s.publish("orienta.tutor_request.approved", r.ID)
	return r, nil
}

// ---------------------------------------------------------------------------
// Reject
// ---------------------------------------------------------------------------

func (s *tutorReqService) RejectWithReason(ctx context.Context, requestID, adminID uuid.UUID, reason string) (*repo.TutorRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	r, err := s.db.TutorRequest.Get(ctx, requestID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tutor request: %w", err)
	}
	if r.Status != "pending" {
		return nil, ErrNotPending
	}

	now := time.Now()
	r, err = s.db.TutorRequest.UpdateOne(r).
		SetStatus("rejected").
		SetRejectionReason(reason).
		SetDecidedAt(now).
		SetDecidedBy(adminID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject request: %w", err)
	}

	name := r.FirstName + " " + r.LastName
	if nErr := s.notifier.SendAccountRejected(ctx, r.Email, name, reason); nErr != nil {
		slog.Warn("send rejection notification", "request_id", r.ID, "error", nErr)
	}

	s.publish("orienta.tutor_request.rejected", r.ID)
	return r, nil
}

// ---------------------------------------------------------------------------
// VerifyTutor
// ---------------------------------------------------------------------------

func (s *tutorReqService) VerifyTutor(ctx context.Context, userID uuid.UUID, dni, code string) error {
	dni = strings.TrimSpace(dni)
	code = codes.NormalizeCode(code)

	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrVerificationFailed
		}
		return fmt.Errorf("get user: %w", err)
	}

	grp, err := s.db.TutorGroup.Query().
		Where(entgroup.TutorID(userID), entgroup.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrVerificationFailed
		}
		return fmt.Errorf("get tutor group: %w", err)
	}

	// Both factors must match; the error never discloses which one failed.
	if u.DniHash == nil || crypto.Hash(dni) != *u.DniHash || code != grp.JoinCode {
		return ErrVerificationFailed
	}

	if _, err := s.db.User.UpdateOne(u).SetTutorVerified(true).Save(ctx); err != nil {
		return fmt.Errorf("mark tutor verified: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// uniqueJoinCode draws codes until one is free of collisions against both
// institutions and tutor groups, bounded by the configured attempt count.
func (s *tutorReqService) uniqueJoinCode(ctx context.Context, tx *repo.Tx) (string, error) {
	attempts := codes.FromCentralConfig(s.cfg.Codes).GetJoinCodeMaxAttempts()
	for i := 0; i < attempts; i++ {
		code, err := codes.GenerateJoinCode()
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		groupTaken, err := tx.TutorGroup.Query().Where(entgroup.JoinCode(code)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check group code: %w", err)
		}
		instTaken, err := tx.Institution.Query().Where(entinst.JoinCode(code)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check institution code: %w", err)
		}
		if !groupTaken && !instTaken {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

func (s *tutorReqService) publish(subject string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	_ = s.nc.Publish(fmt.Sprintf("%s.%s", subject, id.String()), []byte(id.String()))
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
