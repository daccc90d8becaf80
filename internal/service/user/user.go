package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
	"github.com/orienta-pe/orienta_backend/pkg/crypto"
)

var reDNI = regexp.MustCompile(`^\d{8}$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CompleteStudentProfileRequest carries the student profile-completion form.
// The organizational link itself goes through the enrollment service; this
// form records the personal detail.
type CompleteStudentProfileRequest struct {
	FirstName    string
	LastName     string
	DNI          string
	Grade        string
	ClassSection string
}

type ListRequest struct {
	Role          string // student | tutor | admin | "" for all
	InstitutionID *uuid.UUID
	GroupID       *uuid.UUID
	Page          int
	PerPage       int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id string) (*repo.User, error)

	// CompleteStudentProfile stores the student detail and marks the
	// profile complete. The role flips to student here if still unset.
	CompleteStudentProfile(ctx context.Context, userID uuid.UUID, req CompleteStudentProfileRequest) (*repo.User, error)

	// List is the admin user directory, filterable by role and association.
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)

	// Remove soft-deletes a user and drops their RBAC grants. This is the
	// only delete path; nothing is hard-deleted.
	Remove(ctx context.Context, adminID, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type UserService struct {
	client    *repo.Client
	cfg       *config.Config
	authorize authorize.IAuthorization
	encKey    []byte
}

func New(client *repo.Client, cfg *config.Config, authz authorize.IAuthorization) (*UserService, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("user service: invalid encryption key: %w", err)
	}
	return &UserService{
		client:    client,
		cfg:       cfg,
		authorize: authz,
		encKey:    encKey,
	}, nil
}

// GetByID retrieves a user by ID, excluding soft-deleted users
func (s *UserService) GetByID(ctx context.Context, id string) (*repo.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.client.User.Query().
		Where(
			entuser.ID(uid),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *UserService) CompleteStudentProfile(ctx context.Context, userID uuid.UUID, req CompleteStudentProfileRequest) (*repo.User, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.DNI = strings.TrimSpace(req.DNI)
	req.Grade = strings.TrimSpace(req.Grade)
	req.ClassSection = strings.TrimSpace(req.ClassSection)

	if req.FirstName == "" || req.LastName == "" || req.Grade == "" {
		return nil, ErrMissingField
	}
	if req.DNI != "" && !reDNI.MatchString(req.DNI) {
		return nil, ErrInvalidDNI
	}

	u, err := s.client.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.Role != nil && *u.Role == "tutor" {
		return nil, ErrRoleAlreadySet
	}

	upd := s.client.User.UpdateOne(u).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetGrade(req.Grade).
		SetIsProfileComplete(true).
		SetRole("student")
	if req.ClassSection != "" {
		upd = upd.SetClassSection(req.ClassSection)
	}
	if req.DNI != "" {
		enc, encErr := crypto.Encrypt(s.encKey, req.DNI)
		if encErr != nil {
			return nil, fmt.Errorf("encrypt DNI: %w", encErr)
		}
		upd = upd.SetDniEncrypted(enc).SetDniHash(crypto.Hash(req.DNI))
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete profile: %w", err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.client.User.Query().Where(entuser.DeletedAtIsNil())
	if req.Role != "" {
		q = q.Where(entuser.RoleEQ(entuser.Role(req.Role)))
	}
	if req.InstitutionID != nil {
		q = q.Where(entuser.InstitutionID(*req.InstitutionID))
	}
	if req.GroupID != nil {
		q = q.Where(entuser.GroupID(*req.GroupID))
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Remove(ctx context.Context, adminID, userID uuid.UUID) error {
	if adminID == userID {
		return ErrCannotRemoveSelf
	}

	u, err := s.client.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}

	if err := s.client.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		ClearInstitutionID().
		ClearGroupID().
		Exec(ctx); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}

	// Drop RBAC grants (best-effort; grants can be repaired)
	if s.authorize != nil {
		_ = authorize.RemoveAllRoles(ctx, s.authorize, userID.String())
	}
	return nil
}
