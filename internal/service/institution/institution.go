package institution

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	entinst "github.com/orienta-pe/orienta_backend/internal/repo/institution"
	entgroup "github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name          string
	StudentLimit  int
	TutorLimit    int
	Description   string
	DirectorName  string
	DirectorEmail string
	Phone         string
	Address       string
	City          string
}

type UpdateRequest struct {
	Name          *string
	StudentLimit  *int
	TutorLimit    *int
	Description   *string
	DirectorName  *string
	DirectorEmail *string
	Phone         *string
	Address       *string
	City          *string
	IsActive      *bool
}

// Roster is the member listing for an institution dashboard.
type Roster struct {
	Students []*repo.User
	Tutors   []*repo.User
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Institution, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Institution, error)
	List(ctx context.Context, page, perPage int) ([]*repo.Institution, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Institution, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRoster(ctx context.Context, id uuid.UUID) (*Roster, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type institutionService struct {
	db  *repo.Client
	cfg *config.Config
}

func New(db *repo.Client, cfg *config.Config) Service {
	return &institutionService{db: db, cfg: cfg}
}

func (s *institutionService) Create(ctx context.Context, req CreateRequest) (*repo.Institution, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, ErrMissingField
	}
	if req.StudentLimit < 0 || req.TutorLimit < 0 {
		return nil, ErrInvalidLimit
	}

	code, err := s.uniqueJoinCode(ctx)
	if err != nil {
		return nil, err
	}

	inst, err := s.db.Institution.Create().
		SetName(req.Name).
		SetJoinCode(code).
		SetStudentLimit(req.StudentLimit).
		SetTutorLimit(req.TutorLimit).
		SetNillableDescription(nilIfEmpty(req.Description)).
		SetNillableDirectorName(nilIfEmpty(req.DirectorName)).
		SetNillableDirectorEmail(nilIfEmpty(req.DirectorEmail)).
		SetNillablePhone(nilIfEmpty(req.Phone)).
		SetNillableAddress(nilIfEmpty(req.Address)).
		SetNillableCity(nilIfEmpty(req.City)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create institution: %w", err)
	}
	return inst, nil
}

func (s *institutionService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Institution, error) {
	inst, err := s.db.Institution.Query().
		Where(entinst.ID(id), entinst.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get institution: %w", err)
	}
	return inst, nil
}

func (s *institutionService) List(ctx context.Context, page, perPage int) ([]*repo.Institution, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	insts, err := s.db.Institution.Query().
		Where(entinst.DeletedAtIsNil()).
		Order(entinst.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return insts, nil
}

func (s *institutionService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Institution, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentLimit != nil && *req.StudentLimit < 0 {
		return nil, ErrInvalidLimit
	}
	if req.TutorLimit != nil && *req.TutorLimit < 0 {
		return nil, ErrInvalidLimit
	}

	upd := s.db.Institution.UpdateOne(inst)
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		upd = upd.SetName(strings.TrimSpace(*req.Name))
	}
	if req.StudentLimit != nil {
		upd = upd.SetStudentLimit(*req.StudentLimit)
	}
	if req.TutorLimit != nil {
		upd = upd.SetTutorLimit(*req.TutorLimit)
	}
	if req.Description != nil {
		upd = upd.SetNillableDescription(nilIfEmpty(*req.Description))
	}
	if req.DirectorName != nil {
		upd = upd.SetNillableDirectorName(nilIfEmpty(*req.DirectorName))
	}
	if req.DirectorEmail != nil {
		upd = upd.SetNillableDirectorEmail(nilIfEmpty(*req.DirectorEmail))
	}
	if req.Phone != nil {
		upd = upd.SetNillablePhone(nilIfEmpty(*req.Phone))
	}
	if req.Address != nil {
		upd = upd.SetNillableAddress(nilIfEmpty(*req.Address))
	}
	if req.City != nil {
		upd = upd.SetNillableCity(nilIfEmpty(*req.City))
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	inst, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update institution: %w", err)
	}
	return inst, nil
}

func (s *institutionService) Delete(ctx context.Context, id uuid.UUID) error {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.db.Institution.UpdateOne(inst).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Exec(ctx)
}

func (s *institutionService) GetRoster(ctx context.Context, id uuid.UUID) (*Roster, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	students, err := s.db.User.Query().
		Where(
			entuser.InstitutionID(id),
			entuser.RoleEQ("student"),
			entuser.DeletedAtIsNil(),
		).
		Order(entuser.ByLastName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	tutors, err := s.db.User.Query().
		Where(
			entuser.InstitutionID(id),
			entuser.RoleEQ("tutor"),
			entuser.DeletedAtIsNil(),
		).
		Order(entuser.ByLastName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	return &Roster{Students: students, Tutors: tutors}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// uniqueJoinCode draws codes until one collides with neither institutions
// nor tutor groups, bounded by the configured attempt count.
func (s *institutionService) uniqueJoinCode(ctx context.Context) (string, error) {
	attempts := codes.FromCentralConfig(s.cfg.Codes).GetJoinCodeMaxAttempts()
	for i := 0; i < attempts; i++ {
		code, err := codes.GenerateJoinCode()
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		instTaken, err := s.db.Institution.Query().Where(entinst.JoinCode(code)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check institution code: %w", err)
		}
		groupTaken, err := s.db.TutorGroup.Query().Where(entgroup.JoinCode(code)).Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("check group code: %w", err)
		}
		if !instTaken && !groupTaken {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
