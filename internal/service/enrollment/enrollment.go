package enrollment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entinst "github.com/orienta-pe/orienta_backend/internal/repo/institution"
	entgroup "github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
	"github.com/orienta-pe/orienta_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Role is the membership role a join attempt counts against.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// Membership describes the association a user was linked to.
type Membership struct {
	InstitutionID *uuid.UUID
	GroupID       *uuid.UUID
	IsHero        bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// JoinByCode links a user to the institution or tutor group identified
	// by code, enforcing the capacity limit for roleHint. The capacity
	// count and the link write happen inside one transaction.
	JoinByCode(ctx context.Context, userID uuid.UUID, code string, roleHint Role) (*Membership, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type enrollmentService struct {
	db   *repo.Client
	nc   *nats.Conn
	auth authorize.IAuthorization
}

func New(db *repo.Client, nc *nats.Conn, auth authorize.IAuthorization) Service {
	return &enrollmentService{db: db, nc: nc, auth: auth}
}

func (s *enrollmentService) JoinByCode(ctx context.Context, userID uuid.UUID, code string, roleHint Role) (*Membership, error) {
	if roleHint != RoleStudent && roleHint != RoleTutor {
		return nil, ErrInvalidRoleHint
	}
	normalized := codes.NormalizeCode(code)
	if !codes.IsValidJoinCode(normalized) {
		return nil, ErrInvalidCode
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	u, err := tx.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			err = ErrUserNotFound
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u.InstitutionID != nil || u.GroupID != nil {
		err = ErrAlreadyLinked
		return nil, err
	}

	// Institution lookup wins over tutor groups on a code collision.
	inst, err := tx.Institution.Query().
		Where(entinst.JoinCode(normalized), entinst.DeletedAtIsNil(), entinst.IsActive(true)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("lookup institution: %w", err)
	}

	var m *Membership
	if inst != nil {
		m, err = s.linkToInstitution(ctx, tx, u, inst, roleHint)
	} else {
		var grp *repo.TutorGroup
		grp, err = tx.TutorGroup.Query().
			Where(entgroup.JoinCode(normalized), entgroup.DeletedAtIsNil(), entgroup.IsActive(true)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				err = ErrInvalidCode
				return nil, err
			}
			return nil, fmt.Errorf("lookup tutor group: %w", err)
		}
		m, err = s.linkToGroup(ctx, tx, u, grp, roleHint)
	}
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Assign the RBAC role in the matching domain (best-effort; grants can
	// be repaired).
	if s.auth != nil {
		rbacRole := authorize.RoleAssocStudent
		if roleHint == RoleTutor {
			rbacRole = authorize.RoleAssocTutor
		}
		var aErr error
		if m.InstitutionID != nil {
			aErr = authorize.AssignInstitutionRole(ctx, s.auth, userID.String(), m.InstitutionID.String(), rbacRole)
		} else if m.GroupID != nil {
			aErr = authorize.AssignGroupRole(ctx, s.auth, userID.String(), m.GroupID.String(), rbacRole)
		}
		if aErr != nil {
			slog.Warn("assign association role", "user_id", userID, "error", aErr)
		}
	}

	if s.nc != nil {
		_ = s.nc.Publish("orienta.enrollment.joined", []byte(userID.String()))
	}

	return m, nil
}

func (s *enrollmentService) linkToInstitution(ctx context.Context, tx *repo.Tx, u *repo.User, inst *repo.Institution, roleHint Role) (*Membership, error) {
	// Live count against the user table, inside the same transaction as
	// the link write, so concurrent joins cannot both pass the check.
	count, err := tx.User.Query().
		Where(
			entuser.InstitutionID(inst.ID),
			entuser.RoleEQ(entuser.Role(roleHint)),
			entuser.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count linked users: %w", err)
	}

	limit := inst.StudentLimit
	if roleHint == RoleTutor {
		limit = inst.TutorLimit
	}
	if count >= limit {
		return nil, ErrQuotaExceeded
	}

	upd := tx.User.UpdateOne(u).
		SetInstitutionID(inst.ID).
		SetRole(entuser.Role(roleHint))
	// Students linked to an institution get the hero entitlement.
	isHero := roleHint == RoleStudent
	if isHero {
		upd = upd.SetIsHero(true)
	}
	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("link user to institution: %w", err)
	}

	return &Membership{InstitutionID: &inst.ID, IsHero: isHero}, nil
}

func (s *enrollmentService) linkToGroup(ctx context.Context, tx *repo.Tx, u *repo.User, grp *repo.TutorGroup, roleHint Role) (*Membership, error) {
	count, err := tx.User.Query().
		Where(
			entuser.GroupID(grp.ID),
			entuser.RoleEQ(entuser.Role(roleHint)),
			entuser.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count linked users: %w", err)
	}

	limit := grp.StudentLimit
	if roleHint == RoleTutor {
		limit = grp.TutorLimit
	}
	if count >= limit {
		return nil, ErrQuotaExceeded
	}

	if _, err := tx.User.UpdateOne(u).
		SetGroupID(grp.ID).
		SetRole(entuser.Role(roleHint)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("link user to tutor group: %w", err)
	}

	return &Membership{GroupID: &grp.ID}, nil
}
