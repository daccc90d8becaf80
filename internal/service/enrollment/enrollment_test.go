package enrollment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	"github.com/orienta-pe/orienta_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func createUser(t *testing.T, client *repo.Client, email string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createInstitution(t *testing.T, client *repo.Client, code string, studentLimit, tutorLimit int) *repo.Institution {
	t.Helper()
	inst, err := client.Institution.Create().
		SetName("Colegio San Martín").
		SetJoinCode(code).
		SetStudentLimit(studentLimit).
		SetTutorLimit(tutorLimit).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create institution: %v", err)
	}
	return inst
}

func createGroup(t *testing.T, client *repo.Client, code string, tutor *repo.User, studentLimit int) *repo.TutorGroup {
	t.Helper()
	grp, err := client.TutorGroup.Create().
		SetName("Grupo de Rosa Quispe").
		SetTutorID(tutor.ID).
		SetJoinCode(code).
		SetStudentLimit(studentLimit).
		SetTutorLimit(1).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create tutor group: %v", err)
	}
	return grp
}

func TestJoinByCodeInstitutionStudent(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "ABC123", 10, 2)
	u := createUser(t, client, "alumno@example.com")

	// Lowercase with whitespace exercises input normalization.
	m, err := svc.JoinByCode(ctx, u.ID, "  abc123 ", RoleStudent)
	if err != nil {
		t.Fatalf("JoinByCode: %v", err)
	}
	if m.InstitutionID == nil || *m.InstitutionID != inst.ID {
		t.Errorf("expected membership in institution %s, got %v", inst.ID, m.InstitutionID)
	}
	if m.GroupID != nil {
		t.Errorf("expected no group membership, got %v", m.GroupID)
	}
	if !m.IsHero {
		t.Error("institution students should receive the hero entitlement")
	}

	u, err = client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u.InstitutionID == nil || *u.InstitutionID != inst.ID {
		t.Error("user row was not linked to the institution")
	}
	if u.Role == nil || string(*u.Role) != "student" {
		t.Errorf("expected role student, got %v", u.Role)
	}
	if !u.IsHero {
		t.Error("user row should carry is_hero=true")
	}
}

func TestJoinByCodeQuotaBoundary(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	createInstitution(t, client, "QQQ111", 2, 1)

	for i := 0; i < 2; i++ {
		u := createUser(t, client, fmt.Sprintf("alumno%d@example.com", i))
		if _, err := svc.JoinByCode(ctx, u.ID, "QQQ111", RoleStudent); err != nil {
			t.Fatalf("join %d under the limit: %v", i, err)
		}
	}

	// Third student hits the limit.
	u := createUser(t, client, "alumno2@example.com")
	if _, err := svc.JoinByCode(ctx, u.ID, "QQQ111", RoleStudent); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}

	// The tutor limit is counted separately, so a tutor can still join.
	tut := createUser(t, client, "tutor@example.com")
	if _, err := svc.JoinByCode(ctx, tut.ID, "QQQ111", RoleTutor); err != nil {
		t.Errorf("tutor join should not count against the student limit: %v", err)
	}
}

func TestJoinByCodeTutorGroup(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	owner := createUser(t, client, "duena@example.com")
	grp := createGroup(t, client, "GGG222", owner, 1)

	u := createUser(t, client, "alumno@example.com")
	m, err := svc.JoinByCode(ctx, u.ID, "GGG222", RoleStudent)
	if err != nil {
		t.Fatalf("JoinByCode: %v", err)
	}
	if m.GroupID == nil || *m.GroupID != grp.ID {
		t.Errorf("expected membership in group %s, got %v", grp.ID, m.GroupID)
	}
	if m.IsHero {
		t.Error("group students do not receive the hero entitlement")
	}

	// Group is full now.
	other := createUser(t, client, "alumno2@example.com")
	if _, err := svc.JoinByCode(ctx, other.ID, "GGG222", RoleStudent); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestJoinByCodeInstitutionWinsCollision(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "SAME01", 5, 2)
	owner := createUser(t, client, "duena@example.com")
	createGroup(t, client, "SAME01", owner, 5)

	u := createUser(t, client, "alumno@example.com")
	m, err := svc.JoinByCode(ctx, u.ID, "SAME01", RoleStudent)
	if err != nil {
		t.Fatalf("JoinByCode: %v", err)
	}
	if m.InstitutionID == nil || *m.InstitutionID != inst.ID {
		t.Error("institution should take precedence when a code matches both")
	}
	if m.GroupID != nil {
		t.Error("expected no group membership on a collision")
	}
}

func TestJoinByCodeInvalidCode(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	u := createUser(t, client, "alumno@example.com")

	tests := []struct {
		name string
		code string
	}{
		{"too short", "AB1"},
		{"bad characters", "AB-12!"},
		{"unknown code", "ZZZZ99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.JoinByCode(ctx, u.ID, tt.code, RoleStudent); !errors.Is(err, ErrInvalidCode) {
				t.Errorf("expected ErrInvalidCode, got %v", err)
			}
		})
	}
}

func TestJoinByCodeInactiveInstitution(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	inst := createInstitution(t, client, "OFF000", 5, 2)
	if _, err := client.Institution.UpdateOne(inst).SetIsActive(false).Save(ctx); err != nil {
		t.Fatalf("deactivate institution: %v", err)
	}

	u := createUser(t, client, "alumno@example.com")
	if _, err := svc.JoinByCode(ctx, u.ID, "OFF000", RoleStudent); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode for inactive institution, got %v", err)
	}
}

func TestJoinByCodeAlreadyLinked(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	createInstitution(t, client, "AAA111", 5, 2)
	createInstitution(t, client, "BBB222", 5, 2)

	u := createUser(t, client, "alumno@example.com")
	if _, err := svc.JoinByCode(ctx, u.ID, "AAA111", RoleStudent); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, u.ID, "BBB222", RoleStudent); !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("expected ErrAlreadyLinked, got %v", err)
	}
}

func TestJoinByCodeInvalidRoleHint(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	u := createUser(t, client, "alumno@example.com")
	if _, err := svc.JoinByCode(ctx, u.ID, "AAA111", Role("admin")); !errors.Is(err, ErrInvalidRoleHint) {
		t.Errorf("expected ErrInvalidRoleHint, got %v", err)
	}
}

func TestJoinByCodeUserNotFound(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil, nil)
	ctx := context.Background()

	createInstitution(t, client, "CCC333", 5, 2)

	ghost := createUser(t, client, "fantasma@example.com")
	if err := client.User.DeleteOne(ghost).Exec(ctx); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, ghost.ID, "CCC333", RoleStudent); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
