package tutorreq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	"github.com/orienta-pe/orienta_backend/internal/repo/enttest"
	"github.com/orienta-pe/orienta_backend/pkg/notifier"
	"github.com/orienta-pe/orienta_backend/pkg/util/codes"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(t *testing.T, client *repo.Client) Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.Authentication.EncryptionKey = strings.Repeat("ab", 32)
	cfg.Notifier = config.NotifierConfig{Enabled: false}

	svc, err := New(client, notifier.New(cfg.Notifier), nil, cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
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

func validSubmit() SubmitRequest {
	return SubmitRequest{
		FirstName:  "Rosa",
		LastName:   "Quispe",
		DNI:        "12345678",
		WorkArea:   "Orientación vocacional",
		Motivation: "Quiero acompañar a mis estudiantes",
	}
}

func TestSubmit(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")

	r, err := svc.Submit(ctx, u.ID, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if string(r.Status) != "pending" {
		t.Errorf("expected status pending, got %s", r.Status)
	}
	if r.Email != u.Email {
		t.Errorf("expected request email %q, got %q", u.Email, r.Email)
	}

	// The plaintext DNI never reaches the database.
	u, err = client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u.DniHash == nil || *u.DniHash == "" {
		t.Error("expected dni_hash to be stored on the profile")
	}
	if u.DniEncrypted == nil || *u.DniEncrypted == "12345678" {
		t.Error("expected the DNI to be stored encrypted")
	}
	if r.DniHash == "12345678" {
		t.Error("request row stores the raw DNI")
	}
}

func TestSubmitValidation(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")

	t.Run("missing name", func(t *testing.T) {
		req := validSubmit()
		req.FirstName = "  "
		if _, err := svc.Submit(ctx, u.ID, req); !errors.Is(err, ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("short DNI", func(t *testing.T) {
		req := validSubmit()
		req.DNI = "1234"
		if _, err := svc.Submit(ctx, u.ID, req); !errors.Is(err, ErrInvalidDNI) {
			t.Errorf("expected ErrInvalidDNI, got %v", err)
		}
	})

	t.Run("non-numeric DNI", func(t *testing.T) {
		req := validSubmit()
		req.DNI = "1234567a"
		if _, err := svc.Submit(ctx, u.ID, req); !errors.Is(err, ErrInvalidDNI) {
			t.Errorf("expected ErrInvalidDNI, got %v", err)
		}
	})
}

func TestSubmitDuplicate(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")
	if _, err := svc.Submit(ctx, u.ID, validSubmit()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	t.Run("same applicant", func(t *testing.T) {
		if _, err := svc.Submit(ctx, u.ID, validSubmit()); !errors.Is(err, ErrDuplicateRequest) {
			t.Errorf("expected ErrDuplicateRequest, got %v", err)
		}
	})

	t.Run("same DNI from another account", func(t *testing.T) {
		other := createUser(t, client, "otra@example.com")
		if _, err := svc.Submit(ctx, other.ID, validSubmit()); !errors.Is(err, ErrDuplicateRequest) {
			t.Errorf("expected ErrDuplicateRequest, got %v", err)
		}
	})
}

func TestSubmitReopensRejected(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")
	admin := createUser(t, client, "admin@example.com")

	first, err := svc.Submit(ctx, u.ID, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.RejectWithReason(ctx, first.ID, admin.ID, "falta experiencia"); err != nil {
		t.Fatalf("RejectWithReason: %v", err)
	}

	req := validSubmit()
	req.Motivation = "Segundo intento"
	second, err := svc.Submit(ctx, u.ID, req)
	if err != nil {
		t.Fatalf("resubmit after rejection: %v", err)
	}
	if second.ID != first.ID {
		t.Error("reapplication should reuse the rejected row in place")
	}
	if string(second.Status) != "pending" {
		t.Errorf("expected status pending, got %s", second.Status)
	}
	if second.RejectionReason != nil {
		t.Errorf("expected rejection reason cleared, got %v", *second.RejectionReason)
	}
	if second.Motivation == nil || *second.Motivation != "Segundo intento" {
		t.Errorf("expected motivation updated, got %v", second.Motivation)
	}
}

func TestApprove(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")
	admin := createUser(t, client, "admin@example.com")

	r, err := svc.Submit(ctx, u.ID, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	r, err = svc.Approve(ctx, r.ID, admin.ID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if string(r.Status) != "approved" {
		t.Errorf("expected status approved, got %s", r.Status)
	}
	if r.DecidedBy == nil || *r.DecidedBy != admin.ID {
		t.Error("expected decided_by to record the approving admin")
	}

	// Approval creates the tutor's group with a well-formed join code.
	grp, err := client.TutorGroup.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load tutor group: %v", err)
	}
	if grp.TutorID != u.ID {
		t.Error("group is not owned by the approved tutor")
	}
	if !codes.IsValidJoinCode(grp.JoinCode) {
		t.Errorf("group join code %q has the wrong shape", grp.JoinCode)
	}

	// The requester's profile is promoted in the same transaction.
	u, err = client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u.Role == nil || string(*u.Role) != "tutor" {
		t.Errorf("expected role tutor, got %v", u.Role)
	}
	if u.GroupID == nil || *u.GroupID != grp.ID {
		t.Error("expected the tutor to be linked to the new group")
	}
	if u.TutorVerified {
		t.Error("tutor starts unverified until the two-factor check passes")
	}

	t.Run("second approve fails", func(t *testing.T) {
		if _, err := svc.Approve(ctx, r.ID, admin.ID); !errors.Is(err, ErrNotPending) {
			t.Errorf("expected ErrNotPending, got %v", err)
		}
	})
}

func TestRejectWithReason(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")
	admin := createUser(t, client, "admin@example.com")

	r, err := svc.Submit(ctx, u.ID, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	t.Run("reason is mandatory", func(t *testing.T) {
		if _, err := svc.RejectWithReason(ctx, r.ID, admin.ID, "   "); !errors.Is(err, ErrReasonRequired) {
			t.Errorf("expected ErrReasonRequired, got %v", err)
		}
	})

	t.Run("rejects with reason", func(t *testing.T) {
		r, err := svc.RejectWithReason(ctx, r.ID, admin.ID, "falta experiencia")
		if err != nil {
			t.Fatalf("RejectWithReason: %v", err)
		}
		if string(r.Status) != "rejected" {
			t.Errorf("expected status rejected, got %s", r.Status)
		}
		if r.RejectionReason == nil || *r.RejectionReason != "falta experiencia" {
			t.Errorf("expected the reason stored, got %v", r.RejectionReason)
		}
	})

	t.Run("cannot reject a decided request", func(t *testing.T) {
		if _, err := svc.RejectWithReason(ctx, r.ID, admin.ID, "otra razón"); !errors.Is(err, ErrNotPending) {
			t.Errorf("expected ErrNotPending, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		if _, err := svc.RejectWithReason(ctx, uuid.New(), admin.ID, "razón"); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestVerifyTutor(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	u := createUser(t, client, "rosa@example.com")
	admin := createUser(t, client, "admin@example.com")

	r, err := svc.Submit(ctx, u.ID, validSubmit())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := svc.Approve(ctx, r.ID, admin.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	grp, err := client.TutorGroup.Query().Only(ctx)
	if err != nil {
		t.Fatalf("load tutor group: %v", err)
	}

	t.Run("wrong DNI", func(t *testing.T) {
		if err := svc.VerifyTutor(ctx, u.ID, "87654321", grp.JoinCode); !errors.Is(err, ErrVerificationFailed) {
			t.Errorf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("wrong code", func(t *testing.T) {
		if err := svc.VerifyTutor(ctx, u.ID, "12345678", "ZZZZ99"); !errors.Is(err, ErrVerificationFailed) {
			t.Errorf("expected ErrVerificationFailed, got %v", err)
		}
	})

	t.Run("both factors match", func(t *testing.T) {
		// Lowercase code exercises normalization.
		if err := svc.VerifyTutor(ctx, u.ID, "12345678", strings.ToLower(grp.JoinCode)); err != nil {
			t.Fatalf("VerifyTutor: %v", err)
		}
		u, err := client.User.Get(ctx, u.ID)
		if err != nil {
			t.Fatalf("reload user: %v", err)
		}
		if !u.TutorVerified {
			t.Error("expected tutor_verified=true after verification")
		}
	})
}

func TestListFiltersByStatus(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()

	admin := createUser(t, client, "admin@example.com")
	for i := 0; i < 3; i++ {
		u := createUser(t, client, fmt.Sprintf("tutor%d@example.com", i))
		req := validSubmit()
		req.DNI = fmt.Sprintf("1000000%d", i)
		r, err := svc.Submit(ctx, u.ID, req)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if i == 0 {
			if _, err := svc.RejectWithReason(ctx, r.ID, admin.ID, "falta experiencia"); err != nil {
				t.Fatalf("RejectWithReason: %v", err)
			}
		}
	}

	pending, err := svc.List(ctx, "pending", 1, 20)
	if err != nil {
		t.Fatalf("List pending: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("expected 2 pending requests, got %d", len(pending))
	}

	all, err := svc.List(ctx, "", 1, 20)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 requests, got %d", len(all))
	}
}
