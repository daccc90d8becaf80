package academic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	"github.com/orienta-pe/orienta_backend/internal/repo/enttest"
	"github.com/orienta-pe/orienta_backend/pkg/classifier"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func newClassifier(t *testing.T, label string) *classifier.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"prediccion": %q}`, label)
	}))
	t.Cleanup(srv.Close)
	return classifier.New(config.ClassifierConfig{BaseURL: srv.URL})
}

func TestSubmitGrades(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "ingenieria"))
	ctx := context.Background()

	userID := uuid.New()
	rec, err := svc.SubmitGrades(ctx, userID, map[string]string{
		"Matemática":    "ad",
		"Comunicación":  " a ",
		"Ciencia y Tecnología": "B",
	})
	if err != nil {
		t.Fatalf("SubmitGrades: %v", err)
	}
	if rec.Prediction == nil || *rec.Prediction != "ingenieria" {
		t.Errorf("expected prediction ingenieria, got %v", rec.Prediction)
	}
	if rec.CompletedAt == nil {
		t.Error("expected completed_at to be set")
	}
	// Letter grades are stored normalized to uppercase.
	if rec.Grades["Matemática"] != "AD" || rec.Grades["Comunicación"] != "A" {
		t.Errorf("grades were not normalized: %v", rec.Grades)
	}

	got, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != rec.ID {
		t.Error("Get returned a different record")
	}
}

func TestSubmitGradesLocked(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "ingenieria"))
	ctx := context.Background()

	userID := uuid.New()
	if _, err := svc.SubmitGrades(ctx, userID, map[string]string{"Matemática": "A"}); err != nil {
		t.Fatalf("SubmitGrades: %v", err)
	}
	if _, err := svc.SubmitGrades(ctx, userID, map[string]string{"Matemática": "C"}); !errors.Is(err, ErrLocked) {
		t.Errorf("expected ErrLocked on resubmission, got %v", err)
	}
}

func TestSubmitGradesValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "ingenieria"))
	ctx := context.Background()

	t.Run("no grades", func(t *testing.T) {
		if _, err := svc.SubmitGrades(ctx, uuid.New(), nil); !errors.Is(err, ErrNoGrades) {
			t.Errorf("expected ErrNoGrades, got %v", err)
		}
	})

	t.Run("grade outside the letter scale", func(t *testing.T) {
		if _, err := svc.SubmitGrades(ctx, uuid.New(), map[string]string{"Matemática": "15"}); !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("expected ErrInvalidGrade, got %v", err)
		}
	})

	t.Run("blank subject", func(t *testing.T) {
		if _, err := svc.SubmitGrades(ctx, uuid.New(), map[string]string{"  ": "A"}); !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("expected ErrInvalidGrade, got %v", err)
		}
	})
}

func TestSubmitGradesClassifierDown(t *testing.T) {
	client := newTestClient(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	svc := New(client, classifier.New(config.ClassifierConfig{BaseURL: srv.URL}))
	ctx := context.Background()

	userID := uuid.New()
	if _, err := svc.SubmitGrades(ctx, userID, map[string]string{"Matemática": "A"}); !errors.Is(err, ErrClassifierUnavailable) {
		t.Errorf("expected ErrClassifierUnavailable, got %v", err)
	}

	// Nothing was persisted, so the student can retry.
	if _, err := svc.Get(ctx, userID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after a failed submission, got %v", err)
	}
}

func TestGetWithoutRecord(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "ingenieria"))

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
