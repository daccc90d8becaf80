package inventory

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
	entquestion "github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
	"github.com/orienta-pe/orienta_backend/pkg/classifier"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

// newClassifier returns a classifier client backed by a stub that always
// answers with the given label.
func newClassifier(t *testing.T, label string) *classifier.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"prediccion": %q}`, label)
	}))
	t.Cleanup(srv.Close)
	return classifier.New(config.ClassifierConfig{BaseURL: srv.URL})
}

func newBrokenClassifier(t *testing.T) *classifier.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return classifier.New(config.ClassifierConfig{BaseURL: srv.URL})
}

// seedBank inserts one question per category and returns them in position
// order.
func seedBank(t *testing.T, client *repo.Client) []*repo.HollandQuestion {
	t.Helper()
	ctx := context.Background()
	items := []struct {
		text     string
		category riasec.Category
	}{
		{"Reparar objetos o aparatos en casa", riasec.CategoryRealista},
		{"Investigar por qué ocurren las cosas", riasec.CategoryInvestigador},
		{"Dibujar, pintar o componer música", riasec.CategoryArtistico},
		{"Ayudar a un compañero con sus tareas", riasec.CategorySocial},
		{"Organizar una venta para recaudar fondos", riasec.CategoryEmprendedor},
		{"Llevar registros ordenados y detallados", riasec.CategoryConvencional},
	}
	out := make([]*repo.HollandQuestion, 0, len(items))
	for i, item := range items {
		q, err := client.HollandQuestion.Create().
			SetText(item.text).
			SetSection(entquestion.Section(riasec.SectionActividades)).
			SetCategory(entquestion.Category(item.category)).
			SetPosition(i + 1).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed question %d: %v", i, err)
		}
		out = append(out, q)
	}
	return out
}

func TestGetCreatesEmptyRecord(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	userID := uuid.New()
	s, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Status != riasec.StatusNotStarted {
		t.Errorf("expected status not_started, got %s", s.Status)
	}
	if s.Record.ProgressOverall != 0 {
		t.Errorf("expected zero progress, got %v", s.Record.ProgressOverall)
	}

	// Second call returns the same record rather than creating a new one.
	again, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if again.Record.ID != s.Record.ID {
		t.Error("Get created a second record for the same user")
	}
}

func TestRecordAnswerProgress(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	qs := seedBank(t, client)
	userID := uuid.New()

	s, err := svc.RecordAnswer(ctx, userID, qs[0].ID.String(), "yes")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if s.Status != riasec.StatusInProgress {
		t.Errorf("expected status in_progress, got %s", s.Status)
	}
	if len(s.Record.Answers) != 1 {
		t.Errorf("expected 1 stored answer, got %d", len(s.Record.Answers))
	}

	// Re-answering the same question overwrites instead of appending.
	s, err = svc.RecordAnswer(ctx, userID, qs[0].ID.String(), "no")
	if err != nil {
		t.Fatalf("RecordAnswer overwrite: %v", err)
	}
	if len(s.Record.Answers) != 1 {
		t.Errorf("expected 1 stored answer after overwrite, got %d", len(s.Record.Answers))
	}
	if s.Record.Answers[qs[0].ID.String()] != riasec.AnswerNo {
		t.Error("overwrite did not replace the stored answer")
	}

	for _, q := range qs[1:] {
		if s, err = svc.RecordAnswer(ctx, userID, q.ID.String(), "yes"); err != nil {
			t.Fatalf("RecordAnswer %s: %v", q.ID, err)
		}
	}
	if s.Record.ProgressOverall != 100 {
		t.Errorf("expected 100%% progress, got %v", s.Record.ProgressOverall)
	}
	if s.Status != riasec.StatusReadyToSubmit {
		t.Errorf("expected status ready_to_submit, got %s", s.Status)
	}
	// The tally snapshot is taken the moment the inventory completes.
	if len(s.Record.Results.Total) == 0 {
		t.Error("expected the per-category tally snapshot at 100%% completion")
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	qs := seedBank(t, client)
	userID := uuid.New()

	t.Run("invalid answer value", func(t *testing.T) {
		if _, err := svc.RecordAnswer(ctx, userID, qs[0].ID.String(), "maybe"); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("expected ErrInvalidAnswer, got %v", err)
		}
	})

	t.Run("unknown question", func(t *testing.T) {
		if _, err := svc.RecordAnswer(ctx, userID, uuid.NewString(), "yes"); !errors.Is(err, ErrUnknownQuestion) {
			t.Errorf("expected ErrUnknownQuestion, got %v", err)
		}
	})
}

func TestRecordAnswerEmptyBank(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	if _, err := svc.RecordAnswer(ctx, uuid.New(), uuid.NewString(), "yes"); !errors.Is(err, ErrEmptyBank) {
		t.Errorf("expected ErrEmptyBank, got %v", err)
	}
}

func TestFinalize(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	qs := seedBank(t, client)
	userID := uuid.New()

	t.Run("not ready before completion", func(t *testing.T) {
		if _, err := svc.RecordAnswer(ctx, userID, qs[0].ID.String(), "yes"); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
		if _, err := svc.Finalize(ctx, userID); !errors.Is(err, ErrNotReady) {
			t.Errorf("expected ErrNotReady, got %v", err)
		}
	})

	t.Run("locks on success", func(t *testing.T) {
		for _, q := range qs[1:] {
			if _, err := svc.RecordAnswer(ctx, userID, q.ID.String(), "yes"); err != nil {
				t.Fatalf("RecordAnswer: %v", err)
			}
		}
		s, err := svc.Finalize(ctx, userID)
		if err != nil {
			t.Fatalf("Finalize: %v", err)
		}
		if s.Status != riasec.StatusLocked {
			t.Errorf("expected status locked, got %s", s.Status)
		}
		if s.Record.Result == nil || *s.Record.Result != "social" {
			t.Errorf("expected result social, got %v", s.Record.Result)
		}
		if s.Record.CompletedAt == nil {
			t.Error("expected completed_at to be set")
		}
	})

	t.Run("answering after lock is an error", func(t *testing.T) {
		if _, err := svc.RecordAnswer(ctx, userID, qs[0].ID.String(), "no"); !errors.Is(err, ErrLocked) {
			t.Errorf("expected ErrLocked, got %v", err)
		}
	})

	t.Run("second finalize is an error", func(t *testing.T) {
		if _, err := svc.Finalize(ctx, userID); !errors.Is(err, ErrLocked) {
			t.Errorf("expected ErrLocked, got %v", err)
		}
	})
}

func TestFinalizeClassifierDown(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newBrokenClassifier(t), nil)
	ctx := context.Background()

	qs := seedBank(t, client)
	userID := uuid.New()
	for _, q := range qs {
		if _, err := svc.RecordAnswer(ctx, userID, q.ID.String(), "yes"); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}

	if _, err := svc.Finalize(ctx, userID); !errors.Is(err, ErrClassifierUnavailable) {
		t.Errorf("expected ErrClassifierUnavailable, got %v", err)
	}

	// The record stays unlocked so the student can retry later.
	s, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Status != riasec.StatusReadyToSubmit {
		t.Errorf("expected status ready_to_submit after failed finalize, got %s", s.Status)
	}
}

func TestFinalizeWithoutRecord(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)

	seedBank(t, client)
	if _, err := svc.Finalize(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateQuestion(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	req := CreateQuestionRequest{
		Text:     "Reparar objetos o aparatos en casa",
		Section:  string(riasec.SectionActividades),
		Category: string(riasec.CategoryRealista),
		Position: 1,
	}
	if _, err := svc.CreateQuestion(ctx, req); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	t.Run("position taken", func(t *testing.T) {
		dup := req
		dup.Text = "Otra pregunta"
		if _, err := svc.CreateQuestion(ctx, dup); !errors.Is(err, ErrQuestionPositionTaken) {
			t.Errorf("expected ErrQuestionPositionTaken, got %v", err)
		}
	})

	t.Run("invalid section", func(t *testing.T) {
		bad := req
		bad.Section = "intereses"
		bad.Position = 2
		if _, err := svc.CreateQuestion(ctx, bad); !errors.Is(err, riasec.ErrInvalidSection) {
			t.Errorf("expected ErrInvalidSection, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		bad := req
		bad.Category = "deportivo"
		bad.Position = 2
		if _, err := svc.CreateQuestion(ctx, bad); !errors.Is(err, riasec.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})
}

func TestListQuestionsOrderedByPosition(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, newClassifier(t, "social"), nil)
	ctx := context.Background()

	// Insert out of order on purpose.
	for _, pos := range []int{3, 1, 2} {
		if _, err := client.HollandQuestion.Create().
			SetText(fmt.Sprintf("pregunta %d", pos)).
			SetSection(entquestion.Section(riasec.SectionHabilidades)).
			SetCategory(entquestion.Category(riasec.CategorySocial)).
			SetPosition(pos).
			Save(ctx); err != nil {
			t.Fatalf("create question: %v", err)
		}
	}

	qs, err := svc.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	for i, q := range qs {
		if q.Position != i+1 {
			t.Errorf("question %d out of order: position %d", i, q.Position)
		}
	}
}
