package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entquestion "github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	entpred "github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
	"github.com/orienta-pe/orienta_backend/pkg/classifier"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateQuestionRequest struct {
	Text     string
	Section  string
	Category string
	Position int
}

// Snapshot is the read model handed to the dashboard: the stored record plus
// its derived status.
type Snapshot struct {
	Record *repo.PsychologicalPrediction
	Status riasec.Status
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListQuestions(ctx context.Context) ([]*repo.HollandQuestion, error)
	CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*repo.HollandQuestion, error)

	// Get returns the student's prediction record, lazily creating an empty
	// one on first access.
	Get(ctx context.Context, userID uuid.UUID) (*Snapshot, error)

	// RecordAnswer merges one answer into the record and recomputes all
	// derived progress in a single update. Answering a locked record is an
	// error, never a silent no-op.
	RecordAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer string) (*Snapshot, error)

	// Finalize sends the tally to the classification service and persists
	// the dominant-category result, permanently locking the record.
	Finalize(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type inventoryService struct {
	db         *repo.Client
	classifier *classifier.Client
	nc         *nats.Conn
}

func New(db *repo.Client, cls *classifier.Client, nc *nats.Conn) Service {
	return &inventoryService{db: db, classifier: cls, nc: nc}
}

// ---------------------------------------------------------------------------
// Question bank
// ---------------------------------------------------------------------------

func (s *inventoryService) ListQuestions(ctx context.Context) ([]*repo.HollandQuestion, error) {
	qs, err := s.db.HollandQuestion.Query().
		Order(entquestion.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return qs, nil
}

func (s *inventoryService) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*repo.HollandQuestion, error) {
	if !riasec.ValidSection(riasec.Section(req.Section)) {
		return nil, riasec.ErrInvalidSection
	}
	if !riasec.ValidCategory(riasec.Category(req.Category)) {
		return nil, riasec.ErrInvalidCategory
	}

	taken, err := s.db.HollandQuestion.Query().
		Where(entquestion.Position(req.Position)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check position: %w", err)
	}
	if taken {
		return nil, ErrQuestionPositionTaken
	}

	q, err := s.db.HollandQuestion.Create().
		SetText(req.Text).
		SetSection(entquestion.Section(req.Section)).
		SetCategory(entquestion.Category(req.Category)).
		SetPosition(req.Position).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

// loadBank builds the in-memory bank from the stored question collection.
func (s *inventoryService) loadBank(ctx context.Context) (*riasec.Bank, error) {
	rows, err := s.db.HollandQuestion.Query().
		Order(entquestion.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	qs := make([]riasec.Question, 0, len(rows))
	for _, r := range rows {
		qs = append(qs, riasec.Question{
			ID:       r.ID.String(),
			Text:     r.Text,
			Section:  riasec.Section(r.Section),
			Category: riasec.Category(r.Category),
			Position: r.Position,
		})
	}

	bank, err := riasec.NewBank(qs)
	if err != nil {
		if errors.Is(err, riasec.ErrEmptyBank) {
			return nil, ErrEmptyBank
		}
		return nil, fmt.Errorf("build question bank: %w", err)
	}
	return bank, nil
}

// ---------------------------------------------------------------------------
// Prediction record
// ---------------------------------------------------------------------------

func (s *inventoryService) Get(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	rec, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(rec), nil
}

func (s *inventoryService) getOrCreate(ctx context.Context, userID uuid.UUID) (*repo.PsychologicalPrediction, error) {
	rec, err := s.db.PsychologicalPrediction.Query().
		Where(entpred.UserID(userID)).
		Only(ctx)
	if err == nil {
		return rec, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get prediction: %w", err)
	}

	rec, err = s.db.PsychologicalPrediction.Create().
		SetUserID(userID).
		SetAnswers(riasec.AnswerSet{}).
		Save(ctx)
	if err != nil {
		// Lost a create race; the row exists now.
		if repo.IsConstraintError(err) {
			rec, qErr := s.db.PsychologicalPrediction.Query().
				Where(entpred.UserID(userID)).
				Only(ctx)
			if qErr != nil {
				return nil, fmt.Errorf("get prediction after create race: %w", qErr)
			}
			return rec, nil
		}
		return nil, fmt.Errorf("create prediction: %w", err)
	}
	return rec, nil
}

func (s *inventoryService) RecordAnswer(ctx context.Context, userID uuid.UUID, questionID string, answer string) (*Snapshot, error) {
	ans, err := riasec.ParseAnswer(answer)
	if err != nil {
		return nil, ErrInvalidAnswer
	}

	bank, err := s.loadBank(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := bank.Lookup(questionID); !ok {
		return nil, ErrUnknownQuestion
	}

	rec, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec.Result != nil && *rec.Result != "" {
		return nil, ErrLocked
	}

	merged := riasec.AnswerSet(rec.Answers).Merge(questionID, ans)
	progress := riasec.ComputeProgress(bank, merged)

	upd := s.db.PsychologicalPrediction.UpdateOne(rec).
		SetAnswers(merged).
		SetProgressOverall(progress.Overall).
		SetProgressSections(sectionMap(progress))

	// Snapshot the tally the first time the inventory reaches 100%.
	firstComplete := progress.Complete() && len(rec.Results.Total) == 0
	if firstComplete {
		upd = upd.SetResults(riasec.ComputeTally(bank, merged))
	}

	rec, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	if firstComplete && s.nc != nil {
		subject := fmt.Sprintf("orienta.inventory.completed.%s", userID.String())
		_ = s.nc.Publish(subject, []byte(rec.ID.String()))
	}

	return s.snapshot(rec), nil
}

func (s *inventoryService) Finalize(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	bank, err := s.loadBank(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.db.PsychologicalPrediction.Query().
		Where(entpred.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get prediction: %w", err)
	}
	if rec.Result != nil && *rec.Result != "" {
		return nil, ErrLocked
	}

	answers := riasec.AnswerSet(rec.Answers)
	progress := riasec.ComputeProgress(bank, answers)
	if !progress.Complete() {
		return nil, ErrNotReady
	}

	tally := riasec.ComputeTally(bank, answers)
	scores := make(map[string]int, 6)
	for c, n := range tally.YesScores() {
		scores[string(c)] = n
	}

	label, err := s.classifier.PredictPsychological(ctx, scores)
	if err != nil {
		slog.Warn("psychological classification failed", "user_id", userID, "error", err)
		return nil, ErrClassifierUnavailable
	}

	rec, err = s.db.PsychologicalPrediction.UpdateOne(rec).
		SetResult(label).
		SetResults(tally).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	if s.nc != nil {
		subject := fmt.Sprintf("orienta.inventory.finalized.%s", userID.String())
		_ = s.nc.Publish(subject, []byte(label))
	}

	return s.snapshot(rec), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *inventoryService) snapshot(rec *repo.PsychologicalPrediction) *Snapshot {
	result := ""
	if rec.Result != nil {
		result = *rec.Result
	}
	progress := riasec.Progress{Overall: rec.ProgressOverall}
	return &Snapshot{
		Record: rec,
		Status: riasec.StatusOf(progress, result),
	}
}

func sectionMap(p riasec.Progress) map[string]float64 {
	out := make(map[string]float64, len(p.Sections))
	for s, v := range p.Sections {
		out[string(s)] = v
	}
	return out
}
