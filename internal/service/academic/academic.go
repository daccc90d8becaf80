package academic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entpred "github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
	"github.com/orienta-pe/orienta_backend/pkg/classifier"
)

var (
	ErrNotFound              = errors.New("academic prediction not found")
	ErrLocked                = errors.New("a prediction has already been recorded")
	ErrNoGrades              = errors.New("at least one subject grade is required")
	ErrInvalidGrade          = errors.New("grades must be one of AD, A, B, C")
	ErrClassifierUnavailable = errors.New("classification service is unavailable")
)

// validGrades is the Peruvian letter scale used on report cards.
var validGrades = map[string]bool{"AD": true, "A": true, "B": true, "C": true}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Get returns the student's stored academic prediction, if any.
	Get(ctx context.Context, userID uuid.UUID) (*repo.AcademicPrediction, error)

	// SubmitGrades validates the grade set, obtains a career-area label from
	// the classification service and persists grades + prediction together.
	// The form is a single atomic submission: once a prediction exists the
	// record is locked.
	SubmitGrades(ctx context.Context, userID uuid.UUID, grades map[string]string) (*repo.AcademicPrediction, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type academicService struct {
	db         *repo.Client
	classifier *classifier.Client
}

func New(db *repo.Client, cls *classifier.Client) Service {
	return &academicService{db: db, classifier: cls}
}

func (s *academicService) Get(ctx context.Context, userID uuid.UUID) (*repo.AcademicPrediction, error) {
	rec, err := s.db.AcademicPrediction.Query().
		Where(entpred.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get academic prediction: %w", err)
	}
	return rec, nil
}

func (s *academicService) SubmitGrades(ctx context.Context, userID uuid.UUID, grades map[string]string) (*repo.AcademicPrediction, error) {
	if len(grades) == 0 {
		return nil, ErrNoGrades
	}

	normalized := make(map[string]string, len(grades))
	for subject, grade := range grades {
		subject = strings.TrimSpace(subject)
		grade = strings.ToUpper(strings.TrimSpace(grade))
		if subject == "" || !validGrades[grade] {
			return nil, ErrInvalidGrade
		}
		normalized[subject] = grade
	}

	existing, err := s.db.AcademicPrediction.Query().
		Where(entpred.UserID(userID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get academic prediction: %w", err)
	}
	if existing != nil && existing.Prediction != nil && *existing.Prediction != "" {
		return nil, ErrLocked
	}

	label, err := s.classifier.PredictAcademic(ctx, normalized)
	if err != nil {
		slog.Warn("academic classification failed", "user_id", userID, "error", err)
		return nil, ErrClassifierUnavailable
	}

	now := time.Now()
	if existing != nil {
		rec, err := s.db.AcademicPrediction.UpdateOne(existing).
			SetGrades(normalized).
			SetPrediction(label).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("store prediction: %w", err)
		}
		return rec, nil
	}

	rec, err := s.db.AcademicPrediction.Create().
		SetUserID(userID).
		SetGrades(normalized).
		SetPrediction(label).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store prediction: %w", err)
	}
	return rec, nil
}
