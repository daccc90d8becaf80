// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
)

// PsychologicalPrediction is the model entity for the PsychologicalPrediction schema.
type PsychologicalPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id; one attempt per student
	UserID uuid.UUID `json:"user_id,omitempty"`
	// question id → "yes"|"no"
	Answers riasec.AnswerSet `json:"answers,omitempty"`
	// 0-100, recomputed from the full answer set on every write
	ProgressOverall float64 `json:"progress_overall,omitempty"`
	// section name → 0-100
	ProgressSections map[string]float64 `json:"progress_sections,omitempty"`
	// Result holds the value of the "result" field.
	Result *string `json:"result,omitempty"`
	// per-category yes/no tally snapshot taken when progress first reaches 100
	Results riasec.Tally `json:"results,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PsychologicalPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologicalprediction.FieldAnswers, psychologicalprediction.FieldProgressSections, psychologicalprediction.FieldResults:
			values[i] = new([]byte)
		case psychologicalprediction.FieldProgressOverall:
			values[i] = new(sql.NullFloat64)
		case psychologicalprediction.FieldResult:
			values[i] = new(sql.NullString)
		case psychologicalprediction.FieldCreatedAt, psychologicalprediction.FieldUpdatedAt, psychologicalprediction.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case psychologicalprediction.FieldID, psychologicalprediction.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PsychologicalPrediction fields.
func (_m *PsychologicalPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologicalprediction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologicalprediction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologicalprediction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologicalprediction.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case psychologicalprediction.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case psychologicalprediction.FieldProgressOverall:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_overall", values[i])
			} else if value.Valid {
				_m.ProgressOverall = value.Float64
			}
		case psychologicalprediction.FieldProgressSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field progress_sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProgressSections); err != nil {
					return fmt.Errorf("unmarshal field progress_sections: %w", err)
				}
			}
		case psychologicalprediction.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = new(string)
				*_m.Result = value.String
			}
		case psychologicalprediction.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case psychologicalprediction.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PsychologicalPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *PsychologicalPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PsychologicalPrediction.
// Note that you need to call PsychologicalPrediction.Unwrap() before calling this method if this PsychologicalPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PsychologicalPrediction) Update() *PsychologicalPredictionUpdateOne {
	return NewPsychologicalPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PsychologicalPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PsychologicalPrediction) Unwrap() *PsychologicalPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PsychologicalPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PsychologicalPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("PsychologicalPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("progress_overall=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressOverall))
	builder.WriteString(", ")
	builder.WriteString("progress_sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressSections))
	builder.WriteString(", ")
	if v := _m.Result; v != nil {
		builder.WriteString("result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", _m.Results))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PsychologicalPredictions is a parsable slice of PsychologicalPrediction.
type PsychologicalPredictions []*PsychologicalPrediction
