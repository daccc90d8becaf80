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
	"github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
)

// AcademicPrediction is the model entity for the AcademicPrediction schema.
type AcademicPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id; one attempt per student
	UserID uuid.UUID `json:"user_id,omitempty"`
	// subject → letter grade
	Grades map[string]string `json:"grades,omitempty"`
	// Prediction holds the value of the "prediction" field.
	Prediction *string `json:"prediction,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AcademicPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case academicprediction.FieldGrades:
			values[i] = new([]byte)
		case academicprediction.FieldPrediction:
			values[i] = new(sql.NullString)
		case academicprediction.FieldCreatedAt, academicprediction.FieldUpdatedAt, academicprediction.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case academicprediction.FieldID, academicprediction.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AcademicPrediction fields.
func (_m *AcademicPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case academicprediction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case academicprediction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case academicprediction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case academicprediction.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case academicprediction.FieldGrades:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grades", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Grades); err != nil {
					return fmt.Errorf("unmarshal field grades: %w", err)
				}
			}
		case academicprediction.FieldPrediction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction", values[i])
			} else if value.Valid {
				_m.Prediction = new(string)
				*_m.Prediction = value.String
			}
		case academicprediction.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AcademicPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *AcademicPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AcademicPrediction.
// Note that you need to call AcademicPrediction.Unwrap() before calling this method if this AcademicPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AcademicPrediction) Update() *AcademicPredictionUpdateOne {
	return NewAcademicPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AcademicPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AcademicPrediction) Unwrap() *AcademicPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AcademicPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AcademicPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("AcademicPrediction(")
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
	builder.WriteString("grades=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grades))
	builder.WriteString(", ")
	if v := _m.Prediction; v != nil {
		builder.WriteString("prediction=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AcademicPredictions is a parsable slice of AcademicPrediction.
type AcademicPredictions []*AcademicPrediction
