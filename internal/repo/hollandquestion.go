// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
)

// HollandQuestion is the model entity for the HollandQuestion schema.
type HollandQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Section holds the value of the "section" field.
	Section hollandquestion.Section `json:"section,omitempty"`
	// Category holds the value of the "category" field.
	Category hollandquestion.Category `json:"category,omitempty"`
	// Presentation order within the full inventory
	Position     int `json:"position,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HollandQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hollandquestion.FieldPosition:
			values[i] = new(sql.NullInt64)
		case hollandquestion.FieldText, hollandquestion.FieldSection, hollandquestion.FieldCategory:
			values[i] = new(sql.NullString)
		case hollandquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case hollandquestion.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HollandQuestion fields.
func (_m *HollandQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hollandquestion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case hollandquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hollandquestion.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case hollandquestion.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = hollandquestion.Section(value.String)
			}
		case hollandquestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = hollandquestion.Category(value.String)
			}
		case hollandquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HollandQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *HollandQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HollandQuestion.
// Note that you need to call HollandQuestion.Unwrap() before calling this method if this HollandQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HollandQuestion) Update() *HollandQuestionUpdateOne {
	return NewHollandQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HollandQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HollandQuestion) Unwrap() *HollandQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: HollandQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HollandQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("HollandQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(fmt.Sprintf("%v", _m.Section))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// HollandQuestions is a parsable slice of HollandQuestion.
type HollandQuestions []*HollandQuestion
