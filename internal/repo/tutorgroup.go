// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
)

// TutorGroup is the model entity for the TutorGroup schema.
type TutorGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FK → users.id of the owning tutor
	TutorID uuid.UUID `json:"tutor_id,omitempty"`
	// JoinCode holds the value of the "join_code" field.
	JoinCode string `json:"join_code,omitempty"`
	// StudentLimit holds the value of the "student_limit" field.
	StudentLimit int `json:"student_limit,omitempty"`
	// TutorLimit holds the value of the "tutor_limit" field.
	TutorLimit int `json:"tutor_limit,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorgroup.FieldIsActive:
			values[i] = new(sql.NullBool)
		case tutorgroup.FieldStudentLimit, tutorgroup.FieldTutorLimit:
			values[i] = new(sql.NullInt64)
		case tutorgroup.FieldName, tutorgroup.FieldJoinCode:
			values[i] = new(sql.NullString)
		case tutorgroup.FieldCreatedAt, tutorgroup.FieldUpdatedAt, tutorgroup.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case tutorgroup.FieldID, tutorgroup.FieldTutorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorGroup fields.
func (_m *TutorGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorgroup.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case tutorgroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tutorgroup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case tutorgroup.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case tutorgroup.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case tutorgroup.FieldTutorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_id", values[i])
			} else if value != nil {
				_m.TutorID = *value
			}
		case tutorgroup.FieldJoinCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field join_code", values[i])
			} else if value.Valid {
				_m.JoinCode = value.String
			}
		case tutorgroup.FieldStudentLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_limit", values[i])
			} else if value.Valid {
				_m.StudentLimit = int(value.Int64)
			}
		case tutorgroup.FieldTutorLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_limit", values[i])
			} else if value.Valid {
				_m.TutorLimit = int(value.Int64)
			}
		case tutorgroup.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TutorGroup.
// This includes values selected through modifiers, order, etc.
func (_m *TutorGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorGroup.
// Note that you need to call TutorGroup.Unwrap() before calling this method if this TutorGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorGroup) Update() *TutorGroupUpdateOne {
	return NewTutorGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorGroup) Unwrap() *TutorGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TutorGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorGroup) String() string {
	var builder strings.Builder
	builder.WriteString("TutorGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("tutor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorID))
	builder.WriteString(", ")
	builder.WriteString("join_code=")
	builder.WriteString(_m.JoinCode)
	builder.WriteString(", ")
	builder.WriteString("student_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentLimit))
	builder.WriteString(", ")
	builder.WriteString("tutor_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorLimit))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// TutorGroups is a parsable slice of TutorGroup.
type TutorGroups []*TutorGroup
