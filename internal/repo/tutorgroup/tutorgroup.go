// Code generated by ent, DO NOT EDIT.

package tutorgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the tutorgroup type in the database.
	Label = "tutor_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTutorID holds the string denoting the tutor_id field in the database.
	FieldTutorID = "tutor_id"
	// FieldJoinCode holds the string denoting the join_code field in the database.
	FieldJoinCode = "join_code"
	// FieldStudentLimit holds the string denoting the student_limit field in the database.
	FieldStudentLimit = "student_limit"
	// FieldTutorLimit holds the string denoting the tutor_limit field in the database.
	FieldTutorLimit = "tutor_limit"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the tutorgroup in the database.
	Table = "tutor_groups"
)

// Columns holds all SQL columns for tutorgroup fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldTutorID,
	FieldJoinCode,
	FieldStudentLimit,
	FieldTutorLimit,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// JoinCodeValidator is a validator for the "join_code" field. It is called by the builders before save.
	JoinCodeValidator func(string) error
	// DefaultStudentLimit holds the default value on creation for the "student_limit" field.
	DefaultStudentLimit int
	// StudentLimitValidator is a validator for the "student_limit" field. It is called by the builders before save.
	StudentLimitValidator func(int) error
	// DefaultTutorLimit holds the default value on creation for the "tutor_limit" field.
	DefaultTutorLimit int
	// TutorLimitValidator is a validator for the "tutor_limit" field. It is called by the builders before save.
	TutorLimitValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TutorGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTutorID orders the results by the tutor_id field.
func ByTutorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorID, opts...).ToFunc()
}

// ByJoinCode orders the results by the join_code field.
func ByJoinCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinCode, opts...).ToFunc()
}

// ByStudentLimit orders the results by the student_limit field.
func ByStudentLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentLimit, opts...).ToFunc()
}

// ByTutorLimit orders the results by the tutor_limit field.
func ByTutorLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorLimit, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
