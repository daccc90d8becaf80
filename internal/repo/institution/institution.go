// Code generated by ent, DO NOT EDIT.

package institution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the institution type in the database.
	Label = "institution"
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
	// FieldJoinCode holds the string denoting the join_code field in the database.
	FieldJoinCode = "join_code"
	// FieldStudentLimit holds the string denoting the student_limit field in the database.
	FieldStudentLimit = "student_limit"
	// FieldTutorLimit holds the string denoting the tutor_limit field in the database.
	FieldTutorLimit = "tutor_limit"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDirectorName holds the string denoting the director_name field in the database.
	FieldDirectorName = "director_name"
	// FieldDirectorEmail holds the string denoting the director_email field in the database.
	FieldDirectorEmail = "director_email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the institution in the database.
	Table = "institutions"
)

// Columns holds all SQL columns for institution fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldJoinCode,
	FieldStudentLimit,
	FieldTutorLimit,
	FieldDescription,
	FieldDirectorName,
	FieldDirectorEmail,
	FieldPhone,
	FieldAddress,
	FieldCity,
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
	// StudentLimitValidator is a validator for the "student_limit" field. It is called by the builders before save.
	StudentLimitValidator func(int) error
	// TutorLimitValidator is a validator for the "tutor_limit" field. It is called by the builders before save.
	TutorLimitValidator func(int) error
	// DirectorNameValidator is a validator for the "director_name" field. It is called by the builders before save.
	DirectorNameValidator func(string) error
	// DirectorEmailValidator is a validator for the "director_email" field. It is called by the builders before save.
	DirectorEmailValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Institution queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDirectorName orders the results by the director_name field.
func ByDirectorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectorName, opts...).ToFunc()
}

// ByDirectorEmail orders the results by the director_email field.
func ByDirectorEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirectorEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
