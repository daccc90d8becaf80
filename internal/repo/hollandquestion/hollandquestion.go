// Code generated by ent, DO NOT EDIT.

package hollandquestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the hollandquestion type in the database.
	Label = "holland_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// Table holds the table name of the hollandquestion in the database.
	Table = "holland_questions"
)

// Columns holds all SQL columns for hollandquestion fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldText,
	FieldSection,
	FieldCategory,
	FieldPosition,
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
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Section defines the type for the "section" enum field.
type Section string

// Section values.
const (
	SectionActividades Section = "actividades"
	SectionHabilidades Section = "habilidades"
	SectionOcupaciones Section = "ocupaciones"
)

func (s Section) String() string {
	return string(s)
}

// SectionValidator is a validator for the "section" field enum values. It is called by the builders before save.
func SectionValidator(s Section) error {
	switch s {
	case SectionActividades, SectionHabilidades, SectionOcupaciones:
		return nil
	default:
		return fmt.Errorf("hollandquestion: invalid enum value for section field: %q", s)
	}
}

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryRealista     Category = "realista"
	CategoryInvestigador Category = "investigador"
	CategoryArtistico    Category = "artistico"
	CategorySocial       Category = "social"
	CategoryEmprendedor  Category = "emprendedor"
	CategoryConvencional Category = "convencional"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryRealista, CategoryInvestigador, CategoryArtistico, CategorySocial, CategoryEmprendedor, CategoryConvencional:
		return nil
	default:
		return fmt.Errorf("hollandquestion: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the HollandQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}
