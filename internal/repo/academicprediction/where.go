// Code generated by ent, DO NOT EDIT.

package academicprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldUserID, v))
}

// Prediction applies equality check predicate on the "prediction" field. It's identical to PredictionEQ.
func Prediction(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldPrediction, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldUserID, v))
}

// GradesIsNil applies the IsNil predicate on the "grades" field.
func GradesIsNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIsNull(FieldGrades))
}

// GradesNotNil applies the NotNil predicate on the "grades" field.
func GradesNotNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotNull(FieldGrades))
}

// PredictionEQ applies the EQ predicate on the "prediction" field.
func PredictionEQ(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldPrediction, v))
}

// PredictionNEQ applies the NEQ predicate on the "prediction" field.
func PredictionNEQ(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldPrediction, v))
}

// PredictionIn applies the In predicate on the "prediction" field.
func PredictionIn(vs ...string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldPrediction, vs...))
}

// PredictionNotIn applies the NotIn predicate on the "prediction" field.
func PredictionNotIn(vs ...string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldPrediction, vs...))
}

// PredictionGT applies the GT predicate on the "prediction" field.
func PredictionGT(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldPrediction, v))
}

// PredictionGTE applies the GTE predicate on the "prediction" field.
func PredictionGTE(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldPrediction, v))
}

// PredictionLT applies the LT predicate on the "prediction" field.
func PredictionLT(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldPrediction, v))
}

// PredictionLTE applies the LTE predicate on the "prediction" field.
func PredictionLTE(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldPrediction, v))
}

// PredictionContains applies the Contains predicate on the "prediction" field.
func PredictionContains(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldContains(FieldPrediction, v))
}

// PredictionHasPrefix applies the HasPrefix predicate on the "prediction" field.
func PredictionHasPrefix(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldHasPrefix(FieldPrediction, v))
}

// PredictionHasSuffix applies the HasSuffix predicate on the "prediction" field.
func PredictionHasSuffix(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldHasSuffix(FieldPrediction, v))
}

// PredictionIsNil applies the IsNil predicate on the "prediction" field.
func PredictionIsNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIsNull(FieldPrediction))
}

// PredictionNotNil applies the NotNil predicate on the "prediction" field.
func PredictionNotNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotNull(FieldPrediction))
}

// PredictionEqualFold applies the EqualFold predicate on the "prediction" field.
func PredictionEqualFold(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEqualFold(FieldPrediction, v))
}

// PredictionContainsFold applies the ContainsFold predicate on the "prediction" field.
func PredictionContainsFold(v string) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldContainsFold(FieldPrediction, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AcademicPrediction) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AcademicPrediction) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AcademicPrediction) predicate.AcademicPrediction {
	return predicate.AcademicPrediction(sql.NotPredicates(p))
}
