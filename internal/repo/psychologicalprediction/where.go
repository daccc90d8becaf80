// Code generated by ent, DO NOT EDIT.

package psychologicalprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldUserID, v))
}

// ProgressOverall applies equality check predicate on the "progress_overall" field. It's identical to ProgressOverallEQ.
func ProgressOverall(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldProgressOverall, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldResult, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldUserID, v))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotNull(FieldAnswers))
}

// ProgressOverallEQ applies the EQ predicate on the "progress_overall" field.
func ProgressOverallEQ(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldProgressOverall, v))
}

// ProgressOverallNEQ applies the NEQ predicate on the "progress_overall" field.
func ProgressOverallNEQ(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldProgressOverall, v))
}

// ProgressOverallIn applies the In predicate on the "progress_overall" field.
func ProgressOverallIn(vs ...float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldProgressOverall, vs...))
}

// ProgressOverallNotIn applies the NotIn predicate on the "progress_overall" field.
func ProgressOverallNotIn(vs ...float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldProgressOverall, vs...))
}

// ProgressOverallGT applies the GT predicate on the "progress_overall" field.
func ProgressOverallGT(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldProgressOverall, v))
}

// ProgressOverallGTE applies the GTE predicate on the "progress_overall" field.
func ProgressOverallGTE(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldProgressOverall, v))
}

// ProgressOverallLT applies the LT predicate on the "progress_overall" field.
func ProgressOverallLT(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldProgressOverall, v))
}

// ProgressOverallLTE applies the LTE predicate on the "progress_overall" field.
func ProgressOverallLTE(v float64) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldProgressOverall, v))
}

// ProgressSectionsIsNil applies the IsNil predicate on the "progress_sections" field.
func ProgressSectionsIsNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIsNull(FieldProgressSections))
}

// ProgressSectionsNotNil applies the NotNil predicate on the "progress_sections" field.
func ProgressSectionsNotNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotNull(FieldProgressSections))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldContainsFold(FieldResult, v))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotNull(FieldResults))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PsychologicalPrediction) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PsychologicalPrediction) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PsychologicalPrediction) predicate.PsychologicalPrediction {
	return predicate.PsychologicalPrediction(sql.NotPredicates(p))
}
