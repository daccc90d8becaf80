// Code generated by ent, DO NOT EDIT.

package tutorgroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldName, v))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldTutorID, v))
}

// JoinCode applies equality check predicate on the "join_code" field. It's identical to JoinCodeEQ.
func JoinCode(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldJoinCode, v))
}

// StudentLimit applies equality check predicate on the "student_limit" field. It's identical to StudentLimitEQ.
func StudentLimit(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldStudentLimit, v))
}

// TutorLimit applies equality check predicate on the "tutor_limit" field. It's identical to TutorLimitEQ.
func TutorLimit(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldTutorLimit, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldContainsFold(FieldName, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v uuid.UUID) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldTutorID, v))
}

// JoinCodeEQ applies the EQ predicate on the "join_code" field.
func JoinCodeEQ(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldJoinCode, v))
}

// JoinCodeNEQ applies the NEQ predicate on the "join_code" field.
func JoinCodeNEQ(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldJoinCode, v))
}

// JoinCodeIn applies the In predicate on the "join_code" field.
func JoinCodeIn(vs ...string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldJoinCode, vs...))
}

// JoinCodeNotIn applies the NotIn predicate on the "join_code" field.
func JoinCodeNotIn(vs ...string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldJoinCode, vs...))
}

// JoinCodeGT applies the GT predicate on the "join_code" field.
func JoinCodeGT(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldJoinCode, v))
}

// JoinCodeGTE applies the GTE predicate on the "join_code" field.
func JoinCodeGTE(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldJoinCode, v))
}

// JoinCodeLT applies the LT predicate on the "join_code" field.
func JoinCodeLT(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldJoinCode, v))
}

// JoinCodeLTE applies the LTE predicate on the "join_code" field.
func JoinCodeLTE(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldJoinCode, v))
}

// JoinCodeContains applies the Contains predicate on the "join_code" field.
func JoinCodeContains(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldContains(FieldJoinCode, v))
}

// JoinCodeHasPrefix applies the HasPrefix predicate on the "join_code" field.
func JoinCodeHasPrefix(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldHasPrefix(FieldJoinCode, v))
}

// JoinCodeHasSuffix applies the HasSuffix predicate on the "join_code" field.
func JoinCodeHasSuffix(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldHasSuffix(FieldJoinCode, v))
}

// JoinCodeEqualFold applies the EqualFold predicate on the "join_code" field.
func JoinCodeEqualFold(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEqualFold(FieldJoinCode, v))
}

// JoinCodeContainsFold applies the ContainsFold predicate on the "join_code" field.
func JoinCodeContainsFold(v string) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldContainsFold(FieldJoinCode, v))
}

// StudentLimitEQ applies the EQ predicate on the "student_limit" field.
func StudentLimitEQ(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldStudentLimit, v))
}

// StudentLimitNEQ applies the NEQ predicate on the "student_limit" field.
func StudentLimitNEQ(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldStudentLimit, v))
}

// StudentLimitIn applies the In predicate on the "student_limit" field.
func StudentLimitIn(vs ...int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldStudentLimit, vs...))
}

// StudentLimitNotIn applies the NotIn predicate on the "student_limit" field.
func StudentLimitNotIn(vs ...int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldStudentLimit, vs...))
}

// StudentLimitGT applies the GT predicate on the "student_limit" field.
func StudentLimitGT(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldStudentLimit, v))
}

// StudentLimitGTE applies the GTE predicate on the "student_limit" field.
func StudentLimitGTE(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldStudentLimit, v))
}

// StudentLimitLT applies the LT predicate on the "student_limit" field.
func StudentLimitLT(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldStudentLimit, v))
}

// StudentLimitLTE applies the LTE predicate on the "student_limit" field.
func StudentLimitLTE(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldStudentLimit, v))
}

// TutorLimitEQ applies the EQ predicate on the "tutor_limit" field.
func TutorLimitEQ(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldTutorLimit, v))
}

// TutorLimitNEQ applies the NEQ predicate on the "tutor_limit" field.
func TutorLimitNEQ(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldTutorLimit, v))
}

// TutorLimitIn applies the In predicate on the "tutor_limit" field.
func TutorLimitIn(vs ...int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldIn(FieldTutorLimit, vs...))
}

// TutorLimitNotIn applies the NotIn predicate on the "tutor_limit" field.
func TutorLimitNotIn(vs ...int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNotIn(FieldTutorLimit, vs...))
}

// TutorLimitGT applies the GT predicate on the "tutor_limit" field.
func TutorLimitGT(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGT(FieldTutorLimit, v))
}

// TutorLimitGTE applies the GTE predicate on the "tutor_limit" field.
func TutorLimitGTE(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldGTE(FieldTutorLimit, v))
}

// TutorLimitLT applies the LT predicate on the "tutor_limit" field.
func TutorLimitLT(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLT(FieldTutorLimit, v))
}

// TutorLimitLTE applies the LTE predicate on the "tutor_limit" field.
func TutorLimitLTE(v int) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldLTE(FieldTutorLimit, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.TutorGroup {
	return predicate.TutorGroup(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorGroup) predicate.TutorGroup {
	return predicate.TutorGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorGroup) predicate.TutorGroup {
	return predicate.TutorGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorGroup) predicate.TutorGroup {
	return predicate.TutorGroup(sql.NotPredicates(p))
}
