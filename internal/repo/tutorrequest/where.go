// Code generated by ent, DO NOT EDIT.

package tutorrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldUserID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldEmail, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldLastName, v))
}

// DniHash applies equality check predicate on the "dni_hash" field. It's identical to DniHashEQ.
func DniHash(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDniHash, v))
}

// WorkArea applies equality check predicate on the "work_area" field. It's identical to WorkAreaEQ.
func WorkArea(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldWorkArea, v))
}

// Motivation applies equality check predicate on the "motivation" field. It's identical to MotivationEQ.
func Motivation(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldMotivation, v))
}

// RejectionReason applies equality check predicate on the "rejection_reason" field. It's identical to RejectionReasonEQ.
func RejectionReason(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldRejectionReason, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedBy applies equality check predicate on the "decided_by" field. It's identical to DecidedByEQ.
func DecidedBy(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldUserID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldEmail, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldLastName, v))
}

// DniHashEQ applies the EQ predicate on the "dni_hash" field.
func DniHashEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDniHash, v))
}

// DniHashNEQ applies the NEQ predicate on the "dni_hash" field.
func DniHashNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldDniHash, v))
}

// DniHashIn applies the In predicate on the "dni_hash" field.
func DniHashIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldDniHash, vs...))
}

// DniHashNotIn applies the NotIn predicate on the "dni_hash" field.
func DniHashNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldDniHash, vs...))
}

// DniHashGT applies the GT predicate on the "dni_hash" field.
func DniHashGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldDniHash, v))
}

// DniHashGTE applies the GTE predicate on the "dni_hash" field.
func DniHashGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldDniHash, v))
}

// DniHashLT applies the LT predicate on the "dni_hash" field.
func DniHashLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldDniHash, v))
}

// DniHashLTE applies the LTE predicate on the "dni_hash" field.
func DniHashLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldDniHash, v))
}

// DniHashContains applies the Contains predicate on the "dni_hash" field.
func DniHashContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldDniHash, v))
}

// DniHashHasPrefix applies the HasPrefix predicate on the "dni_hash" field.
func DniHashHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldDniHash, v))
}

// DniHashHasSuffix applies the HasSuffix predicate on the "dni_hash" field.
func DniHashHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldDniHash, v))
}

// DniHashEqualFold applies the EqualFold predicate on the "dni_hash" field.
func DniHashEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldDniHash, v))
}

// DniHashContainsFold applies the ContainsFold predicate on the "dni_hash" field.
func DniHashContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldDniHash, v))
}

// WorkAreaEQ applies the EQ predicate on the "work_area" field.
func WorkAreaEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldWorkArea, v))
}

// WorkAreaNEQ applies the NEQ predicate on the "work_area" field.
func WorkAreaNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldWorkArea, v))
}

// WorkAreaIn applies the In predicate on the "work_area" field.
func WorkAreaIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldWorkArea, vs...))
}

// WorkAreaNotIn applies the NotIn predicate on the "work_area" field.
func WorkAreaNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldWorkArea, vs...))
}

// WorkAreaGT applies the GT predicate on the "work_area" field.
func WorkAreaGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldWorkArea, v))
}

// WorkAreaGTE applies the GTE predicate on the "work_area" field.
func WorkAreaGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldWorkArea, v))
}

// WorkAreaLT applies the LT predicate on the "work_area" field.
func WorkAreaLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldWorkArea, v))
}

// WorkAreaLTE applies the LTE predicate on the "work_area" field.
func WorkAreaLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldWorkArea, v))
}

// WorkAreaContains applies the Contains predicate on the "work_area" field.
func WorkAreaContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldWorkArea, v))
}

// WorkAreaHasPrefix applies the HasPrefix predicate on the "work_area" field.
func WorkAreaHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldWorkArea, v))
}

// WorkAreaHasSuffix applies the HasSuffix predicate on the "work_area" field.
func WorkAreaHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldWorkArea, v))
}

// WorkAreaIsNil applies the IsNil predicate on the "work_area" field.
func WorkAreaIsNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIsNull(FieldWorkArea))
}

// WorkAreaNotNil applies the NotNil predicate on the "work_area" field.
func WorkAreaNotNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotNull(FieldWorkArea))
}

// WorkAreaEqualFold applies the EqualFold predicate on the "work_area" field.
func WorkAreaEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldWorkArea, v))
}

// WorkAreaContainsFold applies the ContainsFold predicate on the "work_area" field.
func WorkAreaContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldWorkArea, v))
}

// MotivationEQ applies the EQ predicate on the "motivation" field.
func MotivationEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldMotivation, v))
}

// MotivationNEQ applies the NEQ predicate on the "motivation" field.
func MotivationNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldMotivation, v))
}

// MotivationIn applies the In predicate on the "motivation" field.
func MotivationIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldMotivation, vs...))
}

// MotivationNotIn applies the NotIn predicate on the "motivation" field.
func MotivationNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldMotivation, vs...))
}

// MotivationGT applies the GT predicate on the "motivation" field.
func MotivationGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldMotivation, v))
}

// MotivationGTE applies the GTE predicate on the "motivation" field.
func MotivationGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldMotivation, v))
}

// MotivationLT applies the LT predicate on the "motivation" field.
func MotivationLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldMotivation, v))
}

// MotivationLTE applies the LTE predicate on the "motivation" field.
func MotivationLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldMotivation, v))
}

// MotivationContains applies the Contains predicate on the "motivation" field.
func MotivationContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldMotivation, v))
}

// MotivationHasPrefix applies the HasPrefix predicate on the "motivation" field.
func MotivationHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldMotivation, v))
}

// MotivationHasSuffix applies the HasSuffix predicate on the "motivation" field.
func MotivationHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldMotivation, v))
}

// MotivationIsNil applies the IsNil predicate on the "motivation" field.
func MotivationIsNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIsNull(FieldMotivation))
}

// MotivationNotNil applies the NotNil predicate on the "motivation" field.
func MotivationNotNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotNull(FieldMotivation))
}

// MotivationEqualFold applies the EqualFold predicate on the "motivation" field.
func MotivationEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldMotivation, v))
}

// MotivationContainsFold applies the ContainsFold predicate on the "motivation" field.
func MotivationContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldMotivation, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// RejectionReasonEQ applies the EQ predicate on the "rejection_reason" field.
func RejectionReasonEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldRejectionReason, v))
}

// RejectionReasonNEQ applies the NEQ predicate on the "rejection_reason" field.
func RejectionReasonNEQ(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldRejectionReason, v))
}

// RejectionReasonIn applies the In predicate on the "rejection_reason" field.
func RejectionReasonIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldRejectionReason, vs...))
}

// RejectionReasonNotIn applies the NotIn predicate on the "rejection_reason" field.
func RejectionReasonNotIn(vs ...string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldRejectionReason, vs...))
}

// RejectionReasonGT applies the GT predicate on the "rejection_reason" field.
func RejectionReasonGT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldRejectionReason, v))
}

// RejectionReasonGTE applies the GTE predicate on the "rejection_reason" field.
func RejectionReasonGTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldRejectionReason, v))
}

// RejectionReasonLT applies the LT predicate on the "rejection_reason" field.
func RejectionReasonLT(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldRejectionReason, v))
}

// RejectionReasonLTE applies the LTE predicate on the "rejection_reason" field.
func RejectionReasonLTE(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldRejectionReason, v))
}

// RejectionReasonContains applies the Contains predicate on the "rejection_reason" field.
func RejectionReasonContains(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContains(FieldRejectionReason, v))
}

// RejectionReasonHasPrefix applies the HasPrefix predicate on the "rejection_reason" field.
func RejectionReasonHasPrefix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasPrefix(FieldRejectionReason, v))
}

// RejectionReasonHasSuffix applies the HasSuffix predicate on the "rejection_reason" field.
func RejectionReasonHasSuffix(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldHasSuffix(FieldRejectionReason, v))
}

// RejectionReasonIsNil applies the IsNil predicate on the "rejection_reason" field.
func RejectionReasonIsNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIsNull(FieldRejectionReason))
}

// RejectionReasonNotNil applies the NotNil predicate on the "rejection_reason" field.
func RejectionReasonNotNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotNull(FieldRejectionReason))
}

// RejectionReasonEqualFold applies the EqualFold predicate on the "rejection_reason" field.
func RejectionReasonEqualFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEqualFold(FieldRejectionReason, v))
}

// RejectionReasonContainsFold applies the ContainsFold predicate on the "rejection_reason" field.
func RejectionReasonContainsFold(v string) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldContainsFold(FieldRejectionReason, v))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotNull(FieldDecidedAt))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByGT applies the GT predicate on the "decided_by" field.
func DecidedByGT(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGT(FieldDecidedBy, v))
}

// DecidedByGTE applies the GTE predicate on the "decided_by" field.
func DecidedByGTE(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldGTE(FieldDecidedBy, v))
}

// DecidedByLT applies the LT predicate on the "decided_by" field.
func DecidedByLT(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLT(FieldDecidedBy, v))
}

// DecidedByLTE applies the LTE predicate on the "decided_by" field.
func DecidedByLTE(v uuid.UUID) predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldLTE(FieldDecidedBy, v))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.TutorRequest {
	return predicate.TutorRequest(sql.FieldNotNull(FieldDecidedBy))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorRequest) predicate.TutorRequest {
	return predicate.TutorRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorRequest) predicate.TutorRequest {
	return predicate.TutorRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorRequest) predicate.TutorRequest {
	return predicate.TutorRequest(sql.NotPredicates(p))
}
