// Code generated by ent, DO NOT EDIT.

package institution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldName, v))
}

// JoinCode applies equality check predicate on the "join_code" field. It's identical to JoinCodeEQ.
func JoinCode(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldJoinCode, v))
}

// StudentLimit applies equality check predicate on the "student_limit" field. It's identical to StudentLimitEQ.
func StudentLimit(v int) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldStudentLimit, v))
}

// TutorLimit applies equality check predicate on the "tutor_limit" field. It's identical to TutorLimitEQ.
func TutorLimit(v int) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldTutorLimit, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDescription, v))
}

// DirectorName applies equality check predicate on the "director_name" field. It's identical to DirectorNameEQ.
func DirectorName(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDirectorName, v))
}

// DirectorEmail applies equality check predicate on the "director_email" field. It's identical to DirectorEmailEQ.
func DirectorEmail(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDirectorEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldPhone, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldAddress, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldCity, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldName, v))
}

// JoinCodeEQ applies the EQ predicate on the "join_code" field.
func JoinCodeEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldJoinCode, v))
}

// JoinCodeNEQ applies the NEQ predicate on the "join_code" field.
func JoinCodeNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldJoinCode, v))
}

// JoinCodeIn applies the In predicate on the "join_code" field.
func JoinCodeIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldJoinCode, vs...))
}

// JoinCodeNotIn applies the NotIn predicate on the "join_code" field.
func JoinCodeNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldJoinCode, vs...))
}

// JoinCodeGT applies the GT predicate on the "join_code" field.
func JoinCodeGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldJoinCode, v))
}

// JoinCodeGTE applies the GTE predicate on the "join_code" field.
func JoinCodeGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldJoinCode, v))
}

// JoinCodeLT applies the LT predicate on the "join_code" field.
func JoinCodeLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldJoinCode, v))
}

// JoinCodeLTE applies the LTE predicate on the "join_code" field.
func JoinCodeLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldJoinCode, v))
}

// JoinCodeContains applies the Contains predicate on the "join_code" field.
func JoinCodeContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldJoinCode, v))
}

// JoinCodeHasPrefix applies the HasPrefix predicate on the "join_code" field.
func JoinCodeHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldJoinCode, v))
}

// JoinCodeHasSuffix applies the HasSuffix predicate on the "join_code" field.
func JoinCodeHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldJoinCode, v))
}

// JoinCodeEqualFold applies the EqualFold predicate on the "join_code" field.
func JoinCodeEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldJoinCode, v))
}

// JoinCodeContainsFold applies the ContainsFold predicate on the "join_code" field.
func JoinCodeContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldJoinCode, v))
}

// StudentLimitEQ applies the EQ predicate on the "student_limit" field.
func StudentLimitEQ(v int) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldStudentLimit, v))
}

// StudentLimitNEQ applies the NEQ predicate on the "student_limit" field.
func StudentLimitNEQ(v int) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldStudentLimit, v))
}

// StudentLimitIn applies the In predicate on the "student_limit" field.
func StudentLimitIn(vs ...int) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldStudentLimit, vs...))
}

// StudentLimitNotIn applies the NotIn predicate on the "student_limit" field.
func StudentLimitNotIn(vs ...int) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldStudentLimit, vs...))
}

// StudentLimitGT applies the GT predicate on the "student_limit" field.
func StudentLimitGT(v int) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldStudentLimit, v))
}

// StudentLimitGTE applies the GTE predicate on the "student_limit" field.
func StudentLimitGTE(v int) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldStudentLimit, v))
}

// StudentLimitLT applies the LT predicate on the "student_limit" field.
func StudentLimitLT(v int) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldStudentLimit, v))
}

// StudentLimitLTE applies the LTE predicate on the "student_limit" field.
func StudentLimitLTE(v int) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldStudentLimit, v))
}

// TutorLimitEQ applies the EQ predicate on the "tutor_limit" field.
func TutorLimitEQ(v int) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldTutorLimit, v))
}

// TutorLimitNEQ applies the NEQ predicate on the "tutor_limit" field.
func TutorLimitNEQ(v int) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldTutorLimit, v))
}

// TutorLimitIn applies the In predicate on the "tutor_limit" field.
func TutorLimitIn(vs ...int) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldTutorLimit, vs...))
}

// TutorLimitNotIn applies the NotIn predicate on the "tutor_limit" field.
func TutorLimitNotIn(vs ...int) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldTutorLimit, vs...))
}

// TutorLimitGT applies the GT predicate on the "tutor_limit" field.
func TutorLimitGT(v int) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldTutorLimit, v))
}

// TutorLimitGTE applies the GTE predicate on the "tutor_limit" field.
func TutorLimitGTE(v int) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldTutorLimit, v))
}

// TutorLimitLT applies the LT predicate on the "tutor_limit" field.
func TutorLimitLT(v int) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldTutorLimit, v))
}

// TutorLimitLTE applies the LTE predicate on the "tutor_limit" field.
func TutorLimitLTE(v int) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldTutorLimit, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldDescription, v))
}

// DirectorNameEQ applies the EQ predicate on the "director_name" field.
func DirectorNameEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDirectorName, v))
}

// DirectorNameNEQ applies the NEQ predicate on the "director_name" field.
func DirectorNameNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldDirectorName, v))
}

// DirectorNameIn applies the In predicate on the "director_name" field.
func DirectorNameIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldDirectorName, vs...))
}

// DirectorNameNotIn applies the NotIn predicate on the "director_name" field.
func DirectorNameNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldDirectorName, vs...))
}

// DirectorNameGT applies the GT predicate on the "director_name" field.
func DirectorNameGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldDirectorName, v))
}

// DirectorNameGTE applies the GTE predicate on the "director_name" field.
func DirectorNameGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldDirectorName, v))
}

// DirectorNameLT applies the LT predicate on the "director_name" field.
func DirectorNameLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldDirectorName, v))
}

// DirectorNameLTE applies the LTE predicate on the "director_name" field.
func DirectorNameLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldDirectorName, v))
}

// DirectorNameContains applies the Contains predicate on the "director_name" field.
func DirectorNameContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldDirectorName, v))
}

// DirectorNameHasPrefix applies the HasPrefix predicate on the "director_name" field.
func DirectorNameHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldDirectorName, v))
}

// DirectorNameHasSuffix applies the HasSuffix predicate on the "director_name" field.
func DirectorNameHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldDirectorName, v))
}

// DirectorNameIsNil applies the IsNil predicate on the "director_name" field.
func DirectorNameIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldDirectorName))
}

// DirectorNameNotNil applies the NotNil predicate on the "director_name" field.
func DirectorNameNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldDirectorName))
}

// DirectorNameEqualFold applies the EqualFold predicate on the "director_name" field.
func DirectorNameEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldDirectorName, v))
}

// DirectorNameContainsFold applies the ContainsFold predicate on the "director_name" field.
func DirectorNameContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldDirectorName, v))
}

// DirectorEmailEQ applies the EQ predicate on the "director_email" field.
func DirectorEmailEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldDirectorEmail, v))
}

// DirectorEmailNEQ applies the NEQ predicate on the "director_email" field.
func DirectorEmailNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldDirectorEmail, v))
}

// DirectorEmailIn applies the In predicate on the "director_email" field.
func DirectorEmailIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldDirectorEmail, vs...))
}

// DirectorEmailNotIn applies the NotIn predicate on the "director_email" field.
func DirectorEmailNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldDirectorEmail, vs...))
}

// DirectorEmailGT applies the GT predicate on the "director_email" field.
func DirectorEmailGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldDirectorEmail, v))
}

// DirectorEmailGTE applies the GTE predicate on the "director_email" field.
func DirectorEmailGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldDirectorEmail, v))
}

// DirectorEmailLT applies the LT predicate on the "director_email" field.
func DirectorEmailLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldDirectorEmail, v))
}

// DirectorEmailLTE applies the LTE predicate on the "director_email" field.
func DirectorEmailLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldDirectorEmail, v))
}

// DirectorEmailContains applies the Contains predicate on the "director_email" field.
func DirectorEmailContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldDirectorEmail, v))
}

// DirectorEmailHasPrefix applies the HasPrefix predicate on the "director_email" field.
func DirectorEmailHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldDirectorEmail, v))
}

// DirectorEmailHasSuffix applies the HasSuffix predicate on the "director_email" field.
func DirectorEmailHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldDirectorEmail, v))
}

// DirectorEmailIsNil applies the IsNil predicate on the "director_email" field.
func DirectorEmailIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldDirectorEmail))
}

// DirectorEmailNotNil applies the NotNil predicate on the "director_email" field.
func DirectorEmailNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldDirectorEmail))
}

// DirectorEmailEqualFold applies the EqualFold predicate on the "director_email" field.
func DirectorEmailEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldDirectorEmail, v))
}

// DirectorEmailContainsFold applies the ContainsFold predicate on the "director_email" field.
func DirectorEmailContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldDirectorEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldPhone, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldAddress, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.Institution {
	return predicate.Institution(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.Institution {
	return predicate.Institution(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.Institution {
	return predicate.Institution(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.Institution {
	return predicate.Institution(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.Institution {
	return predicate.Institution(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.Institution {
	return predicate.Institution(sql.FieldContainsFold(FieldCity, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Institution {
	return predicate.Institution(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Institution {
	return predicate.Institution(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Institution) predicate.Institution {
	return predicate.Institution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Institution) predicate.Institution {
	return predicate.Institution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Institution) predicate.Institution {
	return predicate.Institution(sql.NotPredicates(p))
}
