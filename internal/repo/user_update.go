// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
	"github.com/orienta-pe/orienta_backend/internal/repo/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdate) SetDeletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDeletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdate) ClearDeletedAt() *UserUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdate) SetFirstName(v string) *UserUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFirstName(v *string) *UserUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdate) ClearFirstName() *UserUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserUpdate) SetLastName(v string) *UserUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastName(v *string) *UserUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *UserUpdate) ClearLastName() *UserUpdate {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdate) ClearPasswordHash() *UserUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *UserUpdate) ClearRole() *UserUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (_u *UserUpdate) SetIsProfileComplete(v bool) *UserUpdate {
	_u.mutation.SetIsProfileComplete(v)
	return _u
}

// SetNillableIsProfileComplete sets the "is_profile_complete" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsProfileComplete(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsProfileComplete(*v)
	}
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *UserUpdate) SetInstitutionID(v uuid.UUID) *UserUpdate {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableInstitutionID(v *uuid.UUID) *UserUpdate {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *UserUpdate) ClearInstitutionID() *UserUpdate {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *UserUpdate) SetGroupID(v uuid.UUID) *UserUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableGroupID(v *uuid.UUID) *UserUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *UserUpdate) ClearGroupID() *UserUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetIsHero sets the "is_hero" field.
func (_u *UserUpdate) SetIsHero(v bool) *UserUpdate {
	_u.mutation.SetIsHero(v)
	return _u
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsHero(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsHero(*v)
	}
	return _u
}

// SetTutorVerified sets the "tutor_verified" field.
func (_u *UserUpdate) SetTutorVerified(v bool) *UserUpdate {
	_u.mutation.SetTutorVerified(v)
	return _u
}

// SetNillableTutorVerified sets the "tutor_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTutorVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetTutorVerified(*v)
	}
	return _u
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (_u *UserUpdate) SetDniEncrypted(v string) *UserUpdate {
	_u.mutation.SetDniEncrypted(v)
	return _u
}

// SetNillableDniEncrypted sets the "dni_encrypted" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDniEncrypted(v *string) *UserUpdate {
	if v != nil {
		_u.SetDniEncrypted(*v)
	}
	return _u
}

// ClearDniEncrypted clears the value of the "dni_encrypted" field.
func (_u *UserUpdate) ClearDniEncrypted() *UserUpdate {
	_u.mutation.ClearDniEncrypted()
	return _u
}

// SetDniHash sets the "dni_hash" field.
func (_u *UserUpdate) SetDniHash(v string) *UserUpdate {
	_u.mutation.SetDniHash(v)
	return _u
}

// SetNillableDniHash sets the "dni_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDniHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetDniHash(*v)
	}
	return _u
}

// ClearDniHash clears the value of the "dni_hash" field.
func (_u *UserUpdate) ClearDniHash() *UserUpdate {
	_u.mutation.ClearDniHash()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *UserUpdate) SetGrade(v string) *UserUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *UserUpdate) SetNillableGrade(v *string) *UserUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *UserUpdate) ClearGrade() *UserUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetClassSection sets the "class_section" field.
func (_u *UserUpdate) SetClassSection(v string) *UserUpdate {
	_u.mutation.SetClassSection(v)
	return _u
}

// SetNillableClassSection sets the "class_section" field if the given value is not nil.
func (_u *UserUpdate) SetNillableClassSection(v *string) *UserUpdate {
	if v != nil {
		_u.SetClassSection(*v)
	}
	return _u
}

// ClearClassSection clears the value of the "class_section" field.
func (_u *UserUpdate) ClearClassSection() *UserUpdate {
	_u.mutation.ClearClassSection()
	return _u
}

// SetWorkArea sets the "work_area" field.
func (_u *UserUpdate) SetWorkArea(v string) *UserUpdate {
	_u.mutation.SetWorkArea(v)
	return _u
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_u *UserUpdate) SetNillableWorkArea(v *string) *UserUpdate {
	if v != nil {
		_u.SetWorkArea(*v)
	}
	return _u
}

// ClearWorkArea clears the value of the "work_area" field.
func (_u *UserUpdate) ClearWorkArea() *UserUpdate {
	_u.mutation.ClearWorkArea()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdate) SetStatus(v user.Status) *UserUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStatus(v *user.Status) *UserUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdate) SetEmailVerified(v bool) *UserUpdate {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UserUpdate) SetFailedLoginAttempts(v int) *UserUpdate {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFailedLoginAttempts(v *int) *UserUpdate {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UserUpdate) AddFailedLoginAttempts(v int) *UserUpdate {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UserUpdate) SetLockedUntil(v time.Time) *UserUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLockedUntil(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UserUpdate) ClearLockedUntil() *UserUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *UserUpdate) SetLastFailedLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastFailedLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *UserUpdate) ClearLastFailedLoginAt() *UserUpdate {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UserUpdate) SetMetadata(v map[string]interface{}) *UserUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UserUpdate) ClearMetadata() *UserUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *UserUpdate) SetSuspendedAt(v time.Time) *UserUpdate {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSuspendedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *UserUpdate) ClearSuspendedAt() *UserUpdate {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := user.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "User.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := user.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "User.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DniHash(); ok {
		if err := user.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "User.dni_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := user.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`repo: validator failed for field "User.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassSection(); ok {
		if err := user.ClassSectionValidator(v); err != nil {
			return &ValidationError{Name: "class_section", err: fmt.Errorf(`repo: validator failed for field "User.class_section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkArea(); ok {
		if err := user.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "User.work_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := user.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "User.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(user.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(user.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(user.FieldRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsProfileComplete(); ok {
		_spec.SetField(user.FieldIsProfileComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(user.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(user.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(user.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(user.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsHero(); ok {
		_spec.SetField(user.FieldIsHero, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TutorVerified(); ok {
		_spec.SetField(user.FieldTutorVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DniEncrypted(); ok {
		_spec.SetField(user.FieldDniEncrypted, field.TypeString, value)
	}
	if _u.mutation.DniEncryptedCleared() {
		_spec.ClearField(user.FieldDniEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.DniHash(); ok {
		_spec.SetField(user.FieldDniHash, field.TypeString, value)
	}
	if _u.mutation.DniHashCleared() {
		_spec.ClearField(user.FieldDniHash, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(user.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(user.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.ClassSection(); ok {
		_spec.SetField(user.FieldClassSection, field.TypeString, value)
	}
	if _u.mutation.ClassSectionCleared() {
		_spec.ClearField(user.FieldClassSection, field.TypeString)
	}
	if value, ok := _u.mutation.WorkArea(); ok {
		_spec.SetField(user.FieldWorkArea, field.TypeString, value)
	}
	if _u.mutation.WorkAreaCleared() {
		_spec.ClearField(user.FieldWorkArea, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(user.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(user.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(user.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(user.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(user.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(user.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(user.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(user.FieldSuspendedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *UserUpdateOne) SetDeletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDeletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *UserUpdateOne) ClearDeletedAt() *UserUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdateOne) SetFirstName(v string) *UserUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFirstName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdateOne) ClearFirstName() *UserUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *UserUpdateOne) SetLastName(v string) *UserUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// ClearLastName clears the value of the "last_name" field.
func (_u *UserUpdateOne) ClearLastName() *UserUpdateOne {
	_u.mutation.ClearLastName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdateOne) ClearPasswordHash() *UserUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *UserUpdateOne) ClearRole() *UserUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (_u *UserUpdateOne) SetIsProfileComplete(v bool) *UserUpdateOne {
	_u.mutation.SetIsProfileComplete(v)
	return _u
}

// SetNillableIsProfileComplete sets the "is_profile_complete" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsProfileComplete(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsProfileComplete(*v)
	}
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *UserUpdateOne) SetInstitutionID(v uuid.UUID) *UserUpdateOne {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableInstitutionID(v *uuid.UUID) *UserUpdateOne {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *UserUpdateOne) ClearInstitutionID() *UserUpdateOne {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *UserUpdateOne) SetGroupID(v uuid.UUID) *UserUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableGroupID(v *uuid.UUID) *UserUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *UserUpdateOne) ClearGroupID() *UserUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetIsHero sets the "is_hero" field.
func (_u *UserUpdateOne) SetIsHero(v bool) *UserUpdateOne {
	_u.mutation.SetIsHero(v)
	return _u
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsHero(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsHero(*v)
	}
	return _u
}

// SetTutorVerified sets the "tutor_verified" field.
func (_u *UserUpdateOne) SetTutorVerified(v bool) *UserUpdateOne {
	_u.mutation.SetTutorVerified(v)
	return _u
}

// SetNillableTutorVerified sets the "tutor_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTutorVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetTutorVerified(*v)
	}
	return _u
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (_u *UserUpdateOne) SetDniEncrypted(v string) *UserUpdateOne {
	_u.mutation.SetDniEncrypted(v)
	return _u
}

// SetNillableDniEncrypted sets the "dni_encrypted" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDniEncrypted(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDniEncrypted(*v)
	}
	return _u
}

// ClearDniEncrypted clears the value of the "dni_encrypted" field.
func (_u *UserUpdateOne) ClearDniEncrypted() *UserUpdateOne {
	_u.mutation.ClearDniEncrypted()
	return _u
}

// SetDniHash sets the "dni_hash" field.
func (_u *UserUpdateOne) SetDniHash(v string) *UserUpdateOne {
	_u.mutation.SetDniHash(v)
	return _u
}

// SetNillableDniHash sets the "dni_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDniHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetDniHash(*v)
	}
	return _u
}

// ClearDniHash clears the value of the "dni_hash" field.
func (_u *UserUpdateOne) ClearDniHash() *UserUpdateOne {
	_u.mutation.ClearDniHash()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *UserUpdateOne) SetGrade(v string) *UserUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableGrade(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *UserUpdateOne) ClearGrade() *UserUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetClassSection sets the "class_section" field.
func (_u *UserUpdateOne) SetClassSection(v string) *UserUpdateOne {
	_u.mutation.SetClassSection(v)
	return _u
}

// SetNillableClassSection sets the "class_section" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableClassSection(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetClassSection(*v)
	}
	return _u
}

// ClearClassSection clears the value of the "class_section" field.
func (_u *UserUpdateOne) ClearClassSection() *UserUpdateOne {
	_u.mutation.ClearClassSection()
	return _u
}

// SetWorkArea sets the "work_area" field.
func (_u *UserUpdateOne) SetWorkArea(v string) *UserUpdateOne {
	_u.mutation.SetWorkArea(v)
	return _u
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableWorkArea(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetWorkArea(*v)
	}
	return _u
}

// ClearWorkArea clears the value of the "work_area" field.
func (_u *UserUpdateOne) ClearWorkArea() *UserUpdateOne {
	_u.mutation.ClearWorkArea()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdateOne) SetStatus(v user.Status) *UserUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStatus(v *user.Status) *UserUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdateOne) SetEmailVerified(v bool) *UserUpdateOne {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UserUpdateOne) SetFailedLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFailedLoginAttempts(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UserUpdateOne) AddFailedLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UserUpdateOne) SetLockedUntil(v time.Time) *UserUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLockedUntil(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UserUpdateOne) ClearLockedUntil() *UserUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_u *UserUpdateOne) SetLastFailedLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastFailedLoginAt(v)
	return _u
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastFailedLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastFailedLoginAt(*v)
	}
	return _u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (_u *UserUpdateOne) ClearLastFailedLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastFailedLoginAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *UserUpdateOne) SetMetadata(v map[string]interface{}) *UserUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *UserUpdateOne) ClearMetadata() *UserUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSuspendedAt sets the "suspended_at" field.
func (_u *UserUpdateOne) SetSuspendedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetSuspendedAt(v)
	return _u
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSuspendedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetSuspendedAt(*v)
	}
	return _u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (_u *UserUpdateOne) ClearSuspendedAt() *UserUpdateOne {
	_u.mutation.ClearSuspendedAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := user.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "User.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := user.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "User.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DniHash(); ok {
		if err := user.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "User.dni_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := user.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`repo: validator failed for field "User.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassSection(); ok {
		if err := user.ClassSectionValidator(v); err != nil {
			return &ValidationError{Name: "class_section", err: fmt.Errorf(`repo: validator failed for field "User.class_section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkArea(); ok {
		if err := user.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "User.work_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := user.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "User.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != user.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(user.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(user.FieldLastName, field.TypeString, value)
	}
	if _u.mutation.LastNameCleared() {
		_spec.ClearField(user.FieldLastName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(user.FieldRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.IsProfileComplete(); ok {
		_spec.SetField(user.FieldIsProfileComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(user.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(user.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(user.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(user.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsHero(); ok {
		_spec.SetField(user.FieldIsHero, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TutorVerified(); ok {
		_spec.SetField(user.FieldTutorVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DniEncrypted(); ok {
		_spec.SetField(user.FieldDniEncrypted, field.TypeString, value)
	}
	if _u.mutation.DniEncryptedCleared() {
		_spec.ClearField(user.FieldDniEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.DniHash(); ok {
		_spec.SetField(user.FieldDniHash, field.TypeString, value)
	}
	if _u.mutation.DniHashCleared() {
		_spec.ClearField(user.FieldDniHash, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(user.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(user.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.ClassSection(); ok {
		_spec.SetField(user.FieldClassSection, field.TypeString, value)
	}
	if _u.mutation.ClassSectionCleared() {
		_spec.ClearField(user.FieldClassSection, field.TypeString)
	}
	if value, ok := _u.mutation.WorkArea(); ok {
		_spec.SetField(user.FieldWorkArea, field.TypeString, value)
	}
	if _u.mutation.WorkAreaCleared() {
		_spec.ClearField(user.FieldWorkArea, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(user.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(user.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(user.FieldLockedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(user.FieldLastFailedLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailedLoginAtCleared() {
		_spec.ClearField(user.FieldLastFailedLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(user.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(user.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SuspendedAt(); ok {
		_spec.SetField(user.FieldSuspendedAt, field.TypeTime, value)
	}
	if _u.mutation.SuspendedAtCleared() {
		_spec.ClearField(user.FieldSuspendedAt, field.TypeTime)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
