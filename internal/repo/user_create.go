// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *UserCreate) SetDeletedAt(v time.Time) *UserCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableDeletedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *UserCreate) SetFirstName(v string) *UserCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *UserCreate) SetNillableFirstName(v *string) *UserCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *UserCreate) SetLastName(v string) *UserCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastName(v *string) *UserCreate {
	if v != nil {
		_c.SetLastName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *UserCreate) SetNillablePasswordHash(v *string) *UserCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v user.Role) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *user.Role) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (_c *UserCreate) SetIsProfileComplete(v bool) *UserCreate {
	_c.mutation.SetIsProfileComplete(v)
	return _c
}

// SetNillableIsProfileComplete sets the "is_profile_complete" field if the given value is not nil.
func (_c *UserCreate) SetNillableIsProfileComplete(v *bool) *UserCreate {
	if v != nil {
		_c.SetIsProfileComplete(*v)
	}
	return _c
}

// SetInstitutionID sets the "institution_id" field.
func (_c *UserCreate) SetInstitutionID(v uuid.UUID) *UserCreate {
	_c.mutation.SetInstitutionID(v)
	return _c
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_c *UserCreate) SetNillableInstitutionID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetInstitutionID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *UserCreate) SetGroupID(v uuid.UUID) *UserCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *UserCreate) SetNillableGroupID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetIsHero sets the "is_hero" field.
func (_c *UserCreate) SetIsHero(v bool) *UserCreate {
	_c.mutation.SetIsHero(v)
	return _c
}

// SetNillableIsHero sets the "is_hero" field if the given value is not nil.
func (_c *UserCreate) SetNillableIsHero(v *bool) *UserCreate {
	if v != nil {
		_c.SetIsHero(*v)
	}
	return _c
}

// SetTutorVerified sets the "tutor_verified" field.
func (_c *UserCreate) SetTutorVerified(v bool) *UserCreate {
	_c.mutation.SetTutorVerified(v)
	return _c
}

// SetNillableTutorVerified sets the "tutor_verified" field if the given value is not nil.
func (_c *UserCreate) SetNillableTutorVerified(v *bool) *UserCreate {
	if v != nil {
		_c.SetTutorVerified(*v)
	}
	return _c
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (_c *UserCreate) SetDniEncrypted(v string) *UserCreate {
	_c.mutation.SetDniEncrypted(v)
	return _c
}

// SetNillableDniEncrypted sets the "dni_encrypted" field if the given value is not nil.
func (_c *UserCreate) SetNillableDniEncrypted(v *string) *UserCreate {
	if v != nil {
		_c.SetDniEncrypted(*v)
	}
	return _c
}

// SetDniHash sets the "dni_hash" field.
func (_c *UserCreate) SetDniHash(v string) *UserCreate {
	_c.mutation.SetDniHash(v)
	return _c
}

// SetNillableDniHash sets the "dni_hash" field if the given value is not nil.
func (_c *UserCreate) SetNillableDniHash(v *string) *UserCreate {
	if v != nil {
		_c.SetDniHash(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *UserCreate) SetGrade(v string) *UserCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *UserCreate) SetNillableGrade(v *string) *UserCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetClassSection sets the "class_section" field.
func (_c *UserCreate) SetClassSection(v string) *UserCreate {
	_c.mutation.SetClassSection(v)
	return _c
}

// SetNillableClassSection sets the "class_section" field if the given value is not nil.
func (_c *UserCreate) SetNillableClassSection(v *string) *UserCreate {
	if v != nil {
		_c.SetClassSection(*v)
	}
	return _c
}

// SetWorkArea sets the "work_area" field.
func (_c *UserCreate) SetWorkArea(v string) *UserCreate {
	_c.mutation.SetWorkArea(v)
	return _c
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_c *UserCreate) SetNillableWorkArea(v *string) *UserCreate {
	if v != nil {
		_c.SetWorkArea(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserCreate) SetStatus(v user.Status) *UserCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserCreate) SetNillableStatus(v *user.Status) *UserCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEmailVerified sets the "email_verified" field.
func (_c *UserCreate) SetEmailVerified(v bool) *UserCreate {
	_c.mutation.SetEmailVerified(v)
	return _c
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerified(v *bool) *UserCreate {
	if v != nil {
		_c.SetEmailVerified(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *UserCreate) SetLastLoginAt(v time.Time) *UserCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLoginAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_c *UserCreate) SetFailedLoginAttempts(v int) *UserCreate {
	_c.mutation.SetFailedLoginAttempts(v)
	return _c
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_c *UserCreate) SetNillableFailedLoginAttempts(v *int) *UserCreate {
	if v != nil {
		_c.SetFailedLoginAttempts(*v)
	}
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *UserCreate) SetLockedUntil(v time.Time) *UserCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_c *UserCreate) SetNillableLockedUntil(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLockedUntil(*v)
	}
	return _c
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (_c *UserCreate) SetLastFailedLoginAt(v time.Time) *UserCreate {
	_c.mutation.SetLastFailedLoginAt(v)
	return _c
}

// SetNillableLastFailedLoginAt sets the "last_failed_login_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastFailedLoginAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastFailedLoginAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *UserCreate) SetMetadata(v map[string]interface{}) *UserCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetSuspendedAt sets the "suspended_at" field.
func (_c *UserCreate) SetSuspendedAt(v time.Time) *UserCreate {
	_c.mutation.SetSuspendedAt(v)
	return _c
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableSuspendedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetSuspendedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v uuid.UUID) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserCreate) SetNillableID(v *uuid.UUID) *UserCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsProfileComplete(); !ok {
		v := user.DefaultIsProfileComplete
		_c.mutation.SetIsProfileComplete(v)
	}
	if _, ok := _c.mutation.IsHero(); !ok {
		v := user.DefaultIsHero
		_c.mutation.SetIsHero(v)
	}
	if _, ok := _c.mutation.TutorVerified(); !ok {
		v := user.DefaultTutorVerified
		_c.mutation.SetTutorVerified(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := user.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EmailVerified(); !ok {
		v := user.DefaultEmailVerified
		_c.mutation.SetEmailVerified(v)
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		v := user.DefaultFailedLoginAttempts
		_c.mutation.SetFailedLoginAttempts(v)
	}
	if _, ok := _c.mutation.Metadata(); !ok {
		v := user.DefaultMetadata
		_c.mutation.SetMetadata(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := user.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "User.updated_at"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := user.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "User.first_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := user.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "User.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "User.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsProfileComplete(); !ok {
		return &ValidationError{Name: "is_profile_complete", err: errors.New(`repo: missing required field "User.is_profile_complete"`)}
	}
	if _, ok := _c.mutation.IsHero(); !ok {
		return &ValidationError{Name: "is_hero", err: errors.New(`repo: missing required field "User.is_hero"`)}
	}
	if _, ok := _c.mutation.TutorVerified(); !ok {
		return &ValidationError{Name: "tutor_verified", err: errors.New(`repo: missing required field "User.tutor_verified"`)}
	}
	if v, ok := _c.mutation.DniHash(); ok {
		if err := user.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "User.dni_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := user.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`repo: validator failed for field "User.grade": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ClassSection(); ok {
		if err := user.ClassSectionValidator(v); err != nil {
			return &ValidationError{Name: "class_section", err: fmt.Errorf(`repo: validator failed for field "User.class_section": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WorkArea(); ok {
		if err := user.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "User.work_area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "User.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "User.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailVerified(); !ok {
		return &ValidationError{Name: "email_verified", err: errors.New(`repo: missing required field "User.email_verified"`)}
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		return &ValidationError{Name: "failed_login_attempts", err: errors.New(`repo: missing required field "User.failed_login_attempts"`)}
	}
	if v, ok := _c.mutation.FailedLoginAttempts(); ok {
		if err := user.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "User.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(user.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
		_node.FirstName = &value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(user.FieldLastName, field.TypeString, value)
		_node.LastName = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = &value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
		_node.Role = &value
	}
	if value, ok := _c.mutation.IsProfileComplete(); ok {
		_spec.SetField(user.FieldIsProfileComplete, field.TypeBool, value)
		_node.IsProfileComplete = value
	}
	if value, ok := _c.mutation.InstitutionID(); ok {
		_spec.SetField(user.FieldInstitutionID, field.TypeUUID, value)
		_node.InstitutionID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(user.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.IsHero(); ok {
		_spec.SetField(user.FieldIsHero, field.TypeBool, value)
		_node.IsHero = value
	}
	if value, ok := _c.mutation.TutorVerified(); ok {
		_spec.SetField(user.FieldTutorVerified, field.TypeBool, value)
		_node.TutorVerified = value
	}
	if value, ok := _c.mutation.DniEncrypted(); ok {
		_spec.SetField(user.FieldDniEncrypted, field.TypeString, value)
		_node.DniEncrypted = &value
	}
	if value, ok := _c.mutation.DniHash(); ok {
		_spec.SetField(user.FieldDniHash, field.TypeString, value)
		_node.DniHash = &value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(user.FieldGrade, field.TypeString, value)
		_node.Grade = &value
	}
	if value, ok := _c.mutation.ClassSection(); ok {
		_spec.SetField(user.FieldClassSection, field.TypeString, value)
		_node.ClassSection = &value
	}
	if value, ok := _c.mutation.WorkArea(); ok {
		_spec.SetField(user.FieldWorkArea, field.TypeString, value)
		_node.WorkArea = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
		_node.EmailVerified = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(user.FieldFailedLoginAttempts, field.TypeInt, value)
		_node.FailedLoginAttempts = value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(user.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = &value
	}
	if value, ok := _c.mutation.LastFailedLoginAt(); ok {
		_spec.SetField(user.FieldLastFailedLoginAt, field.TypeTime, value)
		_node.LastFailedLoginAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(user.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.SuspendedAt(); ok {
		_spec.SetField(user.FieldSuspendedAt, field.TypeTime, value)
		_node.SuspendedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsert) SetUpdatedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateUpdatedAt() *UserUpsert {
	u.SetExcluded(user.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *UserUpsert) SetDeletedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateDeletedAt() *UserUpsert {
	u.SetExcluded(user.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *UserUpsert) ClearDeletedAt() *UserUpsert {
	u.SetNull(user.FieldDeletedAt)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsert) SetFirstName(v string) *UserUpsert {
	u.Set(user.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsert) UpdateFirstName() *UserUpsert {
	u.SetExcluded(user.FieldFirstName)
	return u
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsert) ClearFirstName() *UserUpsert {
	u.SetNull(user.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *UserUpsert) SetLastName(v string) *UserUpsert {
	u.Set(user.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastName() *UserUpsert {
	u.SetExcluded(user.FieldLastName)
	return u
}

// ClearLastName clears the value of the "last_name" field.
func (u *UserUpsert) ClearLastName() *UserUpsert {
	u.SetNull(user.FieldLastName)
	return u
}

// SetEmail sets the "email" field.
func (u *UserUpsert) SetEmail(v string) *UserUpsert {
	u.Set(user.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmail() *UserUpsert {
	u.SetExcluded(user.FieldEmail)
	return u
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsert) SetPasswordHash(v string) *UserUpsert {
	u.Set(user.FieldPasswordHash, v)
	return u
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsert) UpdatePasswordHash() *UserUpsert {
	u.SetExcluded(user.FieldPasswordHash)
	return u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *UserUpsert) ClearPasswordHash() *UserUpsert {
	u.SetNull(user.FieldPasswordHash)
	return u
}

// SetRole sets the "role" field.
func (u *UserUpsert) SetRole(v user.Role) *UserUpsert {
	u.Set(user.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsert) UpdateRole() *UserUpsert {
	u.SetExcluded(user.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *UserUpsert) ClearRole() *UserUpsert {
	u.SetNull(user.FieldRole)
	return u
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (u *UserUpsert) SetIsProfileComplete(v bool) *UserUpsert {
	u.Set(user.FieldIsProfileComplete, v)
	return u
}

// UpdateIsProfileComplete sets the "is_profile_complete" field to the value that was provided on create.
func (u *UserUpsert) UpdateIsProfileComplete() *UserUpsert {
	u.SetExcluded(user.FieldIsProfileComplete)
	return u
}

// SetInstitutionID sets the "institution_id" field.
func (u *UserUpsert) SetInstitutionID(v uuid.UUID) *UserUpsert {
	u.Set(user.FieldInstitutionID, v)
	return u
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *UserUpsert) UpdateInstitutionID() *UserUpsert {
	u.SetExcluded(user.FieldInstitutionID)
	return u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *UserUpsert) ClearInstitutionID() *UserUpsert {
	u.SetNull(user.FieldInstitutionID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *UserUpsert) SetGroupID(v uuid.UUID) *UserUpsert {
	u.Set(user.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *UserUpsert) UpdateGroupID() *UserUpsert {
	u.SetExcluded(user.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *UserUpsert) ClearGroupID() *UserUpsert {
	u.SetNull(user.FieldGroupID)
	return u
}

// SetIsHero sets the "is_hero" field.
func (u *UserUpsert) SetIsHero(v bool) *UserUpsert {
	u.Set(user.FieldIsHero, v)
	return u
}

// UpdateIsHero sets the "is_hero" field to the value that was provided on create.
func (u *UserUpsert) UpdateIsHero() *UserUpsert {
	u.SetExcluded(user.FieldIsHero)
	return u
}

// SetTutorVerified sets the "tutor_verified" field.
func (u *UserUpsert) SetTutorVerified(v bool) *UserUpsert {
	u.Set(user.FieldTutorVerified, v)
	return u
}

// UpdateTutorVerified sets the "tutor_verified" field to the value that was provided on create.
func (u *UserUpsert) UpdateTutorVerified() *UserUpsert {
	u.SetExcluded(user.FieldTutorVerified)
	return u
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (u *UserUpsert) SetDniEncrypted(v string) *UserUpsert {
	u.Set(user.FieldDniEncrypted, v)
	return u
}

// UpdateDniEncrypted sets the "dni_encrypted" field to the value that was provided on create.
func (u *UserUpsert) UpdateDniEncrypted() *UserUpsert {
	u.SetExcluded(user.FieldDniEncrypted)
	return u
}

// ClearDniEncrypted clears the value of the "dni_encrypted" field.
func (u *UserUpsert) ClearDniEncrypted() *UserUpsert {
	u.SetNull(user.FieldDniEncrypted)
	return u
}

// SetDniHash sets the "dni_hash" field.
func (u *UserUpsert) SetDniHash(v string) *UserUpsert {
	u.Set(user.FieldDniHash, v)
	return u
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *UserUpsert) UpdateDniHash() *UserUpsert {
	u.SetExcluded(user.FieldDniHash)
	return u
}

// ClearDniHash clears the value of the "dni_hash" field.
func (u *UserUpsert) ClearDniHash() *UserUpsert {
	u.SetNull(user.FieldDniHash)
	return u
}

// SetGrade sets the "grade" field.
func (u *UserUpsert) SetGrade(v string) *UserUpsert {
	u.Set(user.FieldGrade, v)
	return u
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *UserUpsert) UpdateGrade() *UserUpsert {
	u.SetExcluded(user.FieldGrade)
	return u
}

// ClearGrade clears the value of the "grade" field.
func (u *UserUpsert) ClearGrade() *UserUpsert {
	u.SetNull(user.FieldGrade)
	return u
}

// SetClassSection sets the "class_section" field.
func (u *UserUpsert) SetClassSection(v string) *UserUpsert {
	u.Set(user.FieldClassSection, v)
	return u
}

// UpdateClassSection sets the "class_section" field to the value that was provided on create.
func (u *UserUpsert) UpdateClassSection() *UserUpsert {
	u.SetExcluded(user.FieldClassSection)
	return u
}

// ClearClassSection clears the value of the "class_section" field.
func (u *UserUpsert) ClearClassSection() *UserUpsert {
	u.SetNull(user.FieldClassSection)
	return u
}

// SetWorkArea sets the "work_area" field.
func (u *UserUpsert) SetWorkArea(v string) *UserUpsert {
	u.Set(user.FieldWorkArea, v)
	return u
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *UserUpsert) UpdateWorkArea() *UserUpsert {
	u.SetExcluded(user.FieldWorkArea)
	return u
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *UserUpsert) ClearWorkArea() *UserUpsert {
	u.SetNull(user.FieldWorkArea)
	return u
}

// SetStatus sets the "status" field.
func (u *UserUpsert) SetStatus(v user.Status) *UserUpsert {
	u.Set(user.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserUpsert) UpdateStatus() *UserUpsert {
	u.SetExcluded(user.FieldStatus)
	return u
}

// SetEmailVerified sets the "email_verified" field.
func (u *UserUpsert) SetEmailVerified(v bool) *UserUpsert {
	u.Set(user.FieldEmailVerified, v)
	return u
}

// UpdateEmailVerified sets the "email_verified" field to the value that was provided on create.
func (u *UserUpsert) UpdateEmailVerified() *UserUpsert {
	u.SetExcluded(user.FieldEmailVerified)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *UserUpsert) SetLastLoginAt(v time.Time) *UserUpsert {
	u.Set(user.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastLoginAt() *UserUpsert {
	u.SetExcluded(user.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *UserUpsert) ClearLastLoginAt() *UserUpsert {
	u.SetNull(user.FieldLastLoginAt)
	return u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *UserUpsert) SetFailedLoginAttempts(v int) *UserUpsert {
	u.Set(user.FieldFailedLoginAttempts, v)
	return u
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *UserUpsert) UpdateFailedLoginAttempts() *UserUpsert {
	u.SetExcluded(user.FieldFailedLoginAttempts)
	return u
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *UserUpsert) AddFailedLoginAttempts(v int) *UserUpsert {
	u.Add(user.FieldFailedLoginAttempts, v)
	return u
}

// SetLockedUntil sets the "locked_until" field.
func (u *UserUpsert) SetLockedUntil(v time.Time) *UserUpsert {
	u.Set(user.FieldLockedUntil, v)
	return u
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *UserUpsert) UpdateLockedUntil() *UserUpsert {
	u.SetExcluded(user.FieldLockedUntil)
	return u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *UserUpsert) ClearLockedUntil() *UserUpsert {
	u.SetNull(user.FieldLockedUntil)
	return u
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *UserUpsert) SetLastFailedLoginAt(v time.Time) *UserUpsert {
	u.Set(user.FieldLastFailedLoginAt, v)
	return u
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastFailedLoginAt() *UserUpsert {
	u.SetExcluded(user.FieldLastFailedLoginAt)
	return u
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *UserUpsert) ClearLastFailedLoginAt() *UserUpsert {
	u.SetNull(user.FieldLastFailedLoginAt)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *UserUpsert) SetMetadata(v map[string]interface{}) *UserUpsert {
	u.Set(user.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *UserUpsert) UpdateMetadata() *UserUpsert {
	u.SetExcluded(user.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *UserUpsert) ClearMetadata() *UserUpsert {
	u.SetNull(user.FieldMetadata)
	return u
}

// SetSuspendedAt sets the "suspended_at" field.
func (u *UserUpsert) SetSuspendedAt(v time.Time) *UserUpsert {
	u.Set(user.FieldSuspendedAt, v)
	return u
}

// UpdateSuspendedAt sets the "suspended_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateSuspendedAt() *UserUpsert {
	u.SetExcluded(user.FieldSuspendedAt)
	return u
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (u *UserUpsert) ClearSuspendedAt() *UserUpsert {
	u.SetNull(user.FieldSuspendedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertOne) SetUpdatedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateUpdatedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *UserUpsertOne) SetDeletedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDeletedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *UserUpsertOne) ClearDeletedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsertOne) SetFirstName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateFirstName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsertOne) ClearFirstName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *UserUpsertOne) SetLastName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *UserUpsertOne) ClearLastName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertOne) SetEmail(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmail() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertOne) SetPasswordHash(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertOne) UpdatePasswordHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *UserUpsertOne) ClearPasswordHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearPasswordHash()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertOne) SetRole(v user.Role) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateRole() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *UserUpsertOne) ClearRole() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearRole()
	})
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (u *UserUpsertOne) SetIsProfileComplete(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetIsProfileComplete(v)
	})
}

// UpdateIsProfileComplete sets the "is_profile_complete" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateIsProfileComplete() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsProfileComplete()
	})
}

// SetInstitutionID sets the "institution_id" field.
func (u *UserUpsertOne) SetInstitutionID(v uuid.UUID) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateInstitutionID() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *UserUpsertOne) ClearInstitutionID() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *UserUpsertOne) SetGroupID(v uuid.UUID) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateGroupID() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *UserUpsertOne) ClearGroupID() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearGroupID()
	})
}

// SetIsHero sets the "is_hero" field.
func (u *UserUpsertOne) SetIsHero(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetIsHero(v)
	})
}

// UpdateIsHero sets the "is_hero" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateIsHero() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsHero()
	})
}

// SetTutorVerified sets the "tutor_verified" field.
func (u *UserUpsertOne) SetTutorVerified(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTutorVerified(v)
	})
}

// UpdateTutorVerified sets the "tutor_verified" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTutorVerified() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTutorVerified()
	})
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (u *UserUpsertOne) SetDniEncrypted(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDniEncrypted(v)
	})
}

// UpdateDniEncrypted sets the "dni_encrypted" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDniEncrypted() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDniEncrypted()
	})
}

// ClearDniEncrypted clears the value of the "dni_encrypted" field.
func (u *UserUpsertOne) ClearDniEncrypted() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearDniEncrypted()
	})
}

// SetDniHash sets the "dni_hash" field.
func (u *UserUpsertOne) SetDniHash(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDniHash(v)
	})
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDniHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDniHash()
	})
}

// ClearDniHash clears the value of the "dni_hash" field.
func (u *UserUpsertOne) ClearDniHash() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearDniHash()
	})
}

// SetGrade sets the "grade" field.
func (u *UserUpsertOne) SetGrade(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateGrade() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateGrade()
	})
}

// ClearGrade clears the value of the "grade" field.
func (u *UserUpsertOne) ClearGrade() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearGrade()
	})
}

// SetClassSection sets the "class_section" field.
func (u *UserUpsertOne) SetClassSection(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetClassSection(v)
	})
}

// UpdateClassSection sets the "class_section" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateClassSection() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateClassSection()
	})
}

// ClearClassSection clears the value of the "class_section" field.
func (u *UserUpsertOne) ClearClassSection() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearClassSection()
	})
}

// SetWorkArea sets the "work_area" field.
func (u *UserUpsertOne) SetWorkArea(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetWorkArea(v)
	})
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateWorkArea() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateWorkArea()
	})
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *UserUpsertOne) ClearWorkArea() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearWorkArea()
	})
}

// SetStatus sets the "status" field.
func (u *UserUpsertOne) SetStatus(v user.Status) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateStatus() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStatus()
	})
}

// SetEmailVerified sets the "email_verified" field.
func (u *UserUpsertOne) SetEmailVerified(v bool) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetEmailVerified(v)
	})
}

// UpdateEmailVerified sets the "email_verified" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateEmailVerified() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmailVerified()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *UserUpsertOne) SetLastLoginAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastLoginAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *UserUpsertOne) ClearLastLoginAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *UserUpsertOne) SetFailedLoginAttempts(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *UserUpsertOne) AddFailedLoginAttempts(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateFailedLoginAttempts() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *UserUpsertOne) SetLockedUntil(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLockedUntil() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *UserUpsertOne) ClearLockedUntil() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLockedUntil()
	})
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *UserUpsertOne) SetLastFailedLoginAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastFailedLoginAt(v)
	})
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastFailedLoginAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastFailedLoginAt()
	})
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *UserUpsertOne) ClearLastFailedLoginAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastFailedLoginAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *UserUpsertOne) SetMetadata(v map[string]interface{}) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateMetadata() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *UserUpsertOne) ClearMetadata() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearMetadata()
	})
}

// SetSuspendedAt sets the "suspended_at" field.
func (u *UserUpsertOne) SetSuspendedAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetSuspendedAt(v)
	})
}

// UpdateSuspendedAt sets the "suspended_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateSuspendedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSuspendedAt()
	})
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (u *UserUpsertOne) ClearSuspendedAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearSuspendedAt()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UserUpsertOne.ID is not supported by MySQL driver. Use UserUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserUpsertBulk) SetUpdatedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateUpdatedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *UserUpsertBulk) SetDeletedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDeletedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *UserUpsertBulk) ClearDeletedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearDeletedAt()
	})
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsertBulk) SetFirstName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateFirstName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsertBulk) ClearFirstName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *UserUpsertBulk) SetLastName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastName()
	})
}

// ClearLastName clears the value of the "last_name" field.
func (u *UserUpsertBulk) ClearLastName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastName()
	})
}

// SetEmail sets the "email" field.
func (u *UserUpsertBulk) SetEmail(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmail() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmail()
	})
}

// SetPasswordHash sets the "password_hash" field.
func (u *UserUpsertBulk) SetPasswordHash(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetPasswordHash(v)
	})
}

// UpdatePasswordHash sets the "password_hash" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdatePasswordHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdatePasswordHash()
	})
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (u *UserUpsertBulk) ClearPasswordHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearPasswordHash()
	})
}

// SetRole sets the "role" field.
func (u *UserUpsertBulk) SetRole(v user.Role) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateRole() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *UserUpsertBulk) ClearRole() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearRole()
	})
}

// SetIsProfileComplete sets the "is_profile_complete" field.
func (u *UserUpsertBulk) SetIsProfileComplete(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetIsProfileComplete(v)
	})
}

// UpdateIsProfileComplete sets the "is_profile_complete" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateIsProfileComplete() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsProfileComplete()
	})
}

// SetInstitutionID sets the "institution_id" field.
func (u *UserUpsertBulk) SetInstitutionID(v uuid.UUID) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateInstitutionID() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *UserUpsertBulk) ClearInstitutionID() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *UserUpsertBulk) SetGroupID(v uuid.UUID) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateGroupID() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *UserUpsertBulk) ClearGroupID() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearGroupID()
	})
}

// SetIsHero sets the "is_hero" field.
func (u *UserUpsertBulk) SetIsHero(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetIsHero(v)
	})
}

// UpdateIsHero sets the "is_hero" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateIsHero() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateIsHero()
	})
}

// SetTutorVerified sets the "tutor_verified" field.
func (u *UserUpsertBulk) SetTutorVerified(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTutorVerified(v)
	})
}

// UpdateTutorVerified sets the "tutor_verified" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTutorVerified() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTutorVerified()
	})
}

// SetDniEncrypted sets the "dni_encrypted" field.
func (u *UserUpsertBulk) SetDniEncrypted(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDniEncrypted(v)
	})
}

// UpdateDniEncrypted sets the "dni_encrypted" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDniEncrypted() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDniEncrypted()
	})
}

// ClearDniEncrypted clears the value of the "dni_encrypted" field.
func (u *UserUpsertBulk) ClearDniEncrypted() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearDniEncrypted()
	})
}

// SetDniHash sets the "dni_hash" field.
func (u *UserUpsertBulk) SetDniHash(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDniHash(v)
	})
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDniHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDniHash()
	})
}

// ClearDniHash clears the value of the "dni_hash" field.
func (u *UserUpsertBulk) ClearDniHash() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearDniHash()
	})
}

// SetGrade sets the "grade" field.
func (u *UserUpsertBulk) SetGrade(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetGrade(v)
	})
}

// UpdateGrade sets the "grade" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateGrade() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateGrade()
	})
}

// ClearGrade clears the value of the "grade" field.
func (u *UserUpsertBulk) ClearGrade() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearGrade()
	})
}

// SetClassSection sets the "class_section" field.
func (u *UserUpsertBulk) SetClassSection(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetClassSection(v)
	})
}

// UpdateClassSection sets the "class_section" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateClassSection() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateClassSection()
	})
}

// ClearClassSection clears the value of the "class_section" field.
func (u *UserUpsertBulk) ClearClassSection() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearClassSection()
	})
}

// SetWorkArea sets the "work_area" field.
func (u *UserUpsertBulk) SetWorkArea(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetWorkArea(v)
	})
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateWorkArea() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateWorkArea()
	})
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *UserUpsertBulk) ClearWorkArea() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearWorkArea()
	})
}

// SetStatus sets the "status" field.
func (u *UserUpsertBulk) SetStatus(v user.Status) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateStatus() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateStatus()
	})
}

// SetEmailVerified sets the "email_verified" field.
func (u *UserUpsertBulk) SetEmailVerified(v bool) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetEmailVerified(v)
	})
}

// UpdateEmailVerified sets the "email_verified" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateEmailVerified() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateEmailVerified()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *UserUpsertBulk) SetLastLoginAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastLoginAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *UserUpsertBulk) ClearLastLoginAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastLoginAt()
	})
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (u *UserUpsertBulk) SetFailedLoginAttempts(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetFailedLoginAttempts(v)
	})
}

// AddFailedLoginAttempts adds v to the "failed_login_attempts" field.
func (u *UserUpsertBulk) AddFailedLoginAttempts(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddFailedLoginAttempts(v)
	})
}

// UpdateFailedLoginAttempts sets the "failed_login_attempts" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateFailedLoginAttempts() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFailedLoginAttempts()
	})
}

// SetLockedUntil sets the "locked_until" field.
func (u *UserUpsertBulk) SetLockedUntil(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLockedUntil(v)
	})
}

// UpdateLockedUntil sets the "locked_until" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLockedUntil() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLockedUntil()
	})
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (u *UserUpsertBulk) ClearLockedUntil() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLockedUntil()
	})
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (u *UserUpsertBulk) SetLastFailedLoginAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastFailedLoginAt(v)
	})
}

// UpdateLastFailedLoginAt sets the "last_failed_login_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastFailedLoginAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastFailedLoginAt()
	})
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (u *UserUpsertBulk) ClearLastFailedLoginAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearLastFailedLoginAt()
	})
}

// SetMetadata sets the "metadata" field.
func (u *UserUpsertBulk) SetMetadata(v map[string]interface{}) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateMetadata() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *UserUpsertBulk) ClearMetadata() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearMetadata()
	})
}

// SetSuspendedAt sets the "suspended_at" field.
func (u *UserUpsertBulk) SetSuspendedAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetSuspendedAt(v)
	})
}

// UpdateSuspendedAt sets the "suspended_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateSuspendedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSuspendedAt()
	})
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (u *UserUpsertBulk) ClearSuspendedAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearSuspendedAt()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
