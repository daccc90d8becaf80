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
	"github.com/orienta-pe/orienta_backend/internal/repo/institution"
)

// InstitutionCreate is the builder for creating a Institution entity.
type InstitutionCreate struct {
	config
	mutation *InstitutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstitutionCreate) SetCreatedAt(v time.Time) *InstitutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableCreatedAt(v *time.Time) *InstitutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InstitutionCreate) SetUpdatedAt(v time.Time) *InstitutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableUpdatedAt(v *time.Time) *InstitutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InstitutionCreate) SetDeletedAt(v time.Time) *InstitutionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableDeletedAt(v *time.Time) *InstitutionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *InstitutionCreate) SetName(v string) *InstitutionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetJoinCode sets the "join_code" field.
func (_c *InstitutionCreate) SetJoinCode(v string) *InstitutionCreate {
	_c.mutation.SetJoinCode(v)
	return _c
}

// SetStudentLimit sets the "student_limit" field.
func (_c *InstitutionCreate) SetStudentLimit(v int) *InstitutionCreate {
	_c.mutation.SetStudentLimit(v)
	return _c
}

// SetTutorLimit sets the "tutor_limit" field.
func (_c *InstitutionCreate) SetTutorLimit(v int) *InstitutionCreate {
	_c.mutation.SetTutorLimit(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InstitutionCreate) SetDescription(v string) *InstitutionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableDescription(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDirectorName sets the "director_name" field.
func (_c *InstitutionCreate) SetDirectorName(v string) *InstitutionCreate {
	_c.mutation.SetDirectorName(v)
	return _c
}

// SetNillableDirectorName sets the "director_name" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableDirectorName(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetDirectorName(*v)
	}
	return _c
}

// SetDirectorEmail sets the "director_email" field.
func (_c *InstitutionCreate) SetDirectorEmail(v string) *InstitutionCreate {
	_c.mutation.SetDirectorEmail(v)
	return _c
}

// SetNillableDirectorEmail sets the "director_email" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableDirectorEmail(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetDirectorEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *InstitutionCreate) SetPhone(v string) *InstitutionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillablePhone(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *InstitutionCreate) SetAddress(v string) *InstitutionCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableAddress(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *InstitutionCreate) SetCity(v string) *InstitutionCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableCity(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *InstitutionCreate) SetIsActive(v bool) *InstitutionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableIsActive(v *bool) *InstitutionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstitutionCreate) SetID(v uuid.UUID) *InstitutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableID(v *uuid.UUID) *InstitutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InstitutionMutation object of the builder.
func (_c *InstitutionCreate) Mutation() *InstitutionMutation {
	return _c.mutation
}

// Save creates the Institution in the database.
func (_c *InstitutionCreate) Save(ctx context.Context) (*Institution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstitutionCreate) SaveX(ctx context.Context) *Institution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstitutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := institution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := institution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := institution.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := institution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstitutionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Institution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Institution.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Institution.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Institution.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JoinCode(); !ok {
		return &ValidationError{Name: "join_code", err: errors.New(`repo: missing required field "Institution.join_code"`)}
	}
	if v, ok := _c.mutation.JoinCode(); ok {
		if err := institution.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "Institution.join_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentLimit(); !ok {
		return &ValidationError{Name: "student_limit", err: errors.New(`repo: missing required field "Institution.student_limit"`)}
	}
	if v, ok := _c.mutation.StudentLimit(); ok {
		if err := institution.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.student_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TutorLimit(); !ok {
		return &ValidationError{Name: "tutor_limit", err: errors.New(`repo: missing required field "Institution.tutor_limit"`)}
	}
	if v, ok := _c.mutation.TutorLimit(); ok {
		if err := institution.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.tutor_limit": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DirectorName(); ok {
		if err := institution.DirectorNameValidator(v); err != nil {
			return &ValidationError{Name: "director_name", err: fmt.Errorf(`repo: validator failed for field "Institution.director_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DirectorEmail(); ok {
		if err := institution.DirectorEmailValidator(v); err != nil {
			return &ValidationError{Name: "director_email", err: fmt.Errorf(`repo: validator failed for field "Institution.director_email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := institution.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Institution.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := institution.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Institution.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Institution.is_active"`)}
	}
	return nil
}

func (_c *InstitutionCreate) sqlSave(ctx context.Context) (*Institution, error) {
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

func (_c *InstitutionCreate) createSpec() (*Institution, *sqlgraph.CreateSpec) {
	var (
		_node = &Institution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(institution.Table, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(institution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(institution.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(institution.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.JoinCode(); ok {
		_spec.SetField(institution.FieldJoinCode, field.TypeString, value)
		_node.JoinCode = value
	}
	if value, ok := _c.mutation.StudentLimit(); ok {
		_spec.SetField(institution.FieldStudentLimit, field.TypeInt, value)
		_node.StudentLimit = value
	}
	if value, ok := _c.mutation.TutorLimit(); ok {
		_spec.SetField(institution.FieldTutorLimit, field.TypeInt, value)
		_node.TutorLimit = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(institution.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DirectorName(); ok {
		_spec.SetField(institution.FieldDirectorName, field.TypeString, value)
		_node.DirectorName = &value
	}
	if value, ok := _c.mutation.DirectorEmail(); ok {
		_spec.SetField(institution.FieldDirectorEmail, field.TypeString, value)
		_node.DirectorEmail = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(institution.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(institution.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(institution.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Institution.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstitutionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstitutionCreate) OnConflict(opts ...sql.ConflictOption) *InstitutionUpsertOne {
	_c.conflict = opts
	return &InstitutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Institution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstitutionCreate) OnConflictColumns(columns ...string) *InstitutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstitutionUpsertOne{
		create: _c,
	}
}

type (
	// InstitutionUpsertOne is the builder for "upsert"-ing
	//  one Institution node.
	InstitutionUpsertOne struct {
		create *InstitutionCreate
	}

	// InstitutionUpsert is the "OnConflict" setter.
	InstitutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InstitutionUpsert) SetUpdatedAt(v time.Time) *InstitutionUpsert {
	u.Set(institution.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateUpdatedAt() *InstitutionUpsert {
	u.SetExcluded(institution.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InstitutionUpsert) SetDeletedAt(v time.Time) *InstitutionUpsert {
	u.Set(institution.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateDeletedAt() *InstitutionUpsert {
	u.SetExcluded(institution.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InstitutionUpsert) ClearDeletedAt() *InstitutionUpsert {
	u.SetNull(institution.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *InstitutionUpsert) SetName(v string) *InstitutionUpsert {
	u.Set(institution.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateName() *InstitutionUpsert {
	u.SetExcluded(institution.FieldName)
	return u
}

// SetJoinCode sets the "join_code" field.
func (u *InstitutionUpsert) SetJoinCode(v string) *InstitutionUpsert {
	u.Set(institution.FieldJoinCode, v)
	return u
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateJoinCode() *InstitutionUpsert {
	u.SetExcluded(institution.FieldJoinCode)
	return u
}

// SetStudentLimit sets the "student_limit" field.
func (u *InstitutionUpsert) SetStudentLimit(v int) *InstitutionUpsert {
	u.Set(institution.FieldStudentLimit, v)
	return u
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateStudentLimit() *InstitutionUpsert {
	u.SetExcluded(institution.FieldStudentLimit)
	return u
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *InstitutionUpsert) AddStudentLimit(v int) *InstitutionUpsert {
	u.Add(institution.FieldStudentLimit, v)
	return u
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *InstitutionUpsert) SetTutorLimit(v int) *InstitutionUpsert {
	u.Set(institution.FieldTutorLimit, v)
	return u
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateTutorLimit() *InstitutionUpsert {
	u.SetExcluded(institution.FieldTutorLimit)
	return u
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *InstitutionUpsert) AddTutorLimit(v int) *InstitutionUpsert {
	u.Add(institution.FieldTutorLimit, v)
	return u
}

// SetDescription sets the "description" field.
func (u *InstitutionUpsert) SetDescription(v string) *InstitutionUpsert {
	u.Set(institution.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateDescription() *InstitutionUpsert {
	u.SetExcluded(institution.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *InstitutionUpsert) ClearDescription() *InstitutionUpsert {
	u.SetNull(institution.FieldDescription)
	return u
}

// SetDirectorName sets the "director_name" field.
func (u *InstitutionUpsert) SetDirectorName(v string) *InstitutionUpsert {
	u.Set(institution.FieldDirectorName, v)
	return u
}

// UpdateDirectorName sets the "director_name" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateDirectorName() *InstitutionUpsert {
	u.SetExcluded(institution.FieldDirectorName)
	return u
}

// ClearDirectorName clears the value of the "director_name" field.
func (u *InstitutionUpsert) ClearDirectorName() *InstitutionUpsert {
	u.SetNull(institution.FieldDirectorName)
	return u
}

// SetDirectorEmail sets the "director_email" field.
func (u *InstitutionUpsert) SetDirectorEmail(v string) *InstitutionUpsert {
	u.Set(institution.FieldDirectorEmail, v)
	return u
}

// UpdateDirectorEmail sets the "director_email" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateDirectorEmail() *InstitutionUpsert {
	u.SetExcluded(institution.FieldDirectorEmail)
	return u
}

// ClearDirectorEmail clears the value of the "director_email" field.
func (u *InstitutionUpsert) ClearDirectorEmail() *InstitutionUpsert {
	u.SetNull(institution.FieldDirectorEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *InstitutionUpsert) SetPhone(v string) *InstitutionUpsert {
	u.Set(institution.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdatePhone() *InstitutionUpsert {
	u.SetExcluded(institution.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *InstitutionUpsert) ClearPhone() *InstitutionUpsert {
	u.SetNull(institution.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *InstitutionUpsert) SetAddress(v string) *InstitutionUpsert {
	u.Set(institution.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateAddress() *InstitutionUpsert {
	u.SetExcluded(institution.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *InstitutionUpsert) ClearAddress() *InstitutionUpsert {
	u.SetNull(institution.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *InstitutionUpsert) SetCity(v string) *InstitutionUpsert {
	u.Set(institution.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateCity() *InstitutionUpsert {
	u.SetExcluded(institution.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *InstitutionUpsert) ClearCity() *InstitutionUpsert {
	u.SetNull(institution.FieldCity)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *InstitutionUpsert) SetIsActive(v bool) *InstitutionUpsert {
	u.Set(institution.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstitutionUpsert) UpdateIsActive() *InstitutionUpsert {
	u.SetExcluded(institution.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Institution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(institution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstitutionUpsertOne) UpdateNewValues() *InstitutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(institution.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(institution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Institution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InstitutionUpsertOne) Ignore() *InstitutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstitutionUpsertOne) DoNothing() *InstitutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstitutionCreate.OnConflict
// documentation for more info.
func (u *InstitutionUpsertOne) Update(set func(*InstitutionUpsert)) *InstitutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstitutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstitutionUpsertOne) SetUpdatedAt(v time.Time) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateUpdatedAt() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InstitutionUpsertOne) SetDeletedAt(v time.Time) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateDeletedAt() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InstitutionUpsertOne) ClearDeletedAt() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *InstitutionUpsertOne) SetName(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateName() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateName()
	})
}

// SetJoinCode sets the "join_code" field.
func (u *InstitutionUpsertOne) SetJoinCode(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetJoinCode(v)
	})
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateJoinCode() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateJoinCode()
	})
}

// SetStudentLimit sets the "student_limit" field.
func (u *InstitutionUpsertOne) SetStudentLimit(v int) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetStudentLimit(v)
	})
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *InstitutionUpsertOne) AddStudentLimit(v int) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.AddStudentLimit(v)
	})
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateStudentLimit() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateStudentLimit()
	})
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *InstitutionUpsertOne) SetTutorLimit(v int) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetTutorLimit(v)
	})
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *InstitutionUpsertOne) AddTutorLimit(v int) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.AddTutorLimit(v)
	})
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateTutorLimit() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateTutorLimit()
	})
}

// SetDescription sets the "description" field.
func (u *InstitutionUpsertOne) SetDescription(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateDescription() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InstitutionUpsertOne) ClearDescription() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDescription()
	})
}

// SetDirectorName sets the "director_name" field.
func (u *InstitutionUpsertOne) SetDirectorName(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDirectorName(v)
	})
}

// UpdateDirectorName sets the "director_name" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateDirectorName() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDirectorName()
	})
}

// ClearDirectorName clears the value of the "director_name" field.
func (u *InstitutionUpsertOne) ClearDirectorName() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDirectorName()
	})
}

// SetDirectorEmail sets the "director_email" field.
func (u *InstitutionUpsertOne) SetDirectorEmail(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDirectorEmail(v)
	})
}

// UpdateDirectorEmail sets the "director_email" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateDirectorEmail() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDirectorEmail()
	})
}

// ClearDirectorEmail clears the value of the "director_email" field.
func (u *InstitutionUpsertOne) ClearDirectorEmail() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDirectorEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *InstitutionUpsertOne) SetPhone(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdatePhone() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *InstitutionUpsertOne) ClearPhone() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *InstitutionUpsertOne) SetAddress(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateAddress() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *InstitutionUpsertOne) ClearAddress() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *InstitutionUpsertOne) SetCity(v string) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateCity() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *InstitutionUpsertOne) ClearCity() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearCity()
	})
}

// SetIsActive sets the "is_active" field.
func (u *InstitutionUpsertOne) SetIsActive(v bool) *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstitutionUpsertOne) UpdateIsActive() *InstitutionUpsertOne {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *InstitutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstitutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstitutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InstitutionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InstitutionUpsertOne.ID is not supported by MySQL driver. Use InstitutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InstitutionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InstitutionCreateBulk is the builder for creating many Institution entities in bulk.
type InstitutionCreateBulk struct {
	config
	err      error
	builders []*InstitutionCreate
	conflict []sql.ConflictOption
}

// Save creates the Institution entities in the database.
func (_c *InstitutionCreateBulk) Save(ctx context.Context) ([]*Institution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Institution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstitutionMutation)
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
func (_c *InstitutionCreateBulk) SaveX(ctx context.Context) []*Institution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Institution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstitutionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InstitutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InstitutionUpsertBulk {
	_c.conflict = opts
	return &InstitutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Institution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstitutionCreateBulk) OnConflictColumns(columns ...string) *InstitutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstitutionUpsertBulk{
		create: _c,
	}
}

// InstitutionUpsertBulk is the builder for "upsert"-ing
// a bulk of Institution nodes.
type InstitutionUpsertBulk struct {
	create *InstitutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Institution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(institution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstitutionUpsertBulk) UpdateNewValues() *InstitutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(institution.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(institution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Institution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InstitutionUpsertBulk) Ignore() *InstitutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstitutionUpsertBulk) DoNothing() *InstitutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstitutionCreateBulk.OnConflict
// documentation for more info.
func (u *InstitutionUpsertBulk) Update(set func(*InstitutionUpsert)) *InstitutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstitutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InstitutionUpsertBulk) SetUpdatedAt(v time.Time) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateUpdatedAt() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InstitutionUpsertBulk) SetDeletedAt(v time.Time) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateDeletedAt() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InstitutionUpsertBulk) ClearDeletedAt() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *InstitutionUpsertBulk) SetName(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateName() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateName()
	})
}

// SetJoinCode sets the "join_code" field.
func (u *InstitutionUpsertBulk) SetJoinCode(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetJoinCode(v)
	})
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateJoinCode() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateJoinCode()
	})
}

// SetStudentLimit sets the "student_limit" field.
func (u *InstitutionUpsertBulk) SetStudentLimit(v int) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetStudentLimit(v)
	})
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *InstitutionUpsertBulk) AddStudentLimit(v int) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.AddStudentLimit(v)
	})
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateStudentLimit() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateStudentLimit()
	})
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *InstitutionUpsertBulk) SetTutorLimit(v int) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetTutorLimit(v)
	})
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *InstitutionUpsertBulk) AddTutorLimit(v int) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.AddTutorLimit(v)
	})
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateTutorLimit() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateTutorLimit()
	})
}

// SetDescription sets the "description" field.
func (u *InstitutionUpsertBulk) SetDescription(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateDescription() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *InstitutionUpsertBulk) ClearDescription() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDescription()
	})
}

// SetDirectorName sets the "director_name" field.
func (u *InstitutionUpsertBulk) SetDirectorName(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDirectorName(v)
	})
}

// UpdateDirectorName sets the "director_name" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateDirectorName() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDirectorName()
	})
}

// ClearDirectorName clears the value of the "director_name" field.
func (u *InstitutionUpsertBulk) ClearDirectorName() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDirectorName()
	})
}

// SetDirectorEmail sets the "director_email" field.
func (u *InstitutionUpsertBulk) SetDirectorEmail(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetDirectorEmail(v)
	})
}

// UpdateDirectorEmail sets the "director_email" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateDirectorEmail() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateDirectorEmail()
	})
}

// ClearDirectorEmail clears the value of the "director_email" field.
func (u *InstitutionUpsertBulk) ClearDirectorEmail() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearDirectorEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *InstitutionUpsertBulk) SetPhone(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdatePhone() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *InstitutionUpsertBulk) ClearPhone() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *InstitutionUpsertBulk) SetAddress(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateAddress() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *InstitutionUpsertBulk) ClearAddress() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *InstitutionUpsertBulk) SetCity(v string) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateCity() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *InstitutionUpsertBulk) ClearCity() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.ClearCity()
	})
}

// SetIsActive sets the "is_active" field.
func (u *InstitutionUpsertBulk) SetIsActive(v bool) *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *InstitutionUpsertBulk) UpdateIsActive() *InstitutionUpsertBulk {
	return u.Update(func(s *InstitutionUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *InstitutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InstitutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InstitutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstitutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
