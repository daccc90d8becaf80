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
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
)

// TutorGroupCreate is the builder for creating a TutorGroup entity.
type TutorGroupCreate struct {
	config
	mutation *TutorGroupMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorGroupCreate) SetCreatedAt(v time.Time) *TutorGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableCreatedAt(v *time.Time) *TutorGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TutorGroupCreate) SetUpdatedAt(v time.Time) *TutorGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableUpdatedAt(v *time.Time) *TutorGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TutorGroupCreate) SetDeletedAt(v time.Time) *TutorGroupCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableDeletedAt(v *time.Time) *TutorGroupCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TutorGroupCreate) SetName(v string) *TutorGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTutorID sets the "tutor_id" field.
func (_c *TutorGroupCreate) SetTutorID(v uuid.UUID) *TutorGroupCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetJoinCode sets the "join_code" field.
func (_c *TutorGroupCreate) SetJoinCode(v string) *TutorGroupCreate {
	_c.mutation.SetJoinCode(v)
	return _c
}

// SetStudentLimit sets the "student_limit" field.
func (_c *TutorGroupCreate) SetStudentLimit(v int) *TutorGroupCreate {
	_c.mutation.SetStudentLimit(v)
	return _c
}

// SetNillableStudentLimit sets the "student_limit" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableStudentLimit(v *int) *TutorGroupCreate {
	if v != nil {
		_c.SetStudentLimit(*v)
	}
	return _c
}

// SetTutorLimit sets the "tutor_limit" field.
func (_c *TutorGroupCreate) SetTutorLimit(v int) *TutorGroupCreate {
	_c.mutation.SetTutorLimit(v)
	return _c
}

// SetNillableTutorLimit sets the "tutor_limit" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableTutorLimit(v *int) *TutorGroupCreate {
	if v != nil {
		_c.SetTutorLimit(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TutorGroupCreate) SetIsActive(v bool) *TutorGroupCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableIsActive(v *bool) *TutorGroupCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TutorGroupCreate) SetID(v uuid.UUID) *TutorGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TutorGroupCreate) SetNillableID(v *uuid.UUID) *TutorGroupCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TutorGroupMutation object of the builder.
func (_c *TutorGroupCreate) Mutation() *TutorGroupMutation {
	return _c.mutation
}

// Save creates the TutorGroup in the database.
func (_c *TutorGroupCreate) Save(ctx context.Context) (*TutorGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorGroupCreate) SaveX(ctx context.Context) *TutorGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorGroupCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tutorgroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.StudentLimit(); !ok {
		v := tutorgroup.DefaultStudentLimit
		_c.mutation.SetStudentLimit(v)
	}
	if _, ok := _c.mutation.TutorLimit(); !ok {
		v := tutorgroup.DefaultTutorLimit
		_c.mutation.SetTutorLimit(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := tutorgroup.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tutorgroup.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorGroupCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TutorGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TutorGroup.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "TutorGroup.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := tutorgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`repo: missing required field "TutorGroup.tutor_id"`)}
	}
	if _, ok := _c.mutation.JoinCode(); !ok {
		return &ValidationError{Name: "join_code", err: errors.New(`repo: missing required field "TutorGroup.join_code"`)}
	}
	if v, ok := _c.mutation.JoinCode(); ok {
		if err := tutorgroup.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.join_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentLimit(); !ok {
		return &ValidationError{Name: "student_limit", err: errors.New(`repo: missing required field "TutorGroup.student_limit"`)}
	}
	if v, ok := _c.mutation.StudentLimit(); ok {
		if err := tutorgroup.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.student_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TutorLimit(); !ok {
		return &ValidationError{Name: "tutor_limit", err: errors.New(`repo: missing required field "TutorGroup.tutor_limit"`)}
	}
	if v, ok := _c.mutation.TutorLimit(); ok {
		if err := tutorgroup.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.tutor_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "TutorGroup.is_active"`)}
	}
	return nil
}

func (_c *TutorGroupCreate) sqlSave(ctx context.Context) (*TutorGroup, error) {
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

func (_c *TutorGroupCreate) createSpec() (*TutorGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorgroup.Table, sqlgraph.NewFieldSpec(tutorgroup.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorgroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(tutorgroup.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tutorgroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(tutorgroup.FieldTutorID, field.TypeUUID, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.JoinCode(); ok {
		_spec.SetField(tutorgroup.FieldJoinCode, field.TypeString, value)
		_node.JoinCode = value
	}
	if value, ok := _c.mutation.StudentLimit(); ok {
		_spec.SetField(tutorgroup.FieldStudentLimit, field.TypeInt, value)
		_node.StudentLimit = value
	}
	if value, ok := _c.mutation.TutorLimit(); ok {
		_spec.SetField(tutorgroup.FieldTutorLimit, field.TypeInt, value)
		_node.TutorLimit = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(tutorgroup.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorGroup.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorGroupCreate) OnConflict(opts ...sql.ConflictOption) *TutorGroupUpsertOne {
	_c.conflict = opts
	return &TutorGroupUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorGroupCreate) OnConflictColumns(columns ...string) *TutorGroupUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorGroupUpsertOne{
		create: _c,
	}
}

type (
	// TutorGroupUpsertOne is the builder for "upsert"-ing
	//  one TutorGroup node.
	TutorGroupUpsertOne struct {
		create *TutorGroupCreate
	}

	// TutorGroupUpsert is the "OnConflict" setter.
	TutorGroupUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorGroupUpsert) SetUpdatedAt(v time.Time) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateUpdatedAt() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TutorGroupUpsert) SetDeletedAt(v time.Time) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateDeletedAt() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TutorGroupUpsert) ClearDeletedAt() *TutorGroupUpsert {
	u.SetNull(tutorgroup.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *TutorGroupUpsert) SetName(v string) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateName() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldName)
	return u
}

// SetTutorID sets the "tutor_id" field.
func (u *TutorGroupUpsert) SetTutorID(v uuid.UUID) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldTutorID, v)
	return u
}

// UpdateTutorID sets the "tutor_id" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateTutorID() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldTutorID)
	return u
}

// SetJoinCode sets the "join_code" field.
func (u *TutorGroupUpsert) SetJoinCode(v string) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldJoinCode, v)
	return u
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateJoinCode() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldJoinCode)
	return u
}

// SetStudentLimit sets the "student_limit" field.
func (u *TutorGroupUpsert) SetStudentLimit(v int) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldStudentLimit, v)
	return u
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateStudentLimit() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldStudentLimit)
	return u
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *TutorGroupUpsert) AddStudentLimit(v int) *TutorGroupUpsert {
	u.Add(tutorgroup.FieldStudentLimit, v)
	return u
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *TutorGroupUpsert) SetTutorLimit(v int) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldTutorLimit, v)
	return u
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateTutorLimit() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldTutorLimit)
	return u
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *TutorGroupUpsert) AddTutorLimit(v int) *TutorGroupUpsert {
	u.Add(tutorgroup.FieldTutorLimit, v)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *TutorGroupUpsert) SetIsActive(v bool) *TutorGroupUpsert {
	u.Set(tutorgroup.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TutorGroupUpsert) UpdateIsActive() *TutorGroupUpsert {
	u.SetExcluded(tutorgroup.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorGroupUpsertOne) UpdateNewValues() *TutorGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tutorgroup.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tutorgroup.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TutorGroupUpsertOne) Ignore() *TutorGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorGroupUpsertOne) DoNothing() *TutorGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorGroupCreate.OnConflict
// documentation for more info.
func (u *TutorGroupUpsertOne) Update(set func(*TutorGroupUpsert)) *TutorGroupUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorGroupUpsertOne) SetUpdatedAt(v time.Time) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateUpdatedAt() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TutorGroupUpsertOne) SetDeletedAt(v time.Time) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateDeletedAt() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TutorGroupUpsertOne) ClearDeletedAt() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *TutorGroupUpsertOne) SetName(v string) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateName() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateName()
	})
}

// SetTutorID sets the "tutor_id" field.
func (u *TutorGroupUpsertOne) SetTutorID(v uuid.UUID) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetTutorID(v)
	})
}

// UpdateTutorID sets the "tutor_id" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateTutorID() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateTutorID()
	})
}

// SetJoinCode sets the "join_code" field.
func (u *TutorGroupUpsertOne) SetJoinCode(v string) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetJoinCode(v)
	})
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateJoinCode() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateJoinCode()
	})
}

// SetStudentLimit sets the "student_limit" field.
func (u *TutorGroupUpsertOne) SetStudentLimit(v int) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetStudentLimit(v)
	})
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *TutorGroupUpsertOne) AddStudentLimit(v int) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.AddStudentLimit(v)
	})
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateStudentLimit() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateStudentLimit()
	})
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *TutorGroupUpsertOne) SetTutorLimit(v int) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetTutorLimit(v)
	})
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *TutorGroupUpsertOne) AddTutorLimit(v int) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.AddTutorLimit(v)
	})
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateTutorLimit() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateTutorLimit()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TutorGroupUpsertOne) SetIsActive(v bool) *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TutorGroupUpsertOne) UpdateIsActive() *TutorGroupUpsertOne {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TutorGroupUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TutorGroupCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorGroupUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TutorGroupUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TutorGroupUpsertOne.ID is not supported by MySQL driver. Use TutorGroupUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TutorGroupUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TutorGroupCreateBulk is the builder for creating many TutorGroup entities in bulk.
type TutorGroupCreateBulk struct {
	config
	err      error
	builders []*TutorGroupCreate
	conflict []sql.ConflictOption
}

// Save creates the TutorGroup entities in the database.
func (_c *TutorGroupCreateBulk) Save(ctx context.Context) ([]*TutorGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorGroupMutation)
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
func (_c *TutorGroupCreateBulk) SaveX(ctx context.Context) []*TutorGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorGroup.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorGroupUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorGroupCreateBulk) OnConflict(opts ...sql.ConflictOption) *TutorGroupUpsertBulk {
	_c.conflict = opts
	return &TutorGroupUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorGroupCreateBulk) OnConflictColumns(columns ...string) *TutorGroupUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorGroupUpsertBulk{
		create: _c,
	}
}

// TutorGroupUpsertBulk is the builder for "upsert"-ing
// a bulk of TutorGroup nodes.
type TutorGroupUpsertBulk struct {
	create *TutorGroupCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorgroup.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorGroupUpsertBulk) UpdateNewValues() *TutorGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tutorgroup.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tutorgroup.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorGroup.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TutorGroupUpsertBulk) Ignore() *TutorGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorGroupUpsertBulk) DoNothing() *TutorGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorGroupCreateBulk.OnConflict
// documentation for more info.
func (u *TutorGroupUpsertBulk) Update(set func(*TutorGroupUpsert)) *TutorGroupUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorGroupUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorGroupUpsertBulk) SetUpdatedAt(v time.Time) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateUpdatedAt() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TutorGroupUpsertBulk) SetDeletedAt(v time.Time) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateDeletedAt() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TutorGroupUpsertBulk) ClearDeletedAt() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *TutorGroupUpsertBulk) SetName(v string) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateName() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateName()
	})
}

// SetTutorID sets the "tutor_id" field.
func (u *TutorGroupUpsertBulk) SetTutorID(v uuid.UUID) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetTutorID(v)
	})
}

// UpdateTutorID sets the "tutor_id" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateTutorID() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateTutorID()
	})
}

// SetJoinCode sets the "join_code" field.
func (u *TutorGroupUpsertBulk) SetJoinCode(v string) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetJoinCode(v)
	})
}

// UpdateJoinCode sets the "join_code" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateJoinCode() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateJoinCode()
	})
}

// SetStudentLimit sets the "student_limit" field.
func (u *TutorGroupUpsertBulk) SetStudentLimit(v int) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetStudentLimit(v)
	})
}

// AddStudentLimit adds v to the "student_limit" field.
func (u *TutorGroupUpsertBulk) AddStudentLimit(v int) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.AddStudentLimit(v)
	})
}

// UpdateStudentLimit sets the "student_limit" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateStudentLimit() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateStudentLimit()
	})
}

// SetTutorLimit sets the "tutor_limit" field.
func (u *TutorGroupUpsertBulk) SetTutorLimit(v int) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetTutorLimit(v)
	})
}

// AddTutorLimit adds v to the "tutor_limit" field.
func (u *TutorGroupUpsertBulk) AddTutorLimit(v int) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.AddTutorLimit(v)
	})
}

// UpdateTutorLimit sets the "tutor_limit" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateTutorLimit() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateTutorLimit()
	})
}

// SetIsActive sets the "is_active" field.
func (u *TutorGroupUpsertBulk) SetIsActive(v bool) *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *TutorGroupUpsertBulk) UpdateIsActive() *TutorGroupUpsertBulk {
	return u.Update(func(s *TutorGroupUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *TutorGroupUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TutorGroupCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TutorGroupCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorGroupUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
