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
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorrequest"
)

// TutorRequestCreate is the builder for creating a TutorRequest entity.
type TutorRequestCreate struct {
	config
	mutation *TutorRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorRequestCreate) SetCreatedAt(v time.Time) *TutorRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableCreatedAt(v *time.Time) *TutorRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TutorRequestCreate) SetUpdatedAt(v time.Time) *TutorRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableUpdatedAt(v *time.Time) *TutorRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TutorRequestCreate) SetUserID(v uuid.UUID) *TutorRequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *TutorRequestCreate) SetEmail(v string) *TutorRequestCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *TutorRequestCreate) SetFirstName(v string) *TutorRequestCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *TutorRequestCreate) SetLastName(v string) *TutorRequestCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetDniHash sets the "dni_hash" field.
func (_c *TutorRequestCreate) SetDniHash(v string) *TutorRequestCreate {
	_c.mutation.SetDniHash(v)
	return _c
}

// SetWorkArea sets the "work_area" field.
func (_c *TutorRequestCreate) SetWorkArea(v string) *TutorRequestCreate {
	_c.mutation.SetWorkArea(v)
	return _c
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableWorkArea(v *string) *TutorRequestCreate {
	if v != nil {
		_c.SetWorkArea(*v)
	}
	return _c
}

// SetMotivation sets the "motivation" field.
func (_c *TutorRequestCreate) SetMotivation(v string) *TutorRequestCreate {
	_c.mutation.SetMotivation(v)
	return _c
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableMotivation(v *string) *TutorRequestCreate {
	if v != nil {
		_c.SetMotivation(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TutorRequestCreate) SetStatus(v tutorrequest.Status) *TutorRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableStatus(v *tutorrequest.Status) *TutorRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *TutorRequestCreate) SetRejectionReason(v string) *TutorRequestCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableRejectionReason(v *string) *TutorRequestCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *TutorRequestCreate) SetDecidedAt(v time.Time) *TutorRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableDecidedAt(v *time.Time) *TutorRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *TutorRequestCreate) SetDecidedBy(v uuid.UUID) *TutorRequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableDecidedBy(v *uuid.UUID) *TutorRequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TutorRequestCreate) SetID(v uuid.UUID) *TutorRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TutorRequestCreate) SetNillableID(v *uuid.UUID) *TutorRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TutorRequestMutation object of the builder.
func (_c *TutorRequestCreate) Mutation() *TutorRequestMutation {
	return _c.mutation
}

// Save creates the TutorRequest in the database.
func (_c *TutorRequestCreate) Save(ctx context.Context) (*TutorRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorRequestCreate) SaveX(ctx context.Context) *TutorRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tutorrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := tutorrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tutorrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TutorRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TutorRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "TutorRequest.user_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "TutorRequest.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := tutorrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "TutorRequest.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := tutorrequest.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "TutorRequest.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := tutorrequest.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.last_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DniHash(); !ok {
		return &ValidationError{Name: "dni_hash", err: errors.New(`repo: missing required field "TutorRequest.dni_hash"`)}
	}
	if v, ok := _c.mutation.DniHash(); ok {
		if err := tutorrequest.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.dni_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.WorkArea(); ok {
		if err := tutorrequest.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.work_area": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TutorRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tutorrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TutorRequestCreate) sqlSave(ctx context.Context) (*TutorRequest, error) {
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

func (_c *TutorRequestCreate) createSpec() (*TutorRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorrequest.Table, sqlgraph.NewFieldSpec(tutorrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(tutorrequest.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(tutorrequest.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(tutorrequest.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(tutorrequest.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.DniHash(); ok {
		_spec.SetField(tutorrequest.FieldDniHash, field.TypeString, value)
		_node.DniHash = value
	}
	if value, ok := _c.mutation.WorkArea(); ok {
		_spec.SetField(tutorrequest.FieldWorkArea, field.TypeString, value)
		_node.WorkArea = &value
	}
	if value, ok := _c.mutation.Motivation(); ok {
		_spec.SetField(tutorrequest.FieldMotivation, field.TypeString, value)
		_node.Motivation = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tutorrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(tutorrequest.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(tutorrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(tutorrequest.FieldDecidedBy, field.TypeUUID, value)
		_node.DecidedBy = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorRequestCreate) OnConflict(opts ...sql.ConflictOption) *TutorRequestUpsertOne {
	_c.conflict = opts
	return &TutorRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorRequestCreate) OnConflictColumns(columns ...string) *TutorRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorRequestUpsertOne{
		create: _c,
	}
}

type (
	// TutorRequestUpsertOne is the builder for "upsert"-ing
	//  one TutorRequest node.
	TutorRequestUpsertOne struct {
		create *TutorRequestCreate
	}

	// TutorRequestUpsert is the "OnConflict" setter.
	TutorRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorRequestUpsert) SetUpdatedAt(v time.Time) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateUpdatedAt() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *TutorRequestUpsert) SetUserID(v uuid.UUID) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateUserID() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldUserID)
	return u
}

// SetEmail sets the "email" field.
func (u *TutorRequestUpsert) SetEmail(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateEmail() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldEmail)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *TutorRequestUpsert) SetFirstName(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateFirstName() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldFirstName)
	return u
}

// SetLastName sets the "last_name" field.
func (u *TutorRequestUpsert) SetLastName(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldLastName, v)
	return u
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateLastName() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldLastName)
	return u
}

// SetDniHash sets the "dni_hash" field.
func (u *TutorRequestUpsert) SetDniHash(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldDniHash, v)
	return u
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateDniHash() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldDniHash)
	return u
}

// SetWorkArea sets the "work_area" field.
func (u *TutorRequestUpsert) SetWorkArea(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldWorkArea, v)
	return u
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateWorkArea() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldWorkArea)
	return u
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *TutorRequestUpsert) ClearWorkArea() *TutorRequestUpsert {
	u.SetNull(tutorrequest.FieldWorkArea)
	return u
}

// SetMotivation sets the "motivation" field.
func (u *TutorRequestUpsert) SetMotivation(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldMotivation, v)
	return u
}

// UpdateMotivation sets the "motivation" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateMotivation() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldMotivation)
	return u
}

// ClearMotivation clears the value of the "motivation" field.
func (u *TutorRequestUpsert) ClearMotivation() *TutorRequestUpsert {
	u.SetNull(tutorrequest.FieldMotivation)
	return u
}

// SetStatus sets the "status" field.
func (u *TutorRequestUpsert) SetStatus(v tutorrequest.Status) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateStatus() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldStatus)
	return u
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *TutorRequestUpsert) SetRejectionReason(v string) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldRejectionReason, v)
	return u
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateRejectionReason() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldRejectionReason)
	return u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *TutorRequestUpsert) ClearRejectionReason() *TutorRequestUpsert {
	u.SetNull(tutorrequest.FieldRejectionReason)
	return u
}

// SetDecidedAt sets the "decided_at" field.
func (u *TutorRequestUpsert) SetDecidedAt(v time.Time) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldDecidedAt, v)
	return u
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateDecidedAt() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldDecidedAt)
	return u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *TutorRequestUpsert) ClearDecidedAt() *TutorRequestUpsert {
	u.SetNull(tutorrequest.FieldDecidedAt)
	return u
}

// SetDecidedBy sets the "decided_by" field.
func (u *TutorRequestUpsert) SetDecidedBy(v uuid.UUID) *TutorRequestUpsert {
	u.Set(tutorrequest.FieldDecidedBy, v)
	return u
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *TutorRequestUpsert) UpdateDecidedBy() *TutorRequestUpsert {
	u.SetExcluded(tutorrequest.FieldDecidedBy)
	return u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *TutorRequestUpsert) ClearDecidedBy() *TutorRequestUpsert {
	u.SetNull(tutorrequest.FieldDecidedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorRequestUpsertOne) UpdateNewValues() *TutorRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tutorrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tutorrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TutorRequestUpsertOne) Ignore() *TutorRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorRequestUpsertOne) DoNothing() *TutorRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorRequestCreate.OnConflict
// documentation for more info.
func (u *TutorRequestUpsertOne) Update(set func(*TutorRequestUpsert)) *TutorRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorRequestUpsertOne) SetUpdatedAt(v time.Time) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateUpdatedAt() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *TutorRequestUpsertOne) SetUserID(v uuid.UUID) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateUserID() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateUserID()
	})
}

// SetEmail sets the "email" field.
func (u *TutorRequestUpsertOne) SetEmail(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateEmail() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateEmail()
	})
}

// SetFirstName sets the "first_name" field.
func (u *TutorRequestUpsertOne) SetFirstName(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateFirstName() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *TutorRequestUpsertOne) SetLastName(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateLastName() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateLastName()
	})
}

// SetDniHash sets the "dni_hash" field.
func (u *TutorRequestUpsertOne) SetDniHash(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDniHash(v)
	})
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateDniHash() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDniHash()
	})
}

// SetWorkArea sets the "work_area" field.
func (u *TutorRequestUpsertOne) SetWorkArea(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetWorkArea(v)
	})
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateWorkArea() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateWorkArea()
	})
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *TutorRequestUpsertOne) ClearWorkArea() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearWorkArea()
	})
}

// SetMotivation sets the "motivation" field.
func (u *TutorRequestUpsertOne) SetMotivation(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetMotivation(v)
	})
}

// UpdateMotivation sets the "motivation" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateMotivation() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateMotivation()
	})
}

// ClearMotivation clears the value of the "motivation" field.
func (u *TutorRequestUpsertOne) ClearMotivation() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearMotivation()
	})
}

// SetStatus sets the "status" field.
func (u *TutorRequestUpsertOne) SetStatus(v tutorrequest.Status) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateStatus() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *TutorRequestUpsertOne) SetRejectionReason(v string) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateRejectionReason() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *TutorRequestUpsertOne) ClearRejectionReason() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearRejectionReason()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *TutorRequestUpsertOne) SetDecidedAt(v time.Time) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateDecidedAt() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *TutorRequestUpsertOne) ClearDecidedAt() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearDecidedAt()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *TutorRequestUpsertOne) SetDecidedBy(v uuid.UUID) *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *TutorRequestUpsertOne) UpdateDecidedBy() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *TutorRequestUpsertOne) ClearDecidedBy() *TutorRequestUpsertOne {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearDecidedBy()
	})
}

// Exec executes the query.
func (u *TutorRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TutorRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TutorRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TutorRequestUpsertOne.ID is not supported by MySQL driver. Use TutorRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TutorRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TutorRequestCreateBulk is the builder for creating many TutorRequest entities in bulk.
type TutorRequestCreateBulk struct {
	config
	err      error
	builders []*TutorRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the TutorRequest entities in the database.
func (_c *TutorRequestCreateBulk) Save(ctx context.Context) ([]*TutorRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorRequestMutation)
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
func (_c *TutorRequestCreateBulk) SaveX(ctx context.Context) []*TutorRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TutorRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TutorRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TutorRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *TutorRequestUpsertBulk {
	_c.conflict = opts
	return &TutorRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TutorRequestCreateBulk) OnConflictColumns(columns ...string) *TutorRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TutorRequestUpsertBulk{
		create: _c,
	}
}

// TutorRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of TutorRequest nodes.
type TutorRequestUpsertBulk struct {
	create *TutorRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tutorrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TutorRequestUpsertBulk) UpdateNewValues() *TutorRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tutorrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tutorrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TutorRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TutorRequestUpsertBulk) Ignore() *TutorRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TutorRequestUpsertBulk) DoNothing() *TutorRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TutorRequestCreateBulk.OnConflict
// documentation for more info.
func (u *TutorRequestUpsertBulk) Update(set func(*TutorRequestUpsert)) *TutorRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TutorRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TutorRequestUpsertBulk) SetUpdatedAt(v time.Time) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateUpdatedAt() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *TutorRequestUpsertBulk) SetUserID(v uuid.UUID) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateUserID() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateUserID()
	})
}

// SetEmail sets the "email" field.
func (u *TutorRequestUpsertBulk) SetEmail(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateEmail() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateEmail()
	})
}

// SetFirstName sets the "first_name" field.
func (u *TutorRequestUpsertBulk) SetFirstName(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateFirstName() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateFirstName()
	})
}

// SetLastName sets the "last_name" field.
func (u *TutorRequestUpsertBulk) SetLastName(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetLastName(v)
	})
}

// UpdateLastName sets the "last_name" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateLastName() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateLastName()
	})
}

// SetDniHash sets the "dni_hash" field.
func (u *TutorRequestUpsertBulk) SetDniHash(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDniHash(v)
	})
}

// UpdateDniHash sets the "dni_hash" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateDniHash() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDniHash()
	})
}

// SetWorkArea sets the "work_area" field.
func (u *TutorRequestUpsertBulk) SetWorkArea(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetWorkArea(v)
	})
}

// UpdateWorkArea sets the "work_area" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateWorkArea() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateWorkArea()
	})
}

// ClearWorkArea clears the value of the "work_area" field.
func (u *TutorRequestUpsertBulk) ClearWorkArea() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearWorkArea()
	})
}

// SetMotivation sets the "motivation" field.
func (u *TutorRequestUpsertBulk) SetMotivation(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetMotivation(v)
	})
}

// UpdateMotivation sets the "motivation" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateMotivation() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateMotivation()
	})
}

// ClearMotivation clears the value of the "motivation" field.
func (u *TutorRequestUpsertBulk) ClearMotivation() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearMotivation()
	})
}

// SetStatus sets the "status" field.
func (u *TutorRequestUpsertBulk) SetStatus(v tutorrequest.Status) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateStatus() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateStatus()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *TutorRequestUpsertBulk) SetRejectionReason(v string) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateRejectionReason() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *TutorRequestUpsertBulk) ClearRejectionReason() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearRejectionReason()
	})
}

// SetDecidedAt sets the "decided_at" field.
func (u *TutorRequestUpsertBulk) SetDecidedAt(v time.Time) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDecidedAt(v)
	})
}

// UpdateDecidedAt sets the "decided_at" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateDecidedAt() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDecidedAt()
	})
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (u *TutorRequestUpsertBulk) ClearDecidedAt() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearDecidedAt()
	})
}

// SetDecidedBy sets the "decided_by" field.
func (u *TutorRequestUpsertBulk) SetDecidedBy(v uuid.UUID) *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.SetDecidedBy(v)
	})
}

// UpdateDecidedBy sets the "decided_by" field to the value that was provided on create.
func (u *TutorRequestUpsertBulk) UpdateDecidedBy() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.UpdateDecidedBy()
	})
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (u *TutorRequestUpsertBulk) ClearDecidedBy() *TutorRequestUpsertBulk {
	return u.Update(func(s *TutorRequestUpsert) {
		s.ClearDecidedBy()
	})
}

// Exec executes the query.
func (u *TutorRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TutorRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TutorRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TutorRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
