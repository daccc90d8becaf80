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
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorrequest"
)

// TutorRequestUpdate is the builder for updating TutorRequest entities.
type TutorRequestUpdate struct {
	config
	hooks    []Hook
	mutation *TutorRequestMutation
}

// Where appends a list predicates to the TutorRequestUpdate builder.
func (_u *TutorRequestUpdate) Where(ps ...predicate.TutorRequest) *TutorRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorRequestUpdate) SetUpdatedAt(v time.Time) *TutorRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TutorRequestUpdate) SetUserID(v uuid.UUID) *TutorRequestUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableUserID(v *uuid.UUID) *TutorRequestUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TutorRequestUpdate) SetEmail(v string) *TutorRequestUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableEmail(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TutorRequestUpdate) SetFirstName(v string) *TutorRequestUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableFirstName(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TutorRequestUpdate) SetLastName(v string) *TutorRequestUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableLastName(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDniHash sets the "dni_hash" field.
func (_u *TutorRequestUpdate) SetDniHash(v string) *TutorRequestUpdate {
	_u.mutation.SetDniHash(v)
	return _u
}

// SetNillableDniHash sets the "dni_hash" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableDniHash(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetDniHash(*v)
	}
	return _u
}

// SetWorkArea sets the "work_area" field.
func (_u *TutorRequestUpdate) SetWorkArea(v string) *TutorRequestUpdate {
	_u.mutation.SetWorkArea(v)
	return _u
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableWorkArea(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetWorkArea(*v)
	}
	return _u
}

// ClearWorkArea clears the value of the "work_area" field.
func (_u *TutorRequestUpdate) ClearWorkArea() *TutorRequestUpdate {
	_u.mutation.ClearWorkArea()
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *TutorRequestUpdate) SetMotivation(v string) *TutorRequestUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableMotivation(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *TutorRequestUpdate) ClearMotivation() *TutorRequestUpdate {
	_u.mutation.ClearMotivation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TutorRequestUpdate) SetStatus(v tutorrequest.Status) *TutorRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableStatus(v *tutorrequest.Status) *TutorRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *TutorRequestUpdate) SetRejectionReason(v string) *TutorRequestUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableRejectionReason(v *string) *TutorRequestUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *TutorRequestUpdate) ClearRejectionReason() *TutorRequestUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TutorRequestUpdate) SetDecidedAt(v time.Time) *TutorRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableDecidedAt(v *time.Time) *TutorRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *TutorRequestUpdate) ClearDecidedAt() *TutorRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *TutorRequestUpdate) SetDecidedBy(v uuid.UUID) *TutorRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *TutorRequestUpdate) SetNillableDecidedBy(v *uuid.UUID) *TutorRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *TutorRequestUpdate) ClearDecidedBy() *TutorRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// Mutation returns the TutorRequestMutation object of the builder.
func (_u *TutorRequestUpdate) Mutation() *TutorRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorRequestUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := tutorrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := tutorrequest.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := tutorrequest.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DniHash(); ok {
		if err := tutorrequest.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.dni_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkArea(); ok {
		if err := tutorrequest.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.work_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tutorrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorrequest.Table, tutorrequest.Columns, sqlgraph.NewFieldSpec(tutorrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tutorrequest.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tutorrequest.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(tutorrequest.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(tutorrequest.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DniHash(); ok {
		_spec.SetField(tutorrequest.FieldDniHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkArea(); ok {
		_spec.SetField(tutorrequest.FieldWorkArea, field.TypeString, value)
	}
	if _u.mutation.WorkAreaCleared() {
		_spec.ClearField(tutorrequest.FieldWorkArea, field.TypeString)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(tutorrequest.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(tutorrequest.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tutorrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(tutorrequest.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(tutorrequest.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(tutorrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(tutorrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(tutorrequest.FieldDecidedBy, field.TypeUUID, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(tutorrequest.FieldDecidedBy, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorRequestUpdateOne is the builder for updating a single TutorRequest entity.
type TutorRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorRequestUpdateOne) SetUpdatedAt(v time.Time) *TutorRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TutorRequestUpdateOne) SetUserID(v uuid.UUID) *TutorRequestUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableUserID(v *uuid.UUID) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TutorRequestUpdateOne) SetEmail(v string) *TutorRequestUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableEmail(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TutorRequestUpdateOne) SetFirstName(v string) *TutorRequestUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableFirstName(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TutorRequestUpdateOne) SetLastName(v string) *TutorRequestUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableLastName(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDniHash sets the "dni_hash" field.
func (_u *TutorRequestUpdateOne) SetDniHash(v string) *TutorRequestUpdateOne {
	_u.mutation.SetDniHash(v)
	return _u
}

// SetNillableDniHash sets the "dni_hash" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableDniHash(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetDniHash(*v)
	}
	return _u
}

// SetWorkArea sets the "work_area" field.
func (_u *TutorRequestUpdateOne) SetWorkArea(v string) *TutorRequestUpdateOne {
	_u.mutation.SetWorkArea(v)
	return _u
}

// SetNillableWorkArea sets the "work_area" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableWorkArea(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetWorkArea(*v)
	}
	return _u
}

// ClearWorkArea clears the value of the "work_area" field.
func (_u *TutorRequestUpdateOne) ClearWorkArea() *TutorRequestUpdateOne {
	_u.mutation.ClearWorkArea()
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *TutorRequestUpdateOne) SetMotivation(v string) *TutorRequestUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableMotivation(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *TutorRequestUpdateOne) ClearMotivation() *TutorRequestUpdateOne {
	_u.mutation.ClearMotivation()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TutorRequestUpdateOne) SetStatus(v tutorrequest.Status) *TutorRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableStatus(v *tutorrequest.Status) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *TutorRequestUpdateOne) SetRejectionReason(v string) *TutorRequestUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableRejectionReason(v *string) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *TutorRequestUpdateOne) ClearRejectionReason() *TutorRequestUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *TutorRequestUpdateOne) SetDecidedAt(v time.Time) *TutorRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *TutorRequestUpdateOne) ClearDecidedAt() *TutorRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *TutorRequestUpdateOne) SetDecidedBy(v uuid.UUID) *TutorRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *TutorRequestUpdateOne) SetNillableDecidedBy(v *uuid.UUID) *TutorRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *TutorRequestUpdateOne) ClearDecidedBy() *TutorRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// Mutation returns the TutorRequestMutation object of the builder.
func (_u *TutorRequestUpdateOne) Mutation() *TutorRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorRequestUpdate builder.
func (_u *TutorRequestUpdateOne) Where(ps ...predicate.TutorRequest) *TutorRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorRequestUpdateOne) Select(field string, fields ...string) *TutorRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorRequest entity.
func (_u *TutorRequestUpdateOne) Save(ctx context.Context) (*TutorRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorRequestUpdateOne) SaveX(ctx context.Context) *TutorRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := tutorrequest.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FirstName(); ok {
		if err := tutorrequest.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := tutorrequest.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DniHash(); ok {
		if err := tutorrequest.DniHashValidator(v); err != nil {
			return &ValidationError{Name: "dni_hash", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.dni_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkArea(); ok {
		if err := tutorrequest.WorkAreaValidator(v); err != nil {
			return &ValidationError{Name: "work_area", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.work_area": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := tutorrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TutorRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorRequestUpdateOne) sqlSave(ctx context.Context) (_node *TutorRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorrequest.Table, tutorrequest.Columns, sqlgraph.NewFieldSpec(tutorrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TutorRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorrequest.FieldID)
		for _, f := range fields {
			if !tutorrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tutorrequest.FieldID {
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
		_spec.SetField(tutorrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(tutorrequest.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tutorrequest.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(tutorrequest.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(tutorrequest.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DniHash(); ok {
		_spec.SetField(tutorrequest.FieldDniHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkArea(); ok {
		_spec.SetField(tutorrequest.FieldWorkArea, field.TypeString, value)
	}
	if _u.mutation.WorkAreaCleared() {
		_spec.ClearField(tutorrequest.FieldWorkArea, field.TypeString)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(tutorrequest.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(tutorrequest.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tutorrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(tutorrequest.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(tutorrequest.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(tutorrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(tutorrequest.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(tutorrequest.FieldDecidedBy, field.TypeUUID, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(tutorrequest.FieldDecidedBy, field.TypeUUID)
	}
	_node = &TutorRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
