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
	"github.com/orienta-pe/orienta_backend/internal/repo/tutorgroup"
)

// TutorGroupUpdate is the builder for updating TutorGroup entities.
type TutorGroupUpdate struct {
	config
	hooks    []Hook
	mutation *TutorGroupMutation
}

// Where appends a list predicates to the TutorGroupUpdate builder.
func (_u *TutorGroupUpdate) Where(ps ...predicate.TutorGroup) *TutorGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorGroupUpdate) SetUpdatedAt(v time.Time) *TutorGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TutorGroupUpdate) SetDeletedAt(v time.Time) *TutorGroupUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableDeletedAt(v *time.Time) *TutorGroupUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TutorGroupUpdate) ClearDeletedAt() *TutorGroupUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *TutorGroupUpdate) SetName(v string) *TutorGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableName(v *string) *TutorGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTutorID sets the "tutor_id" field.
func (_u *TutorGroupUpdate) SetTutorID(v uuid.UUID) *TutorGroupUpdate {
	_u.mutation.SetTutorID(v)
	return _u
}

// SetNillableTutorID sets the "tutor_id" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableTutorID(v *uuid.UUID) *TutorGroupUpdate {
	if v != nil {
		_u.SetTutorID(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *TutorGroupUpdate) SetJoinCode(v string) *TutorGroupUpdate {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableJoinCode(v *string) *TutorGroupUpdate {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// SetStudentLimit sets the "student_limit" field.
func (_u *TutorGroupUpdate) SetStudentLimit(v int) *TutorGroupUpdate {
	_u.mutation.ResetStudentLimit()
	_u.mutation.SetStudentLimit(v)
	return _u
}

// SetNillableStudentLimit sets the "student_limit" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableStudentLimit(v *int) *TutorGroupUpdate {
	if v != nil {
		_u.SetStudentLimit(*v)
	}
	return _u
}

// AddStudentLimit adds value to the "student_limit" field.
func (_u *TutorGroupUpdate) AddStudentLimit(v int) *TutorGroupUpdate {
	_u.mutation.AddStudentLimit(v)
	return _u
}

// SetTutorLimit sets the "tutor_limit" field.
func (_u *TutorGroupUpdate) SetTutorLimit(v int) *TutorGroupUpdate {
	_u.mutation.ResetTutorLimit()
	_u.mutation.SetTutorLimit(v)
	return _u
}

// SetNillableTutorLimit sets the "tutor_limit" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableTutorLimit(v *int) *TutorGroupUpdate {
	if v != nil {
		_u.SetTutorLimit(*v)
	}
	return _u
}

// AddTutorLimit adds value to the "tutor_limit" field.
func (_u *TutorGroupUpdate) AddTutorLimit(v int) *TutorGroupUpdate {
	_u.mutation.AddTutorLimit(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TutorGroupUpdate) SetIsActive(v bool) *TutorGroupUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TutorGroupUpdate) SetNillableIsActive(v *bool) *TutorGroupUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TutorGroupMutation object of the builder.
func (_u *TutorGroupUpdate) Mutation() *TutorGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorGroupUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tutorgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinCode(); ok {
		if err := tutorgroup.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.join_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentLimit(); ok {
		if err := tutorgroup.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.student_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TutorLimit(); ok {
		if err := tutorgroup.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.tutor_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorgroup.Table, tutorgroup.Columns, sqlgraph.NewFieldSpec(tutorgroup.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tutorgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tutorgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tutorgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorID(); ok {
		_spec.SetField(tutorgroup.FieldTutorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(tutorgroup.FieldJoinCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLimit(); ok {
		_spec.SetField(tutorgroup.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentLimit(); ok {
		_spec.AddField(tutorgroup.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorLimit(); ok {
		_spec.SetField(tutorgroup.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorLimit(); ok {
		_spec.AddField(tutorgroup.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tutorgroup.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorGroupUpdateOne is the builder for updating a single TutorGroup entity.
type TutorGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorGroupMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorGroupUpdateOne) SetUpdatedAt(v time.Time) *TutorGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *TutorGroupUpdateOne) SetDeletedAt(v time.Time) *TutorGroupUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableDeletedAt(v *time.Time) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *TutorGroupUpdateOne) ClearDeletedAt() *TutorGroupUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *TutorGroupUpdateOne) SetName(v string) *TutorGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableName(v *string) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTutorID sets the "tutor_id" field.
func (_u *TutorGroupUpdateOne) SetTutorID(v uuid.UUID) *TutorGroupUpdateOne {
	_u.mutation.SetTutorID(v)
	return _u
}

// SetNillableTutorID sets the "tutor_id" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableTutorID(v *uuid.UUID) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetTutorID(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *TutorGroupUpdateOne) SetJoinCode(v string) *TutorGroupUpdateOne {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableJoinCode(v *string) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// SetStudentLimit sets the "student_limit" field.
func (_u *TutorGroupUpdateOne) SetStudentLimit(v int) *TutorGroupUpdateOne {
	_u.mutation.ResetStudentLimit()
	_u.mutation.SetStudentLimit(v)
	return _u
}

// SetNillableStudentLimit sets the "student_limit" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableStudentLimit(v *int) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetStudentLimit(*v)
	}
	return _u
}

// AddStudentLimit adds value to the "student_limit" field.
func (_u *TutorGroupUpdateOne) AddStudentLimit(v int) *TutorGroupUpdateOne {
	_u.mutation.AddStudentLimit(v)
	return _u
}

// SetTutorLimit sets the "tutor_limit" field.
func (_u *TutorGroupUpdateOne) SetTutorLimit(v int) *TutorGroupUpdateOne {
	_u.mutation.ResetTutorLimit()
	_u.mutation.SetTutorLimit(v)
	return _u
}

// SetNillableTutorLimit sets the "tutor_limit" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableTutorLimit(v *int) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetTutorLimit(*v)
	}
	return _u
}

// AddTutorLimit adds value to the "tutor_limit" field.
func (_u *TutorGroupUpdateOne) AddTutorLimit(v int) *TutorGroupUpdateOne {
	_u.mutation.AddTutorLimit(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TutorGroupUpdateOne) SetIsActive(v bool) *TutorGroupUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TutorGroupUpdateOne) SetNillableIsActive(v *bool) *TutorGroupUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the TutorGroupMutation object of the builder.
func (_u *TutorGroupUpdateOne) Mutation() *TutorGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorGroupUpdate builder.
func (_u *TutorGroupUpdateOne) Where(ps ...predicate.TutorGroup) *TutorGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorGroupUpdateOne) Select(field string, fields ...string) *TutorGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorGroup entity.
func (_u *TutorGroupUpdateOne) Save(ctx context.Context) (*TutorGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorGroupUpdateOne) SaveX(ctx context.Context) *TutorGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorgroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := tutorgroup.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinCode(); ok {
		if err := tutorgroup.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.join_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentLimit(); ok {
		if err := tutorgroup.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.student_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TutorLimit(); ok {
		if err := tutorgroup.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "TutorGroup.tutor_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorGroupUpdateOne) sqlSave(ctx context.Context) (_node *TutorGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorgroup.Table, tutorgroup.Columns, sqlgraph.NewFieldSpec(tutorgroup.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TutorGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorgroup.FieldID)
		for _, f := range fields {
			if !tutorgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != tutorgroup.FieldID {
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
		_spec.SetField(tutorgroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(tutorgroup.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(tutorgroup.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(tutorgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TutorID(); ok {
		_spec.SetField(tutorgroup.FieldTutorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(tutorgroup.FieldJoinCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLimit(); ok {
		_spec.SetField(tutorgroup.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentLimit(); ok {
		_spec.AddField(tutorgroup.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorLimit(); ok {
		_spec.SetField(tutorgroup.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorLimit(); ok {
		_spec.AddField(tutorgroup.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(tutorgroup.FieldIsActive, field.TypeBool, value)
	}
	_node = &TutorGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
