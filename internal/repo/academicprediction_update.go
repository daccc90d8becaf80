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
	"github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// AcademicPredictionUpdate is the builder for updating AcademicPrediction entities.
type AcademicPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *AcademicPredictionMutation
}

// Where appends a list predicates to the AcademicPredictionUpdate builder.
func (_u *AcademicPredictionUpdate) Where(ps ...predicate.AcademicPrediction) *AcademicPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AcademicPredictionUpdate) SetUpdatedAt(v time.Time) *AcademicPredictionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AcademicPredictionUpdate) SetUserID(v uuid.UUID) *AcademicPredictionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AcademicPredictionUpdate) SetNillableUserID(v *uuid.UUID) *AcademicPredictionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGrades sets the "grades" field.
func (_u *AcademicPredictionUpdate) SetGrades(v map[string]string) *AcademicPredictionUpdate {
	_u.mutation.SetGrades(v)
	return _u
}

// ClearGrades clears the value of the "grades" field.
func (_u *AcademicPredictionUpdate) ClearGrades() *AcademicPredictionUpdate {
	_u.mutation.ClearGrades()
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AcademicPredictionUpdate) SetPrediction(v string) *AcademicPredictionUpdate {
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AcademicPredictionUpdate) SetNillablePrediction(v *string) *AcademicPredictionUpdate {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// ClearPrediction clears the value of the "prediction" field.
func (_u *AcademicPredictionUpdate) ClearPrediction() *AcademicPredictionUpdate {
	_u.mutation.ClearPrediction()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AcademicPredictionUpdate) SetCompletedAt(v time.Time) *AcademicPredictionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AcademicPredictionUpdate) SetNillableCompletedAt(v *time.Time) *AcademicPredictionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AcademicPredictionUpdate) ClearCompletedAt() *AcademicPredictionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AcademicPredictionMutation object of the builder.
func (_u *AcademicPredictionUpdate) Mutation() *AcademicPredictionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AcademicPredictionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AcademicPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AcademicPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AcademicPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AcademicPredictionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := academicprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AcademicPredictionUpdate) check() error {
	if v, ok := _u.mutation.Prediction(); ok {
		if err := academicprediction.PredictionValidator(v); err != nil {
			return &ValidationError{Name: "prediction", err: fmt.Errorf(`repo: validator failed for field "AcademicPrediction.prediction": %w`, err)}
		}
	}
	return nil
}

func (_u *AcademicPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(academicprediction.Table, academicprediction.Columns, sqlgraph.NewFieldSpec(academicprediction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(academicprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(academicprediction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Grades(); ok {
		_spec.SetField(academicprediction.FieldGrades, field.TypeJSON, value)
	}
	if _u.mutation.GradesCleared() {
		_spec.ClearField(academicprediction.FieldGrades, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(academicprediction.FieldPrediction, field.TypeString, value)
	}
	if _u.mutation.PredictionCleared() {
		_spec.ClearField(academicprediction.FieldPrediction, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(academicprediction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(academicprediction.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{academicprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AcademicPredictionUpdateOne is the builder for updating a single AcademicPrediction entity.
type AcademicPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AcademicPredictionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AcademicPredictionUpdateOne) SetUpdatedAt(v time.Time) *AcademicPredictionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AcademicPredictionUpdateOne) SetUserID(v uuid.UUID) *AcademicPredictionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AcademicPredictionUpdateOne) SetNillableUserID(v *uuid.UUID) *AcademicPredictionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetGrades sets the "grades" field.
func (_u *AcademicPredictionUpdateOne) SetGrades(v map[string]string) *AcademicPredictionUpdateOne {
	_u.mutation.SetGrades(v)
	return _u
}

// ClearGrades clears the value of the "grades" field.
func (_u *AcademicPredictionUpdateOne) ClearGrades() *AcademicPredictionUpdateOne {
	_u.mutation.ClearGrades()
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AcademicPredictionUpdateOne) SetPrediction(v string) *AcademicPredictionUpdateOne {
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AcademicPredictionUpdateOne) SetNillablePrediction(v *string) *AcademicPredictionUpdateOne {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// ClearPrediction clears the value of the "prediction" field.
func (_u *AcademicPredictionUpdateOne) ClearPrediction() *AcademicPredictionUpdateOne {
	_u.mutation.ClearPrediction()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AcademicPredictionUpdateOne) SetCompletedAt(v time.Time) *AcademicPredictionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AcademicPredictionUpdateOne) SetNillableCompletedAt(v *time.Time) *AcademicPredictionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AcademicPredictionUpdateOne) ClearCompletedAt() *AcademicPredictionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AcademicPredictionMutation object of the builder.
func (_u *AcademicPredictionUpdateOne) Mutation() *AcademicPredictionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AcademicPredictionUpdate builder.
func (_u *AcademicPredictionUpdateOne) Where(ps ...predicate.AcademicPrediction) *AcademicPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AcademicPredictionUpdateOne) Select(field string, fields ...string) *AcademicPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AcademicPrediction entity.
func (_u *AcademicPredictionUpdateOne) Save(ctx context.Context) (*AcademicPrediction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AcademicPredictionUpdateOne) SaveX(ctx context.Context) *AcademicPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AcademicPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AcademicPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AcademicPredictionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := academicprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AcademicPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.Prediction(); ok {
		if err := academicprediction.PredictionValidator(v); err != nil {
			return &ValidationError{Name: "prediction", err: fmt.Errorf(`repo: validator failed for field "AcademicPrediction.prediction": %w`, err)}
		}
	}
	return nil
}

func (_u *AcademicPredictionUpdateOne) sqlSave(ctx context.Context) (_node *AcademicPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(academicprediction.Table, academicprediction.Columns, sqlgraph.NewFieldSpec(academicprediction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AcademicPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, academicprediction.FieldID)
		for _, f := range fields {
			if !academicprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != academicprediction.FieldID {
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
		_spec.SetField(academicprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(academicprediction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Grades(); ok {
		_spec.SetField(academicprediction.FieldGrades, field.TypeJSON, value)
	}
	if _u.mutation.GradesCleared() {
		_spec.ClearField(academicprediction.FieldGrades, field.TypeJSON)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(academicprediction.FieldPrediction, field.TypeString, value)
	}
	if _u.mutation.PredictionCleared() {
		_spec.ClearField(academicprediction.FieldPrediction, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(academicprediction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(academicprediction.FieldCompletedAt, field.TypeTime)
	}
	_node = &AcademicPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{academicprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
