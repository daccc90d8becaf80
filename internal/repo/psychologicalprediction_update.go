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
	"github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
)

// PsychologicalPredictionUpdate is the builder for updating PsychologicalPrediction entities.
type PsychologicalPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologicalPredictionMutation
}

// Where appends a list predicates to the PsychologicalPredictionUpdate builder.
func (_u *PsychologicalPredictionUpdate) Where(ps ...predicate.PsychologicalPrediction) *PsychologicalPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologicalPredictionUpdate) SetUpdatedAt(v time.Time) *PsychologicalPredictionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologicalPredictionUpdate) SetUserID(v uuid.UUID) *PsychologicalPredictionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdate) SetNillableUserID(v *uuid.UUID) *PsychologicalPredictionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PsychologicalPredictionUpdate) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PsychologicalPredictionUpdate) ClearAnswers() *PsychologicalPredictionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetProgressOverall sets the "progress_overall" field.
func (_u *PsychologicalPredictionUpdate) SetProgressOverall(v float64) *PsychologicalPredictionUpdate {
	_u.mutation.ResetProgressOverall()
	_u.mutation.SetProgressOverall(v)
	return _u
}

// SetNillableProgressOverall sets the "progress_overall" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdate) SetNillableProgressOverall(v *float64) *PsychologicalPredictionUpdate {
	if v != nil {
		_u.SetProgressOverall(*v)
	}
	return _u
}

// AddProgressOverall adds value to the "progress_overall" field.
func (_u *PsychologicalPredictionUpdate) AddProgressOverall(v float64) *PsychologicalPredictionUpdate {
	_u.mutation.AddProgressOverall(v)
	return _u
}

// SetProgressSections sets the "progress_sections" field.
func (_u *PsychologicalPredictionUpdate) SetProgressSections(v map[string]float64) *PsychologicalPredictionUpdate {
	_u.mutation.SetProgressSections(v)
	return _u
}

// ClearProgressSections clears the value of the "progress_sections" field.
func (_u *PsychologicalPredictionUpdate) ClearProgressSections() *PsychologicalPredictionUpdate {
	_u.mutation.ClearProgressSections()
	return _u
}

// SetResult sets the "result" field.
func (_u *PsychologicalPredictionUpdate) SetResult(v string) *PsychologicalPredictionUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdate) SetNillableResult(v *string) *PsychologicalPredictionUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PsychologicalPredictionUpdate) ClearResult() *PsychologicalPredictionUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetResults sets the "results" field.
func (_u *PsychologicalPredictionUpdate) SetResults(v riasec.Tally) *PsychologicalPredictionUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdate) SetNillableResults(v *riasec.Tally) *PsychologicalPredictionUpdate {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *PsychologicalPredictionUpdate) ClearResults() *PsychologicalPredictionUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PsychologicalPredictionUpdate) SetCompletedAt(v time.Time) *PsychologicalPredictionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdate) SetNillableCompletedAt(v *time.Time) *PsychologicalPredictionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PsychologicalPredictionUpdate) ClearCompletedAt() *PsychologicalPredictionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PsychologicalPredictionMutation object of the builder.
func (_u *PsychologicalPredictionUpdate) Mutation() *PsychologicalPredictionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologicalPredictionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologicalPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologicalPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologicalPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologicalPredictionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologicalprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologicalPredictionUpdate) check() error {
	if v, ok := _u.mutation.ProgressOverall(); ok {
		if err := psychologicalprediction.ProgressOverallValidator(v); err != nil {
			return &ValidationError{Name: "progress_overall", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.progress_overall": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := psychologicalprediction.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.result": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologicalPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologicalprediction.Table, psychologicalprediction.Columns, sqlgraph.NewFieldSpec(psychologicalprediction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(psychologicalprediction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(psychologicalprediction.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(psychologicalprediction.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressOverall(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressOverall(); ok {
		_spec.AddField(psychologicalprediction.FieldProgressOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProgressSections(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressSections, field.TypeJSON, value)
	}
	if _u.mutation.ProgressSectionsCleared() {
		_spec.ClearField(psychologicalprediction.FieldProgressSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(psychologicalprediction.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(psychologicalprediction.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(psychologicalprediction.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(psychologicalprediction.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(psychologicalprediction.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologicalprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologicalPredictionUpdateOne is the builder for updating a single PsychologicalPrediction entity.
type PsychologicalPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologicalPredictionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologicalPredictionUpdateOne) SetUpdatedAt(v time.Time) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologicalPredictionUpdateOne) SetUserID(v uuid.UUID) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdateOne) SetNillableUserID(v *uuid.UUID) *PsychologicalPredictionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *PsychologicalPredictionUpdateOne) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *PsychologicalPredictionUpdateOne) ClearAnswers() *PsychologicalPredictionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetProgressOverall sets the "progress_overall" field.
func (_u *PsychologicalPredictionUpdateOne) SetProgressOverall(v float64) *PsychologicalPredictionUpdateOne {
	_u.mutation.ResetProgressOverall()
	_u.mutation.SetProgressOverall(v)
	return _u
}

// SetNillableProgressOverall sets the "progress_overall" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdateOne) SetNillableProgressOverall(v *float64) *PsychologicalPredictionUpdateOne {
	if v != nil {
		_u.SetProgressOverall(*v)
	}
	return _u
}

// AddProgressOverall adds value to the "progress_overall" field.
func (_u *PsychologicalPredictionUpdateOne) AddProgressOverall(v float64) *PsychologicalPredictionUpdateOne {
	_u.mutation.AddProgressOverall(v)
	return _u
}

// SetProgressSections sets the "progress_sections" field.
func (_u *PsychologicalPredictionUpdateOne) SetProgressSections(v map[string]float64) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetProgressSections(v)
	return _u
}

// ClearProgressSections clears the value of the "progress_sections" field.
func (_u *PsychologicalPredictionUpdateOne) ClearProgressSections() *PsychologicalPredictionUpdateOne {
	_u.mutation.ClearProgressSections()
	return _u
}

// SetResult sets the "result" field.
func (_u *PsychologicalPredictionUpdateOne) SetResult(v string) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdateOne) SetNillableResult(v *string) *PsychologicalPredictionUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *PsychologicalPredictionUpdateOne) ClearResult() *PsychologicalPredictionUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetResults sets the "results" field.
func (_u *PsychologicalPredictionUpdateOne) SetResults(v riasec.Tally) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdateOne) SetNillableResults(v *riasec.Tally) *PsychologicalPredictionUpdateOne {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *PsychologicalPredictionUpdateOne) ClearResults() *PsychologicalPredictionUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PsychologicalPredictionUpdateOne) SetCompletedAt(v time.Time) *PsychologicalPredictionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PsychologicalPredictionUpdateOne) SetNillableCompletedAt(v *time.Time) *PsychologicalPredictionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PsychologicalPredictionUpdateOne) ClearCompletedAt() *PsychologicalPredictionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PsychologicalPredictionMutation object of the builder.
func (_u *PsychologicalPredictionUpdateOne) Mutation() *PsychologicalPredictionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PsychologicalPredictionUpdate builder.
func (_u *PsychologicalPredictionUpdateOne) Where(ps ...predicate.PsychologicalPrediction) *PsychologicalPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologicalPredictionUpdateOne) Select(field string, fields ...string) *PsychologicalPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PsychologicalPrediction entity.
func (_u *PsychologicalPredictionUpdateOne) Save(ctx context.Context) (*PsychologicalPrediction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologicalPredictionUpdateOne) SaveX(ctx context.Context) *PsychologicalPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologicalPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologicalPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologicalPredictionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologicalprediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologicalPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.ProgressOverall(); ok {
		if err := psychologicalprediction.ProgressOverallValidator(v); err != nil {
			return &ValidationError{Name: "progress_overall", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.progress_overall": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Result(); ok {
		if err := psychologicalprediction.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.result": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologicalPredictionUpdateOne) sqlSave(ctx context.Context) (_node *PsychologicalPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologicalprediction.Table, psychologicalprediction.Columns, sqlgraph.NewFieldSpec(psychologicalprediction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PsychologicalPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologicalprediction.FieldID)
		for _, f := range fields {
			if !psychologicalprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologicalprediction.FieldID {
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
		_spec.SetField(psychologicalprediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(psychologicalprediction.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(psychologicalprediction.FieldAnswers, field.TypeJSON, value)
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(psychologicalprediction.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressOverall(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressOverall(); ok {
		_spec.AddField(psychologicalprediction.FieldProgressOverall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProgressSections(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressSections, field.TypeJSON, value)
	}
	if _u.mutation.ProgressSectionsCleared() {
		_spec.ClearField(psychologicalprediction.FieldProgressSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(psychologicalprediction.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(psychologicalprediction.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(psychologicalprediction.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(psychologicalprediction.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(psychologicalprediction.FieldCompletedAt, field.TypeTime)
	}
	_node = &PsychologicalPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologicalprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
