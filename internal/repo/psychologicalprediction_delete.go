// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
	"github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
)

// PsychologicalPredictionDelete is the builder for deleting a PsychologicalPrediction entity.
type PsychologicalPredictionDelete struct {
	config
	hooks    []Hook
	mutation *PsychologicalPredictionMutation
}

// Where appends a list predicates to the PsychologicalPredictionDelete builder.
func (_d *PsychologicalPredictionDelete) Where(ps ...predicate.PsychologicalPrediction) *PsychologicalPredictionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PsychologicalPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PsychologicalPredictionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PsychologicalPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(psychologicalprediction.Table, sqlgraph.NewFieldSpec(psychologicalprediction.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PsychologicalPredictionDeleteOne is the builder for deleting a single PsychologicalPrediction entity.
type PsychologicalPredictionDeleteOne struct {
	_d *PsychologicalPredictionDelete
}

// Where appends a list predicates to the PsychologicalPredictionDelete builder.
func (_d *PsychologicalPredictionDeleteOne) Where(ps ...predicate.PsychologicalPrediction) *PsychologicalPredictionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PsychologicalPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{psychologicalprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PsychologicalPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
