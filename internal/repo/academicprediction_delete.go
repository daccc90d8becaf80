// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// AcademicPredictionDelete is the builder for deleting a AcademicPrediction entity.
type AcademicPredictionDelete struct {
	config
	hooks    []Hook
	mutation *AcademicPredictionMutation
}

// Where appends a list predicates to the AcademicPredictionDelete builder.
func (_d *AcademicPredictionDelete) Where(ps ...predicate.AcademicPrediction) *AcademicPredictionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AcademicPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AcademicPredictionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AcademicPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(academicprediction.Table, sqlgraph.NewFieldSpec(academicprediction.FieldID, field.TypeUUID))
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

// AcademicPredictionDeleteOne is the builder for deleting a single AcademicPrediction entity.
type AcademicPredictionDeleteOne struct {
	_d *AcademicPredictionDelete
}

// Where appends a list predicates to the AcademicPredictionDelete builder.
func (_d *AcademicPredictionDeleteOne) Where(ps ...predicate.AcademicPrediction) *AcademicPredictionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AcademicPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{academicprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AcademicPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
