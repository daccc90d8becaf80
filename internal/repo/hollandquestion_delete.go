// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// HollandQuestionDelete is the builder for deleting a HollandQuestion entity.
type HollandQuestionDelete struct {
	config
	hooks    []Hook
	mutation *HollandQuestionMutation
}

// Where appends a list predicates to the HollandQuestionDelete builder.
func (_d *HollandQuestionDelete) Where(ps ...predicate.HollandQuestion) *HollandQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HollandQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HollandQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HollandQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hollandquestion.Table, sqlgraph.NewFieldSpec(hollandquestion.FieldID, field.TypeUUID))
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

// HollandQuestionDeleteOne is the builder for deleting a single HollandQuestion entity.
type HollandQuestionDeleteOne struct {
	_d *HollandQuestionDelete
}

// Where appends a list predicates to the HollandQuestionDelete builder.
func (_d *HollandQuestionDeleteOne) Where(ps ...predicate.HollandQuestion) *HollandQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HollandQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hollandquestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HollandQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
