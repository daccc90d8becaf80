// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ForumCommentDelete is the builder for deleting a ForumComment entity.
type ForumCommentDelete struct {
	config
	hooks    []Hook
	mutation *ForumCommentMutation
}

// Where appends a list predicates to the ForumCommentDelete builder.
func (_d *ForumCommentDelete) Where(ps ...predicate.ForumComment) *ForumCommentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ForumCommentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForumCommentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ForumCommentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(forumcomment.Table, sqlgraph.NewFieldSpec(forumcomment.FieldID, field.TypeUUID))
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

// ForumCommentDeleteOne is the builder for deleting a single ForumComment entity.
type ForumCommentDeleteOne struct {
	_d *ForumCommentDelete
}

// Where appends a list predicates to the ForumCommentDelete builder.
func (_d *ForumCommentDeleteOne) Where(ps ...predicate.ForumComment) *ForumCommentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ForumCommentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{forumcomment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForumCommentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
