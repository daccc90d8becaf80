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
	"github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ForumCommentUpdate is the builder for updating ForumComment entities.
type ForumCommentUpdate struct {
	config
	hooks    []Hook
	mutation *ForumCommentMutation
}

// Where appends a list predicates to the ForumCommentUpdate builder.
func (_u *ForumCommentUpdate) Where(ps ...predicate.ForumComment) *ForumCommentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ForumCommentUpdate) SetDeletedAt(v time.Time) *ForumCommentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ForumCommentUpdate) SetNillableDeletedAt(v *time.Time) *ForumCommentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ForumCommentUpdate) ClearDeletedAt() *ForumCommentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *ForumCommentUpdate) SetPostID(v uuid.UUID) *ForumCommentUpdate {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *ForumCommentUpdate) SetNillablePostID(v *uuid.UUID) *ForumCommentUpdate {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ForumCommentUpdate) SetAuthorID(v uuid.UUID) *ForumCommentUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ForumCommentUpdate) SetNillableAuthorID(v *uuid.UUID) *ForumCommentUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ForumCommentUpdate) SetContent(v string) *ForumCommentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ForumCommentUpdate) SetNillableContent(v *string) *ForumCommentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ForumCommentMutation object of the builder.
func (_u *ForumCommentUpdate) Mutation() *ForumCommentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ForumCommentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForumCommentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ForumCommentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForumCommentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForumCommentUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := forumcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumComment.content": %w`, err)}
		}
	}
	return nil
}

func (_u *ForumCommentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumcomment.Table, forumcomment.Columns, sqlgraph.NewFieldSpec(forumcomment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(forumcomment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(forumcomment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(forumcomment.FieldPostID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(forumcomment.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(forumcomment.FieldContent, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ForumCommentUpdateOne is the builder for updating a single ForumComment entity.
type ForumCommentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForumCommentMutation
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ForumCommentUpdateOne) SetDeletedAt(v time.Time) *ForumCommentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ForumCommentUpdateOne) SetNillableDeletedAt(v *time.Time) *ForumCommentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ForumCommentUpdateOne) ClearDeletedAt() *ForumCommentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPostID sets the "post_id" field.
func (_u *ForumCommentUpdateOne) SetPostID(v uuid.UUID) *ForumCommentUpdateOne {
	_u.mutation.SetPostID(v)
	return _u
}

// SetNillablePostID sets the "post_id" field if the given value is not nil.
func (_u *ForumCommentUpdateOne) SetNillablePostID(v *uuid.UUID) *ForumCommentUpdateOne {
	if v != nil {
		_u.SetPostID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ForumCommentUpdateOne) SetAuthorID(v uuid.UUID) *ForumCommentUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ForumCommentUpdateOne) SetNillableAuthorID(v *uuid.UUID) *ForumCommentUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ForumCommentUpdateOne) SetContent(v string) *ForumCommentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ForumCommentUpdateOne) SetNillableContent(v *string) *ForumCommentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// Mutation returns the ForumCommentMutation object of the builder.
func (_u *ForumCommentUpdateOne) Mutation() *ForumCommentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ForumCommentUpdate builder.
func (_u *ForumCommentUpdateOne) Where(ps ...predicate.ForumComment) *ForumCommentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ForumCommentUpdateOne) Select(field string, fields ...string) *ForumCommentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ForumComment entity.
func (_u *ForumCommentUpdateOne) Save(ctx context.Context) (*ForumComment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForumCommentUpdateOne) SaveX(ctx context.Context) *ForumComment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ForumCommentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForumCommentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForumCommentUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := forumcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumComment.content": %w`, err)}
		}
	}
	return nil
}

func (_u *ForumCommentUpdateOne) sqlSave(ctx context.Context) (_node *ForumComment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumcomment.Table, forumcomment.Columns, sqlgraph.NewFieldSpec(forumcomment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ForumComment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forumcomment.FieldID)
		for _, f := range fields {
			if !forumcomment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != forumcomment.FieldID {
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
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(forumcomment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(forumcomment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PostID(); ok {
		_spec.SetField(forumcomment.FieldPostID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(forumcomment.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(forumcomment.FieldContent, field.TypeString, value)
	}
	_node = &ForumComment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumcomment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
