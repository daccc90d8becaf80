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
	"github.com/orienta-pe/orienta_backend/internal/repo/forumpost"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ForumPostUpdate is the builder for updating ForumPost entities.
type ForumPostUpdate struct {
	config
	hooks    []Hook
	mutation *ForumPostMutation
}

// Where appends a list predicates to the ForumPostUpdate builder.
func (_u *ForumPostUpdate) Where(ps ...predicate.ForumPost) *ForumPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ForumPostUpdate) SetUpdatedAt(v time.Time) *ForumPostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ForumPostUpdate) SetDeletedAt(v time.Time) *ForumPostUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableDeletedAt(v *time.Time) *ForumPostUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ForumPostUpdate) ClearDeletedAt() *ForumPostUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ForumPostUpdate) SetAuthorID(v uuid.UUID) *ForumPostUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableAuthorID(v *uuid.UUID) *ForumPostUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *ForumPostUpdate) SetInstitutionID(v uuid.UUID) *ForumPostUpdate {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableInstitutionID(v *uuid.UUID) *ForumPostUpdate {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *ForumPostUpdate) ClearInstitutionID() *ForumPostUpdate {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ForumPostUpdate) SetGroupID(v uuid.UUID) *ForumPostUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableGroupID(v *uuid.UUID) *ForumPostUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ForumPostUpdate) ClearGroupID() *ForumPostUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ForumPostUpdate) SetTitle(v string) *ForumPostUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableTitle(v *string) *ForumPostUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ForumPostUpdate) SetContent(v string) *ForumPostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableContent(v *string) *ForumPostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *ForumPostUpdate) SetCommentCount(v int) *ForumPostUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *ForumPostUpdate) SetNillableCommentCount(v *int) *ForumPostUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *ForumPostUpdate) AddCommentCount(v int) *ForumPostUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// Mutation returns the ForumPostMutation object of the builder.
func (_u *ForumPostUpdate) Mutation() *ForumPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ForumPostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForumPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ForumPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForumPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ForumPostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := forumpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForumPostUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := forumpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ForumPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := forumpost.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumPost.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommentCount(); ok {
		if err := forumpost.CommentCountValidator(v); err != nil {
			return &ValidationError{Name: "comment_count", err: fmt.Errorf(`repo: validator failed for field "ForumPost.comment_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ForumPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumpost.Table, forumpost.Columns, sqlgraph.NewFieldSpec(forumpost.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(forumpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(forumpost.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(forumpost.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(forumpost.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(forumpost.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(forumpost.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(forumpost.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(forumpost.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(forumpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(forumpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(forumpost.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(forumpost.FieldCommentCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ForumPostUpdateOne is the builder for updating a single ForumPost entity.
type ForumPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForumPostMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ForumPostUpdateOne) SetUpdatedAt(v time.Time) *ForumPostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ForumPostUpdateOne) SetDeletedAt(v time.Time) *ForumPostUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableDeletedAt(v *time.Time) *ForumPostUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ForumPostUpdateOne) ClearDeletedAt() *ForumPostUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *ForumPostUpdateOne) SetAuthorID(v uuid.UUID) *ForumPostUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableAuthorID(v *uuid.UUID) *ForumPostUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *ForumPostUpdateOne) SetInstitutionID(v uuid.UUID) *ForumPostUpdateOne {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableInstitutionID(v *uuid.UUID) *ForumPostUpdateOne {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *ForumPostUpdateOne) ClearInstitutionID() *ForumPostUpdateOne {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ForumPostUpdateOne) SetGroupID(v uuid.UUID) *ForumPostUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableGroupID(v *uuid.UUID) *ForumPostUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ForumPostUpdateOne) ClearGroupID() *ForumPostUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *ForumPostUpdateOne) SetTitle(v string) *ForumPostUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableTitle(v *string) *ForumPostUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ForumPostUpdateOne) SetContent(v string) *ForumPostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableContent(v *string) *ForumPostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *ForumPostUpdateOne) SetCommentCount(v int) *ForumPostUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *ForumPostUpdateOne) SetNillableCommentCount(v *int) *ForumPostUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *ForumPostUpdateOne) AddCommentCount(v int) *ForumPostUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// Mutation returns the ForumPostMutation object of the builder.
func (_u *ForumPostUpdateOne) Mutation() *ForumPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the ForumPostUpdate builder.
func (_u *ForumPostUpdateOne) Where(ps ...predicate.ForumPost) *ForumPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ForumPostUpdateOne) Select(field string, fields ...string) *ForumPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ForumPost entity.
func (_u *ForumPostUpdateOne) Save(ctx context.Context) (*ForumPost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForumPostUpdateOne) SaveX(ctx context.Context) *ForumPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ForumPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForumPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ForumPostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := forumpost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForumPostUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := forumpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ForumPost.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := forumpost.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumPost.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CommentCount(); ok {
		if err := forumpost.CommentCountValidator(v); err != nil {
			return &ValidationError{Name: "comment_count", err: fmt.Errorf(`repo: validator failed for field "ForumPost.comment_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ForumPostUpdateOne) sqlSave(ctx context.Context) (_node *ForumPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forumpost.Table, forumpost.Columns, sqlgraph.NewFieldSpec(forumpost.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ForumPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forumpost.FieldID)
		for _, f := range fields {
			if !forumpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != forumpost.FieldID {
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
		_spec.SetField(forumpost.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(forumpost.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(forumpost.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(forumpost.FieldAuthorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(forumpost.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(forumpost.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(forumpost.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(forumpost.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(forumpost.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(forumpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(forumpost.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(forumpost.FieldCommentCount, field.TypeInt, value)
	}
	_node = &ForumPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forumpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
