// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/orienta-pe/orienta_backend/internal/repo/forumpost"
)

// ForumPostCreate is the builder for creating a ForumPost entity.
type ForumPostCreate struct {
	config
	mutation *ForumPostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ForumPostCreate) SetCreatedAt(v time.Time) *ForumPostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableCreatedAt(v *time.Time) *ForumPostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ForumPostCreate) SetUpdatedAt(v time.Time) *ForumPostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableUpdatedAt(v *time.Time) *ForumPostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ForumPostCreate) SetDeletedAt(v time.Time) *ForumPostCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableDeletedAt(v *time.Time) *ForumPostCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *ForumPostCreate) SetAuthorID(v uuid.UUID) *ForumPostCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetInstitutionID sets the "institution_id" field.
func (_c *ForumPostCreate) SetInstitutionID(v uuid.UUID) *ForumPostCreate {
	_c.mutation.SetInstitutionID(v)
	return _c
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableInstitutionID(v *uuid.UUID) *ForumPostCreate {
	if v != nil {
		_c.SetInstitutionID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ForumPostCreate) SetGroupID(v uuid.UUID) *ForumPostCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableGroupID(v *uuid.UUID) *ForumPostCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ForumPostCreate) SetTitle(v string) *ForumPostCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ForumPostCreate) SetContent(v string) *ForumPostCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *ForumPostCreate) SetCommentCount(v int) *ForumPostCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableCommentCount(v *int) *ForumPostCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ForumPostCreate) SetID(v uuid.UUID) *ForumPostCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ForumPostCreate) SetNillableID(v *uuid.UUID) *ForumPostCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ForumPostMutation object of the builder.
func (_c *ForumPostCreate) Mutation() *ForumPostMutation {
	return _c.mutation
}

// Save creates the ForumPost in the database.
func (_c *ForumPostCreate) Save(ctx context.Context) (*ForumPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ForumPostCreate) SaveX(ctx context.Context) *ForumPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForumPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForumPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ForumPostCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := forumpost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := forumpost.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		v := forumpost.DefaultCommentCount
		_c.mutation.SetCommentCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := forumpost.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ForumPostCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ForumPost.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ForumPost.updated_at"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`repo: missing required field "ForumPost.author_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "ForumPost.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := forumpost.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "ForumPost.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "ForumPost.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := forumpost.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumPost.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		return &ValidationError{Name: "comment_count", err: errors.New(`repo: missing required field "ForumPost.comment_count"`)}
	}
	if v, ok := _c.mutation.CommentCount(); ok {
		if err := forumpost.CommentCountValidator(v); err != nil {
			return &ValidationError{Name: "comment_count", err: fmt.Errorf(`repo: validator failed for field "ForumPost.comment_count": %w`, err)}
		}
	}
	return nil
}

func (_c *ForumPostCreate) sqlSave(ctx context.Context) (*ForumPost, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ForumPostCreate) createSpec() (*ForumPost, *sqlgraph.CreateSpec) {
	var (
		_node = &ForumPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(forumpost.Table, sqlgraph.NewFieldSpec(forumpost.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(forumpost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(forumpost.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(forumpost.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(forumpost.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.InstitutionID(); ok {
		_spec.SetField(forumpost.FieldInstitutionID, field.TypeUUID, value)
		_node.InstitutionID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(forumpost.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(forumpost.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(forumpost.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(forumpost.FieldCommentCount, field.TypeInt, value)
		_node.CommentCount = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ForumPost.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ForumPostUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ForumPostCreate) OnConflict(opts ...sql.ConflictOption) *ForumPostUpsertOne {
	_c.conflict = opts
	return &ForumPostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ForumPostCreate) OnConflictColumns(columns ...string) *ForumPostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ForumPostUpsertOne{
		create: _c,
	}
}

type (
	// ForumPostUpsertOne is the builder for "upsert"-ing
	//  one ForumPost node.
	ForumPostUpsertOne struct {
		create *ForumPostCreate
	}

	// ForumPostUpsert is the "OnConflict" setter.
	ForumPostUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ForumPostUpsert) SetUpdatedAt(v time.Time) *ForumPostUpsert {
	u.Set(forumpost.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateUpdatedAt() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumPostUpsert) SetDeletedAt(v time.Time) *ForumPostUpsert {
	u.Set(forumpost.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateDeletedAt() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumPostUpsert) ClearDeletedAt() *ForumPostUpsert {
	u.SetNull(forumpost.FieldDeletedAt)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *ForumPostUpsert) SetAuthorID(v uuid.UUID) *ForumPostUpsert {
	u.Set(forumpost.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateAuthorID() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldAuthorID)
	return u
}

// SetInstitutionID sets the "institution_id" field.
func (u *ForumPostUpsert) SetInstitutionID(v uuid.UUID) *ForumPostUpsert {
	u.Set(forumpost.FieldInstitutionID, v)
	return u
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateInstitutionID() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldInstitutionID)
	return u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ForumPostUpsert) ClearInstitutionID() *ForumPostUpsert {
	u.SetNull(forumpost.FieldInstitutionID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ForumPostUpsert) SetGroupID(v uuid.UUID) *ForumPostUpsert {
	u.Set(forumpost.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateGroupID() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ForumPostUpsert) ClearGroupID() *ForumPostUpsert {
	u.SetNull(forumpost.FieldGroupID)
	return u
}

// SetTitle sets the "title" field.
func (u *ForumPostUpsert) SetTitle(v string) *ForumPostUpsert {
	u.Set(forumpost.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateTitle() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *ForumPostUpsert) SetContent(v string) *ForumPostUpsert {
	u.Set(forumpost.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateContent() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldContent)
	return u
}

// SetCommentCount sets the "comment_count" field.
func (u *ForumPostUpsert) SetCommentCount(v int) *ForumPostUpsert {
	u.Set(forumpost.FieldCommentCount, v)
	return u
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *ForumPostUpsert) UpdateCommentCount() *ForumPostUpsert {
	u.SetExcluded(forumpost.FieldCommentCount)
	return u
}

// AddCommentCount adds v to the "comment_count" field.
func (u *ForumPostUpsert) AddCommentCount(v int) *ForumPostUpsert {
	u.Add(forumpost.FieldCommentCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(forumpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ForumPostUpsertOne) UpdateNewValues() *ForumPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(forumpost.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(forumpost.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ForumPostUpsertOne) Ignore() *ForumPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ForumPostUpsertOne) DoNothing() *ForumPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ForumPostCreate.OnConflict
// documentation for more info.
func (u *ForumPostUpsertOne) Update(set func(*ForumPostUpsert)) *ForumPostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ForumPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ForumPostUpsertOne) SetUpdatedAt(v time.Time) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateUpdatedAt() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumPostUpsertOne) SetDeletedAt(v time.Time) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateDeletedAt() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumPostUpsertOne) ClearDeletedAt() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearDeletedAt()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ForumPostUpsertOne) SetAuthorID(v uuid.UUID) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateAuthorID() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateAuthorID()
	})
}

// SetInstitutionID sets the "institution_id" field.
func (u *ForumPostUpsertOne) SetInstitutionID(v uuid.UUID) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateInstitutionID() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ForumPostUpsertOne) ClearInstitutionID() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ForumPostUpsertOne) SetGroupID(v uuid.UUID) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateGroupID() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ForumPostUpsertOne) ClearGroupID() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearGroupID()
	})
}

// SetTitle sets the "title" field.
func (u *ForumPostUpsertOne) SetTitle(v string) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateTitle() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ForumPostUpsertOne) SetContent(v string) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateContent() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateContent()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *ForumPostUpsertOne) SetCommentCount(v int) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *ForumPostUpsertOne) AddCommentCount(v int) *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *ForumPostUpsertOne) UpdateCommentCount() *ForumPostUpsertOne {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateCommentCount()
	})
}

// Exec executes the query.
func (u *ForumPostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ForumPostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ForumPostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ForumPostUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ForumPostUpsertOne.ID is not supported by MySQL driver. Use ForumPostUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ForumPostUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ForumPostCreateBulk is the builder for creating many ForumPost entities in bulk.
type ForumPostCreateBulk struct {
	config
	err      error
	builders []*ForumPostCreate
	conflict []sql.ConflictOption
}

// Save creates the ForumPost entities in the database.
func (_c *ForumPostCreateBulk) Save(ctx context.Context) ([]*ForumPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ForumPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForumPostMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ForumPostCreateBulk) SaveX(ctx context.Context) []*ForumPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForumPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForumPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ForumPost.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ForumPostUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ForumPostCreateBulk) OnConflict(opts ...sql.ConflictOption) *ForumPostUpsertBulk {
	_c.conflict = opts
	return &ForumPostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ForumPostCreateBulk) OnConflictColumns(columns ...string) *ForumPostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ForumPostUpsertBulk{
		create: _c,
	}
}

// ForumPostUpsertBulk is the builder for "upsert"-ing
// a bulk of ForumPost nodes.
type ForumPostUpsertBulk struct {
	create *ForumPostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(forumpost.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ForumPostUpsertBulk) UpdateNewValues() *ForumPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(forumpost.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(forumpost.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ForumPost.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ForumPostUpsertBulk) Ignore() *ForumPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ForumPostUpsertBulk) DoNothing() *ForumPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ForumPostCreateBulk.OnConflict
// documentation for more info.
func (u *ForumPostUpsertBulk) Update(set func(*ForumPostUpsert)) *ForumPostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ForumPostUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ForumPostUpsertBulk) SetUpdatedAt(v time.Time) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateUpdatedAt() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumPostUpsertBulk) SetDeletedAt(v time.Time) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateDeletedAt() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumPostUpsertBulk) ClearDeletedAt() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearDeletedAt()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ForumPostUpsertBulk) SetAuthorID(v uuid.UUID) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateAuthorID() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateAuthorID()
	})
}

// SetInstitutionID sets the "institution_id" field.
func (u *ForumPostUpsertBulk) SetInstitutionID(v uuid.UUID) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateInstitutionID() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ForumPostUpsertBulk) ClearInstitutionID() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ForumPostUpsertBulk) SetGroupID(v uuid.UUID) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateGroupID() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ForumPostUpsertBulk) ClearGroupID() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.ClearGroupID()
	})
}

// SetTitle sets the "title" field.
func (u *ForumPostUpsertBulk) SetTitle(v string) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateTitle() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *ForumPostUpsertBulk) SetContent(v string) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateContent() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateContent()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *ForumPostUpsertBulk) SetCommentCount(v int) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *ForumPostUpsertBulk) AddCommentCount(v int) *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *ForumPostUpsertBulk) UpdateCommentCount() *ForumPostUpsertBulk {
	return u.Update(func(s *ForumPostUpsert) {
		s.UpdateCommentCount()
	})
}

// Exec executes the query.
func (u *ForumPostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ForumPostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ForumPostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ForumPostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
