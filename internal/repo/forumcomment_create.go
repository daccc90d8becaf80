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
	"github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
)

// ForumCommentCreate is the builder for creating a ForumComment entity.
type ForumCommentCreate struct {
	config
	mutation *ForumCommentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ForumCommentCreate) SetCreatedAt(v time.Time) *ForumCommentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ForumCommentCreate) SetNillableCreatedAt(v *time.Time) *ForumCommentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ForumCommentCreate) SetDeletedAt(v time.Time) *ForumCommentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ForumCommentCreate) SetNillableDeletedAt(v *time.Time) *ForumCommentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPostID sets the "post_id" field.
func (_c *ForumCommentCreate) SetPostID(v uuid.UUID) *ForumCommentCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *ForumCommentCreate) SetAuthorID(v uuid.UUID) *ForumCommentCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ForumCommentCreate) SetContent(v string) *ForumCommentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ForumCommentCreate) SetID(v uuid.UUID) *ForumCommentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ForumCommentCreate) SetNillableID(v *uuid.UUID) *ForumCommentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ForumCommentMutation object of the builder.
func (_c *ForumCommentCreate) Mutation() *ForumCommentMutation {
	return _c.mutation
}

// Save creates the ForumComment in the database.
func (_c *ForumCommentCreate) Save(ctx context.Context) (*ForumComment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ForumCommentCreate) SaveX(ctx context.Context) *ForumComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForumCommentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForumCommentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ForumCommentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := forumcomment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := forumcomment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ForumCommentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ForumComment.created_at"`)}
	}
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`repo: missing required field "ForumComment.post_id"`)}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`repo: missing required field "ForumComment.author_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "ForumComment.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := forumcomment.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`repo: validator failed for field "ForumComment.content": %w`, err)}
		}
	}
	return nil
}

func (_c *ForumCommentCreate) sqlSave(ctx context.Context) (*ForumComment, error) {
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

func (_c *ForumCommentCreate) createSpec() (*ForumComment, *sqlgraph.CreateSpec) {
	var (
		_node = &ForumComment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(forumcomment.Table, sqlgraph.NewFieldSpec(forumcomment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(forumcomment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(forumcomment.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.PostID(); ok {
		_spec.SetField(forumcomment.FieldPostID, field.TypeUUID, value)
		_node.PostID = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(forumcomment.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(forumcomment.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ForumComment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ForumCommentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ForumCommentCreate) OnConflict(opts ...sql.ConflictOption) *ForumCommentUpsertOne {
	_c.conflict = opts
	return &ForumCommentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ForumCommentCreate) OnConflictColumns(columns ...string) *ForumCommentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ForumCommentUpsertOne{
		create: _c,
	}
}

type (
	// ForumCommentUpsertOne is the builder for "upsert"-ing
	//  one ForumComment node.
	ForumCommentUpsertOne struct {
		create *ForumCommentCreate
	}

	// ForumCommentUpsert is the "OnConflict" setter.
	ForumCommentUpsert struct {
		*sql.UpdateSet
	}
)

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumCommentUpsert) SetDeletedAt(v time.Time) *ForumCommentUpsert {
	u.Set(forumcomment.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumCommentUpsert) UpdateDeletedAt() *ForumCommentUpsert {
	u.SetExcluded(forumcomment.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumCommentUpsert) ClearDeletedAt() *ForumCommentUpsert {
	u.SetNull(forumcomment.FieldDeletedAt)
	return u
}

// SetPostID sets the "post_id" field.
func (u *ForumCommentUpsert) SetPostID(v uuid.UUID) *ForumCommentUpsert {
	u.Set(forumcomment.FieldPostID, v)
	return u
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *ForumCommentUpsert) UpdatePostID() *ForumCommentUpsert {
	u.SetExcluded(forumcomment.FieldPostID)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *ForumCommentUpsert) SetAuthorID(v uuid.UUID) *ForumCommentUpsert {
	u.Set(forumcomment.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumCommentUpsert) UpdateAuthorID() *ForumCommentUpsert {
	u.SetExcluded(forumcomment.FieldAuthorID)
	return u
}

// SetContent sets the "content" field.
func (u *ForumCommentUpsert) SetContent(v string) *ForumCommentUpsert {
	u.Set(forumcomment.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumCommentUpsert) UpdateContent() *ForumCommentUpsert {
	u.SetExcluded(forumcomment.FieldContent)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(forumcomment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ForumCommentUpsertOne) UpdateNewValues() *ForumCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(forumcomment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(forumcomment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ForumCommentUpsertOne) Ignore() *ForumCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ForumCommentUpsertOne) DoNothing() *ForumCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ForumCommentCreate.OnConflict
// documentation for more info.
func (u *ForumCommentUpsertOne) Update(set func(*ForumCommentUpsert)) *ForumCommentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ForumCommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumCommentUpsertOne) SetDeletedAt(v time.Time) *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumCommentUpsertOne) UpdateDeletedAt() *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumCommentUpsertOne) ClearDeletedAt() *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPostID sets the "post_id" field.
func (u *ForumCommentUpsertOne) SetPostID(v uuid.UUID) *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *ForumCommentUpsertOne) UpdatePostID() *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdatePostID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ForumCommentUpsertOne) SetAuthorID(v uuid.UUID) *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumCommentUpsertOne) UpdateAuthorID() *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateAuthorID()
	})
}

// SetContent sets the "content" field.
func (u *ForumCommentUpsertOne) SetContent(v string) *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumCommentUpsertOne) UpdateContent() *ForumCommentUpsertOne {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *ForumCommentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ForumCommentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ForumCommentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ForumCommentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ForumCommentUpsertOne.ID is not supported by MySQL driver. Use ForumCommentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ForumCommentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ForumCommentCreateBulk is the builder for creating many ForumComment entities in bulk.
type ForumCommentCreateBulk struct {
	config
	err      error
	builders []*ForumCommentCreate
	conflict []sql.ConflictOption
}

// Save creates the ForumComment entities in the database.
func (_c *ForumCommentCreateBulk) Save(ctx context.Context) ([]*ForumComment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ForumComment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForumCommentMutation)
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
func (_c *ForumCommentCreateBulk) SaveX(ctx context.Context) []*ForumComment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForumCommentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForumCommentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ForumComment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ForumCommentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ForumCommentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ForumCommentUpsertBulk {
	_c.conflict = opts
	return &ForumCommentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ForumCommentCreateBulk) OnConflictColumns(columns ...string) *ForumCommentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ForumCommentUpsertBulk{
		create: _c,
	}
}

// ForumCommentUpsertBulk is the builder for "upsert"-ing
// a bulk of ForumComment nodes.
type ForumCommentUpsertBulk struct {
	create *ForumCommentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(forumcomment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ForumCommentUpsertBulk) UpdateNewValues() *ForumCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(forumcomment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(forumcomment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ForumComment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ForumCommentUpsertBulk) Ignore() *ForumCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ForumCommentUpsertBulk) DoNothing() *ForumCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ForumCommentCreateBulk.OnConflict
// documentation for more info.
func (u *ForumCommentUpsertBulk) Update(set func(*ForumCommentUpsert)) *ForumCommentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ForumCommentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ForumCommentUpsertBulk) SetDeletedAt(v time.Time) *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ForumCommentUpsertBulk) UpdateDeletedAt() *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ForumCommentUpsertBulk) ClearDeletedAt() *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPostID sets the "post_id" field.
func (u *ForumCommentUpsertBulk) SetPostID(v uuid.UUID) *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetPostID(v)
	})
}

// UpdatePostID sets the "post_id" field to the value that was provided on create.
func (u *ForumCommentUpsertBulk) UpdatePostID() *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdatePostID()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *ForumCommentUpsertBulk) SetAuthorID(v uuid.UUID) *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *ForumCommentUpsertBulk) UpdateAuthorID() *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateAuthorID()
	})
}

// SetContent sets the "content" field.
func (u *ForumCommentUpsertBulk) SetContent(v string) *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ForumCommentUpsertBulk) UpdateContent() *ForumCommentUpsertBulk {
	return u.Update(func(s *ForumCommentUpsert) {
		s.UpdateContent()
	})
}

// Exec executes the query.
func (u *ForumCommentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ForumCommentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ForumCommentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ForumCommentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
