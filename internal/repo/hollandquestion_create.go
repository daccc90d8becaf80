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
	"github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
)

// HollandQuestionCreate is the builder for creating a HollandQuestion entity.
type HollandQuestionCreate struct {
	config
	mutation *HollandQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HollandQuestionCreate) SetCreatedAt(v time.Time) *HollandQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HollandQuestionCreate) SetNillableCreatedAt(v *time.Time) *HollandQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *HollandQuestionCreate) SetText(v string) *HollandQuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *HollandQuestionCreate) SetSection(v hollandquestion.Section) *HollandQuestionCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *HollandQuestionCreate) SetCategory(v hollandquestion.Category) *HollandQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *HollandQuestionCreate) SetPosition(v int) *HollandQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *HollandQuestionCreate) SetID(v uuid.UUID) *HollandQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HollandQuestionCreate) SetNillableID(v *uuid.UUID) *HollandQuestionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the HollandQuestionMutation object of the builder.
func (_c *HollandQuestionCreate) Mutation() *HollandQuestionMutation {
	return _c.mutation
}

// Save creates the HollandQuestion in the database.
func (_c *HollandQuestionCreate) Save(ctx context.Context) (*HollandQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HollandQuestionCreate) SaveX(ctx context.Context) *HollandQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HollandQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HollandQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HollandQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hollandquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := hollandquestion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HollandQuestionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HollandQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`repo: missing required field "HollandQuestion.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := hollandquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`repo: missing required field "HollandQuestion.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := hollandquestion.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`repo: missing required field "HollandQuestion.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := hollandquestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`repo: missing required field "HollandQuestion.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := hollandquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.position": %w`, err)}
		}
	}
	return nil
}

func (_c *HollandQuestionCreate) sqlSave(ctx context.Context) (*HollandQuestion, error) {
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

func (_c *HollandQuestionCreate) createSpec() (*HollandQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &HollandQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hollandquestion.Table, sqlgraph.NewFieldSpec(hollandquestion.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hollandquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(hollandquestion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(hollandquestion.FieldSection, field.TypeEnum, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(hollandquestion.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(hollandquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HollandQuestion.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HollandQuestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HollandQuestionCreate) OnConflict(opts ...sql.ConflictOption) *HollandQuestionUpsertOne {
	_c.conflict = opts
	return &HollandQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HollandQuestionCreate) OnConflictColumns(columns ...string) *HollandQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HollandQuestionUpsertOne{
		create: _c,
	}
}

type (
	// HollandQuestionUpsertOne is the builder for "upsert"-ing
	//  one HollandQuestion node.
	HollandQuestionUpsertOne struct {
		create *HollandQuestionCreate
	}

	// HollandQuestionUpsert is the "OnConflict" setter.
	HollandQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *HollandQuestionUpsert) SetText(v string) *HollandQuestionUpsert {
	u.Set(hollandquestion.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *HollandQuestionUpsert) UpdateText() *HollandQuestionUpsert {
	u.SetExcluded(hollandquestion.FieldText)
	return u
}

// SetSection sets the "section" field.
func (u *HollandQuestionUpsert) SetSection(v hollandquestion.Section) *HollandQuestionUpsert {
	u.Set(hollandquestion.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *HollandQuestionUpsert) UpdateSection() *HollandQuestionUpsert {
	u.SetExcluded(hollandquestion.FieldSection)
	return u
}

// SetCategory sets the "category" field.
func (u *HollandQuestionUpsert) SetCategory(v hollandquestion.Category) *HollandQuestionUpsert {
	u.Set(hollandquestion.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *HollandQuestionUpsert) UpdateCategory() *HollandQuestionUpsert {
	u.SetExcluded(hollandquestion.FieldCategory)
	return u
}

// SetPosition sets the "position" field.
func (u *HollandQuestionUpsert) SetPosition(v int) *HollandQuestionUpsert {
	u.Set(hollandquestion.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HollandQuestionUpsert) UpdatePosition() *HollandQuestionUpsert {
	u.SetExcluded(hollandquestion.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *HollandQuestionUpsert) AddPosition(v int) *HollandQuestionUpsert {
	u.Add(hollandquestion.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hollandquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HollandQuestionUpsertOne) UpdateNewValues() *HollandQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(hollandquestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hollandquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HollandQuestionUpsertOne) Ignore() *HollandQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HollandQuestionUpsertOne) DoNothing() *HollandQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HollandQuestionCreate.OnConflict
// documentation for more info.
func (u *HollandQuestionUpsertOne) Update(set func(*HollandQuestionUpsert)) *HollandQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HollandQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *HollandQuestionUpsertOne) SetText(v string) *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *HollandQuestionUpsertOne) UpdateText() *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateText()
	})
}

// SetSection sets the "section" field.
func (u *HollandQuestionUpsertOne) SetSection(v hollandquestion.Section) *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *HollandQuestionUpsertOne) UpdateSection() *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateSection()
	})
}

// SetCategory sets the "category" field.
func (u *HollandQuestionUpsertOne) SetCategory(v hollandquestion.Category) *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *HollandQuestionUpsertOne) UpdateCategory() *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetPosition sets the "position" field.
func (u *HollandQuestionUpsertOne) SetPosition(v int) *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *HollandQuestionUpsertOne) AddPosition(v int) *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HollandQuestionUpsertOne) UpdatePosition() *HollandQuestionUpsertOne {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *HollandQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HollandQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HollandQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HollandQuestionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HollandQuestionUpsertOne.ID is not supported by MySQL driver. Use HollandQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HollandQuestionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HollandQuestionCreateBulk is the builder for creating many HollandQuestion entities in bulk.
type HollandQuestionCreateBulk struct {
	config
	err      error
	builders []*HollandQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the HollandQuestion entities in the database.
func (_c *HollandQuestionCreateBulk) Save(ctx context.Context) ([]*HollandQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HollandQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HollandQuestionMutation)
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
func (_c *HollandQuestionCreateBulk) SaveX(ctx context.Context) []*HollandQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HollandQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HollandQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HollandQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HollandQuestionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HollandQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *HollandQuestionUpsertBulk {
	_c.conflict = opts
	return &HollandQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HollandQuestionCreateBulk) OnConflictColumns(columns ...string) *HollandQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HollandQuestionUpsertBulk{
		create: _c,
	}
}

// HollandQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of HollandQuestion nodes.
type HollandQuestionUpsertBulk struct {
	create *HollandQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hollandquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HollandQuestionUpsertBulk) UpdateNewValues() *HollandQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(hollandquestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hollandquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HollandQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HollandQuestionUpsertBulk) Ignore() *HollandQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HollandQuestionUpsertBulk) DoNothing() *HollandQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HollandQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *HollandQuestionUpsertBulk) Update(set func(*HollandQuestionUpsert)) *HollandQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HollandQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *HollandQuestionUpsertBulk) SetText(v string) *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *HollandQuestionUpsertBulk) UpdateText() *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateText()
	})
}

// SetSection sets the "section" field.
func (u *HollandQuestionUpsertBulk) SetSection(v hollandquestion.Section) *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *HollandQuestionUpsertBulk) UpdateSection() *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateSection()
	})
}

// SetCategory sets the "category" field.
func (u *HollandQuestionUpsertBulk) SetCategory(v hollandquestion.Category) *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *HollandQuestionUpsertBulk) UpdateCategory() *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdateCategory()
	})
}

// SetPosition sets the "position" field.
func (u *HollandQuestionUpsertBulk) SetPosition(v int) *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *HollandQuestionUpsertBulk) AddPosition(v int) *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *HollandQuestionUpsertBulk) UpdatePosition() *HollandQuestionUpsertBulk {
	return u.Update(func(s *HollandQuestionUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *HollandQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HollandQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HollandQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HollandQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
