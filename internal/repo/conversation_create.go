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
	"github.com/orienta-pe/orienta_backend/internal/repo/conversation"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInstitutionID sets the "institution_id" field.
func (_c *ConversationCreate) SetInstitutionID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetInstitutionID(v)
	return _c
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableInstitutionID(v *uuid.UUID) *ConversationCreate {
	if v != nil {
		_c.SetInstitutionID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ConversationCreate) SetGroupID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableGroupID(v *uuid.UUID) *ConversationCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetParticipantA sets the "participant_a" field.
func (_c *ConversationCreate) SetParticipantA(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetParticipantA(v)
	return _c
}

// SetParticipantB sets the "participant_b" field.
func (_c *ConversationCreate) SetParticipantB(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetParticipantB(v)
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *ConversationCreate) SetLastMessageAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastMessageAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastMessageAt(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ConversationCreate) SetIsActive(v bool) *ConversationCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableIsActive(v *bool) *ConversationCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableID(v *uuid.UUID) *ConversationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := conversation.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := conversation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.ParticipantA(); !ok {
		return &ValidationError{Name: "participant_a", err: errors.New(`repo: missing required field "Conversation.participant_a"`)}
	}
	if _, ok := _c.mutation.ParticipantB(); !ok {
		return &ValidationError{Name: "participant_b", err: errors.New(`repo: missing required field "Conversation.participant_b"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Conversation.is_active"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.InstitutionID(); ok {
		_spec.SetField(conversation.FieldInstitutionID, field.TypeUUID, value)
		_node.InstitutionID = &value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(conversation.FieldGroupID, field.TypeUUID, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
		_node.ParticipantA = value
	}
	if value, ok := _c.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
		_node.ParticipantB = value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(conversation.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetInstitutionID sets the "institution_id" field.
func (u *ConversationUpsert) SetInstitutionID(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldInstitutionID, v)
	return u
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateInstitutionID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldInstitutionID)
	return u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ConversationUpsert) ClearInstitutionID() *ConversationUpsert {
	u.SetNull(conversation.FieldInstitutionID)
	return u
}

// SetGroupID sets the "group_id" field.
func (u *ConversationUpsert) SetGroupID(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldGroupID, v)
	return u
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateGroupID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldGroupID)
	return u
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ConversationUpsert) ClearGroupID() *ConversationUpsert {
	u.SetNull(conversation.FieldGroupID)
	return u
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsert) SetParticipantA(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldParticipantA, v)
	return u
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantA() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantA)
	return u
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsert) SetParticipantB(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldParticipantB, v)
	return u
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantB() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantB)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsert) SetLastMessageAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLastMessageAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLastMessageAt)
	return u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsert) ClearLastMessageAt() *ConversationUpsert {
	u.SetNull(conversation.FieldLastMessageAt)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ConversationUpsert) SetIsActive(v bool) *ConversationUpsert {
	u.Set(conversation.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateIsActive() *ConversationUpsert {
	u.SetExcluded(conversation.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstitutionID sets the "institution_id" field.
func (u *ConversationUpsertOne) SetInstitutionID(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateInstitutionID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ConversationUpsertOne) ClearInstitutionID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ConversationUpsertOne) SetGroupID(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateGroupID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ConversationUpsertOne) ClearGroupID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearGroupID()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsertOne) SetParticipantA(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantA() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsertOne) SetParticipantB(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantB() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantB()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsertOne) SetLastMessageAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLastMessageAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsertOne) ClearLastMessageAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ConversationUpsertOne) SetIsActive(v bool) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateIsActive() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetInstitutionID sets the "institution_id" field.
func (u *ConversationUpsertBulk) SetInstitutionID(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetInstitutionID(v)
	})
}

// UpdateInstitutionID sets the "institution_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateInstitutionID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateInstitutionID()
	})
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (u *ConversationUpsertBulk) ClearInstitutionID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearInstitutionID()
	})
}

// SetGroupID sets the "group_id" field.
func (u *ConversationUpsertBulk) SetGroupID(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetGroupID(v)
	})
}

// UpdateGroupID sets the "group_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateGroupID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateGroupID()
	})
}

// ClearGroupID clears the value of the "group_id" field.
func (u *ConversationUpsertBulk) ClearGroupID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearGroupID()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsertBulk) SetParticipantA(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantA() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsertBulk) SetParticipantB(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantB() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantB()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsertBulk) SetLastMessageAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLastMessageAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsertBulk) ClearLastMessageAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ConversationUpsertBulk) SetIsActive(v bool) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateIsActive() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
