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
	"github.com/orienta-pe/orienta_backend/internal/repo/conversation"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *ConversationUpdate) SetInstitutionID(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableInstitutionID(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *ConversationUpdate) ClearInstitutionID() *ConversationUpdate {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ConversationUpdate) SetGroupID(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableGroupID(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ConversationUpdate) ClearGroupID() *ConversationUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *ConversationUpdate) SetParticipantA(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantA(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *ConversationUpdate) SetParticipantB(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantB(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdate) SetLastMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdate) ClearLastMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ConversationUpdate) SetIsActive(v bool) *ConversationUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableIsActive(v *bool) *ConversationUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(conversation.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(conversation.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(conversation.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(conversation.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(conversation.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetInstitutionID sets the "institution_id" field.
func (_u *ConversationUpdateOne) SetInstitutionID(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableInstitutionID(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *ConversationUpdateOne) ClearInstitutionID() *ConversationUpdateOne {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ConversationUpdateOne) SetGroupID(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableGroupID(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ConversationUpdateOne) ClearGroupID() *ConversationUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *ConversationUpdateOne) SetParticipantA(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantA(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *ConversationUpdateOne) SetParticipantB(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantB(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdateOne) SetLastMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdateOne) ClearLastMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ConversationUpdateOne) SetIsActive(v bool) *ConversationUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableIsActive(v *bool) *ConversationUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(conversation.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(conversation.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(conversation.FieldGroupID, field.TypeUUID, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(conversation.FieldGroupID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(conversation.FieldIsActive, field.TypeBool, value)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
