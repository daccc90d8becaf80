// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orienta-pe/orienta_backend/internal/repo/hollandquestion"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// HollandQuestionUpdate is the builder for updating HollandQuestion entities.
type HollandQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *HollandQuestionMutation
}

// Where appends a list predicates to the HollandQuestionUpdate builder.
func (_u *HollandQuestionUpdate) Where(ps ...predicate.HollandQuestion) *HollandQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *HollandQuestionUpdate) SetText(v string) *HollandQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *HollandQuestionUpdate) SetNillableText(v *string) *HollandQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *HollandQuestionUpdate) SetSection(v hollandquestion.Section) *HollandQuestionUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *HollandQuestionUpdate) SetNillableSection(v *hollandquestion.Section) *HollandQuestionUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HollandQuestionUpdate) SetCategory(v hollandquestion.Category) *HollandQuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HollandQuestionUpdate) SetNillableCategory(v *hollandquestion.Category) *HollandQuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *HollandQuestionUpdate) SetPosition(v int) *HollandQuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *HollandQuestionUpdate) SetNillablePosition(v *int) *HollandQuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *HollandQuestionUpdate) AddPosition(v int) *HollandQuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the HollandQuestionMutation object of the builder.
func (_u *HollandQuestionUpdate) Mutation() *HollandQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HollandQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HollandQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HollandQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HollandQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HollandQuestionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := hollandquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := hollandquestion.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := hollandquestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := hollandquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.position": %w`, err)}
		}
	}
	return nil
}

func (_u *HollandQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hollandquestion.Table, hollandquestion.Columns, sqlgraph.NewFieldSpec(hollandquestion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(hollandquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(hollandquestion.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(hollandquestion.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(hollandquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(hollandquestion.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hollandquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HollandQuestionUpdateOne is the builder for updating a single HollandQuestion entity.
type HollandQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HollandQuestionMutation
}

// SetText sets the "text" field.
func (_u *HollandQuestionUpdateOne) SetText(v string) *HollandQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *HollandQuestionUpdateOne) SetNillableText(v *string) *HollandQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *HollandQuestionUpdateOne) SetSection(v hollandquestion.Section) *HollandQuestionUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *HollandQuestionUpdateOne) SetNillableSection(v *hollandquestion.Section) *HollandQuestionUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HollandQuestionUpdateOne) SetCategory(v hollandquestion.Category) *HollandQuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HollandQuestionUpdateOne) SetNillableCategory(v *hollandquestion.Category) *HollandQuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *HollandQuestionUpdateOne) SetPosition(v int) *HollandQuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *HollandQuestionUpdateOne) SetNillablePosition(v *int) *HollandQuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *HollandQuestionUpdateOne) AddPosition(v int) *HollandQuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the HollandQuestionMutation object of the builder.
func (_u *HollandQuestionUpdateOne) Mutation() *HollandQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the HollandQuestionUpdate builder.
func (_u *HollandQuestionUpdateOne) Where(ps ...predicate.HollandQuestion) *HollandQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HollandQuestionUpdateOne) Select(field string, fields ...string) *HollandQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HollandQuestion entity.
func (_u *HollandQuestionUpdateOne) Save(ctx context.Context) (*HollandQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HollandQuestionUpdateOne) SaveX(ctx context.Context) *HollandQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HollandQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HollandQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HollandQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := hollandquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := hollandquestion.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.section": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := hollandquestion.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := hollandquestion.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`repo: validator failed for field "HollandQuestion.position": %w`, err)}
		}
	}
	return nil
}

func (_u *HollandQuestionUpdateOne) sqlSave(ctx context.Context) (_node *HollandQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hollandquestion.Table, hollandquestion.Columns, sqlgraph.NewFieldSpec(hollandquestion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HollandQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hollandquestion.FieldID)
		for _, f := range fields {
			if !hollandquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != hollandquestion.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(hollandquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(hollandquestion.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(hollandquestion.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(hollandquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(hollandquestion.FieldPosition, field.TypeInt, value)
	}
	_node = &HollandQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hollandquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
