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
	"github.com/orienta-pe/orienta_backend/internal/repo/academicprediction"
)

// AcademicPredictionCreate is the builder for creating a AcademicPrediction entity.
type AcademicPredictionCreate struct {
	config
	mutation *AcademicPredictionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AcademicPredictionCreate) SetCreatedAt(v time.Time) *AcademicPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AcademicPredictionCreate) SetNillableCreatedAt(v *time.Time) *AcademicPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AcademicPredictionCreate) SetUpdatedAt(v time.Time) *AcademicPredictionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AcademicPredictionCreate) SetNillableUpdatedAt(v *time.Time) *AcademicPredictionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AcademicPredictionCreate) SetUserID(v uuid.UUID) *AcademicPredictionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetGrades sets the "grades" field.
func (_c *AcademicPredictionCreate) SetGrades(v map[string]string) *AcademicPredictionCreate {
	_c.mutation.SetGrades(v)
	return _c
}

// SetPrediction sets the "prediction" field.
func (_c *AcademicPredictionCreate) SetPrediction(v string) *AcademicPredictionCreate {
	_c.mutation.SetPrediction(v)
	return _c
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_c *AcademicPredictionCreate) SetNillablePrediction(v *string) *AcademicPredictionCreate {
	if v != nil {
		_c.SetPrediction(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AcademicPredictionCreate) SetCompletedAt(v time.Time) *AcademicPredictionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AcademicPredictionCreate) SetNillableCompletedAt(v *time.Time) *AcademicPredictionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AcademicPredictionCreate) SetID(v uuid.UUID) *AcademicPredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AcademicPredictionCreate) SetNillableID(v *uuid.UUID) *AcademicPredictionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AcademicPredictionMutation object of the builder.
func (_c *AcademicPredictionCreate) Mutation() *AcademicPredictionMutation {
	return _c.mutation
}

// Save creates the AcademicPrediction in the database.
func (_c *AcademicPredictionCreate) Save(ctx context.Context) (*AcademicPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AcademicPredictionCreate) SaveX(ctx context.Context) *AcademicPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AcademicPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AcademicPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AcademicPredictionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := academicprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := academicprediction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := academicprediction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AcademicPredictionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AcademicPrediction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AcademicPrediction.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "AcademicPrediction.user_id"`)}
	}
	if v, ok := _c.mutation.Prediction(); ok {
		if err := academicprediction.PredictionValidator(v); err != nil {
			return &ValidationError{Name: "prediction", err: fmt.Errorf(`repo: validator failed for field "AcademicPrediction.prediction": %w`, err)}
		}
	}
	return nil
}

func (_c *AcademicPredictionCreate) sqlSave(ctx context.Context) (*AcademicPrediction, error) {
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

func (_c *AcademicPredictionCreate) createSpec() (*AcademicPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &AcademicPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(academicprediction.Table, sqlgraph.NewFieldSpec(academicprediction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(academicprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(academicprediction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(academicprediction.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Grades(); ok {
		_spec.SetField(academicprediction.FieldGrades, field.TypeJSON, value)
		_node.Grades = value
	}
	if value, ok := _c.mutation.Prediction(); ok {
		_spec.SetField(academicprediction.FieldPrediction, field.TypeString, value)
		_node.Prediction = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(academicprediction.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AcademicPrediction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AcademicPredictionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AcademicPredictionCreate) OnConflict(opts ...sql.ConflictOption) *AcademicPredictionUpsertOne {
	_c.conflict = opts
	return &AcademicPredictionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AcademicPredictionCreate) OnConflictColumns(columns ...string) *AcademicPredictionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AcademicPredictionUpsertOne{
		create: _c,
	}
}

type (
	// AcademicPredictionUpsertOne is the builder for "upsert"-ing
	//  one AcademicPrediction node.
	AcademicPredictionUpsertOne struct {
		create *AcademicPredictionCreate
	}

	// AcademicPredictionUpsert is the "OnConflict" setter.
	AcademicPredictionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AcademicPredictionUpsert) SetUpdatedAt(v time.Time) *AcademicPredictionUpsert {
	u.Set(academicprediction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsert) UpdateUpdatedAt() *AcademicPredictionUpsert {
	u.SetExcluded(academicprediction.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *AcademicPredictionUpsert) SetUserID(v uuid.UUID) *AcademicPredictionUpsert {
	u.Set(academicprediction.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AcademicPredictionUpsert) UpdateUserID() *AcademicPredictionUpsert {
	u.SetExcluded(academicprediction.FieldUserID)
	return u
}

// SetGrades sets the "grades" field.
func (u *AcademicPredictionUpsert) SetGrades(v map[string]string) *AcademicPredictionUpsert {
	u.Set(academicprediction.FieldGrades, v)
	return u
}

// UpdateGrades sets the "grades" field to the value that was provided on create.
func (u *AcademicPredictionUpsert) UpdateGrades() *AcademicPredictionUpsert {
	u.SetExcluded(academicprediction.FieldGrades)
	return u
}

// ClearGrades clears the value of the "grades" field.
func (u *AcademicPredictionUpsert) ClearGrades() *AcademicPredictionUpsert {
	u.SetNull(academicprediction.FieldGrades)
	return u
}

// SetPrediction sets the "prediction" field.
func (u *AcademicPredictionUpsert) SetPrediction(v string) *AcademicPredictionUpsert {
	u.Set(academicprediction.FieldPrediction, v)
	return u
}

// UpdatePrediction sets the "prediction" field to the value that was provided on create.
func (u *AcademicPredictionUpsert) UpdatePrediction() *AcademicPredictionUpsert {
	u.SetExcluded(academicprediction.FieldPrediction)
	return u
}

// ClearPrediction clears the value of the "prediction" field.
func (u *AcademicPredictionUpsert) ClearPrediction() *AcademicPredictionUpsert {
	u.SetNull(academicprediction.FieldPrediction)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AcademicPredictionUpsert) SetCompletedAt(v time.Time) *AcademicPredictionUpsert {
	u.Set(academicprediction.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsert) UpdateCompletedAt() *AcademicPredictionUpsert {
	u.SetExcluded(academicprediction.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AcademicPredictionUpsert) ClearCompletedAt() *AcademicPredictionUpsert {
	u.SetNull(academicprediction.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(academicprediction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AcademicPredictionUpsertOne) UpdateNewValues() *AcademicPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(academicprediction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(academicprediction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AcademicPredictionUpsertOne) Ignore() *AcademicPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AcademicPredictionUpsertOne) DoNothing() *AcademicPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AcademicPredictionCreate.OnConflict
// documentation for more info.
func (u *AcademicPredictionUpsertOne) Update(set func(*AcademicPredictionUpsert)) *AcademicPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AcademicPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AcademicPredictionUpsertOne) SetUpdatedAt(v time.Time) *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsertOne) UpdateUpdatedAt() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *AcademicPredictionUpsertOne) SetUserID(v uuid.UUID) *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AcademicPredictionUpsertOne) UpdateUserID() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetGrades sets the "grades" field.
func (u *AcademicPredictionUpsertOne) SetGrades(v map[string]string) *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetGrades(v)
	})
}

// UpdateGrades sets the "grades" field to the value that was provided on create.
func (u *AcademicPredictionUpsertOne) UpdateGrades() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateGrades()
	})
}

// ClearGrades clears the value of the "grades" field.
func (u *AcademicPredictionUpsertOne) ClearGrades() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearGrades()
	})
}

// SetPrediction sets the "prediction" field.
func (u *AcademicPredictionUpsertOne) SetPrediction(v string) *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetPrediction(v)
	})
}

// UpdatePrediction sets the "prediction" field to the value that was provided on create.
func (u *AcademicPredictionUpsertOne) UpdatePrediction() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdatePrediction()
	})
}

// ClearPrediction clears the value of the "prediction" field.
func (u *AcademicPredictionUpsertOne) ClearPrediction() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearPrediction()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AcademicPredictionUpsertOne) SetCompletedAt(v time.Time) *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsertOne) UpdateCompletedAt() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AcademicPredictionUpsertOne) ClearCompletedAt() *AcademicPredictionUpsertOne {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AcademicPredictionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AcademicPredictionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AcademicPredictionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AcademicPredictionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AcademicPredictionUpsertOne.ID is not supported by MySQL driver. Use AcademicPredictionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AcademicPredictionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AcademicPredictionCreateBulk is the builder for creating many AcademicPrediction entities in bulk.
type AcademicPredictionCreateBulk struct {
	config
	err      error
	builders []*AcademicPredictionCreate
	conflict []sql.ConflictOption
}

// Save creates the AcademicPrediction entities in the database.
func (_c *AcademicPredictionCreateBulk) Save(ctx context.Context) ([]*AcademicPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AcademicPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AcademicPredictionMutation)
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
func (_c *AcademicPredictionCreateBulk) SaveX(ctx context.Context) []*AcademicPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AcademicPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AcademicPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AcademicPrediction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AcademicPredictionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AcademicPredictionCreateBulk) OnConflict(opts ...sql.ConflictOption) *AcademicPredictionUpsertBulk {
	_c.conflict = opts
	return &AcademicPredictionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AcademicPredictionCreateBulk) OnConflictColumns(columns ...string) *AcademicPredictionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AcademicPredictionUpsertBulk{
		create: _c,
	}
}

// AcademicPredictionUpsertBulk is the builder for "upsert"-ing
// a bulk of AcademicPrediction nodes.
type AcademicPredictionUpsertBulk struct {
	create *AcademicPredictionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(academicprediction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AcademicPredictionUpsertBulk) UpdateNewValues() *AcademicPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(academicprediction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(academicprediction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AcademicPrediction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AcademicPredictionUpsertBulk) Ignore() *AcademicPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AcademicPredictionUpsertBulk) DoNothing() *AcademicPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AcademicPredictionCreateBulk.OnConflict
// documentation for more info.
func (u *AcademicPredictionUpsertBulk) Update(set func(*AcademicPredictionUpsert)) *AcademicPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AcademicPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AcademicPredictionUpsertBulk) SetUpdatedAt(v time.Time) *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsertBulk) UpdateUpdatedAt() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *AcademicPredictionUpsertBulk) SetUserID(v uuid.UUID) *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AcademicPredictionUpsertBulk) UpdateUserID() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetGrades sets the "grades" field.
func (u *AcademicPredictionUpsertBulk) SetGrades(v map[string]string) *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetGrades(v)
	})
}

// UpdateGrades sets the "grades" field to the value that was provided on create.
func (u *AcademicPredictionUpsertBulk) UpdateGrades() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateGrades()
	})
}

// ClearGrades clears the value of the "grades" field.
func (u *AcademicPredictionUpsertBulk) ClearGrades() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearGrades()
	})
}

// SetPrediction sets the "prediction" field.
func (u *AcademicPredictionUpsertBulk) SetPrediction(v string) *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetPrediction(v)
	})
}

// UpdatePrediction sets the "prediction" field to the value that was provided on create.
func (u *AcademicPredictionUpsertBulk) UpdatePrediction() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdatePrediction()
	})
}

// ClearPrediction clears the value of the "prediction" field.
func (u *AcademicPredictionUpsertBulk) ClearPrediction() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearPrediction()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AcademicPredictionUpsertBulk) SetCompletedAt(v time.Time) *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AcademicPredictionUpsertBulk) UpdateCompletedAt() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AcademicPredictionUpsertBulk) ClearCompletedAt() *AcademicPredictionUpsertBulk {
	return u.Update(func(s *AcademicPredictionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *AcademicPredictionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AcademicPredictionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AcademicPredictionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AcademicPredictionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
