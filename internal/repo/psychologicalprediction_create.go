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
	"github.com/orienta-pe/orienta_backend/internal/repo/psychologicalprediction"
	"github.com/orienta-pe/orienta_backend/internal/riasec"
)

// PsychologicalPredictionCreate is the builder for creating a PsychologicalPrediction entity.
type PsychologicalPredictionCreate struct {
	config
	mutation *PsychologicalPredictionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologicalPredictionCreate) SetCreatedAt(v time.Time) *PsychologicalPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableCreatedAt(v *time.Time) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologicalPredictionCreate) SetUpdatedAt(v time.Time) *PsychologicalPredictionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableUpdatedAt(v *time.Time) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PsychologicalPredictionCreate) SetUserID(v uuid.UUID) *PsychologicalPredictionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *PsychologicalPredictionCreate) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetProgressOverall sets the "progress_overall" field.
func (_c *PsychologicalPredictionCreate) SetProgressOverall(v float64) *PsychologicalPredictionCreate {
	_c.mutation.SetProgressOverall(v)
	return _c
}

// SetNillableProgressOverall sets the "progress_overall" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableProgressOverall(v *float64) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetProgressOverall(*v)
	}
	return _c
}

// SetProgressSections sets the "progress_sections" field.
func (_c *PsychologicalPredictionCreate) SetProgressSections(v map[string]float64) *PsychologicalPredictionCreate {
	_c.mutation.SetProgressSections(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *PsychologicalPredictionCreate) SetResult(v string) *PsychologicalPredictionCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableResult(v *string) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *PsychologicalPredictionCreate) SetResults(v riasec.Tally) *PsychologicalPredictionCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableResults(v *riasec.Tally) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetResults(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PsychologicalPredictionCreate) SetCompletedAt(v time.Time) *PsychologicalPredictionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableCompletedAt(v *time.Time) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologicalPredictionCreate) SetID(v uuid.UUID) *PsychologicalPredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologicalPredictionCreate) SetNillableID(v *uuid.UUID) *PsychologicalPredictionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PsychologicalPredictionMutation object of the builder.
func (_c *PsychologicalPredictionCreate) Mutation() *PsychologicalPredictionMutation {
	return _c.mutation
}

// Save creates the PsychologicalPrediction in the database.
func (_c *PsychologicalPredictionCreate) Save(ctx context.Context) (*PsychologicalPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologicalPredictionCreate) SaveX(ctx context.Context) *PsychologicalPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologicalPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologicalPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologicalPredictionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologicalprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologicalprediction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ProgressOverall(); !ok {
		v := psychologicalprediction.DefaultProgressOverall
		_c.mutation.SetProgressOverall(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologicalprediction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologicalPredictionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PsychologicalPrediction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PsychologicalPrediction.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "PsychologicalPrediction.user_id"`)}
	}
	if _, ok := _c.mutation.ProgressOverall(); !ok {
		return &ValidationError{Name: "progress_overall", err: errors.New(`repo: missing required field "PsychologicalPrediction.progress_overall"`)}
	}
	if v, ok := _c.mutation.ProgressOverall(); ok {
		if err := psychologicalprediction.ProgressOverallValidator(v); err != nil {
			return &ValidationError{Name: "progress_overall", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.progress_overall": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Result(); ok {
		if err := psychologicalprediction.ResultValidator(v); err != nil {
			return &ValidationError{Name: "result", err: fmt.Errorf(`repo: validator failed for field "PsychologicalPrediction.result": %w`, err)}
		}
	}
	return nil
}

func (_c *PsychologicalPredictionCreate) sqlSave(ctx context.Context) (*PsychologicalPrediction, error) {
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

func (_c *PsychologicalPredictionCreate) createSpec() (*PsychologicalPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &PsychologicalPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologicalprediction.Table, sqlgraph.NewFieldSpec(psychologicalprediction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(psychologicalprediction.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(psychologicalprediction.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.ProgressOverall(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressOverall, field.TypeFloat64, value)
		_node.ProgressOverall = value
	}
	if value, ok := _c.mutation.ProgressSections(); ok {
		_spec.SetField(psychologicalprediction.FieldProgressSections, field.TypeJSON, value)
		_node.ProgressSections = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(psychologicalprediction.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(psychologicalprediction.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(psychologicalprediction.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologicalPrediction.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologicalPredictionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologicalPredictionCreate) OnConflict(opts ...sql.ConflictOption) *PsychologicalPredictionUpsertOne {
	_c.conflict = opts
	return &PsychologicalPredictionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologicalPredictionCreate) OnConflictColumns(columns ...string) *PsychologicalPredictionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologicalPredictionUpsertOne{
		create: _c,
	}
}

type (
	// PsychologicalPredictionUpsertOne is the builder for "upsert"-ing
	//  one PsychologicalPrediction node.
	PsychologicalPredictionUpsertOne struct {
		create *PsychologicalPredictionCreate
	}

	// PsychologicalPredictionUpsert is the "OnConflict" setter.
	PsychologicalPredictionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologicalPredictionUpsert) SetUpdatedAt(v time.Time) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateUpdatedAt() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PsychologicalPredictionUpsert) SetUserID(v uuid.UUID) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateUserID() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldUserID)
	return u
}

// SetAnswers sets the "answers" field.
func (u *PsychologicalPredictionUpsert) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateAnswers() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldAnswers)
	return u
}

// ClearAnswers clears the value of the "answers" field.
func (u *PsychologicalPredictionUpsert) ClearAnswers() *PsychologicalPredictionUpsert {
	u.SetNull(psychologicalprediction.FieldAnswers)
	return u
}

// SetProgressOverall sets the "progress_overall" field.
func (u *PsychologicalPredictionUpsert) SetProgressOverall(v float64) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldProgressOverall, v)
	return u
}

// UpdateProgressOverall sets the "progress_overall" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateProgressOverall() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldProgressOverall)
	return u
}

// AddProgressOverall adds v to the "progress_overall" field.
func (u *PsychologicalPredictionUpsert) AddProgressOverall(v float64) *PsychologicalPredictionUpsert {
	u.Add(psychologicalprediction.FieldProgressOverall, v)
	return u
}

// SetProgressSections sets the "progress_sections" field.
func (u *PsychologicalPredictionUpsert) SetProgressSections(v map[string]float64) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldProgressSections, v)
	return u
}

// UpdateProgressSections sets the "progress_sections" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateProgressSections() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldProgressSections)
	return u
}

// ClearProgressSections clears the value of the "progress_sections" field.
func (u *PsychologicalPredictionUpsert) ClearProgressSections() *PsychologicalPredictionUpsert {
	u.SetNull(psychologicalprediction.FieldProgressSections)
	return u
}

// SetResult sets the "result" field.
func (u *PsychologicalPredictionUpsert) SetResult(v string) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateResult() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *PsychologicalPredictionUpsert) ClearResult() *PsychologicalPredictionUpsert {
	u.SetNull(psychologicalprediction.FieldResult)
	return u
}

// SetResults sets the "results" field.
func (u *PsychologicalPredictionUpsert) SetResults(v riasec.Tally) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldResults, v)
	return u
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateResults() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldResults)
	return u
}

// ClearResults clears the value of the "results" field.
func (u *PsychologicalPredictionUpsert) ClearResults() *PsychologicalPredictionUpsert {
	u.SetNull(psychologicalprediction.FieldResults)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PsychologicalPredictionUpsert) SetCompletedAt(v time.Time) *PsychologicalPredictionUpsert {
	u.Set(psychologicalprediction.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsert) UpdateCompletedAt() *PsychologicalPredictionUpsert {
	u.SetExcluded(psychologicalprediction.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PsychologicalPredictionUpsert) ClearCompletedAt() *PsychologicalPredictionUpsert {
	u.SetNull(psychologicalprediction.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologicalprediction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologicalPredictionUpsertOne) UpdateNewValues() *PsychologicalPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologicalprediction.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologicalprediction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologicalPredictionUpsertOne) Ignore() *PsychologicalPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologicalPredictionUpsertOne) DoNothing() *PsychologicalPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologicalPredictionCreate.OnConflict
// documentation for more info.
func (u *PsychologicalPredictionUpsertOne) Update(set func(*PsychologicalPredictionUpsert)) *PsychologicalPredictionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologicalPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologicalPredictionUpsertOne) SetUpdatedAt(v time.Time) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateUpdatedAt() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologicalPredictionUpsertOne) SetUserID(v uuid.UUID) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateUserID() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetAnswers sets the "answers" field.
func (u *PsychologicalPredictionUpsertOne) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateAnswers() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *PsychologicalPredictionUpsertOne) ClearAnswers() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearAnswers()
	})
}

// SetProgressOverall sets the "progress_overall" field.
func (u *PsychologicalPredictionUpsertOne) SetProgressOverall(v float64) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetProgressOverall(v)
	})
}

// AddProgressOverall adds v to the "progress_overall" field.
func (u *PsychologicalPredictionUpsertOne) AddProgressOverall(v float64) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.AddProgressOverall(v)
	})
}

// UpdateProgressOverall sets the "progress_overall" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateProgressOverall() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateProgressOverall()
	})
}

// SetProgressSections sets the "progress_sections" field.
func (u *PsychologicalPredictionUpsertOne) SetProgressSections(v map[string]float64) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetProgressSections(v)
	})
}

// UpdateProgressSections sets the "progress_sections" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateProgressSections() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateProgressSections()
	})
}

// ClearProgressSections clears the value of the "progress_sections" field.
func (u *PsychologicalPredictionUpsertOne) ClearProgressSections() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearProgressSections()
	})
}

// SetResult sets the "result" field.
func (u *PsychologicalPredictionUpsertOne) SetResult(v string) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateResult() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PsychologicalPredictionUpsertOne) ClearResult() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearResult()
	})
}

// SetResults sets the "results" field.
func (u *PsychologicalPredictionUpsertOne) SetResults(v riasec.Tally) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetResults(v)
	})
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateResults() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateResults()
	})
}

// ClearResults clears the value of the "results" field.
func (u *PsychologicalPredictionUpsertOne) ClearResults() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearResults()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PsychologicalPredictionUpsertOne) SetCompletedAt(v time.Time) *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertOne) UpdateCompletedAt() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PsychologicalPredictionUpsertOne) ClearCompletedAt() *PsychologicalPredictionUpsertOne {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PsychologicalPredictionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologicalPredictionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologicalPredictionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologicalPredictionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologicalPredictionUpsertOne.ID is not supported by MySQL driver. Use PsychologicalPredictionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologicalPredictionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologicalPredictionCreateBulk is the builder for creating many PsychologicalPrediction entities in bulk.
type PsychologicalPredictionCreateBulk struct {
	config
	err      error
	builders []*PsychologicalPredictionCreate
	conflict []sql.ConflictOption
}

// Save creates the PsychologicalPrediction entities in the database.
func (_c *PsychologicalPredictionCreateBulk) Save(ctx context.Context) ([]*PsychologicalPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PsychologicalPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologicalPredictionMutation)
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
func (_c *PsychologicalPredictionCreateBulk) SaveX(ctx context.Context) []*PsychologicalPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologicalPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologicalPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologicalPrediction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologicalPredictionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologicalPredictionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologicalPredictionUpsertBulk {
	_c.conflict = opts
	return &PsychologicalPredictionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologicalPredictionCreateBulk) OnConflictColumns(columns ...string) *PsychologicalPredictionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologicalPredictionUpsertBulk{
		create: _c,
	}
}

// PsychologicalPredictionUpsertBulk is the builder for "upsert"-ing
// a bulk of PsychologicalPrediction nodes.
type PsychologicalPredictionUpsertBulk struct {
	create *PsychologicalPredictionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologicalprediction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologicalPredictionUpsertBulk) UpdateNewValues() *PsychologicalPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologicalprediction.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologicalprediction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologicalPrediction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologicalPredictionUpsertBulk) Ignore() *PsychologicalPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologicalPredictionUpsertBulk) DoNothing() *PsychologicalPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologicalPredictionCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologicalPredictionUpsertBulk) Update(set func(*PsychologicalPredictionUpsert)) *PsychologicalPredictionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologicalPredictionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologicalPredictionUpsertBulk) SetUpdatedAt(v time.Time) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateUpdatedAt() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologicalPredictionUpsertBulk) SetUserID(v uuid.UUID) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateUserID() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateUserID()
	})
}

// SetAnswers sets the "answers" field.
func (u *PsychologicalPredictionUpsertBulk) SetAnswers(v riasec.AnswerSet) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateAnswers() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateAnswers()
	})
}

// ClearAnswers clears the value of the "answers" field.
func (u *PsychologicalPredictionUpsertBulk) ClearAnswers() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearAnswers()
	})
}

// SetProgressOverall sets the "progress_overall" field.
func (u *PsychologicalPredictionUpsertBulk) SetProgressOverall(v float64) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetProgressOverall(v)
	})
}

// AddProgressOverall adds v to the "progress_overall" field.
func (u *PsychologicalPredictionUpsertBulk) AddProgressOverall(v float64) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.AddProgressOverall(v)
	})
}

// UpdateProgressOverall sets the "progress_overall" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateProgressOverall() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateProgressOverall()
	})
}

// SetProgressSections sets the "progress_sections" field.
func (u *PsychologicalPredictionUpsertBulk) SetProgressSections(v map[string]float64) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetProgressSections(v)
	})
}

// UpdateProgressSections sets the "progress_sections" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateProgressSections() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateProgressSections()
	})
}

// ClearProgressSections clears the value of the "progress_sections" field.
func (u *PsychologicalPredictionUpsertBulk) ClearProgressSections() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearProgressSections()
	})
}

// SetResult sets the "result" field.
func (u *PsychologicalPredictionUpsertBulk) SetResult(v string) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateResult() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *PsychologicalPredictionUpsertBulk) ClearResult() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearResult()
	})
}

// SetResults sets the "results" field.
func (u *PsychologicalPredictionUpsertBulk) SetResults(v riasec.Tally) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetResults(v)
	})
}

// UpdateResults sets the "results" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateResults() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateResults()
	})
}

// ClearResults clears the value of the "results" field.
func (u *PsychologicalPredictionUpsertBulk) ClearResults() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearResults()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PsychologicalPredictionUpsertBulk) SetCompletedAt(v time.Time) *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PsychologicalPredictionUpsertBulk) UpdateCompletedAt() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PsychologicalPredictionUpsertBulk) ClearCompletedAt() *PsychologicalPredictionUpsertBulk {
	return u.Update(func(s *PsychologicalPredictionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PsychologicalPredictionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologicalPredictionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologicalPredictionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologicalPredictionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
