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
	"github.com/orienta-pe/orienta_backend/internal/repo/institution"
	"github.com/orienta-pe/orienta_backend/internal/repo/predicate"
)

// InstitutionUpdate is the builder for updating Institution entities.
type InstitutionUpdate struct {
	config
	hooks    []Hook
	mutation *InstitutionMutation
}

// Where appends a list predicates to the InstitutionUpdate builder.
func (_u *InstitutionUpdate) Where(ps ...predicate.Institution) *InstitutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstitutionUpdate) SetUpdatedAt(v time.Time) *InstitutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InstitutionUpdate) SetDeletedAt(v time.Time) *InstitutionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableDeletedAt(v *time.Time) *InstitutionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InstitutionUpdate) ClearDeletedAt() *InstitutionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *InstitutionUpdate) SetName(v string) *InstitutionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableName(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *InstitutionUpdate) SetJoinCode(v string) *InstitutionUpdate {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableJoinCode(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// SetStudentLimit sets the "student_limit" field.
func (_u *InstitutionUpdate) SetStudentLimit(v int) *InstitutionUpdate {
	_u.mutation.ResetStudentLimit()
	_u.mutation.SetStudentLimit(v)
	return _u
}

// SetNillableStudentLimit sets the "student_limit" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableStudentLimit(v *int) *InstitutionUpdate {
	if v != nil {
		_u.SetStudentLimit(*v)
	}
	return _u
}

// AddStudentLimit adds value to the "student_limit" field.
func (_u *InstitutionUpdate) AddStudentLimit(v int) *InstitutionUpdate {
	_u.mutation.AddStudentLimit(v)
	return _u
}

// SetTutorLimit sets the "tutor_limit" field.
func (_u *InstitutionUpdate) SetTutorLimit(v int) *InstitutionUpdate {
	_u.mutation.ResetTutorLimit()
	_u.mutation.SetTutorLimit(v)
	return _u
}

// SetNillableTutorLimit sets the "tutor_limit" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableTutorLimit(v *int) *InstitutionUpdate {
	if v != nil {
		_u.SetTutorLimit(*v)
	}
	return _u
}

// AddTutorLimit adds value to the "tutor_limit" field.
func (_u *InstitutionUpdate) AddTutorLimit(v int) *InstitutionUpdate {
	_u.mutation.AddTutorLimit(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstitutionUpdate) SetDescription(v string) *InstitutionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableDescription(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InstitutionUpdate) ClearDescription() *InstitutionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDirectorName sets the "director_name" field.
func (_u *InstitutionUpdate) SetDirectorName(v string) *InstitutionUpdate {
	_u.mutation.SetDirectorName(v)
	return _u
}

// SetNillableDirectorName sets the "director_name" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableDirectorName(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetDirectorName(*v)
	}
	return _u
}

// ClearDirectorName clears the value of the "director_name" field.
func (_u *InstitutionUpdate) ClearDirectorName() *InstitutionUpdate {
	_u.mutation.ClearDirectorName()
	return _u
}

// SetDirectorEmail sets the "director_email" field.
func (_u *InstitutionUpdate) SetDirectorEmail(v string) *InstitutionUpdate {
	_u.mutation.SetDirectorEmail(v)
	return _u
}

// SetNillableDirectorEmail sets the "director_email" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableDirectorEmail(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetDirectorEmail(*v)
	}
	return _u
}

// ClearDirectorEmail clears the value of the "director_email" field.
func (_u *InstitutionUpdate) ClearDirectorEmail() *InstitutionUpdate {
	_u.mutation.ClearDirectorEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *InstitutionUpdate) SetPhone(v string) *InstitutionUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillablePhone(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *InstitutionUpdate) ClearPhone() *InstitutionUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InstitutionUpdate) SetAddress(v string) *InstitutionUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableAddress(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InstitutionUpdate) ClearAddress() *InstitutionUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *InstitutionUpdate) SetCity(v string) *InstitutionUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableCity(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *InstitutionUpdate) ClearCity() *InstitutionUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InstitutionUpdate) SetIsActive(v bool) *InstitutionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableIsActive(v *bool) *InstitutionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the InstitutionMutation object of the builder.
func (_u *InstitutionUpdate) Mutation() *InstitutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstitutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstitutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstitutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := institution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Institution.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinCode(); ok {
		if err := institution.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "Institution.join_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentLimit(); ok {
		if err := institution.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.student_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TutorLimit(); ok {
		if err := institution.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.tutor_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DirectorName(); ok {
		if err := institution.DirectorNameValidator(v); err != nil {
			return &ValidationError{Name: "director_name", err: fmt.Errorf(`repo: validator failed for field "Institution.director_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DirectorEmail(); ok {
		if err := institution.DirectorEmailValidator(v); err != nil {
			return &ValidationError{Name: "director_email", err: fmt.Errorf(`repo: validator failed for field "Institution.director_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := institution.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Institution.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := institution.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Institution.city": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institution.Table, institution.Columns, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(institution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(institution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(institution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(institution.FieldJoinCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLimit(); ok {
		_spec.SetField(institution.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentLimit(); ok {
		_spec.AddField(institution.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorLimit(); ok {
		_spec.SetField(institution.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorLimit(); ok {
		_spec.AddField(institution.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(institution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(institution.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DirectorName(); ok {
		_spec.SetField(institution.FieldDirectorName, field.TypeString, value)
	}
	if _u.mutation.DirectorNameCleared() {
		_spec.ClearField(institution.FieldDirectorName, field.TypeString)
	}
	if value, ok := _u.mutation.DirectorEmail(); ok {
		_spec.SetField(institution.FieldDirectorEmail, field.TypeString, value)
	}
	if _u.mutation.DirectorEmailCleared() {
		_spec.ClearField(institution.FieldDirectorEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(institution.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(institution.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(institution.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(institution.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(institution.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(institution.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstitutionUpdateOne is the builder for updating a single Institution entity.
type InstitutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstitutionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstitutionUpdateOne) SetUpdatedAt(v time.Time) *InstitutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InstitutionUpdateOne) SetDeletedAt(v time.Time) *InstitutionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableDeletedAt(v *time.Time) *InstitutionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InstitutionUpdateOne) ClearDeletedAt() *InstitutionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *InstitutionUpdateOne) SetName(v string) *InstitutionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableName(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJoinCode sets the "join_code" field.
func (_u *InstitutionUpdateOne) SetJoinCode(v string) *InstitutionUpdateOne {
	_u.mutation.SetJoinCode(v)
	return _u
}

// SetNillableJoinCode sets the "join_code" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableJoinCode(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetJoinCode(*v)
	}
	return _u
}

// SetStudentLimit sets the "student_limit" field.
func (_u *InstitutionUpdateOne) SetStudentLimit(v int) *InstitutionUpdateOne {
	_u.mutation.ResetStudentLimit()
	_u.mutation.SetStudentLimit(v)
	return _u
}

// SetNillableStudentLimit sets the "student_limit" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableStudentLimit(v *int) *InstitutionUpdateOne {
	if v != nil {
		_u.SetStudentLimit(*v)
	}
	return _u
}

// AddStudentLimit adds value to the "student_limit" field.
func (_u *InstitutionUpdateOne) AddStudentLimit(v int) *InstitutionUpdateOne {
	_u.mutation.AddStudentLimit(v)
	return _u
}

// SetTutorLimit sets the "tutor_limit" field.
func (_u *InstitutionUpdateOne) SetTutorLimit(v int) *InstitutionUpdateOne {
	_u.mutation.ResetTutorLimit()
	_u.mutation.SetTutorLimit(v)
	return _u
}

// SetNillableTutorLimit sets the "tutor_limit" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableTutorLimit(v *int) *InstitutionUpdateOne {
	if v != nil {
		_u.SetTutorLimit(*v)
	}
	return _u
}

// AddTutorLimit adds value to the "tutor_limit" field.
func (_u *InstitutionUpdateOne) AddTutorLimit(v int) *InstitutionUpdateOne {
	_u.mutation.AddTutorLimit(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *InstitutionUpdateOne) SetDescription(v string) *InstitutionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableDescription(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *InstitutionUpdateOne) ClearDescription() *InstitutionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDirectorName sets the "director_name" field.
func (_u *InstitutionUpdateOne) SetDirectorName(v string) *InstitutionUpdateOne {
	_u.mutation.SetDirectorName(v)
	return _u
}

// SetNillableDirectorName sets the "director_name" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableDirectorName(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetDirectorName(*v)
	}
	return _u
}

// ClearDirectorName clears the value of the "director_name" field.
func (_u *InstitutionUpdateOne) ClearDirectorName() *InstitutionUpdateOne {
	_u.mutation.ClearDirectorName()
	return _u
}

// SetDirectorEmail sets the "director_email" field.
func (_u *InstitutionUpdateOne) SetDirectorEmail(v string) *InstitutionUpdateOne {
	_u.mutation.SetDirectorEmail(v)
	return _u
}

// SetNillableDirectorEmail sets the "director_email" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableDirectorEmail(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetDirectorEmail(*v)
	}
	return _u
}

// ClearDirectorEmail clears the value of the "director_email" field.
func (_u *InstitutionUpdateOne) ClearDirectorEmail() *InstitutionUpdateOne {
	_u.mutation.ClearDirectorEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *InstitutionUpdateOne) SetPhone(v string) *InstitutionUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillablePhone(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *InstitutionUpdateOne) ClearPhone() *InstitutionUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InstitutionUpdateOne) SetAddress(v string) *InstitutionUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableAddress(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InstitutionUpdateOne) ClearAddress() *InstitutionUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *InstitutionUpdateOne) SetCity(v string) *InstitutionUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableCity(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *InstitutionUpdateOne) ClearCity() *InstitutionUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *InstitutionUpdateOne) SetIsActive(v bool) *InstitutionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableIsActive(v *bool) *InstitutionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the InstitutionMutation object of the builder.
func (_u *InstitutionUpdateOne) Mutation() *InstitutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InstitutionUpdate builder.
func (_u *InstitutionUpdateOne) Where(ps ...predicate.Institution) *InstitutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstitutionUpdateOne) Select(field string, fields ...string) *InstitutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Institution entity.
func (_u *InstitutionUpdateOne) Save(ctx context.Context) (*Institution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionUpdateOne) SaveX(ctx context.Context) *Institution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstitutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstitutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := institution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Institution.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JoinCode(); ok {
		if err := institution.JoinCodeValidator(v); err != nil {
			return &ValidationError{Name: "join_code", err: fmt.Errorf(`repo: validator failed for field "Institution.join_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentLimit(); ok {
		if err := institution.StudentLimitValidator(v); err != nil {
			return &ValidationError{Name: "student_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.student_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TutorLimit(); ok {
		if err := institution.TutorLimitValidator(v); err != nil {
			return &ValidationError{Name: "tutor_limit", err: fmt.Errorf(`repo: validator failed for field "Institution.tutor_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DirectorName(); ok {
		if err := institution.DirectorNameValidator(v); err != nil {
			return &ValidationError{Name: "director_name", err: fmt.Errorf(`repo: validator failed for field "Institution.director_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DirectorEmail(); ok {
		if err := institution.DirectorEmailValidator(v); err != nil {
			return &ValidationError{Name: "director_email", err: fmt.Errorf(`repo: validator failed for field "Institution.director_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := institution.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Institution.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := institution.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Institution.city": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionUpdateOne) sqlSave(ctx context.Context) (_node *Institution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institution.Table, institution.Columns, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Institution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, institution.FieldID)
		for _, f := range fields {
			if !institution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != institution.FieldID {
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
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(institution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(institution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(institution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JoinCode(); ok {
		_spec.SetField(institution.FieldJoinCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentLimit(); ok {
		_spec.SetField(institution.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentLimit(); ok {
		_spec.AddField(institution.FieldStudentLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorLimit(); ok {
		_spec.SetField(institution.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorLimit(); ok {
		_spec.AddField(institution.FieldTutorLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(institution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(institution.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DirectorName(); ok {
		_spec.SetField(institution.FieldDirectorName, field.TypeString, value)
	}
	if _u.mutation.DirectorNameCleared() {
		_spec.ClearField(institution.FieldDirectorName, field.TypeString)
	}
	if value, ok := _u.mutation.DirectorEmail(); ok {
		_spec.SetField(institution.FieldDirectorEmail, field.TypeString, value)
	}
	if _u.mutation.DirectorEmailCleared() {
		_spec.ClearField(institution.FieldDirectorEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(institution.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(institution.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(institution.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(institution.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(institution.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(institution.FieldIsActive, field.TypeBool, value)
	}
	_node = &Institution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
