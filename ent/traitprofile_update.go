// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/traitlab/ent/predicate"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// TraitProfileUpdate is the builder for updating TraitProfile entities.
type TraitProfileUpdate struct {
	config
	hooks    []Hook
	mutation *TraitProfileMutation
}

// Where appends a list predicates to the TraitProfileUpdate builder.
func (_u *TraitProfileUpdate) Where(ps ...predicate.TraitProfile) *TraitProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TraitProfileUpdate) SetLearnerID(v string) *TraitProfileUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TraitProfileUpdate) SetNillableLearnerID(v *string) *TraitProfileUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TraitProfileUpdate) SetTopic(v string) *TraitProfileUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TraitProfileUpdate) SetNillableTopic(v *string) *TraitProfileUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTraits sets the "traits" field.
func (_u *TraitProfileUpdate) SetTraits(v map[string]float64) *TraitProfileUpdate {
	_u.mutation.SetTraits(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TraitProfileUpdate) SetQuestionCount(v int) *TraitProfileUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TraitProfileUpdate) SetNillableQuestionCount(v *int) *TraitProfileUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TraitProfileUpdate) AddQuestionCount(v int) *TraitProfileUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TraitProfileUpdate) SetLastUpdated(v time.Time) *TraitProfileUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TraitProfileMutation object of the builder.
func (_u *TraitProfileUpdate) Mutation() *TraitProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TraitProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraitProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TraitProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraitProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TraitProfileUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := traitprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraitProfileUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := traitprofile.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TraitProfile.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TraitProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(traitprofile.Table, traitprofile.Columns, sqlgraph.NewFieldSpec(traitprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(traitprofile.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(traitprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Traits(); ok {
		_spec.SetField(traitprofile.FieldTraits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(traitprofile.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(traitprofile.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(traitprofile.FieldLastUpdated, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{traitprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TraitProfileUpdateOne is the builder for updating a single TraitProfile entity.
type TraitProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TraitProfileMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *TraitProfileUpdateOne) SetLearnerID(v string) *TraitProfileUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TraitProfileUpdateOne) SetNillableLearnerID(v *string) *TraitProfileUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *TraitProfileUpdateOne) SetTopic(v string) *TraitProfileUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *TraitProfileUpdateOne) SetNillableTopic(v *string) *TraitProfileUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTraits sets the "traits" field.
func (_u *TraitProfileUpdateOne) SetTraits(v map[string]float64) *TraitProfileUpdateOne {
	_u.mutation.SetTraits(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *TraitProfileUpdateOne) SetQuestionCount(v int) *TraitProfileUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *TraitProfileUpdateOne) SetNillableQuestionCount(v *int) *TraitProfileUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *TraitProfileUpdateOne) AddQuestionCount(v int) *TraitProfileUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *TraitProfileUpdateOne) SetLastUpdated(v time.Time) *TraitProfileUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// Mutation returns the TraitProfileMutation object of the builder.
func (_u *TraitProfileUpdateOne) Mutation() *TraitProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TraitProfileUpdate builder.
func (_u *TraitProfileUpdateOne) Where(ps ...predicate.TraitProfile) *TraitProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TraitProfileUpdateOne) Select(field string, fields ...string) *TraitProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TraitProfile entity.
func (_u *TraitProfileUpdateOne) Save(ctx context.Context) (*TraitProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraitProfileUpdateOne) SaveX(ctx context.Context) *TraitProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TraitProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraitProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TraitProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := traitprofile.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraitProfileUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := traitprofile.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TraitProfile.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TraitProfileUpdateOne) sqlSave(ctx context.Context) (_node *TraitProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(traitprofile.Table, traitprofile.Columns, sqlgraph.NewFieldSpec(traitprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TraitProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, traitprofile.FieldID)
		for _, f := range fields {
			if !traitprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != traitprofile.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(traitprofile.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(traitprofile.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Traits(); ok {
		_spec.SetField(traitprofile.FieldTraits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(traitprofile.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(traitprofile.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(traitprofile.FieldLastUpdated, field.TypeTime, value)
	}
	_node = &TraitProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{traitprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
