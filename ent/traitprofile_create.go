// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// TraitProfileCreate is the builder for creating a TraitProfile entity.
type TraitProfileCreate struct {
	config
	mutation *TraitProfileMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *TraitProfileCreate) SetLearnerID(v string) *TraitProfileCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TraitProfileCreate) SetTopic(v string) *TraitProfileCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *TraitProfileCreate) SetNillableTopic(v *string) *TraitProfileCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetTraits sets the "traits" field.
func (_c *TraitProfileCreate) SetTraits(v map[string]float64) *TraitProfileCreate {
	_c.mutation.SetTraits(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *TraitProfileCreate) SetQuestionCount(v int) *TraitProfileCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *TraitProfileCreate) SetNillableQuestionCount(v *int) *TraitProfileCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *TraitProfileCreate) SetLastUpdated(v time.Time) *TraitProfileCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *TraitProfileCreate) SetNillableLastUpdated(v *time.Time) *TraitProfileCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// Mutation returns the TraitProfileMutation object of the builder.
func (_c *TraitProfileCreate) Mutation() *TraitProfileMutation {
	return _c.mutation
}

// Save creates the TraitProfile in the database.
func (_c *TraitProfileCreate) Save(ctx context.Context) (*TraitProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TraitProfileCreate) SaveX(ctx context.Context) *TraitProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraitProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraitProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TraitProfileCreate) defaults() {
	if _, ok := _c.mutation.Topic(); !ok {
		v := traitprofile.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := traitprofile.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := traitprofile.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TraitProfileCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TraitProfile.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := traitprofile.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "TraitProfile.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "TraitProfile.topic"`)}
	}
	if _, ok := _c.mutation.Traits(); !ok {
		return &ValidationError{Name: "traits", err: errors.New(`ent: missing required field "TraitProfile.traits"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "TraitProfile.question_count"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "TraitProfile.last_updated"`)}
	}
	return nil
}

func (_c *TraitProfileCreate) sqlSave(ctx context.Context) (*TraitProfile, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TraitProfileCreate) createSpec() (*TraitProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &TraitProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(traitprofile.Table, sqlgraph.NewFieldSpec(traitprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(traitprofile.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(traitprofile.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Traits(); ok {
		_spec.SetField(traitprofile.FieldTraits, field.TypeJSON, value)
		_node.Traits = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(traitprofile.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(traitprofile.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// TraitProfileCreateBulk is the builder for creating many TraitProfile entities in bulk.
type TraitProfileCreateBulk struct {
	config
	err      error
	builders []*TraitProfileCreate
}

// Save creates the TraitProfile entities in the database.
func (_c *TraitProfileCreateBulk) Save(ctx context.Context) ([]*TraitProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TraitProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TraitProfileMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TraitProfileCreateBulk) SaveX(ctx context.Context) []*TraitProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraitProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraitProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
