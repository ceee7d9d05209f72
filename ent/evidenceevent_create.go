// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/traitlab/ent/evidenceevent"
)

// EvidenceEventCreate is the builder for creating a EvidenceEvent entity.
type EvidenceEventCreate struct {
	config
	mutation *EvidenceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvidenceEventCreate) SetSequence(v int64) *EvidenceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvidenceEventCreate) SetTimestamp(v time.Time) *EvidenceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvidenceEventCreate) SetNillableTimestamp(v *time.Time) *EvidenceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *EvidenceEventCreate) SetBatchID(v string) *EvidenceEventCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *EvidenceEventCreate) SetLearnerID(v string) *EvidenceEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *EvidenceEventCreate) SetTopic(v string) *EvidenceEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *EvidenceEventCreate) SetQuestionID(v string) *EvidenceEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTrait sets the "trait" field.
func (_c *EvidenceEventCreate) SetTrait(v string) *EvidenceEventCreate {
	_c.mutation.SetTrait(v)
	return _c
}

// SetCombined sets the "combined" field.
func (_c *EvidenceEventCreate) SetCombined(v float64) *EvidenceEventCreate {
	_c.mutation.SetCombined(v)
	return _c
}

// SetCorrectness sets the "correctness" field.
func (_c *EvidenceEventCreate) SetCorrectness(v float64) *EvidenceEventCreate {
	_c.mutation.SetCorrectness(v)
	return _c
}

// SetCalibration sets the "calibration" field.
func (_c *EvidenceEventCreate) SetCalibration(v float64) *EvidenceEventCreate {
	_c.mutation.SetCalibration(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *EvidenceEventCreate) SetReasoning(v float64) *EvidenceEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetMisconception sets the "misconception" field.
func (_c *EvidenceEventCreate) SetMisconception(v float64) *EvidenceEventCreate {
	_c.mutation.SetMisconception(v)
	return _c
}

// SetMarkers sets the "markers" field.
func (_c *EvidenceEventCreate) SetMarkers(v []string) *EvidenceEventCreate {
	_c.mutation.SetMarkers(v)
	return _c
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_c *EvidenceEventCreate) Mutation() *EvidenceEventMutation {
	return _c.mutation
}

// Save creates the EvidenceEvent in the database.
func (_c *EvidenceEventCreate) Save(ctx context.Context) (*EvidenceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceEventCreate) SaveX(ctx context.Context) *EvidenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evidenceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvidenceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvidenceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "EvidenceEvent.batch_id"`)}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := evidenceevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.batch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "EvidenceEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := evidenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "EvidenceEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := evidenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "EvidenceEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := evidenceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trait(); !ok {
		return &ValidationError{Name: "trait", err: errors.New(`ent: missing required field "EvidenceEvent.trait"`)}
	}
	if v, ok := _c.mutation.Trait(); ok {
		if err := evidenceevent.TraitValidator(v); err != nil {
			return &ValidationError{Name: "trait", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.trait": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Combined(); !ok {
		return &ValidationError{Name: "combined", err: errors.New(`ent: missing required field "EvidenceEvent.combined"`)}
	}
	if _, ok := _c.mutation.Correctness(); !ok {
		return &ValidationError{Name: "correctness", err: errors.New(`ent: missing required field "EvidenceEvent.correctness"`)}
	}
	if _, ok := _c.mutation.Calibration(); !ok {
		return &ValidationError{Name: "calibration", err: errors.New(`ent: missing required field "EvidenceEvent.calibration"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "EvidenceEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.Misconception(); !ok {
		return &ValidationError{Name: "misconception", err: errors.New(`ent: missing required field "EvidenceEvent.misconception"`)}
	}
	return nil
}

func (_c *EvidenceEventCreate) sqlSave(ctx context.Context) (*EvidenceEvent, error) {
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

func (_c *EvidenceEventCreate) createSpec() (*EvidenceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidenceevent.Table, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evidenceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evidenceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(evidenceevent.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(evidenceevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(evidenceevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(evidenceevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Trait(); ok {
		_spec.SetField(evidenceevent.FieldTrait, field.TypeString, value)
		_node.Trait = value
	}
	if value, ok := _c.mutation.Combined(); ok {
		_spec.SetField(evidenceevent.FieldCombined, field.TypeFloat64, value)
		_node.Combined = value
	}
	if value, ok := _c.mutation.Correctness(); ok {
		_spec.SetField(evidenceevent.FieldCorrectness, field.TypeFloat64, value)
		_node.Correctness = value
	}
	if value, ok := _c.mutation.Calibration(); ok {
		_spec.SetField(evidenceevent.FieldCalibration, field.TypeFloat64, value)
		_node.Calibration = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(evidenceevent.FieldReasoning, field.TypeFloat64, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Misconception(); ok {
		_spec.SetField(evidenceevent.FieldMisconception, field.TypeFloat64, value)
		_node.Misconception = value
	}
	if value, ok := _c.mutation.Markers(); ok {
		_spec.SetField(evidenceevent.FieldMarkers, field.TypeJSON, value)
		_node.Markers = value
	}
	return _node, _spec
}

// EvidenceEventCreateBulk is the builder for creating many EvidenceEvent entities in bulk.
type EvidenceEventCreateBulk struct {
	config
	err      error
	builders []*EvidenceEventCreate
}

// Save creates the EvidenceEvent entities in the database.
func (_c *EvidenceEventCreateBulk) Save(ctx context.Context) ([]*EvidenceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceEventMutation)
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
func (_c *EvidenceEventCreateBulk) SaveX(ctx context.Context) []*EvidenceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
