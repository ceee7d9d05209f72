// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/smehra/traitlab/ent/evidenceevent"
	"github.com/smehra/traitlab/ent/predicate"
)

// EvidenceEventUpdate is the builder for updating EvidenceEvent entities.
type EvidenceEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceEventMutation
}

// Where appends a list predicates to the EvidenceEventUpdate builder.
func (_u *EvidenceEventUpdate) Where(ps ...predicate.EvidenceEvent) *EvidenceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *EvidenceEventUpdate) SetBatchID(v string) *EvidenceEventUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableBatchID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *EvidenceEventUpdate) SetLearnerID(v string) *EvidenceEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableLearnerID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EvidenceEventUpdate) SetTopic(v string) *EvidenceEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableTopic(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *EvidenceEventUpdate) SetQuestionID(v string) *EvidenceEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableQuestionID(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTrait sets the "trait" field.
func (_u *EvidenceEventUpdate) SetTrait(v string) *EvidenceEventUpdate {
	_u.mutation.SetTrait(v)
	return _u
}

// SetNillableTrait sets the "trait" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableTrait(v *string) *EvidenceEventUpdate {
	if v != nil {
		_u.SetTrait(*v)
	}
	return _u
}

// SetCombined sets the "combined" field.
func (_u *EvidenceEventUpdate) SetCombined(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetCombined()
	_u.mutation.SetCombined(v)
	return _u
}

// SetNillableCombined sets the "combined" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableCombined(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetCombined(*v)
	}
	return _u
}

// AddCombined adds value to the "combined" field.
func (_u *EvidenceEventUpdate) AddCombined(v float64) *EvidenceEventUpdate {
	_u.mutation.AddCombined(v)
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *EvidenceEventUpdate) SetCorrectness(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetCorrectness()
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableCorrectness(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// AddCorrectness adds value to the "correctness" field.
func (_u *EvidenceEventUpdate) AddCorrectness(v float64) *EvidenceEventUpdate {
	_u.mutation.AddCorrectness(v)
	return _u
}

// SetCalibration sets the "calibration" field.
func (_u *EvidenceEventUpdate) SetCalibration(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetCalibration()
	_u.mutation.SetCalibration(v)
	return _u
}

// SetNillableCalibration sets the "calibration" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableCalibration(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetCalibration(*v)
	}
	return _u
}

// AddCalibration adds value to the "calibration" field.
func (_u *EvidenceEventUpdate) AddCalibration(v float64) *EvidenceEventUpdate {
	_u.mutation.AddCalibration(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvidenceEventUpdate) SetReasoning(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetReasoning()
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableReasoning(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// AddReasoning adds value to the "reasoning" field.
func (_u *EvidenceEventUpdate) AddReasoning(v float64) *EvidenceEventUpdate {
	_u.mutation.AddReasoning(v)
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *EvidenceEventUpdate) SetMisconception(v float64) *EvidenceEventUpdate {
	_u.mutation.ResetMisconception()
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *EvidenceEventUpdate) SetNillableMisconception(v *float64) *EvidenceEventUpdate {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// AddMisconception adds value to the "misconception" field.
func (_u *EvidenceEventUpdate) AddMisconception(v float64) *EvidenceEventUpdate {
	_u.mutation.AddMisconception(v)
	return _u
}

// SetMarkers sets the "markers" field.
func (_u *EvidenceEventUpdate) SetMarkers(v []string) *EvidenceEventUpdate {
	_u.mutation.SetMarkers(v)
	return _u
}

// AppendMarkers appends value to the "markers" field.
func (_u *EvidenceEventUpdate) AppendMarkers(v []string) *EvidenceEventUpdate {
	_u.mutation.AppendMarkers(v)
	return _u
}

// ClearMarkers clears the value of the "markers" field.
func (_u *EvidenceEventUpdate) ClearMarkers() *EvidenceEventUpdate {
	_u.mutation.ClearMarkers()
	return _u
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_u *EvidenceEventUpdate) Mutation() *EvidenceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceEventUpdate) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := evidenceevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.batch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := evidenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := evidenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := evidenceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trait(); ok {
		if err := evidenceevent.TraitValidator(v); err != nil {
			return &ValidationError{Name: "trait", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.trait": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidenceevent.Table, evidenceevent.Columns, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(evidenceevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(evidenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(evidenceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(evidenceevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trait(); ok {
		_spec.SetField(evidenceevent.FieldTrait, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combined(); ok {
		_spec.SetField(evidenceevent.FieldCombined, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombined(); ok {
		_spec.AddField(evidenceevent.FieldCombined, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(evidenceevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectness(); ok {
		_spec.AddField(evidenceevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Calibration(); ok {
		_spec.SetField(evidenceevent.FieldCalibration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalibration(); ok {
		_spec.AddField(evidenceevent.FieldCalibration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evidenceevent.FieldReasoning, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReasoning(); ok {
		_spec.AddField(evidenceevent.FieldReasoning, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(evidenceevent.FieldMisconception, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMisconception(); ok {
		_spec.AddField(evidenceevent.FieldMisconception, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Markers(); ok {
		_spec.SetField(evidenceevent.FieldMarkers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMarkers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidenceevent.FieldMarkers, value)
		})
	}
	if _u.mutation.MarkersCleared() {
		_spec.ClearField(evidenceevent.FieldMarkers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceEventUpdateOne is the builder for updating a single EvidenceEvent entity.
type EvidenceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceEventMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *EvidenceEventUpdateOne) SetBatchID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableBatchID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *EvidenceEventUpdateOne) SetLearnerID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableLearnerID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EvidenceEventUpdateOne) SetTopic(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableTopic(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *EvidenceEventUpdateOne) SetQuestionID(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableQuestionID(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetTrait sets the "trait" field.
func (_u *EvidenceEventUpdateOne) SetTrait(v string) *EvidenceEventUpdateOne {
	_u.mutation.SetTrait(v)
	return _u
}

// SetNillableTrait sets the "trait" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableTrait(v *string) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetTrait(*v)
	}
	return _u
}

// SetCombined sets the "combined" field.
func (_u *EvidenceEventUpdateOne) SetCombined(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetCombined()
	_u.mutation.SetCombined(v)
	return _u
}

// SetNillableCombined sets the "combined" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableCombined(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetCombined(*v)
	}
	return _u
}

// AddCombined adds value to the "combined" field.
func (_u *EvidenceEventUpdateOne) AddCombined(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddCombined(v)
	return _u
}

// SetCorrectness sets the "correctness" field.
func (_u *EvidenceEventUpdateOne) SetCorrectness(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetCorrectness()
	_u.mutation.SetCorrectness(v)
	return _u
}

// SetNillableCorrectness sets the "correctness" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableCorrectness(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetCorrectness(*v)
	}
	return _u
}

// AddCorrectness adds value to the "correctness" field.
func (_u *EvidenceEventUpdateOne) AddCorrectness(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddCorrectness(v)
	return _u
}

// SetCalibration sets the "calibration" field.
func (_u *EvidenceEventUpdateOne) SetCalibration(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetCalibration()
	_u.mutation.SetCalibration(v)
	return _u
}

// SetNillableCalibration sets the "calibration" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableCalibration(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetCalibration(*v)
	}
	return _u
}

// AddCalibration adds value to the "calibration" field.
func (_u *EvidenceEventUpdateOne) AddCalibration(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddCalibration(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *EvidenceEventUpdateOne) SetReasoning(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetReasoning()
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableReasoning(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// AddReasoning adds value to the "reasoning" field.
func (_u *EvidenceEventUpdateOne) AddReasoning(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddReasoning(v)
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *EvidenceEventUpdateOne) SetMisconception(v float64) *EvidenceEventUpdateOne {
	_u.mutation.ResetMisconception()
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *EvidenceEventUpdateOne) SetNillableMisconception(v *float64) *EvidenceEventUpdateOne {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// AddMisconception adds value to the "misconception" field.
func (_u *EvidenceEventUpdateOne) AddMisconception(v float64) *EvidenceEventUpdateOne {
	_u.mutation.AddMisconception(v)
	return _u
}

// SetMarkers sets the "markers" field.
func (_u *EvidenceEventUpdateOne) SetMarkers(v []string) *EvidenceEventUpdateOne {
	_u.mutation.SetMarkers(v)
	return _u
}

// AppendMarkers appends value to the "markers" field.
func (_u *EvidenceEventUpdateOne) AppendMarkers(v []string) *EvidenceEventUpdateOne {
	_u.mutation.AppendMarkers(v)
	return _u
}

// ClearMarkers clears the value of the "markers" field.
func (_u *EvidenceEventUpdateOne) ClearMarkers() *EvidenceEventUpdateOne {
	_u.mutation.ClearMarkers()
	return _u
}

// Mutation returns the EvidenceEventMutation object of the builder.
func (_u *EvidenceEventUpdateOne) Mutation() *EvidenceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceEventUpdate builder.
func (_u *EvidenceEventUpdateOne) Where(ps ...predicate.EvidenceEvent) *EvidenceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceEventUpdateOne) Select(field string, fields ...string) *EvidenceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceEvent entity.
func (_u *EvidenceEventUpdateOne) Save(ctx context.Context) (*EvidenceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceEventUpdateOne) SaveX(ctx context.Context) *EvidenceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceEventUpdateOne) check() error {
	if v, ok := _u.mutation.BatchID(); ok {
		if err := evidenceevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.batch_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := evidenceevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := evidenceevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := evidenceevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trait(); ok {
		if err := evidenceevent.TraitValidator(v); err != nil {
			return &ValidationError{Name: "trait", err: fmt.Errorf(`ent: validator failed for field "EvidenceEvent.trait": %w`, err)}
		}
	}
	return nil
}

func (_u *EvidenceEventUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidenceevent.Table, evidenceevent.Columns, sqlgraph.NewFieldSpec(evidenceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidenceevent.FieldID)
		for _, f := range fields {
			if !evidenceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidenceevent.FieldID {
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
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(evidenceevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(evidenceevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(evidenceevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(evidenceevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trait(); ok {
		_spec.SetField(evidenceevent.FieldTrait, field.TypeString, value)
	}
	if value, ok := _u.mutation.Combined(); ok {
		_spec.SetField(evidenceevent.FieldCombined, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombined(); ok {
		_spec.AddField(evidenceevent.FieldCombined, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correctness(); ok {
		_spec.SetField(evidenceevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCorrectness(); ok {
		_spec.AddField(evidenceevent.FieldCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Calibration(); ok {
		_spec.SetField(evidenceevent.FieldCalibration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalibration(); ok {
		_spec.AddField(evidenceevent.FieldCalibration, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(evidenceevent.FieldReasoning, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReasoning(); ok {
		_spec.AddField(evidenceevent.FieldReasoning, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(evidenceevent.FieldMisconception, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMisconception(); ok {
		_spec.AddField(evidenceevent.FieldMisconception, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Markers(); ok {
		_spec.SetField(evidenceevent.FieldMarkers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMarkers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidenceevent.FieldMarkers, value)
		})
	}
	if _u.mutation.MarkersCleared() {
		_spec.ClearField(evidenceevent.FieldMarkers, field.TypeJSON)
	}
	_node = &EvidenceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidenceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
