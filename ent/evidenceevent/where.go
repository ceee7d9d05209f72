// Code generated by ent, DO NOT EDIT.

package evidenceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smehra/traitlab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldBatchID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTopic, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Trait applies equality check predicate on the "trait" field. It's identical to TraitEQ.
func Trait(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTrait, v))
}

// Combined applies equality check predicate on the "combined" field. It's identical to CombinedEQ.
func Combined(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCombined, v))
}

// Correctness applies equality check predicate on the "correctness" field. It's identical to CorrectnessEQ.
func Correctness(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCorrectness, v))
}

// Calibration applies equality check predicate on the "calibration" field. It's identical to CalibrationEQ.
func Calibration(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCalibration, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldReasoning, v))
}

// Misconception applies equality check predicate on the "misconception" field. It's identical to MisconceptionEQ.
func Misconception(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldMisconception, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldTimestamp, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldBatchID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldTopic, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// TraitEQ applies the EQ predicate on the "trait" field.
func TraitEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldTrait, v))
}

// TraitNEQ applies the NEQ predicate on the "trait" field.
func TraitNEQ(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldTrait, v))
}

// TraitIn applies the In predicate on the "trait" field.
func TraitIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldTrait, vs...))
}

// TraitNotIn applies the NotIn predicate on the "trait" field.
func TraitNotIn(vs ...string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldTrait, vs...))
}

// TraitGT applies the GT predicate on the "trait" field.
func TraitGT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldTrait, v))
}

// TraitGTE applies the GTE predicate on the "trait" field.
func TraitGTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldTrait, v))
}

// TraitLT applies the LT predicate on the "trait" field.
func TraitLT(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldTrait, v))
}

// TraitLTE applies the LTE predicate on the "trait" field.
func TraitLTE(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldTrait, v))
}

// TraitContains applies the Contains predicate on the "trait" field.
func TraitContains(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContains(FieldTrait, v))
}

// TraitHasPrefix applies the HasPrefix predicate on the "trait" field.
func TraitHasPrefix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasPrefix(FieldTrait, v))
}

// TraitHasSuffix applies the HasSuffix predicate on the "trait" field.
func TraitHasSuffix(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldHasSuffix(FieldTrait, v))
}

// TraitEqualFold applies the EqualFold predicate on the "trait" field.
func TraitEqualFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEqualFold(FieldTrait, v))
}

// TraitContainsFold applies the ContainsFold predicate on the "trait" field.
func TraitContainsFold(v string) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldContainsFold(FieldTrait, v))
}

// CombinedEQ applies the EQ predicate on the "combined" field.
func CombinedEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCombined, v))
}

// CombinedNEQ applies the NEQ predicate on the "combined" field.
func CombinedNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldCombined, v))
}

// CombinedIn applies the In predicate on the "combined" field.
func CombinedIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldCombined, vs...))
}

// CombinedNotIn applies the NotIn predicate on the "combined" field.
func CombinedNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldCombined, vs...))
}

// CombinedGT applies the GT predicate on the "combined" field.
func CombinedGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldCombined, v))
}

// CombinedGTE applies the GTE predicate on the "combined" field.
func CombinedGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldCombined, v))
}

// CombinedLT applies the LT predicate on the "combined" field.
func CombinedLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldCombined, v))
}

// CombinedLTE applies the LTE predicate on the "combined" field.
func CombinedLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldCombined, v))
}

// CorrectnessEQ applies the EQ predicate on the "correctness" field.
func CorrectnessEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCorrectness, v))
}

// CorrectnessNEQ applies the NEQ predicate on the "correctness" field.
func CorrectnessNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldCorrectness, v))
}

// CorrectnessIn applies the In predicate on the "correctness" field.
func CorrectnessIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldCorrectness, vs...))
}

// CorrectnessNotIn applies the NotIn predicate on the "correctness" field.
func CorrectnessNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldCorrectness, vs...))
}

// CorrectnessGT applies the GT predicate on the "correctness" field.
func CorrectnessGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldCorrectness, v))
}

// CorrectnessGTE applies the GTE predicate on the "correctness" field.
func CorrectnessGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldCorrectness, v))
}

// CorrectnessLT applies the LT predicate on the "correctness" field.
func CorrectnessLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldCorrectness, v))
}

// CorrectnessLTE applies the LTE predicate on the "correctness" field.
func CorrectnessLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldCorrectness, v))
}

// CalibrationEQ applies the EQ predicate on the "calibration" field.
func CalibrationEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldCalibration, v))
}

// CalibrationNEQ applies the NEQ predicate on the "calibration" field.
func CalibrationNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldCalibration, v))
}

// CalibrationIn applies the In predicate on the "calibration" field.
func CalibrationIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldCalibration, vs...))
}

// CalibrationNotIn applies the NotIn predicate on the "calibration" field.
func CalibrationNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldCalibration, vs...))
}

// CalibrationGT applies the GT predicate on the "calibration" field.
func CalibrationGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldCalibration, v))
}

// CalibrationGTE applies the GTE predicate on the "calibration" field.
func CalibrationGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldCalibration, v))
}

// CalibrationLT applies the LT predicate on the "calibration" field.
func CalibrationLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldCalibration, v))
}

// CalibrationLTE applies the LTE predicate on the "calibration" field.
func CalibrationLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldCalibration, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldReasoning, v))
}

// MisconceptionEQ applies the EQ predicate on the "misconception" field.
func MisconceptionEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldEQ(FieldMisconception, v))
}

// MisconceptionNEQ applies the NEQ predicate on the "misconception" field.
func MisconceptionNEQ(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNEQ(FieldMisconception, v))
}

// MisconceptionIn applies the In predicate on the "misconception" field.
func MisconceptionIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIn(FieldMisconception, vs...))
}

// MisconceptionNotIn applies the NotIn predicate on the "misconception" field.
func MisconceptionNotIn(vs ...float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotIn(FieldMisconception, vs...))
}

// MisconceptionGT applies the GT predicate on the "misconception" field.
func MisconceptionGT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGT(FieldMisconception, v))
}

// MisconceptionGTE applies the GTE predicate on the "misconception" field.
func MisconceptionGTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldGTE(FieldMisconception, v))
}

// MisconceptionLT applies the LT predicate on the "misconception" field.
func MisconceptionLT(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLT(FieldMisconception, v))
}

// MisconceptionLTE applies the LTE predicate on the "misconception" field.
func MisconceptionLTE(v float64) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldLTE(FieldMisconception, v))
}

// MarkersIsNil applies the IsNil predicate on the "markers" field.
func MarkersIsNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldIsNull(FieldMarkers))
}

// MarkersNotNil applies the NotNil predicate on the "markers" field.
func MarkersNotNil() predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.FieldNotNull(FieldMarkers))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvidenceEvent) predicate.EvidenceEvent {
	return predicate.EvidenceEvent(sql.NotPredicates(p))
}
