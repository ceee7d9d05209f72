// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smehra/traitlab/ent/evidenceevent"
	"github.com/smehra/traitlab/ent/llmrequestevent"
	"github.com/smehra/traitlab/ent/schema"
	"github.com/smehra/traitlab/ent/traitprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evidenceeventMixin := schema.EvidenceEvent{}.Mixin()
	evidenceeventMixinFields0 := evidenceeventMixin[0].Fields()
	_ = evidenceeventMixinFields0
	evidenceeventFields := schema.EvidenceEvent{}.Fields()
	_ = evidenceeventFields
	// evidenceeventDescTimestamp is the schema descriptor for timestamp field.
	evidenceeventDescTimestamp := evidenceeventMixinFields0[1].Descriptor()
	// evidenceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	evidenceevent.DefaultTimestamp = evidenceeventDescTimestamp.Default.(func() time.Time)
	// evidenceeventDescBatchID is the schema descriptor for batch_id field.
	evidenceeventDescBatchID := evidenceeventFields[0].Descriptor()
	// evidenceevent.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	evidenceevent.BatchIDValidator = evidenceeventDescBatchID.Validators[0].(func(string) error)
	// evidenceeventDescLearnerID is the schema descriptor for learner_id field.
	evidenceeventDescLearnerID := evidenceeventFields[1].Descriptor()
	// evidenceevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	evidenceevent.LearnerIDValidator = evidenceeventDescLearnerID.Validators[0].(func(string) error)
	// evidenceeventDescTopic is the schema descriptor for topic field.
	evidenceeventDescTopic := evidenceeventFields[2].Descriptor()
	// evidenceevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	evidenceevent.TopicValidator = evidenceeventDescTopic.Validators[0].(func(string) error)
	// evidenceeventDescQuestionID is the schema descriptor for question_id field.
	evidenceeventDescQuestionID := evidenceeventFields[3].Descriptor()
	// evidenceevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	evidenceevent.QuestionIDValidator = evidenceeventDescQuestionID.Validators[0].(func(string) error)
	// evidenceeventDescTrait is the schema descriptor for trait field.
	evidenceeventDescTrait := evidenceeventFields[4].Descriptor()
	// evidenceevent.TraitValidator is a validator for the "trait" field. It is called by the builders before save.
	evidenceevent.TraitValidator = evidenceeventDescTrait.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	traitprofileFields := schema.TraitProfile{}.Fields()
	_ = traitprofileFields
	// traitprofileDescLearnerID is the schema descriptor for learner_id field.
	traitprofileDescLearnerID := traitprofileFields[0].Descriptor()
	// traitprofile.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	traitprofile.LearnerIDValidator = traitprofileDescLearnerID.Validators[0].(func(string) error)
	// traitprofileDescTopic is the schema descriptor for topic field.
	traitprofileDescTopic := traitprofileFields[1].Descriptor()
	// traitprofile.DefaultTopic holds the default value on creation for the topic field.
	traitprofile.DefaultTopic = traitprofileDescTopic.Default.(string)
	// traitprofileDescQuestionCount is the schema descriptor for question_count field.
	traitprofileDescQuestionCount := traitprofileFields[3].Descriptor()
	// traitprofile.DefaultQuestionCount holds the default value on creation for the question_count field.
	traitprofile.DefaultQuestionCount = traitprofileDescQuestionCount.Default.(int)
	// traitprofileDescLastUpdated is the schema descriptor for last_updated field.
	traitprofileDescLastUpdated := traitprofileFields[4].Descriptor()
	// traitprofile.DefaultLastUpdated holds the default value on creation for the last_updated field.
	traitprofile.DefaultLastUpdated = traitprofileDescLastUpdated.Default.(func() time.Time)
	// traitprofile.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	traitprofile.UpdateDefaultLastUpdated = traitprofileDescLastUpdated.UpdateDefault.(func() time.Time)
}
