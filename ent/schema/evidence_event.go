package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceEvent records one trait-evidence observation extracted from a
// graded response. A response that targets N traits produces N events.
// The audit log is append-only: rows are never updated or deleted.
type EvidenceEvent struct {
	ent.Schema
}

func (EvidenceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvidenceEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			NotEmpty().
			Comment("UUID shared by all records from one update call"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the evidence belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz question was drawn from"),
		field.String("question_id").
			NotEmpty().
			Comment("Question that produced this observation"),
		field.String("trait").
			NotEmpty().
			Comment("Trait the evidence applies to"),
		field.Float("combined").
			Comment("Signed evidence value fed into the estimator"),
		field.Float("correctness").
			Comment("Correctness component of the combined value"),
		field.Float("calibration").
			Comment("Confidence calibration component (Brier-based)"),
		field.Float("reasoning").
			Comment("Reasoning quality component"),
		field.Float("misconception").
			Comment("Misconception penalty component"),
		field.JSON("markers", []string{}).
			Optional().
			Comment("Text markers the reasoning analyzer matched"),
	}
}

func (EvidenceEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("learner_id"),
		index.Fields("learner_id", "topic"),
		index.Fields("trait"),
	}
}
