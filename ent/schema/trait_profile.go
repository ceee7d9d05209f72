package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TraitProfile holds the current trait estimates for one learner scope.
// The global profile uses an empty topic; topic profiles carry the topic
// name. Unlike events, profiles are mutable state: each update rewrites
// the trait vector in place and bumps the bookkeeping columns.
type TraitProfile struct {
	ent.Schema
}

func (TraitProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner this profile belongs to"),
		field.String("topic").
			Default("").
			Comment("Topic scope; empty string is the global profile"),
		field.JSON("traits", map[string]float64{}).
			Comment("Trait name to estimate in [0,1]"),
		field.Int("question_count").
			Default(0).
			Comment("Responses folded into this profile so far"),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the profile was last written"),
	}
}

func (TraitProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "topic").
			Unique(),
	}
}
