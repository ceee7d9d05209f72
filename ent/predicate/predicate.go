// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvidenceEvent is the predicate function for evidenceevent builders.
type EvidenceEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// TraitProfile is the predicate function for traitprofile builders.
type TraitProfile func(*sql.Selector)
