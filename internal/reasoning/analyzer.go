// Package reasoning scores the quality of a learner's free-text
// justification with respect to a single cognitive trait. Scores are
// bounded to [0,1] and come with human-readable markers explaining
// what the scorer saw, for the audit log.
//
// Two implementations exist: a keyword/regex heuristic that is always
// available, and a semantic scorer that delegates to an LLM provider
// and falls back to the heuristic on any failure. Both are safe for
// concurrent use and have no side effects.
package reasoning

import (
	"context"

	"github.com/smehra/traitlab/internal/traits"
)

// NeutralScore is returned for empty reasoning text: no penalty, no reward.
const NeutralScore = 0.5

// Analyzer scores reasoning text against a trait.
type Analyzer interface {
	// Score returns a quality score in [0,1] and markers explaining it.
	// Implementations never fail: a degraded score is always produced.
	Score(ctx context.Context, text string, trait traits.Trait) (float64, []string)
}
