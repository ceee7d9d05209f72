// Package qmatrix maps assessment items to the cognitive traits they
// are believed to measure. Explicit tags from the question generator are
// trusted verbatim; untagged questions fall back to rule-based inference
// over question metadata.
package qmatrix

import "github.com/smehra/traitlab/internal/traits"

// Question is the metadata needed to infer a trait mapping.
type Question struct {
	// TargetTraits are explicit Q-matrix tags. Used verbatim when present.
	TargetTraits []string

	// Difficulty is the question's difficulty label ("easy", "medium",
	// "hard", "expert").
	Difficulty string

	// RequiresCalculation is set when answering needs numeric work.
	RequiresCalculation bool

	// MisconceptionTarget names the misconception a distractor probes,
	// empty when the question targets none.
	MisconceptionTarget string
}

// Result is the outcome of mapping one question.
type Result struct {
	Traits []traits.Trait

	// Defaulted is set when no tag or rule applied and the fallback
	// trait set was used. Callers should log this: a question with no
	// mapped trait can never influence the profile, so silently
	// dropping it would bias the estimator.
	Defaulted bool
}

// Map returns the non-empty set of traits q exercises.
func Map(q Question) Result {
	if mapped := explicitTraits(q.TargetTraits); len(mapped) > 0 {
		return Result{Traits: mapped}
	}
	return infer(q)
}

// explicitTraits validates tagged trait names against the taxonomy.
// Unknown names are dropped; an all-unknown tag list falls through to
// inference rather than producing an empty mapping.
func explicitTraits(names []string) []traits.Trait {
	var out []traits.Trait
	seen := make(map[traits.Trait]bool)
	for _, name := range names {
		t, err := traits.Parse(name)
		if err != nil || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func infer(q Question) Result {
	var out []traits.Trait
	seen := make(map[traits.Trait]bool)
	add := func(ts ...traits.Trait) {
		for _, t := range ts {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	if q.RequiresCalculation {
		add(traits.Precision, traits.AnalyticalDepth)
	}
	if q.Difficulty == "hard" || q.Difficulty == "expert" {
		add(traits.CognitiveFlexibility, traits.AnalyticalDepth)
	}
	if q.MisconceptionTarget != "" {
		add(traits.PatternRecognition)
	}

	if len(out) == 0 {
		return Result{
			Traits:    []traits.Trait{traits.AnalyticalDepth},
			Defaulted: true,
		}
	}
	return Result{Traits: out}
}
