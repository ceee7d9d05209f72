// Package estimator applies a batch of evidence records to a trait
// vector using a bounded recursive filter. Each trait moves by its own
// fixed gain times the batch's average evidence for that trait.
//
// This is a deliberate simplification of a full Kalman filter: no
// variance state is tracked across calls. The per-trait gain is a fixed
// policy choice (how fast a trait is allowed to move), not an online
// estimate of observation noise.
package estimator

import (
	"github.com/smehra/traitlab/internal/evidence"
	"github.com/smehra/traitlab/internal/traits"
)

// Diagnostic records what happened to one trait during an update.
type Diagnostic struct {
	Trait        traits.Trait
	OldValue     float64
	NewValue     float64
	Delta        float64
	Gain         float64
	Observations int
}

// Result is the outcome of one batch update.
type Result struct {
	Vector traits.Vector

	// Diagnostics has one entry per taxonomy trait, in display order.
	Diagnostics []Diagnostic
}

// Update returns the posterior trait vector for the given batch. The
// input vector is not mutated; missing entries are read as the 0.5
// neutral prior. A trait with no evidence in the batch keeps its prior
// value exactly, with no drift toward any baseline.
func Update(current traits.Vector, records []evidence.Record) Result {
	sums := make(map[traits.Trait]float64)
	counts := make(map[traits.Trait]int)
	for _, rec := range records {
		sums[rec.Trait] += rec.Combined
		counts[rec.Trait]++
	}

	out := make(traits.Vector, traits.Count())
	diags := make([]Diagnostic, 0, traits.Count())

	for _, t := range traits.All() {
		old := current.Get(t)
		gain := traits.Gain(t)

		n := counts[t]
		if n == 0 {
			out[t] = old
			diags = append(diags, Diagnostic{
				Trait: t, OldValue: old, NewValue: old, Gain: gain,
			})
			continue
		}

		// The signal is the average evidence quality across the batch,
		// not its sum: a long quiz does not swing harder than a short one.
		mean := sums[t] / float64(n)
		next := traits.Clamp(old + gain*mean)

		out[t] = next
		diags = append(diags, Diagnostic{
			Trait:        t,
			OldValue:     old,
			NewValue:     next,
			Delta:        next - old,
			Gain:         gain,
			Observations: n,
		})
	}

	return Result{Vector: out, Diagnostics: diags}
}
