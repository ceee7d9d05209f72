package evidence

import "fmt"

// Weights scales the four evidence components. The split is a tunable
// policy: correctness dominates, the other three signals adjust it.
type Weights struct {
	Correctness   float64
	Calibration   float64
	Reasoning     float64
	Misconception float64

	// BasePenalty is the per-misconception penalty constant, scaled by
	// detector confidence and severity.
	BasePenalty float64

	// MaxAbs is the sanity bound on a combined evidence value. Exceeding
	// it means a scaling constant is broken, not that the data is bad.
	MaxAbs float64
}

// DefaultWeights returns the standard 0.4/0.2/0.2 split.
func DefaultWeights() Weights {
	return Weights{
		Correctness:   0.4,
		Calibration:   0.2,
		Reasoning:     0.2,
		Misconception: 1.0,
		BasePenalty:   0.15,
		MaxAbs:        1.5,
	}
}

// Validate rejects weight sets that cannot produce bounded evidence.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"correctness":   w.Correctness,
		"calibration":   w.Calibration,
		"reasoning":     w.Reasoning,
		"misconception": w.Misconception,
		"base_penalty":  w.BasePenalty,
	} {
		if v < 0 {
			return fmt.Errorf("evidence weight %s must be non-negative, got %f", name, v)
		}
	}
	if w.MaxAbs <= 0 {
		return fmt.Errorf("evidence MaxAbs must be positive, got %f", w.MaxAbs)
	}
	return nil
}
