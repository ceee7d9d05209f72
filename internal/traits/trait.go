package traits

import "fmt"

// Trait is one named dimension of a learner's cognitive profile.
// Values for a trait always live in [0,1].
type Trait string

const (
	AnalyticalDepth      Trait = "analytical_depth"
	Precision            Trait = "precision"
	Metacognition        Trait = "metacognition"
	Curiosity            Trait = "curiosity"
	PatternRecognition   Trait = "pattern_recognition"
	Confidence           Trait = "confidence"
	CognitiveFlexibility Trait = "cognitive_flexibility"
	AttentionConsistency Trait = "attention_consistency"
)

// taxonomy is the fixed trait taxonomy, in display order.
var taxonomy = []Trait{
	AnalyticalDepth,
	Precision,
	Metacognition,
	Curiosity,
	PatternRecognition,
	Confidence,
	CognitiveFlexibility,
	AttentionConsistency,
}

// byName indexes the taxonomy for validation and parsing.
var byName map[string]Trait

func init() {
	byName = make(map[string]Trait, len(taxonomy))
	for _, t := range taxonomy {
		byName[string(t)] = t
	}
}

// All returns every trait in the taxonomy, in display order.
// The returned slice must not be mutated.
func All() []Trait {
	return taxonomy
}

// Count returns the number of traits in the taxonomy.
func Count() int {
	return len(taxonomy)
}

// IsValid reports whether name is a taxonomy trait.
func IsValid(name string) bool {
	_, ok := byName[name]
	return ok
}

// Parse converts a trait name to a Trait, or returns an error if the
// name is not part of the taxonomy.
func Parse(name string) (Trait, error) {
	t, ok := byName[name]
	if !ok {
		return "", fmt.Errorf("unknown trait: %q", name)
	}
	return t, nil
}
