package qmatrix

import (
	"testing"

	"github.com/smehra/traitlab/internal/traits"
)

func hasTrait(ts []traits.Trait, want traits.Trait) bool {
	for _, t := range ts {
		if t == want {
			return true
		}
	}
	return false
}

func TestMap_ExplicitTagsUsedVerbatim(t *testing.T) {
	res := Map(Question{
		TargetTraits:        []string{"curiosity", "metacognition"},
		RequiresCalculation: true, // should be ignored: explicit tags win
	})

	if len(res.Traits) != 2 {
		t.Fatalf("got %d traits, want 2", len(res.Traits))
	}
	if !hasTrait(res.Traits, traits.Curiosity) || !hasTrait(res.Traits, traits.Metacognition) {
		t.Errorf("traits = %v, want curiosity and metacognition", res.Traits)
	}
	if res.Defaulted {
		t.Error("explicit mapping should not be marked defaulted")
	}
}

func TestMap_UnknownExplicitTagsDropped(t *testing.T) {
	res := Map(Question{TargetTraits: []string{"precision", "telepathy"}})
	if len(res.Traits) != 1 || res.Traits[0] != traits.Precision {
		t.Errorf("traits = %v, want [precision]", res.Traits)
	}
}

func TestMap_AllUnknownTagsFallThroughToInference(t *testing.T) {
	res := Map(Question{
		TargetTraits:        []string{"telepathy"},
		RequiresCalculation: true,
	})
	if !hasTrait(res.Traits, traits.Precision) || !hasTrait(res.Traits, traits.AnalyticalDepth) {
		t.Errorf("traits = %v, want calculation rule to fire", res.Traits)
	}
}

func TestMap_CalculationRule(t *testing.T) {
	res := Map(Question{RequiresCalculation: true})
	if len(res.Traits) != 2 {
		t.Fatalf("got %d traits, want 2", len(res.Traits))
	}
	if !hasTrait(res.Traits, traits.Precision) || !hasTrait(res.Traits, traits.AnalyticalDepth) {
		t.Errorf("traits = %v, want precision + analytical_depth", res.Traits)
	}
}

func TestMap_HardDifficultyRule(t *testing.T) {
	for _, diff := range []string{"hard", "expert"} {
		res := Map(Question{Difficulty: diff})
		if !hasTrait(res.Traits, traits.CognitiveFlexibility) || !hasTrait(res.Traits, traits.AnalyticalDepth) {
			t.Errorf("difficulty %q: traits = %v, want cognitive_flexibility + analytical_depth", diff, res.Traits)
		}
	}
}

func TestMap_MisconceptionRule(t *testing.T) {
	res := Map(Question{MisconceptionTarget: "distance-misconception"})
	if !hasTrait(res.Traits, traits.PatternRecognition) {
		t.Errorf("traits = %v, want pattern_recognition", res.Traits)
	}
}

func TestMap_RulesCombineWithoutDuplicates(t *testing.T) {
	res := Map(Question{
		RequiresCalculation: true,
		Difficulty:          "hard",
		MisconceptionTarget: "m-1",
	})
	seen := make(map[traits.Trait]int)
	for _, tr := range res.Traits {
		seen[tr]++
	}
	if seen[traits.AnalyticalDepth] != 1 {
		t.Errorf("analytical_depth appears %d times, want 1", seen[traits.AnalyticalDepth])
	}
	if len(res.Traits) != 4 {
		t.Errorf("got %d traits, want 4 (precision, analytical_depth, cognitive_flexibility, pattern_recognition)", len(res.Traits))
	}
}

func TestMap_NoRuleFiresYieldsDefault(t *testing.T) {
	res := Map(Question{Difficulty: "easy"})
	if len(res.Traits) != 1 || res.Traits[0] != traits.AnalyticalDepth {
		t.Errorf("traits = %v, want default [analytical_depth]", res.Traits)
	}
	if !res.Defaulted {
		t.Error("default mapping should be flagged so callers can log it")
	}
}
