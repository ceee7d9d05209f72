package reasoning

import (
	"context"
	"math"
	"testing"

	"github.com/smehra/traitlab/internal/traits"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func heuristicScore(t *testing.T, text string, trait traits.Trait) (float64, []string) {
	t.Helper()
	return NewHeuristicAnalyzer().Score(context.Background(), text, trait)
}

func TestHeuristic_EmptyTextIsNeutralForAllTraits(t *testing.T) {
	for _, tr := range traits.All() {
		score, markers := heuristicScore(t, "   ", tr)
		if !almostEqual(score, NeutralScore) {
			t.Errorf("%s: score = %f, want neutral 0.5", tr, score)
		}
		if len(markers) != 0 {
			t.Errorf("%s: empty text produced markers %v", tr, markers)
		}
	}
}

func TestHeuristic_CausalReasoningRaisesAnalyticalDepth(t *testing.T) {
	text := "First I looked at the forces. Because the mass doubles, the acceleration " +
		"halves, therefore the object slows. This leads to a lower final velocity."

	score, markers := heuristicScore(t, text, traits.AnalyticalDepth)
	if score <= NeutralScore {
		t.Errorf("score = %f, want > 0.5 for causal, multi-step reasoning", score)
	}
	if len(markers) == 0 {
		t.Error("expected markers explaining the score")
	}
}

func TestHeuristic_DepthSaturates(t *testing.T) {
	// A wall of causal connectives should not push past the per-component caps.
	text := ""
	for range 50 {
		text += "because therefore thus hence leads to causes results in "
	}
	score, _ := heuristicScore(t, text, traits.AnalyticalDepth)
	if score > 1.0 {
		t.Errorf("score = %f, want <= 1.0", score)
	}
	// Caps: causal 0.3 + steps 0.2 + elaboration 0.3 = 0.8 maximum.
	if score > 0.8+epsilon {
		t.Errorf("score = %f, want <= 0.8 (component caps)", score)
	}
}

func TestHeuristic_MetacognitionMarkers(t *testing.T) {
	text := "I think the answer is B, but I'm not sure. I checked my algebra twice and I realized my approach had the wrong sign."

	score, markers := heuristicScore(t, text, traits.Metacognition)
	if score < 0.5 {
		t.Errorf("score = %f, want >= 0.5 for uncertainty + self-monitoring", score)
	}

	found := map[string]bool{}
	for _, m := range markers {
		found[m] = true
	}
	if !found["uncertainty expression"] {
		t.Errorf("markers = %v, want uncertainty expression", markers)
	}
	if !found["self-monitoring phrase"] {
		t.Errorf("markers = %v, want self-monitoring phrase", markers)
	}
}

func TestHeuristic_CuriosityQuestions(t *testing.T) {
	text := "Why does this happen? I wonder what if the temperature were doubled — suppose we investigate that case."

	score, _ := heuristicScore(t, text, traits.Curiosity)
	if score < 0.5 {
		t.Errorf("score = %f, want >= 0.5 for wh-questions and hypotheticals", score)
	}
}

func TestHeuristic_PrecisionUnitsAndFormula(t *testing.T) {
	text := "Using v = u + at with u = 0 m/s and a = 5 m/s², the answer is exactly 20 m/s."

	score, markers := heuristicScore(t, text, traits.Precision)
	if score < 0.5 {
		t.Errorf("score = %f, want >= 0.5 for units + formula + qualifier", score)
	}
	if len(markers) < 2 {
		t.Errorf("markers = %v, want at least units and formula markers", markers)
	}
}

func TestHeuristic_PatternLanguage(t *testing.T) {
	text := "This is similar to the projectile problem: the same pattern shows up, and in general the rule holds for any constant acceleration."

	score, _ := heuristicScore(t, text, traits.PatternRecognition)
	if score < 0.5 {
		t.Errorf("score = %f, want >= 0.5 for analogy + generalization", score)
	}
}

func TestHeuristic_UncoveredTraitStaysNeutral(t *testing.T) {
	text := "Because the formula says so, exactly 20 m/s."
	for _, tr := range []traits.Trait{traits.Confidence, traits.AttentionConsistency} {
		score, markers := heuristicScore(t, text, tr)
		if !almostEqual(score, NeutralScore) {
			t.Errorf("%s: score = %f, want neutral 0.5", tr, score)
		}
		if len(markers) != 0 {
			t.Errorf("%s: markers = %v, want none", tr, markers)
		}
	}
}

func TestHeuristic_LowSignalTextScoresLow(t *testing.T) {
	score, _ := heuristicScore(t, "Obviously this.", traits.AnalyticalDepth)
	if score > 0.1 {
		t.Errorf("score = %f, want near zero for bare assertion", score)
	}
}
