package estimator

import (
	"math"
	"testing"

	"github.com/smehra/traitlab/internal/evidence"
	"github.com/smehra/traitlab/internal/traits"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func rec(t traits.Trait, combined float64) evidence.Record {
	return evidence.Record{QuestionID: "q", Trait: t, Combined: combined}
}

func TestUpdate_PositiveEvidenceRaisesTrait(t *testing.T) {
	v := traits.Neutral()
	res := Update(v, []evidence.Record{rec(traits.AnalyticalDepth, 0.4)})

	want := 0.5 + traits.Gain(traits.AnalyticalDepth)*0.4
	if !almostEqual(res.Vector[traits.AnalyticalDepth], want) {
		t.Errorf("analytical_depth = %f, want %f", res.Vector[traits.AnalyticalDepth], want)
	}
}

func TestUpdate_NegativeEvidenceLowersTrait(t *testing.T) {
	v := traits.Neutral()
	res := Update(v, []evidence.Record{rec(traits.Precision, -0.4)})

	if res.Vector[traits.Precision] >= 0.5 {
		t.Errorf("precision = %f, want < 0.5", res.Vector[traits.Precision])
	}
}

func TestUpdate_NoEvidenceLeavesTraitExactlyUnchanged(t *testing.T) {
	v := traits.Neutral()
	v[traits.Curiosity] = 0.731

	res := Update(v, []evidence.Record{rec(traits.Precision, 0.3)})

	if res.Vector[traits.Curiosity] != 0.731 {
		t.Errorf("curiosity = %v, want exactly 0.731", res.Vector[traits.Curiosity])
	}
}

func TestUpdate_ZeroMeanEvidenceIsNoOp(t *testing.T) {
	v := traits.Neutral()
	v[traits.Metacognition] = 0.62

	res := Update(v, []evidence.Record{
		rec(traits.Metacognition, 0.25),
		rec(traits.Metacognition, -0.25),
	})

	if res.Vector[traits.Metacognition] != 0.62 {
		t.Errorf("metacognition = %v, want exactly 0.62 for zero-mean batch", res.Vector[traits.Metacognition])
	}
}

func TestUpdate_AveragedNotSummed(t *testing.T) {
	one := Update(traits.Neutral(), []evidence.Record{rec(traits.Confidence, 0.3)})
	many := Update(traits.Neutral(), []evidence.Record{
		rec(traits.Confidence, 0.3),
		rec(traits.Confidence, 0.3),
		rec(traits.Confidence, 0.3),
	})

	if !almostEqual(one.Vector[traits.Confidence], many.Vector[traits.Confidence]) {
		t.Errorf("three identical observations moved the trait differently (%f vs %f): updater must average, not sum",
			one.Vector[traits.Confidence], many.Vector[traits.Confidence])
	}
}

func TestUpdate_GainOrdering(t *testing.T) {
	// Curiosity adapts faster than precision; identical evidence must
	// move it at least as far.
	v := traits.Neutral()
	res := Update(v, []evidence.Record{
		rec(traits.Curiosity, 0.3),
		rec(traits.Precision, 0.3),
	})

	dCuriosity := math.Abs(res.Vector[traits.Curiosity] - 0.5)
	dPrecision := math.Abs(res.Vector[traits.Precision] - 0.5)
	if dCuriosity < dPrecision {
		t.Errorf("|delta curiosity| %f < |delta precision| %f despite larger gain", dCuriosity, dPrecision)
	}
}

func TestUpdate_ClampsAtBounds(t *testing.T) {
	v := traits.Neutral()
	v[traits.Curiosity] = 0.99
	res := Update(v, []evidence.Record{rec(traits.Curiosity, 1.4)})
	if res.Vector[traits.Curiosity] > 1.0 {
		t.Errorf("curiosity = %f, want clamped to 1.0", res.Vector[traits.Curiosity])
	}

	v[traits.Curiosity] = 0.01
	res = Update(v, []evidence.Record{rec(traits.Curiosity, -1.4)})
	if res.Vector[traits.Curiosity] < 0.0 {
		t.Errorf("curiosity = %f, want clamped to 0.0", res.Vector[traits.Curiosity])
	}
}

func TestUpdate_BoundedUnderRepeatedUpdates(t *testing.T) {
	v := traits.Neutral()
	for range 200 {
		res := Update(v, []evidence.Record{
			rec(traits.AnalyticalDepth, 0.9),
			rec(traits.Precision, -0.9),
		})
		v = res.Vector
	}
	for tr, val := range v {
		if val < 0 || val > 1 {
			t.Errorf("%s = %f after repeated updates, want in [0,1]", tr, val)
		}
	}
	if !almostEqual(v[traits.AnalyticalDepth], 1.0) {
		t.Errorf("analytical_depth = %f, want saturated at 1.0", v[traits.AnalyticalDepth])
	}
	if !almostEqual(v[traits.Precision], 0.0) {
		t.Errorf("precision = %f, want saturated at 0.0", v[traits.Precision])
	}
}

func TestUpdate_MissingTraitReadAsNeutralPrior(t *testing.T) {
	// A stored vector missing taxonomy entries must not fail; the
	// missing trait starts from 0.5.
	v := traits.Vector{traits.Precision: 0.8}
	res := Update(v, []evidence.Record{rec(traits.Curiosity, 0.4)})

	want := 0.5 + traits.Gain(traits.Curiosity)*0.4
	if !almostEqual(res.Vector[traits.Curiosity], want) {
		t.Errorf("curiosity = %f, want %f (neutral prior + update)", res.Vector[traits.Curiosity], want)
	}
	if len(res.Vector) != traits.Count() {
		t.Errorf("result has %d traits, want full taxonomy %d", len(res.Vector), traits.Count())
	}
}

func TestUpdate_InputVectorNotMutated(t *testing.T) {
	v := traits.Neutral()
	Update(v, []evidence.Record{rec(traits.Confidence, 0.5)})
	if !almostEqual(v[traits.Confidence], 0.5) {
		t.Error("Update mutated its input vector")
	}
}

func TestUpdate_Diagnostics(t *testing.T) {
	res := Update(traits.Neutral(), []evidence.Record{
		rec(traits.Precision, 0.2),
		rec(traits.Precision, 0.4),
	})

	if len(res.Diagnostics) != traits.Count() {
		t.Fatalf("got %d diagnostics, want one per taxonomy trait (%d)", len(res.Diagnostics), traits.Count())
	}

	var prec *Diagnostic
	for i := range res.Diagnostics {
		if res.Diagnostics[i].Trait == traits.Precision {
			prec = &res.Diagnostics[i]
		} else if res.Diagnostics[i].Observations != 0 {
			t.Errorf("%s has %d observations, want 0", res.Diagnostics[i].Trait, res.Diagnostics[i].Observations)
		}
	}
	if prec == nil {
		t.Fatal("no diagnostic for precision")
	}
	if prec.Observations != 2 {
		t.Errorf("observations = %d, want 2", prec.Observations)
	}
	if !almostEqual(prec.Gain, traits.Gain(traits.Precision)) {
		t.Errorf("gain = %f, want %f", prec.Gain, traits.Gain(traits.Precision))
	}
	if !almostEqual(prec.Delta, prec.NewValue-prec.OldValue) {
		t.Errorf("delta = %f, want new-old", prec.Delta)
	}
}
