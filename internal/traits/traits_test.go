package traits

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAll_CountAndUniqueness(t *testing.T) {
	all := All()
	if len(all) != 8 {
		t.Fatalf("taxonomy size = %d, want 8", len(all))
	}
	seen := make(map[Trait]bool)
	for _, tr := range all {
		if seen[tr] {
			t.Errorf("duplicate trait %q in taxonomy", tr)
		}
		seen[tr] = true
	}
}

func TestNeutral_AllTraitsAtHalf(t *testing.T) {
	v := Neutral()
	if len(v) != Count() {
		t.Fatalf("neutral vector has %d entries, want %d", len(v), Count())
	}
	for tr, val := range v {
		if !almostEqual(val, 0.5) {
			t.Errorf("%s = %f, want 0.5", tr, val)
		}
	}
}

func TestGet_MissingEntryDefaultsToNeutral(t *testing.T) {
	v := Vector{AnalyticalDepth: 0.8}
	if got := v.Get(Precision); !almostEqual(got, 0.5) {
		t.Errorf("Get(precision) = %f, want 0.5", got)
	}
	if got := v.Get(AnalyticalDepth); !almostEqual(got, 0.8) {
		t.Errorf("Get(analytical_depth) = %f, want 0.8", got)
	}
}

func TestNormalized_FillsAndClamps(t *testing.T) {
	v := Vector{
		AnalyticalDepth: 1.7,
		Precision:       -0.3,
		Trait("bogus"):  0.9,
	}
	n := v.Normalized()

	if len(n) != Count() {
		t.Fatalf("normalized vector has %d entries, want %d", len(n), Count())
	}
	if !almostEqual(n[AnalyticalDepth], 1.0) {
		t.Errorf("analytical_depth = %f, want 1.0", n[AnalyticalDepth])
	}
	if !almostEqual(n[Precision], 0.0) {
		t.Errorf("precision = %f, want 0.0", n[Precision])
	}
	if !almostEqual(n[Curiosity], 0.5) {
		t.Errorf("curiosity = %f, want 0.5", n[Curiosity])
	}
	if _, ok := n[Trait("bogus")]; ok {
		t.Error("normalized vector kept a non-taxonomy trait")
	}
}

func TestClone_Independent(t *testing.T) {
	v := Neutral()
	c := v.Clone()
	c[Curiosity] = 0.9
	if !almostEqual(v[Curiosity], 0.5) {
		t.Error("mutating clone changed the original")
	}
}

func TestGain_EveryTraitInRange(t *testing.T) {
	for _, tr := range All() {
		g := Gain(tr)
		if g <= 0 || g > 1 {
			t.Errorf("Gain(%s) = %f, want in (0,1]", tr, g)
		}
	}
}

func TestGain_CuriosityFasterThanPrecision(t *testing.T) {
	if Gain(Curiosity) <= Gain(Precision) {
		t.Errorf("Gain(curiosity)=%f should exceed Gain(precision)=%f",
			Gain(Curiosity), Gain(Precision))
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("metacognition"); err != nil {
		t.Errorf("Parse(metacognition) returned error: %v", err)
	}
	if _, err := Parse("charisma"); err == nil {
		t.Error("Parse(charisma) should fail")
	}
	if IsValid("charisma") {
		t.Error("IsValid(charisma) should be false")
	}
}
