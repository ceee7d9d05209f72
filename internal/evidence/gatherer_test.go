package evidence

import (
	"context"
	"math"
	"testing"

	"github.com/smehra/traitlab/internal/reasoning"
	"github.com/smehra/traitlab/internal/traits"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func newTestGatherer(t *testing.T) (*Gatherer, *LogBuffer) {
	t.Helper()
	buf := &LogBuffer{}
	g, err := NewGatherer(reasoning.NewHeuristicAnalyzer(), DefaultWeights(), buf)
	if err != nil {
		t.Fatalf("NewGatherer: %v", err)
	}
	return g, buf
}

func gatherSingle(t *testing.T, g *Gatherer, resp Response, trait traits.Trait) Record {
	t.Helper()
	recs, err := g.Gather(context.Background(), resp, []traits.Trait{trait})
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	return recs[0]
}

func TestGather_CorrectnessSign(t *testing.T) {
	g, _ := newTestGatherer(t)

	correct := gatherSingle(t, g, Response{QuestionID: "q1", Correct: true, Confidence: 0.5}, traits.AnalyticalDepth)
	wrong := gatherSingle(t, g, Response{QuestionID: "q1", Correct: false, Confidence: 0.5}, traits.AnalyticalDepth)

	if !almostEqual(correct.Correctness, 0.4) {
		t.Errorf("correct contribution = %f, want +0.4", correct.Correctness)
	}
	if !almostEqual(wrong.Correctness, -0.4) {
		t.Errorf("wrong contribution = %f, want -0.4", wrong.Correctness)
	}
}

func TestGather_CalibrationBrierPenalty(t *testing.T) {
	g, _ := newTestGatherer(t)

	// Maximally overconfident and wrong: -(1-0)^2 * 0.2 = -0.2
	over := gatherSingle(t, g, Response{QuestionID: "q", Correct: false, Confidence: 1.0}, traits.Precision)
	if !almostEqual(over.Calibration, -0.2) {
		t.Errorf("overconfident calibration = %f, want -0.2", over.Calibration)
	}

	// Perfectly calibrated: confident and right.
	calibrated := gatherSingle(t, g, Response{QuestionID: "q", Correct: true, Confidence: 1.0}, traits.Precision)
	if !almostEqual(calibrated.Calibration, 0.0) {
		t.Errorf("calibrated penalty = %f, want 0", calibrated.Calibration)
	}

	// Symmetric by construction: |conf - outcome| equal magnitude.
	underWrong := gatherSingle(t, g, Response{QuestionID: "q", Correct: false, Confidence: 0.3}, traits.Precision)
	overRight := gatherSingle(t, g, Response{QuestionID: "q", Correct: true, Confidence: 0.7}, traits.Precision)
	if !almostEqual(underWrong.Calibration, overRight.Calibration) {
		t.Errorf("calibration not symmetric: %f vs %f", underWrong.Calibration, overRight.Calibration)
	}
}

func TestGather_EmptyReasoningIsNeutral(t *testing.T) {
	g, _ := newTestGatherer(t)

	rec := gatherSingle(t, g, Response{QuestionID: "q", Correct: true, Confidence: 1.0}, traits.AnalyticalDepth)
	if !almostEqual(rec.Reasoning, 0.0) {
		t.Errorf("empty reasoning contribution = %f, want 0 (neutral recentered)", rec.Reasoning)
	}
}

func TestGather_MisconceptionPenaltyLinearInConfidence(t *testing.T) {
	g, _ := newTestGatherer(t)

	base := Response{QuestionID: "q", Correct: false, Confidence: 0.5}

	low := base
	low.Misconceptions = []Misconception{{ID: "m", Confidence: 0.3, Severity: SeverityHigh}}
	high := base
	high.Misconceptions = []Misconception{{ID: "m", Confidence: 0.9, Severity: SeverityHigh}}

	lowRec := gatherSingle(t, g, low, traits.PatternRecognition)
	highRec := gatherSingle(t, g, high, traits.PatternRecognition)

	if !almostEqual(highRec.Misconception, 3*lowRec.Misconception) {
		t.Errorf("penalty %f should be exactly 3x %f", highRec.Misconception, lowRec.Misconception)
	}
}

func TestGather_SeverityScalesPenalty(t *testing.T) {
	g, _ := newTestGatherer(t)

	rec := func(sev Severity) Record {
		return gatherSingle(t, g, Response{
			QuestionID:     "q",
			Correct:        false,
			Confidence:     0.5,
			Misconceptions: []Misconception{{ID: "m", Confidence: 0.8, Severity: sev}},
		}, traits.PatternRecognition)
	}

	lowP := rec(SeverityLow).Misconception
	critP := rec(SeverityCritical).Misconception
	if critP >= lowP {
		t.Errorf("critical penalty %f should be more negative than low %f", critP, lowP)
	}
	// 0.8 * 0.15 * 2.0 = 0.24
	if !almostEqual(critP, -0.24) {
		t.Errorf("critical penalty = %f, want -0.24", critP)
	}
}

func TestGather_NoMisconceptionIsZeroNotBonus(t *testing.T) {
	g, _ := newTestGatherer(t)
	rec := gatherSingle(t, g, Response{QuestionID: "q", Correct: true, Confidence: 0.8}, traits.Curiosity)
	if !almostEqual(rec.Misconception, 0.0) {
		t.Errorf("misconception contribution = %f, want exactly 0", rec.Misconception)
	}
}

func TestGather_CombinedIsComponentSum(t *testing.T) {
	g, _ := newTestGatherer(t)
	rec := gatherSingle(t, g, Response{
		QuestionID: "q",
		Correct:    false,
		Confidence: 0.9,
		Reasoning:  "Because the pattern is similar to the last one.",
		Misconceptions: []Misconception{
			{ID: "m", Confidence: 0.6, Severity: SeverityMedium},
		},
	}, traits.PatternRecognition)

	sum := rec.Correctness + rec.Calibration + rec.Reasoning + rec.Misconception
	if !almostEqual(rec.Combined, sum) {
		t.Errorf("combined = %f, want component sum %f", rec.Combined, sum)
	}
}

func TestGather_EveryRecordLogged(t *testing.T) {
	g, buf := newTestGatherer(t)

	targets := []traits.Trait{traits.Precision, traits.AnalyticalDepth}
	recs, err := g.Gather(context.Background(), Response{QuestionID: "q7", Correct: true, Confidence: 0.5}, targets)
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(buf.Records) != len(recs) {
		t.Errorf("logged %d records, want %d", len(buf.Records), len(recs))
	}
}

func TestGatherBatch_OrderAndCount(t *testing.T) {
	g, buf := newTestGatherer(t)

	responses := []Response{
		{QuestionID: "q1", Correct: true, Confidence: 0.8},
		{QuestionID: "q2", Correct: false, Confidence: 0.4},
		{QuestionID: "q3", Correct: true, Confidence: 0.6},
	}
	recs, err := g.GatherBatch(context.Background(), responses, func(i int) []traits.Trait {
		return []traits.Trait{traits.AnalyticalDepth}
	})
	if err != nil {
		t.Fatalf("GatherBatch: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	// Logged in submission order despite concurrent scoring.
	for i, want := range []string{"q1", "q2", "q3"} {
		if buf.Records[i].QuestionID != want {
			t.Errorf("log[%d] = %s, want %s", i, buf.Records[i].QuestionID, want)
		}
	}
}

func TestGather_OutOfRangeIsFatal(t *testing.T) {
	buf := &LogBuffer{}
	w := DefaultWeights()
	w.Correctness = 5.0 // broken scaling constant
	w.MaxAbs = 1.0
	g, err := NewGatherer(reasoning.NewHeuristicAnalyzer(), w, buf)
	if err != nil {
		t.Fatalf("NewGatherer: %v", err)
	}

	_, err = g.Gather(context.Background(), Response{QuestionID: "q", Correct: true, Confidence: 0.5}, []traits.Trait{traits.Precision})
	if err == nil {
		t.Fatal("expected invariant violation for out-of-range evidence")
	}
	if len(buf.Records) != 0 {
		t.Error("no records should be logged when the gather aborts")
	}
}

func TestNewGatherer_RequiresLogger(t *testing.T) {
	_, err := NewGatherer(reasoning.NewHeuristicAnalyzer(), DefaultWeights(), nil)
	if err == nil {
		t.Fatal("expected error for nil logger")
	}
}
