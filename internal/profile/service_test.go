package profile

import (
	"context"
	"math"
	"testing"

	"github.com/smehra/traitlab/internal/evidence"
	"github.com/smehra/traitlab/internal/qmatrix"
	"github.com/smehra/traitlab/internal/reasoning"
	"github.com/smehra/traitlab/internal/store"
	"github.com/smehra/traitlab/internal/traits"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc, err := NewService(reasoning.NewHeuristicAnalyzer(), evidence.DefaultWeights(), s.ProfileRepo(), s.EventRepo())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func analyticalQuestion() qmatrix.Question {
	return qmatrix.Question{TargetTraits: []string{"analytical_depth"}}
}

func TestUpdateProfile_CorrectAnswerRaisesTargetOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Correct, fully confident, near-neutral reasoning, no misconceptions.
	result, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{
		{
			Question: analyticalQuestion(),
			Response: evidence.Response{
				QuestionID: "q1",
				Correct:    true,
				Confidence: 1.0,
				Reasoning:  "Obviously this",
			},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	target := result.Global.Vector.Get(traits.AnalyticalDepth)
	if target <= traits.NeutralValue {
		t.Fatalf("expected analytical_depth above neutral, got %f", target)
	}

	// Every other trait keeps its prior exactly.
	for _, tr := range traits.All() {
		if tr == traits.AnalyticalDepth {
			continue
		}
		if got := result.Global.Vector.Get(tr); !almostEqual(got, traits.NeutralValue) {
			t.Errorf("trait %s moved without evidence: %f", tr, got)
		}
	}

	// Topic scope moves in step with the global scope from the same prior.
	if !almostEqual(result.Topic.Vector.Get(traits.AnalyticalDepth), target) {
		t.Fatalf("topic and global diverged from identical priors: %f vs %f",
			result.Topic.Vector.Get(traits.AnalyticalDepth), target)
	}
}

func TestUpdateProfile_OverconfidentMissDropsHarder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	miss := func(learner string, confidence float64) float64 {
		t.Helper()
		result, err := svc.UpdateProfile(ctx, learner, "fractions", []GradedResponse{
			{
				Question: analyticalQuestion(),
				Response: evidence.Response{
					QuestionID: "q1",
					Correct:    false,
					Confidence: confidence,
				},
			},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		return result.Global.Vector.Get(traits.AnalyticalDepth)
	}

	overconfident := miss("lena", 1.0)
	hedged := miss("omar", 0.2)

	if overconfident >= hedged {
		t.Fatalf("overconfident miss should drop harder: %f vs %f", overconfident, hedged)
	}
	if overconfident >= traits.NeutralValue {
		t.Fatalf("expected a drop below neutral, got %f", overconfident)
	}
}

func TestUpdateProfile_RepeatedMisconceptionKeepsDropping(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	prev := traits.NeutralValue
	for i := 0; i < 3; i++ {
		result, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{
			{
				Question: qmatrix.Question{TargetTraits: []string{"pattern_recognition"}},
				Response: evidence.Response{
					QuestionID: "q1",
					Correct:    false,
					Confidence: 0.8,
					Misconceptions: []evidence.Misconception{
						{ID: "frac-add-denominators", Confidence: 0.9, Severity: evidence.SeverityHigh},
					},
				},
			},
		})
		if err != nil {
			t.Fatalf("quiz %d: %v", i+1, err)
		}
		got := result.Topic.Vector.Get(traits.PatternRecognition)
		if got >= prev {
			t.Fatalf("quiz %d: expected strict decrease, %f then %f", i+1, prev, got)
		}
		prev = got
	}

	// A clean correct answer finally recovers.
	result, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{
		{
			Question: qmatrix.Question{TargetTraits: []string{"pattern_recognition"}},
			Response: evidence.Response{QuestionID: "q2", Correct: true, Confidence: 0.8},
		},
	})
	if err != nil {
		t.Fatalf("recovery quiz: %v", err)
	}
	if got := result.Topic.Vector.Get(traits.PatternRecognition); got <= prev {
		t.Fatalf("expected recovery above %f, got %f", prev, got)
	}
}

func TestUpdateProfile_PersistsBothScopes(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{
		{
			Question: analyticalQuestion(),
			Response: evidence.Response{QuestionID: "q1", Correct: true, Confidence: 0.9},
		},
		{
			Question: analyticalQuestion(),
			Response: evidence.Response{QuestionID: "q2", Correct: true, Confidence: 0.9},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	global, err := st.ProfileRepo().Load(ctx, "lena", "")
	if err != nil {
		t.Fatalf("load global: %v", err)
	}
	topical, err := st.ProfileRepo().Load(ctx, "lena", "fractions")
	if err != nil {
		t.Fatalf("load topic: %v", err)
	}
	if global == nil || topical == nil {
		t.Fatal("expected both scopes persisted")
	}
	if global.QuestionCount != 2 || topical.QuestionCount != 2 {
		t.Fatalf("question counts = %d and %d, want 2 and 2", global.QuestionCount, topical.QuestionCount)
	}
	if global.Traits["analytical_depth"] <= traits.NeutralValue {
		t.Fatalf("persisted global vector not updated: %f", global.Traits["analytical_depth"])
	}
}

func TestUpdateProfile_AppendsAuditLog(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	result, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{
		{
			// Maps to precision and analytical_depth via inference.
			Question: qmatrix.Question{RequiresCalculation: true},
			Response: evidence.Response{QuestionID: "q1", Correct: true, Confidence: 0.7},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	entries, err := st.EventRepo().QueryEvidence(ctx, "lena", store.EvidenceFilter{}, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query evidence: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries (one per trait), got %d", len(entries))
	}
	for _, e := range entries {
		if e.BatchID != result.BatchID {
			t.Errorf("entry batch %q, want %q", e.BatchID, result.BatchID)
		}
		if e.Topic != "fractions" || e.QuestionID != "q1" {
			t.Errorf("unexpected entry scope: %+v", e.EvidenceEventData)
		}
	}
}

func TestUpdateProfile_EmptyBatchIsNoOp(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	result, err := svc.UpdateProfile(ctx, "lena", "fractions", nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, tr := range traits.All() {
		if got := result.Global.Vector.Get(tr); !almostEqual(got, traits.NeutralValue) {
			t.Errorf("trait %s should stay at prior: %f", tr, got)
		}
	}

	// Nothing persisted for an empty batch.
	p, err := st.ProfileRepo().Load(ctx, "lena", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no stored profile, got %+v", p)
	}
}

func TestUpdateProfile_ValidatesScope(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, "", "fractions", nil); err == nil {
		t.Fatal("expected error for empty learner ID")
	}
	if _, err := svc.UpdateProfile(ctx, "lena", "", nil); err == nil {
		t.Fatal("expected error for empty topic")
	}
}

func TestUpdateProfile_TopicPriorsStayIndependent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	correct := GradedResponse{
		Question: analyticalQuestion(),
		Response: evidence.Response{QuestionID: "q1", Correct: true, Confidence: 0.9},
	}

	// Two updates in fractions, one in algebra.
	for i := 0; i < 2; i++ {
		if _, err := svc.UpdateProfile(ctx, "lena", "fractions", []GradedResponse{correct}); err != nil {
			t.Fatalf("fractions update %d: %v", i+1, err)
		}
	}
	result, err := svc.UpdateProfile(ctx, "lena", "algebra", []GradedResponse{correct})
	if err != nil {
		t.Fatalf("algebra update: %v", err)
	}

	algebra := result.Topic.Vector.Get(traits.AnalyticalDepth)
	global := result.Global.Vector.Get(traits.AnalyticalDepth)

	// The algebra scope started from neutral; the global scope already
	// carried two updates, so it must sit higher.
	if global <= algebra {
		t.Fatalf("expected global above fresh topic scope: %f vs %f", global, algebra)
	}
}

func TestPureUpdateDoesNotPersist(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	current := traits.Neutral()
	result, records, err := svc.Update(ctx, current, []GradedResponse{
		{
			Question: analyticalQuestion(),
			Response: evidence.Response{QuestionID: "q1", Correct: true, Confidence: 0.9},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if result.Vector.Get(traits.AnalyticalDepth) <= traits.NeutralValue {
		t.Fatalf("expected posterior above neutral")
	}
	if !almostEqual(current.Get(traits.AnalyticalDepth), traits.NeutralValue) {
		t.Fatal("input vector was mutated")
	}

	entries, err := st.EventRepo().QueryEvidence(ctx, "lena", store.EvidenceFilter{}, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query evidence: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("pure update must not write the audit log, found %d entries", len(entries))
	}
}
