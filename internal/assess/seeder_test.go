package assess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/store"
	"github.com/smehra/traitlab/internal/traits"
)

func testProfiles(t *testing.T) (store.ProfileRepo, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.ProfileRepo(), s
}

// seedResponse builds a full conforming LLM response with every trait
// at the given score.
func seedResponse(score float64) json.RawMessage {
	entries := make([]string, 0, traits.Count())
	for _, tr := range traits.All() {
		entries = append(entries, fmt.Sprintf(`%q:{"score":%f,"justification":"test"}`, string(tr), score))
	}
	return json.RawMessage("{" + strings.Join(entries, ",") + "}")
}

func sampleResponses() []DiagnosticResponse {
	return []DiagnosticResponse{
		{QuestionID: "d1", Prompt: "How would you split a pizza among 7 people?", Answer: "First I would measure the angle, 360 over 7 is about 51.4 degrees."},
		{QuestionID: "d2", Prompt: "What do you do when you get stuck?", Answer: "I go back and check each step, I wonder what else could work."},
	}
}

func TestSeed_UsesLLMScores(t *testing.T) {
	profiles, _ := testProfiles(t)
	mock := llm.NewMockProvider(llm.MockResponse{Content: seedResponse(0.8)})
	seeder := NewSeeder(mock, profiles, DefaultSeederConfig())

	result, err := seeder.Seed(context.Background(), "lena", sampleResponses())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if result.Fallback {
		t.Fatal("expected LLM-backed result, got fallback")
	}
	for _, tr := range traits.All() {
		if got := result.Vector.Get(tr); got != 0.8 {
			t.Errorf("trait %s = %f, want 0.8", tr, got)
		}
		if result.Justifications[tr] == "" {
			t.Errorf("trait %s missing justification", tr)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "trait-seed" {
		t.Fatal("expected the trait-seed schema on the request")
	}
}

func TestSeed_PersistsBothScopes(t *testing.T) {
	profiles, _ := testProfiles(t)
	mock := llm.NewMockProvider(llm.MockResponse{Content: seedResponse(0.7)})
	seeder := NewSeeder(mock, profiles, DefaultSeederConfig())

	if _, err := seeder.Seed(context.Background(), "lena", sampleResponses()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx := context.Background()
	global, err := profiles.Load(ctx, "lena", "")
	if err != nil {
		t.Fatalf("load global: %v", err)
	}
	diagnostic, err := profiles.Load(ctx, "lena", DiagnosticTopic)
	if err != nil {
		t.Fatalf("load diagnostic: %v", err)
	}
	if global == nil || diagnostic == nil {
		t.Fatal("expected both scopes persisted")
	}
	if global.Traits["curiosity"] != 0.7 || diagnostic.Traits["curiosity"] != 0.7 {
		t.Fatalf("seeded scores not stored: %f and %f", global.Traits["curiosity"], diagnostic.Traits["curiosity"])
	}
	if global.QuestionCount != 2 {
		t.Fatalf("question count = %d, want 2", global.QuestionCount)
	}
}

func TestSeed_NilProviderFallsBackToNeutral(t *testing.T) {
	profiles, _ := testProfiles(t)
	seeder := NewSeeder(nil, profiles, DefaultSeederConfig())

	result, err := seeder.Seed(context.Background(), "omar", sampleResponses())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !result.Fallback {
		t.Fatal("expected fallback without a provider")
	}
	for _, tr := range traits.All() {
		if got := result.Vector.Get(tr); got != traits.NeutralValue {
			t.Errorf("trait %s = %f, want neutral", tr, got)
		}
	}

	// The neutral baseline is still persisted.
	p, err := profiles.Load(context.Background(), "omar", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("expected persisted neutral profile")
	}
}

func TestSeed_ProviderErrorFallsBackToNeutral(t *testing.T) {
	profiles, _ := testProfiles(t)
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	seeder := NewSeeder(mock, profiles, DefaultSeederConfig())

	result, err := seeder.Seed(context.Background(), "lena", sampleResponses())
	if err != nil {
		t.Fatalf("seeding must not fail on LLM errors: %v", err)
	}
	if !result.Fallback {
		t.Fatal("expected fallback on provider error")
	}
}

func TestSeed_ClampsOutOfRangeScores(t *testing.T) {
	profiles, _ := testProfiles(t)
	// A response that slips past generation with an out-of-range score.
	content := json.RawMessage(`{"precision":{"score":1.7,"justification":"overshoot"}}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	seeder := NewSeeder(mock, profiles, DefaultSeederConfig())

	result, err := seeder.Seed(context.Background(), "lena", sampleResponses())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := result.Vector.Get(traits.Precision); got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %f", got)
	}
	// Traits the response omitted stay neutral.
	if got := result.Vector.Get(traits.Curiosity); got != traits.NeutralValue {
		t.Fatalf("expected neutral for omitted trait, got %f", got)
	}
}

func TestSeed_EmptyLearnerID(t *testing.T) {
	profiles, _ := testProfiles(t)
	seeder := NewSeeder(nil, profiles, DefaultSeederConfig())
	if _, err := seeder.Seed(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty learner ID")
	}
}
