package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndQueryEvidence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	batch := []EvidenceEventData{
		{BatchID: "b1", LearnerID: "lena", Topic: "fractions", QuestionID: "q1", Trait: "precision", Combined: 0.4, Correctness: 0.4},
		{BatchID: "b1", LearnerID: "lena", Topic: "fractions", QuestionID: "q1", Trait: "analytical_depth", Combined: 0.55, Correctness: 0.4, Reasoning: 0.15, Markers: []string{"because"}},
		{BatchID: "b1", LearnerID: "lena", Topic: "algebra", QuestionID: "q2", Trait: "precision", Combined: -0.4, Correctness: -0.4},
	}
	if err := repo.AppendEvidence(ctx, batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.QueryEvidence(ctx, "lena", EvidenceFilter{}, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	// Batch order preserved via sequence.
	for i := 1; i < len(all); i++ {
		if all[i].Sequence <= all[i-1].Sequence {
			t.Fatalf("events out of order: seq %d after %d", all[i].Sequence, all[i-1].Sequence)
		}
	}
	if all[0].QuestionID != "q1" || all[0].Trait != "precision" {
		t.Fatalf("unexpected first event: %+v", all[0])
	}
	if len(all[1].Markers) != 1 || all[1].Markers[0] != "because" {
		t.Fatalf("markers not round-tripped: %+v", all[1].Markers)
	}
}

func TestQueryEvidenceFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	batch := []EvidenceEventData{
		{BatchID: "b1", LearnerID: "omar", Topic: "fractions", QuestionID: "q1", Trait: "precision", Combined: 0.2},
		{BatchID: "b1", LearnerID: "omar", Topic: "algebra", QuestionID: "q2", Trait: "precision", Combined: 0.3},
		{BatchID: "b1", LearnerID: "omar", Topic: "algebra", QuestionID: "q3", Trait: "curiosity", Combined: 0.1},
		{BatchID: "b1", LearnerID: "ada", Topic: "algebra", QuestionID: "q2", Trait: "precision", Combined: 0.9},
	}
	if err := repo.AppendEvidence(ctx, batch); err != nil {
		t.Fatalf("append: %v", err)
	}

	byTopic, err := repo.QueryEvidence(ctx, "omar", EvidenceFilter{Topic: "algebra"}, QueryOpts{})
	if err != nil {
		t.Fatalf("query by topic: %v", err)
	}
	if len(byTopic) != 2 {
		t.Fatalf("expected 2 algebra events, got %d", len(byTopic))
	}

	byTrait, err := repo.QueryEvidence(ctx, "omar", EvidenceFilter{Trait: "curiosity"}, QueryOpts{})
	if err != nil {
		t.Fatalf("query by trait: %v", err)
	}
	if len(byTrait) != 1 || byTrait[0].QuestionID != "q3" {
		t.Fatalf("unexpected trait query result: %+v", byTrait)
	}

	limited, err := repo.QueryEvidence(ctx, "omar", EvidenceFilter{}, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "reasoning-score",
		InputTokens:  120,
		OutputTokens: 30,
		LatencyMs:    450,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.Purpose != "reasoning-score" || e.InputTokens != 120 || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != e.Model {
		t.Fatalf("get mismatch: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, e.ID+999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestProfileLoadAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()

	p, err := repo.Load(context.Background(), "nobody", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile for unknown learner, got %+v", p)
	}
}

func TestProfileSaveAndUpdate(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := &Profile{
		LearnerID:     "lena",
		Topic:         "fractions",
		Traits:        map[string]float64{"precision": 0.62, "curiosity": 0.5},
		QuestionCount: 3,
	}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.LastUpdated.IsZero() {
		t.Fatal("expected LastUpdated to be set on save")
	}

	loaded, err := repo.Load(ctx, "lena", "fractions")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected stored profile")
	}
	if loaded.Traits["precision"] != 0.62 || loaded.QuestionCount != 3 {
		t.Fatalf("unexpected profile: %+v", loaded)
	}

	loaded.Traits["precision"] = 0.7
	loaded.QuestionCount = 5
	if err := repo.Save(ctx, loaded); err != nil {
		t.Fatalf("update: %v", err)
	}

	again, err := repo.Load(ctx, "lena", "fractions")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Traits["precision"] != 0.7 || again.QuestionCount != 5 {
		t.Fatalf("update not persisted: %+v", again)
	}

	// Upsert must not create a second row.
	count, err := s.Client().TraitProfile.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 profile row, got %d", count)
	}
}

func TestProfileListGlobalFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for _, topic := range []string{"fractions", "", "algebra"} {
		err := repo.Save(ctx, &Profile{
			LearnerID: "omar",
			Topic:     topic,
			Traits:    map[string]float64{"precision": 0.5},
		})
		if err != nil {
			t.Fatalf("save %q: %v", topic, err)
		}
	}

	profiles, err := repo.List(ctx, "omar")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	if profiles[0].Topic != "" {
		t.Fatalf("expected global profile first, got %q", profiles[0].Topic)
	}
	if profiles[1].Topic != "algebra" || profiles[2].Topic != "fractions" {
		t.Fatalf("expected alphabetical topics, got %q then %q", profiles[1].Topic, profiles[2].Topic)
	}
}

func TestDeleteLearnerProfiles(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	events := s.EventRepo()
	ctx := context.Background()

	for _, topic := range []string{"", "algebra"} {
		err := repo.Save(ctx, &Profile{LearnerID: "lena", Topic: topic, Traits: map[string]float64{}})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	err := events.AppendEvidence(ctx, []EvidenceEventData{
		{BatchID: "b1", LearnerID: "lena", Topic: "algebra", QuestionID: "q1", Trait: "precision", Combined: 0.1},
	})
	if err != nil {
		t.Fatalf("append evidence: %v", err)
	}

	n, err := repo.DeleteLearner(ctx, "lena")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted profiles, got %d", n)
	}

	// Audit log survives a profile reset.
	remaining, err := events.QueryEvidence(ctx, "lena", EvidenceFilter{}, QueryOpts{})
	if err != nil {
		t.Fatalf("query evidence: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected evidence to survive reset, got %d entries", len(remaining))
	}
}

func TestCrossTypeSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendEvidence(ctx, []EvidenceEventData{
		{BatchID: "b1", LearnerID: "ada", Topic: "algebra", QuestionID: "q1", Trait: "precision", Combined: 0.1},
	})
	if err != nil {
		t.Fatalf("append evidence: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "reasoning-score", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	ev, err := repo.QueryEvidence(ctx, "ada", EvidenceFilter{}, QueryOpts{})
	if err != nil {
		t.Fatalf("query evidence: %v", err)
	}
	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if len(ev) != 1 || len(llmEvents) != 1 {
		t.Fatalf("expected one event of each type, got %d and %d", len(ev), len(llmEvents))
	}
	if llmEvents[0].Sequence <= ev[0].Sequence {
		t.Fatalf("LLM event should sequence after evidence: %d vs %d", llmEvents[0].Sequence, ev[0].Sequence)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRAITLAB_DB", dir+"/custom/traits.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != dir+"/custom/traits.db" {
		t.Fatalf("unexpected path: %q", p)
	}

	// Parent directory must exist after resolution.
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Fatalf("parent dir not created: %v", err)
	}
}
