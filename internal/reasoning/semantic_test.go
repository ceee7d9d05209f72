package reasoning

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/traits"
)

func TestSemantic_UsesProviderScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 0.85, "markers": ["clear causal chain"]}`),
	})
	a := NewSemanticAnalyzer(mock, DefaultSemanticConfig())

	score, markers := a.Score(context.Background(), "Because X, therefore Y.", traits.AnalyticalDepth)
	if !almostEqual(score, 0.85) {
		t.Errorf("score = %f, want 0.85", score)
	}
	if len(markers) != 1 || markers[0] != "clear causal chain" {
		t.Errorf("markers = %v, want provider markers", markers)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}
}

func TestSemantic_EmptyTextSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewSemanticAnalyzer(mock, DefaultSemanticConfig())

	score, _ := a.Score(context.Background(), "", traits.Metacognition)
	if !almostEqual(score, NeutralScore) {
		t.Errorf("score = %f, want neutral 0.5", score)
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for empty reasoning")
	}
}

func TestSemantic_ProviderErrorFallsBackToHeuristic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("boom"),
	})
	a := NewSemanticAnalyzer(mock, DefaultSemanticConfig())

	text := "I checked my work and I realized the sign was wrong."
	score, markers := a.Score(context.Background(), text, traits.Metacognition)

	wantScore, _ := NewHeuristicAnalyzer().Score(context.Background(), text, traits.Metacognition)
	if !almostEqual(score, wantScore) {
		t.Errorf("score = %f, want heuristic score %f", score, wantScore)
	}

	last := markers[len(markers)-1]
	if last != "heuristic fallback" {
		t.Errorf("markers = %v, want trailing heuristic fallback marker", markers)
	}
}

func TestSemantic_MalformedJSONFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	a := NewSemanticAnalyzer(mock, DefaultSemanticConfig())

	score, markers := a.Score(context.Background(), "Because of conservation of momentum.", traits.AnalyticalDepth)
	if score < 0 || score > 1 {
		t.Errorf("score = %f, want in [0,1]", score)
	}
	if len(markers) == 0 || markers[len(markers)-1] != "heuristic fallback" {
		t.Errorf("markers = %v, want heuristic fallback", markers)
	}
}

func TestSemantic_NilProviderIsHeuristicOnly(t *testing.T) {
	a := NewSemanticAnalyzer(nil, DefaultSemanticConfig())
	score, _ := a.Score(context.Background(), "Why? I wonder what if.", traits.Curiosity)
	want, _ := NewHeuristicAnalyzer().Score(context.Background(), "Why? I wonder what if.", traits.Curiosity)
	if !almostEqual(score, want) {
		t.Errorf("score = %f, want heuristic %f", score, want)
	}
}

func TestSemantic_ClampsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1.8, "markers": []}`),
	})
	a := NewSemanticAnalyzer(mock, DefaultSemanticConfig())

	score, _ := a.Score(context.Background(), "some reasoning", traits.Precision)
	if !almostEqual(score, 1.0) {
		t.Errorf("score = %f, want clamped to 1.0", score)
	}
}
