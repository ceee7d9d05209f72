package reasoning

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/traits"
)

// SemanticConfig holds settings for the LLM-backed scorer.
type SemanticConfig struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single scoring call. A slow provider falls back
	// to the heuristic for that response instead of stalling the batch.
	Timeout time.Duration
}

// DefaultSemanticConfig returns sensible defaults for reasoning scoring.
func DefaultSemanticConfig() SemanticConfig {
	return SemanticConfig{
		MaxTokens:   256,
		Temperature: 0.2,
		Timeout:     15 * time.Second,
	}
}

// SemanticAnalyzer scores reasoning via an LLM provider, falling back to
// the heuristic scorer whenever the provider fails or times out. The
// provider is explicit constructor input, not ambient state, so tests
// can pin a mock or force heuristic-only mode.
type SemanticAnalyzer struct {
	provider llm.Provider
	fallback *HeuristicAnalyzer
	cfg      SemanticConfig
}

// NewSemanticAnalyzer creates a semantic scorer. A nil provider yields
// an analyzer that always uses the heuristic path.
func NewSemanticAnalyzer(provider llm.Provider, cfg SemanticConfig) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		provider: provider,
		fallback: NewHeuristicAnalyzer(),
		cfg:      cfg,
	}
}

const scoreSystemPrompt = `You are an expert in cognitive assessment of STEM learners.
You will be given one learner's free-text reasoning for a quiz answer and the name
of a single cognitive trait. Judge how strongly the reasoning evidences that trait.
0.5 is neutral baseline, above 0.7 is clear strength, below 0.4 is clear weakness.
Judge only the named trait. Respond with JSON only.`

type scoreOutput struct {
	Score   float64  `json:"score"`
	Markers []string `json:"markers"`
}

// Score implements Analyzer. Provider failures are recovered per call:
// the heuristic result is returned with a marker noting the fallback.
func (s *SemanticAnalyzer) Score(ctx context.Context, text string, trait traits.Trait) (float64, []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NeutralScore, nil
	}
	if s.provider == nil {
		return s.fallback.Score(ctx, text, trait)
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "reasoning-score")

	req := llm.Request{
		System: scoreSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildScoreMessage(trimmed, trait)},
		},
		Schema:      ScoreSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return s.fallbackWith(ctx, text, trait, err)
	}

	var out scoreOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return s.fallbackWith(ctx, text, trait, err)
	}

	return traits.Clamp(out.Score), out.Markers
}

// fallbackWith degrades to the heuristic scorer for this one response.
// The failure is reported but never propagated: a single slow or broken
// provider call must not prevent the rest of the batch from scoring.
func (s *SemanticAnalyzer) fallbackWith(ctx context.Context, text string, trait traits.Trait, cause error) (float64, []string) {
	fmt.Fprintf(os.Stderr, "warning: semantic scorer unavailable, using heuristic: %v\n", cause)
	score, markers := s.fallback.Score(ctx, text, trait)
	return score, append(markers, "heuristic fallback")
}

func buildScoreMessage(text string, trait traits.Trait) string {
	var b strings.Builder
	b.WriteString("Trait: ")
	b.WriteString(string(trait))
	b.WriteString("\n\nLearner reasoning:\n")
	b.WriteString(text)
	return b.String()
}
