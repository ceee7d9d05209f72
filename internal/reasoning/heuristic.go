package reasoning

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/smehra/traitlab/internal/traits"
)

// Phrase lists per heuristic. Matching is case-insensitive substring
// matching over the lowercased text, which is deliberately crude: the
// heuristic scorer is the degraded mode, not the primary one.
var (
	causalPhrases = []string{
		"because", "therefore", "thus", "hence", "leads to", "causes", "results in",
	}
	stepPhrases = []string{
		"first", "then", "next", "finally", "step",
	}
	uncertaintyPhrases = []string{
		"i think", "probably", "maybe", "not sure", "might be", "i believe",
	}
	monitoringPhrases = []string{
		"i checked", "i realized", "i noticed", "i found", "i reviewed", "i double-checked",
	}
	strategyPhrases = []string{
		"i used", "i applied", "my approach", "my method",
	}
	inquiryPhrases = []string{
		"why", "how", "what if", "i wonder", "curious", "suppose",
	}
	explorationPhrases = []string{
		"explore", "investigate", "discover", "learn more",
	}
	precisionPhrases = []string{
		"exactly", "precisely", "approximately", "specific", "unit", "formula", "equation",
	}
	patternPhrases = []string{
		"pattern", "similar", "relationship", "trend", "sequence", "rule", "typically", "analogous",
	}
	generalizationPhrases = []string{
		"in general", "always", "usually", "every time",
	}
)

// valueWithUnit matches numeric values with an attached unit or symbol,
// e.g. "20 m/s", "9.8m/s²", "45°", "3 kg".
var valueWithUnit = regexp.MustCompile(`\d+(\.\d+)?\s*(m/s²|m/s|km/h|kg|°c|°f|°|%|m|s|n|j|w|v|a|hz|mol|g|l)\b`)

// HeuristicAnalyzer is the regex/keyword fallback scorer. It is a pure
// function of the input text and keeps no state.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer returns the fallback scorer.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Score implements Analyzer. The context is unused; the heuristic never blocks.
func (h *HeuristicAnalyzer) Score(_ context.Context, text string, trait traits.Trait) (float64, []string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NeutralScore, nil
	}

	lower := strings.ToLower(trimmed)
	words := len(strings.Fields(trimmed))

	switch trait {
	case traits.AnalyticalDepth, traits.CognitiveFlexibility:
		return scoreDepth(lower, words)
	case traits.Metacognition:
		return scoreMetacognition(lower)
	case traits.Curiosity:
		return scoreCuriosity(lower)
	case traits.Precision:
		return scorePrecision(lower)
	case traits.PatternRecognition:
		return scorePattern(lower)
	default:
		// No text heuristic exists for this trait (confidence,
		// attention_consistency); stay neutral rather than guessing.
		return NeutralScore, nil
	}
}

// scoreDepth rewards causal connectives, multi-step structure, and
// elaboration. Each component saturates so one long run-on sentence
// cannot dominate.
func scoreDepth(lower string, words int) (float64, []string) {
	var score float64
	var markers []string

	if n := countPhrases(lower, causalPhrases); n > 0 {
		score += saturate(float64(n)*0.1, 0.3)
		markers = append(markers, fmt.Sprintf("causal connectives x%d", n))
	}
	if anyPhrase(lower, stepPhrases) {
		score += 0.2
		markers = append(markers, "multi-step structure")
	}
	if elaboration := saturate(float64(words)/100, 0.3); elaboration > 0 {
		score += elaboration
	}
	if words >= 30 {
		markers = append(markers, "elaborated response")
	}

	return traits.Clamp(score), markers
}

func scoreMetacognition(lower string) (float64, []string) {
	var score float64
	var markers []string

	if anyPhrase(lower, uncertaintyPhrases) {
		score += 0.25
		markers = append(markers, "uncertainty expression")
	}
	if anyPhrase(lower, monitoringPhrases) {
		score += 0.35
		markers = append(markers, "self-monitoring phrase")
	}
	if anyPhrase(lower, strategyPhrases) {
		score += 0.25
		markers = append(markers, "strategy awareness")
	}
	// First-person density as a cheap subjectivity signal.
	if n := strings.Count(lower, "i "); n >= 2 {
		score += saturate(float64(n)*0.05, 0.15)
		markers = append(markers, "first-person reflection")
	}

	return traits.Clamp(score), markers
}

func scoreCuriosity(lower string) (float64, []string) {
	var score float64
	var markers []string

	if n := countPhrases(lower, inquiryPhrases); n > 0 {
		score += saturate(float64(n)*0.15, 0.5)
		markers = append(markers, fmt.Sprintf("inquiry markers x%d", n))
	}
	if anyPhrase(lower, explorationPhrases) {
		score += 0.3
		markers = append(markers, "exploration language")
	}

	return traits.Clamp(score), markers
}

func scorePrecision(lower string) (float64, []string) {
	var score float64
	var markers []string

	if n := len(valueWithUnit.FindAllString(lower, -1)); n > 0 {
		score += saturate(float64(n)*0.15, 0.4)
		markers = append(markers, fmt.Sprintf("values with units x%d", n))
	}
	if strings.Contains(lower, "=") {
		score += 0.2
		markers = append(markers, "explicit formula")
	}
	if n := countPhrases(lower, precisionPhrases); n > 0 {
		score += saturate(float64(n)*0.15, 0.4)
		markers = append(markers, fmt.Sprintf("precision qualifiers x%d", n))
	}

	return traits.Clamp(score), markers
}

func scorePattern(lower string) (float64, []string) {
	var score float64
	var markers []string

	if n := countPhrases(lower, patternPhrases); n > 0 {
		score += saturate(float64(n)*0.15, 0.5)
		markers = append(markers, fmt.Sprintf("comparison/analogy language x%d", n))
	}
	if anyPhrase(lower, generalizationPhrases) {
		score += 0.2
		markers = append(markers, "generalization phrase")
	}

	return traits.Clamp(score), markers
}

func countPhrases(lower string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		n += strings.Count(lower, p)
	}
	return n
}

func anyPhrase(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func saturate(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}
