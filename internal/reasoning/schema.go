package reasoning

import "github.com/smehra/traitlab/internal/llm"

// ScoreSchema defines the JSON schema for semantic reasoning-quality responses.
var ScoreSchema = &llm.Schema{
	Name:        "reasoning-score",
	Description: "Quality score for a learner's free-text reasoning with respect to one cognitive trait",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "How strongly the reasoning evidences the trait (0.5 = neutral)",
			},
			"markers": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    5,
				"description": "Short human-readable phrases naming what in the text supports the score",
			},
		},
		"required":             []any{"score", "markers"},
		"additionalProperties": false,
	},
}
