package assess

import (
	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/traits"
)

// SeedSchema defines the JSON schema for the onboarding trait estimate.
// One entry per taxonomy trait, each with a score and a one-line
// justification grounded in the learner's own words.
var SeedSchema = buildSeedSchema()

func buildSeedSchema() *llm.Schema {
	properties := make(map[string]any, traits.Count())
	required := make([]any, 0, traits.Count())

	for _, t := range traits.All() {
		properties[string(t)] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score": map[string]any{
					"type":        "number",
					"minimum":     0.0,
					"maximum":     1.0,
					"description": "Estimate for this trait, 0.5 when the responses show nothing either way",
				},
				"justification": map[string]any{
					"type":        "string",
					"description": "One sentence citing what in the responses supports the score",
				},
			},
			"required":             []any{"score", "justification"},
			"additionalProperties": false,
		}
		required = append(required, string(t))
	}

	return &llm.Schema{
		Name:        "trait-seed",
		Description: "Initial cognitive trait estimates from diagnostic responses",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           properties,
			"required":             required,
			"additionalProperties": false,
		},
	}
}
