// Package assess derives a learner's initial trait profile from a
// free-form onboarding assessment. The LLM reads the diagnostic
// responses and proposes per-trait scores; without a provider, or when
// the provider fails, the learner simply starts from the neutral prior.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/template"

	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/store"
	"github.com/smehra/traitlab/internal/traits"
)

// DiagnosticTopic is the topic scope the seeded profile is stored under,
// alongside the global scope.
const DiagnosticTopic = "Onboarding Diagnostic Assessment"

// SeederConfig holds configuration for the LLM seeding call.
type SeederConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultSeederConfig returns sensible defaults.
func DefaultSeederConfig() SeederConfig {
	return SeederConfig{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// DiagnosticResponse is one free-form answer from the onboarding
// assessment.
type DiagnosticResponse struct {
	QuestionID string
	Prompt     string
	Answer     string
}

// SeedResult reports what the seeding produced.
type SeedResult struct {
	Vector traits.Vector

	// Justifications holds the LLM's one-line rationale per trait.
	// Empty when the neutral fallback was used.
	Justifications map[traits.Trait]string

	// Fallback is set when no provider was available or the LLM call
	// failed and the neutral baseline was used instead.
	Fallback bool
}

// Seeder derives and persists initial trait profiles.
type Seeder struct {
	provider llm.Provider
	profiles store.ProfileRepo
	cfg      SeederConfig
}

// NewSeeder creates a Seeder. A nil provider is allowed; seeding then
// always produces the neutral baseline.
func NewSeeder(provider llm.Provider, profiles store.ProfileRepo, cfg SeederConfig) *Seeder {
	return &Seeder{provider: provider, profiles: profiles, cfg: cfg}
}

// Seed estimates an initial profile from the diagnostic responses and
// stores it as both the global profile and the diagnostic topic profile.
// Seeding never fails over to an error for LLM problems.
func (s *Seeder) Seed(ctx context.Context, learnerID string, responses []DiagnosticResponse) (*SeedResult, error) {
	if learnerID == "" {
		return nil, fmt.Errorf("learner ID must not be empty")
	}

	result := s.estimate(ctx, responses)

	if err := s.persist(ctx, learnerID, result.Vector, len(responses)); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Seeder) estimate(ctx context.Context, responses []DiagnosticResponse) *SeedResult {
	neutral := &SeedResult{Vector: traits.Neutral(), Fallback: true}

	if s.provider == nil || len(responses) == 0 {
		return neutral
	}

	userMsg, err := buildSeedMessage(responses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: building assessment prompt failed, using neutral baseline: %v\n", err)
		return neutral
	}

	ctx = llm.WithPurpose(ctx, "assessment-seed")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: seedSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      SeedSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: assessment seeding failed, using neutral baseline: %v\n", err)
		return neutral
	}

	var raw map[string]struct {
		Score         float64 `json:"score"`
		Justification string  `json:"justification"`
	}
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unparseable seeding response, using neutral baseline: %v\n", err)
		return neutral
	}

	vector := traits.Neutral()
	justifications := make(map[traits.Trait]string)
	for name, entry := range raw {
		t, err := traits.Parse(name)
		if err != nil {
			continue
		}
		vector[t] = entry.Score
		justifications[t] = entry.Justification
	}

	return &SeedResult{
		Vector:         vector.Normalized(),
		Justifications: justifications,
	}
}

func (s *Seeder) persist(ctx context.Context, learnerID string, v traits.Vector, responseCount int) error {
	stored := make(map[string]float64, len(v))
	for t, value := range v {
		stored[string(t)] = value
	}

	for _, topic := range []string{"", DiagnosticTopic} {
		err := s.profiles.Save(ctx, &store.Profile{
			LearnerID:     learnerID,
			Topic:         topic,
			Traits:        stored,
			QuestionCount: responseCount,
		})
		if err != nil {
			return fmt.Errorf("save seeded profile: %w", err)
		}
	}
	return nil
}

const seedSystemPrompt = `You estimate cognitive traits from a learner's free-form answers to an onboarding assessment.

Instructions:
- Score every trait in [0.0, 1.0]. 0.5 means the responses show nothing either way; move away from 0.5 only when the learner's own words support it.
- analytical_depth: breaking problems down, causal chains. precision: exactness, units, careful wording. metacognition: reflecting on their own thinking. curiosity: questions, wanting to know more. pattern_recognition: noticing regularities and analogies. confidence: self-assurance in their claims. cognitive_flexibility: trying alternative approaches. attention_consistency: sustained focus across answers.
- Justify each score in one sentence citing the responses.`

var seedUserTemplate = template.Must(template.New("seed").Parse(`The learner answered {{len .}} diagnostic prompts:
{{range .}}
Prompt: {{.Prompt}}
Answer: {{.Answer}}
{{end}}`))

func buildSeedMessage(responses []DiagnosticResponse) (string, error) {
	var buf bytes.Buffer
	if err := seedUserTemplate.Execute(&buf, responses); err != nil {
		return "", err
	}
	return buf.String(), nil
}
