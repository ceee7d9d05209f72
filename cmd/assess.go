package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smehra/traitlab/internal/assess"
	"github.com/smehra/traitlab/internal/traits"
	"github.com/smehra/traitlab/internal/ui/theme"
)

type diagnosticInput struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
}

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Seed a learner's initial profile from onboarding responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		file, _ := cmd.Flags().GetString("file")

		responses, err := readDiagnostics(file)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		provider := newLLMProvider(ctx, s.EventRepo())
		seeder := assess.NewSeeder(provider, s.ProfileRepo(), assess.DefaultSeederConfig())

		result, err := seeder.Seed(ctx, learner, responses)
		if err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Seeded profile for %s", learner)))
		if result.Fallback {
			fmt.Println(theme.Dim.Render("No usable LLM estimate; starting from the neutral baseline."))
		}
		fmt.Println()
		for _, t := range traits.All() {
			value := result.Vector.Get(t)
			fmt.Printf("  %s %s  %.3f\n",
				theme.TraitName.Render(string(t)),
				theme.Bar(value, 24),
				value,
			)
			if j := result.Justifications[t]; j != "" {
				fmt.Printf("  %s\n", theme.Dim.Render(j))
			}
		}
		return nil
	},
}

func init() {
	assessCmd.Flags().String("learner", "", "Learner ID (required)")
	assessCmd.Flags().String("file", "-", "JSON file with diagnostic responses, - for stdin")
	_ = assessCmd.MarkFlagRequired("learner")
}

func readDiagnostics(path string) ([]assess.DiagnosticResponse, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read diagnostic responses: %w", err)
	}

	var inputs []diagnosticInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse diagnostic responses: %w", err)
	}

	out := make([]assess.DiagnosticResponse, len(inputs))
	for i, in := range inputs {
		out[i] = assess.DiagnosticResponse{
			QuestionID: in.QuestionID,
			Prompt:     in.Prompt,
			Answer:     in.Answer,
		}
	}
	return out, nil
}
