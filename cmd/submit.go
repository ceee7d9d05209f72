package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smehra/traitlab/internal/estimator"
	"github.com/smehra/traitlab/internal/evidence"
	"github.com/smehra/traitlab/internal/profile"
	"github.com/smehra/traitlab/internal/qmatrix"
	"github.com/smehra/traitlab/internal/reasoning"
	"github.com/smehra/traitlab/internal/ui/theme"
)

// responseInput is the wire format for one graded response.
type responseInput struct {
	QuestionID          string  `json:"question_id"`
	Correct             bool    `json:"correct"`
	Confidence          float64 `json:"confidence"`
	Reasoning           string  `json:"reasoning"`
	TargetTraits        []string `json:"target_traits"`
	Difficulty          string   `json:"difficulty"`
	RequiresCalculation bool     `json:"requires_calculation"`
	MisconceptionTarget string   `json:"misconception_target"`
	Misconceptions      []struct {
		ID         string  `json:"id"`
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
		Severity   string  `json:"severity"`
	} `json:"misconceptions"`
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Fold a batch of graded quiz responses into a learner's profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		topic, _ := cmd.Flags().GetString("topic")
		file, _ := cmd.Flags().GetString("file")

		responses, err := readResponses(file)
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
		analyzer := reasoning.NewSemanticAnalyzer(provider, reasoning.DefaultSemanticConfig())

		svc, err := profile.NewService(analyzer, evidence.DefaultWeights(), s.ProfileRepo(), s.EventRepo())
		if err != nil {
			return err
		}

		result, err := svc.UpdateProfile(ctx, learner, topic, responses)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Updated %s / %s", learner, topic)))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d responses, %d evidence records, batch %s",
			len(responses), len(result.Records), result.BatchID)))
		fmt.Println()
		fmt.Println(theme.Body.Render("Global scope"))
		printDiagnostics(result.Global.Diagnostics)
		fmt.Println()
		fmt.Println(theme.Body.Render("Topic scope"))
		printDiagnostics(result.Topic.Diagnostics)
		return nil
	},
}

func init() {
	submitCmd.Flags().String("learner", "", "Learner ID (required)")
	submitCmd.Flags().String("topic", "", "Topic the quiz belongs to (required)")
	submitCmd.Flags().String("file", "-", "JSON file with graded responses, - for stdin")
	_ = submitCmd.MarkFlagRequired("learner")
	_ = submitCmd.MarkFlagRequired("topic")
}

func readResponses(path string) ([]profile.GradedResponse, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}

	var inputs []responseInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse responses: %w", err)
	}

	out := make([]profile.GradedResponse, len(inputs))
	for i, in := range inputs {
		resp := evidence.Response{
			QuestionID: in.QuestionID,
			Correct:    in.Correct,
			Confidence: in.Confidence,
			Reasoning:  in.Reasoning,
		}
		for _, m := range in.Misconceptions {
			resp.Misconceptions = append(resp.Misconceptions, evidence.Misconception{
				ID:         m.ID,
				Text:       m.Text,
				Confidence: m.Confidence,
				Severity:   evidence.Severity(m.Severity),
			})
		}
		out[i] = profile.GradedResponse{
			Question: qmatrix.Question{
				TargetTraits:        in.TargetTraits,
				Difficulty:          in.Difficulty,
				RequiresCalculation: in.RequiresCalculation,
				MisconceptionTarget: in.MisconceptionTarget,
			},
			Response: resp,
		}
	}
	return out, nil
}

func printDiagnostics(diags []estimator.Diagnostic) {
	for _, d := range diags {
		delta := fmt.Sprintf("%+.3f", d.Delta)
		styled := theme.Dim.Render(delta)
		if d.Delta > 0 {
			styled = theme.Up.Render(delta)
		} else if d.Delta < 0 {
			styled = theme.Down.Render(delta)
		}

		obs := ""
		if d.Observations > 0 {
			obs = theme.Dim.Render(fmt.Sprintf("  (%d obs)", d.Observations))
		}

		fmt.Printf("  %s %s  %.3f → %.3f  %s%s\n",
			theme.TraitName.Render(string(d.Trait)),
			theme.Bar(d.NewValue, 20),
			d.OldValue,
			d.NewValue,
			styled,
			obs,
		)
	}
}
