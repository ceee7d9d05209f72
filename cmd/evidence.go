package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehra/traitlab/internal/store"
	"github.com/smehra/traitlab/internal/ui/theme"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Inspect the append-only evidence audit log",
}

var evidenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a learner's evidence records, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		filter, opts := evidenceQuery(cmd)

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryEvidence(cmd.Context(), learner, filter, opts)
		if err != nil {
			return fmt.Errorf("query evidence: %w", err)
		}
		if len(events) == 0 {
			fmt.Println(theme.Dim.Render("No evidence records found."))
			return nil
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Evidence for %s (%d records)", learner, len(events))))
		fmt.Println()
		fmt.Printf("%-6s %-17s %-12s %-22s %-9s %-9s %-9s %-9s %-9s\n",
			"SEQ", "TIMESTAMP", "QUESTION", "TRAIT", "COMBINED", "CORRECT", "CALIB", "REASON", "MISCON")
		for _, e := range events {
			fmt.Printf("%-6d %-17s %-12s %-22s %+-9.3f %+-9.3f %+-9.3f %+-9.3f %+-9.3f\n",
				e.Sequence,
				e.Timestamp.Format("2006-01-02 15:04"),
				truncate(e.QuestionID, 12),
				e.Trait,
				e.Combined,
				e.Correctness,
				e.Calibration,
				e.Reasoning,
				e.Misconception,
			)
			if len(e.Markers) > 0 {
				fmt.Printf("       %s\n", theme.Dim.Render("markers: "+strings.Join(e.Markers, ", ")))
			}
		}
		return nil
	},
}

var evidenceExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a learner's evidence records as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		filter, opts := evidenceQuery(cmd)

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryEvidence(cmd.Context(), learner, filter, opts)
		if err != nil {
			return fmt.Errorf("query evidence: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(exportEvidence(events))
	},
}

// evidenceExportRecord is the JSON export shape for one audit log entry.
type evidenceExportRecord struct {
	Sequence      int64    `json:"sequence"`
	Timestamp     string   `json:"timestamp"`
	BatchID       string   `json:"batch_id"`
	LearnerID     string   `json:"learner_id"`
	Topic         string   `json:"topic"`
	QuestionID    string   `json:"question_id"`
	Trait         string   `json:"trait"`
	Combined      float64  `json:"combined"`
	Correctness   float64  `json:"correctness"`
	Calibration   float64  `json:"calibration"`
	Reasoning     float64  `json:"reasoning"`
	Misconception float64  `json:"misconception"`
	Markers       []string `json:"markers,omitempty"`
}

func exportEvidence(events []*store.EvidenceEvent) []evidenceExportRecord {
	out := make([]evidenceExportRecord, len(events))
	for i, e := range events {
		out[i] = evidenceExportRecord{
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
			BatchID:       e.BatchID,
			LearnerID:     e.LearnerID,
			Topic:         e.Topic,
			QuestionID:    e.QuestionID,
			Trait:         e.Trait,
			Combined:      e.Combined,
			Correctness:   e.Correctness,
			Calibration:   e.Calibration,
			Reasoning:     e.Reasoning,
			Misconception: e.Misconception,
			Markers:       e.Markers,
		}
	}
	return out
}

func evidenceQuery(cmd *cobra.Command) (store.EvidenceFilter, store.QueryOpts) {
	topic, _ := cmd.Flags().GetString("topic")
	trait, _ := cmd.Flags().GetString("trait")
	question, _ := cmd.Flags().GetString("question")
	limit, _ := cmd.Flags().GetInt("limit")
	after, _ := cmd.Flags().GetInt64("after")

	return store.EvidenceFilter{
			Topic:      topic,
			Trait:      trait,
			QuestionID: question,
		}, store.QueryOpts{
			Limit: limit,
			After: after,
		}
}

func addEvidenceFlags(c *cobra.Command) {
	c.Flags().String("learner", "", "Learner ID (required)")
	c.Flags().String("topic", "", "Filter by topic")
	c.Flags().String("trait", "", "Filter by trait")
	c.Flags().String("question", "", "Filter by question ID")
	c.Flags().Int("limit", 50, "Maximum records to return (0 for all)")
	c.Flags().Int64("after", 0, "Only records with sequence greater than this")
	_ = c.MarkFlagRequired("learner")
}

func init() {
	addEvidenceFlags(evidenceListCmd)
	addEvidenceFlags(evidenceExportCmd)
	evidenceCmd.AddCommand(evidenceListCmd)
	evidenceCmd.AddCommand(evidenceExportCmd)
}
