package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smehra/traitlab/internal/traits"
	"github.com/smehra/traitlab/internal/ui/theme"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a learner's trait profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		topic, _ := cmd.Flags().GetString("topic")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		profiles, err := s.ProfileRepo().List(cmd.Context(), learner)
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("No profiles for %s yet. Run 'traitlab assess' or 'traitlab submit' first.", learner)))
			return nil
		}

		shown := 0
		for _, p := range profiles {
			if topic != "" && p.Topic != topic {
				continue
			}
			shown++

			scope := "Global"
			if p.Topic != "" {
				scope = p.Topic
			}
			fmt.Println(theme.Title.Render(scope))
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("%d questions, updated %s",
				p.QuestionCount, p.LastUpdated.Format("2006-01-02 15:04"))))

			for _, t := range traits.All() {
				value, ok := p.Traits[string(t)]
				if !ok {
					value = traits.NeutralValue
				}
				fmt.Printf("  %s %s  %.3f\n",
					theme.TraitName.Render(string(t)),
					theme.Bar(value, 24),
					value,
				)
			}
			fmt.Println()
		}

		if shown == 0 {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("No profile for %s in topic %q.", learner, topic)))
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().String("learner", "", "Learner ID (required)")
	profileCmd.Flags().String("topic", "", "Show only this topic's profile")
	_ = profileCmd.MarkFlagRequired("learner")
}
