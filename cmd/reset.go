package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored profiles",
	Long: "Without flags, deletes the entire database file: every profile,\n" +
		"the evidence audit log, and LLM request history.\n" +
		"With --learner, removes only that learner's profiles; the evidence\n" +
		"log is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		learner, _ := cmd.Flags().GetString("learner")
		force, _ := cmd.Flags().GetBool("force")

		if learner != "" {
			return resetLearner(cmd, learner, force)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force && !confirm(fmt.Sprintf("Delete all data at %s?", dbPath)) {
			fmt.Println("Aborted.")
			return nil
		}

		// WAL sidecars go with the main file.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		fmt.Println("Database deleted.")
		return nil
	},
}

func resetLearner(cmd *cobra.Command, learner string, force bool) error {
	if !force && !confirm(fmt.Sprintf("Delete all profiles for %s?", learner)) {
		fmt.Println("Aborted.")
		return nil
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.ProfileRepo().DeleteLearner(cmd.Context(), learner)
	if err != nil {
		return fmt.Errorf("delete learner: %w", err)
	}
	if n == 0 {
		fmt.Printf("No profiles found for %s.\n", learner)
		return nil
	}
	fmt.Printf("Deleted %d profiles for %s. Evidence log kept.\n", n, learner)
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	resetCmd.Flags().String("learner", "", "Reset only this learner's profiles")
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
