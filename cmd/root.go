// Package cmd wires the traitlab CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smehra/traitlab/internal/llm"
	"github.com/smehra/traitlab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "traitlab",
	Short: "Cognitive trait estimation from quiz evidence",
	Long: "Traitlab maintains per-learner, per-topic cognitive trait profiles.\n" +
		"Graded quiz responses are turned into trait evidence, folded into the\n" +
		"profiles, and logged to an append-only audit trail.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRAITLAB_DB env var)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(evidenceCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TRAITLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database behind the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLLMProvider builds a provider from TRAITLAB_* configuration, or by
// probing standard API key env vars. Returns nil when no provider is
// configured; callers treat that as heuristic-only mode.
func newLLMProvider(ctx context.Context, eventRepo store.EventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable, continuing without it: %v\n", err)
		return nil
	}
	return provider
}
