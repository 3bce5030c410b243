// Package cli implements the TaskHero command-line interface using
// Cobra. Each subcommand maps to a progression capability (hero,
// complete, achievements, streaks, serve).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskhero",
	Short: "TaskHero — Level up by getting things done",
	Long: `TaskHero is the progression engine for your task tracker.
Completing tasks earns XP and gold, extends day streaks,
and unlocks achievements.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
