// Package cli implements the dayflow command-line interface using Cobra.
// Each subcommand maps to one operation (serve, analyze, add, list, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "dayflow — Personal task and workload manager",
	Long: `dayflow is a personal task manager with a workload analysis engine.
Plan your day, track tasks, and get recommendations on pacing and free time.`,
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
