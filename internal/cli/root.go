// Package cli implements the minewatch CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minewatch",
	Short: "Keep a hosted game server online",
	Long: `Minewatch drives the hosting panel's web UI to keep a server running:
it authenticates, watches the status label, issues start/confirm actions, and
archives a per-player connection-time report before each restart.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
