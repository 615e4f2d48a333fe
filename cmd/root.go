package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dryRun bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "reclaim",
	Short: "Free up disk space on Linux hosts",
	Long: `Reclaim - free up disk space on Linux hosts.

Clears package-manager caches, rotated logs, temp files, core dumps,
stale mail, and unused container/kernel artifacts, then reports the
space recovered. Running the bare binary is the same as 'reclaim clean'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation runs the cleanup pipeline.
		return runClean(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false,
		"Log every command that would run without executing it")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
