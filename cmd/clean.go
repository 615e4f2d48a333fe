package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reclaimtool/reclaim/internal/clean"
	"github.com/reclaimtool/reclaim/internal/config"
	"github.com/reclaimtool/reclaim/internal/logbook"
	"github.com/reclaimtool/reclaim/internal/report"
	"github.com/reclaimtool/reclaim/internal/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleanup pipeline",
	Long: `Run the full cleanup pipeline: package caches, orphaned packages,
journal and rotated logs, temp files, core dumps, stale mail, old
kernels, and container leftovers. Requires root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClean(cmd)
	},
}

func runClean(cmd *cobra.Command) error {
	// Flags are parsed; any error past this point is a runtime failure,
	// not a usage mistake.
	cmd.SilenceUsage = true

	cfg := config.Default()
	cfg.DryRun = dryRun

	sink, err := logbook.Open(cfg.LogPath, cfg.MaxLogSize, os.Stdout)
	if err != nil {
		// Degraded sink still echoes to stdout; the run continues.
		fmt.Fprintf(os.Stderr, "warning: %v, logging to stdout only\n", err)
	}
	defer sink.Close()

	res, err := clean.Run(cmd.Context(), cfg, sink, clean.Options{})
	if err != nil {
		// The fatal line is already in the log.
		return err
	}

	report.Render(os.Stdout, report.Summary{
		DryRun:   cfg.DryRun,
		StartMB:  res.StartMB,
		EndMB:    res.EndMB,
		Warnings: res.Warnings,
		Elapsed:  res.Elapsed,
	}, ui.IsTTY())
	return nil
}
