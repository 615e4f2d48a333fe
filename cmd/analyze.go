package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reclaimtool/reclaim/internal/analyze"
	"github.com/reclaimtool/reclaim/internal/format"
	"github.com/reclaimtool/reclaim/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Explore disk usage",
	Long: `Interactive disk space browser over a single filesystem. The scan
never crosses mount points or follows symlinks. Defaults to /.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		root := "/"
		if len(args) == 1 {
			root = args[0]
		}

		depth, _ := cmd.Flags().GetInt("depth")
		exclude, _ := cmd.Flags().GetStringSlice("exclude")
		minSizeStr, _ := cmd.Flags().GetString("min-size")

		var minSize int64
		if minSizeStr != "" {
			var err error
			minSize, err = format.ParseSize(minSizeStr)
			if err != nil {
				return err
			}
		}

		scanner := analyze.NewScanner(8, exclude)

		if !ui.IsTTY() {
			tree, err := scanner.Scan(root)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
			analyze.PrintStaticTree(tree, depth, minSize)
			return nil
		}

		model := analyze.NewModel(scanner, root, depth, minSize)
		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(analyze.Model); ok && m.Err() != nil {
			return fmt.Errorf("scan %s: %w", root, m.Err())
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Int("depth", 0, "Maximum directory depth to display")
	analyzeCmd.Flags().String("min-size", "", "Minimum size to display (e.g., 100MB)")
	analyzeCmd.Flags().StringSlice("exclude", nil, "Directory names to exclude from scan")
}
