// Package report measures free space around a cleanup run and appends the
// final before/after accounting to the run log.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/reclaimtool/reclaim/internal/cmdexec"
	"github.com/reclaimtool/reclaim/internal/format"
	"github.com/reclaimtool/reclaim/internal/logbook"
	"github.com/reclaimtool/reclaim/internal/ui"
)

// FreeMB returns the free space of the filesystem holding path, in MB.
func FreeMB(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, fmt.Errorf("disk usage %s: %w", path, err)
	}
	return usage.Free / (1024 * 1024), nil
}

// Append writes the space accounting to the log: free space at start and
// end, the delta, then full disk-usage and inode-usage snapshots verbatim.
// A negative delta means other processes wrote data during the run; that is
// reported, not treated as an error.
func Append(ctx context.Context, sink *logbook.Sink, startMB, endMB uint64) {
	sink.Logf("free space at start: %s", format.MB(startMB))
	sink.Logf("free space at end:   %s", format.MB(endMB))

	delta := int64(endMB) - int64(startMB)
	switch {
	case delta < 0:
		sink.Logf("space delta: %d MB (other activity wrote data during the run)", delta)
	default:
		sink.Logf("space reclaimed: %d MB", delta)
	}

	appendSnapshot(ctx, sink, "disk usage", "df", "-h")
	appendSnapshot(ctx, sink, "inode usage", "df", "-i")
}

func appendSnapshot(ctx context.Context, sink *logbook.Sink, label, name string, args ...string) {
	out, err := cmdexec.Output(ctx, name, args...)
	if err != nil {
		sink.Warnf("cannot capture %s snapshot: %v", label, err)
		return
	}
	sink.Logf("%s snapshot:", label)
	sink.Verbatim(string(out))
}

// Summary is what the terminal card renders after a run.
type Summary struct {
	DryRun   bool
	StartMB  uint64
	EndMB    uint64
	Warnings int
	Elapsed  time.Duration
}

// Render writes a human summary to w: a lipgloss card on TTYs, plain lines
// otherwise.
func Render(w io.Writer, s Summary, tty bool) {
	delta := int64(s.EndMB) - int64(s.StartMB)

	if !tty {
		prefix := ""
		if s.DryRun {
			prefix = "(dry run) "
		}
		fmt.Fprintf(w, "%sReclaimed: %d MB in %s (%d warnings)\n",
			prefix, delta, format.Duration(s.Elapsed), s.Warnings)
		return
	}

	title := "Cleanup complete"
	if s.DryRun {
		title = "Dry run complete"
	}

	deltaColor := ui.ColorGood
	if delta < 0 {
		deltaColor = ui.ColorWarning
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).
			Render(" " + ui.IconDiamond + " " + title),
		lipgloss.NewStyle().Foreground(ui.ColorTextDim).
			Render(fmt.Sprintf(" free before  %s", format.MB(s.StartMB))),
		lipgloss.NewStyle().Foreground(ui.ColorTextDim).
			Render(fmt.Sprintf(" free after   %s", format.MB(s.EndMB))),
		lipgloss.NewStyle().Bold(true).Foreground(deltaColor).
			Render(fmt.Sprintf(" reclaimed    %d MB", delta)),
	}
	if s.Warnings > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorWarning).
			Render(fmt.Sprintf(" warnings     %d (see log)", s.Warnings)))
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(fmt.Sprintf(" elapsed      %s", format.Duration(s.Elapsed))))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))

	fmt.Fprintln(w, card)
}
