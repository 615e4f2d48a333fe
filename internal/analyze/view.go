package analyze

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimtool/reclaim/internal/format"
	"github.com/reclaimtool/reclaim/internal/ui"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

// Short aliases for readability in render functions.
// Coral accent gives the analyzer its own visual identity.
var (
	clrDim    = ui.ColorMuted
	clrDir    = ui.ColorCoral
	clrFile   = ui.ColorText
	clrOld    = ui.ColorMuted
	clrLarge  = ui.ColorWarning
	clrCursor = ui.ColorPrimary
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	if m.scanning {
		return fmt.Sprintf("\n  %s Scanning %s… (%d entries)\n",
			m.spin.View(), m.scanRoot, m.scanner.ScannedCount())
	}
	if m.current == nil {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")
	s.WriteString(m.renderBody(w))
	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorCoral).
		Render("  " + ui.IconDiamond + " Disk Analyzer")

	sizeStr := format.Bytes(m.current.Size)
	pathLine := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render(fmt.Sprintf("  %s    %s", m.current.Path, sizeStr))

	// Breadcrumb trail.
	var crumbs []string
	for _, bc := range m.breadcrumb {
		crumbs = append(crumbs, bc.Name)
	}
	crumbs = append(crumbs, m.current.Name)
	bcStr := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render("  " + strings.Join(crumbs, " "+ui.IconChevron+" "))

	inner := lipgloss.JoinVertical(lipgloss.Left, title, pathLine, bcStr)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorCoral).
		Width(w - 2).
		Render(inner)
}

// ─── Body (file list) ────────────────────────────────────────────────────────

func (m Model) renderBody(w int) string {
	items := m.visibleItems()
	if len(items) == 0 {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  (empty directory)")
	}

	vh := m.viewportHeight()
	barWidth := 20
	if w > 110 {
		barWidth = 30
	} else if w > 90 {
		barWidth = 25
	}

	parentSize := m.current.Size
	var lines []string

	for i := m.offset; i < len(items) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderEntry(items[i], parentSize, barWidth, i == m.cursor))
	}

	// Scrollbar hint.
	if len(items) > vh {
		pct := float64(m.offset) / float64(len(items)-vh) * 100
		scrollHint := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render(fmt.Sprintf("  ── %d/%d items  (%.0f%%) ──", min(m.offset+vh, len(items)), len(items), pct))
		lines = append(lines, scrollHint)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(e *DirEntry, parentSize int64, barWidth int, selected bool) string {
	pct := e.Percentage(parentSize)
	filled := int(pct / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	nameColor := clrFile
	name := e.Name
	if e.IsDir {
		nameColor = clrDir
		name += "/"
	}
	if e.IsOld() {
		nameColor = clrOld
	}

	sizeColor := clrDim
	if e.Size >= 100*1024*1024 {
		sizeColor = clrLarge
	}

	cursor := "  "
	lineStyle := lipgloss.NewStyle()
	if selected {
		cursor = ui.IconChevron + " "
		lineStyle = lineStyle.Bold(true)
		nameColor = clrCursor
	}

	line := fmt.Sprintf("%s%s %s %s",
		cursor,
		lipgloss.NewStyle().Foreground(clrDim).Render(bar),
		lipgloss.NewStyle().Foreground(sizeColor).Width(10).Align(lipgloss.Right).Render(format.Bytes(e.Size)),
		lipgloss.NewStyle().Foreground(nameColor).Render(name),
	)
	return lineStyle.Render("  " + line)
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	help := "↑/↓ move · →/enter open · ← back · L large only · q quit"
	if m.largeOnly {
		help = "showing only entries ≥ 100 MiB · " + help
	}
	return lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Width(w).
		Render("  " + help)
}
