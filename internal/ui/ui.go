package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	ColorGood    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorBad     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorCoral   = lipgloss.AdaptiveColor{Light: "#e11d48", Dark: "#fb7185"}
)

const (
	IconDiamond = "◆"
	IconChevron = "›"
)

// IsTTY reports whether stdout is an interactive terminal. Styled cards and
// the interactive analyzer are only used when this is true.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
