package analyze

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reclaimtool/reclaim/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type scanDoneMsg struct {
	root *DirEntry
	err  error
}

// scanCmd runs the scan off the UI loop and delivers the finished tree.
func scanCmd(scanner *Scanner, root string) tea.Cmd {
	return func() tea.Msg {
		tree, err := scanner.Scan(root)
		return scanDoneMsg{root: tree, err: err}
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the disk usage browser. It starts in a
// scanning state (spinner) and switches to the navigable tree once the
// scan delivers.
type Model struct {
	scanner  *Scanner
	scanRoot string
	spin     spinner.Model
	scanning bool

	root       *DirEntry
	current    *DirEntry   // directory being displayed
	cursor     int         // selected item index
	breadcrumb []*DirEntry // navigation history stack
	width      int
	height     int
	offset     int  // viewport scroll offset
	largeOnly  bool // filter: show only >100MB
	quitting   bool
	err        error
	maxDepth   int   // 0 = unlimited
	minSize    int64 // 0 = show all
}

// NewModel creates a Model that scans root when started.
func NewModel(scanner *Scanner, root string, maxDepth int, minSize int64) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorCoral)
	return Model{
		scanner:  scanner,
		scanRoot: root,
		spin:     sp,
		scanning: true,
		width:    80,
		height:   24,
		maxDepth: maxDepth,
		minSize:  minSize,
	}
}

// Err returns the scan error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, scanCmd(m.scanner, m.scanRoot))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.root = msg.root
		m.current = msg.root
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		if m.scanning {
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.ensureVisible()
			}

		case "down", "j":
			items := m.visibleItems()
			if m.cursor < len(items)-1 {
				m.cursor++
				m.ensureVisible()
			}

		case "right", "l", "enter":
			// Drill into a directory.
			items := m.visibleItems()
			if m.cursor >= 0 && m.cursor < len(items) {
				entry := items[m.cursor]
				if entry.IsDir && len(entry.Children) > 0 {
					m.breadcrumb = append(m.breadcrumb, m.current)
					m.current = entry
					m.cursor = 0
					m.offset = 0
				}
			}

		case "left", "h":
			// Go up to parent directory.
			if len(m.breadcrumb) > 0 {
				m.current = m.breadcrumb[len(m.breadcrumb)-1]
				m.breadcrumb = m.breadcrumb[:len(m.breadcrumb)-1]
				m.cursor = 0
				m.offset = 0
			}

		case "L":
			m.largeOnly = !m.largeOnly
			m.cursor = 0
			m.offset = 0
		}

		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func (m *Model) ensureVisible() {
	vh := m.viewportHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

func (m *Model) viewportHeight() int {
	h := m.height - 8 // header (4) + footer (3) + padding
	if h < 1 {
		h = 1
	}
	return h
}

// visibleItems returns the children of the current directory, optionally
// filtered to only entries ≥100 MiB.
func (m Model) visibleItems() []*DirEntry {
	if m.current == nil {
		return nil
	}

	var currentDepth int
	if m.maxDepth > 0 {
		currentDepth = len(m.breadcrumb)
	}

	var out []*DirEntry
	for _, c := range m.current.Children {
		if m.minSize > 0 && c.Size < m.minSize {
			continue
		}
		// Filter by size threshold (L key toggle).
		if m.largeOnly && c.Size < 100*1024*1024 {
			continue
		}
		// Filter by depth: hide directory children beyond maxDepth.
		if m.maxDepth > 0 && c.IsDir && currentDepth >= m.maxDepth {
			continue
		}
		out = append(out, c)
	}
	return out
}
