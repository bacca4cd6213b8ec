package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/search"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/session"
)

// Run view layout constants
const (
	minWidthForSidePanel = 70 // Minimum width to show the attributes panel
	sidePanelWidth       = 32 // Width of the attributes/board panel
	chromeHeight         = 5  // Header, status bar and help rows
)

// statusStyles maps search statuses to lipgloss styles for the status bar.
var statusStyles = map[search.Status]lipgloss.Style{
	search.StatusIdle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	search.StatusRunning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	search.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	search.StatusFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RunModel is the Bubble Tea model for driving one search interactively:
// manual stepping, timed playback, fast-forward and reset.
type RunModel struct {
	problemID    string
	algorithmID  string
	title        string
	searcher     registry.Searcher
	saver        session.RunSaver
	sessionLabel string

	viewport viewport.Model
	help     help.Model
	keys     RunKeyMap

	width  int
	height int

	playing   bool
	speedIdx  int
	showBoard bool
	runSaved  bool // Whether the run has been recorded for the current attempt
	startedAt time.Time

	quitting   bool
	backToMenu bool
}

// NewRunModel creates a run view for the given searcher.
func NewRunModel(p registry.Problem, algo registry.AlgorithmInfo, s registry.Searcher, saver session.RunSaver, sessionLabel string, width, height int) RunModel {
	h := help.New()
	h.ShowAll = false

	m := RunModel{
		problemID:    p.ID(),
		algorithmID:  algo.ID,
		title:        fmt.Sprintf("%s / %s", p.Title(), algo.Title),
		searcher:     s,
		saver:        saver,
		sessionLabel: sessionLabel,
		help:         h,
		keys:         DefaultRunKeyMap(),
		width:        width,
		height:       height,
		speedIdx:     defaultSpeedIndex,
		showBoard:    true,
	}

	m.viewport = viewport.New(m.treeWidth(), m.treeHeight())
	m.refreshTree()
	return m
}

// treeWidth returns the viewport width for the current terminal size.
func (m RunModel) treeWidth() int {
	w := m.width - 2
	if m.width >= minWidthForSidePanel {
		w = m.width - sidePanelWidth - 5
	}
	if w < 20 {
		w = 20
	}
	return w
}

// treeHeight returns the viewport height for the current terminal size.
func (m RunModel) treeHeight() int {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

// Init initializes the run view. Stepping is user-driven, so no command.
func (m RunModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.treeWidth()
		m.viewport.Height = m.treeHeight()
		m.help.Width = msg.Width
		m.refreshTree()
		return m, nil

	case PlaybackMsg:
		return m.handlePlayback()

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input for the run view.
func (m RunModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Step):
		// Manual stepping pauses playback
		m.playing = false
		m.doStep()
		return m, nil

	case key.Matches(msg, m.keys.PlayPause):
		if m.searcher.Status().Terminal() {
			return m, nil
		}
		m.playing = !m.playing
		if m.playing {
			return m, playbackCmd(playbackSpeeds[m.speedIdx])
		}
		return m, nil

	case key.Matches(msg, m.keys.SpeedUp):
		if m.speedIdx < len(playbackSpeeds)-1 {
			m.speedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.SpeedDown):
		if m.speedIdx > 0 {
			m.speedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.FastForward):
		m.playing = false
		if !m.searcher.Status().Terminal() {
			if m.startedAt.IsZero() {
				m.startedAt = time.Now()
			}
			m.searcher.Run()
			m.refreshTree()
			m.recordRun()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.searcher.Reset()
		m.playing = false
		m.runSaved = false
		m.startedAt = time.Time{}
		m.viewport.GotoTop()
		m.refreshTree()
		return m, nil

	case key.Matches(msg, m.keys.Board):
		m.showBoard = !m.showBoard
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		// Pass to viewport for scrolling
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handlePlayback advances the search on a playback tick.
func (m RunModel) handlePlayback() (tea.Model, tea.Cmd) {
	if !m.playing {
		return m, nil // Stale tick after pause
	}

	m.doStep()

	if m.searcher.Status().Terminal() {
		m.playing = false
		return m, nil
	}
	return m, playbackCmd(playbackSpeeds[m.speedIdx])
}

// doStep performs one search step and refreshes the tree view.
func (m *RunModel) doStep() {
	if m.searcher.Status().Terminal() {
		return
	}
	if m.startedAt.IsZero() {
		m.startedAt = time.Now()
	}

	m.searcher.Step()
	m.refreshTree()

	if m.searcher.Status().Terminal() {
		m.recordRun()
	}
}

// refreshTree rebuilds the viewport content and keeps the current node in
// view.
func (m *RunModel) refreshTree() {
	tree := m.searcher.Tree()
	lines := RenderTree(tree)
	m.viewport.SetContent(strings.Join(lines, "\n"))

	current := CurrentLine(tree)
	if current < m.viewport.YOffset {
		m.viewport.SetYOffset(current)
	} else if current >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(current - m.viewport.Height + 1)
	}
}

// recordRun persists the finished run once per attempt. Best-effort: a
// missing store never blocks the session.
func (m *RunModel) recordRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.saver == nil {
		return
	}

	var duration int64
	if !m.startedAt.IsZero() {
		duration = time.Since(m.startedAt).Milliseconds()
	}

	metrics := m.searcher.Metrics()
	cost, hasCost := m.searcher.SolutionCost()

	//nolint:errcheck // Best-effort save, session continues regardless
	m.saver.SaveSessionRun(session.RunData{
		Problem:        m.problemID,
		Algorithm:      m.algorithmID,
		Status:         m.searcher.Status().String(),
		Steps:          metrics.Steps,
		NodesExpanded:  metrics.NodesExpanded,
		MaxDepth:       metrics.MaxDepth,
		SolutionCost:   cost,
		HasCost:        hasCost,
		SolutionLength: len(m.searcher.Solution()),
		DurationMS:     duration,
		Session:        m.sessionLabel,
	})
}

// View renders the run view.
func (m RunModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(" ")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	treeView := m.viewport.View()
	if m.width >= minWidthForSidePanel {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, treeView, "  ", m.sidePanel()))
	} else {
		b.WriteString(treeView)
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// sidePanel renders the attributes panel and, when enabled, the current
// board.
func (m RunModel) sidePanel() string {
	var b strings.Builder

	attrs := m.searcher.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("Attributes\n")
	b.WriteString(strings.Repeat("-", sidePanelWidth-4))
	for _, k := range keys {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s: %s", k, attrs[k]))
	}

	if m.showBoard {
		if board := m.searcher.Board(); len(board) > 0 {
			b.WriteString("\n\nBoard\n")
			b.WriteString(strings.Repeat("-", sidePanelWidth-4))
			for _, row := range board {
				b.WriteString("\n")
				b.WriteString(row)
			}
		}
	}

	return panelStyle.Width(sidePanelWidth).Render(b.String())
}

// statusLine renders the status bar: lifecycle state, counters, playback
// rate and the solution once the search finishes.
func (m RunModel) statusLine() string {
	status := m.searcher.Status()
	metrics := m.searcher.Metrics()

	parts := []string{
		statusStyles[status].Render(status.String()),
		fmt.Sprintf("steps %d", metrics.Steps),
		fmt.Sprintf("expanded %d", metrics.NodesExpanded),
	}

	if m.playing {
		parts = append(parts, fmt.Sprintf("playing %d/s", playbackSpeeds[m.speedIdx]))
	} else if !status.Terminal() {
		parts = append(parts, "paused")
	}

	if status.Terminal() {
		if cost, ok := m.searcher.SolutionCost(); ok {
			parts = append(parts, fmt.Sprintf("cost %s", formatShort(cost)))
		}
		if solution := m.searcher.Solution(); len(solution) > 0 {
			parts = append(parts, "solution: "+strings.Join(solution, ", "))
		}
	}

	line := " " + strings.Join(parts, "  |  ")
	if len(line) > m.width && m.width > 3 {
		line = line[:m.width-3] + "..."
	}
	return line
}

// IsQuitting returns true if user requested to quit entirely.
func (m RunModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m RunModel) BackToMenu() bool {
	return m.backToMenu
}

// RunSearch runs the interactive view for one searcher.
// Returns true if the user wants to go back to the menu, false on quit.
func RunSearch(p registry.Problem, algo registry.AlgorithmInfo, s registry.Searcher, saver session.RunSaver, sessionLabel string, width, height int) (backToMenu bool, err error) {
	model := NewRunModel(p, algo, s, saver, sessionLabel, width, height)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse wheel scrolls the tree
	)

	finalModel, err := prog.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunModel)
	if !ok {
		return false, nil
	}

	return m.BackToMenu(), nil
}
