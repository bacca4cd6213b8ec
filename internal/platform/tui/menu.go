package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
)

// MenuItem represents a selectable problem in the menu.
type MenuItem struct {
	ProblemID string
	Title     string
	Kind      registry.Kind
}

// MenuModel is the Bubble Tea model for the problem picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a problem
	openHistory bool      // True if user pressed Tab for run history
}

// NewMenuModel creates a new menu model over the registered problems.
func NewMenuModel(width, height int) MenuModel {
	problems := registry.List()
	items := make([]MenuItem, 0, len(problems))

	for _, p := range problems {
		items = append(items, MenuItem{
			ProblemID: p.ID,
			Title:     p.Title,
			Kind:      p.Kind,
		})
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the algorithm picker
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit // Exit menu to show run history
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  S E A R C H V I Z  "
	titleLine := centerText(title, m.width)
	b.WriteString("\n")
	b.WriteString(titleLine)
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Select a problem"
	subtitleLine := centerText(subtitle, m.width)
	b.WriteString(subtitleLine)
	b.WriteString("\n\n")

	// Problem list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		kindStr := ""
		if item.Kind == registry.KindGame {
			kindStr = " (game)"
		}

		line := fmt.Sprintf("%s%s%s", cursor, item.Title, kindStr)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history browser.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Size returns the current terminal size (may have been updated by resize).
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ProblemID    string
	Width        int
	Height       int
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the problem picker and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{}
	result.Width, result.Height = m.Size()

	if m.WantsHistory() {
		result.WantsHistory = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.ProblemID = m.Selected().ProblemID
	} else {
		result.Quit = true
	}

	return result, nil
}
