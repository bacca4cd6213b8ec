package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/config"
	"github.com/Engenharia-Informatica-Lei-UALG/AI-algorithm-viewer-sub000/internal/registry"
)

// AlgorithmSelection holds the user's choice from the algorithm menu.
type AlgorithmSelection struct {
	Algorithm registry.AlgorithmInfo
	Preset    config.BudgetPreset
}

// budgetPresetChoices lists the preset options shown in the second stage.
var budgetPresetChoices = []struct {
	Preset config.BudgetPreset
	Label  string
}{
	{config.BudgetQuick, "Quick (half budgets)"},
	{config.BudgetStandard, "Standard"},
	{config.BudgetThorough, "Thorough (double budgets)"},
	{config.BudgetFixed, "Fixed (config values as-is)"},
}

// AlgorithmMenuModel lets users choose an algorithm and a budget preset for
// a problem.
type AlgorithmMenuModel struct {
	problemTitle   string
	algorithms     []registry.AlgorithmInfo
	cursor         int
	presetCursor   int
	inPresetSelect bool
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      AlgorithmSelection
	choosing       bool
	quitting       bool
	back           bool
}

// NewAlgorithmMenuModel creates a new algorithm selection model.
func NewAlgorithmMenuModel(p registry.Problem, width, height int) AlgorithmMenuModel {
	return AlgorithmMenuModel{
		problemTitle: p.Title(),
		algorithms:   p.Algorithms(),
		cursor:       0,
		presetCursor: 1, // Standard
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m AlgorithmMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AlgorithmMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m AlgorithmMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inPresetSelect {
		return m.handlePresetSelectKey(action)
	}
	return m.handleAlgorithmSelectKey(action)
}

func (m AlgorithmMenuModel) handleAlgorithmSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.algorithms) > 0 {
			m.selection.Algorithm = m.algorithms[m.cursor]
			m.inPresetSelect = true
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m AlgorithmMenuModel) handlePresetSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case MenuActionDown:
		if m.presetCursor < len(budgetPresetChoices)-1 {
			m.presetCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Preset = budgetPresetChoices[m.presetCursor].Preset
		return m, tea.Quit
	case MenuActionBack:
		m.inPresetSelect = false
	}

	return m, nil
}

// View renders the algorithm/preset selection.
func (m AlgorithmMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inPresetSelect {
		return m.viewPresetSelect()
	}
	return m.viewAlgorithmSelect()
}

func (m AlgorithmMenuModel) viewAlgorithmSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.problemTitle, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select an algorithm:", m.width))
	b.WriteString("\n\n")

	for i, algo := range m.algorithms {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, algo.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m AlgorithmMenuModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.selection.Algorithm.Title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a budget preset:", m.width))
	b.WriteString("\n\n")

	for i, choice := range budgetPresetChoices {
		cursor := "  "
		if i == m.presetCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, choice.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m AlgorithmMenuModel) Selected() *AlgorithmSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m AlgorithmMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m AlgorithmMenuModel) WantsBack() bool {
	return m.back
}

// RunAlgorithmSelector runs the algorithm selection for a problem and
// returns the selection, or nil when the user backed out.
func RunAlgorithmSelector(p registry.Problem, width, height int) (*AlgorithmSelection, error) {
	model := NewAlgorithmMenuModel(p, width, height)

	prog := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := prog.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(AlgorithmMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
