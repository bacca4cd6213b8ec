package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}

// RunKeyMap defines the key bindings for the run view.
type RunKeyMap struct {
	Step        key.Binding
	PlayPause   key.Binding
	SpeedUp     key.Binding
	SpeedDown   key.Binding
	FastForward key.Binding
	Reset       key.Binding
	Board       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.PlayPause, k.FastForward, k.Reset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.PlayPause, k.SpeedUp, k.SpeedDown},
		{k.FastForward, k.Reset, k.Board},
		{k.ScrollUp, k.ScrollDown, k.Back, k.Quit},
	}
}

// DefaultRunKeyMap returns default key bindings for the run view.
func DefaultRunKeyMap() RunKeyMap {
	return RunKeyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "n"),
			key.WithHelp("space/n", "step"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "]"),
			key.WithHelp("+/]", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "["),
			key.WithHelp("-/[", "slower"),
		),
		FastForward: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fast-forward"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Board: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "board on/off"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("up/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
