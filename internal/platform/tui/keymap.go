package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mattress-hop/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Start   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Mute, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Start, k.Restart},
		{k.Mute, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Steering keys are reported as a direction instead (-1 left, +1 right).
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, dir int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Left):
		return core.ActionNone, -1
	case key.Matches(msg, k.Right):
		return core.ActionNone, 1
	case key.Matches(msg, k.Jump):
		return core.ActionJump, 0
	case key.Matches(msg, k.Start):
		return core.ActionStart, 0
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, 0
	case key.Matches(msg, k.Mute):
		return core.ActionMute, 0
	}
	return core.ActionNone, 0
}
