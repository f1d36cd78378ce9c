package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for the fireworks view.
type KeyMap struct {
	Toggle key.Binding
	Fill   key.Binding
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Fill, k.Clear, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Fill, k.Clear},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "pause/resume"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fill to max"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear stars"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "nudge up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "nudge down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "nudge left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "nudge right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Nudge returns the cell offset a direction key moves the pointer by,
// and whether the key is a direction at all.
func (k KeyMap) Nudge(msg tea.KeyMsg) (dx, dy int, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return 0, -1, true
	case key.Matches(msg, k.Down):
		return 0, 1, true
	case key.Matches(msg, k.Left):
		return -1, 0, true
	case key.Matches(msg, k.Right):
		return 1, 0, true
	}
	return 0, 0, false
}
