package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pathfind/internal/core"
)

// KeyMap defines the demo's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Pause      key.Binding
	Restart    key.Binding
	Trace      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Trace, k.Screenshot, k.Quit}
}

// FullHelp returns bindings for the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart, k.Trace},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default demo key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new map"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a demo action.
// Keys with no binding map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Trace):
		return core.ActionTrace
	}
	return core.ActionNone
}

// MapMouse records a primary-button press as a click. Other buttons,
// releases and motion are dropped. Reports whether a click was added.
func MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.AddClick(msg.X, msg.Y)
	return true
}
