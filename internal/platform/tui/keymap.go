package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// KeyMap defines the keyboard bindings of the terminal frontend.
type KeyMap struct {
	Start  key.Binding
	Launch key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.Help, k.Quit}
}

// FullHelp returns bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Launch},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "start"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space/click", "launch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message into an action. Space starts the game
// from the overlay and launches the ball once running.
func (k KeyMap) Action(msg tea.KeyMsg, running bool) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case !running && key.Matches(msg, k.Start):
		return core.ActionStart
	case running && key.Matches(msg, k.Launch):
		return core.ActionLaunch
	}
	return core.ActionNone
}
