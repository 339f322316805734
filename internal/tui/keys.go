package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings with built-in help text.
type KeyMap struct {
	Quit     key.Binding
	AxisX    key.Binding
	AxisY    key.Binding
	AxisZ    key.Binding
	Cycle    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		AxisX: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "x axis"),
		),
		AxisY: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "y axis"),
		),
		AxisZ: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "z axis"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next axis"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p", "prev page"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AxisX, k.AxisY, k.AxisZ, k.Cycle, k.NextPage, k.PrevPage, k.Quit}
}
