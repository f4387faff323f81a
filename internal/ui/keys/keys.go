// Package keys defines keyboard shortcuts for the tabdeck TUI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	NextTab key.Binding
	PrevTab key.Binding
	Focus   key.Binding

	// Tab actions
	CloseTab   key.Binding
	ToggleMute key.Binding
	Pin        key.Binding
	Private    key.Binding
	Session    key.Binding
	Hover      key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("right", "l", "ctrl+tab"),
			key.WithHelp("→/l", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x", "ctrl+w"),
			key.WithHelp("x", "close"),
		),
		ToggleMute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		Private: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "private"),
		),
		Session: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "session"),
		),
		Hover: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "hover"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar for the tab strip.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.CloseTab, k.ToggleMute, k.Pin, k.Private, k.Session, k.Hover, k.Focus, k.Quit}
}
