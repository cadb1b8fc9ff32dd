package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Escape  key.Binding
	Pause   key.Binding
	Refresh key.Binding
	Theme   key.Binding
}

// DefaultKeyMap provides the default set of key bindings.
var DefaultKeyMap = KeyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Pause:   key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
}
