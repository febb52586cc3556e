package tui

import "github.com/charmbracelet/bubbles/key"

// Only quit is bound by name; every unbound key is Advance.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
