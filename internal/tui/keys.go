package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the overlay dialogs. Regular screens
// match plain key strings instead.
type keyMap struct {
	enter key.Binding
	esc   key.Binding
	yes   key.Binding
	no    key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	yes:   key.NewBinding(key.WithKeys("y")),
	no:    key.NewBinding(key.WithKeys("n")),
}
