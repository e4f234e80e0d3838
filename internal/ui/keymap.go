package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the demo host.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Escape    key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous candidate")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next candidate")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous chip")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next chip")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select candidate")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "remove chip")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove chip")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to input")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
