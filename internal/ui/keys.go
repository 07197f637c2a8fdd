package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Help       key.Binding
	WindowUp   key.Binding
	WindowDown key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	WindowUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "wider window"),
	),
	WindowDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "narrower window"),
	),
}
