package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	cancel key.Binding
}

// ctrl+j is how a bare "\n" arrives when input is piped rather than typed.
var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter", "ctrl+j")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+d")),
}
