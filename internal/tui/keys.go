package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit    key.Binding
	NewColumn key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "post")),
		NewColumn: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "new column")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) composeHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NewColumn, k.Quit}
}

func (k keyMap) columnHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.Quit}
}
