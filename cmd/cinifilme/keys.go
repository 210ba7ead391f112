package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings of the page. It implements help.KeyMap.
type keyMap struct {
	NextRow  key.Binding
	PrevRow  key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Blur     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextRow:  key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/↓", "next row")),
		PrevRow:  key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/↑", "previous row")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Blur:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave row")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextRow, k.Left, k.Right, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextRow, k.PrevRow, k.Blur},
		{k.Left, k.Right, k.Select},
		{k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}
