package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add, Toggle, Delete, Sort, Clear, Quit key.Binding
	Submit, Cancel, QtyUp, QtyDown         key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "check")),
		Delete:  key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear list")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		QtyUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "more")),
		QtyDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "less")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Sort, k.Clear}
}
