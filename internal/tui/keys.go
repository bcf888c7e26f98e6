package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add        key.Binding
	Toggle     key.Binding
	NextFilter key.Binding
	ShowAll    key.Binding
	ShowOpen   key.Binding
	ShowDone   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		NextFilter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "next filter")),
		ShowAll:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowOpen:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "open")),
		ShowDone:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "done")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextFilter}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextFilter, k.ShowAll, k.ShowOpen, k.ShowDone}
}
