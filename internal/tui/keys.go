package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start    key.Binding
	Next     key.Binding
	Previous key.Binding
	End      key.Binding
	Jump     key.Binding
	Switch   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start tour")),
		Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
		Previous: key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p/←", "back")),
		End:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "end tour")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to step")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Next, k.Previous, k.End, k.Switch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Next, k.Previous, k.End, k.Jump},
		{k.Switch, k.Help, k.Quit},
	}
}
