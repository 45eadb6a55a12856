package main

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown by the help footer. Calculator keys are
// resolved through keymap.Parse; the bindings here only describe them.
type keyMap struct {
	Digits   key.Binding
	Operator key.Binding
	Equals   key.Binding
	Percent  key.Binding
	Negate   key.Binding
	Clear    key.Binding
	Move     key.Binding
	Press    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "number")),
		Operator: key.NewBinding(key.WithKeys("+", "-", "*", "x", "/"), key.WithHelp("+ - * /", "operator")),
		Equals:   key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("=", "equals")),
		Percent:  key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "percent")),
		Negate:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "+/-")),
		Clear:    key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "clear")),
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		Press:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Negate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operator, k.Equals},
		{k.Percent, k.Negate, k.Clear},
		{k.Move, k.Press, k.Help, k.Quit},
	}
}
