package main

import tea "github.com/charmbracelet/bubbletea"

// filterStaleEscapes is a tea.WithFilter callback that suppresses key
// messages until the startup drain window has passed. Late terminal replies
// (OSC 11 background color, cursor position reports) would otherwise be
// parsed as keys and typed into the calculator. Ctrl+C always gets through.
func filterStaleEscapes(m tea.Model, msg tea.Msg) tea.Msg {
	app, ok := m.(appModel)
	if !ok || app.inputEnabled {
		return msg
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if k.Type == tea.KeyCtrlC {
			return msg
		}
		return nil
	}

	return msg
}
