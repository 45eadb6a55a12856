package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastModel is a transient notification shown under the keypad.
type toastModel struct {
	title    string
	body     string
	id       int
	visible  bool
	duration time.Duration
}

func newToast(d time.Duration) toastModel {
	return toastModel{duration: d}
}

// show displays a notification and returns the command that hides it again.
func (m *toastModel) show(title, body string) tea.Cmd {
	m.id++
	m.title = title
	m.body = body
	m.visible = true

	id := m.id
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *toastModel) expire(msg toastExpiredMsg) {
	if msg.id == m.id {
		m.visible = false
	}
}

func (m toastModel) View(t theme) string {
	if !m.visible {
		return ""
	}
	return t.toastBlock.Render(t.toastTitle.Render(m.title) + "\n" + m.body)
}
