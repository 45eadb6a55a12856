package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/abacus/pkg/calc"
	"github.com/germanamz/abacus/pkg/config"
	"github.com/germanamz/abacus/pkg/keymap"
	"github.com/germanamz/abacus/pkg/session"
)

const (
	divisionByZeroTitle = "Error"
	divisionByZeroText  = "Cannot divide by zero"
)

// appModel is the root bubbletea model. It holds no arithmetic: keys are
// mapped to calc events and forwarded to the session, and whatever screen
// comes back is drawn.
type appModel struct {
	ctx  context.Context
	sess *session.Session
	log  *slog.Logger

	theme        theme
	keys         keyMap
	help         help.Model
	toast        toastModel
	focus        cursor
	pressed      string
	showKeypad   bool
	showHelp     bool
	helpText     string
	inputEnabled bool
	width        int
}

func newAppModel(ctx context.Context, sess *session.Session, cfg config.Config, log *slog.Logger) appModel {
	return appModel{
		ctx:        ctx,
		sess:       sess,
		log:        log,
		theme:      newTheme(cfg.Theme),
		keys:       newKeyMap(),
		help:       help.New(),
		toast:      newToast(cfg.ToastDuration()),
		focus:      cursor{row: 1},
		showKeypad: cfg.Keypad.Show,
	}
}

func (m appModel) Init() tea.Cmd {
	// Delay reading keys so that stale terminal escape-sequence responses
	// (e.g. OSC 11 background-color) are drained first.
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return initDrainMsg{}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpText = renderMarkdown(helpMarkdown, m.width)
		}
		return m, nil

	case initDrainMsg:
		m.inputEnabled = true
		return m, nil

	case toastExpiredMsg:
		m.toast.expire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		if m.showHelp {
			m.helpText = renderMarkdown(helpMarkdown, m.width)
		}
		return m, nil

	case m.showHelp && msg.Type == tea.KeyEsc:
		m.showHelp = false
		m.help.ShowAll = false
		return m, nil

	case key.Matches(msg, m.keys.Move):
		m.focus = m.moveFocus(msg)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		e, err := keymap.Parse(m.focus.button().label)
		if err != nil {
			return m, nil
		}
		return m.press(e)
	}

	e, err := keymap.Parse(msg.String())
	if err != nil {
		// Keys with no calculator meaning are ignored.
		return m, nil
	}

	return m.press(e)
}

func (m appModel) moveFocus(msg tea.KeyMsg) cursor {
	switch msg.Type {
	case tea.KeyUp:
		return m.focus.move(-1, 0)
	case tea.KeyDown:
		return m.focus.move(1, 0)
	case tea.KeyLeft:
		return m.focus.move(0, -1)
	case tea.KeyRight:
		return m.focus.move(0, 1)
	default:
		return m.focus
	}
}

func (m appModel) press(e calc.Event) (tea.Model, tea.Cmd) {
	_, sig, err := m.sess.Press(m.ctx, e)
	if err != nil {
		m.log.ErrorContext(m.ctx, "key press failed", "key", e.String(), "error", err)
		return m, nil
	}

	m.pressed = e.String()

	if sig == calc.SignalDivisionByZero {
		return m, m.toast.show(divisionByZeroTitle, divisionByZeroText)
	}

	return m, nil
}

func (m appModel) View() string {
	t := m.theme
	scr := m.sess.Screen()

	screen := t.screen.Render(lipgloss.JoinVertical(lipgloss.Right,
		t.secondary.Render(fitDisplay(scr.Secondary, keypadWidth)),
		t.primary.Render(fitDisplay(scr.Primary, keypadWidth)),
	))

	parts := []string{titleStyle.Render("Calculator"), screen}

	if m.showKeypad {
		parts = append(parts, renderKeypad(t, m.focus, m.pressed))
	}

	if toast := m.toast.View(t); toast != "" {
		parts = append(parts, toast)
	}

	if m.showHelp {
		parts = append(parts, "", m.helpText)
	}

	parts = append(parts, "", t.dim.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
