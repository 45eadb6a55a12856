package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/abacus/pkg/config"
)

// Sizes of the keypad grid, in terminal cells.
const (
	buttonWidth = 6
	buttonGap   = 1
	keypadWidth = 4*buttonWidth + 3*buttonGap
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	gapStyle   = lipgloss.NewStyle().Width(buttonGap)
)

// theme holds the styles derived from the configured colors.
type theme struct {
	secondary lipgloss.Style
	primary   lipgloss.Style
	screen    lipgloss.Style

	digitKey    lipgloss.Style
	functionKey lipgloss.Style
	operatorKey lipgloss.Style
	focusedKey  lipgloss.Style
	pressedKey  lipgloss.Style

	toastTitle lipgloss.Style
	toastBlock lipgloss.Style
	dim        lipgloss.Style
}

func newTheme(c config.ThemeConfig) theme {
	accent := lipgloss.Color(c.Accent)
	operator := lipgloss.Color(c.Operator)
	muted := lipgloss.Color(c.Muted)
	errColor := lipgloss.Color(c.Error)

	key := lipgloss.NewStyle().Width(buttonWidth).Align(lipgloss.Center)

	return theme{
		secondary: lipgloss.NewStyle().Foreground(muted).Width(keypadWidth).Align(lipgloss.Right),
		primary:   lipgloss.NewStyle().Bold(true).Width(keypadWidth).Align(lipgloss.Right),
		screen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			MarginBottom(1),

		digitKey:    key,
		functionKey: key.Foreground(muted),
		operatorKey: key.Foreground(operator).Bold(true),
		focusedKey:  lipgloss.NewStyle().Underline(true),
		pressedKey:  lipgloss.NewStyle().Reverse(true),

		toastTitle: lipgloss.NewStyle().Bold(true).Foreground(errColor),
		toastBlock: lipgloss.NewStyle().
			MarginTop(1).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(errColor),
		dim: lipgloss.NewStyle().Foreground(muted),
	}
}
