package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type keyKind int

const (
	keyDigit keyKind = iota
	keyFunction
	keyOperator
)

type button struct {
	label string
	kind  keyKind
	wide  bool
}

// keypadRows mirrors a pocket calculator: functions on top, operators on the
// right and a double-width zero.
var keypadRows = [][]button{
	{{label: "AC", kind: keyFunction}, {label: "+/-", kind: keyFunction}, {label: "%", kind: keyFunction}, {label: "÷", kind: keyOperator}},
	{{label: "7"}, {label: "8"}, {label: "9"}, {label: "×", kind: keyOperator}},
	{{label: "4"}, {label: "5"}, {label: "6"}, {label: "-", kind: keyOperator}},
	{{label: "1"}, {label: "2"}, {label: "3"}, {label: "+", kind: keyOperator}},
	{{label: "0", wide: true}, {label: "."}, {label: "=", kind: keyOperator}},
}

// cursor is the focused keypad position.
type cursor struct {
	row, col int
}

func (c cursor) move(dRow, dCol int) cursor {
	c.row = clamp(c.row+dRow, 0, len(keypadRows)-1)
	c.col = clamp(c.col+dCol, 0, len(keypadRows[c.row])-1)
	return c
}

func (c cursor) button() button {
	return keypadRows[c.row][c.col]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// renderKeypad draws the grid. focus is underlined and the label of the most
// recently pressed key is drawn reversed.
func renderKeypad(t theme, focus cursor, pressed string) string {
	rows := make([]string, 0, len(keypadRows))

	for r, row := range keypadRows {
		cells := make([]string, 0, 2*len(row))
		for c, b := range row {
			if c > 0 {
				cells = append(cells, gapStyle.Render(""))
			}
			cells = append(cells, renderButton(t, b, focus == cursor{row: r, col: c}, b.label == pressed))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func renderButton(t theme, b button, focused, pressed bool) string {
	var style lipgloss.Style
	switch b.kind {
	case keyFunction:
		style = t.functionKey
	case keyOperator:
		style = t.operatorKey
	default:
		style = t.digitKey
	}

	if b.wide {
		style = style.Width(2*buttonWidth + buttonGap)
	}

	label := b.label
	if focused {
		label = t.focusedKey.Render(label)
	}
	if pressed {
		style = style.Inherit(t.pressedKey)
	}

	return style.Render("[" + label + "]")
}
