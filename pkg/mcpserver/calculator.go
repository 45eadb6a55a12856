package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/abacus/pkg/calc"
	"github.com/germanamz/abacus/pkg/keymap"
	"github.com/germanamz/abacus/pkg/session"
)

// DivisionByZeroWarning is the notification text for calc.SignalDivisionByZero.
const DivisionByZeroWarning = "Cannot divide by zero"

// ScreenResult is the JSON body returned by every calculator tool.
type ScreenResult struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary"`
	Warnings  []string `json:"warnings,omitempty"`
}

type pressInput struct {
	Keys string `json:"keys"`
}

// CalculatorTools returns the tools that drive sess: calculator_press,
// calculator_screen and calculator_clear.
func CalculatorTools(sess *session.Session) []Tool {
	return []Tool{
		{
			Name: "calculator_press",
			Description: "Press calculator keys in order and return the screen. Keys: digits, '.', " +
				"'+', '-', 'x' or '*', '/' , '=', '%', 'n' (toggle sign), 'ac' (clear). " +
				"Operators apply left to right without precedence.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"keys":{"type":"string","description":"Key script, e.g. \"2+3x4=\""}},"required":["keys"]}`),
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				var in pressInput
				if err := json.Unmarshal(input, &in); err != nil {
					return "", fmt.Errorf("invalid input: %w", err)
				}

				events, err := keymap.Fields(in.Keys)
				if err != nil {
					return "", err
				}

				scr, signals, err := sess.PressAll(ctx, events...)
				if err != nil {
					return "", err
				}

				return encodeScreen(scr, signals)
			},
		},
		{
			Name:        "calculator_screen",
			Description: "Return the current calculator screen without pressing any key.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
				return encodeScreen(sess.Screen(), nil)
			},
		},
		{
			Name:        "calculator_clear",
			Description: "Clear the calculator (AC) and return the screen.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler: func(ctx context.Context, _ json.RawMessage) (string, error) {
				return encodeScreen(sess.Reset(ctx), nil)
			},
		},
	}
}

func encodeScreen(scr calc.Screen, signals []calc.Signal) (string, error) {
	res := ScreenResult{Primary: scr.Primary, Secondary: scr.Secondary}
	for _, sig := range signals {
		if sig == calc.SignalDivisionByZero {
			res.Warnings = append(res.Warnings, DivisionByZeroWarning)
		}
	}

	b, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to encode screen: %w", err)
	}

	return string(b), nil
}
