package keymap

import (
	"testing"

	"github.com/germanamz/abacus/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		key  string
		want calc.Event
	}{
		{"0", calc.Digit(0)},
		{"9", calc.Digit(9)},
		{".", calc.DecimalPoint()},
		{",", calc.DecimalPoint()},
		{"+", calc.Op(calc.Add)},
		{"-", calc.Op(calc.Subtract)},
		{"*", calc.Op(calc.Multiply)},
		{"x", calc.Op(calc.Multiply)},
		{"X", calc.Op(calc.Multiply)},
		{"×", calc.Op(calc.Multiply)},
		{"/", calc.Op(calc.Divide)},
		{"÷", calc.Op(calc.Divide)},
		{"=", calc.Equals()},
		{"enter", calc.Equals()},
		{"%", calc.Percent()},
		{"n", calc.ToggleSign()},
		{"±", calc.ToggleSign()},
		{"+/-", calc.ToggleSign()},
		{"c", calc.Clear()},
		{"AC", calc.Clear()},
		{"esc", calc.Clear()},
		{" 7 ", calc.Digit(7)},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Parse(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, key := range []string{"", "a", "^", "sqrt", "12"} {
		_, err := Parse(key)
		assert.ErrorIs(t, err, ErrUnknownKey, key)
	}
}

func TestFields(t *testing.T) {
	events, err := Fields("2+3x4=")
	require.NoError(t, err)
	assert.Equal(t, []calc.Event{
		calc.Digit(2), calc.Op(calc.Add), calc.Digit(3), calc.Op(calc.Multiply), calc.Digit(4), calc.Equals(),
	}, events)
}

func TestFields_SpacesAndNames(t *testing.T) {
	events, err := Fields("12 . 5 ÷ 5 = ac 3 neg +/-")
	require.NoError(t, err)
	assert.Equal(t, []calc.Event{
		calc.Digit(1), calc.Digit(2), calc.DecimalPoint(), calc.Digit(5), calc.Op(calc.Divide), calc.Digit(5), calc.Equals(),
		calc.Clear(), calc.Digit(3), calc.ToggleSign(), calc.ToggleSign(),
	}, events)
}

func TestFields_LetterRuns(t *testing.T) {
	tests := []struct {
		script string
		want   []calc.Event
	}{
		{script: "5nn", want: []calc.Event{calc.Digit(5), calc.ToggleSign(), calc.ToggleSign()}},
		{script: "5nac", want: []calc.Event{calc.Digit(5), calc.ToggleSign(), calc.Clear()}},
		{script: "12xac", want: []calc.Event{calc.Digit(1), calc.Digit(2), calc.Op(calc.Multiply), calc.Clear()}},
		{script: "3xneg=", want: []calc.Event{calc.Digit(3), calc.Op(calc.Multiply), calc.ToggleSign(), calc.Equals()}},
		{script: "2negate", want: []calc.Event{calc.Digit(2), calc.ToggleSign()}},
		{script: "4XAC", want: []calc.Event{calc.Digit(4), calc.Op(calc.Multiply), calc.Clear()}},
		{script: "9cclear", want: []calc.Event{calc.Digit(9), calc.Clear(), calc.Clear()}},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			events, err := Fields(tt.script)
			require.NoError(t, err)
			assert.Equal(t, tt.want, events)
		})
	}
}

func TestFields_Unknown(t *testing.T) {
	_, err := Fields("2^3")
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = Fields("2 sqrt")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestFields_RunsThroughEngine(t *testing.T) {
	events, err := Fields("8÷0=")
	require.NoError(t, err)

	s, signals, err := calc.Run(events...)
	require.NoError(t, err)
	assert.Equal(t, "0", s.Display)
	assert.Equal(t, []calc.Signal{calc.SignalDivisionByZero}, signals)
}
