package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Apply folds e into s and returns the next state. The input state is never
// modified. On error the returned state is s itself and the error wraps one
// of ErrInvalidEvent, ErrInvalidDigit or ErrInvalidOperator.
func Apply(s State, e Event) (State, Signal, error) {
	switch e.Kind {
	case EventDigit:
		if e.Digit < 0 || e.Digit > 9 {
			return s, SignalNone, fmt.Errorf("calc: %w: %d", ErrInvalidDigit, e.Digit)
		}
		return applyDigit(s, strconv.Itoa(e.Digit)), SignalNone, nil
	case EventDecimalPoint:
		return applyDecimalPoint(s), SignalNone, nil
	case EventOperator:
		if !e.Op.Valid() {
			return s, SignalNone, fmt.Errorf("calc: %w: %d", ErrInvalidOperator, int(e.Op))
		}
		return applyOperator(s, e.Op)
	case EventEquals:
		return applyEquals(s)
	case EventPercent:
		s.Display = FormatNumber(ParseNumber(s.Display) / 100)
		return s, SignalNone, nil
	case EventToggleSign:
		s.Display = FormatNumber(-ParseNumber(s.Display))
		return s, SignalNone, nil
	case EventClear:
		return NewState(), SignalNone, nil
	default:
		return s, SignalNone, fmt.Errorf("calc: %w: kind %q", ErrInvalidEvent, e.Kind)
	}
}

// Run applies events in order starting from the default state. It stops at
// the first error. Signals raised along the way are returned in order.
func Run(events ...Event) (State, []Signal, error) {
	s := NewState()
	var signals []Signal

	for _, e := range events {
		next, sig, err := Apply(s, e)
		if err != nil {
			return s, signals, err
		}
		if sig != SignalNone {
			signals = append(signals, sig)
		}
		s = next
	}

	return s, signals, nil
}

func applyDigit(s State, d string) State {
	switch {
	case s.AwaitingOperand:
		s.Display = d
		s.AwaitingOperand = false
	case s.Display == "0":
		s.Display = d
	default:
		s.Display += d
	}
	return s
}

func applyDecimalPoint(s State) State {
	switch {
	case s.AwaitingOperand:
		s.Display = "0."
		s.AwaitingOperand = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

func applyOperator(s State, op Operator) (State, Signal, error) {
	operand := ParseNumber(s.Display)
	sig := SignalNone

	if s.Pending == nil {
		s.Pending = &Pending{Accumulator: operand, Op: op}
	} else {
		result, evalSig, err := Evaluate(s.Pending.Accumulator, operand, s.Pending.Op)
		if err != nil {
			return s, SignalNone, err
		}
		sig = evalSig
		s.Display = FormatNumber(result)
		s.Pending = &Pending{Accumulator: result, Op: op}
	}

	s.AwaitingOperand = true
	return s, sig, nil
}

func applyEquals(s State) (State, Signal, error) {
	if s.Pending == nil {
		return s, SignalNone, nil
	}

	result, sig, err := Evaluate(s.Pending.Accumulator, ParseNumber(s.Display), s.Pending.Op)
	if err != nil {
		return s, SignalNone, err
	}

	s.Display = FormatNumber(result)
	s.Pending = nil
	s.AwaitingOperand = true
	return s, sig, nil
}
