package calc

import "fmt"

// Evaluate applies op to a and b. Dividing by zero does not fail: the result
// is 0 and SignalDivisionByZero is returned so the display stays well formed.
func Evaluate(a, b float64, op Operator) (float64, Signal, error) {
	switch op {
	case Add:
		return a + b, SignalNone, nil
	case Subtract:
		return a - b, SignalNone, nil
	case Multiply:
		return a * b, SignalNone, nil
	case Divide:
		if b == 0 {
			return 0, SignalDivisionByZero, nil
		}
		return a / b, SignalNone, nil
	default:
		return 0, SignalNone, fmt.Errorf("calc: evaluate: %w: %d", ErrInvalidOperator, int(op))
	}
}
