package calc

import "fmt"

// Operator is one of the four binary operators the calculator supports.
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Valid reports whether op is one of the recognized operators.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// Symbol returns the keypad label for op.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

func (op Operator) String() string { return op.Symbol() }

// ParseOperator maps a keypad label or its ASCII alias to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-", "−":
		return Subtract, nil
	case "×", "*", "x", "X":
		return Multiply, nil
	case "÷", "/":
		return Divide, nil
	default:
		return 0, fmt.Errorf("calc: %w: %q", ErrInvalidOperator, s)
	}
}
