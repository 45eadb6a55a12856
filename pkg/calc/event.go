package calc

import "strconv"

// EventKind identifies a calculator key.
type EventKind string

const (
	EventDigit        EventKind = "digit"
	EventDecimalPoint EventKind = "decimal_point"
	EventOperator     EventKind = "operator"
	EventEquals       EventKind = "equals"
	EventPercent      EventKind = "percent"
	EventToggleSign   EventKind = "toggle_sign"
	EventClear        EventKind = "clear"
)

// Event is a single key press. Digit is only meaningful for EventDigit and Op
// only for EventOperator.
type Event struct {
	Kind  EventKind
	Digit int
	Op    Operator
}

// Digit returns a digit key event. Values outside 0-9 are rejected by Apply.
func Digit(d int) Event { return Event{Kind: EventDigit, Digit: d} }

// DecimalPoint returns a decimal point key event.
func DecimalPoint() Event { return Event{Kind: EventDecimalPoint} }

// Op returns an operator key event.
func Op(op Operator) Event { return Event{Kind: EventOperator, Op: op} }

// Equals returns an equals key event.
func Equals() Event { return Event{Kind: EventEquals} }

// Percent returns a percent key event.
func Percent() Event { return Event{Kind: EventPercent} }

// ToggleSign returns a sign toggle key event.
func ToggleSign() Event { return Event{Kind: EventToggleSign} }

// Clear returns an all-clear key event.
func Clear() Event { return Event{Kind: EventClear} }

// String returns the keypad label of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return strconv.Itoa(e.Digit)
	case EventDecimalPoint:
		return "."
	case EventOperator:
		return e.Op.Symbol()
	case EventEquals:
		return "="
	case EventPercent:
		return "%"
	case EventToggleSign:
		return "+/-"
	case EventClear:
		return "AC"
	default:
		return string(e.Kind)
	}
}
