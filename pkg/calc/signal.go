package calc

// Signal is a non-fatal condition raised by a transition for the caller to
// present, e.g. as a notification.
type Signal int

const (
	SignalNone Signal = iota
	SignalDivisionByZero
)

func (s Signal) String() string {
	switch s {
	case SignalDivisionByZero:
		return "division_by_zero"
	default:
		return "none"
	}
}
