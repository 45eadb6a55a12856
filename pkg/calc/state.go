package calc

// Phase is the coarse state of the machine.
type Phase int

const (
	// PhaseIdle means no accumulator is stored.
	PhaseIdle Phase = iota
	// PhaseOperatorPending means an accumulator and an operator are stored
	// and the machine is collecting the second operand.
	PhaseOperatorPending
)

func (p Phase) String() string {
	if p == PhaseOperatorPending {
		return "operator_pending"
	}
	return "idle"
}

// Pending is a binary operation waiting for its second operand.
type Pending struct {
	Accumulator float64
	Op          Operator
}

// State is the complete calculator state of one session. A nil Pending is
// the idle phase; an operator never exists without its accumulator.
type State struct {
	// Display is the text on screen and also the operand being typed.
	Display string
	Pending *Pending
	// AwaitingOperand is set after an operator or equals press: the next
	// digit or decimal point starts a new operand instead of appending.
	AwaitingOperand bool
}

// NewState returns the state a fresh session starts in.
func NewState() State {
	return State{Display: "0"}
}

// Phase reports whether an operation is pending.
func (s State) Phase() Phase {
	if s.Pending != nil {
		return PhaseOperatorPending
	}
	return PhaseIdle
}

// Equal reports whether s and o hold the same values.
func (s State) Equal(o State) bool {
	if s.Display != o.Display || s.AwaitingOperand != o.AwaitingOperand {
		return false
	}
	if s.Pending == nil || o.Pending == nil {
		return s.Pending == nil && o.Pending == nil
	}
	return *s.Pending == *o.Pending
}
