// Package calc implements the arithmetic input state machine behind a basic
// four-function calculator. A State is folded over a stream of key events by
// Apply; each transition is pure and returns the next State together with an
// optional Signal (such as SignalDivisionByZero) that the caller may surface
// to the user. Operators are applied eagerly from left to right with no
// precedence, so "2 + 3 × 4 =" yields 20.
//
// The package performs no locking and no I/O. Callers that receive input
// from more than one source must serialize calls themselves.
package calc
