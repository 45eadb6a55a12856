package calc

import "errors"

// Contract violations by the caller. They are returned wrapped, so check them
// with errors.Is.
var (
	ErrInvalidEvent    = errors.New("invalid event")
	ErrInvalidDigit    = errors.New("invalid digit")
	ErrInvalidOperator = errors.New("invalid operator")
)
