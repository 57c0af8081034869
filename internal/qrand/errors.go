package qrand

import (
	"errors"
	"fmt"
)

// Domain errors for sequence analysis.
var (
	// ErrEmptySequence indicates analysis was requested on zero outcomes.
	ErrEmptySequence = errors.New("qrand: empty sequence")

	// ErrOutcomeRange indicates an outcome outside [0, alphabet). This points
	// at a bug in the upstream generator and is never silently clipped.
	ErrOutcomeRange = errors.New("qrand: outcome outside alphabet range")

	// ErrBadAlphabet indicates an alphabet size other than 2 or 3.
	ErrBadAlphabet = errors.New("qrand: alphabet must be binary or ternary")
)

// SequenceError wraps a range violation with its position in the sequence.
type SequenceError struct {
	Index   int
	Value   int
	Wrapped error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("outcome %d at index %d: %v", e.Value, e.Index, e.Wrapped)
}

func (e *SequenceError) Unwrap() error {
	return e.Wrapped
}
