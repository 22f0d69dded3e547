package refined

import (
	"errors"
	"fmt"
)

// RefinementError reports a value that does not satisfy its predicate. It is
// the only error Refine, RefineWithState, Modify and Replace return.
type RefinementError struct {
	message string
}

func newRefinementError(message string) *RefinementError {
	return &RefinementError{message: message}
}

// Error implements the error interface.
func (e *RefinementError) Error() string {
	return "refinement violated: " + e.message
}

// Message returns the predicate's description of the violated invariant.
func (e *RefinementError) Message() string {
	return e.message
}

// IsRefinementError returns true if err is or wraps a *RefinementError.
func IsRefinementError(err error) bool {
	var re *RefinementError
	return errors.As(err, &re)
}

// ProofError reports an implication or arithmetic conversion whose result
// cannot be shown, from the predicate types alone, to satisfy the target
// predicate. It depends only on the types involved, never on the values.
type ProofError struct {
	// Op names the conversion: "imply", "add", "sub", "mul" or "div".
	Op string

	// Have is the interval the conversion can produce.
	Have string

	// Want is the interval the target predicate accepts.
	Want string

	// Err is the interval algebra failure, if the interval could not be
	// computed at all.
	Err error
}

// Error implements the error interface.
func (e *ProofError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot prove %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cannot prove %s: %s is not within %s", e.Op, e.Have, e.Want)
}

// Unwrap returns the underlying interval algebra error.
func (e *ProofError) Unwrap() error {
	return e.Err
}

// IsProofError returns true if err is or wraps a *ProofError.
func IsProofError(err error) bool {
	var pe *ProofError
	return errors.As(err, &pe)
}

// ErrUnrefined is returned when encoding a zero Refinement.
var ErrUnrefined = errors.New("refined: value was never refined")
