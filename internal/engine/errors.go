package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when an event references a unit ID the
	// content catalog does not contain.
	ErrUnknownUnit = errors.New("unit not found in content catalog")

	// ErrKindMismatch is returned when the event kind disagrees with
	// the catalog's content type for the unit.
	ErrKindMismatch = errors.New("event kind does not match unit content type")

	// ErrInvalidScore is returned when a scored event carries a
	// percentage outside [0,100].
	ErrInvalidScore = errors.New("score must be in [0,100]")

	// ErrNegativeXPDelta is returned when a step would shrink total XP.
	// Total XP only ever grows; a negative delta means corrupted input.
	ErrNegativeXPDelta = errors.New("event produced a negative XP delta")
)

// StepError wraps a failure with the progression step that produced
// it. When Apply returns one, the input snapshot is untouched.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("progression step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(step string, err error) error {
	return &StepError{Step: step, Err: err}
}
