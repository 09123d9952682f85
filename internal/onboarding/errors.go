package onboarding

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an event has no edge from the
// current step.
var ErrInvalidTransition = errors.New("invalid onboarding transition")

// ValidationError reports a required field that is missing or unusable.
// The step does not change when it is returned.
type ValidationError struct {
	Step   Step
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Step, e.Field, e.Reason)
}

func transitionError(s Step, e Event) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e, s)
}
