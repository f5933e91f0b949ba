package stress

import (
	"errors"
	"fmt"
)

// Domain errors for stress-update operations.
var (
	// ErrInvalidState indicates a pressure at or below zero, where the
	// power-law moduli are undefined.
	ErrInvalidState = errors.New("stress: invalid state (mean stress must be positive)")

	// ErrInvalidParameters indicates material parameters outside their
	// valid domain.
	ErrInvalidParameters = errors.New("stress: parameters out of valid domain")
)

// StepError wraps a domain error with the sub-step at which the explicit
// integrator left the physical domain.
type StepError struct {
	Step    int     // 1-based sub-step index
	N       int     // total sub-step count
	P       float64 // offending pressure
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("sub-step %d/%d (p=%.6g): %v", e.Step, e.N, e.P, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
