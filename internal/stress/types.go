package stress

import (
	"fmt"
	"math"
)

// State is a triaxial stress state in invariants: mean stress p and
// deviatoric stress q.
type State struct {
	P float64 `yaml:"p"`
	Q float64 `yaml:"q"`
}

// Validate checks the p > 0 invariant and rejects non-finite components.
func (s State) Validate() error {
	if math.IsNaN(s.P) || math.IsInf(s.P, 0) || math.IsNaN(s.Q) || math.IsInf(s.Q, 0) {
		return fmt.Errorf("%w: non-finite component (p=%g, q=%g)", ErrInvalidState, s.P, s.Q)
	}
	if s.P <= 0 {
		return fmt.Errorf("%w: p=%g", ErrInvalidState, s.P)
	}
	return nil
}

// Increment is the total elastic strain increment applied over one macro
// step: volumetric and deviatoric parts.
type Increment struct {
	EpsV float64 `yaml:"eps_v"`
	EpsQ float64 `yaml:"eps_q"`
}

// IsZero reports whether the increment leaves the state untouched.
func (inc Increment) IsZero() bool {
	return inc.EpsV == 0 && inc.EpsQ == 0
}

// Result is the stress state after one macro step.
type Result struct {
	P float64
	Q float64
}

// State converts the result back into a state for the next macro step.
func (r Result) State() State {
	return State{P: r.P, Q: r.Q}
}

// IsValid reports whether both components are finite.
func (r Result) IsValid() bool {
	return !math.IsNaN(r.P) && !math.IsInf(r.P, 0) && !math.IsNaN(r.Q) && !math.IsInf(r.Q, 0)
}
