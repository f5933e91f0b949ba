package integrate

import (
	"fmt"
	"math"

	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

// Euler approximates the macro update by N equal forward-Euler sub-steps,
// re-evaluating the power-law moduli at the pre-step pressure each time.
// Truncation error decays like 1/N; it serves as the numerical ground truth
// the closed form is validated against.
type Euler struct {
	Steps int
}

func NewEuler(steps int) *Euler {
	return &Euler{Steps: steps}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Update(st stress.State, par material.Params, inc stress.Increment) (stress.Result, error) {
	if e.Steps <= 0 {
		return stress.Result{}, fmt.Errorf("%w: sub-step count must be positive, got %d", stress.ErrInvalidParameters, e.Steps)
	}
	if err := par.Validate(); err != nil {
		return stress.Result{}, err
	}
	if err := st.Validate(); err != nil {
		return stress.Result{}, err
	}
	if inc.IsZero() {
		return stress.Result{P: st.P, Q: st.Q}, nil
	}

	dv := inc.EpsV / float64(e.Steps)
	dq := inc.EpsQ / float64(e.Steps)

	cur := st
	// Strictly sequential recurrence: each sub-step's moduli depend on the
	// pressure produced by the previous one.
	for i := 0; i < e.Steps; i++ {
		next, err := SubStep(cur, par, dv, dq)
		if err != nil {
			return stress.Result{}, &stress.StepError{Step: i + 1, N: e.Steps, P: next.P, Wrapped: err}
		}
		cur = next
	}
	return stress.Result{P: cur.P, Q: cur.Q}, nil
}

// SubStep applies a single forward-Euler sub-increment, with both moduli
// evaluated at the incoming pressure. Exposed for the live view, which
// advances the same recurrence tick by tick.
func SubStep(st stress.State, par material.Params, dv, dq float64) (stress.State, error) {
	k := par.K(st.P)
	g := par.G(st.P)
	p := st.P + k*dv
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return stress.State{P: p, Q: st.Q}, stress.ErrInvalidState
	}
	return stress.State{P: p, Q: st.Q + 3*g*dq}, nil
}
