package integrate

import (
	"fmt"
	"math"

	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

// Stepper advances a stress state by one macro strain increment.
type Stepper interface {
	Update(st stress.State, par material.Params, inc stress.Increment) (stress.Result, error)
	Name() string
}

// ClosedForm computes the exact update of (p, q) by integrating the
// power-law rate equations analytically over the whole increment.
type ClosedForm struct{}

func NewClosedForm() *ClosedForm {
	return &ClosedForm{}
}

func (c *ClosedForm) Name() string { return "closed-form" }

func (c *ClosedForm) Update(st stress.State, par material.Params, inc stress.Increment) (stress.Result, error) {
	if err := par.Validate(); err != nil {
		return stress.Result{}, err
	}
	if err := st.Validate(); err != nil {
		return stress.Result{}, err
	}
	if inc.IsZero() {
		return stress.Result{P: st.P, Q: st.Q}, nil
	}

	pNext, err := c.meanUpdate(st.P, par, inc.EpsV)
	if err != nil {
		return stress.Result{}, err
	}
	qNext, err := c.deviatoricUpdate(st, par, inc, pNext)
	if err != nil {
		return stress.Result{}, err
	}
	return stress.Result{P: pNext, Q: qNext}, nil
}

// meanUpdate integrates dp = K(p) dεv exactly.
//
// For m != 1 the inverse power law integrates to
//
//	p' = exp( ln( p^(1-m) + (1-m) Kref/pa^m dεv ) / (1-m) )
//
// and for m == 1 the law degenerates to an exponential in dεv.
func (c *ClosedForm) meanUpdate(p float64, par material.Params, dEpsV float64) (float64, error) {
	if dEpsV == 0 {
		return p, nil
	}
	kref := par.Kref()
	if par.M == 1 {
		return p * math.Exp(kref/par.Pa*dEpsV), nil
	}
	arg := math.Pow(p, 1-par.M) + (1-par.M)*kref/math.Pow(par.Pa, par.M)*dEpsV
	if arg <= 0 {
		return 0, fmt.Errorf("%w: volumetric increment %g drives mean stress non-positive", stress.ErrInvalidState, dEpsV)
	}
	return math.Exp(math.Log(arg) / (1 - par.M)), nil
}

// deviatoricUpdate integrates dq = 3 G(p) dεq exactly, given the mean
// stresses at both ends of the increment.
//
// The dispatch order matters: a zero volumetric increment must be tested
// before the m == n case, because with dεv == 0 the ratio dεq/dεv in the
// constant-Poisson formula is indeterminate and the constant-G limiting
// form applies instead.
func (c *ClosedForm) deviatoricUpdate(st stress.State, par material.Params, inc stress.Increment, pNext float64) (float64, error) {
	switch {
	case inc.EpsV == 0:
		// G is constant over the step since p does not change.
		return st.Q + 3*par.Gref*math.Pow(st.P/par.Pa, par.N)*inc.EpsQ, nil

	case par.M == par.N:
		// Constant Poisson's ratio: q tracks p linearly.
		return st.Q + 3*par.Gref/par.Kref()*(inc.EpsQ/inc.EpsV)*(pNext-st.P), nil

	default:
		e := 1 + par.N - par.M
		if e == 0 {
			return 0, fmt.Errorf("%w: exponent 1+n-m vanishes (m=%g, n=%g); the deviatoric update has no closed form here",
				stress.ErrInvalidParameters, par.M, par.N)
		}
		coef := 3 * par.Gref / par.Kref() * (inc.EpsQ / inc.EpsV) * math.Pow(par.Pa, par.M-par.N) / e
		return st.Q + coef*(math.Pow(pNext, e)-math.Pow(st.P, e)), nil
	}
}
