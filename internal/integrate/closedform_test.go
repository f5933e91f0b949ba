package integrate

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

// benchParams is the course validation scenario: Gref=80000, nu=0.3 gives
// Kref = 80000*0.4/2.6 = 12307.6923.
func benchParams() material.Params {
	return material.Params{Gref: 80000, Nu: 0.3, M: 1, N: 0.5, Pa: 101.325}
}

func TestClosedFormValidationScenario(t *testing.T) {
	par := benchParams()
	cf := NewClosedForm()

	res, err := cf.Update(
		stress.State{P: 100, Q: 0},
		par,
		stress.Increment{EpsV: 0.01, EpsQ: 0.02},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// p' = 100 exp(Kref/pa * 0.01), q' from the general m != n formula.
	if math.Abs(res.P-336.920) > 5e-3 {
		t.Errorf("mean stress: got %.4f, expected 336.920", res.P)
	}
	if math.Abs(res.Q-6560.227) > 0.1 {
		t.Errorf("deviatoric stress: got %.4f, expected 6560.227", res.Q)
	}
}

func TestClosedFormZeroStrainIdempotence(t *testing.T) {
	par := benchParams()
	cf := NewClosedForm()

	st := stress.State{P: 137.5, Q: 42.25}
	res, err := cf.Update(st, par, stress.Increment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.P != st.P || res.Q != st.Q {
		t.Errorf("zero strain must be exact identity: got (%.17g, %.17g), want (%.17g, %.17g)",
			res.P, res.Q, st.P, st.Q)
	}
}

func TestClosedFormDegenerateMContinuity(t *testing.T) {
	// The m != 1 log/exp branch must approach the m == 1 exponential branch
	// as m -> 1; any discontinuity there is a sign the branch split is wrong.
	cf := NewClosedForm()
	st := stress.State{P: 100, Q: 0}
	inc := stress.Increment{EpsV: 0.01}

	exact := benchParams()
	ref, err := cf.Update(st, exact, inc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, eps := range []float64{1e-6, 1e-8, 1e-10} {
		near := exact
		near.M = 1 + eps
		res, err := cf.Update(st, near, inc)
		if err != nil {
			t.Fatalf("m=1+%g: unexpected error: %v", eps, err)
		}
		relErr := math.Abs(res.P-ref.P) / ref.P
		if relErr > 1e-4 {
			t.Errorf("m=1+%g: p discontinuous across branch boundary: %.8f vs %.8f (rel %.2e)",
				eps, res.P, ref.P, relErr)
		}
	}
}

func TestClosedFormBranchSelection(t *testing.T) {
	// m == n together with dEpsV == 0 must use the constant-G limiting form,
	// never the constant-Poisson formula with its dεq/dεv ratio.
	par := material.Params{Gref: 50000, Nu: 0.2, M: 0.5, N: 0.5, Pa: material.StandardPa}
	cf := NewClosedForm()

	st := stress.State{P: 200, Q: 10}
	inc := stress.Increment{EpsV: 0, EpsQ: 0.001}

	res, err := cf.Update(st, par, inc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := st.Q + 3*par.Gref*math.Pow(st.P/par.Pa, par.N)*inc.EpsQ
	if math.Abs(res.Q-want) > 1e-9 {
		t.Errorf("expected constant-G branch result %.6f, got %.6f", want, res.Q)
	}
	if res.P != st.P {
		t.Errorf("p must be unchanged with zero volumetric strain: got %.6f", res.P)
	}
}

func TestClosedFormConstantPoissonBranch(t *testing.T) {
	// m == n with nonzero volumetric strain: q' - q = 3G/K (dεq/dεv) (p' - p).
	par := material.Params{Gref: 50000, Nu: 0.2, M: 0.5, N: 0.5, Pa: material.StandardPa}
	cf := NewClosedForm()

	st := stress.State{P: 200, Q: 10}
	inc := stress.Increment{EpsV: 0.002, EpsQ: 0.001}

	res, err := cf.Update(st, par, inc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := st.Q + 3*par.Gref/par.Kref()*(inc.EpsQ/inc.EpsV)*(res.P-st.P)
	if math.Abs(res.Q-want) > 1e-9 {
		t.Errorf("expected constant-Poisson branch result %.6f, got %.6f", want, res.Q)
	}
}

func TestClosedFormSingularExponent(t *testing.T) {
	// 1 + n - m == 0 has no closed-form deviatoric update; must fail, not
	// divide by zero.
	par := material.Params{Gref: 50000, Nu: 0.2, M: 1.5, N: 0.5, Pa: material.StandardPa}
	cf := NewClosedForm()

	_, err := cf.Update(stress.State{P: 100}, par, stress.Increment{EpsV: 0.001, EpsQ: 0.001})
	if !errors.Is(err, stress.ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for 1+n-m == 0, got %v", err)
	}
}

func TestClosedFormNegativePressureRejection(t *testing.T) {
	// A large enough swelling increment makes the log argument non-positive.
	par := material.Params{Gref: 80000, Nu: 0.3, M: 0.5, N: 0.5, Pa: 101.325}
	cf := NewClosedForm()

	res, err := cf.Update(stress.State{P: 100}, par, stress.Increment{EpsV: -1})
	if !errors.Is(err, stress.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v (result %+v)", err, res)
	}
}

func TestClosedFormInputValidation(t *testing.T) {
	cf := NewClosedForm()
	good := benchParams()

	tests := []struct {
		name string
		par  material.Params
		st   stress.State
		want error
	}{
		{"negative gref", material.Params{Gref: -1, Nu: 0.3, Pa: 101.325}, stress.State{P: 100}, stress.ErrInvalidParameters},
		{"nu at upper bound", material.Params{Gref: 80000, Nu: 0.5, Pa: 101.325}, stress.State{P: 100}, stress.ErrInvalidParameters},
		{"zero pa", material.Params{Gref: 80000, Nu: 0.3, Pa: 0}, stress.State{P: 100}, stress.ErrInvalidParameters},
		{"zero pressure", good, stress.State{P: 0}, stress.ErrInvalidState},
		{"negative pressure", good, stress.State{P: -5}, stress.ErrInvalidState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cf.Update(tc.st, tc.par, stress.Increment{EpsV: 0.001})
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
