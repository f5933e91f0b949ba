// Package path runs a stress point through a sequence of macro strain
// increments with a chosen integrator, recording the stress state after
// each increment.
package path

import (
	"context"
	"fmt"

	"github.com/san-kum/geosim/internal/integrate"
	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

// Observer is notified after each completed increment.
type Observer interface {
	OnStep(step int, st stress.State)
}

// Result holds the stress path, starting state included.
type Result struct {
	States []stress.State
}

// P returns the mean-stress trace of the path.
func (r *Result) P() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.P
	}
	return out
}

// Q returns the deviatoric-stress trace of the path.
func (r *Result) Q() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Q
	}
	return out
}

type Runner struct {
	stepper   integrate.Stepper
	observers []Observer
}

func New(stepper integrate.Stepper) *Runner {
	return &Runner{stepper: stepper}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run applies the increments in order, starting from start. On error the
// partial path walked so far is returned alongside it. Cancellation is
// checked between increments, not inside a stepper call.
func (r *Runner) Run(ctx context.Context, start stress.State, par material.Params, incs []stress.Increment) (*Result, error) {
	if err := par.Validate(); err != nil {
		return nil, err
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}

	result := &Result{States: make([]stress.State, 0, len(incs)+1)}
	result.States = append(result.States, start)

	cur := start
	for i, inc := range incs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		res, err := r.stepper.Update(cur, par, inc)
		if err != nil {
			return result, fmt.Errorf("increment %d: %w", i, err)
		}

		cur = res.State()
		result.States = append(result.States, cur)
		for _, o := range r.observers {
			o.OnStep(i, cur)
		}
	}
	return result, nil
}
