// Package integrate implements the stress-update integrators for power-law
// pressure-dependent elasticity.
//
// Two steppers share the [Stepper] interface:
//
//   - [ClosedForm]: exact semi-analytical update of one macro strain
//     increment, obtained by integrating the rate equations in closed form.
//   - [Euler]: forward-Euler reference that subdivides the macro increment
//     into N sub-steps, re-evaluating the moduli at the pre-step pressure
//     each time. First-order accurate; converges to [ClosedForm] as N grows.
//
// Both are pure functions of their inputs and validate parameters and state
// eagerly, failing with the sentinel errors in the stress package instead of
// propagating NaN.
package integrate
