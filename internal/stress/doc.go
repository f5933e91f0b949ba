// Package stress defines the scalar invariant quantities shared by the
// integrators: triaxial stress states in (p, q), elastic strain increments,
// and the domain errors raised when an update leaves the physical domain.
//
// The power-law moduli are only defined for positive mean stress, so p > 0
// is an invariant of every [State] accepted or produced by the package.
package stress
