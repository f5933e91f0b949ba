package material

import (
	"fmt"
	"math"

	"github.com/san-kum/geosim/internal/stress"
)

// Params holds the power-law elastic material parameters.
//
// The bulk reference modulus is not stored: it is derived from Gref and Nu
// through [Params.Kref] so the two can never drift apart.
type Params struct {
	Gref float64 `yaml:"g_ref"` // reference shear modulus at p = pa
	Nu   float64 `yaml:"nu"`    // Poisson's ratio, open interval (-1, 0.5)
	M    float64 `yaml:"m"`     // bulk modulus pressure exponent
	N    float64 `yaml:"n"`     // shear modulus pressure exponent
	Pa   float64 `yaml:"p_a"`   // atmospheric reference pressure
}

// Kref returns the reference bulk modulus derived from Gref and Nu:
//
//	Kref = Gref (1 - 2ν) / (2 (1 + ν))
func (p Params) Kref() float64 {
	return p.Gref * (1 - 2*p.Nu) / (2 * (1 + p.Nu))
}

// Validate checks the parameter domain constraints.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.Gref) || p.Gref <= 0:
		return fmt.Errorf("%w: g_ref must be positive, got %g", stress.ErrInvalidParameters, p.Gref)
	case math.IsNaN(p.Nu) || p.Nu <= -1 || p.Nu >= 0.5:
		return fmt.Errorf("%w: nu must lie in (-1, 0.5), got %g", stress.ErrInvalidParameters, p.Nu)
	case math.IsNaN(p.Pa) || p.Pa <= 0:
		return fmt.Errorf("%w: p_a must be positive, got %g", stress.ErrInvalidParameters, p.Pa)
	case math.IsNaN(p.M) || math.IsNaN(p.N):
		return fmt.Errorf("%w: exponents must be finite, got m=%g n=%g", stress.ErrInvalidParameters, p.M, p.N)
	}
	return nil
}

// K evaluates the bulk modulus at mean stress pm: Kref (pm/pa)^m.
// Only defined for pm > 0.
func (p Params) K(pm float64) float64 {
	return p.Kref() * math.Pow(pm/p.Pa, p.M)
}

// G evaluates the shear modulus at mean stress pm: Gref (pm/pa)^n.
// Only defined for pm > 0.
func (p Params) G(pm float64) float64 {
	return p.Gref * math.Pow(pm/p.Pa, p.N)
}
