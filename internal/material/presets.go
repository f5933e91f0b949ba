package material

import "sort"

// Atmospheric pressure in kPa, the customary normalisation for power-law
// soil moduli.
const StandardPa = 101.325

// presets are typical parameter sets for common soils. Moduli in kPa.
var presets = map[string]Params{
	// benchmark matches the course validation scenario: constant-Poisson
	// bulk law (m=1) with a square-root shear law.
	"benchmark": {Gref: 80000, Nu: 0.3, M: 1, N: 0.5, Pa: StandardPa},

	"dense-sand": {Gref: 110000, Nu: 0.25, M: 0.5, N: 0.5, Pa: StandardPa},
	"loose-sand": {Gref: 45000, Nu: 0.3, M: 0.6, N: 0.6, Pa: StandardPa},
	"stiff-clay": {Gref: 30000, Nu: 0.35, M: 1, N: 1, Pa: StandardPa},
}

// Preset returns a named parameter set.
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
