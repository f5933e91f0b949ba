package config

import (
	"sort"

	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

// Scenario presets pair a material preset with a canonical loading.
var presets = map[string]func() *Config{
	// The course validation case: m=1 bulk law, n=0.5 shear law, one macro
	// increment integrated with 10000 sub-steps.
	"validation": DefaultConfig,

	// Drained isotropic compression of dense sand, ten equal increments.
	"isotropic-compression": func() *Config {
		mat, _ := material.Preset("dense-sand")
		path := make([]stress.Increment, 10)
		for i := range path {
			path[i] = stress.Increment{EpsV: 0.001}
		}
		return &Config{
			Material: mat,
			Initial:  stress.State{P: 50},
			SubSteps: 1000,
			Path:     path,
		}
	},

	// Constant-p shearing of stiff clay.
	"constant-p-shear": func() *Config {
		mat, _ := material.Preset("stiff-clay")
		path := make([]stress.Increment, 20)
		for i := range path {
			path[i] = stress.Increment{EpsQ: 0.0005}
		}
		return &Config{
			Material: mat,
			Initial:  stress.State{P: 200},
			SubSteps: 1000,
			Path:     path,
		}
	},
}

// GetPreset returns a named scenario, or nil when unknown.
func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns the scenario names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
