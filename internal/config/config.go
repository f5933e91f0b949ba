// Package config loads and saves scenario files for the CLI driver. The
// core packages never read files; everything here is glue around plain
// structs.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/geosim/internal/material"
	"github.com/san-kum/geosim/internal/stress"
)

const (
	DefaultSubSteps = 10000
	DefaultP0       = 100.0
)

// Config describes one scenario: material, starting state, and either a
// single macro increment or a multi-increment load path.
type Config struct {
	Material material.Params  `yaml:"material"`
	Initial  stress.State     `yaml:"initial"`
	Step     stress.Increment `yaml:"step"`
	SubSteps int              `yaml:"sub_steps"`

	// Path, when non-empty, takes precedence over Step.
	Path []stress.Increment `yaml:"path"`
}

func DefaultConfig() *Config {
	mat, _ := material.Preset("benchmark")
	return &Config{
		Material: mat,
		Initial:  stress.State{P: DefaultP0},
		Step:     stress.Increment{EpsV: 0.01, EpsQ: 0.02},
		SubSteps: DefaultSubSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Increments returns the load path to run: the explicit path if present,
// otherwise the single macro step.
func (c *Config) Increments() []stress.Increment {
	if len(c.Path) > 0 {
		return c.Path
	}
	return []stress.Increment{c.Step}
}
