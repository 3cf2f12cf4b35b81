package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/acidbase/internal/chem"
)

const (
	DefaultLensRadius = 1.0
	DefaultBarHeight  = 12.0
	DefaultTheme      = "paper"
	DefaultSeed       = 1
)

type Config struct {
	Seed       int64                     `yaml:"seed"`
	Selected   chem.Kind                 `yaml:"selected"`
	LensRadius float64                   `yaml:"lens_radius"`
	BarHeight  float64                   `yaml:"bar_height"`
	Theme      string                    `yaml:"theme"`
	Solutions  map[string]SolutionConfig `yaml:"solutions,omitempty"`
}

type SolutionConfig struct {
	Concentration float64 `yaml:"concentration"`
	Strength      float64 `yaml:"strength,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Seed:       DefaultSeed,
		Selected:   chem.WeakAcid,
		LensRadius: DefaultLensRadius,
		BarHeight:  DefaultBarHeight,
		Theme:      DefaultTheme,
		Solutions:  map[string]SolutionConfig{},
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks every configured solution against the model's domain.
func (c *Config) Validate() error {
	if c.LensRadius <= 0 {
		return fmt.Errorf("lens_radius must be positive, got %f", c.LensRadius)
	}
	if c.BarHeight <= 0 {
		return fmt.Errorf("bar_height must be positive, got %f", c.BarHeight)
	}
	for name := range c.Solutions {
		kind, err := chem.ParseKind(name)
		if err != nil {
			return err
		}
		if err := c.Solution(kind).Validate(); err != nil {
			return fmt.Errorf("solution %s: %w", name, err)
		}
	}
	return nil
}

// Solution returns the configured parameters for kind, falling back to the
// archetype defaults for anything left unset.
func (c *Config) Solution(kind chem.Kind) chem.Solution {
	sol := chem.NewSolution(kind)
	sc, ok := c.Solutions[kind.String()]
	if !ok || kind == chem.Water {
		return sol
	}
	if sc.Concentration != 0 {
		sol.Concentration = sc.Concentration
	}
	if kind.IsWeak() && sc.Strength != 0 {
		sol.Strength = sc.Strength
	}
	return sol
}

// SetSolution records the parameters of sol in the config.
func (c *Config) SetSolution(sol chem.Solution) {
	if c.Solutions == nil {
		c.Solutions = map[string]SolutionConfig{}
	}
	sc := SolutionConfig{Concentration: sol.Concentration}
	if sol.Kind.IsWeak() {
		sc.Strength = sol.Strength
	}
	c.Solutions[sol.Kind.String()] = sc
}

// Set builds the session's solution set from the config.
func (c *Config) Set() (*chem.Set, error) {
	set := chem.NewSet()
	for _, kind := range chem.Kinds() {
		sol := c.Solution(kind)
		if err := set.SetConcentration(kind, sol.Concentration); err != nil {
			return nil, fmt.Errorf("solution %s: %w", kind, err)
		}
		if kind.IsWeak() {
			if err := set.SetStrength(kind, sol.Strength); err != nil {
				return nil, fmt.Errorf("solution %s: %w", kind, err)
			}
		}
	}
	if err := set.Select(c.Selected); err != nil {
		return nil, err
	}
	return set, nil
}
