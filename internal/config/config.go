// Package config loads settings for the graze command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"honnef.co/go/graze"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "graze.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config holds the defaults used by the graze command.
type Config struct {
	// Sides is the number of sides of the fence.
	Sides int `yaml:"sides"`
	// Position is the anchor position along an edge, as a rational
	// ("1/2", "0.25", ...).
	Position string `yaml:"position"`
	// Precision is the number of fractional digits of decimal output.
	Precision int `yaml:"precision"`
	// Format is one of text, yaml or json.
	Format string `yaml:"format"`

	Sweep SweepConfig `yaml:"sweep"`
}

// SweepConfig controls the sweep command.
type SweepConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Sides:     3,
		Position:  "0",
		Precision: 5,
		Format:    FormatText,
		Sweep: SweepConfig{
			Min:     3,
			Max:     20,
			Workers: 4,
		},
	}
}

// Load reads the configuration at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("GRAZE_SIDES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GRAZE_SIDES %q: %w", v, err)
		}
		c.Sides = n
	}
	if v := os.Getenv("GRAZE_POSITION"); v != "" {
		c.Position = v
	}
	if v := os.Getenv("GRAZE_PRECISION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GRAZE_PRECISION %q: %w", v, err)
		}
		c.Precision = n
	}
	if v := os.Getenv("GRAZE_FORMAT"); v != "" {
		c.Format = v
	}
	return nil
}

// Validate reports output settings that no command can work with. Sides and
// position are checked by the computation itself, and sweep settings by
// [SweepConfig.Validate].
func (c *Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// Validate reports a side range or worker count the sweep command cannot
// use.
func (sc SweepConfig) Validate() error {
	if sc.Min < graze.MinSides {
		return fmt.Errorf("sweep.min must be at least %d, got %d", graze.MinSides, sc.Min)
	}
	if sc.Max < sc.Min {
		return fmt.Errorf("sweep.max (%d) is less than sweep.min (%d)", sc.Max, sc.Min)
	}
	if sc.Workers < 1 {
		return fmt.Errorf("sweep.workers must be positive, got %d", sc.Workers)
	}
	return nil
}
