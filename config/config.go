// Package config holds the run configuration for the anyof benchmark suite.
//
// The reference scenario constants (N = 50,000,000, target 2, domain [1, 3])
// are defaults, not compile-time fixtures: every knob can be overridden via
// a YAML file or CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownScenario is returned for scenario names outside
	// worst/best/average.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Domain mirrors dataset.Domain for YAML decoding.
type Domain struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config is the full run configuration.
type Config struct {
	// N is the sequence length per scenario.
	N int `yaml:"n"`

	// Seed seeds the injected random source. Runs with equal seeds generate
	// identical data.
	Seed int64 `yaml:"seed"`

	// Target is the value the equality predicate searches for.
	Target int `yaml:"target"`

	// Domain is the inclusive value range for non-target elements.
	Domain Domain `yaml:"domain"`

	// RunsPerK is the best-of-N sample count per candidate fan-out.
	RunsPerK int `yaml:"runs_per_k"`

	// Scenarios lists which placements to benchmark, in order. Valid names:
	// "worst", "best", "average".
	Scenarios []string `yaml:"scenarios"`

	// Output is the path of the textual report file.
	Output string `yaml:"output"`

	// RawOutput, when non-empty, is the path of the gzip JSON-lines dump.
	RawOutput string `yaml:"raw_output"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		N:         50_000_000,
		Seed:      1,
		Target:    2,
		Domain:    Domain{Min: 1, Max: 3},
		RunsPerK:  3,
		Scenarios: []string{"worst", "best", "average"},
		Output:    "results.txt",
	}
}

// Load reads a YAML config file on top of the defaults, so partial files
// only override the keys they mention.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for contract violations.
func (c Config) Validate() error {
	if c.N < 0 {
		return fmt.Errorf("%w: n must not be negative, got %d", ErrInvalidConfig, c.N)
	}
	if c.RunsPerK < 1 {
		return fmt.Errorf("%w: runs_per_k must be >= 1, got %d", ErrInvalidConfig, c.RunsPerK)
	}
	if c.Domain.Min > c.Domain.Max {
		return fmt.Errorf("%w: domain min %d > max %d", ErrInvalidConfig, c.Domain.Min, c.Domain.Max)
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("%w: at least one scenario required", ErrInvalidConfig)
	}
	for _, name := range c.Scenarios {
		switch name {
		case "worst", "best", "average":
		default:
			return fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path required", ErrInvalidConfig)
	}
	return nil
}
