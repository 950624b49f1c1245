// Package config loads solver-level knobs from YAML, in the same
// "plain struct with yaml tags plus a Default() constructor" shape the
// teacher's internal/config/config.go uses for its much larger
// configuration surface.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the ambient knobs the CLI and search driver read. None of
// it affects solver semantics — timeouts and model caps are imposed by
// the driver loop, never intrinsic to the core stepping rules — it only
// shapes how much work a run does before giving up and how loud it is
// while doing it.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// MaxModels caps the number of saturated models the search driver
	// collects before stopping early. 0 means unbounded.
	MaxModels int `yaml:"max_models"`

	// TimeoutSeconds bounds wall-clock search time. 0 means unbounded.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Trace enables per-step diagnostic logging in the search driver.
	Trace bool `yaml:"trace"`
}

// Default returns the configuration a bare CLI invocation runs with.
func Default() Config {
	return Config{
		LogLevel:       "info",
		MaxModels:      0,
		TimeoutSeconds: 0,
		Trace:          false,
	}
}

// Load reads a YAML config file, starting from Default() so a partial
// file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
