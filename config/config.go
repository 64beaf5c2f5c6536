// Package config defines the settings of the swiss round planner
// and how they are loaded.
package config

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Settings contains the planner configuration.
type Settings struct {
	// MinGroupSize is the size that score groups are merged up to.
	MinGroupSize int `koanf:"min_group_size"`

	// MissingScore is the policy for players without a score:
	// "absent" or "default".
	MissingScore string `koanf:"missing_score"`

	// Strategies lists the pairers that compete for each round,
	// e.g. "slide", "folded", "adjacent".
	Strategies []string `koanf:"strategies"`

	// Seeding orders the entries before grouping:
	// "single", "random" or "tiered".
	Seeding string `koanf:"seeding"`

	// Seed is the random seed for the random and tiered seedings.
	Seed int64 `koanf:"seed"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

var (
	missingScorePolicies = []string{"absent", "default"}
	seedingModes         = []string{"single", "random", "tiered"}
)

// New returns the default Settings.
func New() *Settings {
	return &Settings{
		MinGroupSize: 4,
		MissingScore: "absent",
		Strategies:   []string{"slide", "folded", "adjacent"},
		Seeding:      "single",
		LogLevel:     "info",
	}
}

// Validate reports the first invalid field wrapped in ErrInvalidConfig.
func (s *Settings) Validate() error {
	if s.MinGroupSize < 1 {
		return fmt.Errorf("%w: min_group_size must be positive, got %d", ErrInvalidConfig, s.MinGroupSize)
	}
	if !slices.Contains(missingScorePolicies, s.MissingScore) {
		return fmt.Errorf("%w: missing_score must be one of %v, got %q", ErrInvalidConfig, missingScorePolicies, s.MissingScore)
	}
	if !slices.Contains(seedingModes, s.Seeding) {
		return fmt.Errorf("%w: seeding must be one of %v, got %q", ErrInvalidConfig, seedingModes, s.Seeding)
	}
	if len(s.Strategies) == 0 {
		return fmt.Errorf("%w: strategies must not be empty", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds a production zap logger at the configured level.
func (s *Settings) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
