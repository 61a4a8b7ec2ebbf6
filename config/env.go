package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is runtime configuration taken from the environment rather than
// the balance sheet.
type Env struct {
	// BalancePath points at a YAML balance file; empty uses defaults.
	BalancePath string `env:"SUSHI_BALANCE"`
	// Seed fixes the random source for reproducible runs; 0 seeds
	// from the clock.
	Seed int64 `env:"SUSHI_SEED"`
	// Mute disables audio output.
	Mute bool `env:"SUSHI_MUTE"`
}

// ParseEnv loads runtime configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
