// Package config loads sleepsim settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the simulator
type Config struct {
	RosterPath   string        `env:"SLEEPSIM_ROSTER_PATH" envDefault:"player_data.json"`
	Seed         uint64        `env:"SLEEPSIM_SEED"` // 0 picks a random seed
	DayPause     time.Duration `env:"SLEEPSIM_DAY_PAUSE" envDefault:"1s"`
	BatchPlayers int           `env:"SLEEPSIM_BATCH_PLAYERS" envDefault:"100"`
	BatchDays    int           `env:"SLEEPSIM_BATCH_DAYS" envDefault:"100"`
	BatchWorkers int           `env:"SLEEPSIM_BATCH_WORKERS" envDefault:"1"`
	LedgerPath   string        `env:"SLEEPSIM_LEDGER_PATH"`
	LogLevel     string        `env:"SLEEPSIM_LOG_LEVEL" envDefault:"info"`
	LogFile      string        `env:"SLEEPSIM_LOG_FILE" envDefault:"sleepsim.log"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the simulator cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.BatchPlayers <= 0 {
		errs = append(errs, fmt.Errorf("batch players must be positive, got %d", c.BatchPlayers))
	}
	if c.BatchDays <= 0 {
		errs = append(errs, fmt.Errorf("batch days must be positive, got %d", c.BatchDays))
	}
	if c.BatchWorkers <= 0 {
		errs = append(errs, fmt.Errorf("batch workers must be positive, got %d", c.BatchWorkers))
	}
	if c.DayPause < 0 {
		errs = append(errs, fmt.Errorf("day pause must not be negative, got %s", c.DayPause))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
