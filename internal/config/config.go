// Package config loads process configuration from the environment.
//
// A `.env` file in the working directory is loaded first (development
// convenience; missing files are ignored), then variables are parsed into
// Config with their documented defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Picker modes for WORDLE_PICKER.
const (
	PickerRandom = "random"
	PickerList   = "list"
	PickerDaily  = "daily"
)

// Config is shared by the handle API and the terminal client.
type Config struct {
	Addr         string        `env:"WORDLE_ADDR" envDefault:"127.0.0.1:5175"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	HandleSecret string        `env:"WORDLE_HANDLE_SECRET" envDefault:"dev_secret_change_me"`
	HandleTTL    time.Duration `env:"WORDLE_HANDLE_TTL" envDefault:"24h"`
	WordsFile    string        `env:"WORDS_FILE"`
	Picker       string        `env:"WORDLE_PICKER" envDefault:"random"`
	DailySalt    string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	AttemptLimit int           `env:"WORDLE_ATTEMPT_LIMIT" envDefault:"6"`
}

// Load reads `.env` (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	switch c.Picker {
	case PickerRandom, PickerList, PickerDaily:
	default:
		return fmt.Errorf("config: unknown WORDLE_PICKER %q (want random, list or daily)", c.Picker)
	}
	if c.AttemptLimit < 1 {
		return fmt.Errorf("config: WORDLE_ATTEMPT_LIMIT must be at least 1, got %d", c.AttemptLimit)
	}
	return nil
}
