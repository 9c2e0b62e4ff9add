// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/eduplay/eduplay/internal/memory"
	"github.com/eduplay/eduplay/internal/orchestrator"
	"github.com/eduplay/eduplay/internal/speech"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath overrides the database location. Empty means the XDG default.
	DBPath string `env:"EDUPLAY_DB"`

	// LogFile overrides the log location. Empty means the XDG default.
	LogFile  string `env:"EDUPLAY_LOG_FILE"`
	LogLevel string `env:"EDUPLAY_LOG_LEVEL"`

	// TimeUnit is the wall-clock length of one game time-unit.
	TimeUnit time.Duration `env:"EDUPLAY_TIME_UNIT"`

	// PairCount is the number of pairs on a memory board (1..12).
	PairCount int `env:"EDUPLAY_PAIR_COUNT"`

	// Seed fixes the random source. Zero picks a random seed.
	Seed int64 `env:"EDUPLAY_SEED"`

	Speech        bool    `env:"EDUPLAY_SPEECH"`
	SpeechRate    float64 `env:"EDUPLAY_SPEECH_RATE"`
	SpeechCommand string  `env:"EDUPLAY_SPEECH_COMMAND"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		TimeUnit:   time.Second,
		PairCount:  memory.DefaultPairs,
		Speech:     true,
		SpeechRate: speech.DefaultRate,
	}
}

// Load reads an optional .env file, applies environment overrides on top
// of the defaults and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.TimeUnit <= 0 {
		errs = append(errs, fmt.Errorf("EDUPLAY_TIME_UNIT must be positive, got %s", c.TimeUnit))
	}
	if c.PairCount < 1 || c.PairCount > memory.MaxPairs {
		errs = append(errs, fmt.Errorf("EDUPLAY_PAIR_COUNT must be in 1..%d, got %d", memory.MaxPairs, c.PairCount))
	}
	if c.SpeechRate <= 0 || c.SpeechRate > 10 {
		errs = append(errs, fmt.Errorf("EDUPLAY_SPEECH_RATE must be in (0, 10], got %g", c.SpeechRate))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("EDUPLAY_LOG_LEVEL: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Games returns the engine parameters for the orchestrator.
func (c Config) Games() orchestrator.Config {
	return orchestrator.Config{
		TimeUnit:   c.TimeUnit,
		PairCount:  c.PairCount,
		SpeechRate: c.SpeechRate,
	}
}
