package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/abhisek/sequences/internal/questiongen"
)

// Config holds runtime settings. Values come from the environment (and an
// optional .env file) and may be overridden by CLI flags.
type Config struct {
	// Seed fixes the question generator's random source. 0 means random.
	Seed uint64 `env:"SEQUENCES_SEED" envDefault:"0"`

	// PrimeRule is "prime" for true primality or "odd" for the legacy
	// odd-run scoring of PRIME questions.
	PrimeRule string `env:"SEQUENCES_PRIME_RULE" envDefault:"prime"`

	// LogFile receives structured logs. Empty disables logging.
	LogFile string `env:"SEQUENCES_LOG_FILE"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"SEQUENCES_LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if present, then parses the environment. It does not
// validate; callers apply overrides first and then call Validate.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := questiongen.ParsePrimeRule(c.PrimeRule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// GeneratorConfig returns the question generator settings. Call Validate
// first; an invalid rule falls back to true primality.
func (c Config) GeneratorConfig() questiongen.Config {
	rule, err := questiongen.ParsePrimeRule(c.PrimeRule)
	if err != nil {
		rule = questiongen.PrimeRuleTrue
	}
	return questiongen.Config{PrimeRule: rule}
}
