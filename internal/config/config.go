// Package config loads settings from the environment and an optional .env
// file. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/abhisek/wordguess/internal/llm"
	"github.com/abhisek/wordguess/internal/words"
)

// Prefix is prepended to every variable name.
const Prefix = "WORDGUESS_"

type Config struct {
	// Words selects the word source; see words.Open.
	Words string `env:"WORDS" envDefault:"Lexicon.txt"`

	// Seed fixes word selection and hint letters. Zero picks a random seed.
	Seed uint64 `env:"SEED"`

	// Classic plays with unvalidated input and no guess history.
	Classic bool `env:"CLASSIC"`

	// Hints per game. Ignored under classic rules.
	Hints int `env:"HINTS" envDefault:"1"`

	// DB overrides the SQLite database path.
	DB string `env:"DB"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`

	LLM llm.Config
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then parses it. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil. The LLM provider falls back to whichever standard vendor
// API key is set.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix, Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LLM, _ = cfg.LLM.Discover(environ)
	if cfg.Words == "" {
		cfg.Words = words.DefaultPath
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Hints < 0 {
		return fmt.Errorf("hints must not be negative, got %d", c.Hints)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
