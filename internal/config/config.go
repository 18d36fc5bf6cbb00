// Package config loads settings for the token helper tools. The credential
// generator itself takes no configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type TokenConfig struct {
	SecretKey string        `env:"CREDGEN_SECRET_KEY"`
	TTL       time.Duration `env:"CREDGEN_TOKEN_TTL" envDefault:"5m"`
}

// LoadToken reads the given .env files (".env" when none are named) into the
// environment, then parses TokenConfig from it. A missing default .env is
// ignored; a missing named file is an error. Variables already set in the
// environment win over file contents.
func LoadToken(files ...string) (TokenConfig, error) {
	var cfg TokenConfig

	err := godotenv.Load(files...)
	if err != nil && (len(files) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return cfg, fmt.Errorf("couldn't load env file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TTL <= 0 {
		return cfg, fmt.Errorf("invalid token TTL: %s", cfg.TTL)
	}
	return cfg, nil
}
