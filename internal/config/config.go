package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Dataset  Dataset
	Postgres Postgres
}

type App struct {
	Name           string `env:"APP_NAME" envDefault:"launchdash"`
	Version        string `env:"APP_VERSION" envDefault:"dev"`
	Debug          bool   `env:"DEBUG"`
	LogFieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

// Load reads envFile into the process environment (a missing file is not an
// error) and parses the configuration from it.
func Load(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Dataset.validate(); err != nil {
		return Config{}, fmt.Errorf("dataset: %w", err)
	}

	if config.Dataset.Source == DatasetSourcePostgres && config.Postgres.DSN == "" {
		return Config{}, errors.New("PG_DSN is required for the postgres dataset source")
	}

	return config, nil
}
