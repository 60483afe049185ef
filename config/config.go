// Package config loads application settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the application reads.
type Config struct {
	// APIURL is the base address of the remote task API.
	APIURL string `env:"TASKBOARD_API_URL" envDefault:"http://localhost:8082/api/v1"`
	// ListenAddr is where the dashboard UI is served.
	ListenAddr string `env:"TASKBOARD_LISTEN_ADDR" envDefault:"localhost:3000"`
	// CredentialsDB is the sqlite file persisting the bearer credential.
	CredentialsDB string `env:"TASKBOARD_CREDENTIALS_DB" envDefault:"./taskboard.db"`
	// Environment is "development" or "production".
	Environment string `env:"TASKBOARD_ENV" envDefault:"development"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Production reports whether the app runs with production settings.
func (c Config) Production() bool {
	return c.Environment == "production"
}
