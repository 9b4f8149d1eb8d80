// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Logging holds settings shared by every command.
type Logging struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// SeedConfig configures the seeder.
type SeedConfig struct {
	Logging

	// Document store connection string; the scheme selects the backend
	// (postgres://, redis://, memory://).
	DatabaseURL string `env:"DATABASE_URL"`

	// Logical database inside the store.
	DBName string `env:"DB_NAME"`

	// Upper bound for the whole seeding run.
	Timeout time.Duration `env:"SEED_TIMEOUT" envDefault:"60s"`
}

// VerifyConfig configures the API verifier.
type VerifyConfig struct {
	Logging

	// Base URL of the quotes API, including the /api prefix.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8001/api"`

	// HTTP client timeout; zero keeps the client default of no timeout.
	Timeout time.Duration `env:"VERIFY_TIMEOUT" envDefault:"0s"`
}

// ErrMissing is returned by Validate when a required setting is empty.
var ErrMissing = errors.New("required setting is missing")

// LoadSeed parses environment variables into a SeedConfig.
// Required settings may still be supplied by flags, so call Validate
// once flags have been applied.
func LoadSeed() (*SeedConfig, error) {
	cfg := &SeedConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate returns an error if DATABASE_URL or DB_NAME is empty.
func (c *SeedConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.DatabaseURL) == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if strings.TrimSpace(c.DBName) == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}

// LoadVerify parses environment variables into a VerifyConfig.
func LoadVerify() (*VerifyConfig, error) {
	cfg := &VerifyConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.APIBaseURL = NormalizeBaseURL(cfg.APIBaseURL)
	return cfg, nil
}

// NormalizeBaseURL trims whitespace and any trailing slash.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}
