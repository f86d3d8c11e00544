/*
Package configs is responsible for loading and parsing the application's configuration settings.

Settings are read from operating system environment variables (optionally seeded from a
.env file in the working directory) and cover the running environment, HTTP port,
CORS origins, session handling, password hashing cost, user storage and rate limits.
*/
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"authsite/internal/pkg/randx"
)

const (
	EnvDevelopment = "development"

	SessionBackendCookie = "cookie"
	SessionBackendJWT    = "jwt"

	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// AppConfig contains all configuration parameters required for the application to run.
type AppConfig struct {
	// General Server Settings
	Environment    string  `env:"ENVIRONMENT" envDefault:"development"`
	Port           int     `env:"PORT" envDefault:"8080"`
	MetricsEnabled bool    `env:"METRICS_ENABLED" envDefault:"true"`
	AuthRate       float64 `env:"AUTH_RATE" envDefault:"0.5"`
	AuthBurst      int     `env:"AUTH_BURST" envDefault:"10"`

	// Security Settings
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	SessionSecret  string        `env:"SESSION_SECRET"`
	SessionBackend string        `env:"SESSION_BACKEND" envDefault:"cookie"`
	SessionMaxAge  time.Duration `env:"SESSION_MAX_AGE" envDefault:"24h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`

	// Storage Settings
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	DatabaseDSN string `env:"DATABASE_URL"`
}

// IsDevelopment reports whether the server runs with development defaults.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// LoadConfig reads the application configuration from the environment.
// A .env file is loaded first when present; variables already set in the
// environment take precedence over it.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return Parse()
}

// Parse reads the configuration from environment variables only and validates it.
func Parse() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.Port < 1024 || c.Port > 65535 {
		return fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", c.Port, 1024, 65535)
	}

	if c.SessionSecret == "" {
		if !c.IsDevelopment() {
			return fmt.Errorf("SESSION_SECRET environment variable is required in %s environment for security", c.Environment)
		}
		// Sessions do not survive a restart in development, same as the in-memory users.
		secret, err := randx.SecretKey()
		if err != nil {
			return fmt.Errorf("failed to generate development session secret: %w", err)
		}
		c.SessionSecret = secret
	}

	switch c.SessionBackend {
	case SessionBackendCookie, SessionBackendJWT:
	default:
		return fmt.Errorf("unsupported SESSION_BACKEND %q (want %q or %q)", c.SessionBackend, SessionBackendCookie, SessionBackendJWT)
	}

	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive, got %s", c.SessionMaxAge)
	}

	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST %d is outside the supported range (4-31)", c.BcryptCost)
	}

	switch c.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %q or %q)", c.StoreDriver, StoreDriverMemory, StoreDriverPostgres)
	}

	if c.AuthRate <= 0 || c.AuthBurst <= 0 {
		return fmt.Errorf("AUTH_RATE and AUTH_BURST must be positive")
	}

	return nil
}
