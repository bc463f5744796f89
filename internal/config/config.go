package config

import (
	"fmt"
	"time"

	"github.com/yuhakway/tracker/internal/validation"
)

// Record sources the server can read applications, events and profiles from.
const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
	SourceFixture  = "fixture"
)

// Config holds all application configuration settings.
type Config struct {
	Environment string `envconfig:"ENV" default:"development"`

	HTTPPort        int           `envconfig:"HTTP_PORT" default:"8080"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	BackendURL       string        `envconfig:"BACKEND_URL"`
	BackendAnonKey   string        `envconfig:"BACKEND_ANON_KEY"`
	BackendJWTSecret string        `envconfig:"BACKEND_JWT_SECRET"`
	BackendTimeout   time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`

	Source      string `envconfig:"SOURCE" default:"rest"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	FixtureFile string `envconfig:"FIXTURE_FILE" default:"./fixtures.yaml"`

	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	LoginRateLimit  int           `envconfig:"LOGIN_RATE_LIMIT" default:"10"`
	LoginRateWindow time.Duration `envconfig:"LOGIN_RATE_WINDOW" default:"1m"`

	Locale string `envconfig:"LOCALE" default:"uz"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// IsDevelopment reports whether the server runs in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Validate checks the configuration for invalid or missing values.
// Returns an error describing the first invalid setting found.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if err := validation.ValidateBackendURL(c.BackendURL, c.IsDevelopment()); err != nil {
		return err
	}
	if c.BackendAnonKey == "" {
		return fmt.Errorf("backend anon key cannot be empty")
	}
	if c.BackendJWTSecret == "" {
		return fmt.Errorf("backend JWT secret cannot be empty")
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("backend timeout must be positive: %s", c.BackendTimeout)
	}

	switch c.Source {
	case SourceREST:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database URL is required for source %q", c.Source)
		}
	case SourceFixture:
		if c.FixtureFile == "" {
			return fmt.Errorf("fixture file cannot be empty")
		}
	default:
		return fmt.Errorf("unknown record source: %q", c.Source)
	}

	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("login rate limit must be positive: %d", c.LoginRateLimit)
	}
	if c.LoginRateWindow <= 0 {
		return fmt.Errorf("login rate window must be positive: %s", c.LoginRateWindow)
	}

	if c.Locale != "uz" {
		return fmt.Errorf("unsupported locale: %q", c.Locale)
	}

	return nil
}
