package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Environment:      "production",
		HTTPPort:         8080,
		HTTPTimeout:      15 * time.Second,
		BackendURL:       "https://abc.supabase.co",
		BackendAnonKey:   "anon",
		BackendJWTSecret: "secret",
		BackendTimeout:   30 * time.Second,
		Source:           SourceREST,
		FixtureFile:      "./fixtures.yaml",
		LoginRateLimit:   10,
		LoginRateWindow:  time.Minute,
		Locale:           "uz",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.HTTPPort = 0 }, wantErr: "invalid HTTP port"},
		{name: "http backend in production", mutate: func(c *Config) { c.BackendURL = "http://localhost:54321" }, wantErr: "invalid backend URL"},
		{name: "http backend in development", mutate: func(c *Config) {
			c.Environment = "development"
			c.BackendURL = "http://localhost:54321"
		}},
		{name: "missing anon key", mutate: func(c *Config) { c.BackendAnonKey = "" }, wantErr: "anon key"},
		{name: "missing jwt secret", mutate: func(c *Config) { c.BackendJWTSecret = "" }, wantErr: "JWT secret"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Source = SourcePostgres }, wantErr: "database URL"},
		{name: "postgres with dsn", mutate: func(c *Config) {
			c.Source = SourcePostgres
			c.DatabaseURL = "postgres://localhost/tracker"
		}},
		{name: "fixture source", mutate: func(c *Config) { c.Source = SourceFixture }},
		{name: "unknown source", mutate: func(c *Config) { c.Source = "mongo" }, wantErr: "unknown record source"},
		{name: "zero rate limit", mutate: func(c *Config) { c.LoginRateLimit = 0 }, wantErr: "rate limit"},
		{name: "unsupported locale", mutate: func(c *Config) { c.Locale = "en" }, wantErr: "unsupported locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRACKER_ENV", "production")
	t.Setenv("TRACKER_BACKEND_URL", "https://abc.supabase.co")
	t.Setenv("TRACKER_BACKEND_ANON_KEY", "anon")
	t.Setenv("TRACKER_BACKEND_JWT_SECRET", "secret")
	t.Setenv("TRACKER_HTTP_PORT", "9090")
	t.Setenv("TRACKER_SOURCE", "fixture")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, SourceFixture, cfg.Source)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "uz", cfg.Locale)
}

func TestLoad_InvalidFails(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRACKER_BACKEND_URL", "")
	t.Setenv("TRACKER_BACKEND_ANON_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
