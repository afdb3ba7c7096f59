// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when one exists; real environment variables
always win over the file.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, token service, cookie) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Abdulmajid-Alhaj/Code2Lead/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Code2Lead API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	ClientURL   string `env:"CLIENT_URL"   envDefault:"http://localhost:3000"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis), used for login attempt tracking
	RedisURL string `env:"REDIS_URL,required"`

	// Session token signing
	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTExpire time.Duration `env:"JWT_EXPIRE" envDefault:"168h"`

	// Password hashing
	BcryptCost      int `env:"BCRYPT_COST"      envDefault:"12"`
	HashConcurrency int `env:"HASH_CONCURRENCY" envDefault:"0"`

	// Login lockout
	LoginMaxAttempts  int           `env:"LOGIN_MAX_ATTEMPTS"  envDefault:"5"`
	LoginLockDuration time.Duration `env:"LOGIN_LOCK_DURATION" envDefault:"2h"`

	// Session cookie
	CookieName       string `env:"COOKIE_NAME"         envDefault:"token"`
	CookieSecure     bool   `env:"COOKIE_SECURE"       envDefault:"false"`
	CookieSameSite   string `env:"COOKIE_SAMESITE"`
	CookieDomain     string `env:"COOKIE_DOMAIN"`
	CookieMaxAgeDays int    `env:"COOKIE_MAX_AGE_DAYS" envDefault:"7"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	return Parse()
}

// Parse maps the current process environment onto a [Config] without touching .env files.
func Parse() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.HashConcurrency <= 0 {
		cfg.HashConcurrency = runtime.NumCPU()
	}

	if cfg.JWTExpire <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRE must be positive, got %s", cfg.JWTExpire)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the client URL followed by any comma-separated EXTRA_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	return append([]string{c.ClientURL}, query.StringSlice(c.ExtraOrigins)...)
}

// # Session Cookie

// CookieSecureFlag reports whether the session cookie must only travel over HTTPS.
func (c *Config) CookieSecureFlag() bool {
	return c.CookieSecure || c.IsProduction()
}

// CookieSameSiteMode resolves COOKIE_SAMESITE. Production defaults to None so a
// separately hosted client can send the cookie; everything else defaults to Lax.
func (c *Config) CookieSameSiteMode() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	}

	if c.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// CookieMaxAge is the lifetime of the session cookie.
func (c *Config) CookieMaxAge() time.Duration {
	return time.Duration(c.CookieMaxAgeDays) * 24 * time.Hour
}
