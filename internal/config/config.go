// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the gateway.
// It is populated by merging values from a .env file and environment
// variables, command-line flags, and an optional YAML/JSON config file.
//
// Struct tags:
//   - envPrefix/env: caarlos0/env lookups;
//   - koanf: keys of the config file.
type StructuredConfig struct {
	// App holds process identity and logging settings.
	App App `envPrefix:"APP_" koanf:"app"`

	// Auth holds bearer-token verification settings.
	Auth Auth `envPrefix:"AUTH_" koanf:"auth"`

	// RateLimit holds the partner-token fixed-window limits.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_" koanf:"rate_limit"`

	// Storage holds configuration of the relational store.
	Storage Storage `envPrefix:"STORAGE_" koanf:"storage"`

	// Server holds network address and timeout settings of the HTTP server.
	Server Server `envPrefix:"SERVER_" koanf:"server"`

	// Telemetry holds OpenTelemetry tracing settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_" koanf:"telemetry"`

	// ConfigFilePath is the optional path to a YAML or JSON config file,
	// populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" koanf:"-"`
}

// App holds application-level settings.
type App struct {
	// Name is the "role" field of every log line.
	// Env: APP_NAME
	Name string `env:"NAME" koanf:"name"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" koanf:"log_level"`

	// Version is the semantic version of the running gateway.
	// Env: APP_VERSION
	Version string `env:"VERSION" koanf:"version"`
}

// Auth holds the issuer/audience policy and the published key set location
// used to verify bearer tokens.
type Auth struct {
	// Issuer is the expected "iss" claim.
	// Env: AUTH_ISSUER
	Issuer string `env:"ISSUER" koanf:"issuer"`

	// Audience is the expected "aud" claim.
	// Env: AUTH_AUDIENCE
	Audience string `env:"AUDIENCE" koanf:"audience"`

	// JWKSURL is the absolute http(s) URL of the issuer's JWKS document.
	// Env: AUTH_JWKS_URL
	JWKSURL string `env:"JWKS_URL" koanf:"jwks_url"`

	// JWKSCacheTTL is how long fetched keys are trusted before a refetch.
	// Env: AUTH_JWKS_CACHE_TTL
	JWKSCacheTTL time.Duration `env:"JWKS_CACHE_TTL" koanf:"jwks_cache_ttl"`

	// JWKSFetchTimeout bounds a single JWKS fetch.
	// Env: AUTH_JWKS_FETCH_TIMEOUT
	JWKSFetchTimeout time.Duration `env:"JWKS_FETCH_TIMEOUT" koanf:"jwks_fetch_timeout"`
}

// RateLimit configures the fixed-window limiter keyed by partner token.
type RateLimit struct {
	// Limit is the number of requests allowed per window.
	// Env: RATE_LIMIT_LIMIT
	Limit int `env:"LIMIT" koanf:"limit"`

	// Window is the window length.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" koanf:"window"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" koanf:"db"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" koanf:"dsn"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" koanf:"max_open_conns"`

	// Migrate applies the embedded schema at startup when true.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE" koanf:"migrate"`
}

// Server holds network and timeout settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" koanf:"http_address"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" koanf:"shutdown_timeout"`
}

// Telemetry configures OpenTelemetry tracing.
type Telemetry struct {
	// Enabled turns on the stdout span exporter.
	// Env: TELEMETRY_ENABLED
	Enabled bool `env:"ENABLED" koanf:"enabled"`

	// ServiceName is the service.name resource attribute.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME" koanf:"service_name"`
}

// defaults holds the values used for fields no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     "go-tenant-gateway",
			LogLevel: "info",
		},
		Auth: Auth{
			JWKSCacheTTL:     10 * time.Minute,
			JWKSFetchTimeout: 5 * time.Second,
		},
		RateLimit: RateLimit{
			Limit:  60,
			Window: time.Minute,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Telemetry: Telemetry{
			ServiceName: "go-tenant-gateway",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the gateway configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Fields no source sets receive their defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
