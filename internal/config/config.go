// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the record service.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Log     Log     `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML file merged on
	// top of every other source. Env: CONFIG, flags: -c / -config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds authentication settings.
type App struct {
	// TokenSignKey signs and verifies access tokens. Authentication is
	// enforced only when it is set.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"beichen-observer"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// AdminEmail and AdminPassword describe the account upserted at start.
	// Env: APP_ADMIN_EMAIL, APP_ADMIN_PASSWORD
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// AuthEnabled reports whether bearer tokens are required on /api routes.
func (a App) AuthEnabled() bool {
	return a.TokenSignKey != ""
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" envDefault:"10"`
}

// Server holds network and timeout settings of the HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8891"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level name.
	// Env: LOG_LEVEL (server), BEICHEN_LOG_LEVEL (client)
	Level string `env:"LEVEL" envDefault:"info"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder("", serverFileConfig).
		withDotEnv().
		withEnv().
		withFlags(func() (*StructuredConfig, error) { return ParseFlags(args) }).
		withFile(func(cfg *StructuredConfig) string { return cfg.ConfigFilePath }).
		build((*StructuredConfig).validate)
}
