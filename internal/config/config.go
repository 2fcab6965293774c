// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the portal
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// bootstrap credentials, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// optional Redis cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the session revocation cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign session tokens. Required.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DefaultPassword is the temporary password given to users created by an admin.
	DefaultPassword string `env:"DEFAULT_PASSWORD"`

	// AdminEmail and AdminPassword seed the first account of an empty database.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`
}

// Server holds HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing time of one request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds relational database settings.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the connection string. Required.
	DSN string `env:"DATABASE_URI"`
}

// Cache holds Redis settings. An empty address disables the cache.
type Cache struct {
	RedisAddress string `env:"REDIS_ADDRESS"`
}

// Workers holds background job settings.
type Workers struct {
	// ReminderSchedule is the cron spec of the recurring reminder job.
	ReminderSchedule string `env:"REMINDER_SCHEDULE"`
}

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "zivi-portal",
			TokenDuration:   12 * time.Hour,
			DefaultPassword: "password123",
			AdminEmail:      "admin@zivildienst.ch",
			AdminPassword:   "admin123",
			Version:         "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			ReminderSchedule: "@every 1m",
		},
	}
}

// GetStructuredConfig loads the server configuration from all sources,
// merges and validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
