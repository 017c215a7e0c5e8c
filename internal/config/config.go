// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// dashcam-catalog server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// API key hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the outbound video URL liveness check.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// KeyHashIterations is the PBKDF2 iteration count used when hashing
	// newly issued API keys.
	// Env: APP_KEY_HASH_ITERATIONS
	KeyHashIterations int `env:"KEY_HASH_ITERATIONS"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver: [DriverPostgres] or [DriverSQLite].
	// When empty it is derived from DSN.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the PostgreSQL connection string or the SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS origin allow-list.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Adapter holds configuration for the video URL liveness check.
type Adapter struct {
	// URLCheckTimeout bounds a single liveness request.
	// Env: ADAPTER_URL_CHECK_TIMEOUT
	URLCheckTimeout time.Duration `env:"URL_CHECK_TIMEOUT"`

	// URLCheckRetries is the number of extra attempts after a failed check.
	// Env: ADAPTER_URL_CHECK_RETRIES
	URLCheckRetries int `env:"URL_CHECK_RETRIES"`

	// URLCheckDisabled turns the liveness check off (offline deployments).
	// Env: ADAPTER_URL_CHECK_DISABLED
	URLCheckDisabled bool `env:"URL_CHECK_DISABLED"`

	// AllowedVideoHosts lists the hosts a video URL may point at.
	// Env: ADAPTER_ALLOWED_VIDEO_HOSTS (comma separated)
	AllowedVideoHosts []string `env:"ALLOWED_VIDEO_HOSTS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are merged with dario.cat/mergo without override,
// so for every field the first non-zero value wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first and never overrides real variables)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
