package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid liveness check settings
	// (for example, an empty allowed host list).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
