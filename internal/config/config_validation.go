// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// minKeyHashIterations is the lowest PBKDF2 cost accepted at startup.
const minKeyHashIterations = 1000

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.KeyHashIterations < minKeyHashIterations {
		return fmt.Errorf("%w: key hash iterations must be at least %d", ErrInvalidAppConfigs, minKeyHashIterations)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.URLCheckRetries < 0 {
		return fmt.Errorf("%w: negative url check retries", ErrInvalidAdapterConfigs)
	}

	if len(cfg.Adapter.AllowedVideoHosts) == 0 {
		return fmt.Errorf("%w: no allowed video hosts", ErrInvalidAdapterConfigs)
	}

	return nil
}
