// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom is parseEnv over an explicit environment. A nil environ reads
// the process environment.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
