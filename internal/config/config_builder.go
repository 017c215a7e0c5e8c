package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if config.Storage.DB.Driver == "" {
		config.Storage.DB.Driver = driverFromDSN(config.Storage.DB.DSN)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withDotEnv loads variables from the given files (".env" by default) into
// the process environment. Variables already set are left untouched and a
// missing file is not an error.
func (b *configBuilder) withDotEnv(paths ...string) *configBuilder {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
		}
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func driverFromDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
