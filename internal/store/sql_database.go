// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with the dialect-specific pieces repositories
// need: the squirrel builder with the right placeholder format and the
// driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Driver returns the database/sql driver name the connection was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify is nil-safe so repositories built around bare sqlmock
// connections keep working.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
