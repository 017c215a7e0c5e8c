// Package migrations embeds the versioned schema of the catalogue and applies
// it with goose. Every supported SQL dialect keeps its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":     {goose: "pgx", dir: "postgres"},
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
}

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Migrate applies all pending migrations for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
