package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/dashcam-catalog/internal/config"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(sqliteFilePath(cfg.DSN)); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN turns foreign key enforcement on for every connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// sqliteFilePath strips the "file:" scheme and query parameters from dsn.
// In-memory databases yield "".
func sqliteFilePath(dsn string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	return path
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
