package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3
// using the extended result codes.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	default:
		return Unclassified
	}
}
