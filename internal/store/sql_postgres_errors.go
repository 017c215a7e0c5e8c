package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification is the dialect-neutral result of
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers every error without a domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique index rejected the write.
	UniqueViolation

	// ForeignKeyViolation means a referenced row does not exist.
	ForeignKeyViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	default:
		return Unclassified
	}
}
