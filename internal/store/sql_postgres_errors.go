package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells transient database failures apart from
// failures caused by the request itself.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// retryableClasses are SQLSTATE classes whose every code is transient:
// connection exceptions (08), transaction rollbacks such as serialization
// failures and deadlocks (40) and operator intervention (57).
var retryableClasses = map[string]struct{}{
	"08": {},
	"40": {},
	"57": {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors
// returned by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] only for PostgreSQL errors of a transient
// SQLSTATE class. Anything else, nil included, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies pgErr by the class of its SQLSTATE code.
// Query cancellation (57014) is the exception in class 57: the statement
// timed out and repeating it is unlikely to help.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if pgErr == nil || len(pgErr.Code) < 2 {
		return NonRetryable
	}
	if pgErr.Code == pgerrcode.QueryCanceled {
		return NonRetryable
	}
	if _, ok := retryableClasses[pgErr.Code[:2]]; ok {
		return Retryable
	}
	return NonRetryable
}

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation and isForeignKeyViolation map constraint failures onto
// the domain conflict and reference errors.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return postgresError(err) == pgerrcode.ForeignKeyViolation
}
