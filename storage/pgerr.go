package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
	// ForeignKeyViolationCode indicates a foreign key violation.
	ForeignKeyViolationCode = "23503"
	// CheckViolationCode indicates a check constraint violation.
	CheckViolationCode = "23514"
	// NotNullViolationCode indicates a not-null constraint violation.
	NotNullViolationCode = "23502"
	// SerializationFailureCode indicates a transaction serialization failure.
	SerializationFailureCode = "40001"
)

// KindFromSQLState maps a Postgres SQLSTATE onto a DatabaseErrorKind.
func KindFromSQLState(code string) DatabaseErrorKind {
	switch code {
	case UniqueViolationCode:
		return UniqueViolation
	case ForeignKeyViolationCode:
		return ForeignKeyViolation
	case CheckViolationCode:
		return CheckViolation
	case NotNullViolationCode:
		return NotNullViolation
	case SerializationFailureCode:
		return SerializationFailure
	default:
		return UnknownDatabaseError
	}
}

// AsPgError finds a pgx server error in err's chain.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsPqError finds a lib/pq server error in err's chain.
func AsPqError(err error) (*pq.Error, bool) {
	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
