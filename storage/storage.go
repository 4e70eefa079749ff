// Package storage classifies relational storage failures into JSON errors.
//
// It understands pgx and lib/pq driver errors, gorm's translated sentinels,
// database/sql's ErrNoRows, and its own DatabaseError for any other driver
// that can fill in an ErrorInfo.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	jsonerrors "github.com/blackwell-systems/json-errors"
)

// ErrNotFound is returned by repositories when a queried row doesn't exist.
var ErrNotFound = errors.New("storage: not found")

// DatabaseErrorKind classifies a failure the database itself reported.
type DatabaseErrorKind int

const (
	UnknownDatabaseError DatabaseErrorKind = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
	SerializationFailure
)

func (k DatabaseErrorKind) String() string {
	switch k {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case CheckViolation:
		return "check_violation"
	case NotNullViolation:
		return "not_null_violation"
	case SerializationFailure:
		return "serialization_failure"
	default:
		return "unknown"
	}
}

// DatabaseError is a failure reported by the database, with whatever
// metadata the driver exposed. Info may be nil.
type DatabaseError struct {
	Kind DatabaseErrorKind
	Info ErrorInfo
	Err  error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("storage: %s", e.Kind)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

// AsDatabaseError extracts a DatabaseError from err.
// Driver errors are converted on the fly, preferring the ones that carry
// constraint metadata over gorm's bare sentinels.
func AsDatabaseError(err error) (*DatabaseError, bool) {
	var de *DatabaseError
	if errors.As(err, &de) {
		return de, true
	}
	if pe, ok := AsPgError(err); ok {
		return &DatabaseError{Kind: KindFromSQLState(pe.Code), Info: PgErrorInfo(pe), Err: err}, true
	}
	if pe, ok := AsPqError(err); ok {
		return &DatabaseError{Kind: KindFromSQLState(string(pe.Code)), Info: PqErrorInfo(pe), Err: err}, true
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &DatabaseError{Kind: UniqueViolation, Err: err}, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &DatabaseError{Kind: ForeignKeyViolation, Err: err}, true
	}
	return nil, false
}

// Classify converts a storage failure into a JSON error. It returns nil
// for a nil error.
//
//	not found              -> 404 "Not found"
//	unique violation       -> 422 "<field> already exists"
//	foreign key violation  -> 422 "<field> violates foreign key"
//	anything else          -> 500 "Database error: <raw error>"
func Classify(err error) *jsonerrors.JSONError {
	if err == nil {
		return nil
	}

	if IsNotFound(err) {
		return jsonerrors.Wrap(jsonerrors.KindNotFound, http.StatusNotFound, "Not found", err)
	}

	if de, ok := AsDatabaseError(err); ok {
		switch de.Kind {
		case UniqueViolation:
			return jsonerrors.Wrap(jsonerrors.KindUniqueViolation, http.StatusUnprocessableEntity,
				jsonerrors.Describe(Origin(de.Info), "already exists"), err)
		case ForeignKeyViolation:
			return jsonerrors.Wrap(jsonerrors.KindForeignKeyViolation, http.StatusUnprocessableEntity,
				jsonerrors.Describe(Origin(de.Info), "violates foreign key"), err)
		}
	}

	return jsonerrors.Wrap(jsonerrors.KindStorage, http.StatusInternalServerError,
		jsonerrors.Describe("Database error:", fmt.Sprintf("%+v", err)), err)
}
