package storage

import (
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorInfo exposes the metadata a driver attached to a database error.
// Each accessor returns "" when the driver could not report the value.
type ErrorInfo interface {
	ColumnName() string
	ConstraintName() string
	TableName() string
}

// Origin derives the field responsible for a constraint failure.
//
// A column name wins when present. Otherwise the constraint name is used,
// reduced to its middle part when it follows the <table>_<field>_key naming
// convention (also _fkey and _pkey). It returns "" when nothing identifies
// the field.
func Origin(info ErrorInfo) string {
	if info == nil {
		return ""
	}
	if column := info.ColumnName(); column != "" {
		return column
	}
	constraint := info.ConstraintName()
	if constraint == "" {
		return ""
	}
	table := info.TableName()
	if table == "" {
		return constraint
	}
	// The table name is used unescaped; a name that does not compile
	// leaves the constraint as reported.
	re, err := regexp.Compile(table + `_(.+)_(?:key|fkey|pkey)`)
	if err != nil {
		return constraint
	}
	if m := re.FindStringSubmatch(constraint); m != nil {
		return m[1]
	}
	return constraint
}

// Info is a plain ErrorInfo for drivers without an adapter.
type Info struct {
	Column     string
	Constraint string
	Table      string
}

func (i Info) ColumnName() string     { return i.Column }
func (i Info) ConstraintName() string { return i.Constraint }
func (i Info) TableName() string      { return i.Table }

type pgErrorInfo struct{ err *pgconn.PgError }

// PgErrorInfo adapts a pgx error.
func PgErrorInfo(err *pgconn.PgError) ErrorInfo { return pgErrorInfo{err: err} }

func (i pgErrorInfo) ColumnName() string     { return i.err.ColumnName }
func (i pgErrorInfo) ConstraintName() string { return i.err.ConstraintName }
func (i pgErrorInfo) TableName() string      { return i.err.TableName }

type pqErrorInfo struct{ err *pq.Error }

// PqErrorInfo adapts a lib/pq error.
func PqErrorInfo(err *pq.Error) ErrorInfo { return pqErrorInfo{err: err} }

func (i pqErrorInfo) ColumnName() string     { return i.err.Column }
func (i pqErrorInfo) ConstraintName() string { return i.err.Constraint }
func (i pqErrorInfo) TableName() string      { return i.err.Table }
