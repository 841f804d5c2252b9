// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// Constraint and input failures reported by the database
var (
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrCheckViolation      = errors.New("check violation")
	ErrInvalidInput        = errors.New("invalid input")
)

// classifiers registered by optional drivers (see sqlite3_cgo.go)
var classifiers []func(error) error

// Classify maps a driver error onto one of the sentinel errors above.
// Returns nil when the error is not a recognised constraint or input failure.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{ErrForeignKeyViolation, ErrNotNullViolation, ErrCheckViolation, ErrInvalidInput} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifySQLState(string(pqErr.Code))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return classifySQLiteCode(liteErr.Code(), liteErr.Error())
	}

	for _, classify := range classifiers {
		if kind := classify(err); kind != nil {
			return kind
		}
	}

	return nil
}

// Kind returns a short label for logging a classified error
func Kind(err error) string {
	switch Classify(err) {
	case ErrForeignKeyViolation:
		return "foreign_key"
	case ErrNotNullViolation:
		return "not_null"
	case ErrCheckViolation:
		return "check"
	case ErrInvalidInput:
		return "invalid_input"
	}
	return "internal"
}

// Postgres SQLSTATE codes
func classifySQLState(code string) error {
	switch code {
	case "23503":
		return ErrForeignKeyViolation
	case "23502":
		return ErrNotNullViolation
	case "23514":
		return ErrCheckViolation
	case "22P02", "22007", "22008", "22003":
		return ErrInvalidInput
	}
	return nil
}

// SQLite extended result codes, with the message as a fallback for
// connections that report only the primary code
func classifySQLiteCode(code int, msg string) error {
	switch code {
	case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ErrForeignKeyViolation
	case sqlitelib.SQLITE_CONSTRAINT_NOTNULL:
		return ErrNotNullViolation
	case sqlitelib.SQLITE_CONSTRAINT_CHECK:
		return ErrCheckViolation
	case sqlitelib.SQLITE_MISMATCH:
		return ErrInvalidInput
	}

	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKeyViolation
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrNotNullViolation
	case strings.Contains(msg, "CHECK constraint failed"):
		return ErrCheckViolation
	}
	return nil
}
