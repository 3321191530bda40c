package store

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed operation may succeed if the
// request is repeated later.
type ErrorClassification int

const (
	// Permanent failures will fail again: bad SQL, constraint violations,
	// unknown errors.
	Permanent ErrorClassification = iota

	// Transient failures come from a lost or refused connection, a server
	// shutting down or a rolled-back transaction.
	Transient
)

// postgresClassifier classifies pgx driver errors.
type postgresClassifier struct{}

// Classify implements [ErrorClassificator].
func (postgresClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Permanent
	}
	if errors.Is(err, driver.ErrBadConn) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return Transient
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Transient
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Permanent
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code), // class 08
		pgerrcode.IsTransactionRollback(pgErr.Code): // class 40
		return Transient
	}

	switch pgErr.Code {
	case pgerrcode.TooManyConnections,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Transient
	}

	return Permanent
}

// wrapError wraps err with op and, for transient failures, with
// ErrUnavailable too.
func wrapError(c ErrorClassificator, op, err error) error {
	if c.Classify(err) == Transient {
		return fmt.Errorf("%w: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

// postgresError returns the SQLSTATE of err, or "" for non-server errors.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
