package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these; callers match them with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrEncodingMetadata is returned when audit metadata cannot be
	// serialized to JSON.
	ErrEncodingMetadata = errors.New("failed to encode metadata")

	// ErrUnavailable is added to the chain when the failure is transient:
	// the database is unreachable, overloaded or aborted the transaction.
	ErrUnavailable = errors.New("storage temporarily unavailable")

	// ErrNothingInserted is returned when an INSERT affects no rows.
	ErrNothingInserted = errors.New("no rows were inserted")
)
