package store

import "errors"

// Sentinel errors returned by credential stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned by Load when no credential has been
	// persisted yet or it was cleared.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrUnknownDriver is returned when the configured storage driver is not
	// supported.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
