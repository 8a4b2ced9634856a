package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a record id does not exist or is not
	// an integer.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned when the database rejects the values of a
	// record (constraint violation or data exception).
	ErrInvalidRecord = errors.New("invalid record")

	// ErrEmailAlreadyExists is returned when a user with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReferenceAlreadyExists is returned when a campus or class with the
	// same name already exists.
	ErrReferenceAlreadyExists = errors.New("reference already exists")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
