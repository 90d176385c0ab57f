package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no persisted session record
	// exists, or the stored record is malformed or from an unknown schema
	// version and must be discarded.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrSessionNotSaved is returned when a session write completes
	// without a driver error but affects no rows.
	ErrSessionNotSaved = errors.New("session was not saved")

	// ErrExecutingQuery is returned (wrapped) when a SQL operation against
	// the local database fails before any domain logic can be applied.
	ErrExecutingQuery = errors.New("error executing sql query")
)
