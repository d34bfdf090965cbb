package scoredb

import "errors"

// Sentinel errors for the repository layer.
// These are infrastructure-level errors that indicate database state, not business logic failures.
var (
	// ErrNotFound indicates the requested score record does not exist in the selected table.
	ErrNotFound = errors.New("score not found")
)
