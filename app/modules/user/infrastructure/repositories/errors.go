package userdb

import "errors"

// Sentinel errors for the user repository layer.
// Service layers decide how to map these into domain errors.
var (
	// ErrNotFound indicates the requested user row does not exist.
	ErrNotFound = errors.New("user record not found")
)
