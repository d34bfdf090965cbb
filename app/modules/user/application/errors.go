package userservice

import "errors"

// Domain errors for the user service.
var (
	// ErrUserNotFound indicates neither a name nor an id resolved to a known user.
	ErrUserNotFound = errors.New("user not found")
)
