package authservice

import "errors"

// Domain errors for the auth service.
var (
	// ErrMissingToken indicates the request carried no token in any accepted location.
	ErrMissingToken = errors.New("No token provided")

	// ErrInvalidToken indicates the token did not match any stored hash.
	ErrInvalidToken = errors.New("Invalid token")
)
