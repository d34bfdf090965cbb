package authdb

import "errors"

// ErrNotFound indicates no token row matched the given hash.
var ErrNotFound = errors.New("token not found")
