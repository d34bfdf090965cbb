package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for user lookups.
type Repository interface {
	// GetUserIDByName returns the id of the user whose username_safe equals SafeUsername(name).
	GetUserIDByName(ctx context.Context, db bun.IDB, name string) (int64, error)
	// UserExists reports whether a user with id exists.
	UserExists(ctx context.Context, db bun.IDB, id int64) (bool, error)
}
