package authdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository looks up API tokens.
type Repository interface {
	// GetUserIDByTokenHash returns the owner of the token whose stored hash equals hash.
	GetUserIDByTokenHash(ctx context.Context, db bun.IDB, hash string) (int64, error)
}
