package authdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements Repository using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new token repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetUserIDByTokenHash reads tokens.user for the given hash.
func (r *Impl) GetUserIDByTokenHash(ctx context.Context, db bun.IDB, hash string) (int64, error) {
	db = r.resolveDB(db)

	var userID int64
	err := db.NewSelect().
		TableExpr("tokens").
		ColumnExpr("?", bun.Ident("user")).
		Where("token = ?", hash).
		Limit(1).
		Scan(ctx, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to look up token: %w", err)
	}
	return userID, nil
}
