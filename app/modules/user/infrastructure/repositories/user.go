package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// SafeUsername is the normalized form stored in users.username_safe:
// spaces become underscores and letters are lowercased.
func SafeUsername(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Impl implements Repository using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetUserIDByName resolves a display name to a user id.
func (r *Impl) GetUserIDByName(ctx context.Context, db bun.IDB, name string) (int64, error) {
	db = r.resolveDB(db)

	var id int64
	err := db.NewSelect().
		TableExpr("users").
		Column("id").
		Where("username_safe = ?", SafeUsername(name)).
		Limit(1).
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get user by name: %w", err)
	}
	return id, nil
}

// UserExists reports whether the user id is known.
func (r *Impl) UserExists(ctx context.Context, db bun.IDB, id int64) (bool, error) {
	db = r.resolveDB(db)

	exists, err := db.NewSelect().
		TableExpr("users").
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return exists, nil
}
