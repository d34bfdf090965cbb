package authdb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a programmable stub of Repository.
type FakeRepository struct {
	GetUserIDByTokenHashFn func(ctx context.Context, db bun.IDB, hash string) (int64, error)
}

func (f *FakeRepository) GetUserIDByTokenHash(ctx context.Context, db bun.IDB, hash string) (int64, error) {
	if f.GetUserIDByTokenHashFn != nil {
		return f.GetUserIDByTokenHashFn(ctx, db, hash)
	}
	return 0, ErrNotFound
}

var _ Repository = (*FakeRepository)(nil)
