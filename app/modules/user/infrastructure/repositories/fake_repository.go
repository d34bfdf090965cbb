package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a programmable stub of Repository.
type FakeRepository struct {
	GetUserIDByNameFn func(ctx context.Context, db bun.IDB, name string) (int64, error)
	UserExistsFn      func(ctx context.Context, db bun.IDB, id int64) (bool, error)
}

func (f *FakeRepository) GetUserIDByName(ctx context.Context, db bun.IDB, name string) (int64, error) {
	if f.GetUserIDByNameFn != nil {
		return f.GetUserIDByNameFn(ctx, db, name)
	}
	return 0, ErrNotFound
}

func (f *FakeRepository) UserExists(ctx context.Context, db bun.IDB, id int64) (bool, error) {
	if f.UserExistsFn != nil {
		return f.UserExistsFn(ctx, db, id)
	}
	return false, nil
}

var _ Repository = (*FakeRepository)(nil)
