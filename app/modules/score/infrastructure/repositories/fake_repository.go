package scoredb

import (
	"context"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	"github.com/uptrace/bun"
)

// FakeRepository is a programmable stub of Repository for service tests.
type FakeRepository struct {
	GetPinnedScoresFn func(ctx context.Context, db bun.IDB, q PinnedQuery) ([]PinnedScore, error)
	ScoreExistsFn     func(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID, userID int64) (bool, error)
	SetPinnedFn       func(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID int64, pinned bool) error

	trace []string
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRepository) GetPinnedScores(ctx context.Context, db bun.IDB, q PinnedQuery) ([]PinnedScore, error) {
	f.record("GetPinnedScores")
	if f.GetPinnedScoresFn != nil {
		return f.GetPinnedScoresFn(ctx, db, q)
	}
	return []PinnedScore{}, nil
}

func (f *FakeRepository) ScoreExists(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID, userID int64) (bool, error) {
	f.record("ScoreExists")
	if f.ScoreExistsFn != nil {
		return f.ScoreExistsFn(ctx, db, variant, scoreID, userID)
	}
	return false, nil
}

func (f *FakeRepository) SetPinned(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID int64, pinned bool) error {
	f.record("SetPinned")
	if f.SetPinnedFn != nil {
		return f.SetPinnedFn(ctx, db, variant, scoreID, pinned)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
