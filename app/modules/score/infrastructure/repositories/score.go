package scoredb

import (
	"context"
	"fmt"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new score repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// GetPinnedScores returns one page of pinned scores joined with their beatmaps.
func (r *Impl) GetPinnedScores(ctx context.Context, db bun.IDB, q PinnedQuery) ([]PinnedScore, error) {
	table, err := q.Variant.Table()
	if err != nil {
		return nil, err
	}
	if q.Limit <= 0 {
		// bun drops LIMIT 0 from the query, so an empty page is answered here.
		return []PinnedScore{}, nil
	}
	db = r.resolveDB(db)

	scores := make([]PinnedScore, 0, q.Limit)
	err = db.NewSelect().
		TableExpr("? AS s", bun.Ident(table)).
		Join("JOIN beatmaps AS b ON b.beatmap_md5 = s.beatmap_md5").
		ColumnExpr("s.id AS score_id").
		ColumnExpr("s.beatmap_md5, s.userid, s.score, s.full_combo, s.mods").
		ColumnExpr("s.max_combo AS score_combo").
		ColumnExpr("s.? AS count_300", bun.Ident("300_count")).
		ColumnExpr("s.? AS count_100", bun.Ident("100_count")).
		ColumnExpr("s.? AS count_50", bun.Ident("50_count")).
		ColumnExpr("s.katus_count AS count_katu").
		ColumnExpr("s.gekis_count AS count_geki").
		ColumnExpr("s.misses_count AS count_miss").
		ColumnExpr("s.? AS time", bun.Ident("time")).
		ColumnExpr("s.play_mode, s.completed, s.accuracy, s.pp").
		ColumnExpr("b.beatmap_id, b.beatmapset_id, b.song_name, b.ar, b.od").
		ColumnExpr("b.max_combo AS map_combo").
		ColumnExpr("b.hit_length, b.ranked, b.ranked_status_freezed, b.latest_update").
		Where("s.pinned = ?", true).
		Where("s.play_mode = ?", int(q.Mode)).
		Where("s.userid = ?", q.UserID).
		OrderExpr("s.pp DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Scan(ctx, &scores)
	if err != nil {
		return nil, fmt.Errorf("failed to get pinned scores for user %d from %s: %w", q.UserID, table, err)
	}
	return scores, nil
}

// ScoreExists reports whether the score exists in the variant table and is owned by userID.
func (r *Impl) ScoreExists(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID, userID int64) (bool, error) {
	table, err := variant.Table()
	if err != nil {
		return false, err
	}
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		TableExpr("?", bun.Ident(table)).
		Where("id = ?", scoreID).
		Where("userid = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check score %d in %s: %w", scoreID, table, err)
	}
	return exists, nil
}

// SetPinned updates the pinned flag of a single score row.
func (r *Impl) SetPinned(ctx context.Context, db bun.IDB, variant scoredomain.Variant, scoreID int64, pinned bool) error {
	table, err := variant.Table()
	if err != nil {
		return err
	}
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Score)(nil)).
		ModelTableExpr("?", bun.Ident(table)).
		Set("pinned = ?", pinned).
		Where("id = ?", scoreID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set pinned=%t on score %d in %s: %w", pinned, scoreID, table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
