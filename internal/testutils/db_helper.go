package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/Black-And-White-Club/pinned-scores/internal/db/bundb"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSQLiteDB opens a private in-memory SQLite database with the schema
// created. The database is closed when the test finishes.
func NewSQLiteDB(t testing.TB) *bun.DB {
	t.Helper()

	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := bundb.Open(ctx, bundb.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := CreateSchema(ctx, db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

// UserRow is a users fixture.
type UserRow struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Username     string `bun:"username"`
	UsernameSafe string `bun:"username_safe"`
}

// TokenRow is a tokens fixture. Token holds the MD5 hex of the raw token.
type TokenRow struct {
	bun.BaseModel `bun:"table:tokens"`

	ID     int64  `bun:"id,pk,autoincrement"`
	UserID int64  `bun:"user"`
	Token  string `bun:"token"`
}

// BeatmapRow is a beatmaps fixture.
type BeatmapRow struct {
	bun.BaseModel `bun:"table:beatmaps"`

	ID                  int64   `bun:"id,pk,autoincrement"`
	BeatmapID           int64   `bun:"beatmap_id"`
	BeatmapsetID        int64   `bun:"beatmapset_id"`
	BeatmapMD5          string  `bun:"beatmap_md5"`
	SongName            string  `bun:"song_name"`
	AR                  float64 `bun:"ar"`
	OD                  float64 `bun:"od"`
	MaxCombo            int     `bun:"max_combo"`
	HitLength           int     `bun:"hit_length"`
	Ranked              int     `bun:"ranked"`
	RankedStatusFreezed int     `bun:"ranked_status_freezed"`
	LatestUpdate        int64   `bun:"latest_update"`
}

// ScoreRow is a score fixture for any of the score tables.
type ScoreRow struct {
	bun.BaseModel `bun:"table:scores"`

	ID         int64   `bun:"id,pk,autoincrement"`
	BeatmapMD5 string  `bun:"beatmap_md5"`
	UserID     int64   `bun:"userid"`
	Score      int64   `bun:"score"`
	MaxCombo   int     `bun:"max_combo"`
	FullCombo  bool    `bun:"full_combo"`
	Mods       int     `bun:"mods"`
	Count300   int     `bun:"300_count"`
	Count100   int     `bun:"100_count"`
	Count50    int     `bun:"50_count"`
	CountKatu  int     `bun:"katus_count"`
	CountGeki  int     `bun:"gekis_count"`
	CountMiss  int     `bun:"misses_count"`
	Time       int64   `bun:"time"`
	PlayMode   int     `bun:"play_mode"`
	Completed  int     `bun:"completed"`
	Accuracy   float64 `bun:"accuracy"`
	PP         float64 `bun:"pp"`
	Pinned     bool    `bun:"pinned"`
}

// InsertUser stores u and sets its ID.
func InsertUser(t testing.TB, db bun.IDB, u *UserRow) {
	t.Helper()
	if _, err := db.NewInsert().Model(u).Exec(context.Background()); err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
}

// InsertToken stores tok.
func InsertToken(t testing.TB, db bun.IDB, tok *TokenRow) {
	t.Helper()
	if _, err := db.NewInsert().Model(tok).Exec(context.Background()); err != nil {
		t.Fatalf("failed to insert token: %v", err)
	}
}

// InsertBeatmap stores b.
func InsertBeatmap(t testing.TB, db bun.IDB, b *BeatmapRow) {
	t.Helper()
	if _, err := db.NewInsert().Model(b).Exec(context.Background()); err != nil {
		t.Fatalf("failed to insert beatmap: %v", err)
	}
}

// InsertScore stores s in table and sets its ID.
func InsertScore(t testing.TB, db bun.IDB, table string, s *ScoreRow) {
	t.Helper()
	_, err := db.NewInsert().
		Model(s).
		ModelTableExpr("?", bun.Ident(table)).
		Exec(context.Background())
	if err != nil {
		t.Fatalf("failed to insert score into %s: %v", table, err)
	}
}

// PinnedFlag reads the pinned column of a score.
func PinnedFlag(t testing.TB, db bun.IDB, table string, id int64) bool {
	t.Helper()
	var pinned bool
	err := db.NewSelect().
		TableExpr("?", bun.Ident(table)).
		Column("pinned").
		Where("id = ?", id).
		Scan(context.Background(), &pinned)
	if err != nil {
		t.Fatalf("failed to read score %d from %s: %v", id, table, err)
	}
	return pinned
}
