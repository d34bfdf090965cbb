// Package testutils holds database fixtures shared by repository, service and
// end-to-end tests.
package testutils

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// ScoreTables lists the three parallel score tables.
var ScoreTables = []string{"scores", "scores_relax", "scores_ap"}

// CreateSchema creates the users, tokens, beatmaps and score tables the
// service reads. The production schema is owned elsewhere; this mirrors only
// the columns the service touches.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	pk := primaryKey(db.Dialect().Name())

	stmts := []struct {
		query string
		args  []any
	}{
		{
			query: "CREATE TABLE IF NOT EXISTS users (id " + pk + ", username VARCHAR(64) NOT NULL, username_safe VARCHAR(64) NOT NULL)",
		},
		{
			query: "CREATE TABLE IF NOT EXISTS tokens (id " + pk + ", ? BIGINT NOT NULL, token VARCHAR(64) NOT NULL)",
			args:  []any{bun.Ident("user")},
		},
		{
			query: "CREATE TABLE IF NOT EXISTS beatmaps (id " + pk + `,
				beatmap_id BIGINT NOT NULL,
				beatmapset_id BIGINT NOT NULL,
				beatmap_md5 VARCHAR(32) NOT NULL,
				song_name VARCHAR(255) NOT NULL,
				ar DOUBLE PRECISION NOT NULL DEFAULT 0,
				od DOUBLE PRECISION NOT NULL DEFAULT 0,
				max_combo INTEGER NOT NULL DEFAULT 0,
				hit_length INTEGER NOT NULL DEFAULT 0,
				ranked INTEGER NOT NULL DEFAULT 0,
				ranked_status_freezed INTEGER NOT NULL DEFAULT 0,
				latest_update BIGINT NOT NULL DEFAULT 0)`,
		},
	}

	for _, table := range ScoreTables {
		stmts = append(stmts, struct {
			query string
			args  []any
		}{
			query: "CREATE TABLE IF NOT EXISTS ? (id " + pk + `,
				beatmap_md5 VARCHAR(32) NOT NULL,
				userid BIGINT NOT NULL,
				score BIGINT NOT NULL DEFAULT 0,
				max_combo INTEGER NOT NULL DEFAULT 0,
				full_combo BOOLEAN NOT NULL DEFAULT FALSE,
				mods INTEGER NOT NULL DEFAULT 0,
				? INTEGER NOT NULL DEFAULT 0,
				? INTEGER NOT NULL DEFAULT 0,
				? INTEGER NOT NULL DEFAULT 0,
				katus_count INTEGER NOT NULL DEFAULT 0,
				gekis_count INTEGER NOT NULL DEFAULT 0,
				misses_count INTEGER NOT NULL DEFAULT 0,
				? BIGINT NOT NULL DEFAULT 0,
				play_mode SMALLINT NOT NULL DEFAULT 0,
				completed SMALLINT NOT NULL DEFAULT 0,
				accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
				pp DOUBLE PRECISION NOT NULL DEFAULT 0,
				pinned BOOLEAN NOT NULL DEFAULT FALSE)`,
			args: []any{
				bun.Ident(table),
				bun.Ident("300_count"),
				bun.Ident("100_count"),
				bun.Ident("50_count"),
				bun.Ident("time"),
			},
		})
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func primaryKey(name dialect.Name) string {
	switch name {
	case dialect.PG:
		return "BIGSERIAL PRIMARY KEY"
	case dialect.MySQL:
		return "BIGINT AUTO_INCREMENT PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}
