package scoredb

import (
	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	"github.com/uptrace/bun"
)

// Score is a row of one of the three parallel score tables. The table name is
// chosen per query from a scoredomain.Variant; "scores" is only the default.
type Score struct {
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

// PinnedScore is a pinned score joined with its beatmap, as returned by
// GetPinnedScores.
type PinnedScore struct {
	ScoreID    int64   `bun:"score_id"`
	BeatmapMD5 string  `bun:"beatmap_md5"`
	UserID     int64   `bun:"userid"`
	Score      int64   `bun:"score"`
	ScoreCombo int     `bun:"score_combo"`
	FullCombo  bool    `bun:"full_combo"`
	Mods       int     `bun:"mods"`
	Count300   int     `bun:"count_300"`
	Count100   int     `bun:"count_100"`
	Count50    int     `bun:"count_50"`
	CountKatu  int     `bun:"count_katu"`
	CountGeki  int     `bun:"count_geki"`
	CountMiss  int     `bun:"count_miss"`
	Time       int64   `bun:"time"`
	PlayMode   int     `bun:"play_mode"`
	Completed  int     `bun:"completed"`
	Accuracy   float64 `bun:"accuracy"`
	PP         float64 `bun:"pp"`

	BeatmapID           int64   `bun:"beatmap_id"`
	BeatmapsetID        int64   `bun:"beatmapset_id"`
	SongName            string  `bun:"song_name"`
	AR                  float64 `bun:"ar"`
	OD                  float64 `bun:"od"`
	MapCombo            int     `bun:"map_combo"`
	HitLength           int     `bun:"hit_length"`
	Ranked              int     `bun:"ranked"`
	RankedStatusFreezed int     `bun:"ranked_status_freezed"`
	LatestUpdate        int64   `bun:"latest_update"`
}

// Breakdown extracts the judgement counts the grade calculator reads.
func (p PinnedScore) Breakdown() scoredomain.ScoreBreakdown {
	return scoredomain.ScoreBreakdown{
		Mode:      scoredomain.Mode(p.PlayMode),
		Count300:  p.Count300,
		Count100:  p.Count100,
		Count50:   p.Count50,
		CountMiss: p.CountMiss,
		CountKatu: p.CountKatu,
		CountGeki: p.CountGeki,
	}
}

// Beatmap is a row of the beatmaps table.
type Beatmap struct {
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

// PinnedQuery selects one page of a user's pinned scores.
type PinnedQuery struct {
	UserID  int64
	Mode    scoredomain.Mode
	Variant scoredomain.Variant
	Offset  int
	Limit   int
}
