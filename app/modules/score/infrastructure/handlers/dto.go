package scorehandlers

import (
	"time"

	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
)

const isoLayout = "2006-01-02T15:04:05"

// PinnedScoresResponse is the body of a successful listing.
type PinnedScoresResponse struct {
	Code   int                   `json:"code"`
	Scores []PinnedScoreResponse `json:"scores"`
}

// PinnedScoreResponse is one listed score. Rank holds the computed accuracy
// percentage; Grade holds the letter.
type PinnedScoreResponse struct {
	ID         int64           `json:"id"`
	BeatmapMD5 string          `json:"beatmap_md5"`
	Score      int64           `json:"score"`
	MaxCombo   int             `json:"max_combo"`
	FullCombo  bool            `json:"full_combo"`
	Mods       int             `json:"mods"`
	Count300   int             `json:"count_300"`
	Count100   int             `json:"count_100"`
	Count50    int             `json:"count_50"`
	CountGeki  int             `json:"count_geki"`
	CountKatu  int             `json:"count_katu"`
	CountMiss  int             `json:"count_miss"`
	Time       string          `json:"time"`
	PlayMode   int             `json:"play_mode"`
	Accuracy   float64         `json:"accuracy"`
	PP         float64         `json:"pp"`
	Rank       float64         `json:"rank"`
	Grade      string          `json:"grade"`
	Completed  int             `json:"completed"`
	Beatmap    BeatmapResponse `json:"beatmap"`
}

// BeatmapResponse is the beatmap embedded in a listed score.
type BeatmapResponse struct {
	BeatmapID           int64       `json:"beatmap_id"`
	BeatmapsetID        int64       `json:"beatmapset_id"`
	BeatmapMD5          string      `json:"beatmap_md5"`
	SongName            string      `json:"song_name"`
	AR                  float64     `json:"ar"`
	OD                  float64     `json:"od"`
	Difficulty          float64     `json:"difficulty"`
	Difficulty2         Difficulty2 `json:"difficulty2"`
	MaxCombo            int         `json:"max_combo"`
	HitLength           int         `json:"hit_length"`
	Ranked              int         `json:"ranked"`
	RankedStatusFreezed int         `json:"ranked_status_freezed"`
	LatestUpdate        string      `json:"latest_update"`
}

// Difficulty2 is always zero; star ratings are not stored with beatmaps.
type Difficulty2 struct {
	Std   float64 `json:"std"`
	Taiko float64 `json:"taiko"`
	CTB   float64 `json:"ctb"`
	Mania float64 `json:"mania"`
}

// ErrorResponse is the JSON body of a 4xx listing or validation failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PinRequest is the body of /pinned/pin and /pinned/unpin.
type PinRequest struct {
	ID    *int64 `json:"id"`
	Relax *int   `json:"rx"`
}

// PinResponse is returned by a successful pin.
type PinResponse struct {
	ScoreID int64 `json:"score_id"`
}

func toPinnedScoreResponse(s scoreservice.GradedScore) PinnedScoreResponse {
	return PinnedScoreResponse{
		ID:         s.ScoreID,
		BeatmapMD5: s.BeatmapMD5,
		Score:      s.Score,
		MaxCombo:   s.ScoreCombo,
		FullCombo:  s.FullCombo,
		Mods:       s.Mods,
		Count300:   s.Count300,
		Count100:   s.Count100,
		Count50:    s.Count50,
		CountGeki:  s.CountGeki,
		CountKatu:  s.CountKatu,
		CountMiss:  s.CountMiss,
		Time:       time.Unix(s.Time, 0).UTC().Format(isoLayout) + "Z",
		PlayMode:   s.PlayMode,
		Accuracy:   s.Accuracy,
		PP:         s.PP,
		Rank:       s.Rank,
		Grade:      string(s.Grade),
		Completed:  s.Completed,
		Beatmap: BeatmapResponse{
			BeatmapID:           s.BeatmapID,
			BeatmapsetID:        s.BeatmapsetID,
			BeatmapMD5:          s.BeatmapMD5,
			SongName:            s.SongName,
			AR:                  s.AR,
			OD:                  s.OD,
			MaxCombo:            s.MapCombo,
			HitLength:           s.HitLength,
			Ranked:              s.Ranked,
			RankedStatusFreezed: s.RankedStatusFreezed,
			LatestUpdate:        time.Unix(s.LatestUpdate, 0).UTC().Format(isoLayout),
		},
	}
}
