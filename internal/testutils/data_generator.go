package testutils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator builds randomized fixtures from a reproducible seed.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator with an optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// User returns a user fixture with a display name containing a space.
func (g *TestDataGenerator) User() UserRow {
	name := g.faker.FirstName() + " " + g.faker.LastName()
	return UserRow{
		Username:     name,
		UsernameSafe: strings.ToLower(strings.ReplaceAll(name, " ", "_")),
	}
}

// RawToken returns a random token and the MD5 hex stored for it.
func (g *TestDataGenerator) RawToken() (raw, hash string) {
	raw = g.faker.UUID()
	sum := md5.Sum([]byte(raw))
	return raw, hex.EncodeToString(sum[:])
}

// Beatmap returns a beatmap fixture with a unique checksum.
func (g *TestDataGenerator) Beatmap() BeatmapRow {
	sum := md5.Sum([]byte(g.faker.UUID()))
	return BeatmapRow{
		BeatmapID:           int64(g.faker.Number(1, 4_000_000)),
		BeatmapsetID:        int64(g.faker.Number(1, 2_000_000)),
		BeatmapMD5:          hex.EncodeToString(sum[:]),
		SongName:            g.faker.Name() + " - " + g.faker.Word(),
		AR:                  float64(g.faker.Number(0, 100)) / 10,
		OD:                  float64(g.faker.Number(0, 100)) / 10,
		MaxCombo:            g.faker.Number(100, 3000),
		HitLength:           g.faker.Number(30, 600),
		Ranked:              2,
		RankedStatusFreezed: 0,
		LatestUpdate:        g.faker.DateRange(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Unix(),
	}
}

// Score returns a completed score fixture on beatmapMD5 for userID.
func (g *TestDataGenerator) Score(userID int64, beatmapMD5 string, mode int) ScoreRow {
	return ScoreRow{
		BeatmapMD5: beatmapMD5,
		UserID:     userID,
		Score:      int64(g.faker.Number(10_000, 100_000_000)),
		MaxCombo:   g.faker.Number(1, 3000),
		FullCombo:  g.faker.Bool(),
		Mods:       0,
		Count300:   g.faker.Number(0, 1500),
		Count100:   g.faker.Number(0, 200),
		Count50:    g.faker.Number(0, 50),
		CountKatu:  g.faker.Number(0, 100),
		CountGeki:  g.faker.Number(0, 300),
		CountMiss:  g.faker.Number(0, 30),
		Time:       g.faker.DateRange(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Unix(),
		PlayMode:   mode,
		Completed:  3,
		Accuracy:   float64(g.faker.Number(6000, 10000)) / 100,
		PP:         float64(g.faker.Number(0, 80000)) / 100,
	}
}
