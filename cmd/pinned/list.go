package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	scoremodule "github.com/Black-And-White-Club/pinned-scores/app/modules/score"
	scoreservice "github.com/Black-And-White-Club/pinned-scores/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	usermodule "github.com/Black-And-White-Club/pinned-scores/app/modules/user"
	userservice "github.com/Black-And-White-Club/pinned-scores/app/modules/user/application"
	"github.com/Black-And-White-Club/pinned-scores/config"
	"github.com/Black-And-White-Club/pinned-scores/internal/db/bundb"
	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print a user's pinned scores",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "name", Usage: "username"},
			&cli.Int64Flag{Name: "id", Usage: "user id, used when --name is empty"},
			&cli.IntFlag{Name: "rx", Usage: "0 vanilla, 1 relax, 2 autopilot"},
			&cli.IntFlag{Name: "mode"},
			&cli.IntFlag{Name: "page", Value: 1},
			&cli.IntFlag{Name: "limit", Value: scoreservice.DefaultLimit},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			lookup := userservice.UserLookup{}
			if c.IsSet("name") {
				name := c.String("name")
				lookup.Name = &name
			} else if c.IsSet("id") {
				id := c.Int64("id")
				lookup.ID = &id
			}

			variant, err := scoredomain.ParseVariant(c.Int("rx"))
			if err != nil {
				return err
			}
			mode, err := scoredomain.ParseMode(c.Int("mode"))
			if err != nil {
				return err
			}

			ctx := c.Context
			db, err := bundb.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			metrics := observability.NoOpMetrics{}
			tracer := observability.Tracer()

			users := usermodule.NewModule(ctx, db, logger, metrics, tracer).GetService()
			scores := scoremodule.NewModule(ctx, db, eventbus.NoopPublisher{}, users, nil, nil, logger, metrics, tracer).GetService()

			userID, err := users.ResolveUser(ctx, lookup)
			if err != nil {
				return err
			}
			rows, err := scores.ListPinned(ctx, scoreservice.ListPinnedRequest{
				UserID:  userID,
				Mode:    mode,
				Variant: variant,
				Page:    c.Int("page"),
				Limit:   c.Int("limit"),
			})
			if err != nil {
				return err
			}
			return printPinned(c.App.Writer, rows)
		},
	}
}

func printPinned(w io.Writer, rows []scoreservice.GradedScore) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Beatmap", "Mods", "Accuracy", "Grade", "PP", "Combo", "Played"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			strconv.FormatInt(r.ScoreID, 10),
			r.SongName,
			strconv.Itoa(r.Mods),
			strconv.FormatFloat(r.Rank, 'f', 2, 64),
			string(r.Grade),
			strconv.FormatFloat(r.PP, 'f', 2, 64),
			fmt.Sprintf("%d/%d", r.ScoreCombo, r.MapCombo),
			time.Unix(r.Time, 0).UTC().Format(time.DateOnly),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
