package main

import (
	"fmt"

	scoredomain "github.com/Black-And-White-Club/pinned-scores/app/modules/score/domain"
	"github.com/urfave/cli/v2"
)

func accuracyCommand() *cli.Command {
	return &cli.Command{
		Name:  "accuracy",
		Usage: "compute accuracy and grade for a judgement breakdown",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "mode", Usage: "0 standard, 1 taiko, 2 catch, 3 mania"},
			&cli.IntFlag{Name: "n300"},
			&cli.IntFlag{Name: "n100"},
			&cli.IntFlag{Name: "n50"},
			&cli.IntFlag{Name: "miss"},
			&cli.IntFlag{Name: "katu"},
			&cli.IntFlag{Name: "geki"},
			&cli.IntFlag{Name: "mods", Usage: "mod bitmask, used for silver grades"},
		},
		Action: func(c *cli.Context) error {
			mode, err := scoredomain.ParseMode(c.Int("mode"))
			if err != nil {
				return err
			}
			b := scoredomain.ScoreBreakdown{
				Mode:      mode,
				Count300:  c.Int("n300"),
				Count100:  c.Int("n100"),
				Count50:   c.Int("n50"),
				CountMiss: c.Int("miss"),
				CountKatu: c.Int("katu"),
				CountGeki: c.Int("geki"),
			}

			acc, err := scoredomain.ComputeAccuracy(b)
			if err != nil {
				return err
			}
			grade, err := scoredomain.Grade(b, scoredomain.Mods(c.Int("mods")))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "mode:     %s\naccuracy: %.2f%%\ngrade:    %s\n", mode, acc, grade)
			return nil
		},
	}
}
