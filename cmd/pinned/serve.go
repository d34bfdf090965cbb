package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/pinned-scores/app"
	"github.com/Black-And-White-Club/pinned-scores/config"
	"github.com/urfave/cli/v2"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP service",
		Flags: []cli.Flag{configFlag()},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			application, err := app.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer func() {
				if err := application.Close(); err != nil {
					application.Logger.Error("Error during shutdown", "error", err)
				}
			}()

			if err := application.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			application.Logger.InfoContext(context.WithoutCancel(ctx), "Service stopped")
			return nil
		},
	}
}
