package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// Run serves the public API, and /metrics when a metrics address is
// configured, until ctx is cancelled. Servers are shut down gracefully
// within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:    a.Config.HTTP.Addr,
		Handler: a.router,
	}}

	if addr := a.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))
		servers = append(servers, &http.Server{Addr: addr, Handler: mux})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			a.Logger.InfoContext(ctx, "Starting HTTP server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.InfoContext(ctx, "Shutting down HTTP servers")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.HTTP.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
