package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Black-And-White-Club/pinned-scores/app/modules/auth"
	authhandlers "github.com/Black-And-White-Club/pinned-scores/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/pinned-scores/app/modules/score"
	"github.com/Black-And-White-Club/pinned-scores/app/modules/user"
	"github.com/Black-And-White-Club/pinned-scores/config"
	"github.com/Black-And-White-Club/pinned-scores/internal/db/bundb"
	"github.com/Black-And-White-Club/pinned-scores/internal/eventbus"
	natsutil "github.com/Black-And-White-Club/pinned-scores/internal/nats"
	"github.com/Black-And-White-Club/pinned-scores/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// MetricsNamespace prefixes every exported prometheus series.
const MetricsNamespace = "pinned_scores"

// App holds the wired modules and the HTTP surface.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *bun.DB

	AuthModule  *auth.Module
	UserModule  *user.Module
	ScoreModule *score.Module

	router    chi.Router
	registry  *prometheus.Registry
	publisher eventbus.Publisher
}

// New opens the database and the event publisher described by cfg and wires
// every module on top of them.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(os.Stdout, cfg.Observability.LogFormat, cfg.Observability.LogLevel).
		With("service", MetricsNamespace, "environment", cfg.Observability.Environment)

	db, err := bundb.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var publisher eventbus.Publisher = eventbus.NoopPublisher{}
	if cfg.NATS.URL != "" {
		p, err := natsutil.Connect(cfg.NATS.URL, logger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		publisher = p
	} else {
		logger.WarnContext(ctx, "NATS URL not configured, pin events will not be published")
	}

	return NewWithDeps(ctx, cfg, db, publisher, logger), nil
}

// NewWithDeps wires the modules on an already opened database and publisher.
func NewWithDeps(ctx context.Context, cfg *config.Config, db *bun.DB, publisher eventbus.Publisher, logger *slog.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewPrometheusMetrics(registry, MetricsNamespace)
	tracer := observability.Tracer()

	router := NewRouter(logger)

	authModule := auth.NewModule(ctx, db, logger, metrics, tracer)
	userModule := user.NewModule(ctx, db, logger, metrics, tracer)

	limiter := authhandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
	scoreModule := score.NewModule(
		ctx,
		db,
		publisher,
		userModule.GetService(),
		authModule.RequireToken(),
		router,
		logger,
		metrics,
		tracer,
		authhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		authhandlers.RateLimitMiddleware(limiter),
	)

	return &App{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		AuthModule:  authModule,
		UserModule:  userModule,
		ScoreModule: scoreModule,
		router:      router,
		registry:    registry,
		publisher:   publisher,
	}
}

// Handler returns the public HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Registry returns the prometheus registry the modules record into.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Close drains the publisher and closes the database.
func (a *App) Close() error {
	var errs []error
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close publisher: %w", err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
