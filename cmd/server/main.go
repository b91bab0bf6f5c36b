// Package main is the entry point for the todos service. It wires all
// dependencies using samber/do v2, applies database migrations, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todos-service/internal/adapters/http"
	"github.com/jsamuelsen11/todos-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todos-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todos-service/internal/adapters/postgres"
	"github.com/jsamuelsen11/todos-service/internal/app"
	"github.com/jsamuelsen11/todos-service/internal/platform/config"
	"github.com/jsamuelsen11/todos-service/internal/platform/database"
	"github.com/jsamuelsen11/todos-service/internal/platform/health"
	"github.com/jsamuelsen11/todos-service/internal/platform/logging"
	"github.com/jsamuelsen11/todos-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todos-service/internal/ports"
	"github.com/jsamuelsen11/todos-service/migrations"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	// Database: connect, then migrate before anything serves traffic.
	pool, err := database.Open(ctx, cfg.Database, logging.Component(logger, "database"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if _, err := database.Migrate(ctx, pool, migrations.FS, logging.Component(logger, "migrate")); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, pool)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Readiness reports the cached outcome of a background store probe.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*postgres.Store](injector)
	prober := health.NewProber(store, cfg.Health.Interval, cfg.Health.Timeout, logger)
	registry.Register(prober)
	go prober.Run(ctx)

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*postgres.Store, error) {
		pool := do.MustInvoke[*pgxpool.Pool](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return postgres.New(pool,
			postgres.WithLogger(logging.Component(logger, "postgres")),
			postgres.WithMetrics(metrics),
			postgres.WithBreaker(cfg.Database.Breaker),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		return do.MustInvoke[*postgres.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		repo := do.MustInvoke[ports.TodoRepository](i)
		return app.NewTodoService(repo, logging.Component(logger, "todos")), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StoryHandler, error) {
		return handlers.NewStoryHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TodoService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.StoryHandler](i),
			do.MustInvoke[*handlers.TaskHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
