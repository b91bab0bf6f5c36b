// Package postgres implements [ports.TodoRepository] on PostgreSQL using pgx.
//
// Every statement runs through a circuit breaker and is traced and counted:
//
//	Circuit Breaker → OTEL Span → Statement → Metrics
//
// Construction:
//
//	store := postgres.New(pool,
//	    postgres.WithLogger(logger),
//	    postgres.WithMetrics(metrics),
//	    postgres.WithBreaker(cfg.Database.Breaker),
//	)
//
// Reads only see active rows (deleted_at IS NULL). Deletes are soft: they stamp
// deleted_at and report how many rows changed.
package postgres

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/platform/config"
	"github.com/jsamuelsen11/todos-service/internal/platform/logging"
	"github.com/jsamuelsen11/todos-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

const (
	dbSystem = "postgresql"

	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// DB is the subset of *pgxpool.Pool used by the store.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// errCorruptRow marks a row that was read but could not be decoded.
var errCorruptRow = errors.New("corrupt row")

// Store is the Postgres-backed todo repository.
type Store struct {
	db         DB
	breakerCfg config.CircuitBreakerConfig
	breaker    *gobreaker.CircuitBreaker[any]
	tracer     trace.Tracer
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. Statements are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logging.Component(logger, "postgres") }
}

// WithMetrics enables db.client.operation.* metric recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithBreaker overrides the circuit breaker settings.
func WithBreaker(cfg config.CircuitBreakerConfig) Option {
	return func(s *Store) { s.breakerCfg = cfg }
}

// New creates a Store over db. The caller retains ownership of db.
func New(db DB, opts ...Option) *Store {
	s := &Store{
		db: db,
		breakerCfg: config.CircuitBreakerConfig{
			MaxFailures:   defaultBreakerFailures,
			Timeout:       defaultBreakerTimeout,
			HalfOpenLimit: 1,
		},
		tracer: otel.GetTracerProvider().Tracer("postgres"),
		logger: logging.Component(nil, "postgres"),
	}
	for _, opt := range opts {
		opt(s)
	}

	maxFailures := s.breakerCfg.MaxFailures
	if maxFailures <= 0 {
		maxFailures = defaultBreakerFailures
	}

	s.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "postgres",
		MaxRequests: toUint32(s.breakerCfg.HalfOpenLimit),
		Timeout:     s.breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return s
}

// isSuccessful reports whether err leaves the breaker's failure count alone.
// Missing rows, undecodable rows, rejected input and caller cancellation say
// nothing about database availability.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, errCorruptRow) ||
		errors.Is(err, context.Canceled) ||
		isRequestError(err)
}

// isRequestError reports SQLSTATE class 22 (data exception) and class 23
// (integrity constraint violation). The server answered; the statement was
// at fault.
func isRequestError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	switch pgErr.Code[:2] {
	case "22", "23":
		return true
	default:
		return false
	}
}

// guard runs fn as the statement named op. Errors other than
// domain.ErrNotFound leave as *domain.StoreError.
func guard[T any](ctx context.Context, s *Store, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(dbSystem),
			telemetry.AttrDBOperation.String(op),
		),
	)
	defer span.End()

	out, err := s.breaker.Execute(func() (any, error) {
		return fn(ctx)
	})

	s.recordMetrics(ctx, op, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var zero T
		if errors.Is(err, domain.ErrNotFound) {
			return zero, err
		}
		s.logger.ErrorContext(ctx, "statement failed",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return zero, domain.NewStoreError(op, err)
	}

	v, _ := out.(T)
	return v, nil
}

func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	default:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	s.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck runs SELECT 1 against the pool. An open breaker is reported
// without touching the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.breaker.State() == gobreaker.StateOpen {
		return errors.New("postgres: failing (circuit breaker open)")
	}
	if _, err := s.db.Exec(ctx, "SELECT 1"); err != nil {
		return domain.NewStoreError("HealthCheck", err)
	}
	return nil
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
