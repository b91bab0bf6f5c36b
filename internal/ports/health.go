package ports

import (
	"context"
	"time"
)

// HealthChecker is implemented by any component that can report its health,
// such as the Postgres store or a cached prober wrapping it.
type HealthChecker interface {
	// Name returns the identifier reported by the readiness endpoint
	// (e.g., "postgres").
	Name() string

	// HealthCheck returns nil if healthy, or an error describing the failure.
	HealthCheck(ctx context.Context) error
}

// CachedHealthChecker is a HealthChecker that serves a stored result instead
// of checking on demand.
type CachedHealthChecker interface {
	HealthChecker

	// LastResult returns the stored outcome and when it was produced.
	LastResult() CheckResult
}

// CheckResult is the outcome of one health check.
type CheckResult struct {
	// Err is nil when the component is healthy.
	Err error

	// CheckedAt is when the outcome was produced. It is zero for a cached
	// checker that has not completed its first check.
	CheckedAt time.Time

	// Cached marks a result served from a CachedHealthChecker.
	Cached bool
}

// HealthRegistry manages registration and execution of health checkers.
// Used by the readiness endpoint handler to determine service readiness.
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry.
	Register(checker HealthChecker)

	// CheckAll runs every registered checker and returns results keyed by
	// checker name. Cached checkers report their stored result.
	CheckAll(ctx context.Context) map[string]CheckResult
}
