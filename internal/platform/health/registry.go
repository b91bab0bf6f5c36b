// Package health tracks the health of the service's dependencies. A Registry
// aggregates checkers for the readiness endpoint, and a Prober runs a checker
// in the background and serves its last result.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are registered at startup and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs all registered health checks and returns results keyed by
// checker name. A [ports.CachedHealthChecker] reports its stored result and
// timestamp; other checkers run now. The slice is copied under a read lock so
// checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]ports.CheckResult {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	results := make(map[string]ports.CheckResult, len(checkers))
	for _, c := range checkers {
		if cached, ok := c.(ports.CachedHealthChecker); ok {
			results[c.Name()] = cached.LastResult()
			continue
		}
		err := c.HealthCheck(ctx)
		results[c.Name()] = ports.CheckResult{Err: err, CheckedAt: time.Now()}
	}
	return results
}
