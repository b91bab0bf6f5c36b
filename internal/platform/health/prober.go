package health

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/todos-service/internal/ports"
)

var _ ports.CachedHealthChecker = (*Prober)(nil)

// ErrNotProbed is reported by a Prober before its first probe completes.
var ErrNotProbed = errors.New("health: not yet probed")

// Prober runs a [ports.HealthChecker] on a fixed interval and caches the
// outcome. HealthCheck only reads the cache.
type Prober struct {
	checker  ports.HealthChecker
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.RWMutex
	lastErr error
	checked time.Time
}

// NewProber creates a Prober for checker. Zero interval or timeout values
// fall back to 5s and 2s.
func NewProber(checker ports.HealthChecker, interval, timeout time.Duration, logger *slog.Logger) *Prober {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Prober{
		checker:  checker,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "health"), slog.String("checker", checker.Name())),
		lastErr:  ErrNotProbed,
	}
}

// Name reports the wrapped checker's name.
func (p *Prober) Name() string {
	return p.checker.Name()
}

// HealthCheck returns the result of the most recent probe.
func (p *Prober) HealthCheck(_ context.Context) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// LastResult returns the most recent probe outcome and when it finished,
// read under one lock so the pair is consistent.
func (p *Prober) LastResult() ports.CheckResult {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return ports.CheckResult{Err: p.lastErr, CheckedAt: p.checked, Cached: true}
}

// Run probes immediately and then once per interval until ctx is done.
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe runs the wrapped checker once and records the result. State
// transitions are logged; a repeated failure is not.
func (p *Prober) Probe(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.checker.HealthCheck(checkCtx)

	p.mu.Lock()
	prev := p.lastErr
	p.lastErr = err
	p.checked = time.Now()
	p.mu.Unlock()

	switch {
	case err != nil && (prev == nil || errors.Is(prev, ErrNotProbed)):
		p.logger.WarnContext(ctx, "health probe failed", slog.Any("error", err))
	case err == nil && prev != nil:
		p.logger.InfoContext(ctx, "health probe recovered")
	}
}
