package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/todos-service/internal/platform/config"
	"github.com/jsamuelsen11/todos-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy is the client's copy of config.RetryConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     cfg.MaxAttempts,
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// delay returns how long to wait before retry number attempt (1-indexed).
// A positive Retry-After hint wins over the computed backoff but never
// exceeds maxInterval.
func (p retryPolicy) delay(attempt int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.maxInterval)
	}
	return p.backoff(attempt)
}

// backoff is exponential in attempt, capped at maxInterval, with ±25% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	d := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	d = min(d, float64(p.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// doWithRetry runs the request up to maxAttempts times. The body is buffered
// so every attempt sends the same bytes. The result goes through resp so the
// caller owns closing it.
//
// GET, HEAD and OPTIONS retry on 429, 5xx and transport errors. Other methods
// retry only when the server cannot have acted on the request: a 429, or a
// failure to dial.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range c.retry.maxAttempts {
		if attempt > 0 {
			if err := c.wait(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !retryableError(req.Method, err) {
				return err
			}
			lastErr, hint = err, 0
			continue
		}
		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}
		if !retryableStatus(req.Method, r.StatusCode) {
			*resp = r
			return fmt.Errorf("%s %s: HTTP %d from %s", req.Method, req.URL.Path, r.StatusCode, c.serviceName)
		}

		lastErr = fmt.Errorf("%s %s: HTTP %d from %s", req.Method, req.URL.Path, r.StatusCode, c.serviceName)
		hint = retryAfter(r)

		if attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// wait logs the upcoming retry and sleeps unless ctx ends first.
func (c *Client) wait(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	d := c.retry.delay(attempt, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying request",
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAfter parses a Retry-After header given in whole seconds. HTTP-date
// values and malformed headers yield zero.
func retryAfter(resp *http.Response) time.Duration {
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// isRetryable reports whether a transport error is worth another attempt.
// Only context cancellation and deadline expiry are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// idempotent reports methods that are safe to repeat after the server may
// have processed them.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// retryableError reports whether a transport error on method may be retried.
func retryableError(method string, err error) bool {
	if !isRetryable(err) {
		return false
	}
	return idempotent(method) || isDialError(err)
}

// retryableStatus reports whether a retryable status on method may be
// retried. A 429 means the request was refused before it was handled.
func retryableStatus(method string, code int) bool {
	return isRetryableStatus(code) && (idempotent(method) || code == http.StatusTooManyRequests)
}

// isDialError reports a connection that was never established, so nothing
// reached the server.
func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// isRetryableStatus reports 429 and every 5xx as retryable.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
