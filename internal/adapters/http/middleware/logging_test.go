package middleware_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/platform/logging"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stories", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "request started") {
		t.Error("log output missing 'request started'")
	}
	if !strings.Contains(output, "request completed") {
		t.Error("log output missing 'request completed'")
	}
	if !strings.Contains(output, "POST") {
		t.Error("log output missing method")
	}
	if !strings.Contains(output, "/api/v1/stories") {
		t.Error("log output missing path")
	}
}

func TestLogging_EnrichesLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	// Chain: RequestID → CorrelationID → Logging → handler
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})),
		),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "req-log-test") {
		t.Error("log output missing request_id")
	}
	if !strings.Contains(output, "corr-log-test") {
		t.Error("log output missing correlation_id")
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	var contextLoggerFound bool
	handler := middleware.RequestID()(
		middleware.Logging(logger)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			ctxLogger := logging.FromContext(r.Context())
			// The context logger should be the enriched one, not slog.Default().
			contextLoggerFound = ctxLogger != nil
			ctxLogger.Info("handler log")
		})),
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(rec, req)

	if !contextLoggerFound {
		t.Error("logging.FromContext returned nil, want enriched logger")
	}

	output := buf.String()
	if !strings.Contains(output, "handler log") {
		t.Error("handler log not captured, enriched logger may not be stored in context")
	}
	if !strings.Contains(output, "ctx-logger-test") {
		t.Error("handler log missing request_id from enriched logger")
	}
}

func TestLogging_IncludesDuration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "duration") {
		t.Error("log output missing duration")
	}
}

func TestLogging_IncludesStatusCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "status=404") {
		t.Errorf("log output missing status=404, got: %s", output)
	}
}

func TestLogging_FlagsProblemResponses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("unable to delete story: %w", domain.ErrNotFound))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/stories/4ac0160a-b132-440e-9cdf-135d7a91d6dc", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "status=404") || !strings.Contains(output, "problem=true") {
		t.Errorf("log output missing status=404 problem=true, got: %s", output)
	}
}

func TestLogging_ServerErrorsLoggedAtErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/stories/x", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if !strings.Contains(output, "level=ERROR") {
		t.Errorf("log output missing level=ERROR, got: %s", output)
	}
	if !strings.Contains(output, "bytes=4") {
		t.Errorf("log output missing bytes=4, got: %s", output)
	}
}

func TestLogging_RedactsSensitiveHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories?owner=ada", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret")
	handler.ServeHTTP(rec, req)

	output := buf.String()
	if strings.Contains(output, "top-secret") {
		t.Errorf("log output leaked Authorization header: %s", output)
	}
	if !strings.Contains(output, "[REDACTED]") {
		t.Errorf("log output missing [REDACTED], got: %s", output)
	}
}
