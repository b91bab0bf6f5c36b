package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// serveRequestID runs GET /api/v1/stories?owner=ada through RequestID with the
// given X-Request-ID header and returns the id seen by the handler.
func serveRequestID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var gotID string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories?owner=ada", http.NoBody)
	if header != "" {
		req.Header.Set("X-Request-ID", header)
	}
	handler.ServeHTTP(rec, req)
	return gotID, rec
}

func TestRequestID_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "absent", header: "", wantKept: false},
		{name: "uuid", header: "6f1e2d3c-4b5a-4978-8a6b-5c4d3e2f1a0b", wantKept: true},
		{name: "opaque token", header: "todoctl-42", wantKept: true},
		{name: "contains space", header: "req 42", wantKept: false},
		{name: "contains tab", header: "req\t42", wantKept: false},
		{name: "non ascii", header: "req-ü", wantKept: false},
		{name: "too long", header: strings.Repeat("a", 129), wantKept: false},
		{name: "at limit", header: strings.Repeat("a", 128), wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotID, rec := serveRequestID(t, tt.header)

			if tt.wantKept && gotID != tt.header {
				t.Errorf("RequestIDFromContext = %q, want %q", gotID, tt.header)
			}
			if !tt.wantKept && !uuidPattern.MatchString(gotID) {
				t.Errorf("RequestIDFromContext = %q, want a generated UUID v4", gotID)
			}
			if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
				t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 100 {
		id, _ := serveRequestID(t, "")
		ids[id] = true
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestRequestIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
}
