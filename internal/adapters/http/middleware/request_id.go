package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
)

// maxIDLength bounds inbound request and correlation ids.
const maxIDLength = 128

// requestIDKey is this package's context key. The id is also copied into the
// httpclient metadata so outbound calls carry it.
type requestIDKey struct{}

// withRequestID stores id in ctx for handlers and for outbound calls made
// through httpclient.
func withRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request id, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that assigns each request an X-Request-ID. A
// well-formed incoming header is reused; anything else is replaced with a
// fresh UUID. The id is echoed in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderRequestID)
			if !validID(id) {
				id = uuid.NewString()
			}
			ctx := withRequestID(r.Context(), id)
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validID accepts non-empty printable ASCII without spaces, up to
// maxIDLength bytes. Such ids are echoed into headers and log lines.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
