package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
)

type correlationIDKey struct{}

// withCorrelationID stores id in ctx for handlers and for outbound calls made
// through httpclient.
func withCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation id, or "" when none is set.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// CorrelationID returns middleware that ties a request to the wider operation
// it belongs to. todoctl sends one X-Correlation-ID for every request of an
// invocation; a well-formed value is kept, and otherwise the request id
// stands in. Must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderCorrelationID)
			if !validID(id) {
				id = RequestIDFromContext(r.Context())
			}
			ctx := withCorrelationID(r.Context(), id)
			w.Header().Set(httpclient.HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
