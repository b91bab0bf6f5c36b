package middleware

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
)

// responseWriter records what a handler sent so Recovery, OpenTelemetry and
// Logging can report it after the handler returns: the status, the body size
// and whether the body is a problem document.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	problem       bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records code and the response media type. Only the first call
// takes effect.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.problem = strings.HasPrefix(rw.Header().Get("Content-Type"), dto.ProblemContentType)
	rw.ResponseWriter.WriteHeader(code)
}

// Write sends an implicit 200 OK first when no status was written.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
