package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/ports"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reading from registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": dto.CheckOK})
}

// Readiness handles GET /health/ready. It answers 503 when any dependency is
// failing, including a store that has not been probed yet. Each check reports
// its own status and, for the background store probe, when it last ran.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: dto.StatusReady,
		Checks: make(map[string]dto.CheckStatus, len(results)),
	}
	code := http.StatusOK
	for name, res := range results {
		resp.Checks[name] = toCheckStatus(res)
		if res.Err != nil {
			resp.Status = dto.StatusNotReady
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}

func toCheckStatus(res ports.CheckResult) dto.CheckStatus {
	cs := dto.CheckStatus{Status: dto.CheckOK, Cached: res.Cached}
	if res.Err != nil {
		cs.Status = dto.CheckFailing
		cs.Error = res.Err.Error()
	}
	if !res.CheckedAt.IsZero() {
		at := res.CheckedAt.UTC().Truncate(time.Millisecond)
		cs.LastChecked = &at
	}
	return cs
}
