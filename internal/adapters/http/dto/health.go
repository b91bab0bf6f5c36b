package dto

import "time"

// Readiness and per-check status values.
const (
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
	CheckOK        = "ok"
	CheckFailing   = "failing"
)

// ReadinessResponse is the body of GET /health/ready.
type ReadinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckStatus `json:"checks"`
}

// CheckStatus reports one dependency. LastChecked is absent until a cached
// check has completed its first probe.
type CheckStatus struct {
	Status      string     `json:"status"`
	Error       string     `json:"error,omitempty"`
	LastChecked *time.Time `json:"last_checked,omitempty"`
	Cached      bool       `json:"cached"`
}
