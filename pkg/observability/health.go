package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthStatus represents the health status of the service
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthChecker manages health checks for the service
type HealthChecker struct {
	policySource string
}

// NewHealthChecker creates a new HealthChecker. policySource names where
// the active policy came from ("defaults" or a file path).
func NewHealthChecker(policySource string) *HealthChecker {
	return &HealthChecker{
		policySource: policySource,
	}
}

// Check performs health checks and returns the status. The engine is pure
// and holds no connections, so the only check is that a policy is active.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	checks := make(map[string]string)
	overallStatus := "healthy"

	if h.policySource != "" {
		checks["policy"] = "loaded: " + h.policySource
	} else {
		checks["policy"] = "not loaded"
		overallStatus = "unhealthy"
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Checks:    checks,
	}
}

// HealthHandler returns an HTTP handler for health checks
func (h *HealthChecker) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := h.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if status.Status != "healthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		json.NewEncoder(w).Encode(status)
	}
}
