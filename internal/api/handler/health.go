package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

var startTime = time.Now()

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	resolverURL string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(resolverURL string) *HealthHandler {
	return &HealthHandler{
		resolverURL: resolverURL,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthy handles GET /health - liveness probe.
func (h *HealthHandler) Healthy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// Ready handles GET /ready - readiness probe. The service is ready
// once it knows where to resolve metadata.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.resolverURL == "" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "error"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// SystemStats contains process resource statistics.
type SystemStats struct {
	Uptime        int64  `json:"uptime_seconds"`
	MemAlloc      string `json:"mem_alloc"`
	MemSys        string `json:"mem_sys"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
}

// Stats handles GET /stats - process statistics.
func (h *HealthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, http.StatusOK, SystemStats{
		Uptime:        int64(time.Since(startTime).Seconds()),
		MemAlloc:      humanize.Bytes(m.Alloc),
		MemSys:        humanize.Bytes(m.Sys),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
	})
}
