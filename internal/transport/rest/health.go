package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints. The database is required;
// optional components only degrade the reported status.
type HealthHandler struct {
	db       Pinger
	optional map[string]Pinger
	version  string
}

// NewHealthHandler creates a HealthHandler. optional maps component names
// (document store, cache) to their pingers; nil entries are skipped.
func NewHealthHandler(db Pinger, version string, optional map[string]Pinger) *HealthHandler {
	opt := make(map[string]Pinger, len(optional))
	for name, p := range optional {
		if p != nil {
			opt[name] = p
		}
	}
	return &HealthHandler{db: db, optional: opt, version: version}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if c := probe(r.Context(), h.db); c.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health pings every component with latency and includes the version.
// A down database answers 503; a down optional component answers 200 with
// status "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{"database": probe(r.Context(), h.db)}
	for name, p := range h.optional {
		components[name] = probe(r.Context(), p)
	}

	overall, status := "ok", http.StatusOK
	for name, c := range components {
		if c.Status == "ok" {
			continue
		}
		if name == "database" {
			overall, status = "down", http.StatusServiceUnavailable
			break
		}
		overall = "degraded"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p Pinger) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
