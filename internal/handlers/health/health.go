// Package health serves liveness and readiness probes
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
)

const defaultReadyTimeout = 2 * time.Second

// Pinger checks a dependency the service cannot run without
type Pinger func(ctx context.Context) error

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	// Ready reports whether the database answers
	Ready        Pinger
	ReadyTimeout time.Duration
	Logger       *logger.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Ready == nil {
		return errors.InvalidArgument("ready check is required")
	}
	return nil
}

// Handler serves /healthz and /readyz
type Handler struct {
	ready   Pinger
	timeout time.Duration
	log     *logger.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.ReadyTimeout
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Handler{ready: cfg.Ready, timeout: timeout, log: log}, nil
}

type status struct {
	Status string `json:"status"`
}

// Healthz reports that the process is serving
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, status{Status: "ok"})
}

// Readyz reports whether the database is reachable
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.ready(ctx); err != nil {
		h.log.Warn("readiness check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, status{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, status{Status: "ready"})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
