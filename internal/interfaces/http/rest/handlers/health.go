package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// HealthHandler answers liveness and readiness probes.
type HealthHandler struct {
	store  repository.NodeStore
	logger *zap.Logger
}

// NewHealthHandler creates a health handler. The service is ready when the
// store can list nodes.
func NewHealthHandler(store repository.NodeStore, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, `{"status":"healthy"}`)
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.store.ListByPosition(r.Context()); err != nil {
		h.logger.Warn("Readiness check failed", zap.Error(err))
		writeStatus(w, http.StatusServiceUnavailable, `{"status":"not ready"}`)
		return
	}
	writeStatus(w, http.StatusOK, `{"status":"ready"}`)
}

func writeStatus(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
