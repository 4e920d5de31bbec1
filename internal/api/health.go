package api

import (
	"net/http"
	"time"

	"github.com/kj-nakamura/baby-wear-translator/internal/api/respond"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler { return &HealthHandler{now: time.Now} }

// CheckHealth handles GET /api/health. The gateway holds no dependencies of its own, so it is
// healthy whenever it can answer.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
