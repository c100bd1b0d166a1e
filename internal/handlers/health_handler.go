package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports whether the database answers a ping.
// @Tags Health
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := map[string]any{"status": "ok"}
	status, overall := http.StatusOK, "ok"
	if err := h.db.PingContext(ctx); err != nil {
		dbStatus = map[string]any{"status": "down", "error": err.Error()}
		status, overall = http.StatusServiceUnavailable, "degraded"
	}

	writeJSON(w, status, map[string]any{
		"status": overall,
		"db":     dbStatus,
	})
}
