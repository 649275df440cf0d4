package handlers

import (
	"context"
	"net/http"
	"time"

	"TAREAS_BACK-END/internal/dto"
	"TAREAS_BACK-END/internal/logging"
	"TAREAS_BACK-END/internal/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	db  Pinger
	log logging.Logger
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db Pinger, log logging.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log, now: time.Now}
}

// App reports process liveness (no database)
// @Summary Application health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health/app [get]
func (h *HealthHandler) App(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}

// DB checks database connectivity
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health/db [get]
func (h *HealthHandler) DB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error(r.Context(), "database ping failed", "error", err)
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "error",
			Details: map[string]any{"db": "unavailable"},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Details: map[string]any{"db": "ok"},
	})
}
