package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"krishisahay/internal/models"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health via JSON API.
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(database Pinger) *HealthHandler {
	return &HealthHandler{db: database, timeout: 2 * time.Second}
}

// Health pings the database. Answering works without it, so a failed ping
// reports "degraded" rather than failing the check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	resp := models.HealthResponse{Status: "ok", Database: "up"}
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("health check: database unreachable", "error", err)
		resp = models.HealthResponse{Status: "degraded", Database: "down"}
	}
	return jsonSuccess(c, resp)
}
