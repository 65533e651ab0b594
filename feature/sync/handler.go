package sync

import (
	"context"

	"media-orbit/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderSyncSecret authenticates manual sync triggers.
const HeaderSyncSecret = "X-Sync-Secret"

// Handler exposes the manual sync trigger endpoint.
type Handler struct {
	orch   *Orchestrator
	secret string
	logger *zap.Logger
}

// NewHandler creates the sync HTTP handler.
func NewHandler(orch *Orchestrator, secret string, logger *zap.Logger) *Handler {
	return &Handler{orch: orch, secret: secret, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/sync/run", h.Run)
}

// Run triggers a sync pass in the background and responds immediately.
// The pass itself is guarded by the per-type run lock, so a second trigger
// while one is running is accepted but becomes a no-op.
func (h *Handler) Run(c *fiber.Ctx) error {
	if h.secret == "" || c.Get(HeaderSyncSecret) != h.secret {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid sync secret",
		})
	}

	contentType := c.Query("type", "all")
	l := logger.WithRayID(h.logger, c)

	switch contentType {
	case TypeMovies, TypeSeries, TypeAnime, TypeGames, "all":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown content type: " + contentType,
		})
	}

	l.Info("Manual sync triggered", zap.String("type", contentType))
	go func() {
		if err := h.orch.Run(context.Background(), contentType); err != nil {
			h.logger.Error("Manual sync failed",
				zap.String("type", contentType), zap.Error(err))
		}
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "accepted",
		"type":   contentType,
	})
}
