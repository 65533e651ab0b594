package notify

import (
	"media-orbit/core/logger"
	"media-orbit/core/middleware/auth"
	"media-orbit/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler exposes the notifications endpoint.
type Handler struct {
	db     *gorm.DB
	secret string
	logger *zap.Logger
}

// NewHandler creates the notifications HTTP handler.
func NewHandler(db *gorm.DB, secret string, logger *zap.Logger) *Handler {
	return &Handler{db: db, secret: secret, logger: logger}
}

// RegisterRoutes registers the notification routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/notifications", auth.New(auth.Config{Secret: h.secret}), h.List)
}

// List returns the authenticated user's notifications, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	id, ok := auth.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthenticated"})
	}

	var notifications []models.Notification
	err := h.db.Where("user_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List notifications failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(fiber.Map{"results": notifications})
}
