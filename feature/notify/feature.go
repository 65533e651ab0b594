package notify

import (
	"media-orbit/core/clock"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	checker *Checker
	handler *Handler
}

// NewFeature creates the notify feature.
func NewFeature(db *gorm.DB, clk clock.Clock, secret string, logger *zap.Logger) *Feature {
	return &Feature{
		checker: NewChecker(db, clk, logger),
		handler: NewHandler(db, secret, logger),
	}
}

// Checker exposes the reminder checker, used by the scheduler.
func (f *Feature) Checker() *Checker {
	return f.checker
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "notify"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
