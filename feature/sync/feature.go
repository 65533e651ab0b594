package sync

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	orch    *Orchestrator
	handler *Handler
}

// NewFeature creates the sync feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, cfg Config, secret string,
	movies MovieSource, series SeriesSource, anime AnimeSource, games GameSource) *Feature {
	orch := NewOrchestrator(db, logger, cfg, movies, series, anime, games)
	return &Feature{
		orch:    orch,
		handler: NewHandler(orch, secret, logger),
	}
}

// Orchestrator exposes the underlying pipeline, used by the CLI commands
// and the scheduler.
func (f *Feature) Orchestrator() *Orchestrator {
	return f.orch
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
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
