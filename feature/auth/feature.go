package auth

import (
	"media-orbit/core/server"
	"media-orbit/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the auth feature.
func NewFeature(db *gorm.DB, store storage.Client, storeCfg storage.Config,
	srvCfg server.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, store, storeCfg, srvCfg.JWTSecret, srvCfg.TokenTTLHours, logger)
	return &Feature{
		service: svc,
		handler: NewHandler(svc, srvCfg.JWTSecret, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
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
