package cmd

import (
	"fmt"

	"media-orbit/core/config"
	"media-orbit/core/database"
	"media-orbit/core/logger"
	"media-orbit/core/source/igdb"
	"media-orbit/core/source/jikan"
	"media-orbit/core/source/tmdb"
	"media-orbit/feature/catalog/models"
	"media-orbit/feature/sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app bundles the wiring shared by the start, sync and schedule commands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB

	tmdb  *tmdb.Client
	jikan *jikan.Client
	igdb  *igdb.Client
}

// bootstrap loads configuration, initializes the logger, connects to the
// database and migrates the catalog schema.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))

	return &app{
		cfg:    cfg,
		logger: logg,
		db:     db,
		tmdb:   tmdb.NewClient(cfg.TMDB, nil),
		jikan:  jikan.NewClient(cfg.Jikan, nil),
		igdb:   igdb.NewClient(cfg.IGDB, nil),
	}, nil
}

// syncFeature wires the sync pipeline against the live source clients.
func (a *app) syncFeature() *sync.Feature {
	return sync.NewFeature(a.db, a.logger, a.cfg.Sync, a.cfg.Server.SyncSecret,
		a.tmdb, a.tmdb, a.jikan, a.igdb)
}
