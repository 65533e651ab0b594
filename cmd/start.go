package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-orbit/core/loader"
	"media-orbit/core/logger"
	"media-orbit/core/middleware/rayid"
	"media-orbit/core/storage"
	"media-orbit/feature/auth"
	"media-orbit/feature/catalog"
	"media-orbit/feature/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the media orbit API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()

		// Object storage holds user avatars. Make sure the bucket exists
		// before the first upload.
		store, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ensureBucket(store, a.cfg.Storage.Bucket, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Feature Registration
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(a.db, logg))
		mgr.Register(auth.NewFeature(a.db, store, a.cfg.Storage, a.cfg.Server, logg))
		mgr.Register(a.syncFeature())
		mgr.Register(notify.NewFeature(a.db, nil, a.cfg.Server.JWTSecret, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// ensureBucket creates the avatar bucket when it does not exist yet.
// Storage problems are not fatal at boot; uploads will surface them.
func ensureBucket(store storage.Client, bucket string, logg *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		logg.Warn("Bucket check failed", zap.String("bucket", bucket), zap.Error(err))
		return
	}
	if exists {
		return
	}
	if err := store.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		logg.Warn("Bucket creation failed", zap.String("bucket", bucket), zap.Error(err))
		return
	}
	logg.Info("Bucket created", zap.String("bucket", bucket))
}

func init() {
	RootCmd.AddCommand(startCmd)
}
