// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"moodvenue/internal/config"
	"moodvenue/internal/db"
	"moodvenue/internal/db/migrations"
	"moodvenue/internal/logging"
	"moodvenue/internal/routes"
	"moodvenue/internal/services"
)

// @title Mood Venue API
// @version 1.0
// @description Venue catalogue with positive and sad mood plans, plus the admin management API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin access token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx := context.Background()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database exists")
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if err := migrations.RunMigrations(ctx, database.DB, database.Dialect); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	var media services.MediaStore
	if cfg.MediaEnabled() {
		s3Config, err := config.NewS3Config(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure media bucket")
		}
		media = services.NewS3MediaStore(s3Config)
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Media uploads enabled")
	} else {
		log.Warn().Msg("S3_BUCKET_NAME not set, media uploads disabled")
	}

	router := routes.SetupRoutes(database.DB, cfg, media)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Str("database", string(database.Dialect)).
			Bool("debug", cfg.Debug).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Give server 5 seconds to finish current requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
