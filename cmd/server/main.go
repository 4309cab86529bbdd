package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"openhiring/internal/api/middleware"
	"openhiring/internal/api/renderer"
	"openhiring/internal/api/routes"
	"openhiring/internal/config"
	"openhiring/internal/logging"
	"openhiring/internal/mailer"
	"openhiring/internal/session"
	"openhiring/internal/store"
	"openhiring/internal/upload"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting OpenHiring job board")

	// Connect to postgres and run migrations
	st, err := store.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to open store", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer st.Close()

	// Session and flash storage in redis
	sessions := session.NewManager(cfg)
	defer sessions.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sessions.Ping(pingCtx); err != nil {
		logger.Warn("Redis not reachable at startup", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancel()

	uploads := upload.NewStorage(cfg)
	mail := mailer.New(cfg)
	limiter := middleware.NewSubmissionLimiter(cfg)
	defer limiter.Stop()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer.New()

	// Setup routes
	routes.SetupRoutes(e, cfg, st, sessions, uploads, mail, limiter)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{
		"address": address,
	})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{
			"reason": err.Error(),
		})
	}
}
