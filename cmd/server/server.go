package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/himanshuu932/rakshak/internal/config"
	"github.com/himanshuu932/rakshak/internal/db"
	"github.com/himanshuu932/rakshak/internal/handlers"
	"github.com/himanshuu932/rakshak/internal/location"
	"github.com/himanshuu932/rakshak/internal/services"
	"github.com/himanshuu932/rakshak/internal/sms"
	"github.com/himanshuu932/rakshak/pkg/logger"
	"github.com/himanshuu932/rakshak/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxRequestBody = 64 * 1024 // inbound messages are small

// SetupServer initializes and returns a configured HTTP server
func SetupServer(cfg *config.Config) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Initialize storage
	store, err := db.NewKVStore(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	// Initialize services
	settingsService := services.NewSettingsService(store)
	locationService := services.NewLocationService(store)

	gateway := selectGateway(cfg)
	provider := location.NewStaticProvider(
		cfg.Location.Latitude, cfg.Location.Longitude, cfg.Location.Enabled)

	replier := services.NewReplier(gateway, provider, cfg)
	hub := services.NewHub()

	processor := services.NewProcessor(
		settingsService,
		services.NewExtractor(),
		services.NewAuthorizer(),
		services.NewResolver(),
		locationService,
		replier,
		hub,
	)

	// Initialize router
	router := gin.Default()

	// Setup routes
	setupRoutes(router, cfg, processor, settingsService, locationService, hub)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return srv, nil
}

// selectGateway picks the outbound SMS transport. Without a configured
// provider the server still runs; replies go to the log instead of the
// wire, which is what development and tests want.
func selectGateway(cfg *config.Config) sms.Gateway {
	if cfg.SMS.ProviderURL != "" {
		return sms.NewHTTPGateway(cfg.SMS.ProviderURL, cfg.SMS.APIKey, cfg.SMS.MaxPartLength)
	}
	logger.Info("No SMS provider configured, outbound messages will be logged only")
	return sms.NewLogGateway(cfg.SMS.MaxPartLength)
}

// setupRoutes configures all the HTTP routes
func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	processor *services.Processor,
	settingsService *services.SettingsService,
	locationService *services.LocationService,
	hub *services.Hub,
) {
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestSizeLimitMiddleware(maxRequestBody))
	router.Use(middleware.AuditLogMiddleware())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	messageHandler := handlers.NewMessageHandler(processor)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	locationHandler := handlers.NewLocationHandler(locationService, hub)

	// Basic health check endpoint (public)
	router.GET("/health", handleHealthCheck)

	// Auth endpoints (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// Inbound message webhook (public; the provider cannot hold a JWT)
	router.POST("/api/messages", messageHandler.Receive)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))

	protected.GET("/locations/:phone", locationHandler.GetByPhone)
	protected.GET("/events", locationHandler.RecentEvents)
	protected.GET("/settings/trusted", settingsHandler.GetTrustedList)
	protected.PUT("/settings/trusted", settingsHandler.SetTrustedList)
	protected.GET("/settings/roster", settingsHandler.GetRoster)
	protected.PUT("/settings/roster", settingsHandler.SetRoster)
}

// handleHealthCheck handles the health check endpoint
func handleHealthCheck(c *gin.Context) {
	logger.Info("Health check endpoint called")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "rakshak",
	})
}

// StartServer starts the HTTP server and handles graceful shutdown
func StartServer(srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// StartServerWithContext starts the HTTP server with a context for shutdown control
func StartServerWithContext(ctx context.Context, srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
