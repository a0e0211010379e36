package main

import (
	"flag"

	"github.com/himanshuu932/rakshak/internal/config"
	"github.com/himanshuu932/rakshak/pkg/logger"

	"go.uber.org/zap"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to JSON config file (defaults used when empty)")
	flag.Parse()

	// Load configuration
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path, cfg.Logging.Level, cfg.Logging.Console); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	logger.Info("Starting rakshak", zap.String("version", version))

	// Setup and start server
	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
	}

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
