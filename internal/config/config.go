package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/himanshuu932/rakshak/pkg/logger"

	"go.uber.org/zap"
)

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port int    `json:"port"`
		Host string `json:"host"`
	} `json:"server"`
	Database struct {
		DSN string `json:"dsn"`
	} `json:"database"`
	JWT struct {
		Secret      string        `json:"secret"`
		TokenExpiry time.Duration `json:"token_expiry"`
	} `json:"jwt"`
	Auth struct {
		// bcrypt hash of the single device-admin password
		AdminPasswordHash string `json:"admin_password_hash"`
	} `json:"auth"`
	Logging struct {
		Level   string `json:"level"`
		Path    string `json:"path"`
		Console bool   `json:"console"`
	} `json:"logging"`
	SMS struct {
		ProviderURL   string `json:"provider_url"`
		APIKey        string `json:"api_key"`
		MaxPartLength int    `json:"max_part_length"`
	} `json:"sms"`
	Location struct {
		Enabled   bool    `json:"enabled"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Reply struct {
		LocationPrefix string `json:"location_prefix"`
		Unavailable    string `json:"unavailable"`
		Failure        string `json:"failure"`
	} `json:"reply"`
}

// LoadConfig loads configuration from a JSON file. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	config := DefaultConfig()
	if err := json.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings a running server cannot do without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}
	if c.Database.DSN == "" {
		return errors.New("database DSN is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is required")
	}
	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.Host = "localhost"
	config.Database.DSN = "file:rakshak.db?cache=shared&mode=rwc"
	config.JWT.Secret = "your-secret-key" // This should be changed in production
	config.JWT.TokenExpiry = 24 * time.Hour
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	config.SMS.MaxPartLength = 160
	config.Reply.LocationPrefix = "Here is my current location: "
	config.Reply.Unavailable = "Could not get location. Please ensure GPS is enabled."
	config.Reply.Failure = "Failed to get location due to an error."
	return config
}
