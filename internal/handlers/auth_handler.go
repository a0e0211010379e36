package handlers

import (
	"net/http"

	"github.com/himanshuu932/rakshak/internal/config"
	"github.com/himanshuu932/rakshak/pkg/logger"
	"github.com/himanshuu932/rakshak/pkg/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// AuthHandler handles device-admin authentication. There is a single
// administrator (the device owner); the password is stored as a bcrypt
// hash in the configuration.
type AuthHandler struct {
	config *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// Login verifies the admin password and returns a JWT token (POST /api/auth/login)
func (h *AuthHandler) Login(c *gin.Context) {
	logger.Info("Auth login endpoint called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to parse login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if h.config.Auth.AdminPasswordHash == "" {
		logger.Error("No admin password configured, refusing login")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.config.Auth.AdminPasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Invalid admin password attempt")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(h.config)
	if err != nil {
		logger.Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int64(h.config.JWT.TokenExpiry.Seconds()),
	})
}
