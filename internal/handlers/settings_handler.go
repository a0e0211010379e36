package handlers

import (
	"net/http"

	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler manages the trusted list and the contact roster. Both
// are replaced wholesale on update; there is no per-entry mutation.
type SettingsHandler struct {
	settings SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetTrustedList returns the configured trusted entries (GET /api/settings/trusted)
func (h *SettingsHandler) GetTrustedList(c *gin.Context) {
	entries := h.settings.TrustedEntries()
	if entries == nil {
		entries = []models.TrustedEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// SetTrustedList replaces the trusted entries (PUT /api/settings/trusted)
func (h *SettingsHandler) SetTrustedList(c *gin.Context) {
	var entries []models.TrustedEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.settings.SetTrustedEntries(entries); err != nil {
		logger.Warn("Rejected trusted list update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Trusted list replaced", zap.Int("entries", len(entries)))
	c.Status(http.StatusNoContent)
}

// GetRoster returns the configured contact roster (GET /api/settings/roster)
func (h *SettingsHandler) GetRoster(c *gin.Context) {
	roster := h.settings.Roster()
	if roster == nil {
		roster = []models.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{"contacts": roster})
}

// SetRoster replaces the contact roster (PUT /api/settings/roster)
func (h *SettingsHandler) SetRoster(c *gin.Context) {
	var roster []models.Contact
	if err := c.ShouldBindJSON(&roster); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.settings.SetRoster(roster); err != nil {
		logger.Warn("Rejected roster update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Roster replaced", zap.Int("contacts", len(roster)))
	c.Status(http.StatusNoContent)
}
