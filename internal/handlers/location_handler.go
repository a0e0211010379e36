package handlers

import (
	"net/http"

	"github.com/himanshuu932/rakshak/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler serves last-known-location lookups and recent events
type LocationHandler struct {
	locations LocationReaderInterface
	events    EventSourceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locations LocationReaderInterface, events EventSourceInterface) *LocationHandler {
	return &LocationHandler{locations: locations, events: events}
}

// GetByPhone returns the last-known location stored under a phone
// spelling (GET /api/locations/:phone). The lookup also tries the
// digits-only spelling, so any form the caller holds will do.
func (h *LocationHandler) GetByPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone is required"})
		return
	}

	rec, err := h.locations.Get(phone)
	if err != nil {
		logger.Error("Location lookup failed",
			zap.String("phone", phone),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No location recorded"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// RecentEvents returns the retained notification events, oldest first
// (GET /api/events)
func (h *LocationHandler) RecentEvents(c *gin.Context) {
	events := h.events.Recent()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}
