package handlers

import (
	"net/http"

	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler receives inbound SMS delivery events from the transport
type MessageHandler struct {
	processor ProcessorInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(processor ProcessorInterface) *MessageHandler {
	return &MessageHandler{processor: processor}
}

// Receive accepts one inbound message event (POST /api/messages).
// Processing is fire-and-forget: the transport gets a 202 as soon as the
// event is handed off, and processing failures never surface here.
func (h *MessageHandler) Receive(c *gin.Context) {
	var msg models.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		logger.Warn("Invalid inbound message payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if msg.Sender == "" && msg.FullBody() == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sender or body is required"})
		return
	}

	logger.Info("Inbound message accepted",
		zap.String("sender", msg.Sender),
		zap.Int("parts", len(msg.Parts)),
	)

	go h.processor.Process(msg)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
