package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/himanshuu932/rakshak/internal/config"
	"github.com/himanshuu932/rakshak/internal/location"
	"github.com/himanshuu932/rakshak/internal/sms"
	"github.com/himanshuu932/rakshak/pkg/logger"
	"github.com/himanshuu932/rakshak/pkg/utils"

	"go.uber.org/zap"
)

// Replier implements the outbound location reply: request a fix, format
// the reply text and send it through the SMS gateway, split into ordered
// parts when it exceeds the gateway's single-part limit.
//
// Every outcome of the fix request resolves into a send: an unavailable
// fix replies with a fixed sorry-text rather than staying silent. Send
// failures are logged, never retried.
type Replier struct {
	gateway  sms.Gateway
	provider location.Provider

	locationPrefix  string
	unavailableText string
	failureText     string
}

// NewReplier creates a replier with the configured reply texts.
func NewReplier(gateway sms.Gateway, provider location.Provider, cfg *config.Config) *Replier {
	return &Replier{
		gateway:         gateway,
		provider:        provider,
		locationPrefix:  cfg.Reply.LocationPrefix,
		unavailableText: cfg.Reply.Unavailable,
		failureText:     cfg.Reply.Failure,
	}
}

// SendCurrentLocation resolves the device location and replies to the
// recipient. Blocks until the fix attempt and the sends complete.
func (r *Replier) SendCurrentLocation(ctx context.Context, recipient string) {
	fix, err := r.provider.CurrentFix(ctx)

	var text string
	switch {
	case err == nil:
		lat := strconv.FormatFloat(fix.Latitude, 'f', -1, 64)
		lon := strconv.FormatFloat(fix.Longitude, 'f', -1, 64)
		text = r.locationPrefix + "https://maps.google.com/?q=" + lat + "," + lon
	case errors.Is(err, location.ErrUnavailable):
		logger.Warn("Location unavailable, sending fallback reply",
			zap.String("recipient", recipient),
		)
		text = r.unavailableText
	default:
		logger.Error("Location fix failed, sending failure reply",
			zap.String("recipient", recipient),
			zap.Error(err),
		)
		text = r.failureText
	}

	r.send(ctx, recipient, text)
}

// send splits text to the gateway's part limit and delivers the parts in
// order as one logical message.
func (r *Replier) send(ctx context.Context, recipient, text string) {
	parts := utils.SplitMessage(text, r.gateway.MaxPartLength())
	for i, part := range parts {
		if err := r.gateway.Send(ctx, recipient, part); err != nil {
			logger.Error("Failed to send reply part",
				zap.String("recipient", recipient),
				zap.Int("part", i+1),
				zap.Int("parts", len(parts)),
				zap.Error(err),
			)
			return
		}
	}
	logger.Info("Reply sent",
		zap.String("recipient", recipient),
		zap.Int("parts", len(parts)),
	)
}
