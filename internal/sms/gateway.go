package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/himanshuu932/rakshak/pkg/logger"

	"go.uber.org/zap"
)

// Gateway is the outbound SMS capability. Implementations deliver one part
// per Send; callers split longer texts to MaxPartLength before sending and
// send parts in order as one logical message.
type Gateway interface {
	MaxPartLength() int
	Send(ctx context.Context, phone, text string) error
}

const defaultPartLength = 160

// HTTPGateway delivers outbound messages through an SMS provider's HTTP
// endpoint.
type HTTPGateway struct {
	url       string
	apiKey    string
	partLimit int
	client    *http.Client
}

// NewHTTPGateway creates a gateway for the given provider endpoint. A
// non-positive partLimit falls back to the GSM single-part default.
func NewHTTPGateway(url, apiKey string, partLimit int) *HTTPGateway {
	if partLimit <= 0 {
		partLimit = defaultPartLength
	}
	return &HTTPGateway{
		url:       url,
		apiKey:    apiKey,
		partLimit: partLimit,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// MaxPartLength returns the provider's single-part length limit.
func (g *HTTPGateway) MaxPartLength() int {
	return g.partLimit
}

type sendRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// Send posts one message part to the provider.
func (g *HTTPGateway) Send(ctx context.Context, phone, text string) error {
	payload, err := json.Marshal(sendRequest{To: phone, Message: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("X-API-Key", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms provider request failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}
	return nil
}

// LogGateway stands in when no provider is configured: it logs outbound
// messages instead of sending them so the rest of the pipeline stays
// exercisable in development.
type LogGateway struct {
	partLimit int
}

// NewLogGateway creates a logging gateway.
func NewLogGateway(partLimit int) *LogGateway {
	if partLimit <= 0 {
		partLimit = defaultPartLength
	}
	return &LogGateway{partLimit: partLimit}
}

// MaxPartLength returns the configured single-part length limit.
func (g *LogGateway) MaxPartLength() int {
	return g.partLimit
}

// Send logs the part instead of delivering it.
func (g *LogGateway) Send(_ context.Context, phone, text string) error {
	logger.Info("Outbound SMS (no provider configured)",
		zap.String("to", phone),
		zap.Int("length", len(text)),
	)
	return nil
}
