package services

import (
	"sync"

	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"

	"go.uber.org/zap"
)

const recentEventCap = 64

// Hub fans notification events out to in-process subscribers and keeps a
// bounded ring of recent events for polling clients. Delivery is
// fire-and-forget: a slow or absent subscriber drops the event, it is
// never queued beyond the subscriber's channel buffer.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan models.LocationEvent]struct{}
	recent []models.LocationEvent
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.LocationEvent]struct{})}
}

// Subscribe registers a listener channel. The caller must Unsubscribe
// when done.
func (h *Hub) Subscribe() chan models.LocationEvent {
	ch := make(chan models.LocationEvent, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a listener channel.
func (h *Hub) Unsubscribe(ch chan models.LocationEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers the event to every subscriber without blocking and
// records it in the recent ring.
func (h *Hub) Publish(ev models.LocationEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, ev)
	if len(h.recent) > recentEventCap {
		h.recent = h.recent[len(h.recent)-recentEventCap:]
	}

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			logger.Debug("Dropping event for slow subscriber",
				zap.String("event_id", ev.ID),
			)
		}
	}
}

// Recent returns a copy of the retained events, oldest first.
func (h *Hub) Recent() []models.LocationEvent {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.LocationEvent, len(h.recent))
	copy(out, h.recent)
	return out
}
