package services

import (
	"context"
	"time"

	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"
	"github.com/himanshuu932/rakshak/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettingsSource supplies the read-only configuration snapshots consumed
// per processing cycle.
type SettingsSource interface {
	TrustedEntries() []models.TrustedEntry
	Roster() []models.Contact
}

// LocationSink persists location records under their fan-out key set.
type LocationSink interface {
	KeysFor(sender string, canonical *models.Contact) []string
	Save(rec *models.LocationRecord, keys []string)
}

// ReplySender runs the outbound location reply flow.
type ReplySender interface {
	SendCurrentLocation(ctx context.Context, recipient string)
}

// Notifier receives the per-message notification event.
type Notifier interface {
	Publish(ev models.LocationEvent)
}

// Processor orchestrates the handling of each inbound message: authorize
// and trigger the reply path, then independently extract, resolve, persist
// and notify. No step's failure prevents the later steps; every failure
// mode degrades to doing less, never to stopping.
type Processor struct {
	settings   SettingsSource
	extractor  *Extractor
	authorizer *Authorizer
	resolver   *Resolver
	locations  LocationSink
	replier    ReplySender
	notifier   Notifier
}

// NewProcessor wires the orchestrator.
func NewProcessor(
	settings SettingsSource,
	extractor *Extractor,
	authorizer *Authorizer,
	resolver *Resolver,
	locations LocationSink,
	replier ReplySender,
	notifier Notifier,
) *Processor {
	return &Processor{
		settings:   settings,
		extractor:  extractor,
		authorizer: authorizer,
		resolver:   resolver,
		locations:  locations,
		replier:    replier,
		notifier:   notifier,
	}
}

// Process handles one inbound message event. It returns once the record
// is persisted and the notification emitted; the outbound reply (which
// may wait on a location fix) runs detached so it never delays the next
// inbound message.
func (p *Processor) Process(msg models.InboundMessage) {
	sender := msg.Sender
	body := msg.FullBody()

	logger.Info("Processing inbound message",
		zap.String("sender", sender),
		zap.Int("body_length", len(body)),
	)

	// Authorization runs on the same input, independently of extraction.
	if entry := p.authorizer.Authorize(sender, body, p.settings.TrustedEntries()); entry != nil {
		logger.Info("Trusted sender matched, triggering location reply",
			zap.String("sender", sender),
			zap.String("trusted_phone", entry.Phone),
		)
		// Detached from the request context: the reply must survive the
		// webhook returning, and has no timeout of its own.
		go p.replier.SendCurrentLocation(context.Background(), sender)
	} else {
		logger.Debug("No trusted entry matched", zap.String("sender", sender))
	}

	geo := p.extractor.Extract(body)
	if geo == nil {
		// Last resort: any URL in the message is still worth keeping as a
		// map link even though the cascade's URL grammar is domain-bound.
		if url := p.extractor.AnyURL(body); url != "" {
			geo = &models.GeoResult{MapURL: url}
		}
	}

	rec := &models.LocationRecord{
		ID:         uuid.NewString(),
		RawMessage: body,
		Timestamp:  time.Now().UnixMilli(),
		Parsed:     !geo.Empty(),
		Geo:        geo,
	}

	canonical := p.resolver.ResolveCanonical(utils.NormalizePhone(sender), p.settings.Roster())
	if canonical != nil {
		logger.Info("Resolved canonical contact",
			zap.String("sender", sender),
			zap.String("canonical_phone", canonical.Phone),
		)
	}

	p.locations.Save(rec, p.locations.KeysFor(sender, canonical))

	p.notifier.Publish(buildEvent(sender, rec))
}

// buildEvent flattens a record into the notification payload. Emitted for
// every message, parsed or not.
func buildEvent(sender string, rec *models.LocationRecord) models.LocationEvent {
	ev := models.LocationEvent{
		ID:         rec.ID,
		From:       sender,
		RawMessage: rec.RawMessage,
		Parsed:     rec.Parsed,
		Timestamp:  rec.Timestamp,
	}
	if rec.Geo != nil {
		ev.MapURL = rec.Geo.MapURL
		ev.Latitude = rec.Geo.Latitude
		ev.Longitude = rec.Geo.Longitude
	}
	return ev
}
