package location

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no location fix can be produced, the
// equivalent of GPS being off or permission being denied on a device.
var ErrUnavailable = errors.New("location unavailable")

// Fix is a resolved coordinate pair.
type Fix struct {
	Latitude  float64
	Longitude float64
}

// Provider is the device-location capability: a single attempt per call,
// no retry, no timeout of its own. Callers decide how long to wait via ctx.
type Provider interface {
	CurrentFix(ctx context.Context) (Fix, error)
}

// StaticProvider serves the fixed coordinates of the installation. It
// stands in for a GPS capability on gateway deployments where the box
// itself does not move.
type StaticProvider struct {
	fix     Fix
	enabled bool
}

// NewStaticProvider creates a provider for the given coordinates. When
// enabled is false every call reports ErrUnavailable.
func NewStaticProvider(lat, lon float64, enabled bool) *StaticProvider {
	return &StaticProvider{fix: Fix{Latitude: lat, Longitude: lon}, enabled: enabled}
}

// CurrentFix returns the configured coordinates or ErrUnavailable.
func (p *StaticProvider) CurrentFix(ctx context.Context) (Fix, error) {
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	if !p.enabled {
		return Fix{}, ErrUnavailable
	}
	return p.fix, nil
}
