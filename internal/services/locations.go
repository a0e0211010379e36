package services

import (
	"fmt"

	"github.com/himanshuu932/rakshak/internal/db"
	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"
	"github.com/himanshuu932/rakshak/pkg/utils"

	"go.uber.org/zap"
)

const locationKeyPrefix = "lastLocation_"

// LocationService persists last-known-location records. Each record is
// written under every known spelling of the sender's number so callers can
// look it up under whichever spelling they hold; that denormalized fan-out
// is intentional, not duplication to clean up.
type LocationService struct {
	store db.KVStoreInterface
}

// NewLocationService creates a new location service.
func NewLocationService(store db.KVStoreInterface) *LocationService {
	return &LocationService{store: store}
}

// KeysFor derives the deduplicated storage key set for a sender address
// and the optionally resolved canonical contact: raw sender, digits-only
// sender, canonical contact phone and digits-only canonical phone.
func (s *LocationService) KeysFor(sender string, canonical *models.Contact) []string {
	spellings := []string{sender, utils.NormalizePhone(sender)}
	if canonical != nil {
		spellings = append(spellings, canonical.Phone, utils.NormalizePhone(canonical.Phone))
	}

	seen := make(map[string]struct{}, len(spellings))
	keys := make([]string, 0, len(spellings))
	for _, spelling := range spellings {
		if spelling == "" {
			continue
		}
		if _, dup := seen[spelling]; dup {
			continue
		}
		seen[spelling] = struct{}{}
		keys = append(keys, locationKeyPrefix+spelling)
	}
	return keys
}

// Save writes the record under every key. Each write is independent: a
// failure on one key is logged and the remaining keys are still written.
func (s *LocationService) Save(rec *models.LocationRecord, keys []string) {
	blob, err := models.EncodeLocationRecord(rec)
	if err != nil {
		logger.Error("Failed to encode location record", zap.Error(err))
		return
	}

	for _, key := range keys {
		if err := s.store.Put(key, blob); err != nil {
			logger.Warn("Failed to save location record",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}
}

// Get returns the record stored under the given phone spelling, falling
// back to the digits-only spelling. A miss returns (nil, nil).
func (s *LocationService) Get(phone string) (*models.LocationRecord, error) {
	spellings := []string{phone}
	if norm := utils.NormalizePhone(phone); norm != "" && norm != phone {
		spellings = append(spellings, norm)
	}
	for _, spelling := range spellings {
		if spelling == "" {
			continue
		}
		blob, found, err := s.store.Get(locationKeyPrefix + spelling)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %q: %w", spelling, err)
		}
		if !found {
			continue
		}
		return models.ParseLocationRecord(blob)
	}
	return nil, nil
}
