package services

import (
	"fmt"

	"github.com/himanshuu932/rakshak/internal/db"
	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/logger"

	"go.uber.org/zap"
)

const (
	keyTrustedList = "trusted_list"
	keyRoster      = "sister_list"
)

// SettingsService reads and replaces the configuration blobs the
// interpretation engine consumes. Reads are point-in-time snapshots taken
// per processing cycle; a blob that fails to parse is treated as empty so
// one bad write can never stop message processing.
type SettingsService struct {
	store db.KVStoreInterface
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store db.KVStoreInterface) *SettingsService {
	return &SettingsService{store: store}
}

// TrustedEntries returns the current trusted-list snapshot. Storage or
// parse failures degrade to an empty list.
func (s *SettingsService) TrustedEntries() []models.TrustedEntry {
	blob, found, err := s.store.Get(keyTrustedList)
	if err != nil {
		logger.Warn("Failed to read trusted list", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	entries, err := models.ParseTrustedList(blob)
	if err != nil {
		logger.Warn("Invalid trusted list blob, treating as empty", zap.Error(err))
		return nil
	}
	return entries
}

// Roster returns the current contact-roster snapshot. Storage or parse
// failures degrade to an empty roster.
func (s *SettingsService) Roster() []models.Contact {
	blob, found, err := s.store.Get(keyRoster)
	if err != nil {
		logger.Warn("Failed to read roster", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	roster, err := models.ParseRoster(blob)
	if err != nil {
		logger.Warn("Invalid roster blob, treating as empty", zap.Error(err))
		return nil
	}
	return roster
}

// SetTrustedEntries replaces the trusted list wholesale. Every entry must
// carry a phone and a keyword.
func (s *SettingsService) SetTrustedEntries(entries []models.TrustedEntry) error {
	for i, entry := range entries {
		if !entry.Valid() {
			return fmt.Errorf("entry %d: phone and keyword are required", i)
		}
	}

	blob, err := models.EncodeTrustedList(entries)
	if err != nil {
		return err
	}
	return s.store.Put(keyTrustedList, blob)
}

// SetRoster replaces the contact roster wholesale. Every contact must
// carry a phone; display names are optional.
func (s *SettingsService) SetRoster(roster []models.Contact) error {
	for i, contact := range roster {
		if contact.Phone == "" {
			return fmt.Errorf("contact %d: phone is required", i)
		}
	}

	blob, err := models.EncodeRoster(roster)
	if err != nil {
		return err
	}
	return s.store.Put(keyRoster, blob)
}
