package handlers

import (
	"github.com/himanshuu932/rakshak/internal/models"
)

// ProcessorInterface defines the contract for inbound message processing
// This interface is used for dependency injection and testing
type ProcessorInterface interface {
	Process(msg models.InboundMessage)
}

// SettingsServiceInterface defines the contract for settings operations
// This interface is used for dependency injection and testing
type SettingsServiceInterface interface {
	TrustedEntries() []models.TrustedEntry
	Roster() []models.Contact
	SetTrustedEntries(entries []models.TrustedEntry) error
	SetRoster(roster []models.Contact) error
}

// LocationReaderInterface defines the contract for last-known-location lookups
type LocationReaderInterface interface {
	Get(phone string) (*models.LocationRecord, error)
}

// EventSourceInterface defines the contract for reading recent notification events
type EventSourceInterface interface {
	Recent() []models.LocationEvent
}
