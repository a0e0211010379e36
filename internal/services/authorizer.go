package services

import (
	"strings"

	"github.com/himanshuu932/rakshak/internal/models"
)

// Authorizer gates the automatic location reply on the configured trusted
// list. An inbound message is authorized when some entry's phone appears
// in the sender address and its keyword appears, case-insensitively, in
// the message body.
type Authorizer struct{}

// NewAuthorizer creates a new authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// Authorize returns the first matching trusted entry in configured order,
// or nil when the list is empty, sender or body is empty, or nothing
// matches. Entries missing a phone or keyword are skipped.
func (a *Authorizer) Authorize(sender, body string, entries []models.TrustedEntry) *models.TrustedEntry {
	if sender == "" || body == "" || len(entries) == 0 {
		return nil
	}

	foldedBody := strings.ToUpper(body)
	for i := range entries {
		entry := entries[i]
		if !entry.Valid() {
			continue
		}
		if strings.Contains(sender, entry.Phone) &&
			strings.Contains(foldedBody, strings.ToUpper(entry.Keyword)) {
			return &entries[i]
		}
	}
	return nil
}
