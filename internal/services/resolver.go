package services

import (
	"strings"

	"github.com/himanshuu932/rakshak/internal/models"
	"github.com/himanshuu932/rakshak/pkg/utils"
)

// Resolver finds the canonical roster contact for a sender address.
//
// Matching is deliberately permissive: numbers arrive with inconsistent
// country-code prefixes and leading zeros across carriers, so two numbers
// are considered the same when either digits-only form ends with or
// contains the other. Very short numbers can therefore false-positive;
// that is a known product tradeoff and must not be tightened here.
type Resolver struct{}

// NewResolver creates a new resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveCanonical returns the first roster contact whose normalized phone
// matches senderNorm under the four-way containment test, or nil when the
// roster is empty or nothing matches. senderNorm must already be a
// digits-only spelling.
func (r *Resolver) ResolveCanonical(senderNorm string, roster []models.Contact) *models.Contact {
	for i := range roster {
		phoneNorm := utils.NormalizePhone(roster[i].Phone)
		if phoneNorm == "" {
			continue
		}
		if strings.HasSuffix(senderNorm, phoneNorm) ||
			strings.HasSuffix(phoneNorm, senderNorm) ||
			strings.Contains(senderNorm, phoneNorm) ||
			strings.Contains(phoneNorm, senderNorm) {
			return &roster[i]
		}
	}
	return nil
}
