package models

import "encoding/json"

// TrustedEntry pairs a phone fragment with the keyword that unlocks an
// automatic location reply. Matching is substring-based on the phone and
// case-insensitive substring-based on the keyword; entries with an empty
// phone or keyword can never match.
type TrustedEntry struct {
	Phone   string `json:"phone"`
	Keyword string `json:"keyword"`
}

// Valid reports whether the entry is eligible for matching.
func (e TrustedEntry) Valid() bool {
	return e.Phone != "" && e.Keyword != ""
}

// ParseTrustedList decodes the stored trusted-list blob. An empty blob is
// an empty list; invalid entries are kept (the authorizer skips them) so
// the stored order stays intact.
func ParseTrustedList(blob string) ([]TrustedEntry, error) {
	if blob == "" {
		return nil, nil
	}
	var entries []TrustedEntry
	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EncodeTrustedList serializes the list for storage. The whole list is
// always replaced wholesale; there is no per-entry mutation.
func EncodeTrustedList(entries []TrustedEntry) (string, error) {
	if entries == nil {
		entries = []TrustedEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
