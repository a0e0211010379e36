package models

import "encoding/json"

// Contact is one member of the configured roster of known senders whose
// messages are eligible for canonical-key resolution. DisplayName is
// optional and only used by UI layers.
type Contact struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"name,omitempty"`
}

// ParseRoster decodes the stored roster blob; an empty blob is an empty
// roster, which simply means resolution always misses.
func ParseRoster(blob string) ([]Contact, error) {
	if blob == "" {
		return nil, nil
	}
	var roster []Contact
	if err := json.Unmarshal([]byte(blob), &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// EncodeRoster serializes the roster for storage.
func EncodeRoster(roster []Contact) (string, error) {
	if roster == nil {
		roster = []Contact{}
	}
	b, err := json.Marshal(roster)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
