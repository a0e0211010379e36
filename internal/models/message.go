package models

import "strings"

// InboundMessage is one delivered SMS event from the transport. Multi-part
// messages arrive as ordered Parts and are concatenated before processing;
// Body is used as-is when no parts are present.
type InboundMessage struct {
	Sender string   `json:"sender"`
	Body   string   `json:"body"`
	Parts  []string `json:"parts,omitempty"`
}

// FullBody returns the complete message text with multi-part segments
// joined in delivery order.
func (m InboundMessage) FullBody() string {
	if len(m.Parts) == 0 {
		return m.Body
	}
	return m.Body + strings.Join(m.Parts, "")
}

// LocationEvent is the per-message notification emitted after processing.
// It is emitted for every inbound message, including ones where no
// location was found (Parsed false), so listeners can surface "message
// received, nothing extracted".
type LocationEvent struct {
	ID         string   `json:"id"`
	From       string   `json:"from"`
	RawMessage string   `json:"rawMessage"`
	Parsed     bool     `json:"parsed"`
	MapURL     string   `json:"mapUrl,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Timestamp  int64    `json:"timestamp"`
}
