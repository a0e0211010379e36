package models

import "encoding/json"

// GeoResult is the structured outcome of location extraction. Latitude and
// Longitude are always set together; MapURL may stand alone for matches
// that identified a map link without parseable coordinates.
type GeoResult struct {
	MapURL    string   `json:"mapUrl,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether a full coordinate pair is present.
func (g *GeoResult) HasCoordinates() bool {
	return g != nil && g.Latitude != nil && g.Longitude != nil
}

// Empty reports whether the result carries neither a map URL nor a
// coordinate pair.
func (g *GeoResult) Empty() bool {
	return g == nil || (g.MapURL == "" && !g.HasCoordinates())
}

// LocationRecord is the last-known-location entry persisted per phone
// spelling. Parsed is true exactly when Geo is non-empty. Records are
// created once per inbound message and superseded wholesale by the next
// write to the same key, never merged.
type LocationRecord struct {
	ID         string     `json:"id"`
	RawMessage string     `json:"rawMessage"`
	// milliseconds since epoch
	Timestamp int64      `json:"timestamp"`
	Parsed    bool       `json:"parsed"`
	Geo       *GeoResult `json:"geo,omitempty"`
}

// EncodeLocationRecord serializes a record for storage.
func EncodeLocationRecord(rec *LocationRecord) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseLocationRecord decodes a stored record.
func ParseLocationRecord(blob string) (*LocationRecord, error) {
	var rec LocationRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
