package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/himanshuu932/rakshak/internal/models"
)

// A grammar inspects message text and either produces a GeoResult or nil.
type grammar func(text string) *models.GeoResult

var (
	reQueryPair   = regexp.MustCompile(`(?i)\bq=\s*(-?[0-9.]+)\s*,\s*(-?[0-9.]+)`)
	reAtPair      = regexp.MustCompile(`@\s*(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)
	reBarePair    = regexp.MustCompile(`(-?\d{1,3}\.\d+)\s*[,;]\s*(-?\d{1,3}\.\d+)`)
	reEmbedPair   = regexp.MustCompile(`!2d(-?\d+\.\d+)!3d(-?\d+\.\d+)`)
	reURL         = regexp.MustCompile(`(?i)(https?://[^\s]+)`)
	reTrailingPun = regexp.MustCompile(`[.,)]+$`)
)

var mapDomainMarkers = []string{
	"maps.google.com",
	"google.com/maps",
	"maps.app.goo.gl",
	"goo.gl/maps",
}

// Extractor scans free text for geographic coordinates or map links using
// an ordered cascade of independent pattern grammars. The first grammar
// that matches wins; later grammars are never consulted.
type Extractor struct {
	cascade []grammar
}

// NewExtractor builds the extractor with its fixed grammar order: map
// query parameter, at-sign pair, bare delimited pair, embedded tile URL,
// then map-domain URL.
func NewExtractor() *Extractor {
	return &Extractor{
		cascade: []grammar{
			matchQueryPair,
			matchAtPair,
			matchBarePair,
			matchEmbedPair,
			matchMapURL,
		},
	}
}

// Extract runs the cascade over text and returns the first match, or nil
// when no grammar produced a result.
func (e *Extractor) Extract(text string) *models.GeoResult {
	if text == "" {
		return nil
	}
	for _, g := range e.cascade {
		if res := g(text); res != nil {
			return res
		}
	}
	return nil
}

// AnyURL returns the first http(s) token in text regardless of domain,
// with trailing punctuation trimmed, or "". This is the orchestrator-level
// last resort for messages where the cascade found nothing; the cascade's
// own URL grammar stays restricted to map domains.
func (e *Extractor) AnyURL(text string) string {
	m := reURL.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return trimTrailingPunctuation(m[1])
}

// coordinateResult builds the canonical result for a parsed pair, keeping
// the matched text spelling in the URL rather than reformatting the floats.
func coordinateResult(latText, lonText string) *models.GeoResult {
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return nil
	}
	return &models.GeoResult{
		MapURL:    "https://maps.google.com/?q=" + latText + "," + lonText,
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func matchQueryPair(text string) *models.GeoResult {
	m := reQueryPair.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return coordinateResult(m[1], m[2])
}

func matchAtPair(text string) *models.GeoResult {
	m := reAtPair.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return coordinateResult(m[1], m[2])
}

func matchBarePair(text string) *models.GeoResult {
	m := reBarePair.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return coordinateResult(m[1], m[2])
}

// matchEmbedPair handles embedded tile URLs where the longitude token
// (!2d) precedes the latitude token (!3d) in the source text.
func matchEmbedPair(text string) *models.GeoResult {
	m := reEmbedPair.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return coordinateResult(m[2], m[1])
}

func matchMapURL(text string) *models.GeoResult {
	m := reURL.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	url := trimTrailingPunctuation(m[1])
	lower := strings.ToLower(url)
	for _, marker := range mapDomainMarkers {
		if strings.Contains(lower, marker) {
			return &models.GeoResult{MapURL: url}
		}
	}
	return nil
}

func trimTrailingPunctuation(url string) string {
	return reTrailingPun.ReplaceAllString(url, "")
}
