package utils

import "strings"

// NormalizePhone reduces a phone number to its decimal digits. Carriers,
// contact apps and map links disagree on "+", spaces, dashes and leading
// zeros, so every fuzzy comparison in this codebase runs on this
// digits-only form. Empty or digit-free input yields "".
func NormalizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// SplitMessage splits text into ordered parts of at most limit runes each.
// Text within the limit (or a non-positive limit) comes back as a single
// part. Splitting is rune-based so multi-byte characters never straddle a
// part boundary.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return []string{text}
	}

	parts := make([]string, 0, (len(runes)+limit-1)/limit)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
