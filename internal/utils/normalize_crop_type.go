package utils

import "strings"

// NormalizeCropType brings a user-entered crop token to a single format.
// Trims surrounding whitespace and lowercases the token.
func NormalizeCropType(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ToLower(normalized)
	return normalized
}
