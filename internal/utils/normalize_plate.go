package utils

import "strings"

// NormalizePlate strips spaces and dashes from a plate number and uppercases
// it, so lookups and the uniqueness constraint see one canonical form.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
