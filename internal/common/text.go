package common

import "strings"

// ClampRunes shortens s to at most limit runes, appending an ellipsis when cut.
// Whitespace runs are collapsed so multi-line model output fits on one log line.
func ClampRunes(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
