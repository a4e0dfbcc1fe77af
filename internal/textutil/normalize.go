package textutil

import "strings"

// NormalizeTitle collapses a raw title into its comparison form: surrounding
// whitespace trimmed, carriage returns and line feeds replaced with single
// spaces, and consecutive spaces collapsed until none remain. Empty or
// whitespace-only input yields the empty string.
func NormalizeTitle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
