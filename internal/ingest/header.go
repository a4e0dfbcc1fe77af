package ingest

import "strings"

// Header cells are matched by prefix so exports with annotated headings
// ("Drawing Number (do not edit)") still resolve.
const (
	numberHeaderPrefix = "Drawing Number"
	titleHeaderPrefix  = "Drawing Title"
)

// Header holds the resolved column indices of the register file.
type Header struct {
	NumberCol int
	TitleCol  int
}

// ResolveHeader scans a candidate header row for the drawing-number and
// drawing-title columns. For each role the first matching column from the
// left wins. It reports false when either role stays unmatched.
func ResolveHeader(cells []string) (Header, bool) {
	h := Header{NumberCol: -1, TitleCol: -1}
	for i, cell := range cells {
		name := normalizeHeaderCell(cell)
		if h.NumberCol < 0 && hasFoldPrefix(name, numberHeaderPrefix) {
			h.NumberCol = i
		}
		if h.TitleCol < 0 && hasFoldPrefix(name, titleHeaderPrefix) {
			h.TitleCol = i
		}
	}
	if h.NumberCol < 0 || h.TitleCol < 0 {
		return Header{}, false
	}
	return h, true
}

// normalizeHeaderCell reduces a raw header cell to its comparable name:
// byte-order mark stripped, anything after the first line break discarded,
// a trailing parenthetical (half-width or full-width opening paren) removed,
// and surrounding whitespace trimmed.
func normalizeHeaderCell(cell string) string {
	cell = strings.TrimPrefix(cell, "\uFEFF")
	if i := strings.IndexAny(cell, "\r\n"); i >= 0 {
		cell = cell[:i]
	}
	if i := strings.IndexRune(cell, '('); i >= 0 {
		cell = cell[:i]
	}
	if i := strings.IndexRune(cell, '（'); i >= 0 {
		cell = cell[:i]
	}
	return strings.TrimSpace(cell)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
