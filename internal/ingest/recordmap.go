package ingest

import "strings"

// RecordMap maps a drawing-number key to the expected title for that
// drawing. Keys are stored lower-cased; use Lookup for case-insensitive
// access.
type RecordMap map[string]string

// Lookup returns the expected title for a drawing number, matching the key
// case-insensitively.
func (m RecordMap) Lookup(key string) (string, bool) {
	title, ok := m[strings.ToLower(strings.TrimSpace(key))]
	return title, ok
}

// BuildRecordMap folds the data rows after the header into a RecordMap.
// Rows too short to cover both resolved columns are skipped, as are rows
// whose number or title cell is empty after trimming. On duplicate keys the
// first-seen title is retained.
func BuildRecordMap(rows [][]string, h Header) RecordMap {
	m := make(RecordMap)
	if len(rows) < 2 {
		return m
	}
	need := h.NumberCol
	if h.TitleCol > need {
		need = h.TitleCol
	}
	for _, row := range rows[1:] {
		if len(row) <= need {
			continue
		}
		key := strings.TrimSpace(row[h.NumberCol])
		title := strings.TrimSpace(row[h.TitleCol])
		if key == "" || title == "" {
			continue
		}
		lower := strings.ToLower(key)
		if _, exists := m[lower]; exists {
			continue
		}
		m[lower] = title
	}
	return m
}
