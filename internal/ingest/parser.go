package ingest

import "strings"

// Parse tokenizes raw CSV text into rows of fields using the given
// delimiter. It never fails on malformed quoting: an unterminated quote
// simply consumes the rest of the input into the open field. A lone "\r",
// a lone "\n", and the pair "\r\n" each terminate one row. A trailing row
// holding a single all-whitespace field (the usual final blank line) is
// dropped.
func Parse(raw string, delim rune) [][]string {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	var (
		rows   [][]string
		row    []string
		field  strings.Builder
		quoted bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if quoted {
			if ch != '"' {
				field.WriteRune(ch)
				continue
			}
			if i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
				continue
			}
			quoted = false
			continue
		}
		switch ch {
		case '"':
			quoted = true
		case delim:
			endField()
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			endRow()
		case '\n':
			endRow()
		default:
			field.WriteRune(ch)
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	if len(rows) > 0 {
		last := rows[len(rows)-1]
		if len(last) == 1 && strings.TrimSpace(last[0]) == "" {
			rows = rows[:len(rows)-1]
		}
	}
	return rows
}
