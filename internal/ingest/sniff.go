package ingest

import "strings"

// fallbackDelimiters is the fixed trial order when no sep= directive is
// present, or when the declared delimiter fails to resolve a header.
var fallbackDelimiters = []rune{',', ';', '\t'}

// Sniff parses raw CSV text, selecting the delimiter that first yields a
// row in which both register columns resolve. A leading "sep=<char>"
// directive, when present, is tried before the fallback candidates and
// its line is excluded from the data. Sniff reports false when no
// candidate delimiter produces a resolvable header.
func Sniff(raw string) ([][]string, Header, bool) {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	candidates := fallbackDelimiters
	if d, rest, ok := cutDirective(raw); ok {
		raw = rest
		candidates = append([]rune{d}, fallbackDelimiters...)
	}

	for _, delim := range candidates {
		rows := dropDirectiveRow(Parse(raw, delim))
		if len(rows) == 0 {
			continue
		}
		if h, ok := ResolveHeader(rows[0]); ok {
			return rows, h, true
		}
	}
	return nil, Header{}, false
}

// cutDirective recognizes a leading line of the exact form "sep=<char>"
// with <char> one of the supported delimiters, returning the declared
// delimiter and the input with the directive line removed.
func cutDirective(raw string) (rune, string, bool) {
	line := raw
	rest := ""
	if i := strings.IndexAny(raw, "\r\n"); i >= 0 {
		line = raw[:i]
		rest = raw[i:]
		if strings.HasPrefix(rest, "\r\n") {
			rest = rest[2:]
		} else {
			rest = rest[1:]
		}
	}
	d, ok := directiveDelimiter(line)
	if !ok {
		return 0, raw, false
	}
	return d, rest, true
}

func directiveDelimiter(line string) (rune, bool) {
	if len(line) != len("sep=")+1 || !strings.HasPrefix(line, "sep=") {
		return 0, false
	}
	switch line[len("sep=")] {
	case ',', ';', '\t':
		return rune(line[len("sep=")]), true
	}
	return 0, false
}

// dropDirectiveRow removes a first row that consists solely of the sep=
// directive, which happens when a directive line survives into the parsed
// data (for example when Parse is called directly on unstripped input).
func dropDirectiveRow(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	first := rows[0]
	if len(first) == 1 {
		if _, ok := directiveDelimiter(first[0]); ok {
			return rows[1:]
		}
	}
	return rows
}
