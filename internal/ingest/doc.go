// Package ingest loads the drawing register from a CSV export.
//
// The loader is deliberately tolerant of the files real spreadsheet tools
// emit: an optional UTF-8 byte-order mark, an optional leading "sep=<char>"
// directive, comma/semicolon/tab delimiters, RFC-4180 doubled-quote
// escaping, and header cells carrying line breaks or trailing parenthetical
// annotations. The delimiter is chosen by trying candidates until one yields
// a row in which both the "Drawing Number" and "Drawing Title" columns can
// be located; if none does, ingestion degrades to an empty register rather
// than failing.
//
// Malformed data rows (too short, or with an empty number or title cell)
// are dropped silently. Duplicate drawing numbers keep the first-seen title.
package ingest
