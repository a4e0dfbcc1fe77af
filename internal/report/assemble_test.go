package report_test

import (
	"strings"
	"testing"
	"time"

	"titlecheck/internal/ingest"
	"titlecheck/internal/report"
	"titlecheck/internal/richtext"
)

type stubRecord struct {
	sheet  string
	number string
	titles []string
}

func (r stubRecord) Identifier() string       { return r.sheet }
func (r stubRecord) DrawingNumber() string    { return r.number }
func (r stubRecord) TitleFragments() []string { return r.titles }

var testOptions = report.Options{
	Style: richtext.Style{
		Size:         12,
		CurrentColor: "FFFF0000",
		CorrectColor: "FF008000",
	},
	Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
}

func register(pairs ...string) ingest.RecordMap {
	m := make(ingest.RecordMap)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[strings.ToLower(pairs[i])] = pairs[i+1]
	}
	return m
}

func TestAssembleMatchedEmitsNoRow(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-01", number: "A-101", titles: []string{"Room", "Plan"}},
	}
	res := report.Assemble(recs, register("A-101", "Room Plan"), testOptions)

	if res.Counts.Matched != 1 {
		t.Fatalf("matched = %d, want 1", res.Counts.Matched)
	}
	if res.Counts.Mismatched+res.Counts.KeyNotFound+res.Counts.MissingNumber != 0 {
		t.Fatalf("unexpected non-match counts: %+v", res.Counts)
	}
	// Summary and header rows only.
	if len(res.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Rows))
	}
}

func TestAssembleMissingNumber(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-02", number: "  ", titles: []string{"Orphan Title"}},
	}
	res := report.Assemble(recs, register(), testOptions)

	if res.Counts.MissingNumber != 1 {
		t.Fatalf("missing number = %d, want 1", res.Counts.MissingNumber)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(res.Rows))
	}
	row := res.Rows[2]
	if len(row) != 5 {
		t.Fatalf("detail row length = %d, want 5", len(row))
	}
	if row[0].Text() != "S-02" || row[1].Text() != "" {
		t.Fatalf("sheet/key cells = %q/%q", row[0].Text(), row[1].Text())
	}
	if row[2].Text() != "Orphan Title" || row[3].Text() != "" {
		t.Fatalf("title cells = %q/%q", row[2].Text(), row[3].Text())
	}
	if row[4].Text() != report.MissingNumber.String() {
		t.Fatalf("status cell = %q", row[4].Text())
	}
}

func TestAssembleSkipsRecordWithoutNumberAndTitle(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-03", number: "", titles: []string{"  "}},
	}
	res := report.Assemble(recs, register(), testOptions)
	if len(res.Rows) != 2 {
		t.Fatalf("rows = %d, want summary and header only", len(res.Rows))
	}
	if res.Counts != (report.Counts{}) {
		t.Fatalf("counts = %+v, want zero", res.Counts)
	}
}

func TestAssembleKeyNotFound(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-04", number: "A-999", titles: []string{"Unknown"}},
	}
	res := report.Assemble(recs, register("A-101", "Room Plan"), testOptions)

	if res.Counts.KeyNotFound != 1 {
		t.Fatalf("key not found = %d, want 1", res.Counts.KeyNotFound)
	}
	row := res.Rows[2]
	if row[1].Text() != "A-999" {
		t.Fatalf("key cell = %q", row[1].Text())
	}
	if row[4].Text() != report.KeyNotFound.String() {
		t.Fatalf("status cell = %q", row[4].Text())
	}
}

func TestAssembleTitleMismatchHighlights(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-05", number: "A-101", titles: []string{"ROOM PLAN A-101"}},
	}
	res := report.Assemble(recs, register("A-101", "ROOM PLAN A-102"), testOptions)

	if res.Counts.Mismatched != 1 {
		t.Fatalf("mismatched = %d, want 1", res.Counts.Mismatched)
	}
	row := res.Rows[2]
	if !row[2].IsRich() || !row[3].IsRich() {
		t.Fatal("mismatch cells should be rich")
	}
	if row[2].Text() != "ROOM PLAN A-101" || row[3].Text() != "ROOM PLAN A-102" {
		t.Fatalf("cells reconstruct to %q / %q", row[2].Text(), row[3].Text())
	}
	last := row[2].Runs()[len(row[2].Runs())-1]
	if !last.Bold || last.Color != "FFFF0000" || last.Size != 12 {
		t.Fatalf("current highlighted run = %+v", last)
	}
}

func TestAssembleMatchIsCaseAndWhitespaceInsensitive(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-06", number: " a-101 ", titles: []string{"room", "", "plan"}},
	}
	res := report.Assemble(recs, register("A-101", "ROOM\r\nPLAN"), testOptions)
	if res.Counts.Matched != 1 {
		t.Fatalf("counts = %+v, want one match", res.Counts)
	}
}

func TestAssembleSummaryAndHeaderRows(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-07", number: "A-500", titles: []string{"X"}},
	}
	res := report.Assemble(recs, register(), testOptions)

	summary := res.Rows[0]
	if len(summary) != 1 {
		t.Fatalf("summary row length = %d, want 1", len(summary))
	}
	text := summary[0].Text()
	if !strings.Contains(text, "2026-03-14") {
		t.Fatalf("summary missing timestamp: %q", text)
	}
	if !strings.Contains(text, "not in register 1") {
		t.Fatalf("summary missing counts: %q", text)
	}

	header := res.Rows[1]
	if len(header) != 5 || header[1].Text() != "Drawing Number" {
		t.Fatalf("unexpected header row: %+v", header)
	}
}

func TestAssemblePreservesRecordOrder(t *testing.T) {
	recs := []report.Record{
		stubRecord{sheet: "S-2", number: "B-2", titles: []string{"Two"}},
		stubRecord{sheet: "S-1", number: "B-1", titles: []string{"One"}},
	}
	res := report.Assemble(recs, register(), testOptions)
	if res.Rows[2][0].Text() != "S-2" || res.Rows[3][0].Text() != "S-1" {
		t.Fatalf("order not preserved: %q then %q", res.Rows[2][0].Text(), res.Rows[3][0].Text())
	}
}
