package xlsx_test

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"titlecheck/internal/richtext"
	"titlecheck/internal/xlsx"
)

func TestColumnLetters(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		if got := xlsx.ColumnLetters(tc.index); got != tc.want {
			t.Fatalf("ColumnLetters(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

// worksheetDoc mirrors just enough of the worksheet schema to read back
// inline strings.
type worksheetDoc struct {
	XMLName xml.Name       `xml:"worksheet"`
	Rows    []worksheetRow `xml:"sheetData>row"`
}

type worksheetRow struct {
	R     int             `xml:"r,attr"`
	Cells []worksheetCell `xml:"c"`
}

type worksheetCell struct {
	R  string `xml:"r,attr"`
	Is struct {
		T    *string `xml:"t"`
		Runs []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"is"`
}

func (c worksheetCell) text() string {
	if c.Is.T != nil {
		return *c.Is.T
	}
	var b strings.Builder
	for _, r := range c.Is.Runs {
		b.WriteString(r.T)
	}
	return b.String()
}

func writeWorkbook(t *testing.T, rows []richtext.Row) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := xlsx.NewWriter("Result").Write(path, rows); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return path
}

func readPart(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part: %v", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func parseWorksheet(t *testing.T, path string) worksheetDoc {
	t.Helper()
	var doc worksheetDoc
	if err := xml.Unmarshal([]byte(readPart(t, path, "xl/worksheets/sheet1.xml")), &doc); err != nil {
		t.Fatalf("parse worksheet: %v", err)
	}
	return doc
}

func TestWriteProducesExactPackageParts(t *testing.T) {
	path := writeWorkbook(t, []richtext.Row{{richtext.Plain("hello")}})

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer zr.Close()

	want := map[string]bool{
		"[Content_Types].xml":        false,
		"_rels/.rels":                false,
		"xl/workbook.xml":            false,
		"xl/_rels/workbook.xml.rels": false,
		"xl/worksheets/sheet1.xml":   false,
	}
	for _, f := range zr.File {
		seen, ok := want[f.Name]
		if !ok {
			t.Fatalf("unexpected archive part %s", f.Name)
		}
		if seen {
			t.Fatalf("duplicate archive part %s", f.Name)
		}
		want[f.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("missing archive part %s", name)
		}
	}

	if wb := readPart(t, path, "xl/workbook.xml"); !strings.Contains(wb, `name="Result"`) {
		t.Fatalf("workbook missing sheet name: %s", wb)
	}
}

func TestWriteEscapingRoundTrip(t *testing.T) {
	original := `5" pipe & <bracket> "quoted" 'tick'`
	path := writeWorkbook(t, []richtext.Row{{richtext.Plain(original)}})

	doc := parseWorksheet(t, path)
	if len(doc.Rows) != 1 || len(doc.Rows[0].Cells) != 1 {
		t.Fatalf("unexpected worksheet shape: %+v", doc)
	}
	if got := doc.Rows[0].Cells[0].text(); got != original {
		t.Fatalf("round trip = %q, want %q", got, original)
	}
}

func TestWritePreservesSurroundingWhitespace(t *testing.T) {
	path := writeWorkbook(t, []richtext.Row{{richtext.Plain("  padded  ")}})
	sheet := readPart(t, path, "xl/worksheets/sheet1.xml")
	if !strings.Contains(sheet, `<t xml:space="preserve">  padded  </t>`) {
		t.Fatalf("whitespace preservation missing: %s", sheet)
	}
}

func TestWriteRichRuns(t *testing.T) {
	row := richtext.Row{richtext.Rich(
		richtext.Run{Text: "ROOM PLAN A-10"},
		richtext.Run{Text: "1", Bold: true, Size: 12, Color: "FFFF0000"},
	)}
	path := writeWorkbook(t, []richtext.Row{row})

	sheet := readPart(t, path, "xl/worksheets/sheet1.xml")
	if !strings.Contains(sheet, `<rPr><b/><sz val="12"/><color rgb="FFFF0000"/></rPr>`) {
		t.Fatalf("run style block missing: %s", sheet)
	}

	doc := parseWorksheet(t, path)
	if got := doc.Rows[0].Cells[0].text(); got != "ROOM PLAN A-101" {
		t.Fatalf("rich text reconstructs to %q", got)
	}
}

func TestWriteCellReferences(t *testing.T) {
	rows := []richtext.Row{
		{richtext.Plain("a"), richtext.Plain("b")},
		{richtext.Plain("c")},
	}
	path := writeWorkbook(t, rows)
	sheet := readPart(t, path, "xl/worksheets/sheet1.xml")
	for _, ref := range []string{`<c r="A1"`, `<c r="B1"`, `<c r="A2"`} {
		if !strings.Contains(sheet, ref) {
			t.Fatalf("missing cell reference %s in %s", ref, sheet)
		}
	}
}

func TestWriteNilAndEmptyRows(t *testing.T) {
	rows := []richtext.Row{
		nil,
		{},
		{richtext.Plain("x")},
	}
	path := writeWorkbook(t, rows)

	doc := parseWorksheet(t, path)
	if len(doc.Rows) != 2 {
		t.Fatalf("row elements = %d, want 2 (nil row skipped)", len(doc.Rows))
	}
	if doc.Rows[0].R != 2 || len(doc.Rows[0].Cells) != 0 {
		t.Fatalf("empty row rendered as %+v", doc.Rows[0])
	}
	if doc.Rows[1].R != 3 || doc.Rows[1].Cells[0].R != "A3" {
		t.Fatalf("data row rendered as %+v", doc.Rows[1])
	}
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := os.WriteFile(path, []byte("stale non-zip content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := xlsx.NewWriter("").Write(path, []richtext.Row{{richtext.Plain("fresh")}}); err != nil {
		t.Fatalf("Write over existing file: %v", err)
	}
	if _, err := zip.OpenReader(path); err != nil {
		t.Fatalf("result is not a valid archive: %v", err)
	}
}
