package xlsx

import (
	"strconv"
	"strings"

	"titlecheck/internal/richtext"
)

// xmlEscaper covers the five XML metacharacters; the same escaping is safe
// for both text content and attribute values.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// worksheetXML serializes the row table. Rows are addressed 1-based by
// table position; nil rows produce no element (leaving a gap in the
// numbering), zero-length rows produce an empty row element.
func worksheetXML(rows []richtext.Row) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`)
	b.WriteString("<sheetData>")
	for i, row := range rows {
		if row == nil {
			continue
		}
		writeRow(&b, i+1, row)
	}
	b.WriteString("</sheetData>")
	b.WriteString("</worksheet>")
	return b.String()
}

func writeRow(b *strings.Builder, number int, row richtext.Row) {
	if len(row) == 0 {
		b.WriteString(`<row r="`)
		b.WriteString(strconv.Itoa(number))
		b.WriteString(`"/>`)
		return
	}
	b.WriteString(`<row r="`)
	b.WriteString(strconv.Itoa(number))
	b.WriteString(`">`)
	for col, cell := range row {
		writeCell(b, col, number, cell)
	}
	b.WriteString("</row>")
}

func writeCell(b *strings.Builder, col, row int, cell richtext.Cell) {
	b.WriteString(`<c r="`)
	b.WriteString(cellRef(col, row))
	b.WriteString(`" t="inlineStr"><is>`)
	if cell.IsRich() {
		for _, run := range cell.Runs() {
			writeRun(b, run)
		}
	} else {
		writeText(b, cell.Text())
	}
	b.WriteString("</is></c>")
}

func writeRun(b *strings.Builder, run richtext.Run) {
	b.WriteString("<r>")
	if run.Styled() {
		b.WriteString("<rPr>")
		if run.Bold {
			b.WriteString("<b/>")
		}
		if run.Size > 0 {
			b.WriteString(`<sz val="`)
			b.WriteString(strconv.FormatFloat(run.Size, 'f', -1, 64))
			b.WriteString(`"/>`)
		}
		if run.Color != "" {
			b.WriteString(`<color rgb="`)
			b.WriteString(escapeXML(run.Color))
			b.WriteString(`"/>`)
		}
		b.WriteString("</rPr>")
	}
	writeText(b, run.Text)
	b.WriteString("</r>")
}

func writeText(b *strings.Builder, text string) {
	b.WriteString(`<t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString("</t>")
}
