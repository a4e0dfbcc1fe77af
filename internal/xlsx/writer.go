package xlsx

import (
	"archive/zip"
	"fmt"
	"os"

	"titlecheck/internal/fileutil"
	"titlecheck/internal/richtext"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const defaultSheetName = "Result"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
	`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
	`</Relationships>`

const workbookRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>` +
	`</Relationships>`

// Writer serializes row tables into single-sheet workbooks.
type Writer struct {
	// SheetName is the worksheet name; empty means "Result".
	SheetName string
}

// NewWriter returns a writer for the given worksheet name.
func NewWriter(sheetName string) *Writer {
	return &Writer{SheetName: sheetName}
}

// Write creates a workbook at path holding the given rows, replacing any
// existing file. The archive is assembled in a temporary file first so a
// construction failure leaves no partial output behind.
func (w *Writer) Write(path string, rows []richtext.Row) error {
	name := w.SheetName
	if name == "" {
		name = defaultSheetName
	}
	return fileutil.WriteFileAtomic(path, func(f *os.File) error {
		zw := zip.NewWriter(f)
		parts := []struct {
			name string
			body string
		}{
			{"[Content_Types].xml", contentTypesXML},
			{"_rels/.rels", packageRelsXML},
			{"xl/workbook.xml", workbookXML(name)},
			{"xl/_rels/workbook.xml.rels", workbookRelsXML},
			{"xl/worksheets/sheet1.xml", worksheetXML(rows)},
		}
		for _, part := range parts {
			entry, err := zw.Create(part.name)
			if err != nil {
				return fmt.Errorf("create archive part %s: %w", part.name, err)
			}
			if _, err := entry.Write([]byte(part.body)); err != nil {
				return fmt.Errorf("write archive part %s: %w", part.name, err)
			}
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("finalize archive: %w", err)
		}
		return nil
	})
}

func workbookXML(sheetName string) string {
	return xmlHeader +
		`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<sheets><sheet name="` + escapeXML(sheetName) + `" sheetId="1" r:id="rId1"/></sheets>` +
		`</workbook>`
}
