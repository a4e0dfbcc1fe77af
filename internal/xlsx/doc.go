// Package xlsx writes a minimal single-sheet .xlsx workbook from scratch.
//
// The package emits exactly the five parts a valid package requires: the
// content-types manifest, the package relationships, the workbook, the
// workbook relationships, and one worksheet. Every cell is an inline string
// (no shared-string table, no styles part); rich cells carry run-level
// formatting (bold, point size, RGB color) directly in the worksheet.
// Whitespace preservation is declared on every text node so leading and
// trailing spaces survive a round-trip through spreadsheet applications.
//
// The archive is built in a temporary file and renamed into place, so a
// failed write never leaves a corrupt report at the destination.
package xlsx
