// Package report classifies observed drawing titles against the register
// and assembles the styled row table for the spreadsheet writer.
//
// Records come from a Source, an abstraction over whatever host document
// supplied the observed titles; the assembler never inspects host-specific
// storage. Each record is classified once, immutably, and every
// non-matching classification contributes one report row. Matching records
// are only tallied.
package report
