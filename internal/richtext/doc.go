// Package richtext defines the styled-text model shared by the report
// assembler and the spreadsheet writer, plus the highlighter that marks the
// differing span between an observed and an expected title.
//
// A Run is a contiguous span of text carrying one style. A Cell is a tagged
// variant holding either a plain string or an ordered run sequence; exactly
// one representation is populated, and an empty-text run never appears in a
// non-empty sequence. Construct cells through Plain and Rich so those
// invariants hold everywhere downstream.
package richtext
