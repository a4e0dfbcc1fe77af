// Package textutil provides text processing utilities for title
// normalization and filename sanitization.
//
// NormalizeTitle produces the canonical form used for every title
// comparison: no line breaks, no runs of consecutive spaces, no surrounding
// whitespace. The operation is idempotent, so normalized values can be
// normalized again without changing.
package textutil
