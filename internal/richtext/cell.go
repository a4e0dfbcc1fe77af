package richtext

import "strings"

// Run is a contiguous span of text sharing one style. Zero values for the
// style fields mean "inherit the default" rather than an explicit setting.
type Run struct {
	Text  string
	Bold  bool
	Size  float64
	Color string // ARGB hex, e.g. "FFFF0000"
}

// Styled reports whether the run carries any explicit formatting.
func (r Run) Styled() bool {
	return r.Bold || r.Size > 0 || r.Color != ""
}

// Cell holds either a plain string or an ordered run sequence.
type Cell struct {
	text string
	runs []Run
	rich bool
}

// Row is an ordered sequence of cells. A nil row is skipped by the
// spreadsheet writer; a zero-length row renders as a blank spreadsheet row.
type Row []Cell

// Plain returns a cell holding a single unstyled string.
func Plain(text string) Cell {
	return Cell{text: text}
}

// Rich returns a cell holding the given runs. Empty-text runs are dropped;
// if nothing remains the cell degrades to a plain empty cell.
func Rich(runs ...Run) Cell {
	kept := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == 0 {
		return Plain("")
	}
	return Cell{runs: kept, rich: true}
}

// IsRich reports whether the cell holds a run sequence.
func (c Cell) IsRich() bool {
	return c.rich
}

// Runs returns the run sequence of a rich cell. Nil for plain cells.
func (c Cell) Runs() []Run {
	return c.runs
}

// Text returns the unstyled content: the plain string, or the concatenated
// run texts of a rich cell.
func (c Cell) Text() string {
	if !c.rich {
		return c.text
	}
	var b strings.Builder
	for _, r := range c.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
