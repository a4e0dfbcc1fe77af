package report

import (
	"fmt"
	"strings"
	"time"

	"titlecheck/internal/ingest"
	"titlecheck/internal/richtext"
	"titlecheck/internal/textutil"
)

// Options configures assembly. The highlight style comes from configuration
// rather than a compiled-in constant so deployments can tune the emphasis.
type Options struct {
	Style richtext.Style
	// Timestamp appears in the summary row. Zero means time.Now().
	Timestamp time.Time
}

// Counts tallies the classification outcomes of one run.
type Counts struct {
	Matched       int
	Mismatched    int
	KeyNotFound   int
	MissingNumber int
}

// Summary renders the counts as a single human-readable line.
func (c Counts) Summary() string {
	return fmt.Sprintf("matched %d, mismatched %d, not in register %d, missing number %d",
		c.Matched, c.Mismatched, c.KeyNotFound, c.MissingNumber)
}

// Result is the assembled row table plus the run tallies.
type Result struct {
	Rows   []richtext.Row
	Counts Counts
}

var headerRow = richtext.Row{
	richtext.Plain("Sheet"),
	richtext.Plain("Drawing Number"),
	richtext.Plain("Current Title"),
	richtext.Plain("Register Title"),
	richtext.Plain("Status"),
}

// Assemble classifies each record against the register, in the order
// supplied, and builds the report table: one summary row, one header row,
// then one row per non-matching record. Matching records are counted but
// emit no row. Records with neither a drawing number nor a title are
// skipped outright.
func Assemble(records []Record, register ingest.RecordMap, opts Options) Result {
	var res Result
	var detail []richtext.Row

	for _, rec := range records {
		key := strings.TrimSpace(rec.DrawingNumber())
		current := textutil.NormalizeTitle(strings.Join(rec.TitleFragments(), " "))

		if key == "" {
			if current == "" {
				continue
			}
			res.Counts.MissingNumber++
			detail = append(detail, detailRow(rec.Identifier(), "",
				richtext.Plain(current), richtext.Plain(""), MissingNumber))
			continue
		}

		raw, ok := register.Lookup(key)
		if !ok {
			res.Counts.KeyNotFound++
			detail = append(detail, detailRow(rec.Identifier(), key,
				richtext.Plain(current), richtext.Plain(""), KeyNotFound))
			continue
		}

		correct := textutil.NormalizeTitle(raw)
		if strings.EqualFold(current, correct) {
			res.Counts.Matched++
			continue
		}
		res.Counts.Mismatched++
		currentRuns, correctRuns := richtext.Highlight(current, correct, opts.Style)
		detail = append(detail, detailRow(rec.Identifier(), key,
			richtext.Rich(currentRuns...), richtext.Rich(correctRuns...), TitleMismatch))
	}

	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	summary := fmt.Sprintf("Title check %s: %s", ts.Format("2006-01-02 15:04"), res.Counts.Summary())

	rows := make([]richtext.Row, 0, len(detail)+2)
	rows = append(rows, richtext.Row{richtext.Plain(summary)})
	rows = append(rows, headerRow)
	rows = append(rows, detail...)
	res.Rows = rows
	return res
}

func detailRow(sheet, key string, current, correct richtext.Cell, c Classification) richtext.Row {
	return richtext.Row{
		richtext.Plain(sheet),
		richtext.Plain(key),
		current,
		correct,
		richtext.Plain(c.String()),
	}
}
