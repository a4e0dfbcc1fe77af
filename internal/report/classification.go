package report

// Classification is the per-record reconciliation verdict. It is computed
// once during assembly and drives both the row highlighting and the summary
// counts.
type Classification int

const (
	// Matched means the observed and expected titles agree.
	Matched Classification = iota
	// MissingNumber means the record has no drawing number but carries a title.
	MissingNumber
	// KeyNotFound means the drawing number is absent from the register.
	KeyNotFound
	// TitleMismatch means the titles differ after normalization.
	TitleMismatch
)

// String returns the label written into the report's status column.
func (c Classification) String() string {
	switch c {
	case Matched:
		return "Matched"
	case MissingNumber:
		return "Missing drawing number"
	case KeyNotFound:
		return "Not found in register"
	case TitleMismatch:
		return "Title mismatch"
	default:
		return "Unknown"
	}
}
