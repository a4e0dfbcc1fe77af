package report

// Record is one observed title entry supplied by the host document.
type Record interface {
	// Identifier names the sheet or view the record came from.
	Identifier() string
	// DrawingNumber returns the raw drawing-number field, possibly empty.
	DrawingNumber() string
	// TitleFragments returns the raw title parts. Fragments are joined
	// with single spaces before normalization.
	TitleFragments() []string
}

// Source lists the records to reconcile, in presentation order.
type Source interface {
	ListTargetRecords() ([]Record, error)
}
