// Package records supplies concrete host-side collaborators: a JSON-backed
// record source for observed titles, and a best-effort opener for the
// finished report.
package records

import (
	"encoding/json"
	"fmt"
	"os"

	"titlecheck/internal/report"
)

// fileRecord is one entry of the JSON export: the sheet it belongs to, the
// drawing-number field, and the raw title fragments.
type fileRecord struct {
	Sheet  string   `json:"sheet"`
	Number string   `json:"number"`
	Titles []string `json:"titles"`
}

func (r fileRecord) Identifier() string       { return r.Sheet }
func (r fileRecord) DrawingNumber() string    { return r.Number }
func (r fileRecord) TitleFragments() []string { return r.Titles }

// FileSource reads observed title records from a JSON export file.
type FileSource struct {
	path string
}

// NewFileSource returns a source backed by the JSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ListTargetRecords loads and returns the records in file order.
func (s *FileSource) ListTargetRecords() ([]report.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	var entries []fileRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse records file %s: %w", s.path, err)
	}
	out := make([]report.Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	return out, nil
}
