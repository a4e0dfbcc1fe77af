package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrRegisterNotFound marks a register path that does not exist.
var ErrRegisterNotFound = errors.New("register file not found")

// ErrEmptyRegister marks a register that parsed but produced no usable
// drawing-number/title pairs.
var ErrEmptyRegister = errors.New("register contains no usable entries")

// LoadRegister reads and sniffs a CSV register file. A file whose header
// cannot be resolved with any candidate delimiter yields an empty map, not
// an error; callers that require entries should check against
// ErrEmptyRegister themselves.
func LoadRegister(path string) (RecordMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRegisterNotFound, path)
		}
		return nil, fmt.Errorf("read register: %w", err)
	}

	// The BOM-aware decoder owns byte-order-mark removal; the parser's own
	// strip only covers callers that feed it raw strings.
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode register: %w", err)
	}

	rows, header, ok := Sniff(string(decoded))
	if !ok {
		return RecordMap{}, nil
	}
	return BuildRecordMap(rows, header), nil
}
