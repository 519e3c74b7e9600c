package imagefile

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrIO indicates that the input image could not be opened or read.
var ErrIO = errors.New("image I/O error")

// Read opens path and returns its entire content.
// The returned error wraps ErrIO and, for a missing file, fs.ErrNotExist.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // path is an operator-chosen input image
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrIO, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
	}
	return data, nil
}
