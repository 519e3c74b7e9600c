package report

import (
	"io"

	"github.com/nao1215/facescan/internal/model"
)

// Writer receives the results of one analysis as they are produced.
// The renderer calls WriteCount once, WriteFace per face in order and
// WriteSaved after the annotated image has been written.
type Writer interface {
	// WriteCount reports how many faces were detected.
	WriteCount(n int) error

	// WriteFace reports the attributes of the face with the given 1-based index.
	WriteFace(index int, face model.DetectedFace) error

	// WriteSaved reports where the annotated image was saved.
	WriteSaved(path string) error
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
// A nil output discards everything.
func newBaseWriter(output io.Writer) baseWriter {
	if output == nil {
		output = io.Discard
	}
	return baseWriter{output: output}
}

// writeString writes s to the output in a single call.
func (b baseWriter) writeString(s string) error {
	_, err := io.WriteString(b.output, s)
	return err
}
