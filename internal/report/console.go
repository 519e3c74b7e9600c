package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/facescan/internal/model"
)

// ConsoleWriter prints results as plain text, one line per value.
//
// Numbers are printed in their shortest form with at least one decimal
// ("0.0", "-12.5") and booleans as "True" or "False", so the output stays
// comparable with earlier runs of the tool.
type ConsoleWriter struct {
	baseWriter
}

var _ Writer = (*ConsoleWriter)(nil)

// NewConsoleWriter creates a ConsoleWriter that outputs to the given writer.
func NewConsoleWriter(output io.Writer) *ConsoleWriter {
	return &ConsoleWriter{baseWriter: newBaseWriter(output)}
}

// WriteCount prints "{n} faces detected.". Nothing is printed for zero faces.
func (w *ConsoleWriter) WriteCount(n int) error {
	if n <= 0 {
		return nil
	}
	return w.writeString(fmt.Sprintf("%d faces detected.\n", n))
}

// WriteFace prints the attribute block of one face.
//
// Lines are written as each attribute is read. When an attribute is missing,
// the lines before it stay written and an error wrapping
// model.ErrAttributeMissing is returned.
func (w *ConsoleWriter) WriteFace(index int, face model.DetectedFace) error {
	if err := w.writeString(fmt.Sprintf("\nFace number %d\n", index)); err != nil {
		return err
	}

	pose, err := face.HeadPose()
	if err != nil {
		return fmt.Errorf("face number %d: %w", index, err)
	}
	lines := []string{
		line("Head Pose (Yaw)", formatFloat(pose.Yaw)),
		line("Head Pose (Pitch)", formatFloat(pose.Pitch)),
		line("Head Pose (Roll)", formatFloat(pose.Roll)),
	}
	if err := w.writeString(strings.Join(lines, "")); err != nil {
		return err
	}

	blur, err := face.Blur()
	if err != nil {
		return fmt.Errorf("face number %d: %w", index, err)
	}
	if err := w.writeString(line("Blur", string(blur.Level))); err != nil {
		return err
	}

	mask, err := face.Mask()
	if err != nil {
		return fmt.Errorf("face number %d: %w", index, err)
	}
	return w.writeString(line("Mask", string(mask.Type)) +
		line("Nose and mouth covered", formatBool(mask.NoseAndMouthCovered)))
}

// WriteSaved prints the output path preceded by a blank line.
func (w *ConsoleWriter) WriteSaved(path string) error {
	return w.writeString(fmt.Sprintf("\nResults saved in %s\n", path))
}

func line(label, value string) string {
	return " - " + label + ": " + value + "\n"
}

// formatFloat prints v in its shortest exact form, keeping a ".0" on whole numbers.
// Magnitudes from 1e-4 up to 1e16 are written in positional notation and the
// rest in exponent form.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	format := byte('g')
	if a := math.Abs(v); a == 0 || (a >= 1e-4 && a < 1e16) {
		format = 'f'
	}
	s := strconv.FormatFloat(v, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
