package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/nao1215/facescan/internal/log"
	"github.com/nao1215/facescan/internal/model"
	"github.com/nao1215/facescan/internal/report"
)

// ErrRender indicates that the source could not be decoded or the output
// could not be encoded or written.
var ErrRender = errors.New("render failed")

// LightGreen is the default box and label background color.
var LightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}

// Label is one "Face number N" annotation.
type Label struct {
	Text string

	// Box is the filled background, in canvas coordinates.
	Box image.Rectangle
}

// Result describes what Render drew and where it was saved.
type Result struct {
	OutputPath string
	Boxes      []image.Rectangle
	Labels     []Label
}

// Renderer prints face details and writes the annotated image.
type Renderer struct {
	writer report.Writer
	logger *slog.Logger
	color  color.RGBA
	face   font.Face
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOutput sets where the face count, attribute blocks and saved path are printed.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.writer = report.NewConsoleWriter(w)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithColor sets the box and label background color.
func WithColor(c color.Color) Option {
	return func(r *Renderer) {
		if c != nil {
			if rgba, ok := color.RGBAModel.Convert(c).(color.RGBA); ok {
				r.color = rgba
			}
		}
	}
}

// NewRenderer creates a Renderer. Without WithOutput nothing is printed.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		writer: report.NewConsoleWriter(io.Discard),
		logger: log.NewDiscardLogger(),
		color:  LightGreen,
		face:   basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render prints the results for faces and saves sourcePath, annotated with
// one box and one label per face, to outputPath.
//
// The source is decoded from disk independently of any bytes read earlier.
// If any face lacks an attribute, or decoding, encoding or writing fails,
// Render returns an error and outputPath is left untouched.
func (r *Renderer) Render(faces []model.DetectedFace, sourcePath, outputPath string) (*Result, error) {
	if err := r.writer.WriteCount(len(faces)); err != nil {
		return nil, fmt.Errorf("%w: failed to write report: %w", ErrRender, err)
	}

	canvas, err := loadCanvas(sourcePath)
	if err != nil {
		return nil, err
	}
	overlay := image.NewRGBA(canvas.Bounds())

	result := &Result{
		OutputPath: outputPath,
		Boxes:      make([]image.Rectangle, 0, len(faces)),
		Labels:     make([]Label, 0, len(faces)),
	}

	for i, face := range faces {
		index := i + 1
		if err := r.writer.WriteFace(index, face); err != nil {
			return nil, err
		}

		box := face.Rectangle.Bounds()
		drawOutline(canvas, box, r.color)
		result.Boxes = append(result.Boxes, box)

		label := r.drawLabel(overlay, fmt.Sprintf("Face number %d", index), box.Min)
		result.Labels = append(result.Labels, label)

		r.logger.Debug("face drawn", "index", index, "box", box.String(), "label_box", label.Box.String())
	}

	draw.Draw(canvas, canvas.Bounds(), overlay, canvas.Bounds().Min, draw.Over)

	if err := save(canvas, outputPath); err != nil {
		return nil, err
	}
	r.logger.Debug("annotated image saved", "path", outputPath, "faces", len(faces))

	if err := r.writer.WriteSaved(outputPath); err != nil {
		return nil, fmt.Errorf("%w: failed to write report: %w", ErrRender, err)
	}
	return result, nil
}
