package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/facescan/internal/imagefile"
	"github.com/nao1215/facescan/internal/log"
	"github.com/nao1215/facescan/internal/model"
	"github.com/nao1215/facescan/internal/render"
)

// Step names as they appear in logs and in StepError.
const (
	StepReadImage = "read_image"
	StepDetect    = "detect"
	StepRender    = "render"
)

// Detector finds faces in an encoded image. *faceapi.Client implements it.
type Detector interface {
	Detect(ctx context.Context, attrs []model.Attribute, image []byte) ([]model.DetectedFace, error)
}

// Renderer prints and draws detection results. *render.Renderer implements it.
type Renderer interface {
	Render(faces []model.DetectedFace, sourcePath, outputPath string) (*render.Result, error)
}

// ReadImageStep loads the input image into the analysis.
type ReadImageStep struct {
	logger *slog.Logger
}

// NewReadImageStep creates a ReadImageStep.
func NewReadImageStep(logger *slog.Logger) *ReadImageStep {
	if logger == nil {
		logger = log.NewDiscardLogger()
	}
	return &ReadImageStep{logger: logger}
}

// Name implements Step.
func (s *ReadImageStep) Name() string { return StepReadImage }

// Do reads analysis.ImagePath into analysis.Image and records its metadata.
func (s *ReadImageStep) Do(ctx context.Context, analysis *model.Analysis) error {
	data, err := imagefile.Read(analysis.ImagePath)
	if err != nil {
		return err
	}
	analysis.Image = data

	// Metadata is only gathered when someone will see it.
	if s.logger.Enabled(ctx, slog.LevelDebug) {
		analysis.Metadata = imagefile.Inspect(data)
		s.logger.Debug("image loaded",
			"path", analysis.ImagePath,
			"bytes", len(data),
			"format", analysis.Metadata.Format,
			"width", analysis.Metadata.Width,
			"height", analysis.Metadata.Height,
			"exif", analysis.Metadata.HasEXIF,
			"orientation", analysis.Metadata.Orientation,
			"camera_make", analysis.Metadata.CameraMake,
			"camera_model", analysis.Metadata.CameraModel,
		)
	}
	return nil
}

// DetectStep sends the image to the detector once.
type DetectStep struct {
	detector Detector
}

// NewDetectStep creates a DetectStep.
func NewDetectStep(detector Detector) *DetectStep {
	return &DetectStep{detector: detector}
}

// Name implements Step.
func (s *DetectStep) Name() string { return StepDetect }

// Do stores the detected faces in analysis.Faces.
func (s *DetectStep) Do(ctx context.Context, analysis *model.Analysis) error {
	faces, err := s.detector.Detect(ctx, analysis.Attributes, analysis.Image)
	if err != nil {
		return err
	}
	analysis.Faces = faces
	return nil
}

// RenderStep prints the results and writes the annotated image.
type RenderStep struct {
	renderer Renderer
}

// NewRenderStep creates a RenderStep.
func NewRenderStep(renderer Renderer) *RenderStep {
	return &RenderStep{renderer: renderer}
}

// Name implements Step.
func (s *RenderStep) Name() string { return StepRender }

// Do renders analysis.Faces over the input image and records the saved path.
func (s *RenderStep) Do(_ context.Context, analysis *model.Analysis) error {
	result, err := s.renderer.Render(analysis.Faces, analysis.ImagePath, analysis.OutputPath)
	if err != nil {
		return err
	}
	analysis.SavedPath = result.OutputPath
	return nil
}

// DefaultPipeline builds the read, detect and render pipeline.
func DefaultPipeline(detector Detector, renderer Renderer, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewReadImageStep(p.logger),
		NewDetectStep(detector),
		NewRenderStep(renderer),
	)
	return p
}
