package model

import "time"

// ImageMetadata describes the input image as seen before upload.
// It is informational only and never changes what is sent or drawn.
type ImageMetadata struct {
	// Format is the decoder name reported by image.DecodeConfig ("jpeg", "png", ...).
	// Empty when the format is not recognized.
	Format string

	// Width and Height are the pixel dimensions of the image.
	Width  int
	Height int

	// HasEXIF reports whether an EXIF block was found.
	HasEXIF bool

	// Orientation is the EXIF orientation tag (1-8), or 0 when absent.
	Orientation int

	// CameraMake and CameraModel come from the EXIF Make and Model tags.
	CameraMake  string
	CameraModel string
}

// Analysis is the state of one facescan run.
// Each pipeline step reads what earlier steps produced and adds its own output.
type Analysis struct {
	// ImagePath is the input image, relative to the working directory.
	ImagePath string

	// OutputPath is where the annotated image is written.
	OutputPath string

	// Attributes is the attribute set requested from the service.
	Attributes []Attribute

	// Image holds the raw bytes of the input file.
	// It is set by the read step and never modified afterwards.
	Image []byte

	// Metadata describes Image.
	Metadata ImageMetadata

	// Faces is the detection response in service order.
	Faces []DetectedFace

	// SavedPath is the path of the annotated image once it has been written.
	SavedPath string

	// StartedAt is when the analysis was created.
	StartedAt time.Time

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string
}

// NewAnalysis creates an Analysis for the given input and output paths,
// requesting the fixed attribute set.
func NewAnalysis(imagePath, outputPath string) *Analysis {
	return &Analysis{
		ImagePath:      imagePath,
		OutputPath:     outputPath,
		Attributes:     FixedAttributeSet(),
		StartedAt:      time.Now(),
		PerformedSteps: make([]string, 0),
	}
}

// FaceCount returns the number of detected faces.
func (a *Analysis) FaceCount() int {
	return len(a.Faces)
}
