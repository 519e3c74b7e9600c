package model

import (
	"errors"
	"fmt"
	"image"
)

// ErrAttributeMissing is returned when a face attribute is read that was not
// requested or not populated by the service.
var ErrAttributeMissing = errors.New("face attribute missing")

// Rectangle is the pixel-space region a face occupies, given as the offset of
// its top-left corner plus its size.
type Rectangle struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Min returns the top-left corner (left, top).
func (r Rectangle) Min() image.Point {
	return image.Pt(r.Left, r.Top)
}

// Max returns the bottom-right corner (left+width, top+height).
func (r Rectangle) Max() image.Point {
	return image.Pt(r.Left+r.Width, r.Top+r.Height)
}

// Bounds returns the rectangle as an image.Rectangle from Min to Max.
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rectangle{Min: r.Min(), Max: r.Max()}
}

// HeadPose is the orientation of the head in degrees.
type HeadPose struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// BlurLevel is the categorical blur estimate of a face.
type BlurLevel string

// Blur levels reported by the service.
const (
	BlurLevelLow    BlurLevel = "low"
	BlurLevelMedium BlurLevel = "medium"
	BlurLevelHigh   BlurLevel = "high"
)

// Blur holds the blur level and the numeric blur value in [0, 1].
type Blur struct {
	Level BlurLevel
	Value float64
}

// MaskType is the categorical mask classification of a face.
// Values outside the constants below are kept verbatim.
type MaskType string

// Mask types reported by the service.
const (
	MaskTypeNoMask               MaskType = "noMask"
	MaskTypeFaceMask             MaskType = "faceMask"
	MaskTypeOtherMaskOrOcclusion MaskType = "otherMaskOrOcclusion"
	MaskTypeUncertain            MaskType = "uncertain"
)

// Mask holds the mask classification of a face.
type Mask struct {
	Type                MaskType
	NoseAndMouthCovered bool
}

// FaceAttributes holds the attribute categories of one face.
// A nil field means the category was not requested or not populated.
type FaceAttributes struct {
	HeadPose *HeadPose
	Blur     *Blur
	Mask     *Mask
}

// DetectedFace is one element of a detection response.
// Faces have no identity beyond their position in the response.
type DetectedFace struct {
	Rectangle  Rectangle
	Attributes *FaceAttributes
}

// HeadPose returns the head pose or an error wrapping ErrAttributeMissing.
func (f DetectedFace) HeadPose() (HeadPose, error) {
	if f.Attributes == nil || f.Attributes.HeadPose == nil {
		return HeadPose{}, missing(AttributeHeadPose)
	}
	return *f.Attributes.HeadPose, nil
}

// Blur returns the blur estimate or an error wrapping ErrAttributeMissing.
func (f DetectedFace) Blur() (Blur, error) {
	if f.Attributes == nil || f.Attributes.Blur == nil {
		return Blur{}, missing(AttributeBlur)
	}
	return *f.Attributes.Blur, nil
}

// Mask returns the mask classification or an error wrapping ErrAttributeMissing.
func (f DetectedFace) Mask() (Mask, error) {
	if f.Attributes == nil || f.Attributes.Mask == nil {
		return Mask{}, missing(AttributeMask)
	}
	return *f.Attributes.Mask, nil
}

func missing(a Attribute) error {
	return fmt.Errorf("%w: %s", ErrAttributeMissing, a)
}
