package faceapi

import "github.com/nao1215/facescan/internal/model"

// detectedFaceDTO is one element of the detect response body.
type detectedFaceDTO struct {
	FaceRectangle  rectangleDTO       `json:"faceRectangle"`
	FaceAttributes *faceAttributesDTO `json:"faceAttributes,omitempty"`
}

type rectangleDTO struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type faceAttributesDTO struct {
	HeadPose *headPoseDTO `json:"headPose,omitempty"`
	Blur     *blurDTO     `json:"blur,omitempty"`
	Mask     *maskDTO     `json:"mask,omitempty"`
}

type headPoseDTO struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

type blurDTO struct {
	BlurLevel string  `json:"blurLevel"`
	Value     float64 `json:"value"`
}

type maskDTO struct {
	Type                string `json:"type"`
	NoseAndMouthCovered bool   `json:"noseAndMouthCovered"`
}

// errorBodyDTO is the documented error envelope.
type errorBodyDTO struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (d detectedFaceDTO) toModel() model.DetectedFace {
	face := model.DetectedFace{
		Rectangle: model.Rectangle{
			Left:   d.FaceRectangle.Left,
			Top:    d.FaceRectangle.Top,
			Width:  d.FaceRectangle.Width,
			Height: d.FaceRectangle.Height,
		},
	}
	if d.FaceAttributes == nil {
		return face
	}

	attrs := &model.FaceAttributes{}
	if hp := d.FaceAttributes.HeadPose; hp != nil {
		attrs.HeadPose = &model.HeadPose{Yaw: hp.Yaw, Pitch: hp.Pitch, Roll: hp.Roll}
	}
	if b := d.FaceAttributes.Blur; b != nil {
		attrs.Blur = &model.Blur{Level: model.BlurLevel(b.BlurLevel), Value: b.Value}
	}
	if m := d.FaceAttributes.Mask; m != nil {
		attrs.Mask = &model.Mask{Type: model.MaskType(m.Type), NoseAndMouthCovered: m.NoseAndMouthCovered}
	}
	face.Attributes = attrs
	return face
}

func toModel(dtos []detectedFaceDTO) []model.DetectedFace {
	faces := make([]model.DetectedFace, len(dtos))
	for i, d := range dtos {
		faces[i] = d.toModel()
	}
	return faces
}
