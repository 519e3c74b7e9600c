package imagefile

import (
	"bytes"
	"image"
	// Registered decoders for DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nao1215/facescan/internal/model"
)

// Inspect reports the format, dimensions and EXIF details of data.
// Unknown or corrupt data yields zero values.
func Inspect(data []byte) model.ImageMetadata {
	var md model.ImageMetadata

	if cfg, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		md.Format = format
		md.Width = cfg.Width
		md.Height = cfg.Height
	}

	applyExif(&md, data)
	return md
}
