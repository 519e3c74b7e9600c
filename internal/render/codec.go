package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif" // source decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // source decoder
)

// jpegQuality is used for .jpg and .jpeg outputs.
const jpegQuality = 95

// encoder writes img in one output format.
type encoder func(w io.Writer, img image.Image) error

// encoderFor picks the encoder by file extension, case-insensitively.
func encoderFor(path string) (encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
		}, nil
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", ErrRender, filepath.Ext(path))
	}
}

// loadCanvas decodes path into a new RGBA image with the same bounds.
func loadCanvas(path string) (*image.RGBA, error) {
	f, err := os.Open(path) //nolint:gosec // path is the operator-chosen input image
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrRender, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrRender, path, err)
	}

	canvas := image.NewRGBA(src.Bounds())
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)
	return canvas, nil
}

// save encodes img to a temporary file next to path and renames it over path.
// The temporary file is removed on any failure.
func save(img image.Image, path string) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file: %w", ErrRender, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, img); err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", ErrRender, path, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions: %w", ErrRender, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrRender, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrRender, path, err)
	}
	return nil
}
