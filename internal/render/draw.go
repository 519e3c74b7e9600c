package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the space between the label text and its background edge.
const labelPadding = 2

// drawOutline draws a 1-pixel outline whose edges pass through r.Min and
// r.Max, both inclusive. Pixels outside dst are skipped.
func drawOutline(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	b := dst.Bounds()

	x0, x1 := max(r.Min.X, b.Min.X), min(r.Max.X, b.Max.X-1)
	for x := x0; x <= x1; x++ {
		dst.SetRGBA(x, r.Min.Y, c)
		dst.SetRGBA(x, r.Max.Y, c)
	}

	y0, y1 := max(r.Min.Y, b.Min.Y), min(r.Max.Y, b.Max.Y-1)
	for y := y0; y <= y1; y++ {
		dst.SetRGBA(r.Min.X, y, c)
		dst.SetRGBA(r.Max.X, y, c)
	}
}

// drawLabel paints text on a filled background whose bottom-left corner is
// at anchor, moved inside dst when it would stick out.
func (r *Renderer) drawLabel(dst *image.RGBA, text string, anchor image.Point) Label {
	metrics := r.face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	width := font.MeasureString(r.face, text).Ceil() + 2*labelPadding
	height := ascent + descent + 2*labelPadding

	box := image.Rect(anchor.X, anchor.Y-height, anchor.X+width, anchor.Y)
	box = clampInto(box, dst.Bounds())

	draw.Draw(dst, box, image.NewUniform(r.color), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: r.face,
		Dot:  fixed.P(box.Min.X+labelPadding, box.Max.Y-labelPadding-descent),
	}
	d.DrawString(text)

	return Label{Text: text, Box: box}
}

// clampInto shifts box so that it lies within bounds where possible.
// A box larger than bounds keeps its top-left corner inside.
func clampInto(box, bounds image.Rectangle) image.Rectangle {
	var dx, dy int
	if box.Max.X > bounds.Max.X {
		dx = bounds.Max.X - box.Max.X
	}
	if box.Min.X+dx < bounds.Min.X {
		dx = bounds.Min.X - box.Min.X
	}
	if box.Max.Y > bounds.Max.Y {
		dy = bounds.Max.Y - box.Max.Y
	}
	if box.Min.Y+dy < bounds.Min.Y {
		dy = bounds.Min.Y - box.Min.Y
	}
	return box.Add(image.Pt(dx, dy))
}
