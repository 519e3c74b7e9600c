// Package render draws detection results onto the source image and saves it.
//
// Boxes are drawn straight onto a copy of the source. Labels are drawn on a
// transparent overlay of the same size that is composited over the canvas
// once every face has been processed. The output file is written to a
// temporary name and renamed into place, so it only appears when the whole
// render succeeded.
package render
