// Package ports defines interfaces for external dependencies.
package ports

import (
	"image"
	"image/color"

	"github.com/user/imgbench/pkg/pixbuf"
)

// Renderer abstracts raster decoding, encoding and surface creation.
type Renderer interface {
	// CreateSurface creates a drawing surface cleared to the background color.
	CreateSurface(width, height int, bg color.Color) Surface

	// DecodeImage decodes image data into an image.Image.
	// FormatAuto detects the format from the data.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// PixelSource is implemented by renderable surfaces whose pixels can be
// read back as a (width, height, channels) array.
type PixelSource interface {
	// Pixels returns a copy of the surface pixels in surface order, or nil
	// when the surface has no pixels.
	Pixels() *pixbuf.Array
}

// Surface is a 2-D raster draw target.
type Surface interface {
	PixelSource

	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Fill paints the whole surface with a single color.
	Fill(c color.Color)

	// DrawLines strokes a line strip through pts.
	// When closed is true the last point is joined back to the first.
	DrawLines(c color.Color, closed bool, pts []image.Point, width float64)

	// Blit copies a surface-ordered array onto the surface with its
	// top-left corner at (x, y).
	Blit(arr *pixbuf.Array, x, y int) error

	// ToImage returns the surface contents as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatAuto ImageFormat = iota
	FormatJPEG
	FormatPNG
)

// String returns the lower-case format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return "auto"
	}
}
