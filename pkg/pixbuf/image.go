package pixbuf

import (
	"fmt"
	"image"
	"image/color"
)

// Image presents a canonical (height, width, channels) array as an
// image.Image. Samples are read in place, so later writes to the array
// show through.
type Image struct {
	arr *Array
}

// NewImage wraps a canonical array. Channel counts 1 (gray), 2 (gray and
// alpha), 3 (RGB) and 4 (non-premultiplied RGBA) are accepted.
func NewImage(arr *Array) (*Image, error) {
	switch c := arr.shape[2]; c {
	case 1, 2, 3, 4:
		return &Image{arr: arr}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrChannels, c)
	}
}

// Array returns the wrapped buffer.
func (m *Image) Array() *Array {
	return m.arr
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	switch m.arr.shape[2] {
	case 1:
		return color.GrayModel
	case 3:
		return color.RGBAModel
	default:
		return color.NRGBAModel
	}
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.arr.shape[1], m.arr.shape[0])
}

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Transparent
	}
	i := m.arr.offset(y, x, 0)
	p := m.arr.pix[i : i+m.arr.shape[2]]
	switch len(p) {
	case 1:
		return color.Gray{Y: p[0]}
	case 2:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: p[1]}
	case 3:
		return color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	default:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

// Opaque reports whether every pixel is fully opaque.
func (m *Image) Opaque() bool {
	c := m.arr.shape[2]
	if c == 1 || c == 3 {
		return true
	}
	for i := c - 1; i < len(m.arr.pix); i += c {
		if m.arr.pix[i] != 0xff {
			return false
		}
	}
	return true
}

var _ image.Image = (*Image)(nil)
