package mocks

import (
	"image"
	"image/color"

	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

// Call kinds recorded by Surface.
const (
	CallFill  = "fill"
	CallLines = "lines"
	CallBlit  = "blit"
)

// SurfaceCall is one recorded draw call.
type SurfaceCall struct {
	Kind   string
	Color  color.Color
	Closed bool
	Points []image.Point
	Width  float64
	Array  *pixbuf.Array
	At     image.Point
}

// Surface is a mock implementation of ports.Surface that records draw calls.
type Surface struct {
	width  int
	height int

	Calls []SurfaceCall

	// PixelsFunc overrides Pixels; by default a zeroed (width, height, 3)
	// array is returned.
	PixelsFunc func() *pixbuf.Array
	BlitFunc   func(arr *pixbuf.Array, x, y int) error
}

// NewSurface creates a mock surface of the given size.
func NewSurface(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

func (m *Surface) Size() (int, int) {
	return m.width, m.height
}

func (m *Surface) Fill(c color.Color) {
	m.Calls = append(m.Calls, SurfaceCall{Kind: CallFill, Color: c})
}

func (m *Surface) DrawLines(c color.Color, closed bool, pts []image.Point, width float64) {
	cp := make([]image.Point, len(pts))
	copy(cp, pts)
	m.Calls = append(m.Calls, SurfaceCall{Kind: CallLines, Color: c, Closed: closed, Points: cp, Width: width})
}

func (m *Surface) Blit(arr *pixbuf.Array, x, y int) error {
	m.Calls = append(m.Calls, SurfaceCall{Kind: CallBlit, Array: arr, At: image.Pt(x, y)})
	if m.BlitFunc != nil {
		return m.BlitFunc(arr, x, y)
	}
	return nil
}

func (m *Surface) Pixels() *pixbuf.Array {
	if m.PixelsFunc != nil {
		return m.PixelsFunc()
	}
	arr, err := pixbuf.New(m.width, m.height, 3)
	if err != nil {
		return nil
	}
	return arr
}

func (m *Surface) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

// CallsOf returns the recorded calls of one kind.
func (m *Surface) CallsOf(kind string) []SurfaceCall {
	var out []SurfaceCall
	for _, c := range m.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards recorded calls.
func (m *Surface) Reset() {
	m.Calls = nil
}

var _ ports.Surface = (*Surface)(nil)
