package ggrenderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

// Surface implements ports.Surface using gg.Context.
type Surface struct {
	dc *gg.Context
}

// NewSurface creates a surface of the given size filled with bg.
func NewSurface(width, height int, bg color.Color) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Surface{dc: dc}
}

// Context exposes the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Size returns the surface dimensions.
func (s *Surface) Size() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// Fill replaces every pixel with c.
func (s *Surface) Fill(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// DrawLines strokes a line strip through pts. Fewer than two points draw nothing.
func (s *Surface) DrawLines(c color.Color, closed bool, pts []image.Point, width float64) {
	if len(pts) < 2 {
		return
	}

	s.dc.Push()
	defer s.dc.Pop()

	// gg coordinates address pixel edges; shift onto centers so 1px strokes
	// cover whole pixels.
	s.dc.NewSubPath()
	s.dc.MoveTo(float64(pts[0].X)+0.5, float64(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		s.dc.LineTo(float64(p.X)+0.5, float64(p.Y)+0.5)
	}
	if closed {
		s.dc.ClosePath()
	}

	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

// Blit copies a (width, height, channels) array onto the surface at (x, y).
// Samples replace the surface pixels; an alpha channel is ignored.
func (s *Surface) Blit(arr *pixbuf.Array, x, y int) error {
	buf, err := pixbuf.NewImage(arr.SwapAxes())
	if err != nil {
		return fmt.Errorf("blit: %w", err)
	}
	var img image.Image = buf
	if !buf.Opaque() {
		img = opaqueImage{buf}
	}

	dst, ok := s.dc.Image().(*image.RGBA)
	if !ok {
		s.dc.DrawImage(img, x, y)
		return nil
	}

	// Direct copy keeps samples exact; gg.DrawImage resamples through its transform.
	r := img.Bounds().Add(image.Pt(x, y))
	draw.Draw(dst, r, img, image.Point{}, draw.Src)
	return nil
}

// Pixels returns the RGB samples as a (width, height, 3) array, or nil for
// a surface with no pixels.
func (s *Surface) Pixels() *pixbuf.Array {
	w, h := s.Size()
	arr, err := pixbuf.New(w, h, 3)
	if err != nil {
		return nil
	}

	src := s.dc.Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			arr.Set(x, y, 0, c.R)
			arr.Set(x, y, 1, c.G)
			arr.Set(x, y, 2, c.B)
		}
	}
	return arr
}

// opaqueImage reports every pixel of the wrapped image at full alpha.
type opaqueImage struct {
	image.Image
}

func (o opaqueImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (o opaqueImage) At(x, y int) color.Color {
	c := color.NRGBAModel.Convert(o.Image.At(x, y)).(color.NRGBA)
	c.A = 0xff
	return c
}

func (o opaqueImage) Opaque() bool {
	return true
}

// ToImage returns the surface as an image.Image.
func (s *Surface) ToImage() image.Image {
	return s.dc.Image()
}

// Ensure Surface implements ports.Surface
var _ ports.Surface = (*Surface)(nil)
