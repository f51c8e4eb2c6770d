package convert

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/imgbench/pkg/pixbuf"
)

// FromImage copies a decoded image into a canonical buffer.
//
// Gray images give one channel, opaque color images three (RGB) and all
// other images four (non-premultiplied RGBA).
func FromImage(img image.Image) (*pixbuf.Array, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.Gray:
		arr, err := pixbuf.New(h, w, 1)
		if err != nil {
			return nil, fmt.Errorf("image to buffer: %w", err)
		}
		pix := arr.Pix()
		for y := 0; y < h; y++ {
			off := m.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], m.Pix[off:off+w])
		}
		return arr, nil

	case *image.Gray16:
		arr, err := pixbuf.New(h, w, 1)
		if err != nil {
			return nil, fmt.Errorf("image to buffer: %w", err)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				arr.Set(y, x, 0, uint8(m.Gray16At(b.Min.X+x, b.Min.Y+y).Y>>8))
			}
		}
		return arr, nil
	}

	channels := 4
	if isOpaque(img) {
		channels = 3
	}

	arr, err := pixbuf.New(h, w, channels)
	if err != nil {
		return nil, fmt.Errorf("image to buffer: %w", err)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	pix := arr.Pix()
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			copy(pix[(y*w+x)*channels:(y*w+x+1)*channels], row[x*4:x*4+channels])
		}
	}
	return arr, nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
