package mocks

import (
	"image"
	"image/color"

	"github.com/user/imgbench/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateSurfaceFunc func(width, height int, bg color.Color) ports.Surface
	DecodeImageFunc   func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc   func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *Renderer) CreateSurface(width, height int, bg color.Color) ports.Surface {
	if m.CreateSurfaceFunc != nil {
		return m.CreateSurfaceFunc(width, height, bg)
	}
	return NewSurface(width, height)
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)
