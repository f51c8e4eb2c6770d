// Package convert normalizes image sources into canonical pixel buffers and
// converts buffers back into surface arrays and decoded images.
//
// A source is one of:
//   - *pixbuf.Array, already canonical (height, width, channels)
//   - string, a path to a raster file
//   - *pixbuf.Image, a buffer already wrapped as an image
//   - image.Image, a decoded image
//   - ports.PixelSource, a renderable surface storing (width, height, channels)
//
// Sources are recognized in that order. Nil pointers of any source type are
// unsupported.
package convert

import (
	"fmt"
	"image"
	"reflect"

	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

// Converter normalizes image sources. Paths are read through the FileSystem
// and decoded through the Renderer.
type Converter struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	log      ports.Logger
}

// New creates a Converter.
func New(fs ports.FileSystem, renderer ports.Renderer, log ports.Logger) *Converter {
	return &Converter{
		fs:       fs,
		renderer: renderer,
		log:      log.WithComponent("convert"),
	}
}

// Normalize converts src into a canonical (height, width, channels) buffer.
// A *pixbuf.Array is returned unchanged.
func (c *Converter) Normalize(src any) (*pixbuf.Array, error) {
	switch s := src.(type) {
	case *pixbuf.Array:
		if s == nil {
			return nil, unsupported(src)
		}
		return s, nil

	case string:
		img, err := c.load(s)
		if err != nil {
			return nil, err
		}
		return c.Normalize(img)

	case *pixbuf.Image:
		if s == nil {
			return nil, unsupported(src)
		}
		return s.Array(), nil

	case image.Image:
		if isNilPointer(s) {
			return nil, unsupported(src)
		}
		arr, err := FromImage(s)
		if err != nil {
			return nil, err
		}
		c.log.Debug("Normalized %s source to %v", "image", arr.Shape())
		return arr, nil

	case ports.PixelSource:
		if isNilPointer(s) {
			return nil, unsupported(src)
		}
		px := s.Pixels()
		if px == nil {
			return nil, ErrEmptySurface
		}
		arr := px.SwapAxes()
		c.log.Debug("Normalized %s source to %v", "surface", arr.Shape())
		return arr, nil

	default:
		return nil, unsupported(src)
	}
}

// ToRenderSurface normalizes src and returns it in surface order
// (width, height, channels), the inverse of the surface branch of Normalize.
func (c *Converter) ToRenderSurface(src any) (*pixbuf.Array, error) {
	arr, err := c.Normalize(src)
	if err != nil {
		return nil, err
	}
	return arr.SwapAxes(), nil
}

// ToImage normalizes src and wraps the buffer as an image.Image.
// The buffer is shared, not copied.
func (c *Converter) ToImage(src any) (image.Image, error) {
	arr, err := c.Normalize(src)
	if err != nil {
		return nil, err
	}
	img, err := pixbuf.NewImage(arr)
	if err != nil {
		return nil, fmt.Errorf("wrap buffer: %w", err)
	}
	return img, nil
}

// RGBToGrey is not implemented and always returns ErrNotImplemented.
func (c *Converter) RGBToGrey(src any) (*pixbuf.Array, error) {
	return nil, fmt.Errorf("rgb to grey: %w", ErrNotImplemented)
}

// GreyToRGB is not implemented and always returns ErrNotImplemented.
func (c *Converter) GreyToRGB(src any) (*pixbuf.Array, error) {
	return nil, fmt.Errorf("grey to rgb: %w", ErrNotImplemented)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (c *Converter) load(path string) (image.Image, error) {
	c.log.Debug("Loading image from %s", path)

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	img, err := c.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	c.log.Debug("Decoded image: %dx%d", b.Dx(), b.Dy())
	return img, nil
}
