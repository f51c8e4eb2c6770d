package convert

import (
	"image"
	"sync"

	"github.com/user/imgbench/pkg/adapters/ggrenderer"
	"github.com/user/imgbench/pkg/adapters/logger"
	"github.com/user/imgbench/pkg/adapters/osfilesystem"
	"github.com/user/imgbench/pkg/pixbuf"
)

var (
	defaultOnce sync.Once
	defaultConv *Converter
)

// Default returns the shared Converter used by the package-level helpers.
// It reads paths from the OS filesystem, decodes with the gg renderer and
// does not log.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConv = New(osfilesystem.New(), ggrenderer.New(), logger.NewNoop())
	})
	return defaultConv
}

// Normalize converts src with the default Converter.
func Normalize(src any) (*pixbuf.Array, error) {
	return Default().Normalize(src)
}

// ToRenderSurface converts src to surface order with the default Converter.
func ToRenderSurface(src any) (*pixbuf.Array, error) {
	return Default().ToRenderSurface(src)
}

// ToImage wraps src as an image.Image with the default Converter.
func ToImage(src any) (image.Image, error) {
	return Default().ToImage(src)
}
