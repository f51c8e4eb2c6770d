package ports

import (
	"image"
)

// DebugSink receives intermediate images for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSource saves the most recently normalized source image.
	SaveSource(img image.Image) error

	// SaveFrame saves the surface contents after a refresh.
	SaveFrame(index int, img image.Image) error
}
