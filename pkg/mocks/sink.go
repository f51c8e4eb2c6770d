package mocks

import (
	"image"

	"github.com/user/imgbench/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	enabled bool

	Source image.Image
	Frames map[int]image.Image

	SaveFrameFunc func(index int, img image.Image) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSource(img image.Image) error {
	m.Source = img
	return nil
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	if m.SaveFrameFunc != nil {
		return m.SaveFrameFunc(index, img)
	}
	m.Frames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
