package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedSourceType is returned when a source is not a pixel
	// buffer, file path, decoded image or renderable surface.
	ErrUnsupportedSourceType = errors.New("convert: unsupported source type")

	// ErrNotImplemented is returned by the color-space conversions, which
	// are declared but not provided.
	ErrNotImplemented = errors.New("convert: not implemented")

	// ErrEmptySurface is returned when a surface yields no pixel data.
	ErrEmptySurface = errors.New("convert: surface has no pixels")
)

// UnsupportedSourceError reports the Go type of a rejected source.
// It matches ErrUnsupportedSourceType with errors.Is.
type UnsupportedSourceError struct {
	Type string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("convert: unsupported source type %s", e.Type)
}

// Is reports whether target is ErrUnsupportedSourceType.
func (e *UnsupportedSourceError) Is(target error) bool {
	return target == ErrUnsupportedSourceType
}

func unsupported(src any) error {
	return &UnsupportedSourceError{Type: fmt.Sprintf("%T", src)}
}
