// Package pixbuf provides the 3-D uint8 array used for every in-memory
// image in imgbench.
//
// A canonical pixel buffer is an Array laid out as (height, width, channels).
// A surface array holds the same samples as (width, height, channels), which
// is how display surfaces expose their pixels. SwapAxes converts between the
// two layouts.
package pixbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when dimensions or sample counts are inconsistent.
	ErrShape = errors.New("pixbuf: invalid shape")

	// ErrChannels is returned when a channel count has no image interpretation.
	ErrChannels = errors.New("pixbuf: unsupported channel count")
)

// Array is a dense 3-D array of 8-bit samples in row-major order.
type Array struct {
	shape [3]int
	pix   []uint8
}

// New allocates a zeroed array with the given dimensions.
func New(d0, d1, d2 int) (*Array, error) {
	if d0 <= 0 || d1 <= 0 || d2 <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrShape, d0, d1, d2)
	}
	return &Array{
		shape: [3]int{d0, d1, d2},
		pix:   make([]uint8, d0*d1*d2),
	}, nil
}

// FromSlice wraps pix as an array of the given shape. The slice is not copied.
func FromSlice(shape [3]int, pix []uint8) (*Array, error) {
	if shape[0] <= 0 || shape[1] <= 0 || shape[2] <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrShape, shape[0], shape[1], shape[2])
	}
	if n := shape[0] * shape[1] * shape[2]; len(pix) != n {
		return nil, fmt.Errorf("%w: %d samples for shape (%d, %d, %d), want %d",
			ErrShape, len(pix), shape[0], shape[1], shape[2], n)
	}
	return &Array{shape: shape, pix: pix}, nil
}

// Shape returns the three dimensions.
func (a *Array) Shape() [3]int {
	return a.shape
}

// Len returns the number of samples.
func (a *Array) Len() int {
	return len(a.pix)
}

// Pix returns the backing samples.
func (a *Array) Pix() []uint8 {
	return a.pix
}

func (a *Array) offset(i, j, k int) int {
	return (i*a.shape[1]+j)*a.shape[2] + k
}

// At returns the sample at (i, j, k).
func (a *Array) At(i, j, k int) uint8 {
	return a.pix[a.offset(i, j, k)]
}

// Set stores v at (i, j, k).
func (a *Array) Set(i, j, k int, v uint8) {
	a.pix[a.offset(i, j, k)] = v
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	pix := make([]uint8, len(a.pix))
	copy(pix, a.pix)
	return &Array{shape: a.shape, pix: pix}
}

// Equal reports whether both arrays have the same shape and samples.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.shape != b.shape {
		return false
	}
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			return false
		}
	}
	return true
}

// SwapAxes returns a new array with the first two axes exchanged.
// Applying it twice yields an array equal to the original.
func (a *Array) SwapAxes() *Array {
	d0, d1, d2 := a.shape[0], a.shape[1], a.shape[2]
	out := &Array{
		shape: [3]int{d1, d0, d2},
		pix:   make([]uint8, len(a.pix)),
	}
	rowLen := d1 * d2
	for i := 0; i < d0; i++ {
		row := a.pix[i*rowLen : (i+1)*rowLen]
		for j := 0; j < d1; j++ {
			dst := (j*d0 + i) * d2
			copy(out.pix[dst:dst+d2], row[j*d2:(j+1)*d2])
		}
	}
	return out
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	return fmt.Sprintf("pixbuf.Array(%d, %d, %d)", a.shape[0], a.shape[1], a.shape[2])
}
