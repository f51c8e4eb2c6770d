// Package bench draws an image and a list of markers and polylines onto a
// target surface.
//
// A Bench keeps the current image, draw list, target and color. Each Refresh
// replaces whichever of those were given, then redraws everything from
// scratch: clear to black, blit the image at the origin, stroke the list.
// A Bench is not safe for concurrent use.
package bench

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

// DefaultColor is the stroke color of a new Bench. Colors are not
// alpha-premultiplied.
var DefaultColor = color.NRGBA{R: 100, G: 170, B: 250, A: 170}

// ErrNoTarget is returned when a Bench is created without a target surface.
var ErrNoTarget = errors.New("bench: no target surface")

const strokeWidth = 1

// Converter turns image sources into canonical buffers and surface arrays.
// *convert.Converter satisfies it.
type Converter interface {
	Normalize(src any) (*pixbuf.Array, error)
	ToRenderSurface(src any) (*pixbuf.Array, error)
}

// Bench holds the drawing state.
type Bench struct {
	conv Converter
	sink ports.DebugSink
	log  ports.Logger

	image  *pixbuf.Array
	items  DrawList
	target ports.Surface
	color  color.NRGBA
	frames int
}

type options struct {
	image any
	items DrawList
	color color.NRGBA
}

// Option configures the initial state of a Bench.
type Option func(*options)

// WithImage sets the initial image source.
func WithImage(src any) Option {
	return func(o *options) { o.image = src }
}

// WithItems sets the initial draw list.
func WithItems(items DrawList) Option {
	return func(o *options) { o.items = items }
}

// WithColor sets the initial stroke color.
func WithColor(c color.NRGBA) Option {
	return func(o *options) { o.color = c }
}

// New creates a Bench drawing onto target and performs the first refresh.
func New(conv Converter, sink ports.DebugSink, log ports.Logger, target ports.Surface, opts ...Option) (*Bench, error) {
	if target == nil {
		return nil, ErrNoTarget
	}

	o := options{color: DefaultColor}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bench{
		conv:   conv,
		sink:   sink,
		log:    log.WithComponent("bench"),
		items:  DrawList{},
		target: target,
		color:  o.color,
	}
	if err := b.Refresh(o.image, o.items, nil); err != nil {
		return nil, err
	}
	return b, nil
}

// Refresh updates the parts of the state that are non-nil and redraws.
//
// A nil image, list or target keeps the stored value. A non-nil empty list
// replaces the stored list, clearing all markers. If the image cannot be
// normalized or has no image interpretation, the error is returned and
// nothing is changed or drawn.
func (b *Bench) Refresh(img any, items DrawList, target ports.Surface) error {
	if err := b.UpdateImage(img); err != nil {
		return err
	}
	b.UpdateItems(items)
	b.UpdateTarget(target)

	if err := b.DrawImage(); err != nil {
		return err
	}
	b.DrawItems()

	b.frames++
	b.saveFrame()
	return nil
}

// UpdateImage normalizes src and stores it. A nil src is ignored. Buffers
// with more than four channels are rejected with pixbuf.ErrChannels.
func (b *Bench) UpdateImage(src any) error {
	if src == nil {
		return nil
	}

	arr, err := b.conv.Normalize(src)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	// Only buffers that can be blitted are stored.
	img, err := pixbuf.NewImage(arr)
	if err != nil {
		return fmt.Errorf("update image: %w", err)
	}
	b.image = arr
	b.log.Debug("Image updated: %v", arr.Shape())

	if b.sink.Enabled() {
		if err := b.sink.SaveSource(img); err != nil {
			b.log.Warn("Failed to save debug source: %s", err)
		}
	}
	return nil
}

// UpdateItems replaces the draw list. A nil list is ignored.
func (b *Bench) UpdateItems(items DrawList) {
	if items == nil {
		return
	}
	b.items = items.Clone()
}

// UpdateTarget redirects drawing to target. A nil target is ignored.
func (b *Bench) UpdateTarget(target ports.Surface) {
	if target == nil {
		return
	}
	b.target = target
}

// UpdateColor sets the stroke color.
func (b *Bench) UpdateColor(r, g, bl, a uint8) {
	b.color = color.NRGBA{R: r, G: g, B: bl, A: a}
}

// DrawImage clears the target to black and blits the stored image, if any,
// at the origin.
func (b *Bench) DrawImage() error {
	b.target.Fill(color.Black)
	if b.image == nil {
		return nil
	}

	arr, err := b.conv.ToRenderSurface(b.image)
	if err != nil {
		return fmt.Errorf("draw image: %w", err)
	}
	if err := b.target.Blit(arr, 0, 0); err != nil {
		return fmt.Errorf("draw image: %w", err)
	}
	return nil
}

// DrawItems strokes every item of the draw list in order. Points become
// closed square outlines, polylines open line strips. Polylines with fewer
// than two points and nil items are skipped.
func (b *Bench) DrawItems() {
	var markers, lines, skipped int
	for _, it := range b.items {
		switch v := it.(type) {
		case Point:
			b.target.DrawLines(b.color, true, markerOutline(v), strokeWidth)
			markers++
		case Polyline:
			if len(v) < 2 {
				skipped++
				continue
			}
			b.target.DrawLines(b.color, false, v.points(), strokeWidth)
			lines++
		default:
			skipped++
		}
	}

	b.log.Debug("Drew %d markers and %d polylines", markers, lines)
	if skipped > 0 {
		b.log.Debug("Skipped %d malformed draw items", skipped)
	}
}

func (b *Bench) saveFrame() {
	if !b.sink.Enabled() {
		return
	}
	if err := b.sink.SaveFrame(b.frames, b.target.ToImage()); err != nil {
		b.log.Warn("Failed to save debug frame: %s", err)
		return
	}
	b.log.Debug("Saved debug frame %d", b.frames)
}

// Image returns the stored canonical buffer, or nil.
func (b *Bench) Image() *pixbuf.Array {
	return b.image
}

// Items returns a copy of the stored draw list.
func (b *Bench) Items() DrawList {
	return b.items.Clone()
}

// Target returns the current target surface.
func (b *Bench) Target() ports.Surface {
	return b.target
}

// Color returns the stroke color.
func (b *Bench) Color() color.NRGBA {
	return b.color
}

// Frames returns the number of completed refreshes.
func (b *Bench) Frames() int {
	return b.frames
}
