package bench

import (
	"fmt"
	"image"
)

// Item is an element of a DrawList: a Point or a Polyline.
type Item interface {
	isItem()
}

// Point is a position in surface coordinates, drawn as a small marker.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (Point) isItem() {}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Polyline is an ordered group of points joined by an open line strip.
type Polyline []Point

func (Polyline) isItem() {}

// DrawList is the ordered set of markers and polylines drawn on each refresh.
// A nil DrawList passed to Refresh means "keep the current list".
type DrawList []Item

// Clone returns a copy that shares no backing arrays with l.
func (l DrawList) Clone() DrawList {
	if l == nil {
		return nil
	}
	out := make(DrawList, len(l))
	for i, it := range l {
		if pl, ok := it.(Polyline); ok {
			it = append(Polyline(nil), pl...)
		}
		out[i] = it
	}
	return out
}

// markerSize is the half-size of the square drawn for a Point.
const markerSize = 2

// markerOutline returns the closed outline drawn around p.
func markerOutline(p Point) []image.Point {
	return []image.Point{
		{X: p.X - markerSize, Y: p.Y - markerSize},
		{X: p.X + markerSize, Y: p.Y - markerSize},
		{X: p.X + markerSize, Y: p.Y + markerSize},
		{X: p.X - markerSize, Y: p.Y + markerSize},
		{X: p.X - markerSize, Y: p.Y - markerSize},
	}
}

func (l Polyline) points() []image.Point {
	pts := make([]image.Point, len(l))
	for i, p := range l {
		pts[i] = image.Point{X: p.X, Y: p.Y}
	}
	return pts
}
