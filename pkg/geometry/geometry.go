// Package geometry normalizes pointer drags into page-relative rectangles.
//
// All coordinates are surface-local device pixels: X grows to the right and
// Y grows downward from the top-left corner of the rendered page.
package geometry

import "math"

// MinimumExtent is the size in pixels a drag must exceed on both axes
// before it becomes a Rectangle.
const MinimumExtent = 5.0

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Vector represents a signed displacement between two points
type Vector struct {
	DX, DY float64
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{DX: p.X - other.X, DY: p.Y - other.Y}
}

// Add returns p displaced by v
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Neg returns the opposite vector
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Rectangle is a committed, axis-aligned selection on one page.
// StartX/StartY is the top-left corner; Width and Height are never negative
// for rectangles produced by Canonicalize.
type Rectangle struct {
	StartX float64 `json:"startX" yaml:"start_x"`
	StartY float64 `json:"startY" yaml:"start_y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Page   int     `json:"page" yaml:"page"`
}

// Origin returns the top-left corner
func (r Rectangle) Origin() Point {
	return Point{X: r.StartX, Y: r.StartY}
}

// Bounds returns the top-left and bottom-right corners
func (r Rectangle) Bounds() (x0, y0, x1, y1 float64) {
	return r.StartX, r.StartY, r.StartX + r.Width, r.StartY + r.Height
}

// Contains checks if a point is inside the rectangle
func (r Rectangle) Contains(p Point) bool {
	x0, y0, x1, y1 := r.Bounds()
	return p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1
}

// Scale multiplies every coordinate by f, keeping the page
func (r Rectangle) Scale(f float64) Rectangle {
	return Rectangle{
		StartX: r.StartX * f,
		StartY: r.StartY * f,
		Width:  r.Width * f,
		Height: r.Height * f,
		Page:   r.Page,
	}
}

// RawDrag is an in-progress drag. Width and Height are the signed deltas
// from the anchor to the latest pointer position.
type RawDrag struct {
	StartX float64
	StartY float64
	Width  float64
	Height float64
	Page   int
}

// NewRawDrag starts a zero-extent drag anchored at p
func NewRawDrag(p Point, page int) RawDrag {
	return RawDrag{StartX: p.X, StartY: p.Y, Page: page}
}

// Origin returns the anchor of the drag
func (d RawDrag) Origin() Point {
	return Point{X: d.StartX, Y: d.StartY}
}

// Delta returns the signed vector from the anchor to the pointer
func (d RawDrag) Delta() Vector {
	return Vector{DX: d.Width, DY: d.Height}
}

// MoveTo updates the delta so that the drag ends at p
func (d RawDrag) MoveTo(p Point) RawDrag {
	v := p.Sub(d.Origin())
	d.Width = v.DX
	d.Height = v.DY
	return d
}

// Canonical returns the rectangle the drag currently spans.
// The drag preview and the committed rectangle both come from here.
func (d RawDrag) Canonical() Rectangle {
	r := Canonicalize(d.Origin(), d.Delta())
	r.Page = d.Page
	return r
}

// Canonicalize converts an origin and a signed delta into a rectangle with
// non-negative extent anchored at its true top-left corner.
func Canonicalize(origin Point, delta Vector) Rectangle {
	r := Rectangle{
		StartX: origin.X,
		StartY: origin.Y,
		Width:  math.Abs(delta.DX),
		Height: math.Abs(delta.DY),
	}
	if delta.DX < 0 {
		r.StartX = origin.X + delta.DX
	}
	if delta.DY < 0 {
		r.StartY = origin.Y + delta.DY
	}
	return r
}

// MeetsMinimumExtent reports whether r is larger than MinimumExtent on both axes
func MeetsMinimumExtent(r Rectangle) bool {
	return MeetsExtent(r, MinimumExtent)
}

// MeetsExtent reports whether |width| and |height| both exceed min
func MeetsExtent(r Rectangle, min float64) bool {
	return math.Abs(r.Width) > min && math.Abs(r.Height) > min
}
