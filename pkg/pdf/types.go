package pdf

import (
	"github.com/pyhub-apps/pdfregion/pkg/export"
)

// BoundingBox represents a rectangular area with coordinates
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// BoundingBoxFromCorners converts exported pixel corners to points.
// scale is the number of device pixels per point the page was rendered at;
// values <= 0 are treated as 1.
func BoundingBoxFromCorners(c export.Corners, scale float64) BoundingBox {
	if scale <= 0 {
		scale = 1
	}
	return BoundingBox{
		X0: float64(c.TopLeftX) / scale,
		Y0: float64(c.TopLeftY) / scale,
		X1: float64(c.BottomRightX) / scale,
		Y1: float64(c.BottomRightY) / scale,
	}
}

// CharObject represents a character in the PDF
type CharObject struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
}

// GetBBox returns the character's bounding box
func (c CharObject) GetBBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// center returns the midpoint of the character box
func (c CharObject) center() (float64, float64) {
	return (c.X0 + c.X1) / 2, (c.Y0 + c.Y1) / 2
}

// Metadata describes a loaded document
type Metadata struct {
	Version   string
	PageCount int
	Encrypted bool
}

// Helper functions
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
