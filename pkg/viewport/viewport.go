// Package viewport tracks which page of a document is on screen and where
// its surface sits, and translates window coordinates to surface-local ones.
package viewport

import (
	"errors"
	"fmt"

	"github.com/pyhub-apps/pdfregion/pkg/geometry"
)

// ErrPageOutOfRange is returned by GoTo for a page outside [1, PageCount]
var ErrPageOutOfRange = errors.New("page out of range")

// Viewport is the page navigation and surface placement state
type Viewport struct {
	origin      geometry.Point
	currentPage int
	pageCount   int
}

// New creates a viewport on page 1 of a document with pageCount pages
func New(pageCount int) *Viewport {
	v := &Viewport{}
	v.Load(pageCount)
	return v
}

// Load resets the viewport for a newly loaded document
func (v *Viewport) Load(pageCount int) {
	if pageCount < 0 {
		pageCount = 0
	}
	v.pageCount = pageCount
	v.currentPage = 1
}

// SetOrigin records the on-screen position of the page surface's top-left corner
func (v *Viewport) SetOrigin(p geometry.Point) {
	v.origin = p
}

// Origin returns the on-screen position of the page surface
func (v *Viewport) Origin() geometry.Point {
	return v.origin
}

// ToSurface converts a window point to surface-local coordinates
func (v *Viewport) ToSurface(p geometry.Point) geometry.Point {
	return geometry.Point{X: p.X - v.origin.X, Y: p.Y - v.origin.Y}
}

// CurrentPage returns the 1-based page on screen
func (v *Viewport) CurrentPage() int {
	return v.currentPage
}

// PageCount returns the number of pages in the document
func (v *Viewport) PageCount() int {
	return v.pageCount
}

// HasPrev reports whether there is a page before the current one
func (v *Viewport) HasPrev() bool {
	return v.currentPage > 1
}

// HasNext reports whether there is a page after the current one
func (v *Viewport) HasNext() bool {
	return v.currentPage < v.pageCount
}

// Next moves to the following page. It returns false on the last page.
func (v *Viewport) Next() bool {
	if !v.HasNext() {
		return false
	}
	v.currentPage++
	return true
}

// Prev moves to the preceding page. It returns false on the first page.
func (v *Viewport) Prev() bool {
	if !v.HasPrev() {
		return false
	}
	v.currentPage--
	return true
}

// GoTo jumps to a 1-based page
func (v *Viewport) GoTo(page int) error {
	if page < 1 || page > v.pageCount {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, page, v.pageCount)
	}
	v.currentPage = page
	return nil
}
