// Package export turns committed rectangles into a coordinate report.
//
// Coordinates are rounded half away from zero (math.Round) and are not
// clamped to the page bounds: a rectangle dragged past the page edge keeps
// the corners it was drawn with.
package export

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pyhub-apps/pdfregion/pkg/geometry"
)

// ErrEmptyCollection is returned when there is nothing to export
var ErrEmptyCollection = errors.New("no rectangles to export")

// Corners holds the rounded top-left and bottom-right corners of a rectangle
type Corners struct {
	TopLeftX     int `json:"topLeftX" yaml:"top_left_x"`
	TopLeftY     int `json:"topLeftY" yaml:"top_left_y"`
	BottomRightX int `json:"bottomRightX" yaml:"bottom_right_x"`
	BottomRightY int `json:"bottomRightY" yaml:"bottom_right_y"`
}

// Width returns the horizontal extent
func (c Corners) Width() int {
	return c.BottomRightX - c.TopLeftX
}

// Height returns the vertical extent
func (c Corners) Height() int {
	return c.BottomRightY - c.TopLeftY
}

// Entry is one exported rectangle
type Entry struct {
	Page        int     `json:"page" yaml:"page"`
	Coordinates Corners `json:"coordinates" yaml:"coordinates"`
}

// Report is the result of one export. It is never updated after creation.
type Report struct {
	ID         string    `json:"id" yaml:"id"`
	ProducedAt time.Time `json:"producedAt" yaml:"produced_at"`
	Entries    []Entry   `json:"selections" yaml:"selections"`
}

// Len returns the number of entries
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

// Filter returns the entries for one page
func (r *Report) Filter(page int) []Entry {
	if r == nil {
		return nil
	}
	var out []Entry
	for _, e := range r.Entries {
		if e.Page == page {
			out = append(out, e)
		}
	}
	return out
}

// Round converts a pixel coordinate to an integer, rounding half away from zero
func Round(v float64) int {
	return int(math.Round(v))
}

// CornersOf returns the rounded corners of r
func CornersOf(r geometry.Rectangle) Corners {
	x0, y0, x1, y1 := r.Bounds()
	return Corners{
		TopLeftX:     Round(x0),
		TopLeftY:     Round(y0),
		BottomRightX: Round(x1),
		BottomRightY: Round(y1),
	}
}

// Export builds a report with one entry per rectangle, in collection order
func Export(rects []geometry.Rectangle, at time.Time) (*Report, error) {
	if len(rects) == 0 {
		return nil, ErrEmptyCollection
	}

	report := &Report{
		ID:         uuid.NewString(),
		ProducedAt: at,
		Entries:    make([]Entry, 0, len(rects)),
	}
	for _, r := range rects {
		report.Entries = append(report.Entries, Entry{
			Page:        r.Page,
			Coordinates: CornersOf(r),
		})
	}

	return report, nil
}
