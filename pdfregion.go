// Package pdfregion lets a user draw rectangles over the pages of a PDF and
// exports them as rounded, page-relative pixel coordinates
package pdfregion

import (
	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/geometry"
	"github.com/pyhub-apps/pdfregion/pkg/pdf"
	"github.com/pyhub-apps/pdfregion/pkg/selection"
	"github.com/pyhub-apps/pdfregion/pkg/session"
)

// Re-export types from the sub-packages for the public API
type (
	Document    = pdf.Document
	BoundingBox = pdf.BoundingBox
	Point       = geometry.Point
	Rectangle   = geometry.Rectangle
	Session     = session.Session
	Outcome     = selection.Outcome
	Report      = export.Report
	Entry       = export.Entry
	Corners     = export.Corners
)

// Re-export option functions
var (
	WithClock         = session.WithClock
	WithNotifier      = session.WithNotifier
	WithLogger        = session.WithLogger
	WithMinimumExtent = session.WithMinimumExtent
)

// ErrEmptyCollection is returned by Confirm when nothing has been drawn
var ErrEmptyCollection = export.ErrEmptyCollection

// Open opens and validates a PDF file
func Open(filepath string) (Document, error) {
	return pdf.Open(filepath)
}

// OpenBytes opens and validates a PDF held in memory
func OpenBytes(data []byte) (Document, error) {
	return pdf.OpenBytes(data)
}

// NewSession starts an annotation session on page 1 of doc
func NewSession(doc Document, opts ...session.Option) *Session {
	return session.New(doc, opts...)
}

// RegionText returns the text under an exported entry. scale is the number
// of device pixels per PDF point the page was displayed at.
func RegionText(doc Document, e Entry, scale float64) (string, error) {
	return doc.RegionText(e.Page, pdf.BoundingBoxFromCorners(e.Coordinates, scale))
}
