// Package session ties the viewport, the selection state machine and the
// coordinate exporter into one controller for an annotation session.
//
// Session is the only owner of that state and its methods are the only
// mutators. Like the pieces it drives, it is meant to be fed one event at a
// time and does not lock.
package session

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdfregion/pkg/export"
	"github.com/pyhub-apps/pdfregion/pkg/geometry"
	"github.com/pyhub-apps/pdfregion/pkg/selection"
	"github.com/pyhub-apps/pdfregion/pkg/viewport"
)

// PageCounter is the part of a loaded document the session needs
type PageCounter interface {
	PageCount() int
}

// Notifier is told when a report has been produced
type Notifier interface {
	Notify()
}

// Session is one interactive annotation session over a document
type Session struct {
	view      *viewport.Viewport
	sel       *selection.Selector
	report    *export.Report
	reportGen uint64

	minExtent float64
	clock     func() time.Time
	notifier  Notifier
	log       logrus.FieldLogger
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the time source for report timestamps
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithNotifier sets the receiver of export notifications
func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		s.notifier = n
	}
}

// WithLogger sets the session logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMinimumExtent overrides the minimum rectangle size in pixels
func WithMinimumExtent(px float64) Option {
	return func(s *Session) {
		s.minExtent = px
	}
}

// New starts a session on page 1 of doc
func New(doc PageCounter, opts ...Option) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		view:      viewport.New(0),
		minExtent: geometry.MinimumExtent,
		clock:     time.Now,
		log:       discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load(doc)
	return s
}

// Load switches the session to a new document. Rectangles and any report
// belong to the previous document and are dropped.
func (s *Session) Load(doc PageCounter) {
	pages := 0
	if doc != nil {
		pages = doc.PageCount()
	}
	s.view.Load(pages)
	s.sel = selection.New(
		selection.WithMinimumExtent(s.minExtent),
		selection.WithLogger(s.log),
	)
	s.report = nil
	s.reportGen = 0
	s.log.WithField("pages", pages).Debug("document loaded")
}

// Viewport exposes the page navigation state for reading
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// SetSurfaceOrigin records where the page surface is on screen
func (s *Session) SetSurfaceOrigin(p geometry.Point) {
	s.view.SetOrigin(p)
}

// PointerDown starts a drag at a window position on the current page
func (s *Session) PointerDown(p geometry.Point) selection.Outcome {
	return s.sel.PointerDown(s.view.ToSurface(p), s.view.CurrentPage())
}

// PointerMove updates the active drag
func (s *Session) PointerMove(p geometry.Point) selection.Outcome {
	return s.sel.PointerMove(s.view.ToSurface(p))
}

// PointerUp ends the active drag
func (s *Session) PointerUp() selection.Outcome {
	return s.logOutcome(s.sel.PointerUp())
}

// PointerLeave ends the active drag when the pointer leaves the page
func (s *Session) PointerLeave() selection.Outcome {
	return s.logOutcome(s.sel.PointerLeave())
}

func (s *Session) logOutcome(o selection.Outcome) selection.Outcome {
	if o == selection.Committed {
		s.log.WithFields(logrus.Fields{
			"page":  s.view.CurrentPage(),
			"total": s.sel.Len(),
		}).Debug("selection committed")
	}
	return o
}

// NextPage moves to the following page
func (s *Session) NextPage() bool {
	return s.view.Next()
}

// PrevPage moves to the preceding page
func (s *Session) PrevPage() bool {
	return s.view.Prev()
}

// GoToPage jumps to a 1-based page
func (s *Session) GoToPage(page int) error {
	return s.view.GoTo(page)
}

// Visible returns the rectangles drawn on the current page
func (s *Session) Visible() []geometry.Rectangle {
	return s.sel.OnPage(s.view.CurrentPage())
}

// Preview returns the rectangle of the drag in progress
func (s *Session) Preview() (geometry.Rectangle, bool) {
	return s.sel.Preview()
}

// Rectangles returns every committed rectangle in drawing order
func (s *Session) Rectangles() []geometry.Rectangle {
	return s.sel.Rectangles()
}

// Drawing reports whether a drag is in progress
func (s *Session) Drawing() bool {
	return s.sel.Drawing()
}

// Delete removes the index-th rectangle visible on the current page.
// Out-of-range indexes are ignored.
func (s *Session) Delete(index int) bool {
	if !s.sel.DeleteOnPage(s.view.CurrentPage(), index) {
		return false
	}
	s.log.WithFields(logrus.Fields{
		"page":  s.view.CurrentPage(),
		"index": index,
	}).Debug("selection deleted")
	return true
}

// CanConfirm reports whether there is anything to export
func (s *Session) CanConfirm() bool {
	return s.sel.Len() > 0
}

// Confirm exports every rectangle, on all pages, and keeps the report
// until the collection changes.
func (s *Session) Confirm() (*export.Report, error) {
	report, err := export.Export(s.sel.Rectangles(), s.clock())
	if err != nil {
		return nil, err
	}
	s.report = report
	s.reportGen = s.sel.Generation()

	s.log.WithFields(logrus.Fields{
		"report":     report.ID,
		"selections": report.Len(),
	}).Info("coordinates exported")

	if s.notifier != nil {
		s.notifier.Notify()
	}
	return report, nil
}

// Report returns the last report, or nil if there is none or rectangles
// were drawn or deleted since it was produced.
func (s *Session) Report() *export.Report {
	if s.report == nil {
		return nil
	}
	if s.reportGen != s.sel.Generation() {
		s.report = nil
		return nil
	}
	return s.report
}
