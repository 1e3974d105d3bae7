// Package selection tracks pointer drags over a page and keeps the ordered
// collection of committed rectangles.
//
// A Selector is driven by one event at a time and never returns errors:
// stray events, undersized drags and bad indexes all degrade to no-ops.
package selection

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pyhub-apps/pdfregion/pkg/geometry"
)

// Selector is the rectangle-selection state machine
type Selector struct {
	state      State
	rects      []geometry.Rectangle
	minExtent  float64
	generation uint64
	log        logrus.FieldLogger
}

// Option configures a Selector
type Option func(*Selector)

// WithMinimumExtent overrides geometry.MinimumExtent
func WithMinimumExtent(px float64) Option {
	return func(s *Selector) {
		s.minExtent = px
	}
}

// WithLogger sets the logger used for dropped and ignored events
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Selector) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an idle Selector with an empty collection
func New(opts ...Option) *Selector {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Selector{
		state:     Idle{},
		minExtent: geometry.MinimumExtent,
		log:       discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state
func (s *Selector) State() State {
	return s.state
}

// Drawing reports whether a drag is in progress
func (s *Selector) Drawing() bool {
	_, ok := s.state.(Drawing)
	return ok
}

// PointerDown starts a drag at p on the given page. A press during an
// active drag abandons it and starts over at p.
func (s *Selector) PointerDown(p geometry.Point, page int) Outcome {
	if d, ok := s.state.(Drawing); ok {
		s.log.WithField("page", d.Drag.Page).Debug("drag restarted before release")
	}
	s.state = Drawing{Drag: geometry.NewRawDrag(p, page)}
	return Started
}

// PointerMove resizes the active drag so it ends at p
func (s *Selector) PointerMove(p geometry.Point) Outcome {
	d, ok := s.state.(Drawing)
	if !ok {
		return Ignored
	}
	s.state = Drawing{Drag: d.Drag.MoveTo(p)}
	return Updated
}

// PointerUp ends the active drag
func (s *Selector) PointerUp() Outcome {
	return s.finish()
}

// PointerLeave ends the active drag when the pointer leaves the page surface
func (s *Selector) PointerLeave() Outcome {
	return s.finish()
}

func (s *Selector) finish() Outcome {
	d, ok := s.state.(Drawing)
	if !ok {
		return Ignored
	}
	s.state = Idle{}

	rect := d.Drag.Canonical()
	if !geometry.MeetsExtent(rect, s.minExtent) {
		s.log.WithFields(logrus.Fields{
			"page":   rect.Page,
			"width":  rect.Width,
			"height": rect.Height,
		}).Debug("selection below minimum extent dropped")
		return Discarded
	}

	s.rects = append(s.rects, rect)
	s.generation++
	return Committed
}

// Preview returns the rectangle spanned by the active drag
func (s *Selector) Preview() (geometry.Rectangle, bool) {
	d, ok := s.state.(Drawing)
	if !ok {
		return geometry.Rectangle{}, false
	}
	return d.Drag.Canonical(), true
}

// Delete removes the rectangle at index in collection order.
// It returns false and leaves the collection untouched when index is out of range.
func (s *Selector) Delete(index int) bool {
	if index < 0 || index >= len(s.rects) {
		s.log.WithField("index", index).Debug("delete index out of range")
		return false
	}

	rects := make([]geometry.Rectangle, 0, len(s.rects)-1)
	rects = append(rects, s.rects[:index]...)
	rects = append(rects, s.rects[index+1:]...)
	s.rects = rects
	s.generation++
	return true
}

// DeleteOnPage removes the index-th rectangle among those on page, which is
// the index a viewer of that page sees.
func (s *Selector) DeleteOnPage(page, index int) bool {
	if index < 0 {
		return false
	}
	n := 0
	for i, r := range s.rects {
		if r.Page != page {
			continue
		}
		if n == index {
			return s.Delete(i)
		}
		n++
	}
	s.log.WithFields(logrus.Fields{"page": page, "index": index}).Debug("delete index out of range")
	return false
}

// Rectangles returns a copy of the collection in insertion order
func (s *Selector) Rectangles() []geometry.Rectangle {
	out := make([]geometry.Rectangle, len(s.rects))
	copy(out, s.rects)
	return out
}

// OnPage returns the rectangles tagged with page, in insertion order
func (s *Selector) OnPage(page int) []geometry.Rectangle {
	var out []geometry.Rectangle
	for _, r := range s.rects {
		if r.Page == page {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of committed rectangles
func (s *Selector) Len() int {
	return len(s.rects)
}

// Generation changes every time a rectangle is committed or deleted
func (s *Selector) Generation() uint64 {
	return s.generation
}
