package pdf

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTolerance is the gap in points that separates words and lines
const DefaultTolerance = 3.0

// fallbackSource tries ledongthuc/pdf first and dslipak/pdf second.
// Backends are parsed on first use.
type fallbackSource struct {
	data    []byte
	sources []TextSource
	loaded  bool
}

func newFallbackSource(data []byte) *fallbackSource {
	return &fallbackSource{data: data}
}

func (f *fallbackSource) load() {
	if f.loaded {
		return
	}
	f.loaded = true
	if s, err := NewLedongthucSource(f.data); err == nil {
		f.sources = append(f.sources, s)
	}
	if s, err := NewDslipakSource(f.data); err == nil {
		f.sources = append(f.sources, s)
	}
}

func (f *fallbackSource) Chars(page int) ([]CharObject, error) {
	f.load()
	if len(f.sources) == 0 {
		return nil, fmt.Errorf("no text backend could read the document")
	}

	var lastErr error
	for _, s := range f.sources {
		chars, err := s.Chars(page)
		if err == nil {
			return chars, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Within returns the characters whose centre lies inside bbox
func Within(chars []CharObject, bbox BoundingBox) []CharObject {
	var out []CharObject
	for _, c := range chars {
		if bbox.Contains(c.center()) {
			out = append(out, c)
		}
	}
	return out
}

// TextWithin joins the characters inside bbox into lines of words
func TextWithin(chars []CharObject, bbox BoundingBox, tolerance float64) string {
	return JoinText(Within(chars, bbox), tolerance)
}

// JoinText orders characters top-to-bottom and left-to-right, breaking lines
// when the top edge moves by more than tolerance and words when the
// horizontal gap exceeds it.
func JoinText(chars []CharObject, tolerance float64) string {
	if len(chars) == 0 {
		return ""
	}

	sorted := make([]CharObject, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if abs(sorted[i].Y0-sorted[j].Y0) > tolerance {
			return sorted[i].Y0 < sorted[j].Y0
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines []string
	var current []CharObject
	lineY := sorted[0].Y0
	for _, c := range sorted {
		if len(current) > 0 && abs(c.Y0-lineY) > tolerance {
			lines = append(lines, lineText(current, tolerance))
			current = nil
			lineY = c.Y0
		}
		current = append(current, c)
	}
	lines = append(lines, lineText(current, tolerance))

	return strings.Join(lines, "\n")
}

// lineText joins one line of characters already sorted by X
func lineText(chars []CharObject, tolerance float64) string {
	var b strings.Builder
	for i, c := range chars {
		if i > 0 && c.X0-chars[i-1].X1 > tolerance {
			b.WriteByte(' ')
		}
		b.WriteString(c.Text)
	}
	return b.String()
}
