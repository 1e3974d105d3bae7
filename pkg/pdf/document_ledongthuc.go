package pdf

import (
	"bytes"
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucSource reads positioned text with the ledongthuc/pdf library.
// It gives the most accurate character coordinates.
type LedongthucSource struct {
	reader *lpdf.Reader
}

// NewLedongthucSource parses data with ledongthuc/pdf
func NewLedongthucSource(data []byte) (*LedongthucSource, error) {
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}
	return &LedongthucSource{reader: r}, nil
}

// Chars returns the characters of a 1-based page with top-left origin boxes
func (s *LedongthucSource) Chars(pageNumber int) (chars []CharObject, err error) {
	if pageNumber < 1 || pageNumber > s.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	// the content parser panics on malformed streams
	defer func() {
		if r := recover(); r != nil {
			chars = nil
			err = fmt.Errorf("failed to read page %d content: %v", pageNumber, r)
		}
	}()

	page := s.reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found", pageNumber)
	}

	// Default to US Letter
	height := 792.0
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	for _, text := range page.Content().Text {
		chars = append(chars, splitRun(text.S, text.Font, text.FontSize, text.X, text.Y, text.W, height)...)
	}
	return chars, nil
}

// splitRun turns one positioned text run into per-character boxes. PDF
// baselines are measured upward from the bottom of the page; the boxes are
// flipped to a top-left origin.
func splitRun(s, font string, fontSize, x, baseline, width, pageHeight float64) []CharObject {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	// baseline sits at roughly 80% of the glyph height
	top := pageHeight - (baseline + fontSize*0.8)
	charWidth := width / float64(len(runes))

	var out []CharObject
	for _, ch := range runes {
		if ch != ' ' && ch != '\n' && ch != '\r' {
			out = append(out, CharObject{
				Text:     string(ch),
				Font:     font,
				FontSize: fontSize,
				X0:       x,
				Y0:       top,
				X1:       x + charWidth,
				Y1:       top + fontSize,
			})
		}
		x += charWidth
	}
	return out
}
