package pdf

import (
	"bytes"
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// DslipakSource reads positioned text with the dslipak/pdf library
type DslipakSource struct {
	reader *gopdf.Reader
}

// NewDslipakSource parses data with dslipak/pdf
func NewDslipakSource(data []byte) (*DslipakSource, error) {
	r, err := gopdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}
	return &DslipakSource{reader: r}, nil
}

// Chars returns the characters of a 1-based page with top-left origin boxes
func (s *DslipakSource) Chars(pageNumber int) (chars []CharObject, err error) {
	if pageNumber < 1 || pageNumber > s.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

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

	height := 792.0
	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == gopdf.Array && mediaBox.Len() == 4 {
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	for _, text := range page.Content().Text {
		chars = append(chars, splitRun(text.S, text.Font, text.FontSize, text.X, text.Y, text.W, height)...)
	}
	return chars, nil
}
