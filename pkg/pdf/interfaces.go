package pdf

// Document is a validated PDF whose pages can be annotated
type Document interface {
	// PageCount returns the total number of pages
	PageCount() int

	// PageSize returns the MediaBox size of a 1-based page, in points
	PageSize(page int) (width, height float64, err error)

	// RegionText returns the text inside a region of a 1-based page.
	// The box uses a top-left origin and is expressed in points.
	RegionText(page int, bbox BoundingBox) (string, error)

	// Close releases resources associated with the document
	Close() error
}

// TextSource extracts positioned characters from a page
type TextSource interface {
	// Chars returns the characters of a 1-based page with top-left origin boxes
	Chars(page int) ([]CharObject, error)
}
