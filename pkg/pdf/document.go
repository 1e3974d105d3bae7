package pdf

import (
	"bytes"
	"io"
	"net/http"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"
)

// ErrNotPDF is returned when the input does not look like a PDF file
var ErrNotPDF = errors.New("please upload a valid PDF file")

// PDFDocument implements the Document interface using pdfcpu for validation
// and page geometry
type PDFDocument struct {
	data     []byte
	ctx      *model.Context
	dims     []types.Dim
	metadata Metadata
	text     TextSource
}

// IsPDF reports whether head, the first bytes of a file, sniff as application/pdf
func IsPDF(head []byte) bool {
	return http.DetectContentType(head) == "application/pdf"
}

// Validate checks that r holds a PDF that pdfcpu can read and validate
func Validate(r io.ReadSeeker) error {
	_, err := readContext(r, "")
	return err
}

// Open opens a PDF file and returns a Document
func Open(filepath string) (Document, error) {
	return OpenWithPassword(filepath, "")
}

// OpenWithPassword opens a password-protected PDF file
func OpenWithPassword(filepath string, password string) (Document, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	return openBytes(data, password)
}

// OpenBytes opens a PDF held in memory
func OpenBytes(data []byte) (Document, error) {
	return openBytes(data, "")
}

func openBytes(data []byte, password string) (*PDFDocument, error) {
	if !IsPDF(data) {
		return nil, ErrNotPDF
	}

	ctx, err := readContext(bytes.NewReader(data), password)
	if err != nil {
		return nil, err
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page dimensions")
	}

	doc := &PDFDocument{
		data: data,
		ctx:  ctx,
		dims: dims,
		metadata: Metadata{
			Version:   ctx.XRefTable.Version().String(),
			PageCount: ctx.PageCount,
			Encrypted: ctx.Encrypt != nil,
		},
		text: newFallbackSource(data),
	}
	return doc, nil
}

func readContext(r io.ReadSeeker, password string) (*model.Context, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadContext(r, conf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read PDF context")
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, errors.Wrap(err, "invalid PDF")
	}
	return ctx, nil
}

// Metadata returns what pdfcpu reported about the document
func (d *PDFDocument) Metadata() Metadata {
	return d.metadata
}

// PageCount returns the total number of pages
func (d *PDFDocument) PageCount() int {
	return d.metadata.PageCount
}

// PageSize returns the MediaBox size of a 1-based page
func (d *PDFDocument) PageSize(page int) (float64, float64, error) {
	if page < 1 || page > len(d.dims) {
		return 0, 0, errors.Errorf("page number %d out of range [1, %d]", page, len(d.dims))
	}
	dim := d.dims[page-1]
	return dim.Width, dim.Height, nil
}

// RegionText returns the text whose characters are centred inside bbox
func (d *PDFDocument) RegionText(page int, bbox BoundingBox) (string, error) {
	if page < 1 || page > d.PageCount() {
		return "", errors.Errorf("page number %d out of range [1, %d]", page, d.PageCount())
	}
	chars, err := d.text.Chars(page)
	if err != nil {
		return "", err
	}
	return TextWithin(chars, bbox, DefaultTolerance), nil
}

// Close releases resources associated with the document
func (d *PDFDocument) Close() error {
	d.ctx = nil
	d.data = nil
	return nil
}
