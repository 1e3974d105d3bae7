package pdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pyhub-apps/pdfregion/internal/pdftest"
	"github.com/pyhub-apps/pdfregion/pkg/export"
)

func TestMain(m *testing.M) {
	// keep pdfcpu from writing a config dir during tests
	model.ConfigPath = "disable"
	os.Exit(m.Run())
}

func samplePDF() []byte {
	return pdftest.Build(
		pdftest.Page{Lines: []pdftest.Line{
			{X: 72, Y: 720, Text: "Hello Region"},
			{X: 72, Y: 600, Text: "Second line"},
		}},
		pdftest.Page{Width: 595, Height: 842, Lines: []pdftest.Line{
			{X: 100, Y: 700, Text: "Page two"},
		}},
	)
}

func TestOpenBytes(t *testing.T) {
	doc, err := OpenBytes(samplePDF())
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", doc.PageCount())
	}

	w, h, err := doc.PageSize(2)
	if err != nil {
		t.Fatalf("PageSize failed: %v", err)
	}
	if w != 595 || h != 842 {
		t.Errorf("Unexpected page 2 size: %.2f x %.2f", w, h)
	}

	if _, _, err := doc.PageSize(3); err == nil {
		t.Error("Expected error for page 3")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	if err := os.WriteFile(path, samplePDF(), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	meta := doc.(*PDFDocument).Metadata()
	if meta.PageCount != 2 || meta.Encrypted {
		t.Errorf("Unexpected metadata: %+v", meta)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRejectsNonPDF(t *testing.T) {
	_, err := OpenBytes([]byte("just some text, not a document"))
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("Expected ErrNotPDF, got %v", err)
	}

	broken := []byte("%PDF-1.4\nthis is not a real document\n%%EOF\n")
	if _, err := OpenBytes(broken); err == nil {
		t.Error("Expected error for a corrupt PDF")
	}
	if err := Validate(bytes.NewReader(broken)); err == nil {
		t.Error("Expected Validate to fail for a corrupt PDF")
	}
}

func TestIsPDF(t *testing.T) {
	if !IsPDF(samplePDF()) {
		t.Error("Expected generated document to sniff as PDF")
	}
	if IsPDF([]byte("\x89PNG\r\n\x1a\n")) {
		t.Error("PNG header should not sniff as PDF")
	}
}

func TestRegionText(t *testing.T) {
	doc, err := OpenBytes(samplePDF())
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	// first line: baseline 720 on a 792pt page puts the glyph tops near y=62
	text, err := doc.RegionText(1, BoundingBox{X0: 60, Y0: 50, X1: 300, Y1: 80})
	if err != nil {
		t.Fatalf("RegionText failed: %v", err)
	}
	if text != "Hello Region" {
		t.Errorf("Expected 'Hello Region', got %q", text)
	}

	text, err = doc.RegionText(1, BoundingBox{X0: 0, Y0: 0, X1: 612, Y1: 792})
	if err != nil {
		t.Fatalf("RegionText failed: %v", err)
	}
	if !strings.Contains(text, "Hello Region\nSecond line") {
		t.Errorf("Expected both lines, got %q", text)
	}

	text, err = doc.RegionText(1, BoundingBox{X0: 400, Y0: 400, X1: 500, Y1: 500})
	if err != nil || text != "" {
		t.Errorf("Expected empty region, got %q, %v", text, err)
	}

	if _, err := doc.RegionText(5, BoundingBox{}); err == nil {
		t.Error("Expected error for page 5")
	}
}

func TestDslipakSource(t *testing.T) {
	src, err := NewDslipakSource(samplePDF())
	if err != nil {
		t.Fatalf("NewDslipakSource failed: %v", err)
	}

	chars, err := src.Chars(2)
	if err != nil {
		t.Fatalf("Chars failed: %v", err)
	}
	if got := JoinText(chars, DefaultTolerance); got != "Page two" {
		t.Errorf("Expected 'Page two', got %q", got)
	}

	if _, err := src.Chars(0); err == nil {
		t.Error("Expected error for page 0")
	}
}

func TestBoundingBoxFromCorners(t *testing.T) {
	c := export.Corners{TopLeftX: 10, TopLeftY: 20, BottomRightX: 110, BottomRightY: 220}

	got := BoundingBoxFromCorners(c, 2)
	want := BoundingBox{X0: 5, Y0: 10, X1: 55, Y1: 110}
	if got != want {
		t.Errorf("BoundingBoxFromCorners = %+v, want %+v", got, want)
	}
	if BoundingBoxFromCorners(c, 0) != (BoundingBox{X0: 10, Y0: 20, X1: 110, Y1: 220}) {
		t.Error("Expected non-positive scale to be treated as 1")
	}
}
