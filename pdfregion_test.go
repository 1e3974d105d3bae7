package pdfregion

import (
	"os"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pyhub-apps/pdfregion/internal/pdftest"
)

func TestMain(m *testing.M) {
	model.ConfigPath = "disable"
	os.Exit(m.Run())
}

func sampleDocument(t *testing.T) Document {
	t.Helper()
	doc, err := OpenBytes(pdftest.Build(
		pdftest.Page{Lines: []pdftest.Line{{X: 72, Y: 720, Text: "Invoice 1234"}}},
		pdftest.Page{Lines: []pdftest.Line{{X: 72, Y: 400, Text: "Total 99.00"}}},
	))
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	return doc
}

func TestOpenPDF(t *testing.T) {
	doc := sampleDocument(t)
	defer doc.Close()

	if doc.PageCount() != 2 {
		t.Errorf("Expected 2 pages, got %d", doc.PageCount())
	}
}

func TestSelectAndExtract(t *testing.T) {
	doc := sampleDocument(t)
	defer doc.Close()

	s := NewSession(doc)
	s.SetSurfaceOrigin(Point{X: 20, Y: 20})

	// drag bottom-right to top-left around "Invoice 1234" on page 1
	s.PointerDown(Point{X: 200, Y: 100})
	s.PointerMove(Point{X: 80, Y: 70})
	s.PointerUp()

	s.NextPage()
	// glyph tops of the page 2 line sit at 792-(400+9.6) = 382.4
	s.PointerDown(Point{X: 80, Y: 390})
	s.PointerMove(Point{X: 200, Y: 420})
	s.PointerLeave()

	report, err := s.Confirm()
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if report.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", report.Len())
	}

	first := report.Entries[0]
	if first.Page != 1 || first.Coordinates != (Corners{TopLeftX: 60, TopLeftY: 50, BottomRightX: 180, BottomRightY: 80}) {
		t.Errorf("Unexpected first entry: %+v", first)
	}

	tests := []struct {
		entry Entry
		want  string
	}{
		{report.Entries[0], "Invoice 1234"},
		{report.Entries[1], "Total 99.00"},
	}
	for _, tt := range tests {
		text, err := RegionText(doc, tt.entry, 1)
		if err != nil {
			t.Fatalf("RegionText failed: %v", err)
		}
		if text != tt.want {
			t.Errorf("Page %d: expected %q, got %q", tt.entry.Page, tt.want, text)
		}
	}
}

func TestConfirmEmpty(t *testing.T) {
	doc := sampleDocument(t)
	defer doc.Close()

	s := NewSession(doc)
	if s.CanConfirm() {
		t.Error("Confirm should be disabled without selections")
	}
	if _, err := s.Confirm(); err != ErrEmptyCollection {
		t.Errorf("Expected ErrEmptyCollection, got %v", err)
	}
}
