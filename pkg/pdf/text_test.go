package pdf

import "testing"

func char(s string, x, y float64) CharObject {
	return CharObject{Text: s, X0: x, Y0: y, X1: x + 6, Y1: y + 10}
}

func TestJoinText(t *testing.T) {
	tests := []struct {
		name  string
		chars []CharObject
		want  string
	}{
		{"empty", nil, ""},
		{"one word", []CharObject{char("a", 0, 0), char("b", 6, 0)}, "ab"},
		{"two words", []CharObject{char("a", 0, 0), char("b", 20, 0)}, "a b"},
		{"unsorted", []CharObject{char("b", 6, 0), char("a", 0, 0)}, "ab"},
		{"two lines", []CharObject{char("c", 0, 30), char("a", 0, 0), char("b", 6, 1)}, "ab\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinText(tt.chars, DefaultTolerance); got != tt.want {
				t.Errorf("JoinText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithinUsesCharacterCentre(t *testing.T) {
	chars := []CharObject{char("a", 0, 0), char("b", 8, 0), char("c", 100, 100)}

	// covers the centre of "a" (3,5) and the edge of "b" but not its centre (11,5)
	got := Within(chars, BoundingBox{X0: 0, Y0: 0, X1: 10, Y1: 10})
	if len(got) != 1 || got[0].Text != "a" {
		t.Errorf("Within() = %+v, want only 'a'", got)
	}
}

func TestSplitRunFlipsY(t *testing.T) {
	chars := splitRun("a b", "F1", 10, 100, 700, 30, 800)

	if len(chars) != 2 {
		t.Fatalf("expected spaces to be dropped, got %d chars", len(chars))
	}
	if chars[0].Y0 != 92 || chars[0].Y1 != 102 {
		t.Errorf("unexpected vertical box: %+v", chars[0])
	}
	if chars[1].X0 != 120 {
		t.Errorf("expected third glyph at x=120, got %v", chars[1].X0)
	}
}
