package source

import "testing"

func TestSpanUnionCommutative(t *testing.T) {
	tests := []struct {
		a, b Span
	}{
		{NewSpan(0, 5, 1), NewSpan(3, 10, 1)},
		{NewSpan(10, 12, 1), NewSpan(0, 2, 1)},
		{NewSpan(4, 4, 1), NewSpan(4, 9, 1)},
		{NewSpan(0, 20, 1), NewSpan(5, 7, 1)},
	}

	for _, tt := range tests {
		ab := tt.a.Union(tt.b)
		ba := tt.b.Union(tt.a)
		if ab != ba {
			t.Errorf("Union not commutative: %v vs %v", ab, ba)
		}
		if ab.Start > tt.a.Start || ab.Start > tt.b.Start {
			t.Errorf("Union %v does not cover starts of %v and %v", ab, tt.a, tt.b)
		}
		if ab.End < tt.a.End || ab.End < tt.b.End {
			t.Errorf("Union %v does not cover ends of %v and %v", ab, tt.a, tt.b)
		}
	}
}

func TestSpanHelpers(t *testing.T) {
	s := NewSpan(3, 7, 1)
	if s.Width() != 4 {
		t.Errorf("expected width 4, got %d", s.Width())
	}
	if s.IsEmpty() {
		t.Errorf("expected non-empty span")
	}
	if !s.Contains(3) || s.Contains(7) {
		t.Errorf("Contains should be half-open: start in, end out")
	}
	if NewSpan(5, 5, 1).Width() != 0 || !NewSpan(5, 5, 1).IsEmpty() {
		t.Errorf("zero-width span should be empty")
	}
	if s.String() != "3..7" {
		t.Errorf("unexpected String: %q", s.String())
	}
}

func TestLineCol(t *testing.T) {
	sf := NewEvalSource("abc\ndef\nghi")
	tests := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{9, 3, 2},
	}
	for _, tt := range tests {
		line, col := sf.LineCol(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = %d:%d, expected %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}
