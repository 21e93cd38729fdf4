package source

import "fmt"

// Span is a half-open byte range [Start, End) within one source file.
// Every AST node carries exactly one, either stored directly or derived
// from its children.
type Span struct {
	Start  int
	End    int
	Source SourceID
}

// NewSpan builds a span over [start, end) in the given source.
func NewSpan(start, end int, src SourceID) Span {
	return Span{Start: start, End: end, Source: src}
}

// Union returns the smallest span covering both s and other. It is
// independent of argument order. Both spans are expected to belong to the
// same source file.
func (s Span) Union(other Span) Span {
	out := Span{Start: s.Start, End: s.End, Source: s.Source}
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// Contains reports whether the offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Width returns the number of bytes the span covers.
func (s Span) Width() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
