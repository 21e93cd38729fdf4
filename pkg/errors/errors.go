package errors

import (
	"fmt"
	"os"
	"strings"

	"silt/pkg/source"
)

// SiltError is the interface implemented by all silt errors. Every error
// carries the exact offending span for diagnostics.
type SiltError interface {
	error
	Span() source.Span
	Kind() string // e.g., "Lex", "Syntax", "Print"
	// Message returns the specific error message without position info.
	Message() string
}

// --- Concrete Error Types ---

// LexError reports an exhausted token stream where a token was required.
type LexError struct {
	Position source.Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Lex Error at %s: %s", e.Position, e.Message())
}
func (e *LexError) Span() source.Span { return e.Position }
func (e *LexError) Kind() string      { return "Lex" }
func (e *LexError) Message() string   { return "unexpected end of input" }

// UnexpectedTokenError reports a token that does not belong at its
// position, along with the set of tokens that would have been accepted.
type UnexpectedTokenError struct {
	Expected []string
	Found    string
	Position source.Span
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Syntax Error at %s: %s", e.Position, e.Message())
}
func (e *UnexpectedTokenError) Span() source.Span { return e.Position }
func (e *UnexpectedTokenError) Kind() string      { return "Syntax" }
func (e *UnexpectedTokenError) Message() string {
	return fmt.Sprintf("expected %s, found %q", strings.Join(e.Expected, " or "), e.Found)
}

// TypeArgumentsError reports generic arguments applied to something that is
// not a bare type name.
type TypeArgumentsError struct {
	Position source.Span
}

func (e *TypeArgumentsError) Error() string {
	return fmt.Sprintf("Syntax Error at %s: %s", e.Position, e.Message())
}
func (e *TypeArgumentsError) Span() source.Span { return e.Position }
func (e *TypeArgumentsError) Kind() string      { return "Syntax" }
func (e *TypeArgumentsError) Message() string {
	return "type arguments are not valid on this reference"
}

// UnsupportedConstructError is a printer-only fault: the tree contains a
// shape the canonical printer deliberately does not render yet.
type UnsupportedConstructError struct {
	Construct string
	Position  source.Span
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("Print Error at %s: %s", e.Position, e.Message())
}
func (e *UnsupportedConstructError) Span() source.Span { return e.Position }
func (e *UnsupportedConstructError) Kind() string      { return "Print" }
func (e *UnsupportedConstructError) Message() string {
	return fmt.Sprintf("cannot print %s", e.Construct)
}

// --- Error Reporting ---

// DisplayErrors prints errors to stderr in a user-friendly format,
// including the source line and a position marker.
func DisplayErrors(sf *source.SourceFile, errs []SiltError) {
	if len(errs) == 0 {
		return
	}

	lines := sf.Lines()
	for _, err := range errs {
		line, col := sf.LineCol(err.Span().Start)

		fmt.Fprintf(os.Stderr, "%s Error at %d:%d: %s\n", err.Kind(), line, col, err.Message())

		lineIdx := line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
		fmt.Fprintf(os.Stderr, "  %s\n", sourceLine)
		fmt.Fprintf(os.Stderr, "  %s^\n", strings.Repeat(" ", col-1))
		fmt.Fprintln(os.Stderr)
	}
}
