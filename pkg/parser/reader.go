package parser

import (
	"silt/pkg/errors"
	"silt/pkg/lexer"
	"silt/pkg/source"
)

// TokenReader is a cursor over a pre-lexed token stream. It is exclusively
// owned and mutated by the active parse call chain; there is no concurrent
// access.
type TokenReader struct {
	src    *source.SourceFile
	tokens []lexer.Token
	pos    int
}

// NewTokenReader creates a cursor over the given tokens. The token slice is
// expected to end with an EOF token, as produced by lexer.Tokenize.
func NewTokenReader(src *source.SourceFile, tokens []lexer.Token) *TokenReader {
	return &TokenReader{src: src, tokens: tokens}
}

// Source returns the identity of the file the tokens came from.
func (r *TokenReader) Source() source.SourceID {
	return r.src.ID
}

// SourceFile returns the file the tokens came from.
func (r *TokenReader) SourceFile() *source.SourceFile {
	return r.src
}

// Peek returns the upcoming token without consuming it, or nil if the
// stream is exhausted.
func (r *TokenReader) Peek() *lexer.Token {
	return r.PeekN(0)
}

// PeekN returns the token k positions past the upcoming one without
// consuming anything; PeekN(0) is Peek. Returns nil past the end.
func (r *TokenReader) PeekN(k int) *lexer.Token {
	i := r.pos + k
	if i >= len(r.tokens) || r.tokens[i].Type == lexer.EOF {
		return nil
	}
	return &r.tokens[i]
}

// Next consumes and returns the upcoming token. The second result is false
// if the stream is exhausted.
func (r *TokenReader) Next() (lexer.Token, bool) {
	if r.pos >= len(r.tokens) || r.tokens[r.pos].Type == lexer.EOF {
		return lexer.Token{}, false
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, true
}

// ExpectNext consumes the upcoming token if it has the wanted type, or
// returns a positioned error without consuming past it.
func (r *TokenReader) ExpectNext(tt lexer.TokenType) (lexer.Token, error) {
	tok, ok := r.Next()
	if !ok {
		return lexer.Token{}, &errors.LexError{Position: r.EndSpan()}
	}
	if tok.Type != tt {
		return lexer.Token{}, &errors.UnexpectedTokenError{
			Expected: []string{string(tt)},
			Found:    string(tok.Type),
			Position: tok.Span(r.src.ID),
		}
	}
	return tok, nil
}

// ConditionalNext consumes and returns the upcoming token only if the
// predicate accepts it.
func (r *TokenReader) ConditionalNext(pred func(lexer.Token) bool) (lexer.Token, bool) {
	tok := r.Peek()
	if tok == nil || !pred(*tok) {
		return lexer.Token{}, false
	}
	out := *tok
	r.pos++
	return out, true
}

// Scan walks forward from the upcoming token without consuming anything,
// calling pred on each token until it returns true, and returns the token
// after that one (nil if the stream ends first). It is the bounded-depth
// lookahead used for backtracking-free disambiguation.
func (r *TokenReader) Scan(pred func(lexer.Token) bool) *lexer.Token {
	for i := r.pos; i < len(r.tokens) && r.tokens[i].Type != lexer.EOF; i++ {
		if pred(r.tokens[i]) {
			j := i + 1
			if j >= len(r.tokens) || r.tokens[j].Type == lexer.EOF {
				return nil
			}
			return &r.tokens[j]
		}
	}
	return nil
}

// ReplaceUpcoming overwrites the upcoming token in place. This is the
// narrow mutation capability used by chevron-splitting when a merged shift
// token has to be reinterpreted as nested generic closers; nothing else
// may mutate the stream.
func (r *TokenReader) ReplaceUpcoming(tok lexer.Token) {
	if r.pos < len(r.tokens) {
		r.tokens[r.pos] = tok
	}
}

// EndSpan returns a zero-width span at the end of the stream, used to
// position exhaustion errors.
func (r *TokenReader) EndSpan() source.Span {
	end := len(r.src.Content)
	if n := len(r.tokens); n > 0 {
		end = r.tokens[n-1].StartPos
	}
	return source.NewSpan(end, end, r.src.ID)
}
