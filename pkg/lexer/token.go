package lexer

import "silt/pkg/source"

// TokenType represents the type of a token.
type TokenType string

// Token represents a lexical token.
type Token struct {
	Type     TokenType
	Literal  string // The actual text of the token (lexeme); string contents for STRING
	Line     int    // 1-based line number where the token starts
	Column   int    // 1-based column number where the token starts
	StartPos int    // 0-based byte offset where the token starts
	EndPos   int    // 0-based byte offset after the token ends
}

// Span returns the token's source range within the given source file.
func (t Token) Span(src source.SourceID) source.Span {
	return source.NewSpan(t.StartPos, t.EndPos, src)
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Type == COMMENT || t.Type == MULTILINE_COMMENT
}

// --- Token Types ---
const (
	// Special
	ILLEGAL TokenType = "ILLEGAL" // Unknown token/character
	EOF     TokenType = "EOF"     // End Of File

	// Identifiers + Literals
	IDENT  TokenType = "IDENT"  // Array, IPost
	NUMBER TokenType = "NUMBER" // 123, 45.67, 0xff
	STRING TokenType = "STRING" // "hello world", 'hello world'

	// Comments are emitted as tokens; the grammar engine skips them.
	COMMENT           TokenType = "COMMENT"
	MULTILINE_COMMENT TokenType = "MULTILINE_COMMENT"

	// Operators
	LT                   TokenType = "<"
	GT                   TokenType = ">"
	RIGHT_SHIFT          TokenType = ">>"  // merged closers at the value level
	UNSIGNED_RIGHT_SHIFT TokenType = ">>>" // merged closers at the value level
	PIPE                 TokenType = "|"
	AMPERSAND            TokenType = "&"
	ARROW                TokenType = "=>"
	DOT                  TokenType = "."
	SPREAD               TokenType = "..."
	QUESTION             TokenType = "?"
	OPTIONAL_COLON       TokenType = "?:"
	AT                   TokenType = "@"

	// Delimiters
	COMMA     TokenType = ","
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Template literals
	TEMPLATE_START      TokenType = "TEMPLATE_START"      // `
	TEMPLATE_CHUNK      TokenType = "TEMPLATE_CHUNK"      // static text
	TEMPLATE_EXPR_START TokenType = "TEMPLATE_EXPR_START" // ${
	TEMPLATE_EXPR_END   TokenType = "TEMPLATE_EXPR_END"   // }
	TEMPLATE_END        TokenType = "TEMPLATE_END"        // `

	// Keywords
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	READONLY TokenType = "READONLY"
	KEYOF    TokenType = "KEYOF"
	NEW      TokenType = "NEW"
	EXTENDS  TokenType = "EXTENDS"
	IS       TokenType = "IS"
	INFER    TokenType = "INFER"
)

var keywords = map[string]TokenType{
	"true":     TRUE,
	"false":    FALSE,
	"readonly": READONLY,
	"keyof":    KEYOF,
	"new":      NEW,
	"extends":  EXTENDS,
	"is":       IS,
	"infer":    INFER,
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}
