package lexer

import (
	"strings"

	"silt/pkg/source"
)

type lexerMode int

const (
	modeNormal lexerMode = iota
	modeTemplate
	modeInterpolation
)

type lexState struct {
	mode   lexerMode
	braces int // open brace depth inside an interpolation
}

// Lexer holds the state of the scanner.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char's byte offset)
	readPosition int  // current reading position in input (byte offset after current char)
	ch           byte // current char under examination
	line         int  // current 1-based line number
	column       int  // current 1-based column number

	// Template literals interleave raw chunks with ordinary tokens, so the
	// scanner keeps a mode stack: entering a backtick pushes template mode,
	// `${` pushes interpolation mode, the matching `}` pops it.
	states []lexState
}

// NewLexer creates a new Lexer.
func NewLexer(input string) *Lexer {
	// column starts at 0 so the first readChar lands on column 1.
	l := &Lexer{input: input, line: 1, column: 0, states: []lexState{{mode: modeNormal}}}
	l.readChar()
	return l
}

// Tokenize runs the scanner over the whole source, returning every token up
// to and including EOF.
func Tokenize(sf *source.SourceFile) []Token {
	l := NewLexer(sf.Content)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// readChar gives us the next character and advances our position in the
// input string. It also updates the line and column count.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // NUL signifies EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

// peekChar looks ahead in the input without consuming the character.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekChar2() byte {
	if l.readPosition+1 >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition+1]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) state() *lexState {
	return &l.states[len(l.states)-1]
}

func (l *Lexer) push(mode lexerMode) {
	l.states = append(l.states, lexState{mode: mode})
}

func (l *Lexer) pop() {
	if len(l.states) > 1 {
		l.states = l.states[:len(l.states)-1]
	}
}

// makeToken builds a token from a recorded start position up to the current
// scanner position.
func (l *Lexer) makeToken(tt TokenType, literal string, startLine, startCol, startPos int) Token {
	return Token{Type: tt, Literal: literal, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() Token {
	if l.state().mode == modeTemplate {
		return l.templateToken()
	}

	l.skipWhitespace()

	startLine := l.line
	startCol := l.column
	startPos := l.position

	var tok Token
	switch l.ch {
	case 0:
		tok = Token{Type: EOF, Literal: "", Line: startLine, Column: startCol, StartPos: startPos, EndPos: startPos}
		return tok
	case '<':
		l.readChar()
		tok = l.makeToken(LT, "<", startLine, startCol, startPos)
	case '>':
		if l.peekChar() == '>' {
			l.readChar() // second '>'
			if l.peekChar() == '>' {
				l.readChar() // third '>'
				l.readChar()
				tok = l.makeToken(UNSIGNED_RIGHT_SHIFT, ">>>", startLine, startCol, startPos)
			} else {
				l.readChar()
				tok = l.makeToken(RIGHT_SHIFT, ">>", startLine, startCol, startPos)
			}
		} else {
			l.readChar()
			tok = l.makeToken(GT, ">", startLine, startCol, startPos)
		}
	case '|':
		l.readChar()
		tok = l.makeToken(PIPE, "|", startLine, startCol, startPos)
	case '&':
		l.readChar()
		tok = l.makeToken(AMPERSAND, "&", startLine, startCol, startPos)
	case '=':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			tok = l.makeToken(ARROW, "=>", startLine, startCol, startPos)
		} else {
			literal := string(l.ch)
			l.readChar()
			tok = l.makeToken(ILLEGAL, literal, startLine, startCol, startPos)
		}
	case '.':
		if l.peekChar() == '.' && l.peekChar2() == '.' {
			l.readChar()
			l.readChar()
			l.readChar()
			tok = l.makeToken(SPREAD, "...", startLine, startCol, startPos)
		} else {
			l.readChar()
			tok = l.makeToken(DOT, ".", startLine, startCol, startPos)
		}
	case '?':
		if l.peekChar() == ':' {
			l.readChar()
			l.readChar()
			tok = l.makeToken(OPTIONAL_COLON, "?:", startLine, startCol, startPos)
		} else {
			l.readChar()
			tok = l.makeToken(QUESTION, "?", startLine, startCol, startPos)
		}
	case '@':
		l.readChar()
		tok = l.makeToken(AT, "@", startLine, startCol, startPos)
	case ',':
		l.readChar()
		tok = l.makeToken(COMMA, ",", startLine, startCol, startPos)
	case ':':
		l.readChar()
		tok = l.makeToken(COLON, ":", startLine, startCol, startPos)
	case ';':
		l.readChar()
		tok = l.makeToken(SEMICOLON, ";", startLine, startCol, startPos)
	case '(':
		l.readChar()
		tok = l.makeToken(LPAREN, "(", startLine, startCol, startPos)
	case ')':
		l.readChar()
		tok = l.makeToken(RPAREN, ")", startLine, startCol, startPos)
	case '{':
		l.state().braces++
		l.readChar()
		tok = l.makeToken(LBRACE, "{", startLine, startCol, startPos)
	case '}':
		st := l.state()
		if st.mode == modeInterpolation && st.braces == 0 {
			l.pop()
			l.readChar()
			tok = l.makeToken(TEMPLATE_EXPR_END, "}", startLine, startCol, startPos)
		} else {
			if st.braces > 0 {
				st.braces--
			}
			l.readChar()
			tok = l.makeToken(RBRACE, "}", startLine, startCol, startPos)
		}
	case '[':
		l.readChar()
		tok = l.makeToken(LBRACKET, "[", startLine, startCol, startPos)
	case ']':
		l.readChar()
		tok = l.makeToken(RBRACKET, "]", startLine, startCol, startPos)
	case '`':
		l.push(modeTemplate)
		l.readChar()
		tok = l.makeToken(TEMPLATE_START, "`", startLine, startCol, startPos)
	case '"', '\'':
		return l.readString(l.ch, startLine, startCol, startPos)
	case '/':
		if l.peekChar() == '/' {
			return l.readLineComment(startLine, startCol, startPos)
		}
		if l.peekChar() == '*' {
			return l.readBlockComment(startLine, startCol, startPos)
		}
		literal := string(l.ch)
		l.readChar()
		tok = l.makeToken(ILLEGAL, literal, startLine, startCol, startPos)
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return l.makeToken(LookupIdent(literal), literal, startLine, startCol, startPos)
		}
		if isDigit(l.ch) {
			literal := l.readNumber()
			return l.makeToken(NUMBER, literal, startLine, startCol, startPos)
		}
		literal := string(l.ch)
		l.readChar()
		tok = l.makeToken(ILLEGAL, literal, startLine, startCol, startPos)
	}
	return tok
}

// templateToken scans the inside of a template literal: raw chunks, the
// `${` interpolation opener, and the closing backtick.
func (l *Lexer) templateToken() Token {
	startLine := l.line
	startCol := l.column
	startPos := l.position

	switch {
	case l.ch == 0:
		return l.makeToken(ILLEGAL, "unterminated template literal", startLine, startCol, startPos)
	case l.ch == '`':
		l.pop()
		l.readChar()
		return l.makeToken(TEMPLATE_END, "`", startLine, startCol, startPos)
	case l.ch == '$' && l.peekChar() == '{':
		l.readChar()
		l.readChar()
		l.push(modeInterpolation)
		return l.makeToken(TEMPLATE_EXPR_START, "${", startLine, startCol, startPos)
	}

	var chunk strings.Builder
	for l.ch != 0 && l.ch != '`' && !(l.ch == '$' && l.peekChar() == '{') {
		chunk.WriteByte(l.ch)
		l.readChar()
	}
	return l.makeToken(TEMPLATE_CHUNK, chunk.String(), startLine, startCol, startPos)
}

// readString scans a quoted string literal. The token's Literal holds the
// contents without the surrounding quotes, with common escapes resolved.
func (l *Lexer) readString(quote byte, startLine, startCol, startPos int) Token {
	l.readChar() // consume opening quote
	var out strings.Builder
	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			return l.makeToken(ILLEGAL, "unterminated string literal", startLine, startCol, startPos)
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case 'r':
				out.WriteByte('\r')
			case 0:
				return l.makeToken(ILLEGAL, "unterminated string literal", startLine, startCol, startPos)
			default:
				out.WriteByte(l.ch)
			}
			l.readChar()
			continue
		}
		out.WriteByte(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return l.makeToken(STRING, out.String(), startLine, startCol, startPos)
}

func (l *Lexer) readLineComment(startLine, startCol, startPos int) Token {
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	return l.makeToken(COMMENT, l.input[startPos:l.position], startLine, startCol, startPos)
}

func (l *Lexer) readBlockComment(startLine, startCol, startPos int) Token {
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for {
		if l.ch == 0 {
			return l.makeToken(ILLEGAL, "unterminated multiline comment", startLine, startCol, startPos)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return l.makeToken(MULTILINE_COMMENT, l.input[startPos:l.position], startLine, startCol, startPos)
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber scans decimal, float, and 0x/0b/0o prefixed literals, with
// underscore separators. Validation happens in the numeric-literal parser.
func (l *Lexer) readNumber() string {
	start := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X' ||
		l.peekChar() == 'b' || l.peekChar() == 'B' ||
		l.peekChar() == 'o' || l.peekChar() == 'O') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[start:l.position]
	}
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekChar2())) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch == '$'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}
