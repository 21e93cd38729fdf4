package lexer

import "testing"

func TestNextTokenTypeSource(t *testing.T) {
	input := "Map<string, number> | { a?: string }[] & (x: T) => new T.y"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENT, "Map"},
		{LT, "<"},
		{IDENT, "string"},
		{COMMA, ","},
		{IDENT, "number"},
		{GT, ">"},
		{PIPE, "|"},
		{LBRACE, "{"},
		{IDENT, "a"},
		{OPTIONAL_COLON, "?:"},
		{IDENT, "string"},
		{RBRACE, "}"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{AMPERSAND, "&"},
		{LPAREN, "("},
		{IDENT, "x"},
		{COLON, ":"},
		{IDENT, "T"},
		{RPAREN, ")"},
		{ARROW, "=>"},
		{NEW, "new"},
		{IDENT, "T"},
		{DOT, "."},
		{IDENT, "y"},
		{EOF, ""},
	}

	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestMergedChevrons(t *testing.T) {
	l := NewLexer("Array<Array<Array<T>>>")
	var types []TokenType
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
	}
	expected := []TokenType{IDENT, LT, IDENT, LT, IDENT, LT, IDENT, UNSIGNED_RIGHT_SHIFT}
	if len(types) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(types), types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Errorf("token %d: expected %q, got %q", i, expected[i], types[i])
		}
	}

	l = NewLexer("Array<Array<T>>")
	last := Token{}
	for tok := l.NextToken(); tok.Type != EOF; tok = l.NextToken() {
		last = tok
	}
	if last.Type != RIGHT_SHIFT {
		t.Errorf("expected trailing %q, got %q", RIGHT_SHIFT, last.Type)
	}
	if last.EndPos-last.StartPos != 2 {
		t.Errorf("expected 2-char shift token, got span %d..%d", last.StartPos, last.EndPos)
	}
}

func TestTemplateLiteral(t *testing.T) {
	input := "`test-${X}`"
	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TEMPLATE_START, "`"},
		{TEMPLATE_CHUNK, "test-"},
		{TEMPLATE_EXPR_START, "${"},
		{IDENT, "X"},
		{TEMPLATE_EXPR_END, "}"},
		{TEMPLATE_END, "`"},
		{EOF, ""},
	}
	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)", i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
	}
}

func TestTemplateWithObjectTypeInside(t *testing.T) {
	// The `}` closing the object type must not end the interpolation.
	input := "`${{ a: T }}`"
	tests := []TokenType{
		TEMPLATE_START, TEMPLATE_EXPR_START, LBRACE, IDENT, COLON, IDENT, RBRACE,
		TEMPLATE_EXPR_END, TEMPLATE_END, EOF,
	}
	l := NewLexer(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - expected %q, got %q (%q)", i, expected, tok.Type, tok.Literal)
		}
	}
}

func TestStringsNumbersComments(t *testing.T) {
	input := "\"foo\" 'bar' 45 1.5e3 0xff // trailing\n/* block */ x"
	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{STRING, "foo"},
		{STRING, "bar"},
		{NUMBER, "45"},
		{NUMBER, "1.5e3"},
		{NUMBER, "0xff"},
		{COMMENT, "// trailing"},
		{MULTILINE_COMMENT, "/* block */"},
		{IDENT, "x"},
		{EOF, ""},
	}
	l := NewLexer(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)", i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
	}
}

func TestSpreadAndDots(t *testing.T) {
	l := NewLexer("...a.b")
	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{SPREAD, "..."},
		{IDENT, "a"},
		{DOT, "."},
		{IDENT, "b"},
		{EOF, ""},
	}
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.expectedType, tok.Type)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	l := NewLexer("foo bar")
	first := l.NextToken()
	second := l.NextToken()
	if first.StartPos != 0 || first.EndPos != 3 {
		t.Errorf("first token span: got %d..%d", first.StartPos, first.EndPos)
	}
	if first.Line != 1 || first.Column != 1 {
		t.Errorf("first token position: got %d:%d, want 1:1", first.Line, first.Column)
	}
	if second.StartPos != 4 || second.EndPos != 7 {
		t.Errorf("second token span: got %d..%d", second.StartPos, second.EndPos)
	}
	if second.Line != 1 || second.Column != 5 {
		t.Errorf("second token position: got %d:%d", second.Line, second.Column)
	}

	l = NewLexer("a\nbb")
	l.NextToken()
	tok := l.NextToken()
	if tok.Line != 2 || tok.Column != 1 {
		t.Errorf("token after newline: got %d:%d, want 2:1", tok.Line, tok.Column)
	}
}
