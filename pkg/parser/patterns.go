package parser

import (
	"silt/pkg/errors"
	"silt/pkg/lexer"
)

// parseBindingPattern parses a parameter name position: a plain
// identifier, an array destructuring pattern `[a, b]`, or an object
// destructuring pattern `{a, b}`.
func (p *Parser) parseBindingPattern() (BindingPattern, error) {
	tok, err := p.requireNext()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case lexer.IDENT:
		return &NamePattern{Name: tok.Literal, Span: p.span(tok)}, nil
	case lexer.LBRACKET:
		var elements []BindingPattern
		for {
			pk := p.r.Peek()
			if pk == nil {
				return nil, &errors.LexError{Position: p.r.EndSpan()}
			}
			if pk.Type == lexer.RBRACKET {
				break
			}
			element, err := p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
			if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.COMMA }); !ok {
				break
			}
		}
		end, err := p.r.ExpectNext(lexer.RBRACKET)
		if err != nil {
			return nil, err
		}
		return &ArrayPattern{Elements: elements, Span: p.span(tok).Union(p.span(end))}, nil
	case lexer.LBRACE:
		var names []string
		for {
			pk := p.r.Peek()
			if pk == nil {
				return nil, &errors.LexError{Position: p.r.EndSpan()}
			}
			if pk.Type == lexer.RBRACE {
				break
			}
			nameTok, err := p.requireNext()
			if err != nil {
				return nil, err
			}
			name, err := p.tokenAsIdentifier(nameTok, "binding name")
			if err != nil {
				return nil, err
			}
			names = append(names, name)
			if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.COMMA }); !ok {
				break
			}
		}
		end, err := p.r.ExpectNext(lexer.RBRACE)
		if err != nil {
			return nil, err
		}
		return &ObjectPattern{Names: names, Span: p.span(tok).Union(p.span(end))}, nil
	default:
		return nil, unexpectedToken(p, tok, "binding pattern")
	}
}
