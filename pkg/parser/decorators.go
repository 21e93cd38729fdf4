package parser

import (
	"silt/pkg/errors"
	"silt/pkg/lexer"
	"silt/pkg/source"
)

// parseDecorator parses a decorator after a consumed '@': a dotted name
// chain with an optional argument list of literal lexemes, e.g.
// `@Deprecated("use X", 2)`.
func (p *Parser) parseDecorator(atSpan source.Span) (*Decorator, error) {
	nameTok, err := p.requireNext()
	if err != nil {
		return nil, err
	}
	name, err := p.tokenAsIdentifier(nameTok, "decorator name")
	if err != nil {
		return nil, err
	}
	dec := &Decorator{Parts: []string{name}, Span: atSpan.Union(p.span(nameTok))}

	for {
		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.DOT }); !ok {
			break
		}
		partTok, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		part, err := p.tokenAsIdentifier(partTok, "decorator name")
		if err != nil {
			return nil, err
		}
		dec.Parts = append(dec.Parts, part)
		dec.Span = dec.Span.Union(p.span(partTok))
	}

	if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.LPAREN }); ok {
		dec.Args = []string{}
		for {
			pk := p.r.Peek()
			if pk == nil {
				return nil, &errors.LexError{Position: p.r.EndSpan()}
			}
			if pk.Type == lexer.RPAREN {
				break
			}
			tok, _ := p.r.Next()
			switch tok.Type {
			case lexer.IDENT, lexer.NUMBER, lexer.TRUE, lexer.FALSE:
				dec.Args = append(dec.Args, tok.Literal)
			case lexer.STRING:
				// Keep the quotes so the lexeme prints back as written.
				dec.Args = append(dec.Args, "\""+tok.Literal+"\"")
			default:
				return nil, unexpectedToken(p, tok, "decorator argument")
			}
			if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.COMMA }); !ok {
				break
			}
		}
		end, err := p.r.ExpectNext(lexer.RPAREN)
		if err != nil {
			return nil, err
		}
		dec.Span = dec.Span.Union(p.span(end))
	}
	return dec, nil
}
