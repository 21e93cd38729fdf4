package parser

import (
	"silt/pkg/lexer"
	"silt/pkg/source"
)

// parseParameterList parses a function-type parameter list after a
// consumed '(' and through the closing ')'. Entries route into the
// required or optional bucket by their ':' vs '?:' separator; a `...rest`
// entry closes the list.
//
// Whether an entry starts with a binding name is decided by a
// non-consuming scan: walk past one balanced bracket group (or a single
// token) and see if a ':' or '?:' follows. No backtracking is needed.
func (p *Parser) parseParameterList(openSpan source.Span) (*ParameterList, error) {
	list := &ParameterList{}
	for {
		p.skipComments()
		if pk := p.r.Peek(); pk == nil || pk.Type == lexer.RPAREN {
			break
		}

		var decorators []*Decorator
		for pk := p.r.Peek(); pk != nil && pk.Type == lexer.AT; pk = p.r.Peek() {
			atTok, _ := p.r.Next()
			dec, err := p.parseDecorator(p.span(atTok))
			if err != nil {
				return nil, err
			}
			decorators = append(decorators, dec)
		}

		if pk := p.r.Peek(); pk != nil && pk.Type == lexer.SPREAD {
			spreadTok, _ := p.r.Next()
			nameTok, err := p.requireNext()
			if err != nil {
				return nil, err
			}
			name, err := p.tokenAsIdentifier(nameTok, "rest parameter name")
			if err != nil {
				return nil, err
			}
			if _, err := p.r.ExpectNext(lexer.COLON); err != nil {
				return nil, err
			}
			restType, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			list.Rest = &RestParameter{
				Decorators: decorators,
				SpreadSpan: p.span(spreadTok),
				Name:       name,
				Type:       restType,
			}
			break
		}

		depth := 0
		after := p.r.Scan(func(t lexer.Token) bool {
			switch t.Type {
			case lexer.LPAREN, lexer.LBRACE, lexer.LBRACKET:
				depth++
				return false
			case lexer.RPAREN, lexer.RBRACE, lexer.RBRACKET:
				depth--
				return depth == 0
			}
			return depth == 0
		})

		var name BindingPattern
		optional := false
		if after != nil && (after.Type == lexer.COLON || after.Type == lexer.OPTIONAL_COLON) {
			pattern, err := p.parseBindingPattern()
			if err != nil {
				return nil, err
			}
			name = pattern
			sep, err := p.requireNext()
			if err != nil {
				return nil, err
			}
			switch sep.Type {
			case lexer.COLON:
			case lexer.OPTIONAL_COLON:
				optional = true
			default:
				return nil, unexpectedToken(p, sep, ":", "?:")
			}
		}

		paramType, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		param := &Parameter{Decorators: decorators, Name: name, Type: paramType}
		if optional {
			list.Optional = append(list.Optional, param)
		} else {
			list.Required = append(list.Required, param)
		}

		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.COMMA }); !ok {
			break
		}
	}

	end, err := p.r.ExpectNext(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	list.Span = openSpan.Union(p.span(end))
	return list, nil
}
