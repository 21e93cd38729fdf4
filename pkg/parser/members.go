package parser

import (
	"silt/pkg/lexer"
)

// parseObjectMembers parses the member list of an object literal type.
// The cursor sits after the opening '{' on entry and is left just before
// the closing '}' for the caller to consume.
func (p *Parser) parseObjectMembers() ([]*ObjectMember, error) {
	var members []*ObjectMember
	for {
		p.skipComments()
		if pk := p.r.Peek(); pk == nil || pk.Type == lexer.RBRACE {
			return members, nil
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

		nameTok, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		var name string
		switch nameTok.Type {
		case lexer.IDENT, lexer.STRING:
			name = nameTok.Literal
		default:
			return nil, unexpectedToken(p, nameTok, "member name")
		}

		sep, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		optional := false
		switch sep.Type {
		case lexer.COLON:
		case lexer.OPTIONAL_COLON:
			optional = true
		default:
			return nil, unexpectedToken(p, sep, ":", "?:")
		}

		memberType, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		members = append(members, &ObjectMember{
			Decorators: decorators,
			Name:       name,
			Optional:   optional,
			Type:       memberType,
			Span:       p.span(nameTok).Union(memberType.Pos()),
		})

		// Members separate on ',' or ';'; a missing separator ends the list.
		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool {
			return t.Type == lexer.COMMA || t.Type == lexer.SEMICOLON
		}); !ok {
			return members, nil
		}
	}
}
