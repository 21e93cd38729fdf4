package parser

import (
	"silt/pkg/errors"
	"silt/pkg/lexer"
	"silt/pkg/source"
)

// parseGenericArguments parses the argument list of a generic
// instantiation after a consumed '<'. It returns the arguments and the
// span of the closing '>' consumed (or carved out) for this list.
//
// Adjacent closing chevrons reach the parser merged into shift tokens
// (`>>`, `>>>`), because the lexer cannot know it is inside nested
// generics. Rather than tracking nesting depth, the innermost list that
// meets a shift token narrows it in place: it takes a one-character '>'
// closer for itself and overwrites the upcoming token with the remainder,
// shifted one character right, for the enclosing list to consume. Each
// level of nesting then sees an ordinary one-character closer.
func (p *Parser) parseGenericArguments(stopOnUnionOrIntersection bool) ([]TypeExpression, source.Span, error) {
	var args []TypeExpression
	for {
		arg, err := p.parseType(stopOnUnionOrIntersection)
		if err != nil {
			return nil, source.Span{}, err
		}
		args = append(args, arg)

		if pk := p.r.Peek(); pk != nil {
			switch pk.Type {
			case lexer.RIGHT_SHIFT:
				closer := source.NewSpan(pk.StartPos, pk.StartPos+1, p.r.Source())
				p.r.ReplaceUpcoming(lexer.Token{
					Type:     lexer.GT,
					Literal:  ">",
					Line:     pk.Line,
					Column:   pk.Column + 1,
					StartPos: pk.StartPos + 1,
					EndPos:   pk.EndPos,
				})
				return args, closer, nil
			case lexer.UNSIGNED_RIGHT_SHIFT:
				closer := source.NewSpan(pk.StartPos, pk.StartPos+1, p.r.Source())
				p.r.ReplaceUpcoming(lexer.Token{
					Type:     lexer.RIGHT_SHIFT,
					Literal:  ">>",
					Line:     pk.Line,
					Column:   pk.Column + 1,
					StartPos: pk.StartPos + 1,
					EndPos:   pk.EndPos,
				})
				return args, closer, nil
			}
		}

		tok, err := p.requireNext()
		if err != nil {
			return nil, source.Span{}, err
		}
		switch tok.Type {
		case lexer.COMMA:
		case lexer.GT:
			return args, p.span(tok), nil
		default:
			return nil, source.Span{}, &errors.UnexpectedTokenError{
				Expected: []string{">", ","},
				Found:    string(tok.Type),
				Position: p.span(tok),
			}
		}
	}
}
