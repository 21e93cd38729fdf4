package parser

import (
	"fmt"

	"silt/pkg/errors"
	"silt/pkg/lexer"
	"silt/pkg/source"
)

// --- Debug Flag ---
const debugParser = false

func debugPrint(format string, args ...interface{}) {
	if debugParser {
		fmt.Printf("[Parser Debug] "+format+"\n", args...)
	}
}

// --- End Debug Flag ---

// Parser builds type-expression trees from a token cursor. It is a
// single-threaded recursive-descent parser: the first error anywhere in
// the recursion unwinds immediately to the caller, and no partially valid
// tree is ever returned.
type Parser struct {
	r *TokenReader
}

// NewParser creates a parser over the given cursor.
func NewParser(r *TokenReader) *Parser {
	return &Parser{r: r}
}

// ParseString is a convenience that lexes and parses a whole input string
// as one type expression. The input must be fully consumed; trailing
// tokens are an error. Embedders parsing a type out of a larger stream
// use NewParser with their own cursor instead.
func ParseString(input string) (TypeExpression, error) {
	src := source.NewEvalSource(input)
	r := NewTokenReader(src, lexer.Tokenize(src))
	p := NewParser(r)
	expr, err := p.ParseTypeExpression()
	if err != nil {
		return nil, err
	}
	p.skipComments()
	if pk := r.Peek(); pk != nil {
		return nil, &errors.UnexpectedTokenError{
			Expected: []string{"end of input"},
			Found:    string(pk.Type),
			Position: pk.Span(src.ID),
		}
	}
	return expr, nil
}

// ParseTypeExpression parses one type expression from the cursor.
func (p *Parser) ParseTypeExpression() (TypeExpression, error) {
	return p.parseType(false)
}

func (p *Parser) span(tok lexer.Token) source.Span {
	return tok.Span(p.r.Source())
}

// requireNext consumes the next token or fails with a positioned LexError
// if the stream is exhausted.
func (p *Parser) requireNext() (lexer.Token, error) {
	tok, ok := p.r.Next()
	if !ok {
		return lexer.Token{}, &errors.LexError{Position: p.r.EndSpan()}
	}
	return tok, nil
}

// tokenAsIdentifier returns the token's name if it is identifier-shaped.
func (p *Parser) tokenAsIdentifier(tok lexer.Token, what string) (string, error) {
	if tok.Type != lexer.IDENT {
		return "", &errors.UnexpectedTokenError{
			Expected: []string{what},
			Found:    string(tok.Type),
			Position: p.span(tok),
		}
	}
	return tok.Literal, nil
}

func unexpectedToken(p *Parser, tok lexer.Token, expected ...string) error {
	return &errors.UnexpectedTokenError{
		Expected: expected,
		Found:    string(tok.Type),
		Position: p.span(tok),
	}
}

func (p *Parser) skipComments() {
	for pk := p.r.Peek(); pk != nil && pk.IsComment(); pk = p.r.Peek() {
		p.r.Next()
	}
}

// parseType is the grammar engine: atom dispatch, then postfix
// continuations, then the binary/ternary continuation. The
// stopOnUnionOrIntersection flag is set by contexts that own their own
// terminating delimiter (union/intersection operands, conditional
// comparison operands, arrow-sugar return types), so an inner parse never
// swallows a `|` or `&` belonging to the enclosing expression.
func (p *Parser) parseType(stopOnUnionOrIntersection bool) (TypeExpression, error) {
	p.skipComments()
	tok, err := p.requireNext()
	if err != nil {
		return nil, err
	}
	debugPrint("parseType(stop=%v): atom token %q", stopOnUnionOrIntersection, tok.Literal)

	var ref TypeExpression
	switch tok.Type {
	case lexer.TRUE:
		ref = &BooleanLiteralType{Value: true, Span: p.span(tok)}
	case lexer.FALSE:
		ref = &BooleanLiteralType{Value: false, Span: p.span(tok)}
	case lexer.NUMBER:
		num, numErr := ParseNumber(tok.Literal)
		if numErr != nil {
			return nil, &errors.UnexpectedTokenError{
				Expected: []string{"number literal"},
				Found:    tok.Literal,
				Position: p.span(tok),
			}
		}
		ref = &NumberLiteralType{Value: num, Span: p.span(tok)}
	case lexer.STRING:
		ref = &StringLiteralType{Value: tok.Literal, Span: p.span(tok)}
	case lexer.AT:
		decorator, err := p.parseDecorator(p.span(tok))
		if err != nil {
			return nil, err
		}
		inner, err := p.parseType(true)
		if err != nil {
			return nil, err
		}
		ref = &DecoratedType{Decorator: decorator, Type: inner, Span: p.span(tok).Union(inner.Pos())}
	case lexer.LPAREN:
		// Discern between group and function type: scan ahead to the
		// matching close paren without consuming, then look at what
		// follows it.
		depth := 1
		after := p.r.Scan(func(t lexer.Token) bool {
			switch t.Type {
			case lexer.LPAREN:
				depth++
			case lexer.RPAREN:
				depth--
			}
			return depth == 0
		})
		if after != nil && after.Type == lexer.ARROW {
			params, err := p.parseParameterList(p.span(tok))
			if err != nil {
				return nil, err
			}
			if _, err := p.r.ExpectNext(lexer.ARROW); err != nil {
				return nil, err
			}
			returnType, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			ref = &FunctionSignature{Parameters: params, ReturnType: returnType, ID: FreshTypeID()}
		} else {
			inner, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			end, err := p.r.ExpectNext(lexer.RPAREN)
			if err != nil {
				return nil, err
			}
			ref = &ParenthesizedType{Type: inner, Span: p.span(tok).Union(p.span(end))}
		}
	case lexer.LT:
		typeParams, err := p.parseTypeParameters()
		if err != nil {
			return nil, err
		}
		open, err := p.r.ExpectNext(lexer.LPAREN)
		if err != nil {
			return nil, err
		}
		params, err := p.parseParameterList(p.span(open))
		if err != nil {
			return nil, err
		}
		if _, err := p.r.ExpectNext(lexer.ARROW); err != nil {
			return nil, err
		}
		returnType, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		ref = &FunctionSignature{TypeParameters: typeParams, Parameters: params, ReturnType: returnType, ID: FreshTypeID()}
	case lexer.LBRACE:
		members, err := p.parseObjectMembers()
		if err != nil {
			return nil, err
		}
		end, err := p.r.ExpectNext(lexer.RBRACE)
		if err != nil {
			return nil, err
		}
		ref = &ObjectLiteralType{Members: members, ID: FreshTypeID(), Span: p.span(tok).Union(p.span(end))}
	case lexer.LBRACKET:
		tuple, err := p.parseTupleBody(p.span(tok))
		if err != nil {
			return nil, err
		}
		ref = tuple
	case lexer.TEMPLATE_START:
		template, err := p.parseTemplateBody(p.span(tok))
		if err != nil {
			return nil, err
		}
		ref = template
	case lexer.READONLY:
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		// readonly/keyof bind their whole operand; no continuations apply.
		return &ReadonlyType{Type: inner, Span: p.span(tok).Union(inner.Pos())}, nil
	case lexer.KEYOF:
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return &KeyOfType{Type: inner, Span: p.span(tok).Union(inner.Pos())}, nil
	case lexer.NEW:
		var typeParams []*TypeParameter
		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.LT }); ok {
			tp, err := p.parseTypeParameters()
			if err != nil {
				return nil, err
			}
			typeParams = tp
		}
		open, err := p.r.ExpectNext(lexer.LPAREN)
		if err != nil {
			return nil, err
		}
		params, err := p.parseParameterList(p.span(open))
		if err != nil {
			return nil, err
		}
		if _, err := p.r.ExpectNext(lexer.ARROW); err != nil {
			return nil, err
		}
		returnType, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		ref = &ConstructorSignature{NewSpan: p.span(tok), TypeParameters: typeParams, Parameters: params, ReturnType: returnType}
	default:
		name, err := p.tokenAsIdentifier(tok, "type expression")
		if err != nil {
			return nil, err
		}
		ref = &TypeName{Name: name, Span: p.span(tok)}
	}

	// Postfix continuations: namespaced name, generic arguments, or
	// trailing bracket suffixes. First match wins.
	switch pk := p.r.Peek(); {
	case pk != nil && pk.Type == lexer.DOT:
		name, ok := ref.(*TypeName)
		if !ok {
			return nil, &errors.UnexpectedTokenError{
				Expected: []string{"a bare type name before '.'"},
				Found:    string(pk.Type),
				Position: pk.Span(p.r.Source()),
			}
		}
		p.r.Next() // consume '.'
		memberTok, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		member, err := p.tokenAsIdentifier(memberTok, "namespace member name")
		if err != nil {
			return nil, err
		}
		ref = &NamespacedName{Namespace: name.Name, Member: member, Span: name.Span.Union(p.span(memberTok))}
	case pk != nil && pk.Type == lexer.LT:
		name, ok := ref.(*TypeName)
		if !ok {
			open, _ := p.r.Next()
			return nil, &errors.TypeArgumentsError{Position: p.span(open)}
		}
		p.r.Next() // consume '<'
		args, closeSpan, err := p.parseGenericArguments(stopOnUnionOrIntersection)
		if err != nil {
			return nil, err
		}
		ref = &GenericInstantiation{Name: name.Name, Arguments: args, Span: name.Span.Union(closeSpan)}
	default:
		// Array shorthand and indexed access; loops as T[][] or T[K][].
		for {
			if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.LBRACKET }); !ok {
				break
			}
			if pk := p.r.Peek(); pk != nil && pk.Type == lexer.RBRACKET {
				closeTok, _ := p.r.Next()
				ref = &ArrayShorthand{Element: ref, Span: ref.Pos().Union(p.span(closeTok))}
				continue
			}
			index, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			end, err := p.r.ExpectNext(lexer.RBRACKET)
			if err != nil {
				return nil, err
			}
			ref = &IndexedAccessType{Object: ref, Index: index, Span: ref.Pos().Union(p.span(end))}
		}
	}

	// Binary/ternary continuation: extends/is conditionals, unions,
	// intersections, or the arrow-sugar function literal.
	pk := p.r.Peek()
	if pk == nil {
		return ref, nil
	}
	switch pk.Type {
	case lexer.EXTENDS:
		p.r.Next()
		comparison, err := p.parseType(true)
		if err != nil {
			return nil, err
		}
		condition := &ExtendsCondition{Type: ref, Extends: comparison, Span: ref.Pos().Union(comparison.Pos())}
		return p.parseConditionalTail(condition)
	case lexer.IS:
		p.r.Next()
		comparison, err := p.parseType(true)
		if err != nil {
			return nil, err
		}
		condition := &IsCondition{Type: ref, Is: comparison, Span: ref.Pos().Union(comparison.Pos())}
		return p.parseConditionalTail(condition)
	case lexer.PIPE:
		if stopOnUnionOrIntersection {
			return ref, nil
		}
		members := []TypeExpression{ref}
		for pk := p.r.Peek(); pk != nil && pk.Type == lexer.PIPE; pk = p.r.Peek() {
			p.r.Next()
			member, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return &UnionType{Members: members}, nil
	case lexer.AMPERSAND:
		if stopOnUnionOrIntersection {
			return ref, nil
		}
		members := []TypeExpression{ref}
		for pk := p.r.Peek(); pk != nil && pk.Type == lexer.AMPERSAND; pk = p.r.Peek() {
			p.r.Next()
			member, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		return &IntersectionType{Members: members}, nil
	case lexer.ARROW:
		// Arrow sugar: the already-parsed atom becomes a single anonymous
		// parameter.
		p.r.Next()
		returnType, err := p.parseType(true)
		if err != nil {
			return nil, err
		}
		params := &ParameterList{
			Required: []*Parameter{{Type: ref}},
			Span:     ref.Pos(),
		}
		return &FunctionSignature{Parameters: params, ReturnType: returnType, ID: FreshTypeID()}, nil
	}
	return ref, nil
}

// parseConditionalTail parses `? <result> : <result>` after a completed
// condition.
func (p *Parser) parseConditionalTail(condition TypeCondition) (TypeExpression, error) {
	if _, err := p.r.ExpectNext(lexer.QUESTION); err != nil {
		return nil, err
	}
	trueResult, err := p.parseConditionResult()
	if err != nil {
		return nil, err
	}
	if _, err := p.r.ExpectNext(lexer.COLON); err != nil {
		return nil, err
	}
	falseResult, err := p.parseConditionResult()
	if err != nil {
		return nil, err
	}
	return &ConditionalType{
		Condition: condition,
		True:      trueResult,
		False:     falseResult,
		Span:      condition.Pos().Union(falseResult.Pos()),
	}, nil
}

// parseConditionResult parses one branch of a conditional type: an
// `infer <binding>` capture or a plain nested type expression.
func (p *Parser) parseConditionResult() (ConditionResult, error) {
	if pk := p.r.Peek(); pk != nil && pk.Type == lexer.INFER {
		inferTok, _ := p.r.Next()
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return &InferResult{Type: inner, Span: p.span(inferTok).Union(inner.Pos())}, nil
	}
	inner, err := p.parseType(false)
	if err != nil {
		return nil, err
	}
	return &ReferenceResult{Type: inner}, nil
}

// parseTupleBody parses `[name: ...T, ...]` after a consumed '['.
func (p *Parser) parseTupleBody(openSpan source.Span) (*TupleLiteralType, error) {
	var elements []*TupleElement
	for {
		if pk := p.r.Peek(); pk == nil || pk.Type == lexer.RBRACKET {
			break
		}
		element := &TupleElement{}
		// A named element is detected by peeking one token ahead for ':'.
		if next := p.r.PeekN(1); next != nil && next.Type == lexer.COLON {
			nameTok, err := p.requireNext()
			if err != nil {
				return nil, err
			}
			name, err := p.tokenAsIdentifier(nameTok, "tuple element name")
			if err != nil {
				return nil, err
			}
			p.r.Next() // consume ':'
			element.Name = name
		}
		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.SPREAD }); ok {
			element.Spread = true
		}
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		element.Type = inner
		elements = append(elements, element)
		if _, ok := p.r.ConditionalNext(func(t lexer.Token) bool { return t.Type == lexer.COMMA }); !ok {
			break
		}
	}
	end, err := p.r.ExpectNext(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &TupleLiteralType{Elements: elements, ID: FreshTypeID(), Span: openSpan.Union(p.span(end))}, nil
}

// parseTemplateBody parses the alternating static chunks and `${...}`
// slots of a template literal type after a consumed opening backtick.
func (p *Parser) parseTemplateBody(openSpan source.Span) (*TemplateLiteralType, error) {
	var parts []TemplatePart
	for {
		tok, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case lexer.TEMPLATE_CHUNK:
			parts = append(parts, &TemplateChunk{Text: tok.Literal})
		case lexer.TEMPLATE_EXPR_START:
			inner, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			if _, err := p.r.ExpectNext(lexer.TEMPLATE_EXPR_END); err != nil {
				return nil, err
			}
			parts = append(parts, &TemplateSlot{Type: inner})
		case lexer.TEMPLATE_END:
			return &TemplateLiteralType{Parts: parts, Span: openSpan.Union(p.span(tok))}, nil
		default:
			return nil, &errors.UnexpectedTokenError{
				Expected: []string{"template literal part"},
				Found:    string(tok.Type),
				Position: p.span(tok),
			}
		}
	}
}

// parseTypeParameters parses an explicit generic-parameter list after a
// consumed '<', e.g. `T, U extends string>`.
func (p *Parser) parseTypeParameters() ([]*TypeParameter, error) {
	var params []*TypeParameter
	for {
		tok, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		name, err := p.tokenAsIdentifier(tok, "type parameter name")
		if err != nil {
			return nil, err
		}
		param := &TypeParameter{Name: name, Span: p.span(tok)}
		if pk := p.r.Peek(); pk != nil && pk.Type == lexer.EXTENDS {
			p.r.Next()
			constraint, err := p.parseType(true)
			if err != nil {
				return nil, err
			}
			param.Constraint = constraint
			param.Span = param.Span.Union(constraint.Pos())
		}
		params = append(params, param)

		sep, err := p.requireNext()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case lexer.COMMA:
		case lexer.GT:
			return params, nil
		default:
			return nil, &errors.UnexpectedTokenError{
				Expected: []string{">", ","},
				Found:    string(sep.Type),
				Position: p.span(sep),
			}
		}
	}
}
