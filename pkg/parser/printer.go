package parser

import (
	"fmt"
	"strings"

	"silt/pkg/errors"
)

// PrintOptions controls canonical printing.
type PrintOptions struct {
	// ExpectPlaceholders permits placeholder nodes left behind by
	// incremental tooling; without it the printer faults on them.
	ExpectPlaceholders bool
}

// Print renders a type expression back to canonical source text. The
// output is normalized, not a reproduction of the original spacing:
// single spaces around `|`, `&` and `=>`, `, ` between list entries.
// Printing is total over the grammar except for a small set of shapes
// that fault with an UnsupportedConstructError (namespaced names,
// indexed access, keyof, and ungated placeholders); nothing is silently
// dropped.
func Print(t TypeExpression, opts PrintOptions) (string, error) {
	var buf strings.Builder
	if err := printType(&buf, t, opts, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// printType renders one node. The depth counter tracks structural
// nesting; it does not affect layout yet but is threaded through so a
// multi-line mode can use it.
func printType(buf *strings.Builder, t TypeExpression, opts PrintOptions, depth int) error {
	switch n := t.(type) {
	case *TypeName:
		buf.WriteString(n.Name)
	case *NamespacedName:
		return &errors.UnsupportedConstructError{Construct: "namespaced name", Position: n.Span}
	case *GenericInstantiation:
		buf.WriteString(n.Name)
		buf.WriteByte('<')
		for i, arg := range n.Arguments {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := printType(buf, arg, opts, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('>')
	case *UnionType:
		for i, member := range n.Members {
			if i > 0 {
				buf.WriteString(" | ")
			}
			if err := printType(buf, member, opts, depth); err != nil {
				return err
			}
		}
	case *IntersectionType:
		for i, member := range n.Members {
			if i > 0 {
				buf.WriteString(" & ")
			}
			if err := printType(buf, member, opts, depth); err != nil {
				return err
			}
		}
	case *StringLiteralType:
		fmt.Fprintf(buf, "%q", n.Value)
	case *NumberLiteralType:
		buf.WriteString(n.Value.Raw)
	case *BooleanLiteralType:
		if n.Value {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case *ArrayShorthand:
		if err := printType(buf, n.Element, opts, depth); err != nil {
			return err
		}
		buf.WriteString("[]")
	case *FunctionSignature:
		if err := printTypeParameters(buf, n.TypeParameters, opts, depth); err != nil {
			return err
		}
		if err := printParameterList(buf, n.Parameters, opts, depth); err != nil {
			return err
		}
		buf.WriteString(" => ")
		return printType(buf, n.ReturnType, opts, depth)
	case *ConstructorSignature:
		buf.WriteString("new ")
		if err := printTypeParameters(buf, n.TypeParameters, opts, depth); err != nil {
			return err
		}
		if err := printParameterList(buf, n.Parameters, opts, depth); err != nil {
			return err
		}
		buf.WriteString(" => ")
		return printType(buf, n.ReturnType, opts, depth)
	case *ObjectLiteralType:
		if len(n.Members) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{ ")
		for i, member := range n.Members {
			if i > 0 {
				buf.WriteString(", ")
			}
			if err := printObjectMember(buf, member, opts, depth+1); err != nil {
				return err
			}
		}
		buf.WriteString(" }")
	case *TupleLiteralType:
		buf.WriteByte('[')
		for i, element := range n.Elements {
			if i > 0 {
				buf.WriteString(", ")
			}
			if element.Name != "" {
				buf.WriteString(element.Name)
				buf.WriteString(": ")
			}
			if element.Spread {
				buf.WriteString("...")
			}
			if err := printType(buf, element.Type, opts, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *TemplateLiteralType:
		buf.WriteByte('`')
		for _, part := range n.Parts {
			switch part := part.(type) {
			case *TemplateChunk:
				buf.WriteString(part.Text)
			case *TemplateSlot:
				buf.WriteString("${")
				if err := printType(buf, part.Type, opts, depth+1); err != nil {
					return err
				}
				buf.WriteByte('}')
			}
		}
		buf.WriteByte('`')
	case *ReadonlyType:
		buf.WriteString("readonly ")
		return printType(buf, n.Type, opts, depth)
	case *KeyOfType:
		return &errors.UnsupportedConstructError{Construct: "keyof", Position: n.Span}
	case *IndexedAccessType:
		return &errors.UnsupportedConstructError{Construct: "indexed access", Position: n.Span}
	case *ParenthesizedType:
		buf.WriteByte('(')
		if err := printType(buf, n.Type, opts, depth); err != nil {
			return err
		}
		buf.WriteByte(')')
	case *ConditionalType:
		switch cond := n.Condition.(type) {
		case *ExtendsCondition:
			if err := printType(buf, cond.Type, opts, depth); err != nil {
				return err
			}
			buf.WriteString(" extends ")
			if err := printType(buf, cond.Extends, opts, depth); err != nil {
				return err
			}
		case *IsCondition:
			if err := printType(buf, cond.Type, opts, depth); err != nil {
				return err
			}
			buf.WriteString(" is ")
			if err := printType(buf, cond.Is, opts, depth); err != nil {
				return err
			}
		}
		buf.WriteString(" ? ")
		if err := printConditionResult(buf, n.True, opts, depth); err != nil {
			return err
		}
		buf.WriteString(" : ")
		return printConditionResult(buf, n.False, opts, depth)
	case *DecoratedType:
		printDecorator(buf, n.Decorator)
		buf.WriteByte(' ')
		return printType(buf, n.Type, opts, depth)
	case *PlaceholderType:
		if !opts.ExpectPlaceholders {
			return &errors.UnsupportedConstructError{Construct: "placeholder node", Position: n.Span}
		}
	default:
		panic(fmt.Sprintf("printType: unhandled node %T", t))
	}
	return nil
}

func printObjectMember(buf *strings.Builder, member *ObjectMember, opts PrintOptions, depth int) error {
	for _, dec := range member.Decorators {
		printDecorator(buf, dec)
		buf.WriteByte(' ')
	}
	if isIdentifierName(member.Name) {
		buf.WriteString(member.Name)
	} else {
		fmt.Fprintf(buf, "%q", member.Name)
	}
	if member.Optional {
		buf.WriteString("?: ")
	} else {
		buf.WriteString(": ")
	}
	return printType(buf, member.Type, opts, depth)
}

// isIdentifierName reports whether a member name can be printed bare or
// needs string quoting.
func isIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || c == '$':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func printConditionResult(buf *strings.Builder, r ConditionResult, opts PrintOptions, depth int) error {
	switch r := r.(type) {
	case *InferResult:
		buf.WriteString("infer ")
		return printType(buf, r.Type, opts, depth)
	case *ReferenceResult:
		return printType(buf, r.Type, opts, depth)
	}
	return nil
}

func printTypeParameters(buf *strings.Builder, params []*TypeParameter, opts PrintOptions, depth int) error {
	if len(params) == 0 {
		return nil
	}
	buf.WriteByte('<')
	for i, param := range params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(param.Name)
		if param.Constraint != nil {
			buf.WriteString(" extends ")
			if err := printType(buf, param.Constraint, opts, depth+1); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('>')
	return nil
}

func printParameterList(buf *strings.Builder, list *ParameterList, opts PrintOptions, depth int) error {
	buf.WriteByte('(')
	wrote := false
	separate := func() {
		if wrote {
			buf.WriteString(", ")
		}
		wrote = true
	}
	for _, param := range list.Required {
		separate()
		if err := printParameter(buf, param, false, opts, depth+1); err != nil {
			return err
		}
	}
	for _, param := range list.Optional {
		separate()
		if err := printParameter(buf, param, true, opts, depth+1); err != nil {
			return err
		}
	}
	if list.Rest != nil {
		separate()
		for _, dec := range list.Rest.Decorators {
			printDecorator(buf, dec)
			buf.WriteByte(' ')
		}
		buf.WriteString("...")
		buf.WriteString(list.Rest.Name)
		buf.WriteString(": ")
		if err := printType(buf, list.Rest.Type, opts, depth+1); err != nil {
			return err
		}
	}
	buf.WriteByte(')')
	return nil
}

func printParameter(buf *strings.Builder, param *Parameter, optional bool, opts PrintOptions, depth int) error {
	for _, dec := range param.Decorators {
		printDecorator(buf, dec)
		buf.WriteByte(' ')
	}
	if param.Name != nil {
		printBindingPattern(buf, param.Name)
		if optional {
			buf.WriteString("?: ")
		} else {
			buf.WriteString(": ")
		}
	}
	return printType(buf, param.Type, opts, depth)
}

func printBindingPattern(buf *strings.Builder, pattern BindingPattern) {
	switch pattern := pattern.(type) {
	case *NamePattern:
		buf.WriteString(pattern.Name)
	case *ArrayPattern:
		buf.WriteByte('[')
		for i, element := range pattern.Elements {
			if i > 0 {
				buf.WriteString(", ")
			}
			printBindingPattern(buf, element)
		}
		buf.WriteByte(']')
	case *ObjectPattern:
		buf.WriteByte('{')
		for i, name := range pattern.Names {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(name)
		}
		buf.WriteByte('}')
	}
}

func printDecorator(buf *strings.Builder, dec *Decorator) {
	buf.WriteByte('@')
	buf.WriteString(strings.Join(dec.Parts, "."))
	if dec.Args != nil {
		buf.WriteByte('(')
		buf.WriteString(strings.Join(dec.Args, ", "))
		buf.WriteByte(')')
	}
}
