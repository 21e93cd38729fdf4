package parser

import (
	"fmt"
	"strings"
)

// DumpString renders a type expression as a compact structural form for
// debugging and for the -ast flag of the CLI. Unlike Print it is total:
// every shape renders, including the ones the canonical printer faults
// on. Spans and identity slots are omitted, so two parses of equivalent
// text dump identically.
func DumpString(t TypeExpression) string {
	var buf strings.Builder
	dumpType(&buf, t)
	return buf.String()
}

func dumpType(buf *strings.Builder, t TypeExpression) {
	switch n := t.(type) {
	case *TypeName:
		fmt.Fprintf(buf, "(name %s)", n.Name)
	case *NamespacedName:
		fmt.Fprintf(buf, "(namespaced %s.%s)", n.Namespace, n.Member)
	case *GenericInstantiation:
		fmt.Fprintf(buf, "(generic %s", n.Name)
		for _, arg := range n.Arguments {
			buf.WriteByte(' ')
			dumpType(buf, arg)
		}
		buf.WriteByte(')')
	case *UnionType:
		dumpList(buf, "union", n.Members)
	case *IntersectionType:
		dumpList(buf, "intersection", n.Members)
	case *StringLiteralType:
		fmt.Fprintf(buf, "(string %q)", n.Value)
	case *NumberLiteralType:
		fmt.Fprintf(buf, "(number %s)", n.Value.Raw)
	case *BooleanLiteralType:
		fmt.Fprintf(buf, "(boolean %v)", n.Value)
	case *ArrayShorthand:
		buf.WriteString("(array ")
		dumpType(buf, n.Element)
		buf.WriteByte(')')
	case *FunctionSignature:
		buf.WriteString("(function")
		dumpTypeParameters(buf, n.TypeParameters)
		dumpParameterList(buf, n.Parameters)
		buf.WriteString(" -> ")
		dumpType(buf, n.ReturnType)
		buf.WriteByte(')')
	case *ConstructorSignature:
		buf.WriteString("(constructor")
		dumpTypeParameters(buf, n.TypeParameters)
		dumpParameterList(buf, n.Parameters)
		buf.WriteString(" -> ")
		dumpType(buf, n.ReturnType)
		buf.WriteByte(')')
	case *ObjectLiteralType:
		buf.WriteString("(object")
		for _, member := range n.Members {
			buf.WriteByte(' ')
			dumpObjectMember(buf, member)
		}
		buf.WriteByte(')')
	case *TupleLiteralType:
		buf.WriteString("(tuple")
		for _, element := range n.Elements {
			buf.WriteString(" (")
			if element.Name != "" {
				fmt.Fprintf(buf, "%s: ", element.Name)
			}
			if element.Spread {
				buf.WriteString("...")
			}
			dumpType(buf, element.Type)
			buf.WriteByte(')')
		}
		buf.WriteByte(')')
	case *TemplateLiteralType:
		buf.WriteString("(template")
		for _, part := range n.Parts {
			switch part := part.(type) {
			case *TemplateChunk:
				fmt.Fprintf(buf, " %q", part.Text)
			case *TemplateSlot:
				buf.WriteString(" (slot ")
				dumpType(buf, part.Type)
				buf.WriteByte(')')
			}
		}
		buf.WriteByte(')')
	case *ReadonlyType:
		buf.WriteString("(readonly ")
		dumpType(buf, n.Type)
		buf.WriteByte(')')
	case *KeyOfType:
		buf.WriteString("(keyof ")
		dumpType(buf, n.Type)
		buf.WriteByte(')')
	case *IndexedAccessType:
		buf.WriteString("(index ")
		dumpType(buf, n.Object)
		buf.WriteByte(' ')
		dumpType(buf, n.Index)
		buf.WriteByte(')')
	case *ParenthesizedType:
		buf.WriteString("(group ")
		dumpType(buf, n.Type)
		buf.WriteByte(')')
	case *ConditionalType:
		buf.WriteString("(conditional ")
		switch cond := n.Condition.(type) {
		case *ExtendsCondition:
			buf.WriteString("(extends ")
			dumpType(buf, cond.Type)
			buf.WriteByte(' ')
			dumpType(buf, cond.Extends)
			buf.WriteByte(')')
		case *IsCondition:
			buf.WriteString("(is ")
			dumpType(buf, cond.Type)
			buf.WriteByte(' ')
			dumpType(buf, cond.Is)
			buf.WriteByte(')')
		}
		buf.WriteByte(' ')
		dumpConditionResult(buf, n.True)
		buf.WriteByte(' ')
		dumpConditionResult(buf, n.False)
		buf.WriteByte(')')
	case *DecoratedType:
		buf.WriteString("(decorated ")
		dumpDecorator(buf, n.Decorator)
		buf.WriteByte(' ')
		dumpType(buf, n.Type)
		buf.WriteByte(')')
	case *PlaceholderType:
		buf.WriteString("(placeholder)")
	default:
		fmt.Fprintf(buf, "(unknown %T)", t)
	}
}

func dumpList(buf *strings.Builder, label string, members []TypeExpression) {
	buf.WriteByte('(')
	buf.WriteString(label)
	for _, member := range members {
		buf.WriteByte(' ')
		dumpType(buf, member)
	}
	buf.WriteByte(')')
}

func dumpConditionResult(buf *strings.Builder, r ConditionResult) {
	switch r := r.(type) {
	case *InferResult:
		buf.WriteString("(infer ")
		dumpType(buf, r.Type)
		buf.WriteByte(')')
	case *ReferenceResult:
		dumpType(buf, r.Type)
	}
}

func dumpTypeParameters(buf *strings.Builder, params []*TypeParameter) {
	if len(params) == 0 {
		return
	}
	buf.WriteString(" <")
	for i, param := range params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(param.Name)
		if param.Constraint != nil {
			buf.WriteString(" extends ")
			dumpType(buf, param.Constraint)
		}
	}
	buf.WriteByte('>')
}

func dumpParameterList(buf *strings.Builder, list *ParameterList) {
	buf.WriteString(" (params")
	for _, param := range list.Required {
		buf.WriteByte(' ')
		dumpParameter(buf, param, false)
	}
	for _, param := range list.Optional {
		buf.WriteByte(' ')
		dumpParameter(buf, param, true)
	}
	if list.Rest != nil {
		fmt.Fprintf(buf, " (rest %s ", list.Rest.Name)
		dumpType(buf, list.Rest.Type)
		buf.WriteByte(')')
	}
	buf.WriteByte(')')
}

func dumpParameter(buf *strings.Builder, param *Parameter, optional bool) {
	buf.WriteByte('(')
	for _, dec := range param.Decorators {
		dumpDecorator(buf, dec)
		buf.WriteByte(' ')
	}
	if param.Name != nil {
		var name strings.Builder
		printBindingPattern(&name, param.Name)
		buf.WriteString(name.String())
		if optional {
			buf.WriteByte('?')
		}
		buf.WriteString(": ")
	}
	dumpType(buf, param.Type)
	buf.WriteByte(')')
}

func dumpObjectMember(buf *strings.Builder, member *ObjectMember) {
	buf.WriteByte('(')
	for _, dec := range member.Decorators {
		dumpDecorator(buf, dec)
		buf.WriteByte(' ')
	}
	buf.WriteString(member.Name)
	if member.Optional {
		buf.WriteByte('?')
	}
	buf.WriteString(": ")
	dumpType(buf, member.Type)
	buf.WriteByte(')')
}

func dumpDecorator(buf *strings.Builder, dec *Decorator) {
	buf.WriteByte('@')
	buf.WriteString(strings.Join(dec.Parts, "."))
	if dec.Args != nil {
		buf.WriteByte('(')
		buf.WriteString(strings.Join(dec.Args, ", "))
		buf.WriteByte(')')
	}
}
