package parser

import "testing"

func checkSpan(t *testing.T, label string, expr TypeExpression, start, end int) {
	t.Helper()
	pos := expr.Pos()
	if pos.Start != start || pos.End != end {
		t.Errorf("%s: span = %d..%d, want %d..%d", label, pos.Start, pos.End, start, end)
	}
}

func TestAtomSpans(t *testing.T) {
	checkSpan(t, "name", mustParse(t, "IPost"), 0, 5)
	checkSpan(t, "string literal", mustParse(t, `"foo"`), 0, 5)
	checkSpan(t, "generic", mustParse(t, "Array<number>"), 0, 13)
	checkSpan(t, "union", mustParse(t, "string | number"), 0, 15)
	checkSpan(t, "array shorthand", mustParse(t, "string[]"), 0, 8)
	checkSpan(t, "parenthesized", mustParse(t, "(string)"), 0, 8)
}

// Merged `>>` closers are narrowed in place: each nesting level gets a
// one-character closing span carved out of the shift token.
func TestNestedGenericSpans(t *testing.T) {
	expr := mustParse(t, "Array<Array<T>>")
	outer, ok := expr.(*GenericInstantiation)
	if !ok {
		t.Fatalf("got %T, want *GenericInstantiation", expr)
	}
	checkSpan(t, "outer", outer, 0, 15)
	inner, ok := outer.Arguments[0].(*GenericInstantiation)
	if !ok {
		t.Fatalf("argument: got %T, want *GenericInstantiation", outer.Arguments[0])
	}
	checkSpan(t, "inner", inner, 6, 14)
}

func TestTriplyNestedGenericSpans(t *testing.T) {
	expr := mustParse(t, "Array<Array<Array<T>>>")
	outer, ok := expr.(*GenericInstantiation)
	if !ok {
		t.Fatalf("got %T, want *GenericInstantiation", expr)
	}
	checkSpan(t, "outer", outer, 0, 22)
	middle := outer.Arguments[0].(*GenericInstantiation)
	checkSpan(t, "middle", middle, 6, 21)
	inner := middle.Arguments[0].(*GenericInstantiation)
	checkSpan(t, "inner", inner, 12, 20)
	if name, ok := inner.Arguments[0].(*TypeName); !ok || name.Name != "T" {
		t.Errorf("innermost argument = %v, want type name T", inner.Arguments[0])
	}
}

func TestCompositeSpans(t *testing.T) {
	expr := mustParse(t, "T extends string ? A : B")
	cond, ok := expr.(*ConditionalType)
	if !ok {
		t.Fatalf("got %T, want *ConditionalType", expr)
	}
	checkSpan(t, "conditional", cond, 0, 24)
	if cs := cond.Condition.Pos(); cs.Start != 0 || cs.End != 16 {
		t.Errorf("condition span = %s, want 0..16", cs)
	}

	fn, ok := mustParse(t, "(a: string) => void").(*FunctionSignature)
	if !ok {
		t.Fatal("expected *FunctionSignature")
	}
	checkSpan(t, "function", fn, 0, 19)
	if ps := fn.Parameters.Span; ps.Start != 0 || ps.End != 11 {
		t.Errorf("parameter list span = %s, want 0..11", ps)
	}
}
