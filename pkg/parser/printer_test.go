package parser

import (
	"testing"

	silterr "silt/pkg/errors"
)

func mustPrint(t *testing.T, expr TypeExpression) string {
	t.Helper()
	out, err := Print(expr, PrintOptions{})
	if err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	return out
}

func TestPrintCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"string|number", "string | number"},
		{"Array< number >", "Array<number>"},
		{"Map<string,number>", "Map<string, number>"},
		{"(a:string)=>void", "(a: string) => void"},
		{"T=>T", "(T) => T"},
		{"(a:T,b?:U,...rest:V[])=>W", "(a: T, b?: U, ...rest: V[]) => W"},
		{"<T extends string>(x:T)=>T", "<T extends string>(x: T) => T"},
		{"new(x:string)=>X", "new (x: string) => X"},
		{"{a:string,b?:number}", "{ a: string, b?: number }"},
		{"{a:string;b:number}", "{ a: string, b: number }"},
		{"{}", "{}"},
		{"[number,x:string]", "[number, x: string]"},
		{"[...T]", "[...T]"},
		{"`a-${T}`", "`a-${T}`"},
		{"readonly string[]", "readonly string[]"},
		{"T extends string?A:B", "T extends string ? A : B"},
		{"T is string?A:B", "T is string ? A : B"},
		{"T extends U?infer V:W", "T extends U ? infer V : W"},
		{"(number|null)[]", "(number | null)[]"},
		{"A&B&C", "A & B & C"},
		{`45|"hi"|false`, `45 | "hi" | false`},
		{`@server.Endpoint("users") T`, `@server.Endpoint("users") T`},
		{`{"a-b":T}`, `{ "a-b": T }`},
	}
	for _, tt := range tests {
		got := mustPrint(t, mustParse(t, tt.input))
		if got != tt.want {
			t.Errorf("Print(parse(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Printing is stable: parsing canonical output and printing again yields
// the same text, and the reparse is structurally identical.
func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"string | number | null",
		"Array<Array<Array<T>>>",
		"Map<string, Array<number>>",
		"(a: T, b?: U, ...rest: V[]) => W",
		"([a, b]: T) => U",
		"T => T",
		"<T extends string>(x: T) => T",
		"new (x: string) => X",
		"{ a: string, b?: number }",
		"[number, x: string, rest: ...T]",
		"`test-${X}-${Y}`",
		"readonly string[]",
		"T extends Array<U> ? infer V : never",
		"(number | null)[]",
		"@Deprecated T | U",
		"Serializable & Comparable",
	}
	for _, input := range inputs {
		first := mustParse(t, input)
		printed := mustPrint(t, first)
		second, err := ParseString(printed)
		if err != nil {
			t.Errorf("reparse of %q (from %q) failed: %v", printed, input, err)
			continue
		}
		if got, want := DumpString(second), DumpString(first); got != want {
			t.Errorf("round trip of %q changed structure:\n  got  %s\n  want %s", input, got, want)
			continue
		}
		if again := mustPrint(t, second); again != printed {
			t.Errorf("printing %q is not stable: %q then %q", input, printed, again)
		}
	}
}

func TestPrintFaults(t *testing.T) {
	tests := []struct {
		input     string
		construct string
	}{
		{"Intl.Format", "namespaced name"},
		{"keyof T", "keyof"},
		{"T[K]", "indexed access"},
	}
	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		_, err := Print(expr, PrintOptions{})
		uce, ok := err.(*silterr.UnsupportedConstructError)
		if !ok {
			t.Errorf("Print(parse(%q)): got %T (%v), want *UnsupportedConstructError", tt.input, err, err)
			continue
		}
		if uce.Construct != tt.construct {
			t.Errorf("Print(parse(%q)): construct = %q, want %q", tt.input, uce.Construct, tt.construct)
		}
	}
}

// Faults surface even when the unsupported shape is buried in a larger
// tree; nothing is silently dropped.
func TestPrintFaultsNested(t *testing.T) {
	expr := mustParse(t, "Array<keyof T>")
	if _, err := Print(expr, PrintOptions{}); err == nil {
		t.Error("expected a fault for a nested keyof")
	}
}

func TestPrintPlaceholders(t *testing.T) {
	ph := &PlaceholderType{ID: FreshPlaceholderID()}

	if _, err := Print(ph, PrintOptions{}); err == nil {
		t.Error("printing a placeholder without gating should fault")
	}

	out, err := Print(ph, PrintOptions{ExpectPlaceholders: true})
	if err != nil {
		t.Fatalf("gated placeholder print failed: %v", err)
	}
	if out != "" {
		t.Errorf("gated placeholder printed %q, want empty", out)
	}

	union := &UnionType{Members: []TypeExpression{
		&TypeName{Name: "A"},
		ph,
	}}
	if _, err := Print(union, PrintOptions{}); err == nil {
		t.Error("a placeholder inside a union should fault without gating")
	}
}

func TestDumpIsTotal(t *testing.T) {
	// Shapes the canonical printer rejects still dump.
	for input, want := range map[string]string{
		"Intl.Format": "(namespaced Intl.Format)",
		"keyof T":     "(keyof (name T))",
		"T[K]":        "(index (name T) (name K))",
	} {
		if got := DumpString(mustParse(t, input)); got != want {
			t.Errorf("DumpString(parse(%q)) = %q, want %q", input, got, want)
		}
	}
	if got := DumpString(&PlaceholderType{}); got != "(placeholder)" {
		t.Errorf("placeholder dump = %q", got)
	}
}
