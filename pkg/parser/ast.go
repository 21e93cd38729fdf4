package parser

import (
	"sync/atomic"

	"silt/pkg/source"
)

// TypeID is an opaque identity reserved on function, constructor, object
// and tuple types for a future checker. It has no behavior in this
// package; it is freshly allocated at construction and never reused.
type TypeID uint32

var typeIDCounter uint32

// FreshTypeID allocates a new, unique TypeID.
func FreshTypeID() TypeID {
	return TypeID(atomic.AddUint32(&typeIDCounter, 1))
}

// PlaceholderID identifies a placeholder node inserted by incremental
// tooling in place of an incomplete subtree.
type PlaceholderID uint32

var placeholderIDCounter uint32

// FreshPlaceholderID allocates a new, unique PlaceholderID.
func FreshPlaceholderID() PlaceholderID {
	return PlaceholderID(atomic.AddUint32(&placeholderIDCounter, 1))
}

// TypeExpression is the closed set of type-expression shapes. Consumers
// switch exhaustively over the concrete types; adding a shape means every
// switch (engine, printer, dump) grows a case.
type TypeExpression interface {
	Pos() source.Span
	typeExpressionNode()
}

// TypeName is a bare name, e.g. `IPost`.
type TypeName struct {
	Name string
	Span source.Span
}

// NamespacedName is a two-part dotted name, e.g. `Intl.IPost`.
type NamespacedName struct {
	Namespace string
	Member    string
	Span      source.Span
}

// GenericInstantiation is a name with generic arguments, e.g. `Array<number>`.
type GenericInstantiation struct {
	Name      string
	Arguments []TypeExpression
	Span      source.Span
}

// UnionType is `a | b | ...`. The member list is never empty; empty
// construction is a programming error.
type UnionType struct {
	Members []TypeExpression
}

// IntersectionType is `a & b & ...`. The member list is never empty.
type IntersectionType struct {
	Members []TypeExpression
}

// StringLiteralType is a string used as a type, e.g. `"foo"`.
type StringLiteralType struct {
	Value string
	Span  source.Span
}

// NumberLiteralType is a number used as a type, e.g. `45`.
type NumberLiteralType struct {
	Value NumberValue
	Span  source.Span
}

// BooleanLiteralType is `true` or `false` used as a type.
type BooleanLiteralType struct {
	Value bool
	Span  source.Span
}

// ArrayShorthand is `T[]`, sugar for `Array<T>`. Not the same shape as a
// tuple literal.
type ArrayShorthand struct {
	Element TypeExpression
	Span    source.Span
}

// FunctionSignature is a function type, e.g. `(x: string) => string`.
type FunctionSignature struct {
	TypeParameters []*TypeParameter // nil when not written
	Parameters     *ParameterList
	ReturnType     TypeExpression
	ID             TypeID
}

// ConstructorSignature is `new (x: string) => string`.
type ConstructorSignature struct {
	NewSpan        source.Span
	TypeParameters []*TypeParameter // nil when not written
	Parameters     *ParameterList
	ReturnType     TypeExpression
}

// ObjectLiteralType is `{ y: string }`. ID refers to the type it declares.
type ObjectLiteralType struct {
	Members []*ObjectMember
	ID      TypeID
	Span    source.Span
}

// TupleLiteralType is `[number, x: string]`.
type TupleLiteralType struct {
	Elements []*TupleElement
	ID       TypeID
	Span     source.Span
}

// TemplateLiteralType is a template literal used as a type, e.g.
// `` `prefix-${T}` ``.
type TemplateLiteralType struct {
	Parts []TemplatePart
	Span  source.Span
}

// ReadonlyType is `readonly T`.
type ReadonlyType struct {
	Type TypeExpression
	Span source.Span
}

// KeyOfType is `keyof T`.
type KeyOfType struct {
	Type TypeExpression
	Span source.Span
}

// IndexedAccessType is `T[K]`.
type IndexedAccessType struct {
	Object TypeExpression
	Index  TypeExpression
	Span   source.Span
}

// ParenthesizedType exists for operator precedence only, e.g. the inner
// group of `(number | null)[]`.
type ParenthesizedType struct {
	Type TypeExpression
	Span source.Span
}

// ConditionalType is `T extends U ? X : Y` or `T is U ? X : Y`.
type ConditionalType struct {
	Condition TypeCondition
	True      ConditionResult
	False     ConditionResult
	Span      source.Span
}

// DecoratedType is a type prefixed with a decorator.
type DecoratedType struct {
	Decorator *Decorator
	Type      TypeExpression
	Span      source.Span
}

// PlaceholderType marks an incomplete subtree during incremental editing.
// It is only valid under explicit tooling settings; the printer rejects it
// otherwise.
type PlaceholderType struct {
	ID   PlaceholderID
	Span source.Span
}

func (t *TypeName) typeExpressionNode()             {}
func (t *NamespacedName) typeExpressionNode()       {}
func (t *GenericInstantiation) typeExpressionNode() {}
func (t *UnionType) typeExpressionNode()            {}
func (t *IntersectionType) typeExpressionNode()     {}
func (t *StringLiteralType) typeExpressionNode()    {}
func (t *NumberLiteralType) typeExpressionNode()    {}
func (t *BooleanLiteralType) typeExpressionNode()   {}
func (t *ArrayShorthand) typeExpressionNode()       {}
func (t *FunctionSignature) typeExpressionNode()    {}
func (t *ConstructorSignature) typeExpressionNode() {}
func (t *ObjectLiteralType) typeExpressionNode()    {}
func (t *TupleLiteralType) typeExpressionNode()     {}
func (t *TemplateLiteralType) typeExpressionNode()  {}
func (t *ReadonlyType) typeExpressionNode()         {}
func (t *KeyOfType) typeExpressionNode()            {}
func (t *IndexedAccessType) typeExpressionNode()    {}
func (t *ParenthesizedType) typeExpressionNode()    {}
func (t *ConditionalType) typeExpressionNode()      {}
func (t *DecoratedType) typeExpressionNode()        {}
func (t *PlaceholderType) typeExpressionNode()      {}

func (t *TypeName) Pos() source.Span             { return t.Span }
func (t *NamespacedName) Pos() source.Span       { return t.Span }
func (t *GenericInstantiation) Pos() source.Span { return t.Span }
func (t *StringLiteralType) Pos() source.Span    { return t.Span }
func (t *NumberLiteralType) Pos() source.Span    { return t.Span }
func (t *BooleanLiteralType) Pos() source.Span   { return t.Span }
func (t *ArrayShorthand) Pos() source.Span       { return t.Span }
func (t *ObjectLiteralType) Pos() source.Span    { return t.Span }
func (t *TupleLiteralType) Pos() source.Span     { return t.Span }
func (t *TemplateLiteralType) Pos() source.Span  { return t.Span }
func (t *ReadonlyType) Pos() source.Span         { return t.Span }
func (t *KeyOfType) Pos() source.Span            { return t.Span }
func (t *IndexedAccessType) Pos() source.Span    { return t.Span }
func (t *ParenthesizedType) Pos() source.Span    { return t.Span }
func (t *ConditionalType) Pos() source.Span      { return t.Span }
func (t *DecoratedType) Pos() source.Span        { return t.Span }
func (t *PlaceholderType) Pos() source.Span      { return t.Span }

// Pos of a union spans its first through last member.
func (t *UnionType) Pos() source.Span {
	return t.Members[0].Pos().Union(t.Members[len(t.Members)-1].Pos())
}

// Pos of an intersection spans its first through last member.
func (t *IntersectionType) Pos() source.Span {
	return t.Members[0].Pos().Union(t.Members[len(t.Members)-1].Pos())
}

func (t *FunctionSignature) Pos() source.Span {
	return t.Parameters.Span.Union(t.ReturnType.Pos())
}

func (t *ConstructorSignature) Pos() source.Span {
	return t.NewSpan.Union(t.ReturnType.Pos())
}

// TemplatePart is one piece of a template literal type: a static chunk or
// a `${...}` slot.
type TemplatePart interface {
	templatePartNode()
}

// TemplateChunk is static template text.
type TemplateChunk struct {
	Text string
}

// TemplateSlot is a `${T}` interpolation.
type TemplateSlot struct {
	Type TypeExpression
}

func (p *TemplateChunk) templatePartNode() {}
func (p *TemplateSlot) templatePartNode()  {}

// TupleElement is one member of a tuple literal type: an optional name, a
// spread flag and the element type.
type TupleElement struct {
	Name   string // empty when unnamed
	Spread bool
	Type   TypeExpression
}

// TypeCondition is the left-hand side of a conditional type.
type TypeCondition interface {
	Pos() source.Span
	typeConditionNode()
}

// ExtendsCondition is `T extends U`.
type ExtendsCondition struct {
	Type    TypeExpression
	Extends TypeExpression
	Span    source.Span
}

// IsCondition is `T is U`.
type IsCondition struct {
	Type TypeExpression
	Is   TypeExpression
	Span source.Span
}

func (c *ExtendsCondition) typeConditionNode() {}
func (c *IsCondition) typeConditionNode()      {}

func (c *ExtendsCondition) Pos() source.Span { return c.Span }
func (c *IsCondition) Pos() source.Span      { return c.Span }

// ConditionResult is one branch outcome of a conditional type: either an
// `infer <binding>` capture or a plain nested type.
type ConditionResult interface {
	Pos() source.Span
	conditionResultNode()
}

// InferResult is `infer T`.
type InferResult struct {
	Type TypeExpression
	Span source.Span
}

// ReferenceResult is a plain nested type expression.
type ReferenceResult struct {
	Type TypeExpression
}

func (r *InferResult) conditionResultNode()     {}
func (r *ReferenceResult) conditionResultNode() {}

func (r *InferResult) Pos() source.Span     { return r.Span }
func (r *ReferenceResult) Pos() source.Span { return r.Type.Pos() }

// ParameterList holds the parameters of a function or constructor type.
// Required and Optional are separate ordered lists, so relative source
// order across the required/optional boundary is not recoverable from the
// parsed structure.
type ParameterList struct {
	Required []*Parameter
	Optional []*Parameter
	Rest     *RestParameter
	Span     source.Span
}

// Parameter is one non-rest entry of a parameter list.
type Parameter struct {
	Decorators []*Decorator
	Name       BindingPattern // nil for anonymous (type-only) parameters
	Type       TypeExpression
}

// Pos spans the name (when present) through the type.
func (p *Parameter) Pos() source.Span {
	if p.Name != nil {
		return p.Name.Pos().Union(p.Type.Pos())
	}
	return p.Type.Pos()
}

// RestParameter is the trailing `...name: T` entry.
type RestParameter struct {
	Decorators []*Decorator
	SpreadSpan source.Span
	Name       string
	Type       TypeExpression
}

// TypeParameter is one entry of an explicit generic-parameter list,
// e.g. the `T extends string` in `<T extends string>(x: T) => T`.
type TypeParameter struct {
	Name       string
	Constraint TypeExpression // nil when unconstrained
	Span       source.Span
}

// Decorator is `@name` or `@ns.name(arg, ...)` prefixed to a type or
// parameter.
type Decorator struct {
	Parts []string
	Args  []string // raw argument lexemes, nil when no call
	Span  source.Span
}

// ObjectMember is one entry of an object literal type.
type ObjectMember struct {
	Decorators []*Decorator
	Name       string
	Optional   bool
	Type       TypeExpression
	Span       source.Span
}

// BindingPattern is a parameter name position: a plain name or a
// destructuring pattern.
type BindingPattern interface {
	Pos() source.Span
	bindingPatternNode()
}

// NamePattern is a plain identifier name.
type NamePattern struct {
	Name string
	Span source.Span
}

// ArrayPattern is `[a, b]` in name position.
type ArrayPattern struct {
	Elements []BindingPattern
	Span     source.Span
}

// ObjectPattern is `{a, b}` in name position.
type ObjectPattern struct {
	Names []string
	Span  source.Span
}

func (p *NamePattern) bindingPatternNode()   {}
func (p *ArrayPattern) bindingPatternNode()  {}
func (p *ObjectPattern) bindingPatternNode() {}

func (p *NamePattern) Pos() source.Span   { return p.Span }
func (p *ArrayPattern) Pos() source.Span  { return p.Span }
func (p *ObjectPattern) Pos() source.Span { return p.Span }
