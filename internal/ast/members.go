package ast

// FieldDeclarator is one `name [= initializer]` entry of a (possibly
// multi-declarator) field: `int f = 1, g;` produces two declarators
// sharing one FieldMember.
type FieldDeclarator struct {
	Span
	Name        string
	Initializer Expr // nil if absent
}

// FieldMember is `[Modifiers] Type name [= init], name2 [= init2] ;`.
type FieldMember struct {
	Span
	Attributes   []AttributeGroup
	Modifiers    Modifiers
	Type         TypeRef
	Declarators  []FieldDeclarator
}

func (*FieldMember) memberNode() {}

// EventMember is either field-like (`event Handler Name;`) or
// property-like (`event Handler Name { add {...} remove {...} }`).
// AddBody/RemoveBody are nil for the field-like form.
type EventMember struct {
	Span
	Attributes []AttributeGroup
	Modifiers  Modifiers
	Type       TypeRef
	Name       string
	AddBody    *BlockStmt
	RemoveBody *BlockStmt
}

func (*EventMember) memberNode() {}

// MethodMember is a method declaration, including generic methods and
// explicit interface implementations (ImplementsFrom set to the qualifying
// interface type reference in that case).
type MethodMember struct {
	Span
	Attributes    []AttributeGroup
	Modifiers     Modifiers
	ReturnType    TypeRef
	ImplementsFrom TypeRef // nil unless this is an explicit interface implementation
	Name          string
	GenericParams []GenericParam
	Constraints   []ConstraintClause
	Parameters    []Parameter
	Body          *BlockStmt // nil for abstract/extern/interface methods (semicolon body)
}

func (*MethodMember) memberNode() {}

// AccessorKind distinguishes a property/indexer's get and set accessors.
type AccessorKind int

const (
	AccessorGet AccessorKind = iota
	AccessorSet
)

// Accessor is one `get` or `set` block of a property or indexer. Body is
// nil for an auto-property accessor (`get;`); Modifiers carries an
// accessor-level access modifier override (`private set;`).
type Accessor struct {
	Span
	Kind      AccessorKind
	Modifiers Modifiers
	Body      *BlockStmt
}

// PropertyMember is a non-indexed property.
type PropertyMember struct {
	Span
	Attributes     []AttributeGroup
	Modifiers      Modifiers
	Type           TypeRef
	ImplementsFrom TypeRef // nil unless explicit interface implementation
	Name           string
	Accessors      []Accessor
	Initializer    Expr // property initializer `{ get; } = expr;`, nil if absent
}

func (*PropertyMember) memberNode() {}

// IndexedPropertyMember is `this[Parameters] { get; set; }`, with explicit
// interface implementation supported via ImplementsFrom.
type IndexedPropertyMember struct {
	Span
	Attributes     []AttributeGroup
	Modifiers      Modifiers
	Type           TypeRef
	ImplementsFrom TypeRef
	Parameters     []Parameter
	Accessors      []Accessor
}

func (*IndexedPropertyMember) memberNode() {}

// ConstructorInit is the `: this(...)` or `: base(...)` chain call that may
// precede a constructor's body.
type ConstructorInit struct {
	Span
	IsBase    bool // false means `this(...)`
	Arguments []Argument
}

// ConstructorMember is `[Modifiers] Name(params) [: this(...)|base(...)] { body }`.
type ConstructorMember struct {
	Span
	Attributes []AttributeGroup
	Modifiers  Modifiers
	Name       string
	Parameters []Parameter
	Init       *ConstructorInit // nil if absent
	Body       *BlockStmt
}

func (*ConstructorMember) memberNode() {}

// DestructorMember is `~Name() { body }`.
type DestructorMember struct {
	Span
	Attributes []AttributeGroup
	Name       string
	Body       *BlockStmt
}

func (*DestructorMember) memberNode() {}

// OverloadableOperator is the source spelling of a token following the
// `operator` keyword (`+`, `==`, `true`, ...). Kept as a string rather than
// a token.Type so the ast package has no dependency on the lexer/parser's
// token vocabulary.
type OverloadableOperator string

// UnaryOperatorMember is `static Ret operator OP(Param p) { body }` for a
// single-parameter overloadable operator (arity distinguishes it from
// BinaryOperatorMember rather than a shared struct with an optional second
// parameter).
type UnaryOperatorMember struct {
	Span
	Attributes []AttributeGroup
	Modifiers  Modifiers
	ReturnType TypeRef
	Operator   OverloadableOperator
	Parameter  Parameter
	Body       *BlockStmt
}

func (*UnaryOperatorMember) memberNode() {}

// BinaryOperatorMember is the two-parameter counterpart.
type BinaryOperatorMember struct {
	Span
	Attributes []AttributeGroup
	Modifiers  Modifiers
	ReturnType TypeRef
	Operator   OverloadableOperator
	Left       Parameter
	Right      Parameter
	Body       *BlockStmt
}

func (*BinaryOperatorMember) memberNode() {}

// ConversionMember is `static implicit|explicit operator Target(Param p) { body }`.
type ConversionMember struct {
	Span
	Attributes []AttributeGroup
	Modifiers  Modifiers
	IsImplicit bool
	TargetType TypeRef
	Parameter  Parameter
	Body       *BlockStmt
}

func (*ConversionMember) memberNode() {}
