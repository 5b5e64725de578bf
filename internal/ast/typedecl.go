package ast

// ClassDecl, StructDecl and InterfaceDecl share the same shape; they are
// kept as distinct Go types (rather than one struct with a Kind field) so
// that a type switch on TypeDecl is exhaustive and self-documenting at
// every call site, matching the "do not unify" guidance that applies to
// the operator-overload family.
type ClassDecl struct {
	Span
	Attributes   []AttributeGroup
	Modifiers    Modifiers
	Name         string
	GenericParams []GenericParam
	Constraints  []ConstraintClause
	BaseTypes    []TypeRef
	Members      []Member
}

func (*ClassDecl) typeDeclNode() {}
func (*ClassDecl) memberNode()   {}

type StructDecl struct {
	Span
	Attributes    []AttributeGroup
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Constraints   []ConstraintClause
	BaseTypes     []TypeRef
	Members       []Member
}

func (*StructDecl) typeDeclNode() {}
func (*StructDecl) memberNode()   {}

type InterfaceDecl struct {
	Span
	Attributes    []AttributeGroup
	Modifiers     Modifiers
	Name          string
	GenericParams []GenericParam
	Constraints   []ConstraintClause
	BaseTypes     []TypeRef
	Members       []Member
}

func (*InterfaceDecl) typeDeclNode() {}
func (*InterfaceDecl) memberNode()   {}

// DelegateDecl is `delegate ReturnType Name<T>(params) where T : ...;`.
type DelegateDecl struct {
	Span
	Attributes    []AttributeGroup
	Modifiers     Modifiers
	ReturnType    TypeRef
	Name          string
	GenericParams []GenericParam
	Constraints   []ConstraintClause
	Parameters    []Parameter
}

func (*DelegateDecl) typeDeclNode() {}
func (*DelegateDecl) memberNode()   {}

// EnumValue is one `Name [= Expr]` entry of an enum body.
type EnumValue struct {
	Span
	Attributes []AttributeGroup
	Name       string
	Value      Expr // nil if not explicitly assigned
}

// EnumDecl is `enum Name : UnderlyingType { Values }`.
type EnumDecl struct {
	Span
	Attributes     []AttributeGroup
	Modifiers      Modifiers
	Name           string
	UnderlyingType TypeRef // nil if omitted (defaults to int)
	Values         []EnumValue
}

func (*EnumDecl) typeDeclNode() {}
func (*EnumDecl) memberNode()   {}

// NestedTypeMember adapts any TypeDecl so it can also appear directly in a
// Member list; the type declarations above already implement memberNode()
// themselves, so the parser places them straight into a Members slice and
// never constructs this wrapper.
type NestedTypeMember struct {
	Decl TypeDecl
}

func (n *NestedTypeMember) StartTok() int  { return n.Decl.StartTok() }
func (n *NestedTypeMember) EndTok() int    { return n.Decl.EndTok() }
func (*NestedTypeMember) memberNode()      {}
