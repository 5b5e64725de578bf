package ast

// NamePart is one dotted segment of a concrete type name: an identifier
// optionally followed by a generic argument list, e.g. the `List<int>` in
// `System.Collections.Generic.List<int>`.
type NamePart struct {
	Span
	Name          string
	GenericArgs   []TypeRef // nil if this part has no <...>
	EmptyArgCount int       // for `typeof(List<,>)`-style unnamed placeholders: count of commas+1, GenericArgs is nil in that case
}

// QualifiedTypeRef is a concrete dotted name, optionally rooted at
// `global::`, with per-part generic arguments: `global::NS.Outer<T>.Inner`.
type QualifiedTypeRef struct {
	Span
	IsGlobal bool
	Parts    []NamePart
}

func (*QualifiedTypeRef) typeRefNode() {}

// ArrayTypeRef wraps an element type with one or more array rank
// specifiers; Ranks[i] is the comma-count+1 of dimension i, so `[,]` is
// rank 2. The parser builds one ArrayTypeRef per bracket pair in source
// order, so `[][,]` is two wrappers (rank 1 inner, rank 2 outer)
// — jagged vs multidimensional are both expressible by nesting.
type ArrayTypeRef struct {
	Span
	Element TypeRef
	Ranks   []int
}

func (*ArrayTypeRef) typeRefNode() {}

// PointerTypeRef is `Inner*`.
type PointerTypeRef struct {
	Span
	Inner TypeRef
}

func (*PointerTypeRef) typeRefNode() {}

// NullableTypeRef is `Inner?`.
type NullableTypeRef struct {
	Span
	Inner TypeRef
}

func (*NullableTypeRef) typeRefNode() {}

// GenericPlaceholderTypeRef models the unnamed-argument form used inside
// `typeof(Dictionary<,>)`: a bare comma run with no type given for any slot.
type GenericPlaceholderTypeRef struct {
	Span
	ArgCount int // number of placeholder slots (commas + 1)
}

func (*GenericPlaceholderTypeRef) typeRefNode() {}

// Variance is the declared-site variance annotation on a generic parameter.
type Variance int

const (
	Invariant Variance = iota
	Covariant              // out T
	Contravariant          // in T
)

// GenericParam is one entry of a `<T, out U>` parameter list.
type GenericParam struct {
	Span
	Name       string
	Variance   Variance
	Attributes []AttributeGroup
}

// ConstraintKind distinguishes the clauses of a `where T : ...` list.
type ConstraintKind int

const (
	ConstraintType       ConstraintKind = iota // where T : BaseType
	ConstraintClass                            // where T : class
	ConstraintStruct                           // where T : struct
	ConstraintNew                               // where T : new()
)

// Constraint is a single entry in a generic parameter's constraint list.
type Constraint struct {
	Kind ConstraintKind
	Type TypeRef // set only when Kind == ConstraintType
}

// ConstraintClause is one `where T : C1, C2` clause.
type ConstraintClause struct {
	Span
	ParamName   string
	Constraints []Constraint
}
