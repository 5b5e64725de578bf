package ast

// --- literals and simple primaries ----------------------------------------

// NumberLiteralExpr covers both integer and floating-point literals,
// stored verbatim as the source text the lexer scanned (no numeric
// parsing or range checks happen in this module).
type NumberLiteralExpr struct {
	Span
	Raw string
}

func (*NumberLiteralExpr) exprNode() {}

type CharLiteralExpr struct {
	Span
	Raw string
}

func (*CharLiteralExpr) exprNode() {}

type StringLiteralExpr struct {
	Span
	Raw string
}

func (*StringLiteralExpr) exprNode() {}

type BoolLiteralExpr struct {
	Span
	Value bool
}

func (*BoolLiteralExpr) exprNode() {}

type NullLiteralExpr struct{ Span }

func (*NullLiteralExpr) exprNode() {}

type ThisExpr struct{ Span }

func (*ThisExpr) exprNode() {}

type BaseExpr struct{ Span }

func (*BaseExpr) exprNode() {}

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	Span
	Name string
}

func (*IdentifierExpr) exprNode() {}

// TypeExpr wraps a type reference used where a primary expression is
// expected — e.g. the receiver of a static member access before any name
// resolution has happened: `List<int>.Empty`.
type TypeExpr struct {
	Span
	Type TypeRef
}

func (*TypeExpr) exprNode() {}

// --- operators --------------------------------------------------------

// AssignmentExpr covers all twelve assignment operators; Operator is one
// of "= *= /= %= += -= <<= >>= &= ^= |= ??=". Right-associative.
type AssignmentExpr struct {
	Span
	Left     Expr
	Operator string
	Right    Expr
}

func (*AssignmentExpr) exprNode() {}

// ConditionalExpr is `Condition ? Then : Else`; right-associative in Else.
type ConditionalExpr struct {
	Span
	Condition Expr
	Then      Expr
	Else      Expr
}

func (*ConditionalExpr) exprNode() {}

// CoalesceExpr is `Left ?? Right`; right-associative.
type CoalesceExpr struct {
	Span
	Left  Expr
	Right Expr
}

func (*CoalesceExpr) exprNode() {}

// BinaryExpr is every other left-associative binary form: short-circuit
// `&&`/`||`, bitwise `& | ^`, equality `== !=`, relational `< <= > >=`,
// shift `<< >>`, additive `+ -`, multiplicative `* / %`. One struct
// serves all of these precedence levels, the way the parser's Pratt
// cascade naturally produces them; Operator disambiguates.
type BinaryExpr struct {
	Span
	Left     Expr
	Operator string
	Right    Expr
}

func (*BinaryExpr) exprNode() {}

// IsExpr is `Expr is Type`; non-associative, its right operand is a type
// reference rather than an expression.
type IsExpr struct {
	Span
	Expr Expr
	Type TypeRef
}

func (*IsExpr) exprNode() {}

// AsExpr is `Expr as Type`; non-associative.
type AsExpr struct {
	Span
	Expr Expr
	Type TypeRef
}

func (*AsExpr) exprNode() {}

// UnaryExpr is a prefix operator: `+ - ! ~ ++ -- * &`.
type UnaryExpr struct {
	Span
	Operator string
	Operand  Expr
}

func (*UnaryExpr) exprNode() {}

// PostfixExpr is postfix `++`/`--`.
type PostfixExpr struct {
	Span
	Operand  Expr
	Operator string
}

func (*PostfixExpr) exprNode() {}

// CastExpr is `(Type) Operand`.
type CastExpr struct {
	Span
	Type    TypeRef
	Operand Expr
}

func (*CastExpr) exprNode() {}

// MemberAccessExpr is `Target.Name` or, when IsPointer is set, `Target->Name`.
type MemberAccessExpr struct {
	Span
	Target    Expr
	Name      string
	GenericArgs []TypeRef // set when the member reference itself is generic: Target.Method<int>
	IsPointer bool
}

func (*MemberAccessExpr) exprNode() {}

// CallExpr is shared by function calls and indexer access — `Target(args)`
// or `Target[args]` — distinguished only by IsIndexer, per the grammar's
// own "left + argument list" shape.
type CallExpr struct {
	Span
	Target    Expr
	Arguments []Argument
	IsIndexer bool
}

func (*CallExpr) exprNode() {}

type TypeofExpr struct {
	Span
	Type TypeRef
}

func (*TypeofExpr) exprNode() {}

type SizeofExpr struct {
	Span
	Type TypeRef
}

func (*SizeofExpr) exprNode() {}

// DefaultExpr is `default(Type)`; Type is nil for the target-typed `default`
// form with no parenthesized argument.
type DefaultExpr struct {
	Span
	Type TypeRef
}

func (*DefaultExpr) exprNode() {}

// CheckedExpr is `checked(e)` or `unchecked(e)`.
type CheckedExpr struct {
	Span
	Operand   Expr
	IsChecked bool
}

func (*CheckedExpr) exprNode() {}

type ParenExpr struct {
	Span
	Inner Expr
}

func (*ParenExpr) exprNode() {}

// --- object/array creation ----------------------------------------------

// ObjectInitializerEntry is one `Name = Value` entry of an object
// initializer.
type ObjectInitializerEntry struct {
	Span
	Name  string
	Value Expr
}

// CollectionInitializerEntry is one element of a collection initializer:
// a single expression for `Add(x)`, or multiple for the nested-brace
// `{ k, v }` form that calls a multi-argument `Add`.
type CollectionInitializerEntry struct {
	Span
	Values []Expr
}

// InitializerList is the `{ ... }` that may follow an object-creation
// expression, holding either object-initializer or collection-initializer
// entries (never both) per the first-item disambiguation rule.
type InitializerList struct {
	Span
	IsObjectInit      bool
	ObjectEntries     []ObjectInitializerEntry
	CollectionEntries []CollectionInitializerEntry
}

// ObjectCreationExpr is `new Type(args) [{ initializer }]`.
type ObjectCreationExpr struct {
	Span
	Type        TypeRef
	Arguments   []Argument
	Initializer *InitializerList
}

func (*ObjectCreationExpr) exprNode() {}

// AnonymousMember is one `Name = Value` (or shorthand `Name`) entry of an
// anonymous-object creation expression.
type AnonymousMember struct {
	Span
	Name  string
	Value Expr
}

// AnonymousObjectCreationExpr is `new { a = 1, b }`.
type AnonymousObjectCreationExpr struct {
	Span
	Members []AnonymousMember
}

func (*AnonymousObjectCreationExpr) exprNode() {}

// ImplicitArrayCreationExpr is `new[] { e, e, ... }`.
type ImplicitArrayCreationExpr struct {
	Span
	Elements []Expr
}

func (*ImplicitArrayCreationExpr) exprNode() {}

// ArrayCreationExpr is `new ElementType[size1, ...][,]... { initializer }`;
// ExtraRanks records additional empty-bracket ranks following the sized
// dimensions (`new int[3][,]`), Initializer is nil when absent.
type ArrayCreationExpr struct {
	Span
	ElementType TypeRef
	Sizes       []Expr
	ExtraRanks  []int
	Initializer *InitializerList
}

func (*ArrayCreationExpr) exprNode() {}

// StackAllocExpr is `stackalloc Type[Size]`.
type StackAllocExpr struct {
	Span
	ElementType TypeRef
	Size        Expr
}

func (*StackAllocExpr) exprNode() {}

// ArrayLiteralExpr is a braced comma-separated expression list used by
// field initializers and nested inside object/array creation:
// `{ 1, 2, 3 }`.
type ArrayLiteralExpr struct {
	Span
	Elements []Expr
}

func (*ArrayLiteralExpr) exprNode() {}

// --- lambdas and anonymous methods -----------------------------------

// LambdaExpr covers the simple (`x => x+1`) and block (`x => { ... }`)
// forms; exactly one of ExprBody/BlockBody is set. Implicitly-typed
// parameters have a nil Parameter.Type.
type LambdaExpr struct {
	Span
	Parameters []Parameter
	ExprBody   Expr
	BlockBody  *BlockStmt
}

func (*LambdaExpr) exprNode() {}

// AnonymousMethodExpr is `delegate [(params)] { body }`; Parameters is nil
// when the parameter list itself was omitted (matches any delegate type).
type AnonymousMethodExpr struct {
	Span
	Parameters []Parameter
	Body       *BlockStmt
}

func (*AnonymousMethodExpr) exprNode() {}

// --- query comprehension -------------------------------------------------

// QueryClause is one element of a `from ... select ...` comprehension.
type QueryClause interface {
	Node
	queryClauseNode()
}

type FromClause struct {
	Span
	Type    TypeRef // nil unless explicitly typed: `from int x in xs`
	VarName string
	Source  Expr
}

func (*FromClause) queryClauseNode() {}

type JoinClause struct {
	Span
	Type     TypeRef
	VarName  string
	Source   Expr
	OnLeft   Expr
	OnRight  Expr
	IntoName string // "" unless this is a `join ... into` group join
}

func (*JoinClause) queryClauseNode() {}

type LetClause struct {
	Span
	VarName string
	Value   Expr
}

func (*LetClause) queryClauseNode() {}

type WhereClause struct {
	Span
	Condition Expr
}

func (*WhereClause) queryClauseNode() {}

// OrderByKey is one `Key [ascending|descending]` entry of an orderby clause.
type OrderByKey struct {
	Key        Expr
	Descending bool
}

type OrderByClause struct {
	Span
	Keys []OrderByKey
}

func (*OrderByClause) queryClauseNode() {}

type SelectClause struct {
	Span
	Value Expr
}

func (*SelectClause) queryClauseNode() {}

type GroupByClause struct {
	Span
	Element Expr
	Key     Expr
}

func (*GroupByClause) queryClauseNode() {}

// IntoClause is the query-continuation `into name` that may follow a
// select or group-by clause, re-binding the remainder of the query.
type IntoClause struct {
	Span
	VarName string
}

func (*IntoClause) queryClauseNode() {}

// QueryExpr is the whole `from ... select|group ...` comprehension, stored
// as an ordered list of clauses in source order.
type QueryExpr struct {
	Span
	Clauses []QueryClause
}

func (*QueryExpr) exprNode() {}
