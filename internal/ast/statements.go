package ast

// EmptyStmt is a bare `;`.
type EmptyStmt struct{ Span }

func (*EmptyStmt) stmtNode() {}

// BlockStmt is `{ stmt* }`.
type BlockStmt struct {
	Span
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// VarDeclarator is one `name [= initializer]` entry in a variable
// declaration; multiple declarators share one declared Type.
type VarDeclarator struct {
	Span
	Name        string
	Initializer Expr
}

// VarDeclStmt is `[const] Type name [= init], name2 [= init2] ;`. The
// trailing ';' is NOT consumed here — see the parser's tryParseVarDecl
// doc for why that is load-bearing.
type VarDeclStmt struct {
	Span
	IsConst     bool
	Type        TypeRef
	Declarators []VarDeclarator
}

func (*VarDeclStmt) stmtNode() {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Span
	Expression Expr
}

func (*ExprStmt) stmtNode() {}

// ReturnStmt is `return [expr] ;`.
type ReturnStmt struct {
	Span
	Value Expr
}

func (*ReturnStmt) stmtNode() {}

// ThrowStmt is `throw [expr] ;`.
type ThrowStmt struct {
	Span
	Value Expr
}

func (*ThrowStmt) stmtNode() {}

// CheckedStmt is `checked { ... }`.
type CheckedStmt struct {
	Span
	Body *BlockStmt
}

func (*CheckedStmt) stmtNode() {}

// UncheckedStmt is `unchecked { ... }`.
type UncheckedStmt struct {
	Span
	Body *BlockStmt
}

func (*UncheckedStmt) stmtNode() {}

// UnsafeStmt is `unsafe { ... }`.
type UnsafeStmt struct {
	Span
	Body *BlockStmt
}

func (*UnsafeStmt) stmtNode() {}

// SwitchLabel is one `case Value:` or `default:` marker. Value is nil for
// the default marker.
type SwitchLabel struct {
	Span
	IsDefault bool
	Value     Expr
}

// SwitchGroup is a run of consecutive labels followed by the statements
// they guard: grouping closes as soon as a statement is seen, so
// `case 1: case 2: foo(); case 3: bar();` is two groups, the first holding
// labels {1,2} and statements {foo()}.
type SwitchGroup struct {
	Span
	Labels     []SwitchLabel
	Statements []Stmt
}

// SwitchStmt is `switch (Discriminant) { group* }`.
type SwitchStmt struct {
	Span
	Discriminant Expr
	Groups       []SwitchGroup
}

func (*SwitchStmt) stmtNode() {}

// ForStmt is `for (init; cond; iter) body`. Init is either a single
// variable declaration (InitDecl set) or a comma-separated list of
// expressions used as statements (InitExprs); at most one of the two is
// populated. Per the redesign direction taken here, Iterators is always a
// list (never collapsed to a single expression), matching what the
// grammar actually allows.
type ForStmt struct {
	Span
	InitDecl  *VarDeclStmt
	InitExprs []Expr
	Condition Expr
	Iterators []Expr
	Body      Stmt
}

func (*ForStmt) stmtNode() {}

// ForEachStmt is `foreach ([Type] name in Source) body`; Type is nil for
// the `foreach (x in xs)` shorthand that skips `var`.
type ForEachStmt struct {
	Span
	Type     TypeRef
	VarName  string
	Source   Expr
	Body     Stmt
}

func (*ForEachStmt) stmtNode() {}

// WhileStmt is `while (Condition) Body`.
type WhileStmt struct {
	Span
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// DoWhileStmt is `do Body while (Condition);`.
type DoWhileStmt struct {
	Span
	Body      Stmt
	Condition Expr
}

func (*DoWhileStmt) stmtNode() {}

// IfStmt is `if (Condition) Then [else Else]`; Else binds to the nearest
// open `if`, which the recursive-descent statement parser gets for free.
type IfStmt struct {
	Span
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func (*IfStmt) stmtNode() {}

// UsingStmt is `using (ResourceDecl|ResourceExpr) Body`; exactly one of
// ResourceDecl/ResourceExpr is set.
type UsingStmt struct {
	Span
	ResourceDecl *VarDeclStmt
	ResourceExpr Expr
	Body         Stmt
}

func (*UsingStmt) stmtNode() {}

// FixedStmt is `fixed (Decl) Body`; Decl's declared type must be a pointer
// type — the parser rejects it otherwise, it is not re-checked here.
type FixedStmt struct {
	Span
	Decl *VarDeclStmt
	Body Stmt
}

func (*FixedStmt) stmtNode() {}

// LockStmt is `lock (Expr) Body`.
type LockStmt struct {
	Span
	Expr Expr
	Body Stmt
}

func (*LockStmt) stmtNode() {}

// CatchClause is one `catch [(Type [name])] { body }` clause; Type is nil
// for a catch-all final clause that omits the parentheses entirely.
type CatchClause struct {
	Span
	Type    TypeRef
	VarName string
	Body    *BlockStmt
}

// TryStmt is `try { body } catch* [finally { ... }]`; at least one of
// Catches/Finally is always populated by a successful parse.
type TryStmt struct {
	Span
	Body    *BlockStmt
	Catches []CatchClause
	Finally *BlockStmt
}

func (*TryStmt) stmtNode() {}

// GotoLabelStmt is `goto Label;`.
type GotoLabelStmt struct {
	Span
	Label string
}

func (*GotoLabelStmt) stmtNode() {}

// GotoCaseStmt is `goto case Expr;`.
type GotoCaseStmt struct {
	Span
	Value Expr
}

func (*GotoCaseStmt) stmtNode() {}

// GotoDefaultStmt is `goto default;`.
type GotoDefaultStmt struct{ Span }

func (*GotoDefaultStmt) stmtNode() {}

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Span }

func (*ContinueStmt) stmtNode() {}

// BreakStmt is `break;`.
type BreakStmt struct{ Span }

func (*BreakStmt) stmtNode() {}

// YieldReturnStmt is `yield return Expr;`.
type YieldReturnStmt struct {
	Span
	Value Expr
}

func (*YieldReturnStmt) stmtNode() {}

// YieldBreakStmt is `yield break;`.
type YieldBreakStmt struct{ Span }

func (*YieldBreakStmt) stmtNode() {}

// LabeledStmt attaches one or more stacked `label:` markers to the
// statement that follows them.
type LabeledStmt struct {
	Span
	Labels []string
	Stmt   Stmt
}

func (*LabeledStmt) stmtNode() {}
