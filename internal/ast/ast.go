// Package ast defines the abstract syntax tree produced by the parser.
//
// Every node is a plain struct implementing Node; families (Member,
// TypeDecl, TypeRef, Stmt, Expr) are modeled as Go interfaces with an
// unexported marker method, the idiomatic stand-in for a closed sum type.
// Positions are token indices into the TokenBuffer the parser read from,
// not line/column pairs — diagnostics resolve a token index back to a
// source position by asking the buffer, keeping the tree itself free of
// any particular source-mapping representation.
package ast

// Span is embedded by every node to record its token range: [Start, End],
// both inclusive indices into the token stream. The invariant the parser
// must uphold is Start <= End, and for every child C of a node N,
// N.Start <= C.Start <= C.End <= N.End.
type Span struct {
	Start int
	End   int
}

func (s Span) StartTok() int { return s.Start }
func (s Span) EndTok() int   { return s.End }

// Node is the root interface implemented by every AST node.
type Node interface {
	StartTok() int
	EndTok() int
}

// Member is any declaration that can appear in a type body, including
// nested type declarations.
type Member interface {
	Node
	memberNode()
}

// TypeDecl is a type declaration: class, struct, interface, delegate, enum.
type TypeDecl interface {
	Node
	typeDeclNode()
}

// TypeRef is a type expression: a concrete name, array, pointer, nullable,
// or unnamed generic placeholder.
type TypeRef interface {
	Node
	typeRefNode()
}

// Stmt is any statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any expression.
type Expr interface {
	Node
	exprNode()
}
