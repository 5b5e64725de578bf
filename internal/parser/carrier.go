package parser

import (
	"fmt"

	"github.com/csparse/csparse/internal/ast"
)

// ParseError is the single error kind this parser ever surfaces: a syntax
// error at a token position, carrying the best-effort partial subtree built
// before the failure (Partial may be nil if nothing usable was built yet).
//
// Every production that builds a composite node follows the same protocol
// on a child failure:
//  1. inspect the child's returned ParseError.Partial
//  2. if its dynamic type fits the slot the child was filling, splice it
//     into the composite under construction
//  3. return a NEW ParseError with the same Message/Pos but with Partial
//     now set to the (possibly enriched) composite
//
// The result, after an error anywhere in the source, is that unwinding
// builds an outermost partial tree — the document with every completable
// node materialized — which is exactly what a diagnostic UI wants to
// pretty-print next to the error location.
type ParseError struct {
	Message string
	Pos     int // token index
	Partial ast.Node
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("token %d: %s", e.Pos, e.Message)
}

// NewParseError creates a fresh syntax error with no partial payload yet.
func NewParseError(pos int, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Enrich returns a new ParseError carrying the same message and position as
// e but with partial set to the caller's (more complete) composite. This is
// the "re-raise enriched" step of the splicing protocol; e itself is left
// untouched, matching the immutable-cursor style used throughout the parser.
func (e *ParseError) Enrich(partial ast.Node) *ParseError {
	return &ParseError{Message: e.Message, Pos: e.Pos, Partial: partial}
}

// expected formats the common "EXPECTED: ..." missing-token message shape.
func expected(what string, got fmt.Stringer) string {
	return fmt.Sprintf("EXPECTED: %s, got %s instead", what, got)
}
