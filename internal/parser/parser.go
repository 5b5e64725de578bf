package parser

import (
	"github.com/csparse/csparse/internal/lexer"
	"github.com/csparse/csparse/internal/token"
)

// TokenSource is anything that can hand out tokens one at a time, ending
// with an unbounded run of EOF tokens. *lexer.Lexer satisfies this; tests
// also build fake sources directly from a []token.Token slice.
type TokenSource interface {
	NextToken() token.Token
}

// Parser holds the shared state threaded through every grammar production:
// the token buffer and the running list of syntax errors collected while
// walking partial results back up to the document level. Productions
// themselves are written as plain methods taking and returning a *Cursor so
// that speculative parses never have to touch p.errors.
type Parser struct {
	buf    *TokenBuffer
	errors []*ParseError
}

// New creates a Parser reading tokens from src.
func New(src TokenSource) *Parser {
	return &Parser{buf: NewTokenBuffer(src.NextToken)}
}

// NewFromSource is a convenience constructor that lexes src with default
// options (comments and directives filtered, conditional compilation
// evaluated) and parses the result.
func NewFromSource(src string, opts ...lexer.Option) *Parser {
	return New(lexer.New(src, opts...))
}

// Cursor returns a fresh cursor positioned at the start of the token stream.
func (p *Parser) Cursor() *Cursor { return NewCursor(p.buf) }

// Errors returns every syntax error recorded while recovering from a failed
// production, in the order they were encountered.
func (p *Parser) Errors() []*ParseError { return p.errors }

// recordError appends err to the parser's error list and returns it
// unchanged, so call sites can write `return p.recordError(err)` inline.
func (p *Parser) recordError(err *ParseError) *ParseError {
	p.errors = append(p.errors, err)
	return err
}
