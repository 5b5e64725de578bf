// Package parser implements the hand-written recursive-descent recognizer
// for the language: a token buffer, a type-reference parser, a member
// parser, a statement parser, an expression parser (Pratt cascade), and a
// document/namespace driver, all threaded through a single cursor and all
// participating in the error-recovery carrier protocol described in carrier.go.
package parser

import "github.com/csparse/csparse/internal/token"

// TokenBuffer wraps a lazily-driven token stream with random access by
// integer position. It is immutable after construction except for one
// deliberate exception: SplitGT, which rewrites a multi-character `>`-led
// token in place to resolve the nested-generic-vs-shift ambiguity. No
// production may peek more than a small constant past the cursor — four is
// enough for every disambiguation this grammar needs.
type TokenBuffer struct {
	next   func() token.Token // pulls the next raw token from the lexer
	tokens []token.Token
	eof    token.Token
	done   bool
}

// NewTokenBuffer creates a buffer that lazily pulls tokens from next until
// next returns an EOF token, at which point the buffer is fully
// materialized and reuses that same EOF token for every position beyond it.
func NewTokenBuffer(next func() token.Token) *TokenBuffer {
	return &TokenBuffer{next: next}
}

func (b *TokenBuffer) fill(upTo int) {
	for !b.done && len(b.tokens) <= upTo {
		tok := b.next()
		if tok.Type == token.EOF {
			b.eof = tok
			b.done = true
			break
		}
		b.tokens = append(b.tokens, tok)
	}
}

// At returns the token at index i, or the end-of-file sentinel if i is past
// the last real token. It never panics on out-of-range input.
func (b *TokenBuffer) At(i int) token.Token {
	if i < 0 {
		i = 0
	}
	b.fill(i)
	if i < len(b.tokens) {
		return b.tokens[i]
	}
	return b.eofToken()
}

func (b *TokenBuffer) eofToken() token.Token {
	b.fill(len(b.tokens)) // force the stream to run out, if it hasn't
	return b.eof
}

// Exists reports whether index i names a real (non-EOF) token.
func (b *TokenBuffer) Exists(i int) bool {
	if i < 0 {
		return false
	}
	b.fill(i)
	return i < len(b.tokens)
}

// splitSpec maps a wide token's type to the two narrower tokens it splits
// into when a production needs just the leading `>` to close a generic
// argument list.
var splitSpec = map[token.Type][2]token.Type{
	token.RSHIFT:         {token.GT, token.GT},
	token.GE:             {token.GT, token.ASSIGN},
	token.RSHIFT_ASSIGN:  {token.GT, token.GE},
}

// SplitGT rewrites the token at index i in place when it is `>>`, `>=`, or
// `>>=`, replacing it with a `>` of length 1 followed by the remainder
// (`>`, `=`, or `>=` respectively) at the same index range. It is a no-op
// if the token at i is already a plain `>` or isn't splittable. Only the
// generic-closer call sites in the type-reference parser use this; keeping
// the interface narrow avoids accidental use elsewhere.
func (b *TokenBuffer) SplitGT(i int) bool {
	b.fill(i)
	if i >= len(b.tokens) {
		return false
	}
	tok := b.tokens[i]
	parts, ok := splitSpec[tok.Type]
	if !ok {
		return false
	}
	firstLen := 1
	first := token.Token{Type: parts[0], Literal: tok.Literal[:firstLen], Pos: tok.Pos}
	restPos := tok.Pos
	restPos.Column += firstLen
	restPos.Offset += firstLen
	rest := token.Token{Type: parts[1], Literal: tok.Literal[firstLen:], Pos: restPos}

	tail := append([]token.Token{rest}, b.tokens[i+1:]...)
	b.tokens = append(b.tokens[:i], append([]token.Token{first}, tail...)...)
	return true
}
