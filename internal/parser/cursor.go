package parser

import "github.com/csparse/csparse/internal/token"

// Cursor is an immutable navigation handle into a TokenBuffer: every
// operation that "moves" returns a new Cursor rather than mutating one in
// place, so productions can freely save a cursor, try a speculative parse,
// and fall back to the saved value without any separate undo bookkeeping.
// The buffer itself is shared and never copied.
type Cursor struct {
	buf *TokenBuffer
	idx int
}

// NewCursor creates a Cursor positioned at the first token of buf.
func NewCursor(buf *TokenBuffer) *Cursor {
	return &Cursor{buf: buf, idx: 0}
}

// Pos returns the cursor's token index — this is exactly the integer that
// becomes an AST node's Span.Start or Span.End.
func (c *Cursor) Pos() int { return c.idx }

// Current returns the token at the cursor's position.
func (c *Cursor) Current() token.Token { return c.buf.At(c.idx) }

// Peek returns the token n positions ahead; Peek(0) is Current().
func (c *Cursor) Peek(n int) token.Token { return c.buf.At(c.idx + n) }

// Advance returns a new cursor one token further along.
func (c *Cursor) Advance() *Cursor { return c.AdvanceN(1) }

// AdvanceN returns a new cursor n tokens further along (n may be 0).
func (c *Cursor) AdvanceN(n int) *Cursor {
	if n <= 0 {
		return c
	}
	return &Cursor{buf: c.buf, idx: c.idx + n}
}

// Is reports whether the current token has type t.
func (c *Cursor) Is(t token.Type) bool { return c.Current().Type == t }

// IsAny reports whether the current token matches any of types.
func (c *Cursor) IsAny(types ...token.Type) bool {
	cur := c.Current().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// PeekIs reports whether the token n ahead has type t.
func (c *Cursor) PeekIs(n int, t token.Type) bool { return c.Peek(n).Type == t }

// Expect returns (advanced cursor, true) if the current token has type t,
// otherwise (c, false). It never itself records an error — the caller
// decides how to report a missing token.
func (c *Cursor) Expect(t token.Type) (*Cursor, bool) {
	if c.Is(t) {
		return c.Advance(), true
	}
	return c, false
}

// Mark and ResetTo implement lightweight backtracking: Mark captures the
// current index (just an int), ResetTo restores it.
func (c *Cursor) Mark() int           { return c.idx }
func (c *Cursor) ResetTo(mark int) *Cursor { return &Cursor{buf: c.buf, idx: mark} }

// SplitGTHere rewrites the wide `>`-led token at the cursor's current
// position in place (see TokenBuffer.SplitGT) and returns true if a split
// happened. The cursor itself doesn't need to move: the buffer now holds
// a plain `>` at this same index.
func (c *Cursor) SplitGTHere() bool { return c.buf.SplitGT(c.idx) }
