package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// parseQuery parses a full `from ... select|group ...` comprehension,
// including any `join`/`let`/`where`/`orderby` clauses in between and a
// trailing `into` continuation.
func (p *Parser) parseQuery(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	var clauses []ast.QueryClause

	from, next, err := p.parseFromClause(cur)
	if err != nil {
		return nil, next, err
	}
	clauses = append(clauses, from)

	for {
		var clause ast.QueryClause
		terminal := false
		switch next.Current().Type {
		case token.FROM:
			clause, next, err = p.parseFromClause(next)
		case token.JOIN:
			clause, next, err = p.parseJoinClause(next)
		case token.LET:
			clause, next, err = p.parseLetClause(next)
		case token.WHERE:
			clause, next, err = p.parseWhereClause(next)
		case token.ORDERBY:
			clause, next, err = p.parseOrderByClause(next)
		case token.SELECT:
			clause, next, err = p.parseSelectClause(next)
			terminal = true
		case token.GROUP:
			clause, next, err = p.parseGroupByClause(next)
			terminal = true
		default:
			return nil, next, NewParseError(next.Pos(), "EXPECTED: a query clause (from/join/let/where/orderby/select/group)")
		}
		if err != nil {
			return nil, next, err
		}
		clauses = append(clauses, clause)
		if terminal {
			if next.Is(token.INTO) {
				into, after, ierr := p.parseIntoClause(next)
				if ierr != nil {
					return nil, after, ierr
				}
				clauses = append(clauses, into)
				next = after
				continue
			}
			break
		}
	}

	return &ast.QueryExpr{Span: ast.Span{Start: start, End: next.Pos() - 1}, Clauses: clauses}, next, nil
}

func (p *Parser) parseFromClause(cur *Cursor) (*ast.FromClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance() // past 'from'

	var typ ast.TypeRef
	if !(next.Is(token.IDENT) && next.PeekIs(1, token.IN)) {
		t, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, lenient: true})
		if terr == nil && afterType.Is(token.IDENT) {
			typ, next = t, afterType
		}
	}
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("a range variable name", next.Current().Type))
	}
	varName := next.Current().Literal
	next = next.Advance()
	inCur, ok := next.Expect(token.IN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'in'", next.Current().Type))
	}
	source, after, serr := p.parseAssignment(inCur)
	if serr != nil {
		return nil, after, serr
	}
	return &ast.FromClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, Type: typ, VarName: varName, Source: source}, after, nil
}

func (p *Parser) parseJoinClause(cur *Cursor) (*ast.JoinClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance() // past 'join'

	var typ ast.TypeRef
	if !(next.Is(token.IDENT) && next.PeekIs(1, token.IN)) {
		t, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, lenient: true})
		if terr == nil && afterType.Is(token.IDENT) {
			typ, next = t, afterType
		}
	}
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("a range variable name", next.Current().Type))
	}
	varName := next.Current().Literal
	next = next.Advance()
	inCur, ok := next.Expect(token.IN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'in'", next.Current().Type))
	}
	source, afterSrc, serr := p.parseAssignment(inCur)
	if serr != nil {
		return nil, afterSrc, serr
	}
	onCur, ok := afterSrc.Expect(token.ON)
	if !ok {
		return nil, afterSrc, NewParseError(afterSrc.Pos(), expected("'on'", afterSrc.Current().Type))
	}
	left, afterLeft, lerr := p.parseAssignment(onCur)
	if lerr != nil {
		return nil, afterLeft, lerr
	}
	eqCur, ok := afterLeft.Expect(token.EQUALS)
	if !ok {
		return nil, afterLeft, NewParseError(afterLeft.Pos(), expected("'equals'", afterLeft.Current().Type))
	}
	right, afterRight, rerr := p.parseAssignment(eqCur)
	if rerr != nil {
		return nil, afterRight, rerr
	}
	var intoName string
	next = afterRight
	if next.Is(token.INTO) {
		afterInto := next.Advance()
		if !afterInto.Is(token.IDENT) {
			return nil, afterInto, NewParseError(afterInto.Pos(), expected("an identifier after into", afterInto.Current().Type))
		}
		intoName = afterInto.Current().Literal
		next = afterInto.Advance()
	}
	return &ast.JoinClause{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Type: typ, VarName: varName,
		Source: source, OnLeft: left, OnRight: right, IntoName: intoName,
	}, next, nil
}

func (p *Parser) parseLetClause(cur *Cursor) (*ast.LetClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("an identifier", next.Current().Type))
	}
	name := next.Current().Literal
	next = next.Advance()
	assignCur, ok := next.Expect(token.ASSIGN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'='", next.Current().Type))
	}
	val, after, verr := p.parseAssignment(assignCur)
	if verr != nil {
		return nil, after, verr
	}
	return &ast.LetClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, VarName: name, Value: val}, after, nil
}

func (p *Parser) parseWhereClause(cur *Cursor) (*ast.WhereClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	cond, after, err := p.parseAssignment(next)
	if err != nil {
		return nil, after, err
	}
	return &ast.WhereClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, Condition: cond}, after, nil
}

func (p *Parser) parseOrderByClause(cur *Cursor) (*ast.OrderByClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	var keys []ast.OrderByKey
	for {
		key, after, err := p.parseAssignment(next)
		if err != nil {
			return nil, after, err
		}
		desc := false
		next = after
		if next.Is(token.ASCENDING) {
			next = next.Advance()
		} else if next.Is(token.DESCENDING) {
			desc = true
			next = next.Advance()
		}
		keys = append(keys, ast.OrderByKey{Key: key, Descending: desc})
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	return &ast.OrderByClause{Span: ast.Span{Start: start, End: next.Pos() - 1}, Keys: keys}, next, nil
}

func (p *Parser) parseSelectClause(cur *Cursor) (*ast.SelectClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	val, after, err := p.parseAssignment(next)
	if err != nil {
		return nil, after, err
	}
	return &ast.SelectClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, Value: val}, after, nil
}

func (p *Parser) parseGroupByClause(cur *Cursor) (*ast.GroupByClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	elem, afterElem, eerr := p.parseAssignment(next)
	if eerr != nil {
		return nil, afterElem, eerr
	}
	byCur, ok := afterElem.Expect(token.BY)
	if !ok {
		return nil, afterElem, NewParseError(afterElem.Pos(), expected("'by'", afterElem.Current().Type))
	}
	key, after, kerr := p.parseAssignment(byCur)
	if kerr != nil {
		return nil, after, kerr
	}
	return &ast.GroupByClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, Element: elem, Key: key}, after, nil
}

func (p *Parser) parseIntoClause(cur *Cursor) (*ast.IntoClause, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("an identifier after into", next.Current().Type))
	}
	name := next.Current().Literal
	after := next.Advance()
	return &ast.IntoClause{Span: ast.Span{Start: start, End: after.Pos() - 1}, VarName: name}, after, nil
}
