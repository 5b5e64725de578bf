package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// ParseStatement parses a single statement at cur, dispatching on the
// leading keyword; anything that doesn't match a keyword-led form falls
// through to the declaration-or-expression-statement disambiguation.
func (p *Parser) ParseStatement(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	switch cur.Current().Type {
	case token.SEMICOLON:
		return &ast.EmptyStmt{Span: ast.Span{Start: start, End: start}}, cur.Advance(), nil
	case token.LBRACE:
		return p.parseBlock(cur)
	case token.IF:
		return p.parseIf(cur)
	case token.SWITCH:
		return p.parseSwitch(cur)
	case token.WHILE:
		return p.parseWhile(cur)
	case token.DO:
		return p.parseDoWhile(cur)
	case token.FOR:
		return p.parseFor(cur)
	case token.FOREACH:
		return p.parseForEach(cur)
	case token.RETURN:
		return p.parseReturn(cur)
	case token.THROW:
		return p.parseThrow(cur)
	case token.BREAK:
		return &ast.BreakStmt{Span: ast.Span{Start: start, End: start}}, p.expectSemi(cur.Advance()), nil
	case token.CONTINUE:
		return &ast.ContinueStmt{Span: ast.Span{Start: start, End: start}}, p.expectSemi(cur.Advance()), nil
	case token.GOTO:
		return p.parseGoto(cur)
	case token.TRY:
		return p.parseTry(cur)
	case token.YIELD:
		return p.parseYield(cur)
	case token.LOCK:
		return p.parseLock(cur)
	case token.USING:
		return p.parseUsingStmt(cur)
	case token.FIXED:
		return p.parseFixed(cur)
	case token.CHECKED:
		return p.parseCheckedStmt(cur, true)
	case token.UNCHECKED:
		return p.parseCheckedStmt(cur, false)
	case token.UNSAFE:
		body, next, err := p.parseBlock(cur.Advance())
		return &ast.UnsafeStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, Body: body}, next, err
	case token.CONST:
		return p.parseVarDeclStatement(cur)
	default:
		if (cur.Is(token.IDENT) || token.IsContextual(cur.Current().Type)) && cur.PeekIs(1, token.COLON) &&
			!cur.PeekIs(2, token.COLON) {
			return p.parseLabeledStatement(cur)
		}
		return p.parseVarDeclOrExprStatement(cur)
	}
}

func (p *Parser) expectSemi(cur *Cursor) *Cursor {
	if next, ok := cur.Expect(token.SEMICOLON); ok {
		return next
	}
	return cur
}

func (p *Parser) parseBlock(cur *Cursor) (*ast.BlockStmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next, ok := cur.Expect(token.LBRACE)
	if !ok {
		return nil, cur, NewParseError(cur.Pos(), expected("'{'", cur.Current().Type))
	}
	var stmts []ast.Stmt
	for !next.Is(token.RBRACE) && !next.Is(token.EOF) {
		stmt, after, err := p.ParseStatement(next)
		if err != nil {
			partial := &ast.BlockStmt{Span: ast.Span{Start: start, End: after.Pos()}, Statements: stmts}
			if s, ok := err.Partial.(ast.Stmt); ok {
				partial.Statements = append(partial.Statements, s)
			}
			return partial, p.synchronizeStatement(after), p.recordError(err.Enrich(partial))
		}
		stmts = append(stmts, stmt)
		next = after
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return &ast.BlockStmt{Span: ast.Span{Start: start, End: next.Pos()}, Statements: stmts}, next,
			NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return &ast.BlockStmt{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Statements: stmts}, closeCur, nil
}

// synchronizeStatement advances past tokens until one that plausibly starts
// a new statement, so a block recovering from one bad statement can keep
// parsing its siblings instead of aborting the whole enclosing member.
func (p *Parser) synchronizeStatement(cur *Cursor) *Cursor {
	next := cur
	for !next.Is(token.EOF) && !next.Is(token.RBRACE) {
		if next.Is(token.SEMICOLON) {
			return next.Advance()
		}
		if statementStartKeywords[next.Current().Type] {
			return next
		}
		next = next.Advance()
	}
	return next
}

func (p *Parser) parseIf(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	cond, afterCond, cerr := p.ParseExpression(openCur)
	if cerr != nil {
		return nil, afterCond, cerr
	}
	closeCur, ok := afterCond.Expect(token.RPAREN)
	if !ok {
		return nil, afterCond, NewParseError(afterCond.Pos(), expected("')'", afterCond.Current().Type))
	}
	thenStmt, afterThen, terr := p.ParseStatement(closeCur)
	if terr != nil {
		return nil, afterThen, terr
	}
	var elseStmt ast.Stmt
	next = afterThen
	if next.Is(token.ELSE) {
		e, after, eerr := p.ParseStatement(next.Advance())
		if eerr != nil {
			return nil, after, eerr
		}
		elseStmt, next = e, after
	}
	return &ast.IfStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, Condition: cond, Then: thenStmt, Else: elseStmt}, next, nil
}

func (p *Parser) parseWhile(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	cond, afterCond, cerr := p.ParseExpression(openCur)
	if cerr != nil {
		return nil, afterCond, cerr
	}
	closeCur, ok := afterCond.Expect(token.RPAREN)
	if !ok {
		return nil, afterCond, NewParseError(afterCond.Pos(), expected("')'", afterCond.Current().Type))
	}
	body, after, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, after, berr
	}
	return &ast.WhileStmt{Span: ast.Span{Start: start, End: after.Pos() - 1}, Condition: cond, Body: body}, after, nil
}

func (p *Parser) parseDoWhile(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	body, afterBody, berr := p.ParseStatement(next)
	if berr != nil {
		return nil, afterBody, berr
	}
	whileCur, ok := afterBody.Expect(token.WHILE)
	if !ok {
		return nil, afterBody, NewParseError(afterBody.Pos(), expected("'while'", afterBody.Current().Type))
	}
	openCur, ok := whileCur.Expect(token.LPAREN)
	if !ok {
		return nil, whileCur, NewParseError(whileCur.Pos(), expected("'('", whileCur.Current().Type))
	}
	cond, afterCond, cerr := p.ParseExpression(openCur)
	if cerr != nil {
		return nil, afterCond, cerr
	}
	closeCur, ok := afterCond.Expect(token.RPAREN)
	if !ok {
		return nil, afterCond, NewParseError(afterCond.Pos(), expected("')'", afterCond.Current().Type))
	}
	final := p.expectSemi(closeCur)
	return &ast.DoWhileStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Body: body, Condition: cond}, final, nil
}

func (p *Parser) parseFor(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}

	var initDecl *ast.VarDeclStmt
	var initExprs []ast.Expr
	next = openCur
	if !next.Is(token.SEMICOLON) {
		if decl, after, ok := p.tryParseVarDecl(next); ok {
			initDecl, next = decl, after
		} else {
			for {
				e, after, eerr := p.ParseExpression(next)
				if eerr != nil {
					return nil, after, eerr
				}
				initExprs = append(initExprs, e)
				next = after
				if next.Is(token.COMMA) {
					next = next.Advance()
					continue
				}
				break
			}
		}
	}
	semiCur, ok := next.Expect(token.SEMICOLON)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("';'", next.Current().Type))
	}

	var cond ast.Expr
	next = semiCur
	if !next.Is(token.SEMICOLON) {
		c, after, cerr := p.ParseExpression(next)
		if cerr != nil {
			return nil, after, cerr
		}
		cond, next = c, after
	}
	semiCur2, ok := next.Expect(token.SEMICOLON)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("';'", next.Current().Type))
	}

	var iterators []ast.Expr
	next = semiCur2
	if !next.Is(token.RPAREN) {
		for {
			e, after, eerr := p.ParseExpression(next)
			if eerr != nil {
				return nil, after, eerr
			}
			iterators = append(iterators, e)
			next = after
			if next.Is(token.COMMA) {
				next = next.Advance()
				continue
			}
			break
		}
	}
	closeCur, ok := next.Expect(token.RPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("')'", next.Current().Type))
	}
	body, after, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, after, berr
	}
	return &ast.ForStmt{
		Span: ast.Span{Start: start, End: after.Pos() - 1}, InitDecl: initDecl, InitExprs: initExprs,
		Condition: cond, Iterators: iterators, Body: body,
	}, after, nil
}

func (p *Parser) parseForEach(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}

	var typ ast.TypeRef
	next = openCur
	if !(next.Is(token.IDENT) && next.PeekIs(1, token.IN)) {
		t, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true})
		if terr == nil && (afterType.Is(token.IDENT) || token.IsContextual(afterType.Current().Type)) {
			typ, next = t, afterType
		}
	}
	if !next.Is(token.IDENT) && !token.IsContextual(next.Current().Type) {
		return nil, next, NewParseError(next.Pos(), expected("a loop variable name", next.Current().Type))
	}
	varName := next.Current().Literal
	next = next.Advance()
	inCur, ok := next.Expect(token.IN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'in'", next.Current().Type))
	}
	source, afterSrc, serr := p.ParseExpression(inCur)
	if serr != nil {
		return nil, afterSrc, serr
	}
	closeCur, ok := afterSrc.Expect(token.RPAREN)
	if !ok {
		return nil, afterSrc, NewParseError(afterSrc.Pos(), expected("')'", afterSrc.Current().Type))
	}
	body, after, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, after, berr
	}
	return &ast.ForEachStmt{
		Span: ast.Span{Start: start, End: after.Pos() - 1}, Type: typ, VarName: varName, Source: source, Body: body,
	}, after, nil
}

func (p *Parser) parseReturn(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if next.Is(token.SEMICOLON) {
		return &ast.ReturnStmt{Span: ast.Span{Start: start, End: next.Pos()}}, next.Advance(), nil
	}
	val, after, err := p.ParseExpression(next)
	if err != nil {
		return nil, after, err
	}
	final := p.expectSemi(after)
	return &ast.ReturnStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Value: val}, final, nil
}

func (p *Parser) parseThrow(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if next.Is(token.SEMICOLON) {
		return &ast.ThrowStmt{Span: ast.Span{Start: start, End: next.Pos()}}, next.Advance(), nil
	}
	val, after, err := p.ParseExpression(next)
	if err != nil {
		return nil, after, err
	}
	final := p.expectSemi(after)
	return &ast.ThrowStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Value: val}, final, nil
}

func (p *Parser) parseGoto(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	switch {
	case next.Is(token.CASE):
		val, after, err := p.ParseExpression(next.Advance())
		if err != nil {
			return nil, after, err
		}
		final := p.expectSemi(after)
		return &ast.GotoCaseStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Value: val}, final, nil
	case next.Is(token.DEFAULT):
		final := p.expectSemi(next.Advance())
		return &ast.GotoDefaultStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}}, final, nil
	case next.Is(token.IDENT):
		label := next.Current().Literal
		final := p.expectSemi(next.Advance())
		return &ast.GotoLabelStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Label: label}, final, nil
	default:
		return nil, next, NewParseError(next.Pos(), expected("a label, 'case', or 'default'", next.Current().Type))
	}
}

func (p *Parser) parseYield(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if next.Is(token.BREAK) {
		final := p.expectSemi(next.Advance())
		return &ast.YieldBreakStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}}, final, nil
	}
	retCur, ok := next.Expect(token.RETURN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'return' or 'break' after yield", next.Current().Type))
	}
	val, after, err := p.ParseExpression(retCur)
	if err != nil {
		return nil, after, err
	}
	final := p.expectSemi(after)
	return &ast.YieldReturnStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Value: val}, final, nil
}

func (p *Parser) parseLock(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	e, afterExpr, eerr := p.ParseExpression(openCur)
	if eerr != nil {
		return nil, afterExpr, eerr
	}
	closeCur, ok := afterExpr.Expect(token.RPAREN)
	if !ok {
		return nil, afterExpr, NewParseError(afterExpr.Pos(), expected("')'", afterExpr.Current().Type))
	}
	body, after, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, after, berr
	}
	return &ast.LockStmt{Span: ast.Span{Start: start, End: after.Pos() - 1}, Expr: e, Body: body}, after, nil
}

func (p *Parser) parseUsingStmt(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	var decl *ast.VarDeclStmt
	var expr ast.Expr
	if d, after, ok := p.tryParseVarDecl(openCur); ok {
		decl, next = d, after
	} else {
		e, after, eerr := p.ParseExpression(openCur)
		if eerr != nil {
			return nil, after, eerr
		}
		expr, next = e, after
	}
	closeCur, ok := next.Expect(token.RPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("')'", next.Current().Type))
	}
	body, after, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, after, berr
	}
	return &ast.UsingStmt{Span: ast.Span{Start: start, End: after.Pos() - 1}, ResourceDecl: decl, ResourceExpr: expr, Body: body}, after, nil
}

func (p *Parser) parseFixed(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	decl, after, ok := p.tryParseVarDecl(openCur)
	if !ok {
		return nil, openCur, NewParseError(openCur.Pos(), "EXPECTED: a pointer variable declaration")
	}
	closeCur, ok := after.Expect(token.RPAREN)
	if !ok {
		return nil, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
	}
	body, final, berr := p.ParseStatement(closeCur)
	if berr != nil {
		return nil, final, berr
	}
	return &ast.FixedStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Decl: decl, Body: body}, final, nil
}

func (p *Parser) parseCheckedStmt(cur *Cursor, isChecked bool) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	body, next, err := p.parseBlock(cur.Advance())
	if isChecked {
		return &ast.CheckedStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, Body: body}, next, err
	}
	return &ast.UncheckedStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, Body: body}, next, err
}

func (p *Parser) parseTry(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	body, next, berr := p.parseBlock(cur.Advance())
	if berr != nil {
		return nil, next, berr
	}
	var catches []ast.CatchClause
	for next.Is(token.CATCH) {
		cStart := next.Pos()
		after := next.Advance()
		var typ ast.TypeRef
		var varName string
		if after.Is(token.LPAREN) {
			afterParen := after.Advance()
			t, afterType, terr := p.ParseTypeRef(afterParen)
			if terr != nil {
				return nil, afterType, terr
			}
			typ = t
			after = afterType
			if after.Is(token.IDENT) {
				varName = after.Current().Literal
				after = after.Advance()
			}
			closeCur, ok := after.Expect(token.RPAREN)
			if !ok {
				return nil, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
			}
			after = closeCur
		}
		cBody, afterBody, cerr := p.parseBlock(after)
		if cerr != nil {
			return nil, afterBody, cerr
		}
		catches = append(catches, ast.CatchClause{Span: ast.Span{Start: cStart, End: afterBody.Pos() - 1}, Type: typ, VarName: varName, Body: cBody})
		next = afterBody
	}
	var finally *ast.BlockStmt
	if next.Is(token.FINALLY) {
		f, after, ferr := p.parseBlock(next.Advance())
		if ferr != nil {
			return nil, after, ferr
		}
		finally, next = f, after
	}
	return &ast.TryStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, Body: body, Catches: catches, Finally: finally}, next, nil
}

func (p *Parser) parseSwitch(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	disc, afterDisc, derr := p.ParseExpression(openCur)
	if derr != nil {
		return nil, afterDisc, derr
	}
	closeCur, ok := afterDisc.Expect(token.RPAREN)
	if !ok {
		return nil, afterDisc, NewParseError(afterDisc.Pos(), expected("')'", afterDisc.Current().Type))
	}
	braceCur, ok := closeCur.Expect(token.LBRACE)
	if !ok {
		return nil, closeCur, NewParseError(closeCur.Pos(), expected("'{'", closeCur.Current().Type))
	}
	var groups []ast.SwitchGroup
	next = braceCur
	for next.Is(token.CASE) || next.Is(token.DEFAULT) {
		gStart := next.Pos()
		var labels []ast.SwitchLabel
		for next.Is(token.CASE) || next.Is(token.DEFAULT) {
			lStart := next.Pos()
			if next.Is(token.DEFAULT) {
				after := next.Advance()
				colonCur, ok := after.Expect(token.COLON)
				if !ok {
					return nil, after, NewParseError(after.Pos(), expected("':'", after.Current().Type))
				}
				labels = append(labels, ast.SwitchLabel{Span: ast.Span{Start: lStart, End: colonCur.Pos() - 1}, IsDefault: true})
				next = colonCur
				continue
			}
			after := next.Advance()
			val, afterVal, verr := p.ParseExpression(after)
			if verr != nil {
				return nil, afterVal, verr
			}
			colonCur, ok := afterVal.Expect(token.COLON)
			if !ok {
				return nil, afterVal, NewParseError(afterVal.Pos(), expected("':'", afterVal.Current().Type))
			}
			labels = append(labels, ast.SwitchLabel{Span: ast.Span{Start: lStart, End: colonCur.Pos() - 1}, Value: val})
			next = colonCur
		}
		var stmts []ast.Stmt
		for !next.Is(token.CASE) && !next.Is(token.DEFAULT) && !next.Is(token.RBRACE) && !next.Is(token.EOF) {
			s, after, serr := p.ParseStatement(next)
			if serr != nil {
				return nil, after, serr
			}
			stmts = append(stmts, s)
			next = after
		}
		groups = append(groups, ast.SwitchGroup{Span: ast.Span{Start: gStart, End: next.Pos() - 1}, Labels: labels, Statements: stmts})
	}
	rbCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return &ast.SwitchStmt{Span: ast.Span{Start: start, End: rbCur.Pos() - 1}, Discriminant: disc, Groups: groups}, rbCur, nil
}

func (p *Parser) parseLabeledStatement(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	var labels []string
	next := cur
	for (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) && next.PeekIs(1, token.COLON) && !next.PeekIs(2, token.COLON) {
		labels = append(labels, next.Current().Literal)
		next = next.AdvanceN(2)
	}
	stmt, after, err := p.ParseStatement(next)
	if err != nil {
		return nil, after, err
	}
	return &ast.LabeledStmt{Span: ast.Span{Start: start, End: after.Pos() - 1}, Labels: labels, Stmt: stmt}, after, nil
}

// --- variable declaration / expression-statement disambiguation -----------

// tryParseVarDecl speculatively parses `[const] Type name [= init] [, ...]`
// without consuming the terminating ';'. It fails (ok=false, cursor
// untouched) rather than raising a ParseError, so callers that also accept a
// bare expression here (for/using/fixed initializers) can fall back cleanly.
func (p *Parser) tryParseVarDecl(cur *Cursor) (*ast.VarDeclStmt, *Cursor, bool) {
	start := cur.Pos()
	next := cur
	isConst := false
	if next.Is(token.CONST) {
		isConst = true
		next = next.Advance()
	}

	typeOpts := typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true}
	typ, afterType, terr := p.parseTypeRefOpts(next, typeOpts)
	if terr != nil {
		return nil, cur, false
	}
	if !afterType.Is(token.IDENT) && !token.IsContextual(afterType.Current().Type) {
		return nil, cur, false
	}

	var decls []ast.VarDeclarator
	next = afterType
	for {
		dStart := next.Pos()
		name := next.Current().Literal
		next = next.Advance()
		var init ast.Expr
		if next.Is(token.ASSIGN) {
			val, after, verr := p.ParseExpression(next.Advance())
			if verr != nil {
				return nil, cur, false
			}
			init, next = val, after
		}
		decls = append(decls, ast.VarDeclarator{Span: ast.Span{Start: dStart, End: next.Pos() - 1}, Name: name, Initializer: init})
		if next.Is(token.COMMA) && (next.PeekIs(1, token.IDENT) || token.IsContextual(next.Peek(1).Type)) {
			next = next.Advance()
			continue
		}
		break
	}
	return &ast.VarDeclStmt{Span: ast.Span{Start: start, End: next.Pos() - 1}, IsConst: isConst, Type: typ, Declarators: decls}, next, true
}

func (p *Parser) parseVarDeclStatement(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	decl, next, ok := p.tryParseVarDecl(cur)
	if !ok {
		return nil, cur, NewParseError(cur.Pos(), "EXPECTED: a variable declaration")
	}
	return decl, p.expectSemi(next), nil
}

// parseVarDeclOrExprStatement resolves the statement-level ambiguity
// between a variable declaration and an expression statement: `Foo x = y;`
// vs `foo.Bar();` both start with a name. It tries the declaration shape
// first since it is the more constrained grammar (a bare expression can
// never look like `Type identifier`), falling back to an expression
// statement otherwise.
func (p *Parser) parseVarDeclOrExprStatement(cur *Cursor) (ast.Stmt, *Cursor, *ParseError) {
	start := cur.Pos()
	if decl, next, ok := p.tryParseVarDecl(cur); ok {
		return decl, p.expectSemi(next), nil
	}
	expr, next, err := p.ParseExpression(cur)
	if err != nil {
		return nil, next, err
	}
	final := p.expectSemi(next)
	return &ast.ExprStmt{Span: ast.Span{Start: start, End: final.Pos() - 1}, Expression: expr}, final, nil
}
