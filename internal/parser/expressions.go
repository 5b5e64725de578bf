package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// ParseExpression parses a full expression (including assignment and the
// lambda forms) starting at cur.
func (p *Parser) ParseExpression(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	if expr, next, ok := p.tryParseLambda(cur); ok {
		return expr, next, nil
	}
	if cur.Is(token.FROM) {
		return p.parseQuery(cur)
	}
	return p.parseAssignment(cur)
}

func (p *Parser) parseAssignment(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	left, next, err := p.parseConditional(cur)
	if err != nil {
		return left, next, err
	}
	if opText, ok := assignmentOps[next.Current().Type]; ok {
		opCur := next.Advance()
		right, after, rerr := p.ParseExpression(opCur)
		if rerr != nil {
			return left, after, rerr
		}
		return &ast.AssignmentExpr{
			Span: ast.Span{Start: start, End: after.Pos() - 1}, Left: left, Operator: opText, Right: right,
		}, after, nil
	}
	return left, next, nil
}

// parseConditional handles `cond ? then : else`; the ?-form is parsed
// speculatively so that a bare nullable-type suffix elsewhere in the grammar
// (e.g. `Foo? x` in a declaration) never reaches this code path — callers
// that need a declaration-or-expression decision make it before calling in.
func (p *Parser) parseConditional(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	cond, next, err := p.parseCoalesce(cur)
	if err != nil {
		return cond, next, err
	}
	next = peelTernaryNullable(cond, next)
	if !next.Is(token.QUESTION) {
		return cond, next, nil
	}
	thenCur := next.Advance()
	thenExpr, afterThen, terr := p.parseAssignment(thenCur)
	if terr != nil {
		return cond, afterThen, terr
	}
	colonCur, ok := afterThen.Expect(token.COLON)
	if !ok {
		return cond, afterThen, NewParseError(afterThen.Pos(), expected("':'", afterThen.Current().Type))
	}
	elseExpr, afterElse, eerr := p.parseAssignment(colonCur)
	if eerr != nil {
		return cond, afterElse, eerr
	}
	return &ast.ConditionalExpr{
		Span: ast.Span{Start: start, End: afterElse.Pos() - 1}, Condition: cond, Then: thenExpr, Else: elseExpr,
	}, afterElse, nil
}

// peelTernaryNullable implements the nullable/ternary disambiguation of
// spec.md §4.5. `x is int ? a : b`'s greedy type parse consumes the `?` as
// a nullable suffix on `int`, leaving nothing at the ternary position; this
// walks the right spine of cond (through is/as and the binary forms it can
// sit under) and, if the innermost right operand is an is/as expression
// whose type came out nullable, peels that nullable off and rewinds the
// cursor to the `?` it was built from so it's available to the caller as
// the ternary operator instead. `x is int? ? a : b` needs none of this: the
// cursor is already sitting on the second `?`, so this is a no-op.
func peelTernaryNullable(cond ast.Expr, next *Cursor) *Cursor {
	if next.Is(token.QUESTION) {
		return next
	}
	if rewound, ok := peelRightSpine(cond, next); ok {
		return rewound
	}
	return next
}

func peelRightSpine(e ast.Expr, next *Cursor) (*Cursor, bool) {
	switch n := e.(type) {
	case *ast.IsExpr:
		if rewound, ok := peelNullableType(&n.Type, next); ok {
			n.End--
			return rewound, true
		}
	case *ast.AsExpr:
		if rewound, ok := peelNullableType(&n.Type, next); ok {
			n.End--
			return rewound, true
		}
	case *ast.BinaryExpr:
		if rewound, ok := peelRightSpine(n.Right, next); ok {
			n.End--
			return rewound, true
		}
	case *ast.CoalesceExpr:
		if rewound, ok := peelRightSpine(n.Right, next); ok {
			n.End--
			return rewound, true
		}
	}
	return next, false
}

func peelNullableType(typ *ast.TypeRef, next *Cursor) (*Cursor, bool) {
	nt, ok := (*typ).(*ast.NullableTypeRef)
	if !ok {
		return next, false
	}
	*typ = nt.Inner
	return next.ResetTo(next.Pos() - 1), true
}

func (p *Parser) parseCoalesce(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	left, next, err := p.parseBinary(cur, 1)
	if err != nil {
		return left, next, err
	}
	if next.Is(token.QQUESTION) {
		right, after, rerr := p.parseCoalesce(next.Advance())
		if rerr != nil {
			return left, after, rerr
		}
		return &ast.CoalesceExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Left: left, Right: right}, after, nil
	}
	return left, next, nil
}

// binPrecedence assigns every left-associative binary operator (and the
// non-associative is/as type-test forms, folded into the same ladder at
// relational precedence) its climbing level, low to high.
var binPrecedence = map[token.Type]int{
	token.OROR: 1,
	token.ANDAND: 2,
	token.PIPE: 3,
	token.CARET: 4,
	token.AMP: 5,
	token.EQ: 6, token.NE: 6,
	token.LT: 7, token.GT: 7, token.LE: 7, token.GE: 7, token.IS: 7, token.AS: 7,
	token.LSHIFT: 8, token.RSHIFT: 8,
	token.PLUS: 9, token.MINUS: 9,
	token.ASTERISK: 10, token.SLASH: 10, token.PERCENT: 10,
}

func (p *Parser) parseBinary(cur *Cursor, minPrec int) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	left, next, err := p.parseUnary(cur)
	if err != nil {
		return left, next, err
	}
	for {
		tt := next.Current().Type
		prec, ok := binPrecedence[tt]
		if !ok || prec < minPrec {
			return left, next, nil
		}
		if tt == token.IS {
			typeRef, after, terr := p.ParseTypeRef(next.Advance())
			if terr != nil {
				return left, after, terr
			}
			left = &ast.IsExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Expr: left, Type: typeRef}
			next = after
			continue
		}
		if tt == token.AS {
			typeRef, after, terr := p.ParseTypeRef(next.Advance())
			if terr != nil {
				return left, after, terr
			}
			left = &ast.AsExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Expr: left, Type: typeRef}
			next = after
			continue
		}
		opCur := next.Advance()
		right, after, rerr := p.parseBinary(opCur, prec+1)
		if rerr != nil {
			return left, after, rerr
		}
		left = &ast.BinaryExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Left: left, Operator: tt.String(), Right: right}
		next = after
	}
}

var prefixUnaryOps = map[token.Type]bool{
	token.PLUS: true, token.MINUS: true, token.BANG: true, token.TILDE: true,
	token.INCR: true, token.DECR: true, token.AMP: true, token.ASTERISK: true,
}

func (p *Parser) parseUnary(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	if cur.Is(token.LPAREN) {
		return p.parseParenOrCast(cur)
	}
	if prefixUnaryOps[cur.Current().Type] {
		op := cur.Current().Type.String()
		operand, next, err := p.parseUnary(cur.Advance())
		if err != nil {
			return nil, next, err
		}
		return &ast.UnaryExpr{Span: ast.Span{Start: start, End: next.Pos() - 1}, Operator: op, Operand: operand}, next, nil
	}
	return p.parsePostfix(cur)
}

// parseParenOrCast resolves the classic `(Foo)bar` cast vs `(a + b)`
// parenthesized-expression ambiguity: it speculatively parses a type
// reference inside the parens, then consults the token that follows the
// closing `)` to decide whether the parse looks like a cast. A token that
// can only start an operand (identifier, literal, `(`, `!`, `~`, `new`, ...)
// commits to a cast for any type; `+`/`-` commit only for predefined,
// pointer, array, nullable and generic types, so a plain name followed by
// `+`/`-` is treated as NOT a cast, matching the common case (`(x) + y`
// with x a variable, not a type). Any other follow token, `*` and `&`
// included, is never a cast.
func (p *Parser) parseParenOrCast(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	mark := cur.Mark()
	inner := cur.Advance()

	typeOpts := typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true}
	typeRef, afterType, terr := p.parseTypeRefOpts(inner, typeOpts)
	if terr == nil && afterType.Is(token.RPAREN) {
		afterParen := afterType.Advance()
		if isCastFollow(afterParen.Current().Type, typeRef) {
			operand, final, operr := p.parseUnary(afterParen)
			if operr == nil {
				return &ast.CastExpr{Span: ast.Span{Start: start, End: final.Pos() - 1}, Type: typeRef, Operand: operand}, final, nil
			}
		}
	}

	parenStart := cur.ResetTo(mark).Advance()
	innerExpr, afterExpr, eerr := p.ParseExpression(parenStart)
	if eerr != nil {
		return nil, afterExpr, eerr
	}
	closeCur, ok := afterExpr.Expect(token.RPAREN)
	if !ok {
		return innerExpr, afterExpr, NewParseError(afterExpr.Pos(), expected("')'", afterExpr.Current().Type))
	}
	paren := &ast.ParenExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Inner: innerExpr}
	return p.parsePostfixChain(paren, start, closeCur)
}

func isCastFollow(tt token.Type, tr ast.TypeRef) bool {
	switch tt {
	case token.IDENT, token.INT, token.FLOAT, token.STRING, token.CHAR,
		token.TRUE, token.FALSE, token.NULL, token.LPAREN, token.BANG, token.TILDE,
		token.THIS, token.BASE, token.NEW, token.TYPEOF, token.SIZEOF,
		token.DEFAULT, token.CHECKED, token.UNCHECKED, token.INCR, token.DECR:
		return true
	case token.PLUS, token.MINUS:
		return looksUnambiguouslyType(tr)
	default:
		return false
	}
}

func looksUnambiguouslyType(tr ast.TypeRef) bool {
	switch t := tr.(type) {
	case *ast.PointerTypeRef, *ast.ArrayTypeRef, *ast.NullableTypeRef:
		return true
	case *ast.QualifiedTypeRef:
		if len(t.Parts) == 0 {
			return false
		}
		last := t.Parts[len(t.Parts)-1]
		if last.GenericArgs != nil {
			return true
		}
		if len(t.Parts) == 1 {
			for tt := range builtinTypeKeywords {
				if tt.String() == last.Name {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}

// --- postfix chain: member access, calls, indexers, postfix incr/decr -----

func (p *Parser) parsePostfix(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	left, next, err := p.parsePrimary(cur)
	if err != nil {
		return left, next, err
	}
	return p.parsePostfixChain(left, start, next)
}

var genericCommitFollow = map[token.Type]bool{
	token.LPAREN: true, token.RPAREN: true, token.RBRACK: true, token.RBRACE: true,
	token.COLON: true, token.SEMICOLON: true, token.COMMA: true, token.DOT: true,
	token.EOF: true, token.QUESTION: true,
}

func (p *Parser) parsePostfixChain(left ast.Expr, start int, cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	next := cur
	for {
		switch next.Current().Type {
		case token.DOT, token.PTRARROW:
			isPointer := next.Is(token.PTRARROW)
			nameCur := next.Advance()
			if !nameCur.Is(token.IDENT) && !token.IsContextual(nameCur.Current().Type) {
				return left, next, NewParseError(nameCur.Pos(), expected("a member name", nameCur.Current().Type))
			}
			name := nameCur.Current().Literal
			after := nameCur.Advance()
			var genArgs []ast.TypeRef
			if after.Is(token.LT) {
				mark := after.Mark()
				args, _, cand, ok := p.tryParseGenericArgs(after, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: false, allowNullable: false})
				if ok && genericCommitFollow[cand.Current().Type] {
					genArgs = args
					after = cand
				} else {
					after = after.ResetTo(mark)
				}
			}
			left = &ast.MemberAccessExpr{
				Span: ast.Span{Start: start, End: after.Pos() - 1}, Target: left, Name: name,
				GenericArgs: genArgs, IsPointer: isPointer,
			}
			next = after
		case token.LPAREN:
			args, after, aerr := p.parseArgumentList(next.Advance(), token.RPAREN)
			if aerr != nil {
				return left, after, aerr
			}
			left = &ast.CallExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Target: left, Arguments: args}
			next = after
		case token.LBRACK:
			args, after, aerr := p.parseArgumentList(next.Advance(), token.RBRACK)
			if aerr != nil {
				return left, after, aerr
			}
			left = &ast.CallExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Target: left, Arguments: args, IsIndexer: true}
			next = after
		case token.INCR, token.DECR:
			op := next.Current().Type.String()
			after := next.Advance()
			left = &ast.PostfixExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Operand: left, Operator: op}
			next = after
		default:
			return left, next, nil
		}
	}
}

// parseArgumentList parses a comma-separated argument list up to (and
// consuming) closeTok; an empty list is fine.
func (p *Parser) parseArgumentList(cur *Cursor, closeTok token.Type) ([]ast.Argument, *Cursor, *ParseError) {
	next := cur
	if next.Is(closeTok) {
		return nil, next.Advance(), nil
	}
	var args []ast.Argument
	for {
		start := next.Pos()
		var name string
		if (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) && next.PeekIs(1, token.COLON) {
			name = next.Current().Literal
			next = next.AdvanceN(2)
		}
		mod := ast.ParamNone
		switch next.Current().Type {
		case token.REF:
			mod = ast.ParamRef
			next = next.Advance()
		case token.OUT:
			mod = ast.ParamOut
			next = next.Advance()
		}
		value, after, verr := p.ParseExpression(next)
		if verr != nil {
			return args, after, verr
		}
		args = append(args, ast.Argument{Span: ast.Span{Start: start, End: after.Pos() - 1}, Name: name, Modifier: mod, Value: value})
		next = after
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := next.Expect(closeTok)
	if !ok {
		return args, next, NewParseError(next.Pos(), expected(closeTok.String(), next.Current().Type))
	}
	return args, closeCur, nil
}

// --- primary expressions --------------------------------------------------

func (p *Parser) parsePrimary(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	tok := cur.Current()
	switch tok.Type {
	case token.INT, token.FLOAT:
		return &ast.NumberLiteralExpr{Span: ast.Span{Start: start, End: start}, Raw: tok.Literal}, cur.Advance(), nil
	case token.CHAR:
		return &ast.CharLiteralExpr{Span: ast.Span{Start: start, End: start}, Raw: tok.Literal}, cur.Advance(), nil
	case token.STRING:
		return &ast.StringLiteralExpr{Span: ast.Span{Start: start, End: start}, Raw: tok.Literal}, cur.Advance(), nil
	case token.TRUE:
		return &ast.BoolLiteralExpr{Span: ast.Span{Start: start, End: start}, Value: true}, cur.Advance(), nil
	case token.FALSE:
		return &ast.BoolLiteralExpr{Span: ast.Span{Start: start, End: start}, Value: false}, cur.Advance(), nil
	case token.NULL:
		return &ast.NullLiteralExpr{Span: ast.Span{Start: start, End: start}}, cur.Advance(), nil
	case token.THIS:
		return &ast.ThisExpr{Span: ast.Span{Start: start, End: start}}, cur.Advance(), nil
	case token.BASE:
		return &ast.BaseExpr{Span: ast.Span{Start: start, End: start}}, cur.Advance(), nil
	case token.NEW:
		return p.parseNewExpr(cur)
	case token.TYPEOF:
		return p.parseTypeofExpr(cur)
	case token.SIZEOF:
		return p.parseParenType(cur, func(s ast.Span, t ast.TypeRef) ast.Expr { return &ast.SizeofExpr{Span: s, Type: t} })
	case token.DEFAULT:
		return p.parseDefaultExpr(cur)
	case token.STACKALLOC:
		return p.parseStackAlloc(cur)
	case token.CHECKED, token.UNCHECKED:
		isChecked := tok.Type == token.CHECKED
		next := cur.Advance()
		openCur, ok := next.Expect(token.LPAREN)
		if !ok {
			return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
		}
		inner, after, eerr := p.ParseExpression(openCur)
		if eerr != nil {
			return inner, after, eerr
		}
		closeCur, ok := after.Expect(token.RPAREN)
		if !ok {
			return inner, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
		}
		return &ast.CheckedExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Operand: inner, IsChecked: isChecked}, closeCur, nil
	case token.LBRACE:
		return p.parseArrayLiteral(cur)
	case token.IDENT:
		return p.parseIdentifierOrGenericCall(cur)
	default:
		if token.IsContextual(tok.Type) {
			return p.parseIdentifierOrGenericCall(cur)
		}
		return nil, cur, NewParseError(cur.Pos(), expected("an expression", tok.Type))
	}
}

func (p *Parser) parseIdentifierOrGenericCall(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	name := cur.Current().Literal
	next := cur.Advance()
	if next.Is(token.LT) {
		mark := next.Mark()
		args, _, after, ok := p.tryParseGenericArgs(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true})
		if ok && after.Is(token.LPAREN) {
			return &ast.MemberAccessExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Name: name, GenericArgs: args}, after, nil
		}
		next = next.ResetTo(mark)
	}
	return &ast.IdentifierExpr{Span: ast.Span{Start: start, End: start}, Name: name}, next, nil
}

func (p *Parser) parseTypeofExpr(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	typeRef, after, terr := p.parseTypeRefOpts(openCur, typeofArgOptions)
	if terr != nil {
		return nil, after, terr
	}
	closeCur, ok := after.Expect(token.RPAREN)
	if !ok {
		return nil, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
	}
	return &ast.TypeofExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Type: typeRef}, closeCur, nil
}

func (p *Parser) parseParenType(cur *Cursor, build func(ast.Span, ast.TypeRef) ast.Expr) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'('", next.Current().Type))
	}
	typeRef, after, terr := p.ParseTypeRef(openCur)
	if terr != nil {
		return nil, after, terr
	}
	closeCur, ok := after.Expect(token.RPAREN)
	if !ok {
		return nil, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
	}
	return build(ast.Span{Start: start, End: closeCur.Pos() - 1}, typeRef), closeCur, nil
}

func (p *Parser) parseDefaultExpr(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if !next.Is(token.LPAREN) {
		return &ast.DefaultExpr{Span: ast.Span{Start: start, End: start}}, next, nil
	}
	openCur := next.Advance()
	typeRef, after, terr := p.ParseTypeRef(openCur)
	if terr != nil {
		return nil, after, terr
	}
	closeCur, ok := after.Expect(token.RPAREN)
	if !ok {
		return nil, after, NewParseError(after.Pos(), expected("')'", after.Current().Type))
	}
	return &ast.DefaultExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Type: typeRef}, closeCur, nil
}

func (p *Parser) parseStackAlloc(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	elemType, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowPointer: true, allowNullable: true})
	if terr != nil {
		return nil, afterType, terr
	}
	openCur, ok := afterType.Expect(token.LBRACK)
	if !ok {
		return nil, afterType, NewParseError(afterType.Pos(), expected("'['", afterType.Current().Type))
	}
	size, afterSize, serr := p.ParseExpression(openCur)
	if serr != nil {
		return nil, afterSize, serr
	}
	closeCur, ok := afterSize.Expect(token.RBRACK)
	if !ok {
		return nil, afterSize, NewParseError(afterSize.Pos(), expected("']'", afterSize.Current().Type))
	}
	return &ast.StackAllocExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, ElementType: elemType, Size: size}, closeCur, nil
}

// parseArrayLiteral parses a brace-delimited comma-separated expression
// list, used standalone for field/local array initializers and reused
// (flattened) for implicit-array and array-creation initializers. Deeply
// nested multidimensional initializer shapes are captured as nested
// ArrayLiteralExpr values rather than a dedicated recursive grammar node.
func (p *Parser) parseArrayLiteral(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	elems, after, err := p.parseBraceExprList(cur)
	if err != nil {
		return nil, after, err
	}
	return &ast.ArrayLiteralExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Elements: elems}, after, nil
}

func (p *Parser) parseBraceExprList(cur *Cursor) ([]ast.Expr, *Cursor, *ParseError) {
	next, ok := cur.Expect(token.LBRACE)
	if !ok {
		return nil, cur, NewParseError(cur.Pos(), expected("'{'", cur.Current().Type))
	}
	var elems []ast.Expr
	for !next.Is(token.RBRACE) {
		var e ast.Expr
		var err *ParseError
		if next.Is(token.LBRACE) {
			e, next, err = p.parseArrayLiteral(next)
		} else {
			e, next, err = p.ParseExpression(next)
		}
		if err != nil {
			return elems, next, err
		}
		elems = append(elems, e)
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return elems, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return elems, closeCur, nil
}

func (p *Parser) parseNewExpr(cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()

	if next.Is(token.LBRACK) {
		after := next.Advance()
		closeCur, ok := after.Expect(token.RBRACK)
		if !ok {
			return nil, after, NewParseError(after.Pos(), expected("']'", after.Current().Type))
		}
		elems, finalCur, err := p.parseBraceExprList(closeCur)
		if err != nil {
			return nil, finalCur, err
		}
		return &ast.ImplicitArrayCreationExpr{Span: ast.Span{Start: start, End: finalCur.Pos() - 1}, Elements: elems}, finalCur, nil
	}

	if next.Is(token.LBRACE) {
		return p.parseAnonymousObjectCreation(start, next)
	}

	elemType, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowPointer: true, allowNullable: true})
	if terr != nil {
		return nil, afterType, terr
	}

	if afterType.Is(token.LBRACK) {
		return p.parseArrayCreationTail(start, elemType, afterType)
	}

	var args []ast.Argument
	afterArgs := afterType
	if afterType.Is(token.LPAREN) {
		a, after, aerr := p.parseArgumentList(afterType.Advance(), token.RPAREN)
		if aerr != nil {
			return nil, after, aerr
		}
		args, afterArgs = a, after
	}

	var init *ast.InitializerList
	finalCur := afterArgs
	if afterArgs.Is(token.LBRACE) {
		il, after, ierr := p.parseInitializerList(afterArgs)
		if ierr != nil {
			return nil, after, ierr
		}
		init, finalCur = il, after
	}

	return &ast.ObjectCreationExpr{
		Span: ast.Span{Start: start, End: finalCur.Pos() - 1}, Type: elemType, Arguments: args, Initializer: init,
	}, finalCur, nil
}

func (p *Parser) parseAnonymousObjectCreation(start int, cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	next := cur.Advance()
	var members []ast.AnonymousMember
	for !next.Is(token.RBRACE) {
		mStart := next.Pos()
		if (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) && next.PeekIs(1, token.ASSIGN) {
			name := next.Current().Literal
			valCur := next.AdvanceN(2)
			val, after, verr := p.ParseExpression(valCur)
			if verr != nil {
				return nil, after, verr
			}
			members = append(members, ast.AnonymousMember{Span: ast.Span{Start: mStart, End: after.Pos() - 1}, Name: name, Value: val})
			next = after
		} else {
			val, after, verr := p.ParseExpression(next)
			if verr != nil {
				return nil, after, verr
			}
			members = append(members, ast.AnonymousMember{Span: ast.Span{Start: mStart, End: after.Pos() - 1}, Value: val})
			next = after
		}
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return &ast.AnonymousObjectCreationExpr{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Members: members}, closeCur, nil
}

func (p *Parser) parseArrayCreationTail(start int, elemType ast.TypeRef, cur *Cursor) (ast.Expr, *Cursor, *ParseError) {
	next := cur.Advance()
	var sizes []ast.Expr
	rank := 1
	for !next.Is(token.RBRACK) {
		if next.Is(token.COMMA) {
			rank++
			next = next.Advance()
			continue
		}
		e, after, eerr := p.ParseExpression(next)
		if eerr != nil {
			return nil, after, eerr
		}
		sizes = append(sizes, e)
		next = after
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	next, ok := next.Expect(token.RBRACK)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("']'", next.Current().Type))
	}

	var extraRanks []int
	if len(sizes) == 0 && rank > 1 {
		extraRanks = append(extraRanks, rank)
	}
	for next.Is(token.LBRACK) {
		after := next.Advance()
		r := 1
		for after.Is(token.COMMA) {
			r++
			after = after.Advance()
		}
		closeCur, ok := after.Expect(token.RBRACK)
		if !ok {
			return nil, after, NewParseError(after.Pos(), expected("']'", after.Current().Type))
		}
		extraRanks = append(extraRanks, r)
		next = closeCur
	}

	var init *ast.InitializerList
	finalCur := next
	if next.Is(token.LBRACE) {
		il, after, ierr := p.parseInitializerList(next)
		if ierr != nil {
			return nil, after, ierr
		}
		init, finalCur = il, after
	}

	return &ast.ArrayCreationExpr{
		Span: ast.Span{Start: start, End: finalCur.Pos() - 1}, ElementType: elemType,
		Sizes: sizes, ExtraRanks: extraRanks, Initializer: init,
	}, finalCur, nil
}

// parseInitializerList parses the `{ ... }` following an object- or
// array-creation expression. The first entry decides the whole list's
// shape: `Name = value` commits to object-initializer form, anything else
// (including a nested `{ ... }` for collection-of-collections) commits to
// collection-initializer form.
func (p *Parser) parseInitializerList(cur *Cursor) (*ast.InitializerList, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()
	if next.Is(token.RBRACE) {
		return &ast.InitializerList{Span: ast.Span{Start: start, End: next.Pos()}}, next.Advance(), nil
	}

	isObject := (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) && next.PeekIs(1, token.ASSIGN)

	if isObject {
		var entries []ast.ObjectInitializerEntry
		for {
			eStart := next.Pos()
			name := next.Current().Literal
			valCur := next.AdvanceN(2)
			val, after, verr := p.ParseExpression(valCur)
			if verr != nil {
				return nil, after, verr
			}
			entries = append(entries, ast.ObjectInitializerEntry{Span: ast.Span{Start: eStart, End: after.Pos() - 1}, Name: name, Value: val})
			next = after
			if next.Is(token.COMMA) {
				next = next.Advance()
				if next.Is(token.RBRACE) {
					break
				}
				continue
			}
			break
		}
		closeCur, ok := next.Expect(token.RBRACE)
		if !ok {
			return nil, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
		}
		return &ast.InitializerList{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, IsObjectInit: true, ObjectEntries: entries}, closeCur, nil
	}

	var entries []ast.CollectionInitializerEntry
	for {
		eStart := next.Pos()
		var values []ast.Expr
		if next.Is(token.LBRACE) {
			vals, after, verr := p.parseBraceValueGroup(next)
			if verr != nil {
				return nil, after, verr
			}
			values, next = vals, after
		} else {
			v, after, verr := p.ParseExpression(next)
			if verr != nil {
				return nil, after, verr
			}
			values, next = []ast.Expr{v}, after
		}
		entries = append(entries, ast.CollectionInitializerEntry{Span: ast.Span{Start: eStart, End: next.Pos() - 1}, Values: values})
		if next.Is(token.COMMA) {
			next = next.Advance()
			if next.Is(token.RBRACE) {
				break
			}
			continue
		}
		break
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return nil, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return &ast.InitializerList{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, CollectionEntries: entries}, closeCur, nil
}

func (p *Parser) parseBraceValueGroup(cur *Cursor) ([]ast.Expr, *Cursor, *ParseError) {
	next := cur.Advance()
	var vals []ast.Expr
	for !next.Is(token.RBRACE) {
		v, after, verr := p.ParseExpression(next)
		if verr != nil {
			return vals, after, verr
		}
		vals = append(vals, v)
		next = after
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return vals, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return vals, closeCur, nil
}
