package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// tryParseLambda recognizes the two lambda-parameter-list shapes — a single
// bare identifier, or a parenthesized (possibly empty, possibly typed) list
// — each followed by `=>`. Both forms are tried speculatively and leave the
// cursor untouched (ok=false) if `=>` never shows up, since most
// parenthesized expressions are not lambdas.
func (p *Parser) tryParseLambda(cur *Cursor) (ast.Expr, *Cursor, bool) {
	start := cur.Pos()

	if (cur.Is(token.IDENT) || token.IsContextual(cur.Current().Type)) && cur.PeekIs(1, token.ARROW) {
		name := cur.Current().Literal
		param := ast.Parameter{Span: ast.Span{Start: start, End: start}, Name: name}
		bodyCur := cur.AdvanceN(2)
		return p.finishLambda(start, []ast.Parameter{param}, bodyCur)
	}

	if !cur.Is(token.LPAREN) {
		return nil, cur, false
	}
	params, after, ok := p.tryParseLambdaParamList(cur)
	if !ok || !after.Is(token.ARROW) {
		return nil, cur, false
	}
	return p.finishLambda(start, params, after.Advance())
}

func (p *Parser) finishLambda(start int, params []ast.Parameter, cur *Cursor) (ast.Expr, *Cursor, bool) {
	if cur.Is(token.LBRACE) {
		body, after, err := p.parseBlock(cur)
		if err != nil {
			return &ast.LambdaExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Parameters: params, BlockBody: body}, after, true
		}
		return &ast.LambdaExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Parameters: params, BlockBody: body}, after, true
	}
	body, after, err := p.ParseExpression(cur)
	if err != nil {
		return &ast.LambdaExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Parameters: params, ExprBody: body}, after, true
	}
	return &ast.LambdaExpr{Span: ast.Span{Start: start, End: after.Pos() - 1}, Parameters: params, ExprBody: body}, after, true
}

// tryParseLambdaParamList parses `(params)` where each parameter is either a
// bare identifier (implicitly typed) or `[modifier] Type ident` (explicitly
// typed); it fails speculatively rather than raising a ParseError, since the
// same text may simply be a parenthesized expression.
func (p *Parser) tryParseLambdaParamList(cur *Cursor) ([]ast.Parameter, *Cursor, bool) {
	next := cur.Advance()
	if next.Is(token.RPAREN) {
		return nil, next.Advance(), true
	}

	var params []ast.Parameter
	for {
		pStart := next.Pos()
		if (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) &&
			(next.PeekIs(1, token.COMMA) || next.PeekIs(1, token.RPAREN)) {
			params = append(params, ast.Parameter{Span: ast.Span{Start: pStart, End: pStart}, Name: next.Current().Literal})
			next = next.Advance()
		} else {
			mod := ast.ParamNone
			switch next.Current().Type {
			case token.REF:
				mod, next = ast.ParamRef, next.Advance()
			case token.OUT:
				mod, next = ast.ParamOut, next.Advance()
			}
			typ, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true})
			if terr != nil {
				return nil, cur, false
			}
			if !afterType.Is(token.IDENT) && !token.IsContextual(afterType.Current().Type) {
				return nil, cur, false
			}
			name := afterType.Current().Literal
			next = afterType.Advance()
			params = append(params, ast.Parameter{Span: ast.Span{Start: pStart, End: next.Pos() - 1}, Modifier: mod, Type: typ, Name: name})
		}
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	if !next.Is(token.RPAREN) {
		return nil, cur, false
	}
	return params, next.Advance(), true
}
