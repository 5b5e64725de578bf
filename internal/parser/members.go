package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// closeAngle consumes a closing '>' at cur, splitting a wider `>>`/`>=`/
// `>>=` token in place if that's what's actually there — the same trick
// used to close nested generic argument lists.
func (p *Parser) closeAngle(cur *Cursor) (*Cursor, bool) {
	if cur.Is(token.GT) {
		return cur.Advance(), true
	}
	if cur.SplitGTHere() {
		return cur.Advance(), true
	}
	return cur, false
}

func (p *Parser) parseModifiers(cur *Cursor) (ast.Modifiers, *Cursor) {
	var mods ast.Modifiers
	next := cur
	for {
		flag, ok := modifierKeywords[next.Current().Type]
		if !ok {
			return mods, next
		}
		mods |= flag
		next = next.Advance()
	}
}

func (p *Parser) parseAttributeGroups(cur *Cursor) ([]ast.AttributeGroup, *Cursor, *ParseError) {
	var groups []ast.AttributeGroup
	next := cur
	for next.Is(token.LBRACK) {
		g, after, err := p.parseAttributeGroup(next)
		if err != nil {
			return groups, after, err
		}
		groups = append(groups, g)
		next = after
	}
	return groups, next, nil
}

func (p *Parser) parseAttributeGroup(cur *Cursor) (ast.AttributeGroup, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance()

	target := ast.TargetNone
	if (next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) && next.PeekIs(1, token.COLON) {
		if t, ok := attributeTargetKeywords[next.Current().Literal]; ok {
			target = t
			next = next.AdvanceN(2)
		}
	}

	var attrs []ast.Attribute
	for {
		a, after, err := p.parseAttribute(next)
		if err != nil {
			return ast.AttributeGroup{}, after, err
		}
		attrs = append(attrs, a)
		next = after
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := next.Expect(token.RBRACK)
	if !ok {
		return ast.AttributeGroup{}, next, NewParseError(next.Pos(), expected("']'", next.Current().Type))
	}
	return ast.AttributeGroup{Span: ast.Span{Start: start, End: closeCur.Pos() - 1}, Target: target, Attributes: attrs}, closeCur, nil
}

func (p *Parser) parseAttribute(cur *Cursor) (ast.Attribute, *Cursor, *ParseError) {
	start := cur.Pos()
	name, next, err := p.parseTypeRefOpts(cur, typeRefOptions{})
	if err != nil {
		return ast.Attribute{}, next, err
	}
	var args []ast.Expr
	if next.Is(token.LPAREN) {
		opened := next.Advance()
		for !opened.Is(token.RPAREN) {
			var val ast.Expr
			var verr *ParseError
			if (opened.Is(token.IDENT) || token.IsContextual(opened.Current().Type)) && opened.PeekIs(1, token.ASSIGN) {
				nameStart := opened.Pos()
				argName := opened.Current().Literal
				v, after, e := p.parseAssignment(opened.AdvanceN(2))
				left := &ast.IdentifierExpr{Span: ast.Span{Start: nameStart, End: nameStart}, Name: argName}
				val, opened, verr = &ast.AssignmentExpr{Span: ast.Span{Start: nameStart, End: after.Pos() - 1}, Left: left, Operator: "=", Right: v}, after, e
			} else {
				v, after, e := p.parseAssignment(opened)
				val, opened, verr = v, after, e
			}
			if verr != nil {
				return ast.Attribute{}, opened, verr
			}
			args = append(args, val)
			if opened.Is(token.COMMA) {
				opened = opened.Advance()
				continue
			}
			break
		}
		closeCur, ok := opened.Expect(token.RPAREN)
		if !ok {
			return ast.Attribute{}, opened, NewParseError(opened.Pos(), expected("')'", opened.Current().Type))
		}
		next = closeCur
	}
	return ast.Attribute{Span: ast.Span{Start: start, End: next.Pos() - 1}, Name: name, Args: args}, next, nil
}

func (p *Parser) parseGenericParamList(cur *Cursor) ([]ast.GenericParam, *Cursor, *ParseError) {
	if !cur.Is(token.LT) {
		return nil, cur, nil
	}
	next := cur.Advance()
	var params []ast.GenericParam
	for {
		pStart := next.Pos()
		attrs, afterAttrs, aerr := p.parseAttributeGroups(next)
		if aerr != nil {
			return params, afterAttrs, aerr
		}
		variance := ast.Invariant
		switch {
		case afterAttrs.Is(token.OUT):
			variance, afterAttrs = ast.Covariant, afterAttrs.Advance()
		case afterAttrs.Is(token.IN):
			variance, afterAttrs = ast.Contravariant, afterAttrs.Advance()
		}
		if !afterAttrs.Is(token.IDENT) {
			return params, afterAttrs, NewParseError(afterAttrs.Pos(), expected("a type parameter name", afterAttrs.Current().Type))
		}
		name := afterAttrs.Current().Literal
		next = afterAttrs.Advance()
		params = append(params, ast.GenericParam{Span: ast.Span{Start: pStart, End: next.Pos() - 1}, Name: name, Variance: variance, Attributes: attrs})
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	closeCur, ok := p.closeAngle(next)
	if !ok {
		return params, next, NewParseError(next.Pos(), expected("'>'", next.Current().Type))
	}
	return params, closeCur, nil
}

func (p *Parser) parseConstraintClauses(cur *Cursor) ([]ast.ConstraintClause, *Cursor, *ParseError) {
	var clauses []ast.ConstraintClause
	next := cur
	for next.Is(token.WHERE) {
		start := next.Pos()
		afterWhere := next.Advance()
		if !afterWhere.Is(token.IDENT) {
			return clauses, afterWhere, NewParseError(afterWhere.Pos(), expected("a type parameter name", afterWhere.Current().Type))
		}
		paramName := afterWhere.Current().Literal
		afterName := afterWhere.Advance()
		n2, ok := afterName.Expect(token.COLON)
		if !ok {
			return clauses, afterName, NewParseError(afterName.Pos(), expected("':'", afterName.Current().Type))
		}
		var constraints []ast.Constraint
		for {
			switch {
			case n2.Is(token.CLASS):
				constraints = append(constraints, ast.Constraint{Kind: ast.ConstraintClass})
				n2 = n2.Advance()
			case n2.Is(token.STRUCT):
				constraints = append(constraints, ast.Constraint{Kind: ast.ConstraintStruct})
				n2 = n2.Advance()
			case n2.Is(token.NEW):
				afterNew := n2.Advance()
				openCur, ok := afterNew.Expect(token.LPAREN)
				if !ok {
					return clauses, afterNew, NewParseError(afterNew.Pos(), expected("'('", afterNew.Current().Type))
				}
				closeCur, ok := openCur.Expect(token.RPAREN)
				if !ok {
					return clauses, openCur, NewParseError(openCur.Pos(), expected("')'", openCur.Current().Type))
				}
				constraints = append(constraints, ast.Constraint{Kind: ast.ConstraintNew})
				n2 = closeCur
			default:
				t, after, terr := p.ParseTypeRef(n2)
				if terr != nil {
					return clauses, after, terr
				}
				constraints = append(constraints, ast.Constraint{Kind: ast.ConstraintType, Type: t})
				n2 = after
			}
			if n2.Is(token.COMMA) {
				n2 = n2.Advance()
				continue
			}
			break
		}
		clauses = append(clauses, ast.ConstraintClause{Span: ast.Span{Start: start, End: n2.Pos() - 1}, ParamName: paramName, Constraints: constraints})
		next = n2
	}
	return clauses, next, nil
}

func (p *Parser) parseParameterListDelim(cur *Cursor, open, close token.Type) ([]ast.Parameter, *Cursor, *ParseError) {
	openCur, ok := cur.Expect(open)
	if !ok {
		return nil, cur, NewParseError(cur.Pos(), expected(open.String(), cur.Current().Type))
	}
	next := openCur
	var params []ast.Parameter
	if !next.Is(close) {
		for {
			param, after, perr := p.parseOneParameter(next)
			if perr != nil {
				return params, after, perr
			}
			params = append(params, param)
			next = after
			if next.Is(token.COMMA) {
				next = next.Advance()
				continue
			}
			break
		}
	}
	closeCur, ok := next.Expect(close)
	if !ok {
		return params, next, NewParseError(next.Pos(), expected(close.String(), next.Current().Type))
	}
	return params, closeCur, nil
}

func (p *Parser) parseParameterList(cur *Cursor) ([]ast.Parameter, *Cursor, *ParseError) {
	return p.parseParameterListDelim(cur, token.LPAREN, token.RPAREN)
}

func (p *Parser) parseOneParameter(cur *Cursor) (ast.Parameter, *Cursor, *ParseError) {
	start := cur.Pos()
	attrs, next, aerr := p.parseAttributeGroups(cur)
	if aerr != nil {
		return ast.Parameter{}, next, aerr
	}
	mod := ast.ParamNone
	switch next.Current().Type {
	case token.REF:
		mod, next = ast.ParamRef, next.Advance()
	case token.OUT:
		mod, next = ast.ParamOut, next.Advance()
	case token.PARAMS:
		mod, next = ast.ParamParams, next.Advance()
	case token.THIS:
		mod, next = ast.ParamThis, next.Advance()
	}
	typ, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true})
	if terr != nil {
		return ast.Parameter{}, afterType, terr
	}
	if !afterType.Is(token.IDENT) && !token.IsContextual(afterType.Current().Type) {
		return ast.Parameter{}, afterType, NewParseError(afterType.Pos(), expected("a parameter name", afterType.Current().Type))
	}
	name := afterType.Current().Literal
	next = afterType.Advance()
	var def ast.Expr
	if next.Is(token.ASSIGN) {
		v, after, verr := p.parseAssignment(next.Advance())
		if verr != nil {
			return ast.Parameter{}, after, verr
		}
		def, next = v, after
	}
	return ast.Parameter{Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifier: mod, Type: typ, Name: name, Default: def}, next, nil
}

// parseMemberNamePath parses a member's declared name, which is either a
// bare identifier or an explicit interface implementation of the shape
// `Interface.Member` (the interface part may itself carry dotted
// qualification and generic arguments — `IEnumerable<T>.GetEnumerator`).
func (p *Parser) parseMemberNamePath(cur *Cursor) (ast.TypeRef, string, *Cursor, *ParseError) {
	var interfaceParts []ast.NamePart
	next := cur
	for {
		if !(next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) {
			return nil, "", cur, NewParseError(next.Pos(), expected("a member name", next.Current().Type))
		}
		pStart := next.Pos()
		name := next.Current().Literal
		afterName := next.Advance()

		var genericArgs []ast.TypeRef
		afterGeneric := afterName
		if afterName.Is(token.LT) {
			mark := afterName.Mark()
			args, _, afterArgs, ok := p.tryParseGenericArgs(afterName, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true})
			if ok && afterArgs.Is(token.DOT) {
				genericArgs, afterGeneric = args, afterArgs
			} else {
				afterGeneric = afterName.ResetTo(mark)
			}
		}

		if afterGeneric.Is(token.DOT) {
			interfaceParts = append(interfaceParts, ast.NamePart{Span: ast.Span{Start: pStart, End: afterGeneric.Pos() - 1}, Name: name, GenericArgs: genericArgs})
			next = afterGeneric.Advance()
			continue
		}

		if len(interfaceParts) == 0 {
			return nil, name, afterGeneric, nil
		}
		return &ast.QualifiedTypeRef{Span: ast.Span{Start: cur.Pos(), End: pStart - 1}, Parts: interfaceParts}, name, afterGeneric, nil
	}
}

// parseMember parses one member of a type body, dispatching between the
// nested-type-declaration keywords and the shared "leading type" shape that
// fields, properties, methods, indexers, and operator overloads all start
// with. typeName is the enclosing type's name, needed to recognize a
// constructor/destructor by name match.
func (p *Parser) parseMember(cur *Cursor, typeName string) (ast.Member, *Cursor, *ParseError) {
	start := cur.Pos()
	attrs, next, aerr := p.parseAttributeGroups(cur)
	if aerr != nil {
		return nil, next, aerr
	}
	mods, next := p.parseModifiers(next)

	switch next.Current().Type {
	case token.CLASS:
		return p.parseClassLike(start, attrs, mods, next, token.CLASS)
	case token.STRUCT:
		return p.parseClassLike(start, attrs, mods, next, token.STRUCT)
	case token.INTERFACE:
		return p.parseClassLike(start, attrs, mods, next, token.INTERFACE)
	case token.DELEGATE:
		return p.parseDelegateDecl(start, attrs, mods, next)
	case token.ENUM:
		return p.parseEnumDecl(start, attrs, mods, next)
	case token.EVENT:
		return p.parseEventMember(start, attrs, mods, next)
	case token.TILDE:
		return p.parseDestructor(start, attrs, next)
	}

	if next.Is(token.IDENT) && next.Current().Literal == typeName && next.PeekIs(1, token.LPAREN) {
		return p.parseConstructor(start, attrs, mods, next)
	}

	if next.Is(token.IMPLICIT) || next.Is(token.EXPLICIT) {
		return p.parseConversionOperator(start, attrs, mods, next)
	}

	typ, afterType, terr := p.parseTypeRefOpts(next, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true})
	if terr != nil {
		return nil, afterType, terr
	}
	next = afterType

	if next.Is(token.OPERATOR) {
		return p.parseOperatorOverload(start, attrs, mods, typ, next)
	}

	if next.Is(token.THIS) {
		return p.parseIndexer(start, attrs, mods, typ, nil, next)
	}
	if next.Is(token.IDENT) || token.IsContextual(next.Current().Type) {
		if implementsFrom, afterPrefix, ok := p.tryParseIndexerInterfacePrefix(next); ok {
			return p.parseIndexer(start, attrs, mods, typ, implementsFrom, afterPrefix)
		}
	}

	implementsFrom, name, afterName, nerr := p.parseMemberNamePath(next)
	if nerr != nil {
		return nil, afterName, nerr
	}
	next = afterName

	genericParams, next, gerr := p.parseGenericParamList(next)
	if gerr != nil {
		return nil, next, gerr
	}

	if next.Is(token.LPAREN) {
		return p.parseMethod(start, attrs, mods, typ, implementsFrom, name, genericParams, next)
	}
	if next.Is(token.LBRACE) {
		return p.parseProperty(start, attrs, mods, typ, implementsFrom, name, next)
	}
	return p.parseField(start, attrs, mods, typ, name, next)
}

// tryParseIndexerInterfacePrefix recognizes the explicit-interface-indexer
// prefix `Interface.this`, stopping right at the `this` keyword; it fails
// speculatively (leaving cur untouched) for an ordinary field/method/
// property name, which never has a dotted prefix ending in `this`.
func (p *Parser) tryParseIndexerInterfacePrefix(cur *Cursor) (ast.TypeRef, *Cursor, bool) {
	var parts []ast.NamePart
	next := cur
	for {
		if !(next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) {
			return nil, cur, false
		}
		pStart := next.Pos()
		name := next.Current().Literal
		afterName := next.Advance()
		var args []ast.TypeRef
		if afterName.Is(token.LT) {
			mark := afterName.Mark()
			a, _, afterArgs, ok := p.tryParseGenericArgs(afterName, typeRefOptions{allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true, lenient: true})
			if ok {
				args, afterName = a, afterArgs
			} else {
				afterName = afterName.ResetTo(mark)
			}
		}
		parts = append(parts, ast.NamePart{Span: ast.Span{Start: pStart, End: afterName.Pos() - 1}, Name: name, GenericArgs: args})
		if !afterName.Is(token.DOT) {
			return nil, cur, false
		}
		next = afterName.Advance()
		if next.Is(token.THIS) {
			return &ast.QualifiedTypeRef{Span: ast.Span{Start: cur.Pos(), End: afterName.Pos() - 1}, Parts: parts}, next, true
		}
	}
}

func (p *Parser) parseField(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, typ ast.TypeRef, name string, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	var decls []ast.FieldDeclarator
	next := cur
	var init ast.Expr
	if next.Is(token.ASSIGN) {
		v, after, verr := p.parseAssignment(next.Advance())
		if verr != nil {
			partial := &ast.FieldMember{Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ}
			return partial, after, verr.Enrich(partial)
		}
		init, next = v, after
	}
	decls = append(decls, ast.FieldDeclarator{Span: ast.Span{Start: start, End: next.Pos() - 1}, Name: name, Initializer: init})
	for next.Is(token.COMMA) {
		next = next.Advance()
		if !next.Is(token.IDENT) {
			partial := &ast.FieldMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls}
			err := NewParseError(next.Pos(), expected("a field name", next.Current().Type))
			return partial, next, err.Enrich(partial)
		}
		nStart := next.Pos()
		nName := next.Current().Literal
		next = next.Advance()
		var nInit ast.Expr
		if next.Is(token.ASSIGN) {
			v, after, verr := p.parseAssignment(next.Advance())
			if verr != nil {
				decls = append(decls, ast.FieldDeclarator{Span: ast.Span{Start: nStart, End: after.Pos()}, Name: nName})
				partial := &ast.FieldMember{Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls}
				return partial, after, verr.Enrich(partial)
			}
			nInit, next = v, after
		}
		decls = append(decls, ast.FieldDeclarator{Span: ast.Span{Start: nStart, End: next.Pos() - 1}, Name: nName, Initializer: nInit})
	}
	final := p.expectSemi(next)
	return &ast.FieldMember{Span: ast.Span{Start: start, End: final.Pos() - 1}, Attributes: attrs, Modifiers: mods, Type: typ, Declarators: decls}, final, nil
}

func (p *Parser) parseAccessorBody(cur *Cursor) ([]ast.Accessor, *Cursor, *ParseError) {
	var accessors []ast.Accessor
	next := cur
	for next.Is(token.GET) || next.Is(token.SET) || isModifierKeyword(next.Current().Type) {
		aStart := next.Pos()
		aMods, afterMods := p.parseModifiers(next)
		var kind ast.AccessorKind
		switch {
		case afterMods.Is(token.GET):
			kind = ast.AccessorGet
		case afterMods.Is(token.SET):
			kind = ast.AccessorSet
		default:
			return accessors, afterMods, NewParseError(afterMods.Pos(), expected("'get' or 'set'", afterMods.Current().Type))
		}
		afterKind := afterMods.Advance()
		var body *ast.BlockStmt
		if afterKind.Is(token.LBRACE) {
			b, after, berr := p.parseBlock(afterKind)
			if berr != nil {
				accessors = append(accessors, ast.Accessor{Span: ast.Span{Start: aStart, End: after.Pos()}, Kind: kind, Modifiers: aMods, Body: b})
				return accessors, after, berr
			}
			body, afterKind = b, after
		} else {
			afterKind = p.expectSemi(afterKind)
		}
		accessors = append(accessors, ast.Accessor{Span: ast.Span{Start: aStart, End: afterKind.Pos() - 1}, Kind: kind, Modifiers: aMods, Body: body})
		next = afterKind
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return accessors, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return accessors, closeCur, nil
}

func isModifierKeyword(t token.Type) bool {
	_, ok := modifierKeywords[t]
	return ok
}

func (p *Parser) parseProperty(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, typ ast.TypeRef, implementsFrom ast.TypeRef, name string, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	braceCur, ok := cur.Expect(token.LBRACE)
	if !ok {
		err := NewParseError(cur.Pos(), expected("'{'", cur.Current().Type))
		partial := &ast.PropertyMember{Span: ast.Span{Start: start, End: cur.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ, ImplementsFrom: implementsFrom, Name: name}
		return partial, cur, err.Enrich(partial)
	}
	accessors, next, aerr := p.parseAccessorBody(braceCur)
	if aerr != nil {
		partial := &ast.PropertyMember{
			Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods,
			Type: typ, ImplementsFrom: implementsFrom, Name: name, Accessors: accessors,
		}
		return partial, next, aerr.Enrich(partial)
	}
	var init ast.Expr
	if next.Is(token.ASSIGN) {
		v, after, verr := p.parseAssignment(next.Advance())
		if verr != nil {
			partial := &ast.PropertyMember{
				Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
				Type: typ, ImplementsFrom: implementsFrom, Name: name, Accessors: accessors,
			}
			return partial, after, verr.Enrich(partial)
		}
		init = v
		next = p.expectSemi(after)
	}
	return &ast.PropertyMember{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		Type: typ, ImplementsFrom: implementsFrom, Name: name, Accessors: accessors, Initializer: init,
	}, next, nil
}

func (p *Parser) parseIndexer(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, typ ast.TypeRef, implementsFrom ast.TypeRef, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past 'this'
	params, next, perr := p.parseParameterListDelim(next, token.LBRACK, token.RBRACK)
	if perr != nil {
		partial := &ast.IndexedPropertyMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ, ImplementsFrom: implementsFrom, Parameters: params}
		return partial, next, perr.Enrich(partial)
	}
	braceCur, ok := next.Expect(token.LBRACE)
	if !ok {
		err := NewParseError(next.Pos(), expected("'{'", next.Current().Type))
		partial := &ast.IndexedPropertyMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ, ImplementsFrom: implementsFrom, Parameters: params}
		return partial, next, err.Enrich(partial)
	}
	accessors, final, aerr := p.parseAccessorBody(braceCur)
	if aerr != nil {
		partial := &ast.IndexedPropertyMember{
			Span: ast.Span{Start: start, End: final.Pos()}, Attributes: attrs, Modifiers: mods,
			Type: typ, ImplementsFrom: implementsFrom, Parameters: params, Accessors: accessors,
		}
		return partial, final, aerr.Enrich(partial)
	}
	return &ast.IndexedPropertyMember{
		Span: ast.Span{Start: start, End: final.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		Type: typ, ImplementsFrom: implementsFrom, Parameters: params, Accessors: accessors,
	}, final, nil
}

func (p *Parser) parseMethod(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, retType ast.TypeRef, implementsFrom ast.TypeRef, name string, genericParams []ast.GenericParam, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	params, next, perr := p.parseParameterList(cur)
	if perr != nil {
		partial := &ast.MethodMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, ReturnType: retType, ImplementsFrom: implementsFrom, Name: name, GenericParams: genericParams}
		return partial, next, perr.Enrich(partial)
	}
	constraints, next, cerr := p.parseConstraintClauses(next)
	if cerr != nil {
		partial := &ast.MethodMember{
			Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods,
			ReturnType: retType, ImplementsFrom: implementsFrom, Name: name, GenericParams: genericParams, Parameters: params,
		}
		return partial, next, cerr.Enrich(partial)
	}
	var body *ast.BlockStmt
	if next.Is(token.LBRACE) {
		b, after, berr := p.parseBlock(next)
		if berr != nil {
			partial := &ast.MethodMember{
				Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
				ReturnType: retType, ImplementsFrom: implementsFrom, Name: name, GenericParams: genericParams,
				Constraints: constraints, Parameters: params, Body: b,
			}
			return partial, after, berr.Enrich(partial)
		}
		body, next = b, after
	} else {
		next = p.expectSemi(next)
	}
	return &ast.MethodMember{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		ReturnType: retType, ImplementsFrom: implementsFrom, Name: name, GenericParams: genericParams,
		Constraints: constraints, Parameters: params, Body: body,
	}, next, nil
}

func (p *Parser) parseConstructor(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	name := cur.Current().Literal
	next := cur.Advance()
	params, next, perr := p.parseParameterList(next)
	if perr != nil {
		partial := &ast.ConstructorMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Name: name}
		return partial, next, perr.Enrich(partial)
	}
	var init *ast.ConstructorInit
	if next.Is(token.COLON) {
		iStart := next.Pos()
		kwCur := next.Advance()
		isBase := kwCur.Is(token.BASE)
		if !isBase && !kwCur.Is(token.THIS) {
			err := NewParseError(kwCur.Pos(), expected("'this' or 'base'", kwCur.Current().Type))
			partial := &ast.ConstructorMember{Span: ast.Span{Start: start, End: kwCur.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, Parameters: params}
			return partial, kwCur, err.Enrich(partial)
		}
		afterKw := kwCur.Advance()
		openCur, ok := afterKw.Expect(token.LPAREN)
		if !ok {
			err := NewParseError(afterKw.Pos(), expected("'('", afterKw.Current().Type))
			partial := &ast.ConstructorMember{Span: ast.Span{Start: start, End: afterKw.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, Parameters: params}
			return partial, afterKw, err.Enrich(partial)
		}
		args, afterArgs, aerr := p.parseArgumentList(openCur, token.RPAREN)
		if aerr != nil {
			partial := &ast.ConstructorMember{Span: ast.Span{Start: start, End: afterArgs.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, Parameters: params}
			return partial, afterArgs, aerr.Enrich(partial)
		}
		init = &ast.ConstructorInit{Span: ast.Span{Start: iStart, End: afterArgs.Pos() - 1}, IsBase: isBase, Arguments: args}
		next = afterArgs
	}
	var body *ast.BlockStmt
	if next.Is(token.LBRACE) {
		b, after, berr := p.parseBlock(next)
		if berr != nil {
			partial := &ast.ConstructorMember{
				Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
				Name: name, Parameters: params, Init: init, Body: b,
			}
			return partial, after, berr.Enrich(partial)
		}
		body, next = b, after
	} else {
		next = p.expectSemi(next)
	}
	return &ast.ConstructorMember{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		Name: name, Parameters: params, Init: init, Body: body,
	}, next, nil
}

func (p *Parser) parseDestructor(start int, attrs []ast.AttributeGroup, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past '~'
	if !next.Is(token.IDENT) {
		err := NewParseError(next.Pos(), expected("a destructor name", next.Current().Type))
		partial := &ast.DestructorMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs}
		return partial, next, err.Enrich(partial)
	}
	name := next.Current().Literal
	next = next.Advance()
	openCur, ok := next.Expect(token.LPAREN)
	if !ok {
		err := NewParseError(next.Pos(), expected("'('", next.Current().Type))
		partial := &ast.DestructorMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Name: name}
		return partial, next, err.Enrich(partial)
	}
	closeCur, ok := openCur.Expect(token.RPAREN)
	if !ok {
		err := NewParseError(openCur.Pos(), expected("')'", openCur.Current().Type))
		partial := &ast.DestructorMember{Span: ast.Span{Start: start, End: openCur.Pos()}, Attributes: attrs, Name: name}
		return partial, openCur, err.Enrich(partial)
	}
	body, final, berr := p.parseBlock(closeCur)
	if berr != nil {
		partial := &ast.DestructorMember{Span: ast.Span{Start: start, End: final.Pos()}, Attributes: attrs, Name: name, Body: body}
		return partial, final, berr.Enrich(partial)
	}
	return &ast.DestructorMember{Span: ast.Span{Start: start, End: final.Pos() - 1}, Attributes: attrs, Name: name, Body: body}, final, nil
}

func (p *Parser) parseConversionOperator(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	isImplicit := cur.Is(token.IMPLICIT)
	next := cur.Advance()
	opCur, ok := next.Expect(token.OPERATOR)
	if !ok {
		err := NewParseError(next.Pos(), expected("'operator'", next.Current().Type))
		partial := &ast.ConversionMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, IsImplicit: isImplicit}
		return partial, next, err.Enrich(partial)
	}
	targetType, afterType, terr := p.ParseTypeRef(opCur)
	if terr != nil {
		partial := &ast.ConversionMember{Span: ast.Span{Start: start, End: afterType.Pos()}, Attributes: attrs, Modifiers: mods, IsImplicit: isImplicit}
		return partial, afterType, terr.Enrich(partial)
	}
	params, next, perr := p.parseParameterList(afterType)
	if perr != nil {
		partial := &ast.ConversionMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, IsImplicit: isImplicit, TargetType: targetType}
		return partial, next, perr.Enrich(partial)
	}
	var body *ast.BlockStmt
	if next.Is(token.LBRACE) {
		b, after, berr := p.parseBlock(next)
		if berr != nil {
			var param ast.Parameter
			if len(params) > 0 {
				param = params[0]
			}
			partial := &ast.ConversionMember{
				Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
				IsImplicit: isImplicit, TargetType: targetType, Parameter: param, Body: b,
			}
			return partial, after, berr.Enrich(partial)
		}
		body, next = b, after
	} else {
		next = p.expectSemi(next)
	}
	var param ast.Parameter
	if len(params) > 0 {
		param = params[0]
	}
	return &ast.ConversionMember{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		IsImplicit: isImplicit, TargetType: targetType, Parameter: param, Body: body,
	}, next, nil
}

func (p *Parser) parseOperatorOverload(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, retType ast.TypeRef, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past 'operator'
	opTok := next.Current().Type
	opText := ast.OverloadableOperator(opTok.String())
	next = next.Advance()
	params, next, perr := p.parseParameterList(next)
	if perr != nil {
		partial := &ast.UnaryOperatorMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, ReturnType: retType, Operator: opText}
		return partial, next, perr.Enrich(partial)
	}
	var body *ast.BlockStmt
	if next.Is(token.LBRACE) {
		b, after, berr := p.parseBlock(next)
		if berr != nil {
			if len(params) == 2 && binaryOverloadableOps[opTok] {
				partial := &ast.BinaryOperatorMember{
					Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
					ReturnType: retType, Operator: opText, Left: params[0], Right: params[1], Body: b,
				}
				return partial, after, berr.Enrich(partial)
			}
			var param ast.Parameter
			if len(params) > 0 {
				param = params[0]
			}
			partial := &ast.UnaryOperatorMember{
				Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
				ReturnType: retType, Operator: opText, Parameter: param, Body: b,
			}
			return partial, after, berr.Enrich(partial)
		}
		body, next = b, after
	} else {
		next = p.expectSemi(next)
	}
	if len(params) == 2 && binaryOverloadableOps[opTok] {
		return &ast.BinaryOperatorMember{
			Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
			ReturnType: retType, Operator: opText, Left: params[0], Right: params[1], Body: body,
		}, next, nil
	}
	var param ast.Parameter
	if len(params) > 0 {
		param = params[0]
	}
	return &ast.UnaryOperatorMember{
		Span: ast.Span{Start: start, End: next.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		ReturnType: retType, Operator: opText, Parameter: param, Body: body,
	}, next, nil
}

func (p *Parser) parseEventMember(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past 'event'
	typ, next, terr := p.ParseTypeRef(next)
	if terr != nil {
		partial := &ast.EventMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods}
		return partial, next, terr.Enrich(partial)
	}
	if !next.Is(token.IDENT) {
		err := NewParseError(next.Pos(), expected("an event name", next.Current().Type))
		partial := &ast.EventMember{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Type: typ}
		return partial, next, err.Enrich(partial)
	}
	name := next.Current().Literal
	next = next.Advance()

	if next.Is(token.LBRACE) {
		n2 := next.Advance()
		var addBody, removeBody *ast.BlockStmt
		for n2.Is(token.ADD) || n2.Is(token.REMOVE) {
			isAdd := n2.Is(token.ADD)
			body, after, berr := p.parseBlock(n2.Advance())
			if isAdd {
				addBody = body
			} else {
				removeBody = body
			}
			if berr != nil {
				partial := &ast.EventMember{
					Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods,
					Type: typ, Name: name, AddBody: addBody, RemoveBody: removeBody,
				}
				return partial, after, berr.Enrich(partial)
			}
			n2 = after
		}
		rbCur, ok := n2.Expect(token.RBRACE)
		if !ok {
			err := NewParseError(n2.Pos(), expected("'}'", n2.Current().Type))
			partial := &ast.EventMember{
				Span: ast.Span{Start: start, End: n2.Pos()}, Attributes: attrs, Modifiers: mods,
				Type: typ, Name: name, AddBody: addBody, RemoveBody: removeBody,
			}
			return partial, n2, err.Enrich(partial)
		}
		return &ast.EventMember{
			Span: ast.Span{Start: start, End: rbCur.Pos() - 1}, Attributes: attrs, Modifiers: mods,
			Type: typ, Name: name, AddBody: addBody, RemoveBody: removeBody,
		}, rbCur, nil
	}

	final := p.expectSemi(next)
	return &ast.EventMember{Span: ast.Span{Start: start, End: final.Pos() - 1}, Attributes: attrs, Modifiers: mods, Type: typ, Name: name}, final, nil
}

func (p *Parser) parseDelegateDecl(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past 'delegate'
	retType, next, terr := p.ParseTypeRef(next)
	if terr != nil {
		partial := &ast.DelegateDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods}
		return partial, next, terr.Enrich(partial)
	}
	if !next.Is(token.IDENT) {
		err := NewParseError(next.Pos(), expected("a delegate name", next.Current().Type))
		partial := &ast.DelegateDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, ReturnType: retType}
		return partial, next, err.Enrich(partial)
	}
	name := next.Current().Literal
	next = next.Advance()
	genericParams, next, gerr := p.parseGenericParamList(next)
	if gerr != nil {
		partial := &ast.DelegateDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, ReturnType: retType, Name: name}
		return partial, next, gerr.Enrich(partial)
	}
	params, next, perr := p.parseParameterList(next)
	if perr != nil {
		partial := &ast.DelegateDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, ReturnType: retType, Name: name, GenericParams: genericParams}
		return partial, next, perr.Enrich(partial)
	}
	constraints, next, cerr := p.parseConstraintClauses(next)
	if cerr != nil {
		partial := &ast.DelegateDecl{
			Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods,
			ReturnType: retType, Name: name, GenericParams: genericParams, Parameters: params,
		}
		return partial, next, cerr.Enrich(partial)
	}
	final := p.expectSemi(next)
	return &ast.DelegateDecl{
		Span: ast.Span{Start: start, End: final.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		ReturnType: retType, Name: name, GenericParams: genericParams, Constraints: constraints, Parameters: params,
	}, final, nil
}

func (p *Parser) parseEnumDecl(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past 'enum'
	if !next.Is(token.IDENT) {
		err := NewParseError(next.Pos(), expected("an enum name", next.Current().Type))
		partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods}
		return partial, next, err.Enrich(partial)
	}
	name := next.Current().Literal
	next = next.Advance()
	var underlying ast.TypeRef
	if next.Is(token.COLON) {
		t, after, terr := p.ParseTypeRef(next.Advance())
		if terr != nil {
			partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods, Name: name}
			return partial, after, terr.Enrich(partial)
		}
		underlying, next = t, after
	}
	braceCur, ok := next.Expect(token.LBRACE)
	if !ok {
		err := NewParseError(next.Pos(), expected("'{'", next.Current().Type))
		partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, UnderlyingType: underlying}
		return partial, next, err.Enrich(partial)
	}
	var values []ast.EnumValue
	next = braceCur
	for !next.Is(token.RBRACE) && !next.Is(token.EOF) {
		vStart := next.Pos()
		vAttrs, n2, aerr := p.parseAttributeGroups(next)
		if aerr != nil {
			partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: n2.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, UnderlyingType: underlying, Values: values}
			return partial, n2, aerr.Enrich(partial)
		}
		if !n2.Is(token.IDENT) {
			err := NewParseError(n2.Pos(), expected("an enum member name", n2.Current().Type))
			partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: n2.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, UnderlyingType: underlying, Values: values}
			return partial, n2, err.Enrich(partial)
		}
		vName := n2.Current().Literal
		n2 = n2.Advance()
		var val ast.Expr
		if n2.Is(token.ASSIGN) {
			v, after, verr := p.parseAssignment(n2.Advance())
			if verr != nil {
				partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: after.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, UnderlyingType: underlying, Values: values}
				return partial, after, verr.Enrich(partial)
			}
			val, n2 = v, after
		}
		values = append(values, ast.EnumValue{Span: ast.Span{Start: vStart, End: n2.Pos() - 1}, Attributes: vAttrs, Name: vName, Value: val})
		next = n2
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}
	rbCur, ok := next.Expect(token.RBRACE)
	if !ok {
		err := NewParseError(next.Pos(), expected("'}'", next.Current().Type))
		partial := &ast.EnumDecl{Span: ast.Span{Start: start, End: next.Pos()}, Attributes: attrs, Modifiers: mods, Name: name, UnderlyingType: underlying, Values: values}
		return partial, next, err.Enrich(partial)
	}
	return &ast.EnumDecl{
		Span: ast.Span{Start: start, End: rbCur.Pos() - 1}, Attributes: attrs, Modifiers: mods,
		Name: name, UnderlyingType: underlying, Values: values,
	}, rbCur, nil
}

// parseTypeBody parses the member list shared by class/struct/interface
// declarations. On a member's failure it splices that member's own partial
// (if the child production built one) into the member list it returns, so
// parseClassLike's enclosing ClassDecl/StructDecl/InterfaceDecl partial
// already reflects it.
func (p *Parser) parseTypeBody(cur *Cursor, typeName string) ([]ast.Member, *Cursor, *ParseError) {
	braceCur, ok := cur.Expect(token.LBRACE)
	if !ok {
		return nil, cur, NewParseError(cur.Pos(), expected("'{'", cur.Current().Type))
	}
	var members []ast.Member
	next := braceCur
	for !next.Is(token.RBRACE) && !next.Is(token.EOF) {
		m, after, err := p.parseMember(next, typeName)
		if err != nil {
			if m != nil {
				members = append(members, m)
			}
			return members, after, err
		}
		members = append(members, m)
		next = after
	}
	closeCur, ok := next.Expect(token.RBRACE)
	if !ok {
		return members, next, NewParseError(next.Pos(), expected("'}'", next.Current().Type))
	}
	return members, closeCur, nil
}

// newClassLikePartial builds the partial ClassDecl/StructDecl/InterfaceDecl
// node for kind, used to enrich a ParseError raised partway through parsing
// one of the three, which otherwise share every field and production.
func newClassLikePartial(kind token.Type, start, end int, attrs []ast.AttributeGroup, mods ast.Modifiers, name string, genericParams []ast.GenericParam, constraints []ast.ConstraintClause, baseTypes []ast.TypeRef, members []ast.Member) ast.Member {
	span := ast.Span{Start: start, End: end}
	switch kind {
	case token.CLASS:
		return &ast.ClassDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}
	case token.STRUCT:
		return &ast.StructDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}
	default:
		return &ast.InterfaceDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}
	}
}

func (p *Parser) parseClassLike(start int, attrs []ast.AttributeGroup, mods ast.Modifiers, cur *Cursor, kind token.Type) (ast.Member, *Cursor, *ParseError) {
	next := cur.Advance() // past class/struct/interface
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("a type name", next.Current().Type))
	}
	name := next.Current().Literal
	next = next.Advance()
	genericParams, next, gerr := p.parseGenericParamList(next)
	if gerr != nil {
		partial := newClassLikePartial(kind, start, next.Pos(), attrs, mods, name, genericParams, nil, nil, nil)
		return partial, next, gerr.Enrich(partial)
	}
	var baseTypes []ast.TypeRef
	if next.Is(token.COLON) {
		n2 := next.Advance()
		for {
			t, after, terr := p.ParseTypeRef(n2)
			if terr != nil {
				partial := newClassLikePartial(kind, start, after.Pos(), attrs, mods, name, genericParams, nil, baseTypes, nil)
				return partial, after, terr.Enrich(partial)
			}
			baseTypes = append(baseTypes, t)
			n2 = after
			if n2.Is(token.COMMA) {
				n2 = n2.Advance()
				continue
			}
			break
		}
		next = n2
	}
	constraints, next, cerr := p.parseConstraintClauses(next)
	if cerr != nil {
		partial := newClassLikePartial(kind, start, next.Pos(), attrs, mods, name, genericParams, nil, baseTypes, nil)
		return partial, next, cerr.Enrich(partial)
	}
	members, final, merr := p.parseTypeBody(next, name)
	if merr != nil {
		partial := newClassLikePartial(kind, start, final.Pos(), attrs, mods, name, genericParams, constraints, baseTypes, members)
		return partial, final, merr.Enrich(partial)
	}
	span := ast.Span{Start: start, End: final.Pos() - 1}
	switch kind {
	case token.CLASS:
		return &ast.ClassDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}, final, nil
	case token.STRUCT:
		return &ast.StructDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}, final, nil
	default:
		return &ast.InterfaceDecl{Span: span, Attributes: attrs, Modifiers: mods, Name: name, GenericParams: genericParams, Constraints: constraints, BaseTypes: baseTypes, Members: members}, final, nil
	}
}
