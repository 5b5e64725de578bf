package parser

import (
	"strings"

	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// ParseDocument parses a whole compilation unit: leading using directives
// and aliases, optional assembly/module attribute sections, then a mix of
// namespaces and top-level type declarations.
func (p *Parser) ParseDocument(cur *Cursor) (*ast.Document, *Cursor, *ParseError) {
	start := cur.Pos()
	usings, aliases, next, err := p.parseUsingClauses(cur)
	if err != nil {
		partial := &ast.Document{Span: ast.Span{Start: start, End: next.Pos()}, Usings: usings, UsingAliases: aliases}
		return partial, next, err.Enrich(partial)
	}

	var asmAttrs, modAttrs []ast.AttributeGroup
	for next.Is(token.LBRACK) {
		mark := next.Mark()
		g, after, gerr := p.parseAttributeGroup(next)
		if gerr != nil || (g.Target != ast.TargetAssembly && g.Target != ast.TargetModule) {
			next = next.ResetTo(mark)
			break
		}
		if g.Target == ast.TargetAssembly {
			asmAttrs = append(asmAttrs, g)
		} else {
			modAttrs = append(modAttrs, g)
		}
		next = after
	}

	namespaces, types, final, derr := p.parseNamespaceBody(next)
	if derr != nil {
		partial := &ast.Document{
			Span: ast.Span{Start: start, End: final.Pos()}, Usings: usings, UsingAliases: aliases,
			AssemblyAttributes: asmAttrs, ModuleAttributes: modAttrs, Namespaces: namespaces, Types: types,
		}
		return partial, final, derr.Enrich(partial)
	}

	end := final.Pos() - 1
	if end < start {
		end = start
	}
	return &ast.Document{
		Span: ast.Span{Start: start, End: end}, Usings: usings, UsingAliases: aliases,
		AssemblyAttributes: asmAttrs, ModuleAttributes: modAttrs, Namespaces: namespaces, Types: types,
	}, final, nil
}

func (p *Parser) parseUsingClauses(cur *Cursor) ([]ast.UsingDirective, []ast.UsingAlias, *Cursor, *ParseError) {
	var usings []ast.UsingDirective
	var aliases []ast.UsingAlias
	next := cur
	for next.Is(token.USING) {
		u, a, after, err := p.parseUsingClause(next)
		if err != nil {
			if u != nil {
				usings = append(usings, *u)
			} else if a != nil {
				aliases = append(aliases, *a)
			}
			return usings, aliases, after, err
		}
		if a != nil {
			aliases = append(aliases, *a)
		} else {
			usings = append(usings, *u)
		}
		next = after
	}
	return usings, aliases, next, nil
}

func (p *Parser) parseUsingClause(cur *Cursor) (*ast.UsingDirective, *ast.UsingAlias, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance() // past 'using'
	if !(next.Is(token.IDENT) || token.IsContextual(next.Current().Type)) {
		return nil, nil, next, NewParseError(next.Pos(), expected("a namespace or alias name", next.Current().Type))
	}

	if next.PeekIs(1, token.ASSIGN) {
		alias := next.Current().Literal
		afterEq := next.AdvanceN(2)
		typ, afterType, terr := p.ParseTypeRef(afterEq)
		if terr != nil {
			partial := &ast.UsingAlias{Span: ast.Span{Start: start, End: afterType.Pos()}, Alias: alias}
			return nil, partial, afterType, terr.Enrich(partial)
		}
		final := p.expectSemi(afterType)
		return nil, &ast.UsingAlias{Span: ast.Span{Start: start, End: final.Pos() - 1}, Alias: alias, Type: typ}, final, nil
	}

	var parts []string
	parts = append(parts, next.Current().Literal)
	n2 := next.Advance()
	for n2.Is(token.DOT) {
		afterDot := n2.Advance()
		if !afterDot.Is(token.IDENT) {
			partial := &ast.UsingDirective{Span: ast.Span{Start: start, End: afterDot.Pos()}, Name: strings.Join(parts, ".")}
			err := NewParseError(afterDot.Pos(), expected("an identifier", afterDot.Current().Type))
			return partial, nil, afterDot, err.Enrich(partial)
		}
		parts = append(parts, afterDot.Current().Literal)
		n2 = afterDot.Advance()
	}
	final := p.expectSemi(n2)
	return &ast.UsingDirective{Span: ast.Span{Start: start, End: final.Pos() - 1}, Name: strings.Join(parts, ".")}, nil, final, nil
}

// parseNamespaceBody parses the mix of nested namespaces and type
// declarations that makes up both the document root and a namespace block.
// On a child's failure it splices whatever partial namespace/type that
// child managed to build into the lists it returns, so an enclosing
// Document or Namespace can fold it straight into its own partial.
func (p *Parser) parseNamespaceBody(cur *Cursor) ([]*ast.Namespace, []ast.TypeDecl, *Cursor, *ParseError) {
	var namespaces []*ast.Namespace
	var types []ast.TypeDecl
	next := cur
	for !next.Is(token.RBRACE) && !next.Is(token.EOF) {
		if next.Is(token.SEMICOLON) {
			next = next.Advance()
			continue
		}
		if next.Is(token.NAMESPACE) {
			ns, after, err := p.parseNamespace(next)
			if err != nil {
				if ns != nil {
					namespaces = append(namespaces, ns)
				}
				return namespaces, types, after, err
			}
			namespaces = append(namespaces, ns)
			next = after
			continue
		}
		m, after, err := p.parseMember(next, "")
		if err != nil {
			if td, ok := m.(ast.TypeDecl); ok {
				types = append(types, td)
			}
			return namespaces, types, after, err
		}
		td, ok := m.(ast.TypeDecl)
		if !ok {
			return namespaces, types, after, NewParseError(next.Pos(), "EXPECTED: a namespace or type declaration")
		}
		types = append(types, td)
		next = after
	}
	return namespaces, types, next, nil
}

func (p *Parser) parseNamespace(cur *Cursor) (*ast.Namespace, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur.Advance() // past 'namespace'
	if !next.Is(token.IDENT) {
		return nil, next, NewParseError(next.Pos(), expected("a namespace name", next.Current().Type))
	}
	var parts []string
	parts = append(parts, next.Current().Literal)
	n2 := next.Advance()
	for n2.Is(token.DOT) {
		afterDot := n2.Advance()
		if !afterDot.Is(token.IDENT) {
			return nil, afterDot, NewParseError(afterDot.Pos(), expected("an identifier", afterDot.Current().Type))
		}
		parts = append(parts, afterDot.Current().Literal)
		n2 = afterDot.Advance()
	}
	name := strings.Join(parts, ".")
	braceCur, ok := n2.Expect(token.LBRACE)
	if !ok {
		return nil, n2, NewParseError(n2.Pos(), expected("'{'", n2.Current().Type))
	}
	usings, aliases, next3, uerr := p.parseUsingClauses(braceCur)
	if uerr != nil {
		partial := &ast.Namespace{Span: ast.Span{Start: start, End: next3.Pos()}, Name: name, Usings: usings, UsingAliases: aliases}
		return partial, next3, uerr.Enrich(partial)
	}
	nested, types, next4, berr := p.parseNamespaceBody(next3)
	if berr != nil {
		partial := &ast.Namespace{
			Span: ast.Span{Start: start, End: next4.Pos()}, Name: name,
			Usings: usings, UsingAliases: aliases, Namespaces: nested, Types: types,
		}
		return partial, next4, berr.Enrich(partial)
	}
	rbCur, ok := next4.Expect(token.RBRACE)
	if !ok {
		partial := &ast.Namespace{
			Span: ast.Span{Start: start, End: next4.Pos()}, Name: name,
			Usings: usings, UsingAliases: aliases, Namespaces: nested, Types: types,
		}
		err := NewParseError(next4.Pos(), expected("'}'", next4.Current().Type))
		return partial, next4, err.Enrich(partial)
	}
	return &ast.Namespace{
		Span: ast.Span{Start: start, End: rbCur.Pos() - 1}, Name: name,
		Usings: usings, UsingAliases: aliases, Namespaces: nested, Types: types,
	}, rbCur, nil
}
