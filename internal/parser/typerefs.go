package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// typeRefOptions controls how lenient a given call site is willing to be
// about what counts as a type reference. Different callers need different
// leniency: a cast's parenthesized type-or-expression needs maximum
// leniency (it may turn out not to be a type at all), while a field's
// declared type can demand a real type or fail outright.
type typeRefOptions struct {
	allowKeywords    bool // predefined-type keywords (int, string, ...) count as type names
	allowEmptyArgs   bool // `List<,>` placeholder argument lists (typeof context)
	allowArraySuffix bool // trailing []/[,]/[][,] rank suffixes
	allowPointer     bool // trailing * suffixes
	allowNullable    bool // trailing ? suffix
	lenient          bool // speculative mode: never record a ParseError, just fail
}

var defaultTypeRefOptions = typeRefOptions{
	allowKeywords: true, allowArraySuffix: true, allowPointer: true, allowNullable: true,
}

var typeofArgOptions = typeRefOptions{
	allowKeywords: true, allowEmptyArgs: true, allowArraySuffix: true,
	allowPointer: true, allowNullable: true,
}

// ParseTypeRef parses a single type reference starting at cur using the
// default leniency (the shape needed for a declared variable/field/return
// type). It never returns a nil TypeRef without a non-nil error.
func (p *Parser) ParseTypeRef(cur *Cursor) (ast.TypeRef, *Cursor, *ParseError) {
	return p.parseTypeRefOpts(cur, defaultTypeRefOptions)
}

func (p *Parser) parseTypeRefOpts(cur *Cursor, opts typeRefOptions) (ast.TypeRef, *Cursor, *ParseError) {
	start := cur.Pos()

	var base ast.TypeRef
	var next *Cursor
	var err *ParseError

	switch {
	case cur.Is(token.GLOBAL):
		base, next, err = p.parseQualifiedName(cur, true, opts)
	case opts.allowKeywords && builtinTypeKeywords[cur.Current().Type]:
		name := cur.Current().Type.String()
		next = cur.Advance()
		base = &ast.QualifiedTypeRef{
			Span:  ast.Span{Start: start, End: start},
			Parts: []ast.NamePart{{Span: ast.Span{Start: start, End: start}, Name: name}},
		}
	case cur.Is(token.IDENT) || token.IsContextual(cur.Current().Type):
		base, next, err = p.parseQualifiedName(cur, false, opts)
	default:
		return nil, cur, NewParseError(cur.Pos(), expected("a type name", cur.Current().Type))
	}
	if err != nil {
		return base, next, err
	}

	return p.parseTypeSuffixes(base, next, start, opts)
}

// parseQualifiedName parses `[global::]Ident[<Args>](.Ident[<Args>])*`.
func (p *Parser) parseQualifiedName(cur *Cursor, isGlobal bool, opts typeRefOptions) (ast.TypeRef, *Cursor, *ParseError) {
	start := cur.Pos()
	next := cur
	if isGlobal {
		next = next.Advance()
		if adv, ok := next.Expect(token.COLONCOLON); ok {
			next = adv
		} else {
			return nil, next, NewParseError(next.Pos(), expected("'::' after global", next.Current().Type))
		}
	}

	var parts []ast.NamePart
	for {
		part, n, err := p.parseNamePart(next, opts)
		if err != nil {
			return nil, n, err
		}
		parts = append(parts, part)
		next = n
		if next.Is(token.DOT) && (next.PeekIs(1, token.IDENT) || token.IsContextual(next.Peek(1).Type)) {
			next = next.Advance()
			continue
		}
		break
	}

	end := next.Pos() - 1
	return &ast.QualifiedTypeRef{
		Span:     ast.Span{Start: start, End: end},
		IsGlobal: isGlobal,
		Parts:    parts,
	}, next, nil
}

func (p *Parser) parseNamePart(cur *Cursor, opts typeRefOptions) (ast.NamePart, *Cursor, *ParseError) {
	start := cur.Pos()
	if !cur.Is(token.IDENT) && !token.IsContextual(cur.Current().Type) {
		return ast.NamePart{}, cur, NewParseError(cur.Pos(), expected("an identifier", cur.Current().Type))
	}
	name := cur.Current().Literal
	next := cur.Advance()

	if !next.Is(token.LT) {
		return ast.NamePart{Span: ast.Span{Start: start, End: start}, Name: name}, next, nil
	}

	mark := next.Mark()
	args, emptyCount, after, ok := p.tryParseGenericArgs(next, opts)
	if !ok {
		return ast.NamePart{Span: ast.Span{Start: start, End: start}, Name: name}, next.ResetTo(mark), nil
	}
	return ast.NamePart{
		Span:          ast.Span{Start: start, End: after.Pos() - 1},
		Name:          name,
		GenericArgs:   args,
		EmptyArgCount: emptyCount,
	}, after, nil
}

// tryParseGenericArgs speculatively parses `<T1, T2, ...>` (or, when
// opts.allowEmptyArgs is set, the unnamed `<,,>` placeholder form used by
// `typeof(Dictionary<,>)`), returning ok=false without side effects on the
// caller's cursor if the content between `<` and the matching `>` does not
// look like a type-argument list. `>>`/`>=`/`>>=` are split in place to
// synthesize a closing `>` when a nested generic closes two levels at once.
func (p *Parser) tryParseGenericArgs(cur *Cursor, opts typeRefOptions) ([]ast.TypeRef, int, *Cursor, bool) {
	if !cur.Is(token.LT) {
		return nil, 0, cur, false
	}
	next := cur.Advance()

	if opts.allowEmptyArgs {
		if count, after, ok := p.tryParseEmptyArgPlaceholder(next); ok {
			return nil, count, after, true
		}
	}

	var args []ast.TypeRef
	for {
		sub := typeRefOptions{
			allowKeywords: opts.allowKeywords, allowArraySuffix: opts.allowArraySuffix,
			allowPointer: false, allowNullable: opts.allowNullable, lenient: true,
		}
		arg, after, err := p.parseTypeRefOpts(next, sub)
		if err != nil {
			return nil, 0, cur, false
		}
		args = append(args, arg)
		next = after
		if next.Is(token.COMMA) {
			next = next.Advance()
			continue
		}
		break
	}

	if next.Is(token.GT) {
		return args, 0, next.Advance(), true
	}
	if next.IsAny(token.RSHIFT, token.GE, token.RSHIFT_ASSIGN) {
		next.SplitGTHere()
		return args, 0, next.Advance(), true
	}
	return nil, 0, cur, false
}

// tryParseEmptyArgPlaceholder recognizes a run of bare commas closed by `>`,
// the unnamed-argument generic form: `<,>` is 2 slots, `<,,>` is 3, and `<>`
// (immediately closed) is 1.
func (p *Parser) tryParseEmptyArgPlaceholder(cur *Cursor) (int, *Cursor, bool) {
	count := 1
	next := cur
	for next.Is(token.COMMA) {
		count++
		next = next.Advance()
	}
	if next.Is(token.GT) {
		return count, next.Advance(), true
	}
	if next.IsAny(token.RSHIFT, token.GE, token.RSHIFT_ASSIGN) {
		next.SplitGTHere()
		return count, next.Advance(), true
	}
	return 0, cur, false
}

// parseTypeSuffixes consumes any run of trailing `*`, `?`, and array-rank
// `[]`/`[,]` suffixes following a base type reference, in the order C#
// allows them to combine: pointer and nullable bind tighter than array.
func (p *Parser) parseTypeSuffixes(base ast.TypeRef, cur *Cursor, start int, opts typeRefOptions) (ast.TypeRef, *Cursor, *ParseError) {
	result := base
	next := cur
	nullableSeen := false
	for {
		switch {
		case opts.allowPointer && next.Is(token.ASTERISK):
			next = next.Advance()
			result = &ast.PointerTypeRef{Span: ast.Span{Start: start, End: next.Pos() - 1}, Inner: result}
		case opts.allowNullable && !nullableSeen && next.Is(token.QUESTION):
			next = next.Advance()
			result = &ast.NullableTypeRef{Span: ast.Span{Start: start, End: next.Pos() - 1}, Inner: result}
			nullableSeen = true
		case opts.allowArraySuffix && next.Is(token.LBRACK) && looksLikeArraySuffix(next):
			rank := 1
			after := next.Advance()
			for after.Is(token.COMMA) {
				rank++
				after = after.Advance()
			}
			if !after.Is(token.RBRACK) {
				return result, next, NewParseError(after.Pos(), expected("']'", after.Current().Type))
			}
			after = after.Advance()
			result = &ast.ArrayTypeRef{Span: ast.Span{Start: start, End: after.Pos() - 1}, Element: result, Ranks: []int{rank}}
			next = after
		default:
			return result, next, nil
		}
	}
}

// looksLikeArraySuffix reports whether the `[` at cur opens a bare rank
// specifier (only commas before the matching `]`) rather than an indexer or
// attribute-looking bracket the caller should leave alone.
func looksLikeArraySuffix(cur *Cursor) bool {
	i := 1
	for {
		t := cur.Peek(i).Type
		if t == token.COMMA {
			i++
			continue
		}
		return t == token.RBRACK
	}
}
