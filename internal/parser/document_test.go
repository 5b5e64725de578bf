package parser

import (
	"testing"

	"github.com/csparse/csparse/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	p := NewFromSource(src)
	doc, _, err := p.ParseDocument(p.Cursor())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return doc
}

func TestUsingDirective(t *testing.T) {
	doc := mustParse(t, "using System;")
	if len(doc.Usings) != 1 || doc.Usings[0].Name != "System" {
		t.Fatalf("expected one using \"System\", got %+v", doc.Usings)
	}
}

func TestNamespaceWithEmptyClass(t *testing.T) {
	doc := mustParse(t, "namespace N { class C {} }")
	if len(doc.Namespaces) != 1 {
		t.Fatalf("expected one namespace, got %d", len(doc.Namespaces))
	}
	ns := doc.Namespaces[0]
	if ns.Name != "N" {
		t.Fatalf("expected namespace N, got %s", ns.Name)
	}
	if len(ns.Types) != 1 {
		t.Fatalf("expected one type in namespace, got %d", len(ns.Types))
	}
	cls, ok := ns.Types[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected ClassDecl, got %T", ns.Types[0])
	}
	if cls.Name != "C" || len(cls.Members) != 0 {
		t.Fatalf("expected empty class C, got %+v", cls)
	}
}

func TestMultiDeclaratorField(t *testing.T) {
	doc := mustParse(t, "class C { int f = 1, g; }")
	cls := doc.Types[0].(*ast.ClassDecl)
	field, ok := cls.Members[0].(*ast.FieldMember)
	if !ok {
		t.Fatalf("expected FieldMember, got %T", cls.Members[0])
	}
	if len(field.Declarators) != 2 {
		t.Fatalf("expected 2 declarators, got %d", len(field.Declarators))
	}
	if field.Declarators[0].Name != "f" || field.Declarators[0].Initializer == nil {
		t.Fatalf("expected f = <init>, got %+v", field.Declarators[0])
	}
	if field.Declarators[1].Name != "g" || field.Declarators[1].Initializer != nil {
		t.Fatalf("expected g with no initializer, got %+v", field.Declarators[1])
	}
}

func TestAutoProperty(t *testing.T) {
	doc := mustParse(t, "class C { public int P { get; set; } }")
	cls := doc.Types[0].(*ast.ClassDecl)
	prop, ok := cls.Members[0].(*ast.PropertyMember)
	if !ok {
		t.Fatalf("expected PropertyMember, got %T", cls.Members[0])
	}
	if prop.Name != "P" || len(prop.Accessors) != 2 {
		t.Fatalf("expected property P with 2 accessors, got %+v", prop)
	}
	for _, a := range prop.Accessors {
		if a.Body != nil {
			t.Fatalf("expected auto-property accessor with no body, got one")
		}
	}
}

func TestExplicitInterfaceImplementationWithGenerics(t *testing.T) {
	src := `class C { IEnumerator<int> IEnumerable<int>.GetEnumerator() { yield break; } }`
	doc := mustParse(t, src)
	cls := doc.Types[0].(*ast.ClassDecl)
	m, ok := cls.Members[0].(*ast.MethodMember)
	if !ok {
		t.Fatalf("expected MethodMember, got %T", cls.Members[0])
	}
	if m.Name != "GetEnumerator" {
		t.Fatalf("expected method name GetEnumerator, got %s", m.Name)
	}
	if m.ImplementsFrom == nil {
		t.Fatalf("expected ImplementsFrom to be set")
	}
	if len(m.Body.Statements) != 1 {
		t.Fatalf("expected single yield-break statement, got %d", len(m.Body.Statements))
	}
	if _, ok := m.Body.Statements[0].(*ast.YieldBreakStmt); !ok {
		t.Fatalf("expected YieldBreakStmt, got %T", m.Body.Statements[0])
	}
}

func TestCastVsParenBinaryMinus(t *testing.T) {
	doc := mustParse(t, "class C { void M() { var x = (int) -1; } }")
	cls := doc.Types[0].(*ast.ClassDecl)
	method := cls.Members[0].(*ast.MethodMember)
	decl := method.Body.Statements[0].(*ast.VarDeclStmt)
	cast, ok := decl.Declarators[0].Initializer.(*ast.CastExpr)
	if !ok {
		t.Fatalf("expected CastExpr, got %T", decl.Declarators[0].Initializer)
	}
	if _, ok := cast.Operand.(*ast.UnaryExpr); !ok {
		t.Fatalf("expected unary-minus operand, got %T", cast.Operand)
	}
}

func TestQueryExpression(t *testing.T) {
	doc := mustParse(t, "class C { void M() { var q = from i in xs where i > 0 select i; } }")
	cls := doc.Types[0].(*ast.ClassDecl)
	method := cls.Members[0].(*ast.MethodMember)
	decl := method.Body.Statements[0].(*ast.VarDeclStmt)
	query, ok := decl.Declarators[0].Initializer.(*ast.QueryExpr)
	if !ok {
		t.Fatalf("expected QueryExpr, got %T", decl.Declarators[0].Initializer)
	}
	if len(query.Clauses) != 3 {
		t.Fatalf("expected 3 query clauses, got %d", len(query.Clauses))
	}
	if _, ok := query.Clauses[0].(*ast.FromClause); !ok {
		t.Fatalf("expected first clause to be FromClause, got %T", query.Clauses[0])
	}
	if _, ok := query.Clauses[1].(*ast.WhereClause); !ok {
		t.Fatalf("expected second clause to be WhereClause, got %T", query.Clauses[1])
	}
	if _, ok := query.Clauses[2].(*ast.SelectClause); !ok {
		t.Fatalf("expected third clause to be SelectClause, got %T", query.Clauses[2])
	}
}

func TestBinaryOperatorOverload(t *testing.T) {
	doc := mustParse(t, "class C { static int operator +(C a, C b) { return 0; } }")
	cls := doc.Types[0].(*ast.ClassDecl)
	op, ok := cls.Members[0].(*ast.BinaryOperatorMember)
	if !ok {
		t.Fatalf("expected BinaryOperatorMember, got %T", cls.Members[0])
	}
	if op.Operator != "+" {
		t.Fatalf("expected operator +, got %s", op.Operator)
	}
	if op.Left.Name != "a" || op.Right.Name != "b" {
		t.Fatalf("unexpected parameter names: %+v %+v", op.Left, op.Right)
	}
}

func TestEmptyInput(t *testing.T) {
	doc := mustParse(t, "")
	if len(doc.Usings) != 0 || len(doc.Namespaces) != 0 || len(doc.Types) != 0 {
		t.Fatalf("expected an entirely empty document, got %+v", doc)
	}
	if doc.StartTok() != 0 || doc.EndTok() != 0 {
		t.Fatalf("expected start=end=0 on empty input, got %d..%d", doc.StartTok(), doc.EndTok())
	}
}

func TestSemicolonAfterTypeDeclarationIsAccepted(t *testing.T) {
	doc := mustParse(t, "class C {};")
	if len(doc.Types) != 1 {
		t.Fatalf("expected one type, got %d", len(doc.Types))
	}
}

func TestBareSemicolonAtMemberPositionIsRejected(t *testing.T) {
	p := NewFromSource("class C { ; }")
	_, _, err := p.ParseDocument(p.Cursor())
	if err == nil {
		t.Fatalf("expected a parse error for a bare ';' at member position")
	}
}

func TestGenericDeclarationNearLessThanOperator(t *testing.T) {
	src := `class C { void M() { Foo<A, B> x; bool y = a < b; } }`
	doc := mustParse(t, src)
	cls := doc.Types[0].(*ast.ClassDecl)
	method := cls.Members[0].(*ast.MethodMember)
	if len(method.Body.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(method.Body.Statements))
	}
	if _, ok := method.Body.Statements[0].(*ast.VarDeclStmt); !ok {
		t.Fatalf("expected Foo<A, B> x to be a VarDeclStmt, got %T", method.Body.Statements[0])
	}
	decl2 := method.Body.Statements[1].(*ast.VarDeclStmt)
	if _, ok := decl2.Declarators[0].Initializer.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected a < b to parse as BinaryExpr, got %T", decl2.Declarators[0].Initializer)
	}
}

func TestNullableInTernary(t *testing.T) {
	doc1 := mustParse(t, "class C { void M() { var r = x is int ? 5 : 1; } }")
	cls1 := doc1.Types[0].(*ast.ClassDecl)
	decl1 := cls1.Members[0].(*ast.MethodMember).Body.Statements[0].(*ast.VarDeclStmt)
	cond1, ok := decl1.Declarators[0].Initializer.(*ast.ConditionalExpr)
	if !ok {
		t.Fatalf("expected ConditionalExpr, got %T", decl1.Declarators[0].Initializer)
	}
	isExpr1, ok := cond1.Condition.(*ast.IsExpr)
	if !ok {
		t.Fatalf("expected IsExpr condition, got %T", cond1.Condition)
	}
	if _, ok := isExpr1.Type.(*ast.NullableTypeRef); ok {
		t.Fatalf("expected non-nullable type for 'x is int ? 5 : 1'")
	}

	doc2 := mustParse(t, "class C { void M() { var r = x is int? ? 5 : 1; } }")
	cls2 := doc2.Types[0].(*ast.ClassDecl)
	decl2 := cls2.Members[0].(*ast.MethodMember).Body.Statements[0].(*ast.VarDeclStmt)
	cond2, ok := decl2.Declarators[0].Initializer.(*ast.ConditionalExpr)
	if !ok {
		t.Fatalf("expected ConditionalExpr, got %T", decl2.Declarators[0].Initializer)
	}
	isExpr2, ok := cond2.Condition.(*ast.IsExpr)
	if !ok {
		t.Fatalf("expected IsExpr condition, got %T", cond2.Condition)
	}
	if _, ok := isExpr2.Type.(*ast.NullableTypeRef); !ok {
		t.Fatalf("expected nullable type for 'x is int? ? 5 : 1', got %T", isExpr2.Type)
	}
}

func TestArrayCreationVariants(t *testing.T) {
	src := `class C { void M() {
		var a = new int[5];
		var b = new int[] {1,2,3};
		var c = new[] {1,2,3};
	} }`
	doc := mustParse(t, src)
	method := doc.Types[0].(*ast.ClassDecl).Members[0].(*ast.MethodMember)
	stmts := method.Body.Statements

	declA := stmts[0].(*ast.VarDeclStmt)
	arrA, ok := declA.Declarators[0].Initializer.(*ast.ArrayCreationExpr)
	if !ok {
		t.Fatalf("expected ArrayCreationExpr for a, got %T", declA.Declarators[0].Initializer)
	}
	if len(arrA.Sizes) != 1 || arrA.Initializer != nil {
		t.Fatalf("expected one size expr and no initializer for a, got %+v", arrA)
	}

	declB := stmts[1].(*ast.VarDeclStmt)
	arrB, ok := declB.Declarators[0].Initializer.(*ast.ArrayCreationExpr)
	if !ok {
		t.Fatalf("expected ArrayCreationExpr for b, got %T", declB.Declarators[0].Initializer)
	}
	if len(arrB.Sizes) != 0 || arrB.Initializer == nil || len(arrB.Initializer.CollectionEntries) != 3 {
		t.Fatalf("expected no sizes and 3 initializer items for b, got %+v", arrB)
	}

	declC := stmts[2].(*ast.VarDeclStmt)
	arrC, ok := declC.Declarators[0].Initializer.(*ast.ImplicitArrayCreationExpr)
	if !ok {
		t.Fatalf("expected ImplicitArrayCreationExpr for c, got %T", declC.Declarators[0].Initializer)
	}
	if len(arrC.Elements) != 3 {
		t.Fatalf("expected 3 elements for c, got %d", len(arrC.Elements))
	}
}

func TestTypeofEmptyGenericPlaceholder(t *testing.T) {
	doc := mustParse(t, "class C { void M() { var t = typeof(List<,>); } }")
	method := doc.Types[0].(*ast.ClassDecl).Members[0].(*ast.MethodMember)
	decl := method.Body.Statements[0].(*ast.VarDeclStmt)
	to, ok := decl.Declarators[0].Initializer.(*ast.TypeofExpr)
	if !ok {
		t.Fatalf("expected TypeofExpr, got %T", decl.Declarators[0].Initializer)
	}
	qt, ok := to.Type.(*ast.QualifiedTypeRef)
	if !ok || len(qt.Parts) != 1 {
		t.Fatalf("expected a single-part qualified type, got %+v", to.Type)
	}
	if qt.Parts[0].GenericArgs != nil || qt.Parts[0].EmptyArgCount != 2 {
		t.Fatalf("expected EmptyArgCount 2 for List<,>, got %+v", qt.Parts[0])
	}
}

func TestTokenSplittingNestedGenericCloser(t *testing.T) {
	doc := mustParse(t, "class C { Dictionary<string, List<int>> m; }")
	cls := doc.Types[0].(*ast.ClassDecl)
	field, ok := cls.Members[0].(*ast.FieldMember)
	if !ok {
		t.Fatalf("expected FieldMember, got %T", cls.Members[0])
	}
	qt, ok := field.Type.(*ast.QualifiedTypeRef)
	if !ok {
		t.Fatalf("expected QualifiedTypeRef, got %T", field.Type)
	}
	if len(qt.Parts[0].GenericArgs) != 2 {
		t.Fatalf("expected 2 generic args on Dictionary, got %d", len(qt.Parts[0].GenericArgs))
	}
	inner, ok := qt.Parts[0].GenericArgs[1].(*ast.QualifiedTypeRef)
	if !ok || inner.Parts[0].Name != "List" {
		t.Fatalf("expected nested List<int>, got %+v", qt.Parts[0].GenericArgs[1])
	}
}

func TestParseDeterministic(t *testing.T) {
	src := "namespace N { class C { int f = 1; void M() { if (f > 0) { f = f + 1; } } } }"
	doc1 := mustParse(t, src)
	doc2 := mustParse(t, src)
	if doc1.Namespaces[0].Name != doc2.Namespaces[0].Name {
		t.Fatalf("expected deterministic parse, got differing namespace names")
	}
	c1 := doc1.Namespaces[0].Types[0].(*ast.ClassDecl)
	c2 := doc2.Namespaces[0].Types[0].(*ast.ClassDecl)
	if len(c1.Members) != len(c2.Members) {
		t.Fatalf("expected same member count across repeated parses")
	}
}

func TestPartialOnUsingClauseError(t *testing.T) {
	p := NewFromSource("using System.;")
	_, _, err := p.ParseDocument(p.Cursor())
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	doc, ok := err.Partial.(*ast.Document)
	if !ok {
		t.Fatalf("expected err.Partial to be *ast.Document, got %T", err.Partial)
	}
	if len(doc.Usings) != 1 || doc.Usings[0].Name != "System" {
		t.Fatalf("expected the partial document to carry the dangling using \"System\", got %+v", doc.Usings)
	}
}

func TestPartialOnNamespaceBodyError(t *testing.T) {
	p := NewFromSource("namespace N { class C { int f = ; } }")
	_, _, err := p.ParseDocument(p.Cursor())
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	doc, ok := err.Partial.(*ast.Document)
	if !ok {
		t.Fatalf("expected err.Partial to be *ast.Document, got %T", err.Partial)
	}
	if len(doc.Namespaces) != 1 || doc.Namespaces[0].Name != "N" {
		t.Fatalf("expected the partial document to carry namespace N, got %+v", doc.Namespaces)
	}
	ns := doc.Namespaces[0]
	if len(ns.Types) != 1 {
		t.Fatalf("expected the partial namespace to carry class C, got %+v", ns.Types)
	}
	c, ok := ns.Types[0].(*ast.ClassDecl)
	if !ok || c.Name != "C" {
		t.Fatalf("expected the partial type to be class C, got %+v", ns.Types[0])
	}
	if len(c.Members) != 1 {
		t.Fatalf("expected the partial class to carry its broken field member, got %+v", c.Members)
	}
}
