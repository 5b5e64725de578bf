package printer_test

import (
	"testing"

	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/printer"
)

func TestReturnStatement(t *testing.T) {
	tests := []struct {
		name     string
		stmt     ast.Stmt
		expected string
	}{
		{
			name:     "return with value",
			stmt:     &ast.ReturnStmt{Value: &ast.NumberLiteralExpr{Raw: "42"}},
			expected: "return 42;\n",
		},
		{
			name:     "bare return",
			stmt:     &ast.ReturnStmt{},
			expected: "return;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := printer.New(printer.Options{})
			got := p.Print(tt.stmt)
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFieldMember(t *testing.T) {
	m := &ast.FieldMember{
		Modifiers: ast.ModPublic,
		Type:      &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "int"}}},
		Declarators: []ast.FieldDeclarator{
			{Name: "f", Initializer: &ast.NumberLiteralExpr{Raw: "1"}},
			{Name: "g"},
		},
	}
	p := printer.New(printer.Options{})
	got := p.Print(m)
	want := "public int f = 1, g;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBinaryOperatorOverload(t *testing.T) {
	m := &ast.BinaryOperatorMember{
		Modifiers:  ast.ModStatic,
		ReturnType: &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "C"}}},
		Operator:   "+",
		Left:       ast.Parameter{Type: &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "C"}}}, Name: "a"},
		Right:      ast.Parameter{Type: &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "C"}}}, Name: "b"},
		Body: &ast.BlockStmt{Statements: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.NumberLiteralExpr{Raw: "0"}},
		}},
	}
	p := printer.New(printer.Options{})
	got := p.Print(m)
	want := "static C operator +(C a, C b)\n{\n    return 0;\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestArrayTypeRef(t *testing.T) {
	tr := &ast.ArrayTypeRef{
		Element: &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "int"}}},
		Ranks:   []int{1, 2},
	}
	p := printer.New(printer.Options{})
	got := p.Print(&ast.ExprStmt{Expression: &ast.TypeExpr{Type: tr}})
	want := "int[][,];\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLambdaBlockBody(t *testing.T) {
	lambda := &ast.LambdaExpr{
		Parameters: []ast.Parameter{{Name: "x"}},
		BlockBody: &ast.BlockStmt{Statements: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.BinaryExpr{
				Left: &ast.IdentifierExpr{Name: "x"}, Operator: "+", Right: &ast.NumberLiteralExpr{Raw: "1"},
			}},
		}},
	}
	p := printer.New(printer.Options{})
	got := p.Print(&ast.ExprStmt{Expression: lambda})
	want := "x => { return x + 1; };\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnonymousMethodBody(t *testing.T) {
	m := &ast.AnonymousMethodExpr{
		Parameters: []ast.Parameter{{Type: &ast.QualifiedTypeRef{Parts: []ast.NamePart{{Name: "int"}}}, Name: "x"}},
		Body: &ast.BlockStmt{Statements: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.IdentifierExpr{Name: "x"}},
		}},
	}
	p := printer.New(printer.Options{})
	got := p.Print(&ast.ExprStmt{Expression: m})
	want := "delegate(int x) { return x; };\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQueryExpr(t *testing.T) {
	q := &ast.QueryExpr{Clauses: []ast.QueryClause{
		&ast.FromClause{VarName: "i", Source: &ast.IdentifierExpr{Name: "xs"}},
		&ast.WhereClause{Condition: &ast.BinaryExpr{Left: &ast.IdentifierExpr{Name: "i"}, Operator: ">", Right: &ast.NumberLiteralExpr{Raw: "0"}}},
		&ast.SelectClause{Value: &ast.IdentifierExpr{Name: "i"}},
	}}
	p := printer.New(printer.Options{})
	got := p.Print(&ast.ExprStmt{Expression: q})
	want := "from i in xs where i > 0 select i;\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
