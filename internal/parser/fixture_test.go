package parser_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/parser"
	"github.com/csparse/csparse/internal/printer"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures parses every source file under testdata/fixtures, regenerates
// it through the pretty-printer, and snapshots the result with go-snaps.
// This is a cheap way to notice any drift in either the parser's tree shape
// or the printer's rendering for realistic, multi-member compilation units.
func TestFixtures(t *testing.T) {
	dir := "testdata/fixtures"
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}

	pr := printer.New(printer.Options{IndentStep: "    "})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}

			p := parser.NewFromSource(string(src))
			doc, _, perr := p.ParseDocument(p.Cursor())
			if perr != nil {
				t.Fatalf("parsing %s: %s", name, perr.Error())
			}

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_ast", name), summarizeDocument(doc))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_printed", name), pr.Print(doc))
		})
	}
}

// summarizeDocument renders a shallow, deterministic text outline of a
// document's shape (namespaces, types, member counts) for snapshotting.
// It is intentionally coarser than the printer: a shape regression should
// show up here even if the exact printed text happens to still line-wrap
// the same way.
func summarizeDocument(doc *ast.Document) string {
	var sb strings.Builder
	for _, u := range doc.Usings {
		fmt.Fprintf(&sb, "using %s\n", u.Name)
	}
	for _, ns := range doc.Namespaces {
		summarizeNamespace(&sb, ns, 0)
	}
	for _, t := range doc.Types {
		summarizeType(&sb, t, 0)
	}
	return sb.String()
}

func summarizeNamespace(sb *strings.Builder, ns *ast.Namespace, depth int) {
	fmt.Fprintf(sb, "%snamespace %s\n", indent(depth), ns.Name)
	for _, nested := range ns.Namespaces {
		summarizeNamespace(sb, nested, depth+1)
	}
	for _, t := range ns.Types {
		summarizeType(sb, t, depth+1)
	}
}

func summarizeType(sb *strings.Builder, t ast.TypeDecl, depth int) {
	pad := indent(depth)
	switch d := t.(type) {
	case *ast.ClassDecl:
		fmt.Fprintf(sb, "%sclass %s (%d members)\n", pad, d.Name, len(d.Members))
		summarizeMembers(sb, d.Members, depth+1)
	case *ast.StructDecl:
		fmt.Fprintf(sb, "%sstruct %s (%d members)\n", pad, d.Name, len(d.Members))
		summarizeMembers(sb, d.Members, depth+1)
	case *ast.InterfaceDecl:
		fmt.Fprintf(sb, "%sinterface %s (%d members)\n", pad, d.Name, len(d.Members))
		summarizeMembers(sb, d.Members, depth+1)
	case *ast.EnumDecl:
		names := make([]string, len(d.Values))
		for i, v := range d.Values {
			names[i] = v.Name
		}
		fmt.Fprintf(sb, "%senum %s [%s]\n", pad, d.Name, strings.Join(names, ", "))
	case *ast.DelegateDecl:
		fmt.Fprintf(sb, "%sdelegate %s\n", pad, d.Name)
	default:
		fmt.Fprintf(sb, "%s%T\n", pad, t)
	}
}

func summarizeMembers(sb *strings.Builder, members []ast.Member, depth int) {
	pad := indent(depth)
	for _, m := range members {
		switch mm := m.(type) {
		case *ast.FieldMember:
			names := make([]string, len(mm.Declarators))
			for i, d := range mm.Declarators {
				names[i] = d.Name
			}
			fmt.Fprintf(sb, "%sfield [%s]\n", pad, strings.Join(names, ", "))
		case *ast.MethodMember:
			fmt.Fprintf(sb, "%smethod %s\n", pad, mm.Name)
		case *ast.ConstructorMember:
			fmt.Fprintf(sb, "%sconstructor %s\n", pad, mm.Name)
		case *ast.PropertyMember:
			fmt.Fprintf(sb, "%sproperty %s\n", pad, mm.Name)
		case *ast.BinaryOperatorMember:
			fmt.Fprintf(sb, "%sbinary operator %s\n", pad, mm.Operator)
		case *ast.UnaryOperatorMember:
			fmt.Fprintf(sb, "%sunary operator %s\n", pad, mm.Operator)
		case *ast.ConversionMember:
			fmt.Fprintf(sb, "%sconversion operator\n", pad)
		default:
			fmt.Fprintf(sb, "%s%T\n", pad, m)
		}
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
