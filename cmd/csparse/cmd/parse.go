package cmd

import (
	"fmt"
	"os"

	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpr    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the AST",
	Long: `Parse source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin. On a syntax error, the parser's
best-effort partial tree is shown alongside the diagnostic, rather than
nothing at all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	p := parser.NewFromSource(input)
	doc, _, perr := p.ParseDocument(p.Cursor())

	if perr != nil {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", perr.Error())
		if perr.Partial != nil {
			fmt.Fprintln(os.Stderr, "--- partial tree ---")
			dumpASTNode(perr.Partial, 0)
		}
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		dumpASTNode(doc, 0)
	} else {
		fmt.Printf("document: %d usings, %d namespaces, %d top-level types\n",
			len(doc.Usings)+len(doc.UsingAliases), len(doc.Namespaces), len(doc.Types))
	}
	return nil
}

func dumpASTNode(node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Document:
		fmt.Printf("%sDocument (%d namespaces, %d types)\n", pad, len(n.Namespaces), len(n.Types))
		for _, u := range n.Usings {
			fmt.Printf("%s  using %s\n", pad, u.Name)
		}
		for _, ns := range n.Namespaces {
			dumpASTNode(ns, indent+1)
		}
		for _, t := range n.Types {
			dumpASTNode(t, indent+1)
		}
	case *ast.Namespace:
		fmt.Printf("%sNamespace %s (%d types)\n", pad, n.Name, len(n.Types))
		for _, nested := range n.Namespaces {
			dumpASTNode(nested, indent+1)
		}
		for _, t := range n.Types {
			dumpASTNode(t, indent+1)
		}
	case *ast.ClassDecl:
		fmt.Printf("%sClassDecl %s (%d members)\n", pad, n.Name, len(n.Members))
		for _, m := range n.Members {
			dumpASTNode(m, indent+1)
		}
	case *ast.StructDecl:
		fmt.Printf("%sStructDecl %s (%d members)\n", pad, n.Name, len(n.Members))
		for _, m := range n.Members {
			dumpASTNode(m, indent+1)
		}
	case *ast.InterfaceDecl:
		fmt.Printf("%sInterfaceDecl %s (%d members)\n", pad, n.Name, len(n.Members))
		for _, m := range n.Members {
			dumpASTNode(m, indent+1)
		}
	case *ast.EnumDecl:
		fmt.Printf("%sEnumDecl %s (%d values)\n", pad, n.Name, len(n.Values))
	case *ast.DelegateDecl:
		fmt.Printf("%sDelegateDecl %s\n", pad, n.Name)
	case *ast.MethodMember:
		fmt.Printf("%sMethodMember %s\n", pad, n.Name)
	case *ast.FieldMember:
		fmt.Printf("%sFieldMember (%d declarators)\n", pad, len(n.Declarators))
	case *ast.PropertyMember:
		fmt.Printf("%sPropertyMember %s\n", pad, n.Name)
	case *ast.ConstructorMember:
		fmt.Printf("%sConstructorMember %s\n", pad, n.Name)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}
