package cmd

import (
	"fmt"
	"os"

	"github.com/csparse/csparse/internal/parser"
	"github.com/csparse/csparse/internal/printer"
	"github.com/spf13/cobra"
)

var (
	fmtWrite  bool
	fmtIndent int
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Parse source and regenerate it through the pretty-printer",
	Long: `Parse source code into an AST and pretty-print it back to source.

By default fmt writes the result to standard output. If no path is
provided, it reads from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 4, "number of spaces per indentation level")
}

func runFmt(cmd *cobra.Command, args []string) error {
	input, err := readInput("", args)
	if err != nil {
		return err
	}

	p := parser.NewFromSource(input)
	doc, _, perr := p.ParseDocument(p.Cursor())
	if perr != nil {
		return fmt.Errorf("parse error: %s", perr.Error())
	}

	pr := printer.New(printer.Options{IndentStep: spaces(fmtIndent)})
	formatted := pr.Print(doc)

	if fmtWrite && len(args) > 0 {
		return os.WriteFile(args[0], []byte(formatted), 0644)
	}
	fmt.Print(formatted)
	return nil
}

func spaces(n int) string {
	if n <= 0 {
		n = 4
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
