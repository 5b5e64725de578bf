package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/csparse/csparse/internal/lexer"
	"github.com/csparse/csparse/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpr       string
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the resulting tokens",
	Long: `Tokenize source code and print the resulting token stream.

If no file is provided, reads from stdin. Use -e to tokenize a single
expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(lexExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input, lexer.WithPreserveComments(false), lexer.WithPreserveDirectives(false))

	errorCount := 0
	for {
		tok := l.NextToken()
		if lexOnlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}
		printToken(tok)
		if tok.Type == token.ILLEGAL {
			errorCount++
		}
		if tok.Type == token.EOF {
			break
		}
	}
	for _, e := range l.Errors() {
		fmt.Fprintf(os.Stderr, "lex error at %s: %s\n", e.Pos, e.Message)
	}
	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-12s] %q", tok.Type, tok.Literal)
	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(output)
}

func readInput(expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
