package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "csparse",
	Short: "A recursive-descent parser for a C#-family language",
	Long: `csparse reads a C#-family (through roughly version 4) compilation unit
and exposes its lexer and parser as a command-line tool:

  - lex:   tokenize source and print the raw token stream
  - parse: parse source and print the AST (or a diagnostic on failure)
  - fmt:   parse then regenerate source via the pretty-printer

Partial results are shown on parse failure, since the parser recovers a
best-effort subtree alongside every syntax error it reports.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
