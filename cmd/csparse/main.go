// Command csparse is a CLI driver around the parser: it reads source files
// from disk (or stdin), and prints tokens, the parsed AST, or regenerated
// source. The parser itself is independent of this command.
package main

import (
	"os"

	"github.com/csparse/csparse/cmd/csparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
