package lexer

import (
	"testing"

	"github.com/csparse/csparse/internal/token"
)

// allTokens drains l until EOF, inclusive, returning every emitted token.
func allTokens(l *Lexer) []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func typesOf(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func assertTypes(t *testing.T, toks []token.Token, want ...token.Type) {
	t.Helper()
	got := typesOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	l := New("class Class CLASS")
	toks := allTokens(l)
	assertTypes(t, toks, token.CLASS, token.IDENT, token.IDENT, token.EOF)
}

func TestIdentifierWithUnderscoreAndDigits(t *testing.T) {
	l := New("_foo1 Bar_2 éxample")
	toks := allTokens(l)
	assertTypes(t, toks, token.IDENT, token.IDENT, token.IDENT, token.EOF)
	if toks[0].Literal != "_foo1" {
		t.Errorf("got literal %q", toks[0].Literal)
	}
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		src string
	}{
		{"0"},
		{"42"},
		{"1_000_000"},
		{"0xFF"},
		{"0xDEAD_BEEF"},
		{"0b1010"},
		{"10u"},
		{"10L"},
		{"10UL"},
		{"10LU"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l := New(tt.src)
			toks := allTokens(l)
			assertTypes(t, toks, token.INT, token.EOF)
			if toks[0].Literal != tt.src {
				t.Errorf("got literal %q, want %q", toks[0].Literal, tt.src)
			}
		})
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []string{"1.5", "0.5", "1e10", "1.5e-3", "1.5f", "1.5d", "1.5m", "3E+2"}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			toks := allTokens(New(src))
			assertTypes(t, toks, token.FLOAT, token.EOF)
		})
	}
}

func TestIntegerDotMemberAccessIsNotAFloat(t *testing.T) {
	// "1.ToString()" must lex as INT DOT IDENT, not a malformed float.
	toks := allTokens(New("1.ToString()"))
	assertTypes(t, toks, token.INT, token.DOT, token.IDENT, token.LPAREN, token.RPAREN, token.EOF)
}

func TestStringLiteral(t *testing.T) {
	toks := allTokens(New(`"hello\nworld"`))
	assertTypes(t, toks, token.STRING, token.EOF)
	if toks[0].Literal != `"hello\nworld"` {
		t.Errorf("got literal %q", toks[0].Literal)
	}
}

func TestVerbatimStringWithEscapedQuote(t *testing.T) {
	toks := allTokens(New(`@"a ""quoted"" path\no-escape"`))
	assertTypes(t, toks, token.STRING, token.EOF)
	if toks[0].Literal != `@"a ""quoted"" path\no-escape"` {
		t.Errorf("got literal %q", toks[0].Literal)
	}
}

func TestInterpolatedStringLexedAsString(t *testing.T) {
	toks := allTokens(New(`$"value is {x}"`))
	assertTypes(t, toks, token.STRING, token.EOF)
}

func TestUnterminatedStringProducesLexError(t *testing.T) {
	l := New("\"oops\nafter")
	_ = allTokens(l)
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for the unterminated string")
	}
}

func TestCharLiteral(t *testing.T) {
	tests := []string{`'a'`, `'\n'`, `'\''`, `'\\'`}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			toks := allTokens(New(src))
			assertTypes(t, toks, token.CHAR, token.EOF)
			if toks[0].Literal != src {
				t.Errorf("got literal %q, want %q", toks[0].Literal, src)
			}
		})
	}
}

func TestUnterminatedCharProducesLexError(t *testing.T) {
	l := New("'a")
	_ = allTokens(l)
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for the unterminated char literal")
	}
}

func TestLineCommentSkippedByDefault(t *testing.T) {
	toks := allTokens(New("a // trailing comment\nb"))
	assertTypes(t, toks, token.IDENT, token.IDENT, token.EOF)
}

func TestBlockCommentSkippedByDefault(t *testing.T) {
	toks := allTokens(New("a /* spans\nlines */ b"))
	assertTypes(t, toks, token.IDENT, token.IDENT, token.EOF)
}

func TestPreserveComments(t *testing.T) {
	l := New("a // c\nb", WithPreserveComments(true))
	toks := allTokens(l)
	assertTypes(t, toks, token.IDENT, token.LINE_COMMENT, token.IDENT, token.EOF)
}

func TestMultiCharOperatorsLongestMatchFirst(t *testing.T) {
	tests := []struct {
		src  string
		want token.Type
	}{
		{"??=", token.QQUESTION_ASSIGN},
		{"<<=", token.LSHIFT_ASSIGN},
		{">>=", token.RSHIFT_ASSIGN},
		{"=>", token.ARROW},
		{"->", token.PTRARROW},
		{"::", token.COLONCOLON},
		{"??", token.QQUESTION},
		{"&&", token.ANDAND},
		{"||", token.OROR},
		{"==", token.EQ},
		{"!=", token.NE},
		{"<=", token.LE},
		{">=", token.GE},
		{"<<", token.LSHIFT},
		{">>", token.RSHIFT},
		{"++", token.INCR},
		{"--", token.DECR},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := allTokens(New(tt.src))
			assertTypes(t, toks, tt.want, token.EOF)
		})
	}
}

func TestSingleCharOperatorsAndPunctuation(t *testing.T) {
	toks := allTokens(New("=+-*/%!~&|^<>?.,:;(){}[]@"))
	assertTypes(t, toks,
		token.ASSIGN, token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.BANG, token.TILDE, token.AMP, token.PIPE, token.CARET, token.LT, token.GT,
		token.QUESTION, token.DOT, token.COMMA, token.COLON, token.SEMICOLON,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACK, token.RBRACK,
		token.AT, token.EOF)
}

func TestIllegalCharacterIsReportedAndRecovered(t *testing.T) {
	l := New("a ` b")
	toks := allTokens(l)
	assertTypes(t, toks, token.IDENT, token.ILLEGAL, token.IDENT, token.EOF)
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}

func TestBOMIsStripped(t *testing.T) {
	toks := allTokens(New(string(rune(0xFEFF)) + "class C {}"))
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
	if toks[0].Pos.Offset != 0 {
		t.Errorf("expected first token at offset 0, got %d", toks[0].Pos.Offset)
	}
}

func TestPositionTracking(t *testing.T) {
	toks := allTokens(New("a\nbb c"))
	assertTypes(t, toks, token.IDENT, token.IDENT, token.IDENT, token.EOF)
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("a: got %s", toks[0].Pos)
	}
	if toks[1].Pos.Line != 2 || toks[1].Pos.Column != 1 {
		t.Errorf("bb: got %s", toks[1].Pos)
	}
	if toks[2].Pos.Line != 2 || toks[2].Pos.Column != 4 {
		t.Errorf("c: got %s", toks[2].Pos)
	}
}

func TestDefaultKeywordIsASingleTokenKind(t *testing.T) {
	// "default" lexes identically whether it appears as a switch label or as
	// an expression; the parser is responsible for disambiguating by
	// position, not the lexer.
	toks := allTokens(New("default default(int)"))
	assertTypes(t, toks,
		token.DEFAULT, token.DEFAULT, token.LPAREN, token.INT_KW, token.RPAREN, token.EOF)
}

func TestDirectiveDefineAndIfdef(t *testing.T) {
	src := "#define FOO\n#if FOO\nclass A {}\n#else\nclass B {}\n#endif\n"
	toks := allTokens(New(src))
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
	if toks[1].Literal != "A" {
		t.Errorf("expected the #if FOO branch to be live, got class %q", toks[1].Literal)
	}
}

func TestDirectiveElseBranchWhenUndefined(t *testing.T) {
	src := "#if FOO\nclass A {}\n#else\nclass B {}\n#endif\n"
	toks := allTokens(New(src))
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
	if toks[1].Literal != "B" {
		t.Errorf("expected the #else branch to be live, got class %q", toks[1].Literal)
	}
}

func TestDirectiveElifChain(t *testing.T) {
	src := "#define B\n#if A\nclass X {}\n#elif B\nclass Y {}\n#else\nclass Z {}\n#endif\n"
	toks := allTokens(New(src))
	if toks[1].Literal != "Y" {
		t.Errorf("expected the #elif B branch to be live, got class %q", toks[1].Literal)
	}
}

func TestDirectiveUndef(t *testing.T) {
	src := "#define FOO\n#undef FOO\n#if FOO\nclass A {}\n#else\nclass B {}\n#endif\n"
	toks := allTokens(New(src))
	if toks[1].Literal != "B" {
		t.Errorf("expected FOO to be undefined, got class %q", toks[1].Literal)
	}
}

func TestDirectiveNegationAndBoolOps(t *testing.T) {
	src := "#if !FOO && !BAR\nclass A {}\n#endif\n"
	toks := allTokens(New(src))
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
}

func TestDirectiveRegionIsNoOp(t *testing.T) {
	src := "#region Foo\nclass A {}\n#endregion\n"
	toks := allTokens(New(src))
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
}

func TestDirectivesNotEmittedByDefault(t *testing.T) {
	l := New("#define FOO\nclass A {}\n")
	toks := allTokens(l)
	assertTypes(t, toks, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
}

func TestDirectivesEmittedWhenPreserved(t *testing.T) {
	l := New("#define FOO\nclass A {}\n", WithPreserveDirectives(true))
	toks := allTokens(l)
	assertTypes(t, toks, token.PREPROCESSOR, token.CLASS, token.IDENT, token.LBRACE, token.RBRACE, token.EOF)
}

func TestUnexpectedEndifIsAnError(t *testing.T) {
	l := New("#endif\nclass A {}\n")
	_ = allTokens(l)
	if len(l.Errors()) == 0 {
		t.Fatal("expected an error for an unmatched #endif")
	}
}

func TestWithDefinesSeedsInitialSymbols(t *testing.T) {
	l := New("#if FOO\nclass A {}\n#else\nclass B {}\n#endif\n", WithDefines("FOO"))
	toks := allTokens(l)
	if toks[1].Literal != "A" {
		t.Errorf("expected FOO to be predefined, got class %q", toks[1].Literal)
	}
}
