// Package token defines the lexical token vocabulary shared by the lexer and parser.
package token

import "fmt"

// Type identifies the lexical class of a Token.
type Type int

// Token type constants, organized by category.
const (
	ILLEGAL Type = iota // unexpected character
	EOF                 // end of file sentinel

	// Identifiers and literals
	IDENT  // identifiers: x, MyClass, _field
	INT    // integer literals: 123, 0xFF, 0b1010
	FLOAT  // floating point literals: 1.5, 1.5e10, 1.5f
	STRING // string literals: "hello", @"verbatim", $"interpolated"
	CHAR   // character literals: 'a', '\n'

	literalEnd // marker, not a real token kind

	// Boolean / null keywords
	TRUE
	FALSE
	NULL

	// Control flow keywords
	IF
	ELSE
	SWITCH
	CASE
	DEFAULT
	WHILE
	DO
	FOR
	FOREACH
	IN
	BREAK
	CONTINUE
	RETURN
	GOTO
	THROW
	TRY
	CATCH
	FINALLY
	YIELD
	LOCK
	USING
	FIXED
	CHECKED
	UNCHECKED
	UNSAFE
	REF
	OUT
	PARAMS

	// Declaration / type keywords
	CLASS
	STRUCT
	INTERFACE
	ENUM
	DELEGATE
	NAMESPACE
	EVENT
	OPERATOR
	IMPLICIT
	EXPLICIT
	THIS
	BASE
	NEW
	TYPEOF
	SIZEOF
	STACKALLOC
	VAR
	GLOBAL
	PARTIAL
	WHERE
	FROM
	SELECT
	GROUP
	INTO
	ORDERBY
	JOIN
	LET
	ASCENDING
	DESCENDING
	ON
	EQUALS
	BY
	ADD
	REMOVE
	GET
	SET

	// Built-in type keywords
	BOOL
	BYTE
	SBYTE
	SHORT
	USHORT
	INT_KW
	UINT
	LONG
	ULONG
	CHAR_KW
	FLOAT_KW
	DOUBLE
	DECIMAL
	STRING_KW
	OBJECT_KW
	VOID
	DYNAMIC

	// Modifier keywords
	ABSTRACT
	CONST
	EXTERN
	INTERNAL
	OVERRIDE
	PRIVATE
	PROTECTED
	PUBLIC
	READONLY
	SEALED
	STATIC
	VIRTUAL
	VOLATILE

	// Type-test keywords
	IS
	AS

	// Punctuation / operators
	ASSIGN     // =
	PLUS       // +
	MINUS      // -
	ASTERISK   // *
	SLASH      // /
	PERCENT    // %
	BANG       // !
	TILDE      // ~
	AMP        // &
	PIPE       // |
	CARET      // ^
	LSHIFT     // <<
	RSHIFT     // >>
	LT         // <
	GT         // >
	LE         // <=
	GE         // >=
	EQ         // ==
	NE         // !=
	ANDAND     // &&
	OROR       // ||
	QUESTION   // ?
	QQUESTION  // ??
	INCR       // ++
	DECR       // --
	ARROW      // =>
	PTRARROW   // ->
	DOT        // .
	COMMA      // ,
	COLON      // :
	COLONCOLON // :: (unused by grammar but reserved)
	SEMICOLON  // ;
	LPAREN     // (
	RPAREN     // )
	LBRACE     // {
	RBRACE     // }
	LBRACK     // [
	RBRACK     // ]
	AT         // @ (verbatim string prefix)

	PLUS_ASSIGN     // +=
	MINUS_ASSIGN    // -=
	STAR_ASSIGN     // *=
	SLASH_ASSIGN    // /=
	PERCENT_ASSIGN  // %=
	AMP_ASSIGN      // &=
	PIPE_ASSIGN     // |=
	CARET_ASSIGN    // ^=
	LSHIFT_ASSIGN   // <<=
	RSHIFT_ASSIGN   // >>=
	QQUESTION_ASSIGN // ??=

	// Non-code tokens, emitted only when the lexer is configured to preserve them.
	LINE_COMMENT
	BLOCK_COMMENT
	PREPROCESSOR
)

var typeNames = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", STRING: "STRING", CHAR: "CHAR",
	TRUE: "true", FALSE: "false", NULL: "null",
	IF: "if", ELSE: "else", SWITCH: "switch", CASE: "case", DEFAULT: "default",
	WHILE: "while", DO: "do", FOR: "for", FOREACH: "foreach", IN: "in",
	BREAK: "break", CONTINUE: "continue", RETURN: "return", GOTO: "goto",
	THROW: "throw", TRY: "try", CATCH: "catch", FINALLY: "finally", YIELD: "yield",
	LOCK: "lock", USING: "using", FIXED: "fixed", CHECKED: "checked", UNCHECKED: "unchecked",
	UNSAFE: "unsafe", REF: "ref", OUT: "out", PARAMS: "params", CLASS: "class", STRUCT: "struct", INTERFACE: "interface",
	ENUM: "enum", DELEGATE: "delegate", NAMESPACE: "namespace", EVENT: "event",
	OPERATOR: "operator", IMPLICIT: "implicit", EXPLICIT: "explicit", THIS: "this",
	BASE: "base", NEW: "new", TYPEOF: "typeof", SIZEOF: "sizeof",
	STACKALLOC: "stackalloc", VAR: "var", GLOBAL: "global", PARTIAL: "partial",
	WHERE: "where", FROM: "from", SELECT: "select", GROUP: "group", INTO: "into",
	ORDERBY: "orderby", JOIN: "join", LET: "let", ASCENDING: "ascending",
	DESCENDING: "descending", ON: "on", EQUALS: "equals", BY: "by",
	ADD: "add", REMOVE: "remove", GET: "get", SET: "set",
	BOOL: "bool", BYTE: "byte", SBYTE: "sbyte", SHORT: "short", USHORT: "ushort",
	INT_KW: "int", UINT: "uint", LONG: "long", ULONG: "ulong", CHAR_KW: "char",
	FLOAT_KW: "float", DOUBLE: "double", DECIMAL: "decimal", STRING_KW: "string",
	OBJECT_KW: "object", VOID: "void", DYNAMIC: "dynamic",
	ABSTRACT: "abstract", CONST: "const", EXTERN: "extern", INTERNAL: "internal",
	OVERRIDE: "override", PRIVATE: "private", PROTECTED: "protected", PUBLIC: "public",
	READONLY: "readonly", SEALED: "sealed", STATIC: "static", VIRTUAL: "virtual",
	VOLATILE: "volatile", IS: "is", AS: "as",
	ASSIGN: "=", PLUS: "+", MINUS: "-", ASTERISK: "*", SLASH: "/", PERCENT: "%",
	BANG: "!", TILDE: "~", AMP: "&", PIPE: "|", CARET: "^", LSHIFT: "<<", RSHIFT: ">>",
	LT: "<", GT: ">", LE: "<=", GE: ">=", EQ: "==", NE: "!=", ANDAND: "&&", OROR: "||",
	QUESTION: "?", QQUESTION: "??", INCR: "++", DECR: "--", ARROW: "=>", PTRARROW: "->",
	DOT: ".", COMMA: ",", COLON: ":", COLONCOLON: "::", SEMICOLON: ";",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACK: "[", RBRACK: "]", AT: "@",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", SLASH_ASSIGN: "/=",
	PERCENT_ASSIGN: "%=", AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=",
	LSHIFT_ASSIGN: "<<=", RSHIFT_ASSIGN: ">>=", QQUESTION_ASSIGN: "??=",
	LINE_COMMENT: "LINE_COMMENT", BLOCK_COMMENT: "BLOCK_COMMENT", PREPROCESSOR: "PREPROCESSOR",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsLiteral reports whether t is one of the literal token kinds.
func (t Type) IsLiteral() bool {
	return t > ILLEGAL && t < literalEnd
}

// keywords maps the lowercase spelling of every reserved word to its Type.
// Contextual keywords (var, partial, yield, from, where, get, set, add,
// remove, async, ...) are looked up the same way; it is the parser's job to
// treat them as identifiers where the grammar allows it.
var keywords = map[string]Type{
	"true": TRUE, "false": FALSE, "null": NULL,
	"if": IF, "else": ELSE, "switch": SWITCH, "case": CASE, "default": DEFAULT,
	"while": WHILE, "do": DO, "for": FOR, "foreach": FOREACH, "in": IN,
	"break": BREAK, "continue": CONTINUE, "return": RETURN, "goto": GOTO,
	"throw": THROW, "try": TRY, "catch": CATCH, "finally": FINALLY, "yield": YIELD,
	"lock": LOCK, "using": USING, "fixed": FIXED, "checked": CHECKED,
	"unchecked": UNCHECKED, "unsafe": UNSAFE, "ref": REF, "out": OUT, "params": PARAMS,
	"class": CLASS, "struct": STRUCT, "interface": INTERFACE, "enum": ENUM,
	"delegate": DELEGATE, "namespace": NAMESPACE, "event": EVENT, "operator": OPERATOR,
	"implicit": IMPLICIT, "explicit": EXPLICIT, "this": THIS, "base": BASE, "new": NEW,
	"typeof": TYPEOF, "sizeof": SIZEOF, "stackalloc": STACKALLOC, "var": VAR,
	"global": GLOBAL, "partial": PARTIAL, "where": WHERE, "from": FROM,
	"select": SELECT, "group": GROUP, "into": INTO, "orderby": ORDERBY, "join": JOIN,
	"let": LET, "ascending": ASCENDING, "descending": DESCENDING,
	"on": ON, "equals": EQUALS, "by": BY,
	"add": ADD, "remove": REMOVE, "get": GET, "set": SET,
	"bool": BOOL, "byte": BYTE, "sbyte": SBYTE, "short": SHORT, "ushort": USHORT,
	"int": INT_KW, "uint": UINT, "long": LONG, "ulong": ULONG, "char": CHAR_KW,
	"float": FLOAT_KW, "double": DOUBLE, "decimal": DECIMAL, "string": STRING_KW,
	"object": OBJECT_KW, "void": VOID, "dynamic": DYNAMIC,
	"abstract": ABSTRACT, "const": CONST, "extern": EXTERN, "internal": INTERNAL,
	"override": OVERRIDE, "private": PRIVATE, "protected": PROTECTED, "public": PUBLIC,
	"readonly": READONLY, "sealed": SEALED, "static": STATIC, "virtual": VIRTUAL,
	"volatile": VOLATILE, "is": IS, "as": AS,
}

// contextualKeywords is the subset of keywords that may also be used as a
// plain identifier depending on position (var, partial, yield, the query
// keywords, the property accessor keywords). The member and statement
// parsers consult this set before committing to a keyword interpretation.
var contextualKeywords = map[Type]bool{
	VAR: true, PARTIAL: true, YIELD: true, FROM: true, SELECT: true, GROUP: true,
	INTO: true, ORDERBY: true, JOIN: true, LET: true, WHERE: true,
	ASCENDING: true, DESCENDING: true, ON: true, EQUALS: true, BY: true,
	ADD: true, REMOVE: true, GET: true, SET: true,
	GLOBAL: true,
}

// IsContextual reports whether t is only conditionally a keyword.
func IsContextual(t Type) bool {
	return contextualKeywords[t]
}

// LookupIdent classifies a scanned identifier: either a reserved word or IDENT.
func LookupIdent(literal string) Type {
	if tt, ok := keywords[literal]; ok {
		return tt
	}
	return IDENT
}

// Position is a 1-based line/column plus a 0-based byte offset into the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit: its kind, the exact source text it spans,
// and the position of its first rune.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// End returns the position one rune past the end of the token.
func (t Token) End() Position {
	end := t.Pos
	end.Column += len([]rune(t.Literal))
	end.Offset += len(t.Literal)
	return end
}

// Length returns the rune length of the token's literal text.
func (t Token) Length() int {
	return len([]rune(t.Literal))
}

func NewToken(t Type, literal string, pos Position) Token {
	return Token{Type: t, Literal: literal, Pos: pos}
}
