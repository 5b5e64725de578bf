package parser

import (
	"github.com/csparse/csparse/internal/ast"
	"github.com/csparse/csparse/internal/token"
)

// unaryOverloadableOps and binaryOverloadableOps are the sets of token
// spellings valid after the `operator` keyword in an operator-overload
// declaration, grouped by arity.
var unaryOverloadableOps = map[token.Type]bool{
	token.PLUS: true, token.MINUS: true, token.BANG: true, token.TILDE: true,
	token.INCR: true, token.DECR: true, token.TRUE: true, token.FALSE: true,
}

var binaryOverloadableOps = map[token.Type]bool{
	token.PLUS: true, token.MINUS: true, token.ASTERISK: true, token.SLASH: true,
	token.PERCENT: true, token.AMP: true, token.PIPE: true, token.CARET: true,
	token.LSHIFT: true, token.RSHIFT: true, token.EQ: true, token.NE: true,
	token.GT: true, token.LT: true, token.GE: true, token.LE: true,
}

// assignmentOps maps every assignment-operator token to its source spelling,
// used when building an ast.AssignmentExpr.
var assignmentOps = map[token.Type]string{
	token.ASSIGN: "=", token.PLUS_ASSIGN: "+=", token.MINUS_ASSIGN: "-=",
	token.STAR_ASSIGN: "*=", token.SLASH_ASSIGN: "/=", token.PERCENT_ASSIGN: "%=",
	token.AMP_ASSIGN: "&=", token.PIPE_ASSIGN: "|=", token.CARET_ASSIGN: "^=",
	token.LSHIFT_ASSIGN: "<<=", token.RSHIFT_ASSIGN: ">>=",
	token.QQUESTION_ASSIGN: "??=",
}

// modifierKeywords maps every modifier-keyword token to its ast.Modifiers bit.
var modifierKeywords = map[token.Type]ast.Modifiers{
	token.ABSTRACT: ast.ModAbstract, token.CONST: ast.ModConst, token.EXTERN: ast.ModExtern,
	token.INTERNAL: ast.ModInternal, token.NEW: ast.ModNew, token.OVERRIDE: ast.ModOverride,
	token.PARTIAL: ast.ModPartial, token.PRIVATE: ast.ModPrivate, token.PROTECTED: ast.ModProtected,
	token.PUBLIC: ast.ModPublic, token.READONLY: ast.ModReadonly, token.SEALED: ast.ModSealed,
	token.STATIC: ast.ModStatic, token.UNSAFE: ast.ModUnsafe, token.VIRTUAL: ast.ModVirtual,
	token.VOLATILE: ast.ModVolatile,
}

// attributeTargetKeywords maps the lowercase identifier that may precede ':'
// in an attribute section to the AttributeTarget it names.
var attributeTargetKeywords = map[string]ast.AttributeTarget{
	"assembly": ast.TargetAssembly, "module": ast.TargetModule, "type": ast.TargetType,
	"method": ast.TargetMethod, "property": ast.TargetProperty, "field": ast.TargetField,
	"event": ast.TargetEvent, "param": ast.TargetParam, "return": ast.TargetReturn,
	"typevar": ast.TargetTypeVar,
}

// builtinTypeKeywords is every predefined-type keyword usable directly as a
// TypeRef (`int`, `string`, `object`, ...).
var builtinTypeKeywords = map[token.Type]bool{
	token.BOOL: true, token.BYTE: true, token.SBYTE: true, token.SHORT: true,
	token.USHORT: true, token.INT_KW: true, token.UINT: true, token.LONG: true,
	token.ULONG: true, token.CHAR_KW: true, token.FLOAT_KW: true, token.DOUBLE: true,
	token.DECIMAL: true, token.STRING_KW: true, token.OBJECT_KW: true,
	token.VOID: true, token.DYNAMIC: true,
}

// statementStartKeywords lets the statement parser's panic-mode recovery
// find a plausible resynchronization point without needing a full FOLLOW set.
var statementStartKeywords = map[token.Type]bool{
	token.IF: true, token.SWITCH: true, token.WHILE: true, token.DO: true,
	token.FOR: true, token.FOREACH: true, token.BREAK: true, token.CONTINUE: true,
	token.RETURN: true, token.GOTO: true, token.THROW: true, token.TRY: true,
	token.YIELD: true, token.LOCK: true, token.USING: true, token.FIXED: true,
	token.CHECKED: true, token.UNCHECKED: true, token.UNSAFE: true,
	token.LBRACE: true, token.SEMICOLON: true, token.VAR: true, token.CONST: true,
}
