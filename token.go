package main

import (
	"fmt"

	"github.com/navm-lang/c0c/internal/fileinput"
)

// TokenKind enumerates every lexical category the scanner can produce.
//
// Grounded on original_source/src/lexical/tokentype.py's TokenType enum.
type TokenKind int

const (
	EOFToken TokenKind = iota

	FnKw
	LetKw
	ConstKw
	AsKw
	WhileKw
	IfKw
	ElseKw
	ReturnKw
	BreakKw
	ContinueKw

	UintLiteral
	DblLiteral
	StrLiteral

	Plus
	Minus
	Mul
	Div
	Assign
	Eq
	Neq
	Lt
	Gt
	Le
	Ge
	LParen
	RParen
	LBrace
	RBrace
	Arrow
	Comma
	Colon
	Semicolon

	VoidTypeSpec
	IntTypeSpec
	DblTypeSpec
	Identifier
)

var tokenKindNames = map[TokenKind]string{
	EOFToken:     "EOF",
	FnKw:         "fn",
	LetKw:        "let",
	ConstKw:      "const",
	AsKw:         "as",
	WhileKw:      "while",
	IfKw:         "if",
	ElseKw:       "else",
	ReturnKw:     "return",
	BreakKw:      "break",
	ContinueKw:   "continue",
	UintLiteral:  "integer literal",
	DblLiteral:   "double literal",
	StrLiteral:   "string literal",
	Plus:         "+",
	Minus:        "-",
	Mul:          "*",
	Div:          "/",
	Assign:       "=",
	Eq:           "==",
	Neq:          "!=",
	Lt:           "<",
	Gt:           ">",
	Le:           "<=",
	Ge:           ">=",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	Arrow:        "->",
	Comma:        ",",
	Colon:        ":",
	Semicolon:    ";",
	VoidTypeSpec: "void",
	IntTypeSpec:  "int",
	DblTypeSpec:  "double",
	Identifier:   "identifier",
}

func (tk TokenKind) String() string {
	if s, ok := tokenKindNames[tk]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(tk))
}

// keywords and type specifiers recognized ahead of the identifier rule;
// keyword lookup takes precedence by table membership, per spec.md §4.1.
// Operators are not in this table: scanOperator recognizes them.
var keywordTable = map[string]TokenKind{
	"fn":       FnKw,
	"let":      LetKw,
	"const":    ConstKw,
	"as":       AsKw,
	"while":    WhileKw,
	"if":       IfKw,
	"else":     ElseKw,
	"return":   ReturnKw,
	"break":    BreakKw,
	"continue": ContinueKw,
	"void":     VoidTypeSpec,
	"int":      IntTypeSpec,
	"double":   DblTypeSpec,
}

// Token is a tagged record carrying its kind and, per spec.md §3, a kind-
// dependent value: the raw lexeme for keywords/operators/identifiers, the
// parsed value for UINT_LITERAL/DBL_LITERAL, and a string-pool index for
// STR_LITERAL.
type Token struct {
	Kind TokenKind
	Lit  string // lexeme, for keywords/operators/identifiers and diagnostics

	UintVal uint64
	DblVal  float64
	StrID   int // index into the string literal pool

	Loc fileinput.Location
}

func (t Token) String() string {
	switch t.Kind {
	case UintLiteral:
		return fmt.Sprintf("%d", t.UintVal)
	case DblLiteral:
		return fmt.Sprintf("%g", t.DblVal)
	case StrLiteral:
		return fmt.Sprintf("str#%d", t.StrID)
	case Identifier:
		return t.Lit
	default:
		return t.Kind.String()
	}
}
