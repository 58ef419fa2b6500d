// Package token defines the lexeme alphabet produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// ----------------------------------------------------------------------------
// General information

// A Token is a tagged value: every lexeme recognized by the lexer carries a
// Kind (the tag) plus, for Identifier and Constant, the literal text it was
// scanned from. Punctuation and operator tokens carry no extra payload since
// their Kind already identifies them uniquely.

// Kind enumerates every token tag in the language's alphabet.
type Kind int

const (
	// Literals and identifiers
	Identifier Kind = iota
	Constant

	// Keywords
	Int
	Void
	Return

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	Semicolon

	// Operators
	Complement  // ~
	Minus       // -
	DoubleMinus // -- (reserved, dead: no stage accepts it today)
	Plus        // +
	Star        // *
	Slash       // /
	Percent     // %

	EOF
)

var names = map[Kind]string{
	Identifier:  "Identifier",
	Constant:    "Constant",
	Int:         "int",
	Void:        "void",
	Return:      "return",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	Semicolon:   ";",
	Complement:  "~",
	Minus:       "-",
	DoubleMinus: "--",
	Plus:        "+",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	EOF:         "EOF",
}

// Keywords maps a scanned identifier lexeme to its keyword Kind, if any.
// Disambiguation happens here, in Go code, after the lexer has scanned the
// widest possible identifier-shaped run — not by ordering the lexer's
// combinator grammar — so that a keyword-prefixed identifier (e.g. "intMax")
// is never misread as the keyword followed by a stray suffix.
var Keywords = map[string]Kind{
	"int":    Int,
	"void":   Void,
	"return": Return,
}

// Token is the lexer's unit of output: a Kind plus, where relevant, the
// exact lexeme it was scanned from.
type Token struct {
	Kind   Kind
	Lexeme string // carried verbatim for Identifier and Constant
}

func New(kind Kind) Token { return Token{Kind: kind} }

func NewLexeme(kind Kind, lexeme string) Token { return Token{Kind: kind, Lexeme: lexeme} }

// String renders a Token for error messages and debug dumps.
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", t.Lexeme)
	case Constant:
		return fmt.Sprintf("Constant(%s)", t.Lexeme)
	default:
		if name, ok := names[t.Kind]; ok {
			return name
		}
		return fmt.Sprintf("Kind(%d)", t.Kind)
	}
}
