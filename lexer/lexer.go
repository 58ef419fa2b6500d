// Package lexer turns source text into the token alphabet of §3/§4.1: a
// one-token-lookahead stream with no backtracking. Lex scans the whole source
// up front; tokens are not produced lazily, only handed out on demand by
// Stream.
package lexer

import (
	"strconv"

	pc "github.com/prataprc/goparsec"

	"minicc.dev/minicc/token"
)

// ----------------------------------------------------------------------------
// Parser Combinator(s)

// This section defines the Parser Combinator for every lexeme shape in the
// language's alphabet (§4.1's rule list), following the exact recipe the
// teacher's asm/vm parsers use: a named pc.NewAST, an OrdChoice of per-shape
// combinators, wrapped in a ManyUntil(..., pc.End()) that scans the whole
// input in one pass. The combinators only recognize *shapes*; keyword vs.
// identifier disambiguation is deliberately left to Go code in Lex (a lookup
// in token.Keywords) rather than combinator ordering.
var tree = pc.NewAST("lexer", 0)

var (
	pProgram = tree.ManyUntil("tokens", nil, pToken, pc.End())
	pToken   = tree.OrdChoice("token", nil,
		pNumber,
		pIdent,
		pDoubleMinus, pMinus, // order matters: "--" must be tried before "-"
		pLParen, pRParen, pLBrace, pRBrace, pSemicolon,
		pComplement, pPlus, pStar, pSlash, pPercent,
	)
)

var (
	// §4.1: "a run starting with a letter, continuing with letters or
	// digits" — no underscore extension.
	pIdent = pc.Token(`[A-Za-z][A-Za-z0-9]*`, "IDENT")
	// A run of digits optionally followed by letters (§4.1); validity of the
	// resulting lexeme as an i32 decimal constant is checked after scanning.
	pNumber = pc.Token(`[0-9]+[A-Za-z0-9]*`, "NUMBER")

	pLParen    = pc.Atom("(", "(")
	pRParen    = pc.Atom(")", ")")
	pLBrace    = pc.Atom("{", "{")
	pRBrace    = pc.Atom("}", "}")
	pSemicolon = pc.Atom(";", ";")

	pComplement  = pc.Atom("~", "~")
	pDoubleMinus = pc.Atom("--", "--")
	pMinus       = pc.Atom("-", "-")
	pPlus        = pc.Atom("+", "+")
	pStar        = pc.Atom("*", "*")
	pSlash       = pc.Atom("/", "/")
	pPercent     = pc.Atom("%", "%")
)

var punctuation = map[string]token.Kind{
	"(": token.LParen,
	")": token.RParen,
	"{": token.LBrace,
	"}": token.RBrace,
	";": token.Semicolon,
	"~": token.Complement,
	"-": token.Minus,
	"+": token.Plus,
	"*": token.Star,
	"/": token.Slash,
	"%": token.Percent,
}

// Lex scans source in one pass into a flat token slice, terminated by an
// explicit EOF token. It never backtracks: the combinator grammar above
// consumes the longest valid lexeme shape at each position and Go code
// classifies the result.
func Lex(source string) ([]token.Token, error) {
	root, scanner := tree.Parsewith(pProgram, pc.NewScanner([]byte(source)))

	tokens := []token.Token{}

	if root != nil {
		for _, child := range root.GetChildren() {
			value := child.GetValue()

			switch child.GetName() {
			case "IDENT":
				if kind, ok := token.Keywords[value]; ok {
					tokens = append(tokens, token.New(kind))
				} else {
					tokens = append(tokens, token.NewLexeme(token.Identifier, value))
				}
			case "NUMBER":
				if _, err := strconv.ParseInt(value, 10, 32); err != nil {
					return nil, &Error{Kind: InvalidNumber, Lexeme: value}
				}
				tokens = append(tokens, token.NewLexeme(token.Constant, value))
			case "--":
				tokens = append(tokens, token.New(token.DoubleMinus))
			default:
				if kind, ok := punctuation[child.GetName()]; ok {
					tokens = append(tokens, token.New(kind))
				}
			}
		}
	}

	// The combinator grammar above has no catch-all for unrecognized bytes:
	// ManyUntil simply stops matching once no alternative of pToken applies,
	// leaving the returned scanner's cursor sitting on the first offending
	// byte (after skipping any trailing whitespace, since Token/Atom already
	// skip leading whitespace before each match attempt). This closes the
	// gap the teacher's own FromSource leaves open (see its hard-coded
	// `success = true` and TODO).
	scanner, _ = scanner.SkipWS()
	consumed := scanner.GetCursor()
	if consumed < len(source) {
		return nil, &Error{Kind: InvalidCharacter, Char: source[consumed]}
	}

	tokens = append(tokens, token.New(token.EOF))
	return tokens, nil
}
