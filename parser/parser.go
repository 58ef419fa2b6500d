// Package parser implements the recursive-descent, precedence-climbing
// parser of §4.2, consuming a lexer.Stream with one-token lookahead.
package parser

import (
	"strconv"

	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/lexer"
	"minicc.dev/minicc/token"
)

// ----------------------------------------------------------------------------
// Parser

// Parser walks a lexer.Stream with one-token lookahead (Peek) and no
// backtracking, exactly the contract §4.2 pins down. Unlike the teacher's
// goparsec-combinator parsers (pkg/asm, pkg/vm), this one is hand-rolled:
// the precedence-climbing algorithm threads an explicit minPrec parameter
// through recursive calls, a shape combinators don't express directly.
type Parser struct{ stream *lexer.Stream }

// New wraps an already-scanned token stream for parsing.
func New(stream *lexer.Stream) *Parser { return &Parser{stream: stream} }

// Parse runs the grammar's top rule (program) and checks for trailing input.
func Parse(source string) (ast.Program, error) {
	stream, err := lexer.NewStream(source)
	if err != nil {
		return ast.Program{}, err
	}
	return New(stream).ParseProgram()
}

// ParseProgram parses `function` then requires end-of-stream (§4.2).
func (p *Parser) ParseProgram() (ast.Program, error) {
	fn, err := p.parseFunction()
	if err != nil {
		return ast.Program{}, err
	}

	if next := p.stream.Peek(); next.Kind != token.EOF {
		return ast.Program{}, &Error{Kind: UnexpectedToken, Got: next.String()}
	}

	return ast.Program{Fn: fn}, nil
}

// parseFunction parses: "int" Ident "(" "void" ")" "{" statement "}"
func (p *Parser) parseFunction() (ast.FunctionDef, error) {
	if err := p.expect(token.Int); err != nil {
		return ast.FunctionDef{}, err
	}

	name := p.stream.Next()
	if name.Kind != token.Identifier {
		return ast.FunctionDef{}, &Error{Kind: UnexpectedToken, Got: name.String()}
	}

	if err := p.expect(token.LParen); err != nil {
		return ast.FunctionDef{}, err
	}
	if err := p.expect(token.Void); err != nil {
		return ast.FunctionDef{}, err
	}
	if err := p.expect(token.RParen); err != nil {
		return ast.FunctionDef{}, err
	}
	if err := p.expect(token.LBrace); err != nil {
		return ast.FunctionDef{}, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return ast.FunctionDef{}, err
	}

	if err := p.expect(token.RBrace); err != nil {
		return ast.FunctionDef{}, err
	}

	return ast.FunctionDef{Name: name.Lexeme, Body: body}, nil
}

// parseStatement parses: "return" expression ";"
func (p *Parser) parseStatement() (ast.Statement, error) {
	if err := p.expect(token.Return); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	return ast.Return{Expr: expr}, nil
}

// parseExpression implements precedence climbing (§4.2 Implementation
// contract): parse one factor, then while the lookahead is a binary
// operator with precedence >= minPrec, consume it and recurse into the
// right operand with minPrec = prec+1, folding left as we go. That
// re-entry bound is what forces left-associativity at equal precedence.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		next := p.stream.Peek()
		if !isBinaryOperator(next.Kind) {
			break
		}
		prec := precedence[next.Kind]
		if prec < minPrec {
			break
		}

		p.stream.Next()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}

		left = ast.Binary{Op: binaryOps[next.Kind], Left: left, Right: right}
	}

	return left, nil
}

// parseFactor parses: Constant | ("-" | "~") factor | "(" expression ")"
//
// Unary operators recurse into factor, not expression, so that "-1 + 2"
// parses as (-1) + 2 rather than -(1 + 2) (§4.2).
func (p *Parser) parseFactor() (ast.Expression, error) {
	next := p.stream.Peek()

	switch next.Kind {
	case token.Constant:
		p.stream.Next()
		n, err := strconv.ParseInt(next.Lexeme, 10, 32)
		if err != nil {
			// The lexer already validated i32-fitness; this would be a bug.
			return nil, &Error{Kind: UnexpectedToken, Got: next.String()}
		}
		return ast.Constant{Value: int32(n)}, nil

	case token.Minus:
		p.stream.Next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: ast.Negate, Expr: operand}, nil

	case token.Complement:
		p.stream.Next()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: ast.Complement, Expr: operand}, nil

	case token.LParen:
		p.stream.Next()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case token.EOF:
		return nil, &Error{Kind: UnexpectedEOF}

	default:
		return nil, &Error{Kind: UnexpectedToken, Got: next.String()}
	}
}

// expect consumes the next token if it matches kind, else raises the
// appropriate parser error.
func (p *Parser) expect(kind token.Kind) error {
	next := p.stream.Next()
	if next.Kind == kind {
		return nil
	}
	if next.Kind == token.EOF {
		return &Error{Kind: UnexpectedEOF}
	}
	return &Error{Kind: UnexpectedToken, Got: next.String()}
}
