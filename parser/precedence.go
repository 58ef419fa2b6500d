package parser

import (
	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/token"
)

// Binary operator precedence table (§4.2): higher binds tighter. All
// operators are left-associative; the climbing loop in parseExpression
// enforces that by re-entering with minPrec = prec+1 on the right operand.
var precedence = map[token.Kind]int{
	token.Star:    50,
	token.Slash:   50,
	token.Percent: 50,
	token.Plus:    45,
	token.Minus:   45,
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:    ast.Add,
	token.Minus:   ast.Sub,
	token.Star:    ast.Mul,
	token.Slash:   ast.Div,
	token.Percent: ast.Rem,
}

// isBinaryOperator reports whether kind is one of the five infix operators.
func isBinaryOperator(kind token.Kind) bool {
	_, ok := precedence[kind]
	return ok
}
