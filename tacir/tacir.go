// Package tacir defines the three-address-code IR of §3 TAC: a flat,
// totally-ordered instruction list where every destination is a fresh
// temporary, assigned exactly once.
package tacir

import "minicc.dev/minicc/ast"

// Program wraps the single lowered function.
type Program struct {
	Fn Function
}

// Function is a flat instruction list; the final instruction along any
// path is Return (§3 TAC invariant).
type Function struct {
	Name string
	Body []Instruction
}

// Instruction is one of Return, Unary or Binary.
type Instruction interface{ instructionNode() }

// Return ends the function, yielding Val.
type Return struct {
	Val Value
}

func (Return) instructionNode() {}

// Unary computes Dst = op(Src). Dst is always a fresh Var.
type Unary struct {
	Op       ast.UnaryOp
	Src, Dst Value
}

func (Unary) instructionNode() {}

// Binary computes Dst = Left op Right. Dst is always a fresh Var.
type Binary struct {
	Op          ast.BinaryOp
	Left, Right Value
	Dst         Value
}

func (Binary) instructionNode() {}

// Value is either a literal Constant or a named Var.
type Value interface{ valueNode() }

// Constant is an immediate value carried straight through from the AST.
type Constant struct {
	Value int32
}

func (Constant) valueNode() {}

// Var is a temporary name; every Var used as a source was defined as some
// earlier instruction's Dst (§8 property 3, TAC SSA).
type Var struct {
	Name string
}

func (Var) valueNode() {}
