package asmir

import (
	"fmt"

	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/tacir"
)

// ----------------------------------------------------------------------------
// Assembly Selection

// Selector takes a tacir.Program and produces its asmir.Program counterpart,
// mapping each TAC instruction to the short instruction sequence of §4.4's
// table. Adapted from the teacher's asm.Lowerer.Lower/HandleXxx shape (a
// switch over instruction kind, one Handle helper per kind) — same DFS-over-
// a-flat-list structure, new target mnemonics.
type Selector struct{ program tacir.Program }

// NewSelector wraps a tacir.Program for selection.
func NewSelector(p tacir.Program) Selector { return Selector{program: p} }

// Select runs assembly selection (§4.4). After this pass only Imm, Reg and
// Pseudo operands appear — never Stack, never AllocateStack.
func Select(p tacir.Program) Program {
	return NewSelector(p).Select()
}

func (s Selector) Select() Program {
	body := []Instr{}

	for _, instr := range s.program.Fn.Body {
		switch i := instr.(type) {
		case tacir.Return:
			body = append(body, s.handleReturn(i)...)
		case tacir.Unary:
			body = append(body, s.handleUnary(i)...)
		case tacir.Binary:
			body = append(body, s.handleBinary(i)...)
		default:
			panic(fmt.Sprintf("asmir: unrecognized tac instruction %T", instr))
		}
	}

	return Program{Fn: Function{Name: s.program.Fn.Name, Body: body}}
}

// handleReturn: Return(v) -> Mov{v->AX}; Ret
func (Selector) handleReturn(i tacir.Return) []Instr {
	return []Instr{
		Mov{Src: operand(i.Val), Dst: Reg{Register: AX}},
		Ret{},
	}
}

// handleUnary: Unary{op,src,dst} -> Mov{src->dst}; Unary{op',dst}
func (Selector) handleUnary(i tacir.Unary) []Instr {
	dst := operand(i.Dst)
	return []Instr{
		Mov{Src: operand(i.Src), Dst: dst},
		Unary{Op: unaryOp(i.Op), Operand: dst},
	}
}

// handleBinary dispatches Add/Sub/Mul to the destructive two-operand form
// and Div/Rem to the Cdq+Idiv sequence that reads its result from AX/DX.
func (Selector) handleBinary(i tacir.Binary) []Instr {
	switch i.Op {
	case ast.Add, ast.Sub, ast.Mul:
		dst := operand(i.Dst)
		return []Instr{
			Mov{Src: operand(i.Left), Dst: dst},
			Binary{Op: binaryOp(i.Op), Src: operand(i.Right), Dst: dst},
		}
	case ast.Div:
		return []Instr{
			Mov{Src: operand(i.Left), Dst: Reg{Register: AX}},
			Cdq{},
			Idiv{Operand: operand(i.Right)},
			Mov{Src: Reg{Register: AX}, Dst: operand(i.Dst)},
		}
	case ast.Rem:
		return []Instr{
			Mov{Src: operand(i.Left), Dst: Reg{Register: AX}},
			Cdq{},
			Idiv{Operand: operand(i.Right)},
			Mov{Src: Reg{Register: DX}, Dst: operand(i.Dst)},
		}
	default:
		panic(fmt.Sprintf("asmir: unrecognized binary op %v", i.Op))
	}
}

// operand translates a tacir.Value to its abstract-assembly counterpart:
// constants become immediates, every Var becomes a Pseudo (materialized into
// a stack slot later by regalloc).
func operand(v tacir.Value) Operand {
	switch val := v.(type) {
	case tacir.Constant:
		return Imm{Value: val.Value}
	case tacir.Var:
		return Pseudo{Name: val.Name}
	default:
		panic(fmt.Sprintf("asmir: unrecognized tac value %T", v))
	}
}

func unaryOp(op ast.UnaryOp) UnaryOp {
	switch op {
	case ast.Negate:
		return Neg
	case ast.Complement:
		return Not
	default:
		panic(fmt.Sprintf("asmir: unrecognized unary op %v", op))
	}
}

func binaryOp(op ast.BinaryOp) BinaryOp {
	switch op {
	case ast.Add:
		return Add
	case ast.Sub:
		return Sub
	case ast.Mul:
		return Mul
	default:
		panic(fmt.Sprintf("asmir: unrecognized binary op %v", op))
	}
}
