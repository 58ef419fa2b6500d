// Package emit renders a legalized asmir.Program as AT&T-syntax x86-64
// assembly text (§4.6, §6). This is the pipeline's last stage: a pure,
// total function over already-legal input — no validation, no errors.
//
// Adapted from the teacher's pkg/vm.CodeGenerator: the same per-instruction
// switch-and-render shape (one GenerateXxx case per operation, assembled
// line by line), retargeted from Hack VM text to AT&T x86 text.
package emit

import (
	"fmt"
	"strings"

	"minicc.dev/minicc/asmir"
)

// Emit renders p as a complete assembly source file (§6).
func Emit(p asmir.Program) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\t.global %s\n", p.Fn.Name)
	fmt.Fprintf(&b, "%s:\n", p.Fn.Name)
	b.WriteString("\tpushq\t%rbp\n")
	b.WriteString("\tmovq\t%rsp, %rbp\n")

	for _, instr := range p.Fn.Body {
		writeInstr(&b, instr)
	}

	b.WriteString("\n\t.section .note.GNU-stack,\"\",@progbits\n")
	return b.String()
}

func writeInstr(b *strings.Builder, instr asmir.Instr) {
	switch i := instr.(type) {
	case asmir.AllocateStack:
		fmt.Fprintf(b, "\tsubq\t$%d, %%rsp\n", i.N)
	case asmir.Mov:
		fmt.Fprintf(b, "\tmovl\t%s, %s\n", operand(i.Src), operand(i.Dst))
	case asmir.Unary:
		fmt.Fprintf(b, "\t%s\t%s\n", unaryMnemonic(i.Op), operand(i.Operand))
	case asmir.Binary:
		fmt.Fprintf(b, "\t%s\t%s, %s\n", binaryMnemonic(i.Op), operand(i.Src), operand(i.Dst))
	case asmir.Idiv:
		fmt.Fprintf(b, "\tidivl\t%s\n", operand(i.Operand))
	case asmir.Cdq:
		b.WriteString("\tcdq\n")
	case asmir.Ret:
		b.WriteString("\tmovq\t%rbp, %rsp\n")
		b.WriteString("\tpopq\t%rbp\n")
		b.WriteString("\tret\n")
	default:
		panic(fmt.Sprintf("emit: unrecognized instruction %T", instr))
	}
}

// operand renders an operand per §4.6: Imm(n) -> $n, Reg(R) -> %eXX/%rXXd,
// Stack(off) -> -off(%rbp). A Pseudo here is a programming error: every
// pass upstream of emit must have eliminated it.
func operand(op asmir.Operand) string {
	switch o := op.(type) {
	case asmir.Imm:
		return fmt.Sprintf("$%d", o.Value)
	case asmir.Reg:
		return registerName(o.Register)
	case asmir.Stack:
		return fmt.Sprintf("-%d(%%rbp)", o.Offset)
	case asmir.Pseudo:
		panic(fmt.Sprintf("emit: unreplaced pseudo %q reached the emitter", o.Name))
	default:
		panic(fmt.Sprintf("emit: unrecognized operand %T", op))
	}
}

func registerName(r asmir.Register) string {
	switch r {
	case asmir.AX:
		return "%eax"
	case asmir.DX:
		return "%edx"
	case asmir.R10:
		return "%r10d"
	case asmir.R11:
		return "%r11d"
	default:
		panic(fmt.Sprintf("emit: unrecognized register %v", r))
	}
}

func unaryMnemonic(op asmir.UnaryOp) string {
	switch op {
	case asmir.Neg:
		return "negl"
	case asmir.Not:
		return "notl"
	default:
		panic(fmt.Sprintf("emit: unrecognized unary op %v", op))
	}
}

func binaryMnemonic(op asmir.BinaryOp) string {
	switch op {
	case asmir.Add:
		return "addl"
	case asmir.Sub:
		return "subl"
	case asmir.Mul:
		return "imull"
	default:
		panic(fmt.Sprintf("emit: unrecognized binary op %v", op))
	}
}
