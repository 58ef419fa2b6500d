package emit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minicc.dev/minicc/asmir"
	"minicc.dev/minicc/emit"
)

func TestEmitReturnConstant(t *testing.T) {
	// S1: return 2; frame size 0.
	program := asmir.Program{Fn: asmir.Function{Name: "main", Body: []asmir.Instr{
		asmir.AllocateStack{N: 0},
		asmir.Mov{Src: asmir.Imm{Value: 2}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Ret{},
	}}}

	want := "\t.global main\n" +
		"main:\n" +
		"\tpushq\t%rbp\n" +
		"\tmovq\t%rsp, %rbp\n" +
		"\tsubq\t$0, %rsp\n" +
		"\tmovl\t$2, %eax\n" +
		"\tmovq\t%rbp, %rsp\n" +
		"\tpopq\t%rbp\n" +
		"\tret\n" +
		"\n\t.section .note.GNU-stack,\"\",@progbits\n"

	assert.Equal(t, want, emit.Emit(program))
}

func TestEmitRendersStackAndScratchOperands(t *testing.T) {
	program := asmir.Program{Fn: asmir.Function{Name: "main", Body: []asmir.Instr{
		asmir.AllocateStack{N: 8},
		asmir.Mov{Src: asmir.Stack{Offset: 4}, Dst: asmir.Reg{Register: asmir.R10}},
		asmir.Mov{Src: asmir.Reg{Register: asmir.R10}, Dst: asmir.Stack{Offset: 8}},
		asmir.Ret{},
	}}}

	out := emit.Emit(program)
	assert.Contains(t, out, "\tmovl\t-4(%rbp), %r10d\n")
	assert.Contains(t, out, "\tmovl\t%r10d, -8(%rbp)\n")
}

func TestEmitUnaryAndBinaryMnemonics(t *testing.T) {
	program := asmir.Program{Fn: asmir.Function{Name: "main", Body: []asmir.Instr{
		asmir.AllocateStack{N: 0},
		asmir.Unary{Op: asmir.Neg, Operand: asmir.Reg{Register: asmir.AX}},
		asmir.Unary{Op: asmir.Not, Operand: asmir.Reg{Register: asmir.AX}},
		asmir.Binary{Op: asmir.Add, Src: asmir.Imm{Value: 1}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Binary{Op: asmir.Sub, Src: asmir.Imm{Value: 1}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Binary{Op: asmir.Mul, Src: asmir.Imm{Value: 2}, Dst: asmir.Reg{Register: asmir.R11}},
		asmir.Ret{},
	}}}

	out := emit.Emit(program)
	assert.Contains(t, out, "\tnegl\t%eax\n")
	assert.Contains(t, out, "\tnotl\t%eax\n")
	assert.Contains(t, out, "\taddl\t$1, %eax\n")
	assert.Contains(t, out, "\tsubl\t$1, %eax\n")
	assert.Contains(t, out, "\timull\t$2, %r11d\n")
}

func TestEmitDivisionSequence(t *testing.T) {
	program := asmir.Program{Fn: asmir.Function{Name: "main", Body: []asmir.Instr{
		asmir.AllocateStack{N: 0},
		asmir.Mov{Src: asmir.Imm{Value: 7}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Cdq{},
		asmir.Idiv{Operand: asmir.Imm{Value: 2}},
		asmir.Ret{},
	}}}

	out := emit.Emit(program)
	assert.Contains(t, out, "\tcdq\n")
	assert.Contains(t, out, "\tidivl\t$2\n")
}

func TestEmitPanicsOnUnreplacedPseudo(t *testing.T) {
	program := asmir.Program{Fn: asmir.Function{Name: "main", Body: []asmir.Instr{
		asmir.Mov{Src: asmir.Imm{Value: 1}, Dst: asmir.Pseudo{Name: "__tmp.0"}},
	}}}

	assert.Panics(t, func() { emit.Emit(program) })
}
