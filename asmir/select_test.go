package asmir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minicc.dev/minicc/asmir"
	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/tacir"
)

func TestSelectReturnConstant(t *testing.T) {
	// S1: return 2;
	program := tacir.Program{Fn: tacir.Function{Name: "main", Body: []tacir.Instruction{
		tacir.Return{Val: tacir.Constant{Value: 2}},
	}}}

	out := asmir.Select(program)
	assert.Equal(t, []asmir.Instr{
		asmir.Mov{Src: asmir.Imm{Value: 2}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Ret{},
	}, out.Fn.Body)
}

func TestSelectDivReadsFromAX(t *testing.T) {
	// S5: 7/2
	program := tacir.Program{Fn: tacir.Function{Name: "main", Body: []tacir.Instruction{
		tacir.Binary{Op: ast.Div, Left: tacir.Constant{Value: 7}, Right: tacir.Constant{Value: 2}, Dst: tacir.Var{Name: "__tmp.0"}},
		tacir.Return{Val: tacir.Var{Name: "__tmp.0"}},
	}}}

	out := asmir.Select(program)
	assert.Equal(t, []asmir.Instr{
		asmir.Mov{Src: asmir.Imm{Value: 7}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Cdq{},
		asmir.Idiv{Operand: asmir.Imm{Value: 2}},
		asmir.Mov{Src: asmir.Reg{Register: asmir.AX}, Dst: asmir.Pseudo{Name: "__tmp.0"}},
		asmir.Mov{Src: asmir.Pseudo{Name: "__tmp.0"}, Dst: asmir.Reg{Register: asmir.AX}},
		asmir.Ret{},
	}, out.Fn.Body)
}

func TestSelectRemReadsFromDX(t *testing.T) {
	// S6: 7%2
	program := tacir.Program{Fn: tacir.Function{Name: "main", Body: []tacir.Instruction{
		tacir.Binary{Op: ast.Rem, Left: tacir.Constant{Value: 7}, Right: tacir.Constant{Value: 2}, Dst: tacir.Var{Name: "__tmp.0"}},
		tacir.Return{Val: tacir.Var{Name: "__tmp.0"}},
	}}}

	out := asmir.Select(program)
	assert.Equal(t, asmir.Mov{Src: asmir.Reg{Register: asmir.DX}, Dst: asmir.Pseudo{Name: "__tmp.0"}}, out.Fn.Body[3])
}

func TestSelectUnaryTranslatesOp(t *testing.T) {
	program := tacir.Program{Fn: tacir.Function{Name: "main", Body: []tacir.Instruction{
		tacir.Unary{Op: ast.Complement, Src: tacir.Constant{Value: 5}, Dst: tacir.Var{Name: "__tmp.0"}},
		tacir.Return{Val: tacir.Var{Name: "__tmp.0"}},
	}}}

	out := asmir.Select(program)
	assert.Equal(t, asmir.Unary{Op: asmir.Not, Operand: asmir.Pseudo{Name: "__tmp.0"}}, out.Fn.Body[1])
}
