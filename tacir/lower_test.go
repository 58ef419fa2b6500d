package tacir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/tacir"
)

func TestLowerConstantReturn(t *testing.T) {
	// S1: return 2;
	program := ast.Program{Fn: ast.FunctionDef{Name: "main", Body: ast.Return{Expr: ast.Constant{Value: 2}}}}

	out, err := tacir.Lower(program)
	require.NoError(t, err)
	require.Len(t, out.Fn.Body, 1)
	assert.Equal(t, tacir.Return{Val: tacir.Constant{Value: 2}}, out.Fn.Body[0])
}

func TestLowerNestedUnaryNamesTemps(t *testing.T) {
	// S2: return -(-2); two Unary assignments to __tmp.0, __tmp.1.
	program := ast.Program{Fn: ast.FunctionDef{Name: "main", Body: ast.Return{
		Expr: ast.Unary{Op: ast.Negate, Expr: ast.Unary{Op: ast.Negate, Expr: ast.Constant{Value: 2}}},
	}}}

	out, err := tacir.Lower(program)
	require.NoError(t, err)
	require.Len(t, out.Fn.Body, 3)

	assert.Equal(t, tacir.Unary{Op: ast.Negate, Src: tacir.Constant{Value: 2}, Dst: tacir.Var{Name: "__tmp.0"}}, out.Fn.Body[0])
	assert.Equal(t, tacir.Unary{Op: ast.Negate, Src: tacir.Var{Name: "__tmp.0"}, Dst: tacir.Var{Name: "__tmp.1"}}, out.Fn.Body[1])
	assert.Equal(t, tacir.Return{Val: tacir.Var{Name: "__tmp.1"}}, out.Fn.Body[2])
}

func TestLowerBinaryEvaluatesLeftToRight(t *testing.T) {
	// 1 - 2 * 3: right operand (2*3) must be lowered after the left (1),
	// which here is trivial, but the Binary instruction's operands must
	// still reflect left-to-right evaluation order.
	program := ast.Program{Fn: ast.FunctionDef{Name: "main", Body: ast.Return{
		Expr: ast.Binary{Op: ast.Sub, Left: ast.Constant{Value: 1}, Right: ast.Binary{Op: ast.Mul, Left: ast.Constant{Value: 2}, Right: ast.Constant{Value: 3}}},
	}}}

	out, err := tacir.Lower(program)
	require.NoError(t, err)
	require.Len(t, out.Fn.Body, 3)

	assert.Equal(t, tacir.Binary{Op: ast.Mul, Left: tacir.Constant{Value: 2}, Right: tacir.Constant{Value: 3}, Dst: tacir.Var{Name: "__tmp.0"}}, out.Fn.Body[0])
	assert.Equal(t, tacir.Binary{Op: ast.Sub, Left: tacir.Constant{Value: 1}, Right: tacir.Var{Name: "__tmp.0"}, Dst: tacir.Var{Name: "__tmp.1"}}, out.Fn.Body[1])
}

func TestTemporariesAreSSA(t *testing.T) {
	program := ast.Program{Fn: ast.FunctionDef{Name: "main", Body: ast.Return{
		Expr: ast.Binary{Op: ast.Add, Left: ast.Unary{Op: ast.Complement, Expr: ast.Constant{Value: 1}}, Right: ast.Unary{Op: ast.Negate, Expr: ast.Constant{Value: 2}}},
	}}}

	out, err := tacir.Lower(program)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, instr := range out.Fn.Body {
		var dst tacir.Value
		switch i := instr.(type) {
		case tacir.Unary:
			dst = i.Dst
		case tacir.Binary:
			dst = i.Dst
		default:
			continue
		}
		name := dst.(tacir.Var).Name
		assert.False(t, seen[name], "dst %q assigned twice", name)
		seen[name] = true
	}
}
