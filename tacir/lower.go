package tacir

import (
	"fmt"

	"minicc.dev/minicc/ast"
	"minicc.dev/minicc/utils"
)

// ----------------------------------------------------------------------------
// TAC Lowerer

// Lowerer flattens nested AST expressions into the straight-line sequence of
// §4.3, handing out fresh temporaries from a per-compilation counter (§4.3,
// §5 "Temporaries and stack slots are allocated from per-function counters
// reset at the start of each compilation").
type Lowerer struct{ counter int }

// New returns a Lowerer with its temporary counter reset to 0.
func New() *Lowerer { return &Lowerer{} }

// Lower converts an ast.Program into its tacir.Program counterpart.
func Lower(program ast.Program) (Program, error) {
	l := New()
	return l.Program(program)
}

// Program lowers the whole program: one function, one Return statement.
func (l *Lowerer) Program(program ast.Program) (Program, error) {
	ret, ok := program.Fn.Body.(ast.Return)
	if !ok {
		return Program{}, fmt.Errorf("tacir: unsupported statement %T", program.Fn.Body)
	}

	var body []Instruction
	val := l.expression(ret.Expr, &body)
	body = append(body, Return{Val: val})

	return Program{Fn: Function{Name: program.Fn.Name, Body: body}}, nil
}

// freshTemp allocates the next "__tmp.<n>" name (§4.3: names must match this
// format exactly so tests can assert on them).
func (l *Lowerer) freshTemp() Value {
	name := fmt.Sprintf("__tmp.%d", l.counter)
	l.counter++
	return Var{Name: name}
}

// workItem is one pending node in the explicit traversal below; phase tracks
// how much of a multi-child node has already been processed.
type workItem struct {
	expr  ast.Expression
	phase int
}

// expression lowers a single expression to its result Value, appending
// instructions to out. Per §9 Design Notes, this is an explicit work-stack
// traversal rather than native recursion, so pathologically nested input
// (`((((...))))`) can't blow the Go call stack — the contract it realizes is
// still exactly §4.3's: lower(l) then lower(r), left-to-right, one fresh
// temporary per Unary/Binary node.
func (l *Lowerer) expression(expr ast.Expression, out *[]Instruction) Value {
	work := utils.NewStack[workItem]()
	values := utils.NewStack[Value]()
	work.Push(workItem{expr: expr})

	for work.Count() > 0 {
		item, _ := work.Pop()

		switch e := item.expr.(type) {
		case ast.Constant:
			values.Push(Constant{Value: e.Value})

		case ast.Unary:
			switch item.phase {
			case 0:
				work.Push(workItem{expr: item.expr, phase: 1})
				work.Push(workItem{expr: e.Expr})
			default:
				src, _ := values.Pop()
				dst := l.freshTemp()
				*out = append(*out, Unary{Op: e.Op, Src: src, Dst: dst})
				values.Push(dst)
			}

		case ast.Binary:
			switch item.phase {
			case 0:
				work.Push(workItem{expr: item.expr, phase: 1})
				work.Push(workItem{expr: e.Left})
			case 1:
				work.Push(workItem{expr: item.expr, phase: 2})
				work.Push(workItem{expr: e.Right})
			default:
				right, _ := values.Pop()
				left, _ := values.Pop()
				dst := l.freshTemp()
				*out = append(*out, Binary{Op: e.Op, Left: left, Right: right, Dst: dst})
				values.Push(dst)
			}
		}
	}

	result, _ := values.Pop()
	return result
}
