// Package regalloc implements pseudo replacement (§4.5 first half): a single
// linear scan that rewrites every Pseudo operand to a Stack slot, yielding
// the function's frame size.
package regalloc

import (
	"minicc.dev/minicc/asmir"
	"minicc.dev/minicc/utils"
)

const slotSize = 4 // bytes per pseudo, per §4.5

// Replace rewrites every Pseudo operand in p to a Stack operand and returns
// the rewritten program. Each pseudo, on first occurrence, is assigned the
// next stack slot (offset starts at 4 and grows in steps of 4); later
// occurrences of the same name reuse that offset (§4.5). The insertion-
// ordered mapping is utils.OrderedMap — any first-insert-semantics mapping
// would do (§9), iteration order is never observed.
func Replace(p asmir.Program) asmir.Program {
	slots := utils.NewOrderedMap[string, int]()

	assign := func(op asmir.Operand) asmir.Operand {
		pseudo, ok := op.(asmir.Pseudo)
		if !ok {
			return op
		}
		offset := slots.GetOrInsert(pseudo.Name, func(position int) int {
			return (position + 1) * slotSize
		})
		return asmir.Stack{Offset: offset}
	}

	body := make([]asmir.Instr, len(p.Fn.Body))
	for idx, instr := range p.Fn.Body {
		body[idx] = rewrite(instr, assign)
	}

	return asmir.Program{Fn: asmir.Function{
		Name:      p.Fn.Name,
		Body:      body,
		FrameSize: slots.Size() * slotSize,
	}}
}

// rewrite applies assign to every operand position an instruction shape has;
// non-operand instructions (Cdq, AllocateStack, Ret) pass through unchanged.
func rewrite(instr asmir.Instr, assign func(asmir.Operand) asmir.Operand) asmir.Instr {
	switch i := instr.(type) {
	case asmir.Mov:
		return asmir.Mov{Src: assign(i.Src), Dst: assign(i.Dst)}
	case asmir.Unary:
		return asmir.Unary{Op: i.Op, Operand: assign(i.Operand)}
	case asmir.Binary:
		return asmir.Binary{Op: i.Op, Src: assign(i.Src), Dst: assign(i.Dst)}
	case asmir.Idiv:
		return asmir.Idiv{Operand: assign(i.Operand)}
	default:
		return instr
	}
}
