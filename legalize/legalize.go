// Package legalize implements §4.5's second half: prepend the stack-
// allocation prologue, then rewrite any instruction that violates x86's
// operand constraints into a short sequence using the two scratch
// registers, R10 (generic) and R11 (reserved for the Mul pattern). Neither
// may ever be used as a program temporary.
package legalize

import "minicc.dev/minicc/asmir"

// Legalize prepends AllocateStack(frameSize) and rewrites each instruction
// so every one satisfies x86 operand legality (§4.5, §8 property 5).
func Legalize(p asmir.Program, frameSize int) asmir.Program {
	body := make([]asmir.Instr, 0, len(p.Fn.Body)+1)
	body = append(body, asmir.AllocateStack{N: frameSize})

	for _, instr := range p.Fn.Body {
		body = append(body, legalizeInstr(instr)...)
	}

	return asmir.Program{Fn: asmir.Function{
		Name:      p.Fn.Name,
		Body:      body,
		FrameSize: frameSize,
	}}
}

func legalizeInstr(instr asmir.Instr) []asmir.Instr {
	switch i := instr.(type) {
	case asmir.Mov:
		if isStack(i.Src) && isStack(i.Dst) {
			scratch := asmir.Reg{Register: asmir.R10}
			return []asmir.Instr{
				asmir.Mov{Src: i.Src, Dst: scratch},
				asmir.Mov{Src: scratch, Dst: i.Dst},
			}
		}
		return []asmir.Instr{i}

	case asmir.Binary:
		switch i.Op {
		case asmir.Add, asmir.Sub:
			if isStack(i.Src) && isStack(i.Dst) {
				scratch := asmir.Reg{Register: asmir.R10}
				return []asmir.Instr{
					asmir.Mov{Src: i.Src, Dst: scratch},
					asmir.Binary{Op: i.Op, Src: scratch, Dst: i.Dst},
				}
			}
		case asmir.Mul:
			// imull's destination cannot be memory.
			if isStack(i.Dst) {
				scratch := asmir.Reg{Register: asmir.R11}
				return []asmir.Instr{
					asmir.Mov{Src: i.Dst, Dst: scratch},
					asmir.Binary{Op: asmir.Mul, Src: i.Src, Dst: scratch},
					asmir.Mov{Src: scratch, Dst: i.Dst},
				}
			}
		}
		return []asmir.Instr{i}

	case asmir.Idiv:
		// idiv requires a register or memory operand, not an immediate.
		if _, isImm := i.Operand.(asmir.Imm); isImm {
			scratch := asmir.Reg{Register: asmir.R10}
			return []asmir.Instr{
				asmir.Mov{Src: i.Operand, Dst: scratch},
				asmir.Idiv{Operand: scratch},
			}
		}
		return []asmir.Instr{i}

	default:
		return []asmir.Instr{i}
	}
}

func isStack(op asmir.Operand) bool {
	_, ok := op.(asmir.Stack)
	return ok
}
