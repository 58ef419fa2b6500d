// Package compiler wires the seven stages into the single pipeline entry
// point of §6: compile(source) -> assembly_text | Error.
package compiler

import (
	"minicc.dev/minicc/asmir"
	"minicc.dev/minicc/emit"
	"minicc.dev/minicc/legalize"
	"minicc.dev/minicc/parser"
	"minicc.dev/minicc/regalloc"
	"minicc.dev/minicc/tacir"
)

// Compile runs the full pipeline over source and returns the rendered
// assembly text, or the first stage error encountered (§5: statically fixed
// stage order, no partial output on failure).
func Compile(source string) (string, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return "", err
	}

	tac, err := tacir.Lower(program)
	if err != nil {
		return "", err
	}

	selected := asmir.Select(tac)
	replaced := regalloc.Replace(selected)
	legal := legalize.Legalize(replaced, replaced.Fn.FrameSize)

	return emit.Emit(legal), nil
}
