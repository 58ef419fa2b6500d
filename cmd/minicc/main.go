package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/teris-io/cli"

	"minicc.dev/minicc/asmir"
	"minicc.dev/minicc/emit"
	"minicc.dev/minicc/legalize"
	"minicc.dev/minicc/lexer"
	"minicc.dev/minicc/parser"
	"minicc.dev/minicc/regalloc"
	"minicc.dev/minicc/tacir"
)

var Description = strings.ReplaceAll(`
minicc is an ahead-of-time compiler for a tiny subset of C, targeting
x86-64 AT&T assembly. It reads a single source file through the
lexer, parser, TAC lowering, assembly selection, pseudo replacement,
legalization and emitter stages in sequence and writes the resulting
assembly, optionally handing it to the system 'cc' to produce a binary.
`, "\n", " ")

var Minicc = cli.New(Description).
	WithArg(cli.NewArg("input", "The C source file to compile")).
	WithOption(cli.NewOption("output", "The assembly (.s) file to write").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("compile", "Assemble and link the output via the system 'cc'").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("run", "Compile and then run the resulting binary").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("dump-tokens", "Dump the token stream and stop").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("dump-ast", "Dump the parsed AST and stop").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("dump-tac", "Dump the lowered TAC and stop").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("dump-asm", "Dump the legalized abstract assembly and stop").
		WithType(cli.TypeBool)).
	WithAction(Handler)

func fail(format string, args ...interface{}) int {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "ERROR: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return -1
}

func Handler(args []string, options map[string]string) int {
	if len(args) < 1 {
		return fail("not enough arguments provided, use --help")
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fail("unable to open input file: %s", err)
	}

	stream, err := lexer.NewStream(string(source))
	if err != nil {
		return fail("lexing failed: %s", err)
	}
	if _, ok := options["dump-tokens"]; ok {
		for {
			tok := stream.Next()
			spew.Dump(tok)
			if tok.String() == "EOF" {
				break
			}
		}
		return 0
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		return fail("parsing failed: %s", err)
	}
	if _, ok := options["dump-ast"]; ok {
		spew.Dump(program)
		return 0
	}

	tac, err := tacir.Lower(program)
	if err != nil {
		return fail("lowering failed: %s", err)
	}
	if _, ok := options["dump-tac"]; ok {
		spew.Dump(tac)
		return 0
	}

	selected := asmir.Select(tac)
	replaced := regalloc.Replace(selected)
	legal := legalize.Legalize(replaced, replaced.Fn.FrameSize)
	if _, ok := options["dump-asm"]; ok {
		spew.Dump(legal)
		return 0
	}

	assembly := emit.Emit(legal)

	outputPath := options["output"]
	if outputPath == "" {
		outputPath = strings.TrimSuffix(args[0], ".c") + ".s"
	}

	_, shouldRun := options["run"]
	_, shouldCompile := options["compile"]
	shouldCompile = shouldCompile || shouldRun

	if !shouldCompile {
		if err := os.WriteFile(outputPath, []byte(assembly), 0644); err != nil {
			return fail("unable to write output file: %s", err)
		}
		return 0
	}

	binaryPath := strings.TrimSuffix(outputPath, ".s")
	cc := exec.Command("cc", "-static", "-o", binaryPath, "-x", "assembler", "-")
	cc.Stdout = os.Stdout
	cc.Stderr = os.Stderr

	var stdin bytes.Buffer
	stdin.WriteString(assembly)
	cc.Stdin = &stdin

	if err := cc.Run(); err != nil {
		return fail("invoking cc failed: %s", err)
	}

	if shouldRun {
		exe := exec.Command(binaryPath)
		exe.Stdout = os.Stdout
		exe.Stderr = os.Stderr
		if err := exe.Run(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				return exitErr.ExitCode()
			}
			return fail("running %s failed: %s", binaryPath, err)
		}
	}

	return 0
}

func main() { os.Exit(Minicc.Run(os.Args, os.Stdout)) }
