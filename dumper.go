package main

import (
	"fmt"
	"io"
	"strconv"
)

// objDumper renders a compiled Program as human-readable disassembly,
// adapted from the teacher's vmDumper (which rendered live VM memory) to
// instead render a static object: string pool, global symbol table, and
// each function's instruction stream with branch targets annotated.
//
// Grounded on the teacher's dumper.go layout and on
// original_source/src/vm/assembler.py's own debug-dump helper.
type objDumper struct {
	prog *Program
	out  io.Writer
}

func (d objDumper) dump() {
	fmt.Fprintf(d.out, "# Object Dump\n")
	d.dumpStrings()
	d.dumpGlobals()
	for _, f := range d.prog.Funcs {
		d.dumpFunc(f)
	}
}

func (d objDumper) dumpStrings() {
	fmt.Fprintf(d.out, "  strings: %d\n", len(d.prog.Strs))
	for i, s := range d.prog.Strs {
		fmt.Fprintf(d.out, "    #%d %q\n", i, s)
	}
}

func (d objDumper) dumpGlobals() {
	fmt.Fprintf(d.out, "  globals: %d vars, %d funcs (plus %d builtins)\n",
		len(d.prog.GlobalVars), len(d.prog.Funcs), numBuiltins)
	for _, v := range d.prog.GlobalVars {
		kind := "var"
		if v.IsConst {
			kind = "const"
		}
		fmt.Fprintf(d.out, "    @%d %s %s: %v\n", v.Offset, kind, v.Name, v.Ty)
	}
}

func (d objDumper) dumpFunc(f *Func) {
	fmt.Fprintf(d.out, "  fn %s @slot=%d args=%d locals=%d ret=%v\n",
		f.Attrs.Name, f.Attrs.GlobalSlot, len(f.Attrs.ArgTys), f.NumLocals, f.Attrs.RetTy)

	width := len(strconv.Itoa(len(f.Body)))
	for _, instr := range f.Body {
		fmt.Fprintf(d.out, "    % *d %s", width, instr.IP, instr.Op)
		switch instr.Op.OperandClass() {
		case operandSigned32:
			if v, ok := instr.Operand.(int32); ok {
				target := instr.IP + int(v) + 1
				fmt.Fprintf(d.out, " %+d (-> %d)", v, target)
			}
		case operandUnsigned32, operandPush64:
			fmt.Fprintf(d.out, " %v", instr.Operand)
		}
		fmt.Fprintln(d.out)
	}
}
