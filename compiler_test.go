package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileOK(t *testing.T, src string) *Program {
	t.Helper()
	lx := NewLexer("<test>", strings.NewReader(src))
	toks, strs, err := lx.Tokenize()
	require.NoError(t, err)
	prog, err := Compile(toks, strs, nil)
	require.NoError(t, err, "unexpected compile error for:\n%s", src)
	return prog
}

func compileErr(t *testing.T, src string) error {
	t.Helper()
	lx := NewLexer("<test>", strings.NewReader(src))
	toks, strs, err := lx.Tokenize()
	require.NoError(t, err)
	_, err = Compile(toks, strs, nil)
	require.Error(t, err, "expected compile error for:\n%s", src)
	return err
}

func findFunc(prog *Program, name string) *Func {
	for _, f := range prog.Funcs {
		if f.Attrs.Name == name {
			return f
		}
	}
	return nil
}

func TestCompile_minimalMain(t *testing.T) {
	prog := compileOK(t, `fn main() -> void { }`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)

	start := prog.Funcs[0]
	assert.Equal(t, "_start", start.Attrs.Name)
	require.Len(t, start.Body, 2, "_start is STACKALLOC + CALLNAME main")
	assert.Equal(t, OpStackAlloc, start.Body[0].Op)
	assert.Equal(t, uint32(0), start.Body[0].Operand)
	assert.Equal(t, OpCallName, start.Body[1].Op)
	assert.Equal(t, main.Attrs.GlobalSlot, start.Body[1].Operand)
}

func TestCompile_mainReturningIntAllocatesReturnSlot(t *testing.T) {
	prog := compileOK(t, `fn main() -> int { return 0; }`)
	start := prog.Funcs[0]
	assert.Equal(t, uint32(1), start.Body[0].Operand)
}

func TestCompile_arithmeticAndReturn(t *testing.T) {
	prog := compileOK(t, `fn main() -> int { return 1 + 2 * 3; }`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)

	var ops []Opcode
	for _, instr := range main.Body {
		ops = append(ops, instr.Op)
	}
	assert.Equal(t, []Opcode{OpArga, OpPush, OpPush, OpPush, OpMulI, OpAddI, OpStore64, OpRet}, ops,
		"* must bind tighter than +, matching precedence")
}

func TestCompile_ifElseBranchesPatched(t *testing.T) {
	prog := compileOK(t, `
		fn main() -> int {
			if (1 < 2) {
				return 1;
			} else {
				return 0;
			}
		}
	`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)

	var brFalse, brEnd *Instruction
	for _, instr := range main.Body {
		switch instr.Op {
		case OpBrFalse:
			brFalse = instr
		case OpBr:
			brEnd = instr
		}
	}
	require.NotNil(t, brFalse)
	require.NotNil(t, brEnd)

	brFalseTarget := brFalse.IP + int(brFalse.Operand.(int32)) + 1
	assert.Equal(t, brEnd.IP+1, brFalseTarget, "BR_FALSE must reach the else branch's first instruction")
}

func TestCompile_whileLoopBreakAndContinue(t *testing.T) {
	prog := compileOK(t, `
		fn main() -> void {
			while (1 < 2) {
				if (1 < 2) {
					break;
				}
				continue;
			}
		}
	`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)

	var brCount int
	for _, instr := range main.Body {
		if instr.Op == OpBr {
			brCount++
			assert.NotNil(t, instr.Operand, "every BR must be back-patched before emission completes")
		}
	}
	assert.GreaterOrEqual(t, brCount, 3, "loop-back branch + break + continue")
}

func TestCompile_putstrStringLiteralCalledViaCallName(t *testing.T) {
	prog := compileOK(t, `fn main() -> void { putstr("hello"); }`)
	require.Len(t, prog.Strs, 1)
	assert.Equal(t, "hello", prog.Strs[0])

	var putstrSlot uint32
	var found bool
	for _, g := range prog.Globals {
		if fa, ok := g.(*FuncAttrs); ok && fa.Name == "putstr" {
			putstrSlot = fa.GlobalSlot
			found = true
		}
	}
	require.True(t, found, "putstr must occupy a global symbol slot like any other builtin")

	main := findFunc(prog, "main")
	var sawCall bool
	for _, instr := range main.Body {
		if instr.Op == OpCallName && instr.Operand == putstrSlot {
			sawCall = true
		}
	}
	assert.True(t, sawCall, "putstr must be called via CALLNAME like any other function")
}

func TestCompile_putstrRejectsNonLiteral(t *testing.T) {
	compileErr(t, `
		fn main() -> void {
			let s: int = 1;
			putstr(s);
		}
	`)
}

func TestCompile_typeMismatchInAssignmentErrors(t *testing.T) {
	// bool (only producible by a comparison) has no implicit conversion
	// to int, unlike the int<->double coercion checkAssignable allows.
	compileErr(t, `fn main() -> void { let x: int = (1 < 2); }`)
}

func TestCompile_undeclaredIdentifierErrors(t *testing.T) {
	compileErr(t, `fn main() -> void { x = 1; }`)
}

func TestCompile_duplicateDeclarationErrors(t *testing.T) {
	compileErr(t, `fn f() -> void { } fn f() -> void { }`)
}

func TestCompile_missingMainErrors(t *testing.T) {
	compileErr(t, `fn notMain() -> void { }`)
}

func TestCompile_nonVoidFunctionMustReturnOnAllPaths(t *testing.T) {
	compileErr(t, `
		fn f(x: int) -> int {
			if (x < 1) {
				return 1;
			}
		}
		fn main() -> void { }
	`)
}

func TestCompile_constReassignmentRejected(t *testing.T) {
	compileErr(t, `
		fn main() -> void {
			const c: int = 1;
			c = 2;
		}
	`)
}

func TestCompile_valueReturningBuiltinAllocatesReturnSlot(t *testing.T) {
	prog := compileOK(t, `fn main() -> void { let x: int = getint(); }`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)

	var sawAlloc, sawCall bool
	for i, instr := range main.Body {
		if instr.Op == OpStackAlloc && instr.Operand == uint32(1) {
			sawAlloc = true
			for j := i + 1; j < len(main.Body); j++ {
				if main.Body[j].Op == OpCallName {
					sawCall = true
					break
				}
			}
		}
	}
	assert.True(t, sawAlloc, "a value-returning builtin call must allocate its return slot like any other call")
	assert.True(t, sawCall, "the builtin must be invoked via CALLNAME after its STACKALLOC")
}

func TestCompile_argOffsetsShiftByReturnSlot(t *testing.T) {
	prog := compileOK(t, `
		fn add(a: int, b: int) -> int {
			return a + b;
		}
		fn main() -> void { }
	`)
	add := findFunc(prog, "add")
	require.NotNil(t, add)

	var argaOperands []uint32
	for _, instr := range add.Body {
		if instr.Op == OpArga {
			argaOperands = append(argaOperands, instr.Operand.(uint32))
		}
	}
	require.GreaterOrEqual(t, len(argaOperands), 3, "return slot + both arguments")
	assert.Equal(t, uint32(0), argaOperands[0], "return value is always addressed at ARGA 0")
	assert.Contains(t, argaOperands[1:], uint32(1), "first argument must start at ARGA 1 when the function returns a value")
	assert.Contains(t, argaOperands[1:], uint32(2), "second argument must land at ARGA 2")
}

func TestCompile_whileWithoutParensCompiles(t *testing.T) {
	prog := compileOK(t, `fn main() -> void { while 1 { break; } }`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)
}

func TestCompile_ifWithoutParensCompiles(t *testing.T) {
	prog := compileOK(t, `fn main() -> void { if 1 { putln(); } }`)
	main := findFunc(prog, "main")
	require.NotNil(t, main)
}

func TestCompile_globalInitializersRunInStart(t *testing.T) {
	prog := compileOK(t, `
		let g: int = 42;
		fn main() -> void { }
	`)
	start := prog.Funcs[0]
	var globaIdx, storeIdx = -1, -1
	for i, instr := range start.Body {
		switch instr.Op {
		case OpGloba:
			globaIdx = i
		case OpStore64:
			storeIdx = i
		}
	}
	require.GreaterOrEqual(t, globaIdx, 0, "global initializer must address the global before storing into it")
	require.Greater(t, storeIdx, globaIdx, "store must follow the address and the pushed initializer value")
}
