// Package main implements c0c, a single-pass compiler from the c0
// language to navm's stack-machine object format.
//
// c0 is a small C-like language: int/double/void types, functions,
// globals and consts, the usual control flow, and a fixed library of
// I/O builtins (getint, putint, putstr, ...). The compiler lexes,
// parses, resolves symbols, and emits instructions in one recursive-
// descent pass, then serializes the result to navm's big-endian binary
// object format.
package main

import (
	"flag"
	"os"

	"github.com/navm-lang/c0c/internal/flushio"
	"github.com/navm-lang/c0c/internal/logio"
)

func main() {
	var (
		inPath  string
		outPath string
		verbose bool
		dump    bool
	)
	flag.StringVar(&inPath, "i", "", "input source file (default: stdin)")
	flag.StringVar(&outPath, "o", "", "output object file (default: stdout)")
	flag.BoolVar(&verbose, "verbose", false, "accepted but has no effect: the compiler writes no trace output")
	flag.BoolVar(&dump, "dump", false, "print a disassembly of the compiled object instead of writing it")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	in := os.Stdin
	name := "<stdin>"
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			log.ErrorIf(err)
			return
		}
		defer f.Close()
		in = f
		name = inPath
	}

	prog, err := CompileSource(name, in, WithLog(&log), WithVerbose(verbose))
	if err != nil {
		log.ErrorIf(err)
		return
	}

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		objDumper{prog: prog, out: lw}.dump()
		return
	}

	out, err := EncodeObject(prog)
	if err != nil {
		log.ErrorIf(err)
		return
	}

	var w *os.File = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.ErrorIf(err)
			return
		}
		defer f.Close()
		w = f
	}
	wf := flushio.NewWriteFlusher(w)
	if _, err := wf.Write(out); err != nil {
		log.ErrorIf(err)
		return
	}
	if err := wf.Flush(); err != nil {
		log.ErrorIf(err)
	}
}
