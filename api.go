package main

import (
	"io"

	"github.com/navm-lang/c0c/internal/panicerr"
)

// CompileSource runs the lexer and compiler over src (named name for
// diagnostics) and returns the finished Program, applying opts.
//
// Grounded on the teacher's New/Run entry points: panicerr.Recover gives
// the whole pass a single recovery boundary, matching the teacher's
// one-panic-per-API-call idiom, even though the compiler's own internal
// halt (haltError, in errors.go/compiler.go) already recovers malformed-
// program panics into an ordinary error — this outer layer only catches
// genuine programming-error panics (nil maps, index overflow) so they
// surface as errors rather than crashing the process.
func CompileSource(name string, src io.Reader, opts ...CompileOption) (prog *Program, err error) {
	var o compileOpts
	CompileOptions(opts...).apply(&o)

	err = panicerr.Recover("compile", func() error {
		lx := NewLexer(name, src)
		toks, strs, lexErr := lx.Tokenize()
		if lexErr != nil {
			return lexErr
		}
		p, compileErr := Compile(toks, strs, o.log)
		if compileErr != nil {
			return compileErr
		}
		prog = p
		return nil
	})
	return prog, err
}
