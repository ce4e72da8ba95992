package main

import "github.com/navm-lang/c0c/internal/logio"

// CompileOption configures a Compiler via the functional-options pattern,
// adapted from the teacher's VMOption/options machinery.
type CompileOption interface{ apply(opts *compileOpts) }

type compileOpts struct {
	log     *logio.Logger
	verbose bool
}

func CompileOptions(opts ...CompileOption) CompileOption {
	var res multiOption
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case multiOption:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*compileOpts) {}

type multiOption []CompileOption

func (opts multiOption) apply(o *compileOpts) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}
}

type logOption struct{ log *logio.Logger }

func (lo logOption) apply(o *compileOpts) { o.log = lo.log }

// WithLog hands log to the Compiler. The compiler writes no trace output
// to it; compile errors are returned, not logged.
func WithLog(log *logio.Logger) CompileOption { return logOption{log} }

type verboseOption bool

func (v verboseOption) apply(o *compileOpts) { o.verbose = bool(v) }

// WithVerbose records the verbose setting in the options. CompileSource
// does not read it, so it changes no output.
func WithVerbose(v bool) CompileOption { return verboseOption(v) }
