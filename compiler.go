package main

import (
	"fmt"

	"github.com/navm-lang/c0c/internal/fileinput"
	"github.com/navm-lang/c0c/internal/logio"
)

// Func is a function body under construction: an ordered list of
// instructions (kept as pointers so branch targets can be back-patched
// after the fact, per original_source/src/syntactic/analyzer.py's
// deferred jump-fixup style) plus the calling-convention attributes
// recorded in the symbol table.
type Func struct {
	Attrs       *FuncAttrs
	Body        []*Instruction
	NumLocals   uint32
	AllReturned bool // true once every control-flow path seen so far has returned
}

func (f *Func) emit(instr Instruction) *Instruction {
	instr.IP = len(f.Body)
	p := &instr
	f.Body = append(f.Body, p)
	return p
}

// Program is the fully analyzed compilation unit, ready for object.go to
// serialize.
type Program struct {
	Strs       []string
	Funcs      []*Func       // declaration order, builtins excluded; _start is Funcs[0]
	NumGlobl   uint32        // number of global variable slots (for _start's frame, diagnostic only)
	GlobalVars []*VarAttrs   // declared global variables in declaration order
	Globals    []interface{} // every global symbol (_start, builtins, then user funcs/vars in declaration order); *VarAttrs or *FuncAttrs
}

// builtinSig describes one standard-library function's calling
// convention, declared into the global scope before any user code is
// parsed. Grounded on spec.md §2's builtin roster.
type builtinSig struct {
	name   string
	ret    Type
	args   []Type
}

var builtins = []builtinSig{
	{"getint", TyInt, nil},
	{"getdouble", TyDouble, nil},
	{"getchar", TyInt, nil},
	{"putint", TyVoid, []Type{TyInt}},
	{"putdouble", TyVoid, []Type{TyDouble}},
	{"putchar", TyVoid, []Type{TyInt}},
	{"putstr", TyVoid, []Type{TyStringOffset}},
	{"putln", TyVoid, nil},
}

// Compiler holds all single-pass compilation state: the token cursor,
// the scope stack, and the function table under construction.
//
// Grounded on original_source/src/syntactic/analyzer.py's Analyzer class,
// which performs parsing, symbol resolution and code generation in one
// recursive-descent walk rather than as separate passes.
type Compiler struct {
	toks []Token
	pos  int

	syms  *SymbolTable
	funcs []*Func
	strs  []string

	start     *Func // synthetic _start, always Funcs[0]
	cur       *Func // function currently being compiled
	breaks    [][]*Instruction
	continues [][]*Instruction

	log *logio.Logger
}

func NewCompiler(toks []Token, strs []string, log *logio.Logger) *Compiler {
	return &Compiler{toks: toks, strs: strs, syms: NewSymbolTable(), log: log}
}

func (c *Compiler) tracef(format string, args ...interface{}) {
	if c.log != nil {
		c.log.Printf("TRACE", format, args...)
	}
}

// peekTok/advance/expect implement the parser's token cursor, with a
// lookahead window bounded only by the token slice itself (the lexer
// appends trailing EOF sentinels so this never runs past the end).
func (c *Compiler) peekTok(n int) Token {
	i := c.pos + n
	if i >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[i]
}

func (c *Compiler) cur_() Token { return c.peekTok(0) }

func (c *Compiler) advanceTok() Token {
	t := c.peekTok(0)
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
	return t
}

func (c *Compiler) at(k TokenKind) bool { return c.cur_().Kind == k }

func (c *Compiler) expect(k TokenKind) Token {
	t := c.cur_()
	if t.Kind != k {
		panic(haltError{compileError{loc: t.Loc, context: c.context(), err: SynTokenError{
			msg: fmt.Sprintf("expected %v, got %v", k, t.Kind),
		}}})
	}
	return c.advanceTok()
}

const contextLookahead = 10

// context returns up to contextLookahead upcoming tokens for diagnostics,
// per SPEC_FULL.md's error-reporting expansion.
func (c *Compiler) context() []string {
	var out []string
	for i := 0; i < contextLookahead; i++ {
		t := c.peekTok(i)
		out = append(out, t.String())
		if t.Kind == EOFToken {
			break
		}
	}
	return out
}

func (c *Compiler) errAt(loc fileinput.Location, err error) {
	panic(haltError{compileError{loc: loc, context: c.context(), err: err}})
}

// Compile runs the full program parse/analyze/emit pass over toks and
// returns the finished Program, or an error if compilation halted.
func Compile(toks []Token, strs []string, log *logio.Logger) (prog *Program, err error) {
	c := NewCompiler(toks, strs, log)
	defer func() {
		if r := recover(); r != nil {
			if he, ok := r.(haltError); ok {
				err = he
				return
			}
			panic(r)
		}
	}()
	c.declareBuiltinsAndStart()
	c.parseProgram()
	c.finishStart()
	return &Program{
		Strs:       c.strs,
		Funcs:      c.funcs,
		NumGlobl:   c.syms.NumGlobalVars(),
		GlobalVars: c.syms.GlobalVars(),
		Globals:    c.syms.GlobalEntries(),
	}, nil
}

// declareBuiltinsAndStart declares _start first (so its global symbol
// slot is the lowest) and then the builtin library functions, matching
// original_source/src/syntactic/analyzer.py's Analyzer.analyse, which
// reserves the _start slot ahead of anything else.
func (c *Compiler) declareBuiltinsAndStart() {
	startAttrs, err := c.syms.DeclareFunc("_start", TyVoid, nil, false)
	if err != nil {
		panic(haltError{err})
	}
	c.start = &Func{Attrs: startAttrs}
	startAttrs.Func = c.start
	c.funcs = append(c.funcs, c.start)

	for _, b := range builtins {
		attrs, err := c.syms.DeclareFunc(b.name, b.ret, b.args, true)
		if err != nil {
			panic(haltError{err})
		}
		_ = attrs
	}
}

// parseProgram consumes top-level declarations until EOF.
func (c *Compiler) parseProgram() {
	for !c.at(EOFToken) {
		switch c.cur_().Kind {
		case FnKw:
			c.parseFnDecl()
		case LetKw, ConstKw:
			c.cur = c.start
			c.parseVarDecl(true)
		default:
			c.errAt(c.cur_().Loc, SynProgramErr{msg: "expected function or variable declaration, got " + c.cur_().String()})
		}
	}
}

// finishStart appends _start's closing sequence: STACKALLOC(1)+CALLNAME
// main if main returns a value, otherwise STACKALLOC(0)+CALLNAME main,
// per spec.md §4.3's entry-point wiring.
func (c *Compiler) finishStart() {
	mainAttrs, err := c.syms.AssertedGetFunc("main")
	if err != nil {
		c.errAt(fileinput.Location{}, SynProgramErr{msg: "program has no main function"})
	}
	if len(mainAttrs.ArgTys) != 0 {
		c.errAt(fileinput.Location{}, SynProgramErr{msg: "main must take no arguments"})
	}
	slots := uint32(0)
	if mainAttrs.RetTy != TyVoid {
		slots = 1
	}
	c.start.emit(U32(OpStackAlloc, slots))
	c.start.emit(U32(OpCallName, mainAttrs.GlobalSlot))
}

// ---- declarations ----

func typeSpecFrom(tk Token) Type {
	switch tk.Kind {
	case IntTypeSpec:
		return TyInt
	case DblTypeSpec:
		return TyDouble
	case VoidTypeSpec:
		return TyVoid
	default:
		return TyVoid
	}
}

func (c *Compiler) parseTypeSpec() Type {
	t := c.cur_()
	switch t.Kind {
	case IntTypeSpec, DblTypeSpec, VoidTypeSpec:
		c.advanceTok()
		return typeSpecFrom(t)
	default:
		c.errAt(t.Loc, SynTypeErr{msg: "expected type specifier, got " + t.String()})
		return TyVoid
	}
}

// parseVarDecl handles both global and local 'let'/'const' declarations:
// ('let'|'const') ident ':' type ('=' expr)? ';'
func (c *Compiler) parseVarDecl(isGlobal bool) {
	isConst := c.at(ConstKw)
	c.advanceTok() // let/const
	name := c.expect(Identifier)
	c.expect(Colon)
	ty := c.parseTypeSpec()

	v, err := c.syms.DeclareVar(name.Lit, ty, isConst)
	if err != nil {
		c.errAt(name.Loc, err)
	}

	if c.at(Assign) {
		c.advanceTok()
		c.cur.emit(FromVarLoad(v))
		valTy, loc := c.parseExpr()
		c.checkAssignable(ty, valTy, loc)
		c.emitStore(ty)
		if err := c.syms.AssertedInitVar(v); err != nil {
			c.errAt(name.Loc, err)
		}
	} else if isConst {
		c.errAt(name.Loc, SynDeclarationErr{msg: "const " + name.Lit + " requires an initializer"})
	}
	c.expect(Semicolon)
	if !isGlobal {
		c.cur.NumLocals++
	}
}

// emitStore always stores a full 8-byte slot: both int and double values
// occupy one 64-bit slot regardless of type.
func (c *Compiler) emitStore(ty Type) {
	c.cur.emit(Simple(OpStore64))
}

func (c *Compiler) checkAssignable(target, value Type, loc fileinput.Location) {
	if target == value {
		return
	}
	if target == TyDouble && value == TyInt {
		c.cur.emit(Simple(OpItoF))
		return
	}
	if target == TyInt && value == TyDouble {
		c.cur.emit(Simple(OpFtoI))
		return
	}
	c.errAt(loc, SynTypeErr{msg: fmt.Sprintf("cannot assign %v to %v", value, target)})
}

// parseFnDecl: 'fn' ident '(' fn_args ')' '->' type block
func (c *Compiler) parseFnDecl() {
	c.advanceTok() // fn
	name := c.expect(Identifier)
	c.expect(LParen)

	var argNames []Token
	var argTys []Type
	if !c.at(RParen) {
		for {
			an := c.expect(Identifier)
			c.expect(Colon)
			at := c.parseTypeSpec()
			argNames = append(argNames, an)
			argTys = append(argTys, at)
			if c.at(Comma) {
				c.advanceTok()
				continue
			}
			break
		}
	}
	c.expect(RParen)
	c.expect(Arrow)
	retTy := c.parseTypeSpec()

	attrs, err := c.syms.DeclareFunc(name.Lit, retTy, argTys, false)
	if err != nil {
		c.errAt(name.Loc, err)
	}
	f := &Func{Attrs: attrs}
	attrs.Func = f
	c.funcs = append(c.funcs, f)

	prevCur := c.cur
	c.cur = f
	c.syms.EnterFunc(retTy != TyVoid)
	for i, an := range argNames {
		if _, err := c.syms.DeclareArg(an.Lit, argTys[i]); err != nil {
			c.errAt(an.Loc, err)
		}
	}
	f.AllReturned = false
	c.parseBlockBody()
	if retTy != TyVoid && !f.AllReturned {
		c.errAt(name.Loc, SynDeclarationErr{msg: "function " + name.Lit + " does not return on all paths"})
	}
	if retTy == TyVoid && !f.AllReturned {
		f.emit(Simple(OpRet))
	}
	c.syms.ExitFunc()
	c.cur = prevCur
}

// ---- statements ----

// parseBlockBody consumes '{' stmt* '}' without opening a fresh scope of
// its own (the caller — parseFnDecl — already pushed the function's
// scope so arguments and the top-level locals share it).
func (c *Compiler) parseBlockBody() {
	c.expect(LBrace)
	for !c.at(RBrace) && !c.at(EOFToken) {
		c.parseStmt()
	}
	c.expect(RBrace)
}

// parseBlock consumes a nested '{' ... '}' as its own scope, used for
// if/while bodies.
func (c *Compiler) parseBlock() {
	c.syms.EnterScope()
	c.expect(LBrace)
	returnedBefore := c.cur.AllReturned
	c.cur.AllReturned = false
	for !c.at(RBrace) && !c.at(EOFToken) {
		c.parseStmt()
	}
	blockReturned := c.cur.AllReturned
	c.cur.AllReturned = returnedBefore
	c.expect(RBrace)
	c.syms.ExitScope()
	if blockReturned {
		c.cur.AllReturned = true
	}
}

func (c *Compiler) parseStmt() {
	switch c.cur_().Kind {
	case LetKw, ConstKw:
		c.parseVarDecl(false)
	case LBrace:
		c.parseBlock()
	case IfKw:
		c.parseIfStmt()
	case WhileKw:
		c.parseWhileStmt()
	case BreakKw:
		c.parseBreak()
	case ContinueKw:
		c.parseContinue()
	case ReturnKw:
		c.parseReturn()
	case Semicolon:
		c.advanceTok()
	default:
		c.parseExprStmt()
	}
}

func (c *Compiler) parseExprStmt() {
	c.parseExprDiscard()
	c.expect(Semicolon)
}

// parseIfStmt emits the teacher's "skip past the taken branch" pattern:
// BR_FALSE to else (or end), then the then-block, then (if there is an
// else) an unconditional BR to end.
func (c *Compiler) parseIfStmt() {
	c.advanceTok() // if
	condTy, loc := c.parseExpr()
	if !condTy.Evaluable() {
		c.errAt(loc, SynTypeErr{msg: "if condition must be int, double or bool"})
	}

	brFalse := c.cur.emit(Simple(OpBrFalse))
	c.parseBlock()
	thenReturned := c.cur.AllReturned

	if c.at(ElseKw) {
		c.advanceTok()
		brEnd := c.cur.emit(Simple(OpBr))
		end := c.cur.emit(Simple(OpNop))
		brFalse.SetOperandToReach(end)

		c.cur.AllReturned = false
		if c.at(IfKw) {
			c.parseIfStmt()
		} else {
			c.parseBlock()
		}
		elseReturned := c.cur.AllReturned

		endAll := c.cur.emit(Simple(OpNop))
		brEnd.SetOperandToReach(endAll)
		c.cur.AllReturned = thenReturned && elseReturned
	} else {
		end := c.cur.emit(Simple(OpNop))
		brFalse.SetOperandToReach(end)
		c.cur.AllReturned = false
	}
}

// parseWhileStmt emits: cond: <condition> BR_FALSE end; <body> BR cond;
// end:. break/continue statements inside the body record their
// placeholder branch instructions on a per-loop stack, back-patched once
// the loop's extent is known.
func (c *Compiler) parseWhileStmt() {
	c.advanceTok() // while
	condStart := c.cur.emit(Simple(OpNop))
	condTy, loc := c.parseExpr()
	if !condTy.Evaluable() {
		c.errAt(loc, SynTypeErr{msg: "while condition must be int, double or bool"})
	}

	brEnd := c.cur.emit(Simple(OpBrFalse))

	c.breaks = append(c.breaks, nil)
	c.continues = append(c.continues, nil)

	c.cur.AllReturned = false
	c.parseBlock()

	backToCond := c.cur.emit(Simple(OpBr))
	backToCond.SetOperandToReach(condStart)

	end := c.cur.emit(Simple(OpNop))
	brEnd.SetOperandToReach(end)

	topBreaks := c.breaks[len(c.breaks)-1]
	topConts := c.continues[len(c.continues)-1]
	c.breaks = c.breaks[:len(c.breaks)-1]
	c.continues = c.continues[:len(c.continues)-1]
	for _, b := range topBreaks {
		b.SetOperandToReach(end)
	}
	for _, cont := range topConts {
		cont.SetOperandToReach(condStart)
	}
	c.cur.AllReturned = false
}

func (c *Compiler) parseBreak() {
	loc := c.cur_().Loc
	c.advanceTok()
	c.expect(Semicolon)
	if len(c.breaks) == 0 {
		c.errAt(loc, SynStatementsErr{msg: "break outside loop"})
	}
	br := c.cur.emit(Simple(OpBr))
	top := len(c.breaks) - 1
	c.breaks[top] = append(c.breaks[top], br)
}

func (c *Compiler) parseContinue() {
	loc := c.cur_().Loc
	c.advanceTok()
	c.expect(Semicolon)
	if len(c.continues) == 0 {
		c.errAt(loc, SynStatementsErr{msg: "continue outside loop"})
	}
	br := c.cur.emit(Simple(OpBr))
	top := len(c.continues) - 1
	c.continues[top] = append(c.continues[top], br)
}

// parseReturn handles both 'return;' (void) and 'return expr;'. Once
// seen, all statements remaining in the enclosing block are still parsed
// (for syntactic validation) but the compiler marks the path returned;
// per spec.md's explicit description, no attempt is made to suppress
// emission for genuinely reachable trailing statements — only the
// all-paths-return bookkeeping is affected.
func (c *Compiler) parseReturn() {
	loc := c.cur_().Loc
	c.advanceTok()
	retTy := c.cur.Attrs.RetTy
	if c.at(Semicolon) {
		if retTy != TyVoid {
			c.errAt(loc, SynTypeErr{msg: "function must return a value"})
		}
	} else {
		// return slot is argument offset 0; address it before evaluating
		// the expression, matching the address-then-value-then-STORE_64
		// order every other store site uses.
		c.cur.emit(U32(OpArga, 0))
		valTy, vloc := c.parseExpr()
		if retTy == TyVoid {
			c.errAt(vloc, SynTypeErr{msg: "void function cannot return a value"})
		}
		c.checkAssignable(retTy, valTy, vloc)
		c.emitStore(retTy)
	}
	c.cur.emit(Simple(OpRet))
	c.expect(Semicolon)
	c.cur.AllReturned = true
}

// ---- expressions ----
// expr := assignment | compare
// compare := sum ((==|!=|<|>|<=|>=) sum)?
// sum := prod ((+|-) prod)*
// prod := fact ((*|/) fact)*
// fact := '-' fact | primary ('as' type)*
// primary := UINT | DBL | STR | ident | ident '(' args ')' | '(' expr ')'

func (c *Compiler) parseExprDiscard() {
	ty, _ := c.parseExpr()
	if ty != TyVoid {
		c.cur.emit(Simple(OpPop))
	}
}

// parseExpr returns the static type of the parsed expression along with
// the location of its first token, for diagnostics.
func (c *Compiler) parseExpr() (Type, fileinput.Location) {
	loc := c.cur_().Loc
	if c.at(Identifier) && c.peekTok(1).Kind == Assign {
		return c.parseAssignment(), loc
	}
	return c.parseCompare(), loc
}

func (c *Compiler) parseAssignment() Type {
	name := c.expect(Identifier)
	v, err := c.syms.AssertedGetVar(name.Lit)
	if err != nil {
		c.errAt(name.Loc, err)
	}
	c.expect(Assign)
	c.cur.emit(FromVarLoad(v))
	valTy, loc := c.parseExpr()
	c.checkAssignable(v.Ty, valTy, loc)
	c.emitStore(v.Ty)
	if err := c.syms.AssertedInitVar(v); err != nil {
		c.errAt(name.Loc, err)
	}
	return TyVoid
}

var relOps = map[TokenKind]Opcode{
	Eq: OpCmpI, Neq: OpCmpI, Lt: OpCmpI, Gt: OpCmpI, Le: OpCmpI, Ge: OpCmpI,
}

func (c *Compiler) parseCompare() Type {
	lty := c.parseSum()
	k := c.cur_().Kind
	if _, ok := relOps[k]; !ok {
		return lty
	}
	loc := c.cur_().Loc
	c.advanceTok()
	rty := c.parseSum()
	if lty != rty {
		c.errAt(loc, SynTypeErr{msg: "comparison operand type mismatch"})
	}
	cmpOp := OpCmpI
	if lty == TyDouble {
		cmpOp = OpCmpF
	}
	c.cur.emit(Simple(cmpOp))
	switch k {
	case Eq:
		c.cur.emit(Simple(OpNot))
	case Neq:
	case Lt:
		c.cur.emit(Simple(OpSetLt))
	case Gt:
		c.cur.emit(Simple(OpSetGt))
	case Le:
		c.cur.emit(Simple(OpSetGt))
		c.cur.emit(Simple(OpNot))
	case Ge:
		c.cur.emit(Simple(OpSetLt))
		c.cur.emit(Simple(OpNot))
	}
	return TyBool
}

func (c *Compiler) parseSum() Type {
	ty := c.parseProd()
	for c.at(Plus) || c.at(Minus) {
		op := c.advanceTok()
		rty := c.parseProd()
		ty = c.binArith(ty, rty, op)
	}
	return ty
}

func (c *Compiler) parseProd() Type {
	ty := c.parseFact()
	for c.at(Mul) || c.at(Div) {
		op := c.advanceTok()
		rty := c.parseFact()
		ty = c.binArith(ty, rty, op)
	}
	return ty
}

func (c *Compiler) binArith(lty, rty Type, op Token) Type {
	if lty != rty {
		c.errAt(op.Loc, SynTypeErr{msg: fmt.Sprintf("operand type mismatch: %v vs %v", lty, rty)})
	}
	isF := lty == TyDouble
	var oc Opcode
	switch op.Kind {
	case Plus:
		oc = OpAddI
		if isF {
			oc = OpAddF
		}
	case Minus:
		oc = OpSubI
		if isF {
			oc = OpSubF
		}
	case Mul:
		oc = OpMulI
		if isF {
			oc = OpMulF
		}
	case Div:
		oc = OpDivI
		if isF {
			oc = OpDivF
		}
	}
	c.cur.emit(Simple(oc))
	return lty
}

func (c *Compiler) parseFact() Type {
	if c.at(Minus) {
		c.advanceTok()
		ty := c.parseFact()
		if ty == TyDouble {
			c.cur.emit(Simple(OpNegF))
		} else {
			c.cur.emit(Simple(OpNegI))
		}
		return ty
	}
	ty := c.parsePrimary()
	for c.at(AsKw) {
		c.advanceTok()
		target := c.parseTypeSpec()
		if ty == TyInt && target == TyDouble {
			c.cur.emit(Simple(OpItoF))
		} else if ty == TyDouble && target == TyInt {
			c.cur.emit(Simple(OpFtoI))
		} else if ty != target {
			c.errAt(c.cur_().Loc, SynTypeErr{msg: fmt.Sprintf("cannot cast %v to %v", ty, target)})
		}
		ty = target
	}
	return ty
}

func (c *Compiler) parsePrimary() Type {
	t := c.cur_()
	switch t.Kind {
	case UintLiteral:
		c.advanceTok()
		c.cur.emit(PushInt(t.UintVal))
		return TyInt
	case DblLiteral:
		c.advanceTok()
		c.cur.emit(PushDouble(t.DblVal))
		return TyDouble
	case StrLiteral:
		c.errAt(t.Loc, SynTypeErr{msg: "string literal only valid as a putstr argument"})
		return TyVoid
	case LParen:
		c.advanceTok()
		ty, _ := c.parseExpr()
		c.expect(RParen)
		return ty
	case Identifier:
		if c.peekTok(1).Kind == LParen {
			return c.parseCall()
		}
		c.advanceTok()
		v, err := c.syms.AssertedGetVar(t.Lit)
		if err != nil {
			c.errAt(t.Loc, err)
		}
		c.cur.emit(FromVarLoad(v))
		c.cur.emit(Simple(OpLoad64))
		return v.Ty
	default:
		c.errAt(t.Loc, SynTokenError{msg: "expected expression, got " + t.String()})
		return TyVoid
	}
}

// parseCall handles both ordinary calls and putstr's string-literal-only
// argument form, per spec.md §4.3.
func (c *Compiler) parseCall() Type {
	name := c.expect(Identifier)
	attrs, err := c.syms.AssertedGetFunc(name.Lit)
	if err != nil {
		c.errAt(name.Loc, err)
	}
	c.expect(LParen)

	// Every call site allocates its return slot before any argument is
	// emitted, builtin or not, so the callee always finds it at ARGA 0.
	if attrs.RetTy != TyVoid {
		c.cur.emit(U32(OpStackAlloc, 1))
	}

	if name.Lit == "putstr" {
		if !c.at(StrLiteral) {
			c.errAt(c.cur_().Loc, SynTypeErr{msg: "putstr requires a string literal argument"})
		}
		s := c.advanceTok()
		c.cur.emit(PushInt(uint64(s.StrID)))
		c.expect(RParen)
		c.cur.emit(U32(OpCallName, attrs.GlobalSlot))
		return TyVoid
	}

	var argc int
	if !c.at(RParen) {
		for {
			loc := c.cur_().Loc
			ty, _ := c.parseExpr()
			if argc < len(attrs.ArgTys) && ty != attrs.ArgTys[argc] {
				c.errAt(loc, SynTypeErr{msg: fmt.Sprintf("argument %d of %s: expected %v, got %v", argc+1, name.Lit, attrs.ArgTys[argc], ty)})
			}
			argc++
			if c.at(Comma) {
				c.advanceTok()
				continue
			}
			break
		}
	}
	c.expect(RParen)
	if argc != len(attrs.ArgTys) {
		c.errAt(name.Loc, SynTypeErr{msg: fmt.Sprintf("%s expects %d arguments, got %d", name.Lit, len(attrs.ArgTys), argc)})
	}
	// CALLNAME addresses every callee uniformly, builtin or user-defined:
	// builtins carry empty bodies and are excluded from the serialized
	// function table, but the VM resolves them by the name string stored
	// at their reserved global slot.
	c.cur.emit(U32(OpCallName, attrs.GlobalSlot))
	return attrs.RetTy
}
