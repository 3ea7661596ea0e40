package rpn

import "math"

// Context is a context for evaluating RPN. The zero value is not usable; use
// NewContext. A Context with no functions evaluates exactly like Evaluate. It
// is not safe to use a Context concurrently.
type Context struct {
	stack []Token
	funcs map[string]Func
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	funcsopt map[string]Func
	precopt  uint
)

func (funcsopt) ctxOption() {}
func (precopt) ctxOption()  {}

// Funcs registers functions for evaluation. A Function token naming one of
// them is called rather than pushed as a value. Later options override
// earlier ones; a nil Func unregisters the name.
func Funcs(fns map[string]Func) ContextOption {
	return funcsopt(fns)
}

// DefaultFuncs registers the built-in functions: exp, ln, log, sqrt, pow, pi,
// and e.
func DefaultFuncs() ContextOption {
	return funcsopt(globalfuncs)
}

// Prec sets the precision in bits to which functions compute before rounding
// to float64.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case funcsopt:
			if ctx.funcs == nil {
				ctx.funcs = make(map[string]Func, len(opt))
			}
			for k, v := range opt {
				if v == nil {
					delete(ctx.funcs, k)
					continue
				}
				ctx.funcs[k] = v
			}
		case precopt:
			ctx.prec = uint(opt)
		default:
			panic("rpn: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision to which functions compute in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Err returns the error from the last evaluation, if any. Errors only come
// from registered functions.
func (ctx *Context) Err() error {
	return ctx.err
}

// Eval runs an RPN sequence on a stack and returns the token on top of the
// stack at the end. The second result is false if the stack ends empty or a
// function failed.
//
// Operators pop up to their arity in operands, most recent first, so the right
// operand of a binary operator is popped before the left. Application never
// fails: an operator with too few operands is applied to what there is, and an
// application which means nothing produces nothing.
func (ctx *Context) Eval(rpn []Token) (Token, bool) {
	ctx.stack = ctx.stack[:0]
	ctx.err = nil
	for _, tok := range rpn {
		switch tok.Kind {
		case Operator:
			params := ctx.popn(tok.Arity)
			if r, ok := apply(tok, params); ok {
				ctx.push(r)
			}
		case Function:
			name := tok.text()
			fn := ctx.funcs[name]
			if fn == nil {
				ctx.push(tok)
				continue
			}
			r, err := ctx.call(name, fn, ctx.popn(fn.Arity()))
			if err != nil {
				ctx.err = err
				return Token{}, false
			}
			ctx.push(r)
		default:
			ctx.push(tok)
		}
	}
	if len(ctx.stack) == 0 {
		return Token{}, false
	}
	return ctx.stack[len(ctx.stack)-1], true
}

func (ctx *Context) push(t Token) {
	ctx.stack = append(ctx.stack, t)
}

// popn removes up to n tokens from the stack, stopping early if it empties.
// The result is in pop order and does not alias the stack.
func (ctx *Context) popn(n int) []Token {
	if n > len(ctx.stack) {
		n = len(ctx.stack)
	}
	r := make([]Token, n)
	for i := range r {
		r[i] = ctx.stack[len(ctx.stack)-1-i]
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-n]
	return r
}

// call applies a registered function. params is in pop order; the function
// receives its arguments in source order.
func (ctx *Context) call(name string, fn Func, params []Token) (Token, error) {
	if len(params) < fn.Arity() {
		return Token{}, &CallError{Func: name, Len: len(params)}
	}
	args := make([]float64, len(params))
	for i, p := range params {
		args[len(params)-1-i] = p.num()
	}
	r, err := fn.Call(ctx, args)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: Number(r), Kind: Numeric}, nil
}

// apply applies an operator to its operands. params[0] is the last operand
// pushed. The result is false if the application produces no token.
func apply(op Token, params []Token) (Token, bool) {
	sym := op.text()
	switch len(params) {
	case 2:
		a, b := params[0].num(), params[1].num()
		switch sym {
		case "+":
			return numtok(b + a), true
		case "-":
			return numtok(b - a), true
		case "*":
			return numtok(b * a), true
		case "/":
			return numtok(b / a), true
		case "^^":
			return numtok(math.Pow(b, a)), true
		case "=":
			// Assignment computes its operands but has nowhere to store them.
			return Token{Value: Text(""), Kind: VariableName}, true
		}
	case 1:
		switch sym {
		case Negate:
			return numtok(-params[0].num()), true
		case Declare:
			return Token{Value: Text(params[0].text()), Kind: VariableName}, true
		}
	}
	return Token{}, false
}

func numtok(f float64) Token {
	return Token{Value: Number(f), Kind: Numeric}
}

// Evaluate runs an RPN sequence and returns the result, if there is one.
// Function tokens are treated as values.
func Evaluate(rpn []Token) (Token, bool) {
	return NewContext().Eval(rpn)
}

// EvalString is a shortcut to tokenize, convert, and evaluate an expression.
// The error is non-nil if the expression is malformed or a function fails.
func EvalString(src string, opts ...ContextOption) (Token, bool, error) {
	rpn, err := StringToRPN(src)
	if err != nil {
		return Token{}, false, err
	}
	ctx := NewContext(opts...)
	r, ok := ctx.Eval(rpn)
	return r, ok, ctx.Err()
}

