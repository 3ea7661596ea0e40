package rpn

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals which a Context can call in place of
// a Function token.
type Func interface {
	// Arity is the number of operands the function pops. This replaces the
	// arity of the token, which the tokenizer cannot know.
	Arity() int

	// Call evaluates the function. The arguments are in source order, and
	// there are exactly Arity of them.
	Call(ctx *Context, args []float64) (float64, error)
}

var globalfuncs = map[string]Func{
	"exp": Monadic(bigfloat.Exp),
	"ln": nonneg("ln", Monadic(func(out, in *big.Float) *big.Float {
		if in.Sign() == 0 {
			return out.SetInf(true)
		}
		return bigfloat.Log(out, in)
	})),
	"log": nonneg("log", Monadic(func(out, in *big.Float) *big.Float {
		if in.Sign() == 0 {
			return out.SetInf(true)
		}
		l := bigfloat.Log(out, in)
		ten := new(big.Float).SetPrec(out.Prec()).SetInt64(10)
		return out.Quo(l, bigfloat.Log(new(big.Float).SetPrec(out.Prec()), ten))
	})),
	"sqrt": nonneg("sqrt", Monadic((*big.Float).Sqrt)),
	// Negative bases are rejected even with integer exponents.
	"pow": nonneg("pow", Dyadic(func(out, x, y *big.Float) *big.Float {
		switch {
		case y.Sign() == 0:
			return out.SetInt64(1)
		case x.Sign() == 0 && y.Sign() > 0:
			return out.SetInt64(0)
		case x.Sign() == 0:
			return out.SetInf(false)
		}
		return bigfloat.Pow(out, x, y)
	})),

	// constants
	"pi": Niladic(bigfloat.Pi),
	"e": Niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// bigprec gets the working precision for a context.
func bigprec(ctx *Context) uint {
	if ctx == nil || ctx.prec == 0 {
		return 64
	}
	return ctx.prec
}

// bigargs converts arguments to big floats. NaN and infinite arguments are
// outside the domain of every function.
func bigargs(ctx *Context, args []float64) ([]*big.Float, error) {
	r := make([]*big.Float, len(args))
	for i, x := range args {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &DomainError{X: x, Arg: i + 1}
		}
		r[i] = new(big.Float).SetPrec(bigprec(ctx)).SetFloat64(x)
	}
	return r, nil
}

// bigcall runs f and rounds the value it returns, converting panics for
// out-of-domain arguments into errors. f may return out or a new value.
func bigcall(ctx *Context, f func(out *big.Float) *big.Float) (r float64, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err = p.(error) // panic if not error
		if errors.As(err, new(*DomainError)) {
			return
		}
		if errors.As(err, &big.ErrNaN{}) {
			err = &DomainError{X: math.NaN()}
			return
		}
		panic(err)
	}()
	out := new(big.Float).SetPrec(bigprec(ctx))
	if v := f(out); v != nil && v != out {
		out.Set(v)
	}
	r, _ = out.Float64()
	return r, nil
}

type monadic struct {
	f func(out, in *big.Float) *big.Float
}

func (monadic) Arity() int {
	return 1
}

func (m monadic) Call(ctx *Context, args []float64) (float64, error) {
	in, err := bigargs(ctx, args)
	if err != nil {
		return 0, err
	}
	return bigcall(ctx, func(out *big.Float) *big.Float { return m.f(out, in[0]) })
}

// Monadic wraps a function of one variable into a Func. f returns its result,
// which may be out or a new value; out has the context precision, and a new
// value is rounded to it. If f is called on an argument outside f's domain, it
// should panic with a *DomainError or big.ErrNaN.
func Monadic(f func(out, in *big.Float) *big.Float) Func {
	return monadic{f}
}

type dyadic struct {
	f func(out, x, y *big.Float) *big.Float
}

func (dyadic) Arity() int {
	return 2
}

func (d dyadic) Call(ctx *Context, args []float64) (float64, error) {
	in, err := bigargs(ctx, args)
	if err != nil {
		return 0, err
	}
	return bigcall(ctx, func(out *big.Float) *big.Float { return d.f(out, in[0], in[1]) })
}

// Dyadic wraps a function of two variables into a Func, with the same rules as
// Monadic.
func Dyadic(f func(out, x, y *big.Float) *big.Float) Func {
	return dyadic{f}
}

type niladic struct {
	f func(out *big.Float) *big.Float
}

func (niladic) Arity() int {
	return 0
}

func (n niladic) Call(ctx *Context, args []float64) (float64, error) {
	return bigcall(ctx, func(out *big.Float) *big.Float { return n.f(out) })
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func. f returns its result as for Monadic.
// Unlike Monadic, the wrapped function is expected never to panic.
func Niladic(f func(out *big.Float) *big.Float) Func {
	return niladic{f}
}

// nonnegative is a Func which rejects a negative first argument.
type nonnegative struct {
	Func
	name string
}

func nonneg(name string, f Func) Func {
	return nonnegative{f, name}
}

func (f nonnegative) Call(ctx *Context, args []float64) (float64, error) {
	if len(args) > 0 && args[0] < 0 {
		return 0, &DomainError{X: args[0], Arg: 1, Func: f.name}
	}
	return f.Func.Call(ctx, args)
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := formatNum(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// CallError is an error indicating a function call with too few operands on
// the stack.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of operands that were available.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}
