package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/rpn"
)

// run evaluates each expression and writes what cfg asks for to w. Errors in
// expressions are reported inline; the error result is only for failed
// writes.
func run(w io.Writer, cfg config, exprs []string) error {
	var opts []rpn.ContextOption
	if cfg.Funcs {
		opts = append(opts, rpn.DefaultFuncs())
	}
	opts = append(opts, rpn.Prec(cfg.Prec))
	ctx := rpn.NewContext(opts...)
	for _, src := range exprs {
		if err := runOne(w, cfg, ctx, src); err != nil {
			return err
		}
	}
	return nil
}

func runOne(w io.Writer, cfg config, ctx *rpn.Context, src string) error {
	toks, err := rpn.StringToRPN(src)
	if err != nil {
		_, err = fmt.Fprintf(w, "%s: %v\n", src, err)
		return err
	}
	if cfg.Show.RPN {
		if _, err := fmt.Fprintln(w, rpn.TokensString(toks)); err != nil {
			return err
		}
	}
	if cfg.Show.Infix {
		if _, err := fmt.Fprintln(w, rpn.Infix(toks)); err != nil {
			return err
		}
	}
	if cfg.Show.Dump {
		repr.New(w, repr.Indent("\t")).Println(toks)
	}
	if cfg.Show.Tree {
		if err := rpn.PrintForest(w, rpn.BuildForest(toks)); err != nil {
			return err
		}
	}
	r, ok := ctx.Eval(toks)
	switch {
	case ctx.Err() != nil:
		_, err = fmt.Fprintf(w, "%s: %v\n", src, ctx.Err())
	case !ok:
		_, err = fmt.Fprintln(w, "no result")
	default:
		_, err = fmt.Fprintf(w, "Result: %s\n", result(cfg.Fmt, r))
	}
	return err
}

// result formats a result token. Numbers use the configured verb.
func result(verb string, t rpn.Token) string {
	if f, ok := t.Value.Float(); ok {
		return fmt.Sprintf(verb, f)
	}
	return t.Value.String()
}
