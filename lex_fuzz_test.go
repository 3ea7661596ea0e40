//go:build go1.18
// +build go1.18

package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzTokenize(f *testing.F) {
	f.Add("2 ^^ 2 + 3 - 4")
	f.Add("declare x = -5")
	f.Add("f(1, g(2))")
	f.Add("1.2.3")
	f.Add("x: y")
	f.Fuzz(func(t *testing.T, s string) {
		rpn.Tokenize(s)
	})
}

func FuzzStringToRPN(f *testing.F) {
	f.Add("2 ^^ 2 + 3 - 4")
	f.Add("(2 + 3")
	f.Add("2 + 3)")
	f.Add(")(")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := rpn.StringToRPN(s)
		if err != nil {
			return
		}
		rpn.BuildForest(toks)
		rpn.Detokenize(toks)
	})
}
