package rpn_test

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

func TestDetokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "1", "1"},
		{"add", "1 + 2", "(1 + 2)"},
		{"mixed", "2 ^^ 2 + 3 - 4", "(((2 ^^ 2) + 3) - 4)"},
		{"right", "2 ^^ 3 ^^ 2", "(2 ^^ (3 ^^ 2))"},
		{"negate", "-5 + 3", "((NEGATE 5) + 3)"},
		{"call", "f(1, 2)", "[f; 2; 1]"},
		{"call-nested", "f(1 + 2, 3)", "[f; 3; (1 + 2)]"},
		{"declare", "declare x = 5", "((declare x) = 5)"},
		{"leftover", "1, 2", "1 2"},
		{"short", "1 +", "(+ 1)"},
		{"lone", "*", "(*)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := rpn.StringToRPN(c.src)
			require.NoError(t, err)
			orig := make([]rpn.Token, len(toks))
			copy(orig, toks)
			require.Equal(t, c.want, rpn.Infix(toks))
			require.Equal(t, orig, toks, "input modified")
		})
	}
}

func TestDetokenizeLong(t *testing.T) {
	// A long chain reduces iteratively.
	const n = 5000
	src := "1" + strings.Repeat(" + 1", n)
	toks, err := rpn.StringToRPN(src)
	require.NoError(t, err)
	got := rpn.Detokenize(toks)
	require.Len(t, got, 1)
	s := got[0].Value.String()
	require.Equal(t, n, strings.Count(s, "("))
	require.Equal(t, n, strings.Count(s, ")"))
}

// group and term are a grammar for fully parenthesized binary expressions,
// independent of the package under test.
type group struct {
	Left  *term  `parser:"\"(\" @@"`
	Op    string `parser:"@(\"+\" | \"-\" | \"*\" | \"/\")"`
	Right *term  `parser:"@@ \")\""`
}

type term struct {
	Num   *float64 `parser:"  @(Float | Int)"`
	Group *group   `parser:"| @@"`
}

var infixParser = participle.MustBuild[term]()

// genExpr generates a random fully parenthesized expression.
func genExpr(rng *rand.Rand, depth int) string {
	if depth == 0 || rng.Intn(3) == 0 {
		return strconv.Itoa(rng.Intn(100))
	}
	ops := []string{"+", "-", "*", "/"}
	return "(" + genExpr(rng, depth-1) + " " + ops[rng.Intn(len(ops))] + " " + genExpr(rng, depth-1) + ")"
}

func TestRoundTrip(t *testing.T) {
	srcs := []string{
		"1",
		"(1 + 2)",
		"((1 + 2) * 3)",
		"(1 - (2 - 3))",
		"((1 - 2) - 3)",
		"((8 / 4) / (2 * 0.5))",
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		srcs = append(srcs, genExpr(rng, 6))
	}
	for _, src := range srcs {
		want, err := infixParser.ParseString("", src)
		require.NoError(t, err, src)
		toks, err := rpn.StringToRPN(src)
		require.NoError(t, err, src)
		back := rpn.Infix(toks)
		got, err := infixParser.ParseString("", back)
		require.NoError(t, err, "%s -> %s", src, back)
		require.Equal(t, want, got, "%s -> %s\n%s", src, back, repr.String(toks))
	}
}

func TestTokensString(t *testing.T) {
	toks := []rpn.Token{
		{Value: rpn.Number(2.5), Kind: rpn.Numeric},
		{Value: rpn.Text("x"), Kind: rpn.VariableName},
		{Value: rpn.Text("+"), Kind: rpn.Operator, Arity: 2},
	}
	require.Equal(t, "2.5 x +", rpn.TokensString(toks))
	require.Equal(t, "", rpn.TokensString(nil))
}
