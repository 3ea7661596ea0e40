package rpn_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

// shape renders a tree as nested lists for comparison.
func shape(n *rpn.Node) string {
	if len(n.Children) == 0 {
		return n.Value
	}
	s := make([]string, len(n.Children))
	for i, c := range n.Children {
		s[i] = shape(c)
	}
	return n.Value + "[" + strings.Join(s, " ") + "]"
}

func TestBuildForest(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		roots []string
	}{
		{"empty", "", nil},
		{"num", "1", []string{"1"}},
		{"add", "2 + 3", []string{"+[3 2]"}},
		{"mixed", "2 ^^ 2 + 3 - 4", []string{"-[4 +[3 ^^[2 2]]]"}},
		{"negate", "-5 + 3", []string{"+[3 NEGATE[5]]"}},
		{"call", "f(1, 2)", []string{"f[2 1]"}},
		{"declare", "declare x = 5", []string{"=[5 declare[x]]"}},
		// Leftovers are additional roots.
		{"comma", "1, 2", []string{"1", "2"}},
		// Operators with too few operands take what is there.
		{"short", "1 +", []string{"+[1]"}},
		{"lone", "*", []string{"*"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := rpn.StringToRPN(c.src)
			require.NoError(t, err)
			forest := rpn.BuildForest(toks)
			got := make([]string, 0, len(forest))
			for _, n := range forest {
				got = append(got, shape(n))
			}
			if len(c.roots) == 0 {
				require.Empty(t, got, repr.String(forest))
				return
			}
			require.Equal(t, c.roots, got, repr.String(forest))
		})
	}
}

func TestNodePrint(t *testing.T) {
	n := &rpn.Node{Value: "f"}
	a := &rpn.Node{Value: "+"}
	a.AddChild(&rpn.Node{Value: "1"})
	a.AddChild(&rpn.Node{Value: "2"})
	n.AddChild(a)
	n.AddChild(&rpn.Node{Value: "x"})
	want := "- Name: f\n\t- Name: +\n\t\t- Name: 1\n\t\t- Name: 2\n\t- Name: x\n"
	var b bytes.Buffer
	require.NoError(t, n.Print(&b))
	require.Equal(t, want, b.String())
	require.Equal(t, want, n.String())
}

func TestPrintForest(t *testing.T) {
	forest := []*rpn.Node{{Value: "1"}, {Value: "2"}}
	var b bytes.Buffer
	require.NoError(t, rpn.PrintForest(&b, forest))
	require.Equal(t, "- Name: 1\n- Name: 2\n", b.String())
}

func TestPrintDeep(t *testing.T) {
	// Deep trees print without recursion.
	const depth = 2000
	root := &rpn.Node{Value: "0"}
	n := root
	for i := 1; i < depth; i++ {
		c := &rpn.Node{Value: "x"}
		n.AddChild(c)
		n = c
	}
	s := root.String()
	require.Equal(t, depth, strings.Count(s, "\n"))
	require.True(t, strings.HasSuffix(s, strings.Repeat("\t", depth-1)+"- Name: x\n"))
}
