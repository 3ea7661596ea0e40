package rpn

import (
	"bufio"
	"io"
	"strings"
)

// Node is a node in a syntax tree. A node owns its children.
type Node struct {
	Value    string
	Children []*Node
}

// AddChild appends a child to n.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// BuildForest builds syntax trees from an RPN sequence. Each Operator and
// Function takes as many finished trees as its arity as children, rightmost
// operand first. Well-formed input produces exactly one root; anything left
// over from malformed input is returned as additional roots, bottom of the
// stack first.
func BuildForest(rpn []Token) []*Node {
	stack := make([]*Node, 0, len(rpn))
	for _, tok := range rpn {
		n := &Node{Value: tok.Value.String()}
		switch tok.Kind {
		case Operator, Function:
			for i := 0; i < tok.Arity && len(stack) > 0; i++ {
				n.AddChild(stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}
		stack = append(stack, n)
	}
	return stack
}

// Print writes the tree rooted at n depth-first, one node per line, indented
// with a tab per level.
func (n *Node) Print(w io.Writer) error {
	b := bufio.NewWriter(w)
	n.write(b)
	return b.Flush()
}

// String returns the same text that Print writes.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

type stringWriter interface {
	WriteString(string) (int, error)
	WriteByte(byte) error
}

// write renders the tree without recursion so that deep trees cannot exhaust
// the goroutine stack.
func (n *Node) write(b stringWriter) {
	type frame struct {
		n     *Node
		depth int
	}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < f.depth; i++ {
			b.WriteByte('\t')
		}
		b.WriteString("- Name: ")
		b.WriteString(f.n.Value)
		b.WriteByte('\n')
		// Push children in reverse so the first child is visited first.
		for i := len(f.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.Children[i], f.depth + 1})
		}
	}
}

// PrintForest prints each tree of a forest in order.
func PrintForest(w io.Writer, forest []*Node) error {
	for _, n := range forest {
		if err := n.Print(w); err != nil {
			return err
		}
	}
	return nil
}
