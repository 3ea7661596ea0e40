package rpn

import "strings"

// Detokenize rewrites an RPN sequence into nested infix renderings. Each step
// replaces the first operator or function and its operands with a single
// token holding their rendering: "(l op r)" for binary operators, "(op a)" for
// others, and "[f; aₙ; …; a₁]" for functions, whose arguments are listed last
// first. Well-formed input reduces to one token.
//
// Operators with fewer operands than their arity take what precedes them.
func Detokenize(rpn []Token) []Token {
	work := append([]Token(nil), rpn...)
	for i := 0; i < len(work); {
		tok := work[i]
		if tok.Kind != Operator && tok.Kind != Function {
			i++
			continue
		}
		n := tok.Arity
		if n > i {
			n = i
		}
		args := work[i-n : i]
		var b strings.Builder
		switch {
		case tok.Kind == Function:
			b.WriteByte('[')
			b.WriteString(tok.Value.String())
			b.WriteString("; ")
			for k := len(args) - 1; k >= 0; k-- {
				b.WriteString(args[k].Value.String())
				if k > 0 {
					b.WriteString("; ")
				}
			}
			b.WriteByte(']')
		case tok.Arity == 2 && len(args) == 2:
			b.WriteByte('(')
			b.WriteString(args[0].Value.String())
			b.WriteByte(' ')
			b.WriteString(tok.Value.String())
			b.WriteByte(' ')
			b.WriteString(args[1].Value.String())
			b.WriteByte(')')
		default:
			b.WriteByte('(')
			b.WriteString(tok.Value.String())
			for _, a := range args {
				b.WriteByte(' ')
				b.WriteString(a.Value.String())
			}
			b.WriteByte(')')
		}
		r := Token{Value: Text(b.String()), Kind: VariableName}
		work = append(append(work[:i-n], r), work[i+1:]...)
		// Everything before the replacement is already reduced.
		i -= n
	}
	return work
}

// Infix renders an RPN sequence as parenthesized infix text.
func Infix(rpn []Token) string {
	return TokensString(Detokenize(rpn))
}
