package rpn

// ToRPN reorders infix tokens into Reverse Polish Notation using the
// shunting-yard algorithm. Numbers and names go straight to the output;
// operators wait on a stack until an operator that binds more loosely, a
// comma, or a closing parenthesis releases them. A function is output when its
// argument list closes.
//
// The error, if any, is a *BracketError for a closing parenthesis without an
// opening one or an opening parenthesis which is never closed. Brackets and
// braces are not checked; they are dropped. Nothing else is validated, so
// operators with missing operands pass through to the evaluator.
func ToRPN(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	// stack holds indices into tokens.
	stack := make([]int, 0, 8)
	top := func() Token {
		return tokens[stack[len(stack)-1]]
	}
	pop := func() {
		out = append(out, top())
		stack = stack[:len(stack)-1]
	}
	for i, tok := range tokens {
		switch tok.Kind {
		case Numeric, VariableName, ParamName:
			out = append(out, tok)
		case Function, OpenParen:
			stack = append(stack, i)
		case Comma:
			for len(stack) > 0 && top().Kind != OpenParen {
				pop()
			}
		case Operator:
			op := tokenop(tok)
			for len(stack) > 0 {
				t := top()
				if t.Kind != Operator && t.Kind != CloseParen {
					break
				}
				if !tokenop(t).yields(op) {
					break
				}
				pop()
			}
			stack = append(stack, i)
		case CloseParen:
			if len(stack) == 0 {
				return nil, &BracketError{Index: i, Right: tok.text()}
			}
			for len(stack) > 0 && top().Kind != OpenParen {
				pop()
			}
			if len(stack) == 0 {
				return nil, &BracketError{Index: i, Right: tok.text()}
			}
			// Discard the open paren. If it began an argument list, the
			// function is complete.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && top().Kind == Function {
				pop()
			}
		default:
			// Brackets, braces, and anything else have no effect.
		}
	}
	for len(stack) > 0 {
		if t := top(); t.Kind == OpenParen {
			return nil, &BracketError{Index: stack[len(stack)-1], Left: t.text()}
		}
		pop()
	}
	return out, nil
}

// StringToRPN tokenizes an expression and converts it to RPN.
func StringToRPN(src string) ([]Token, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ToRPN(toks)
}
