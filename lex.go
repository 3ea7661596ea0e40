package rpn

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// lexToken is a scanned token before classification.
type lexToken struct {
	text string
	kind Kind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// buffer accumulates a run of characters which becomes one token.
type buffer struct {
	b   strings.Builder
	pos int
}

func (b *buffer) add(r rune, pos int) {
	if b.b.Len() == 0 {
		b.pos = pos
	}
	b.b.WriteRune(r)
}

// isDeclare reports whether the buffer content is the declare keyword.
func (b *buffer) isDeclare() bool {
	return strings.TrimSpace(b.b.String()) == Declare
}

type lexer struct {
	num, ident, op buffer
	toks           []lexToken
}

// flush empties a buffer, emitting its content as a token of the given kind
// if anything but spaces remains.
func (l *lexer) flush(b *buffer, kind Kind) {
	s := strings.Trim(b.b.String(), " ")
	if s != "" {
		l.toks = append(l.toks, lexToken{text: s, kind: kind, pos: b.pos})
	}
	b.b.Reset()
}

// flushAll empties all three buffers. Identifiers become kind ident, which the
// classification pass may later change.
func (l *lexer) flushAll(ident, op Kind) {
	l.flush(&l.ident, ident)
	l.flush(&l.num, Numeric)
	l.flush(&l.op, op)
}

func (l *lexer) emit(text string, kind Kind, pos int) {
	l.toks = append(l.toks, lexToken{text: text, kind: kind, pos: pos})
}

// brackets maps each bracket rune to its token kind.
var brackets = map[rune]Kind{
	'(': OpenParen,
	')': CloseParen,
	'[': OpenBracket,
	']': CloseBracket,
	'{': OpenBrace,
	'}': CloseBrace,
}

// scan splits src into unclassified tokens. Positions are 1-based rune
// columns.
func scan(src string) []lexToken {
	var l lexer
	rs := []rune(src)
	for i, r := range rs {
		pos := i + 1
		prev := ' '
		if i > 0 {
			prev = rs[i-1]
		}
		switch {
		case l.ident.isDeclare():
			// The keyword ends at whatever follows it, and that character
			// goes with it.
			l.flushAll(Operator, Operator)
		case r == '-' && i+1 < len(rs) && rs[i+1] != ' ' && (prev == ' ' || prev == '('):
			l.flushAll(Function, Operator)
			l.emit(Negate, Operator, pos)
		case r == ',':
			l.flushAll(Function, Operator)
			l.emit(",", Comma, pos)
		case r == '.', unicode.IsNumber(r):
			l.num.add(r, pos)
			l.flush(&l.ident, Function)
			l.flush(&l.op, Operator)
		case r == ' ', unicode.IsLetter(r):
			l.ident.add(r, pos)
			l.flush(&l.num, Numeric)
			l.flush(&l.op, Operator)
		default:
			if kind, ok := brackets[r]; ok {
				// Brackets are always tokens of their own.
				l.flush(&l.op, Operator)
				l.op.add(r, pos)
				l.flushAll(Function, kind)
				continue
			}
			l.op.add(r, pos)
			l.flush(&l.ident, Function)
			l.flush(&l.num, Numeric)
		}
	}
	l.flushAll(Function, Operator)
	return l.toks
}

// Tokenize splits an expression into classified tokens. The only error is a
// *NumberError for a run of digits and dots that is not a number.
func Tokenize(src string) ([]Token, error) {
	raw := scan(src)
	toks := make([]Token, 0, len(raw))
	for i, t := range raw {
		next := ""
		if i+1 < len(raw) {
			next = raw[i+1].text
		}
		kind := t.kind
		switch {
		case next == ":":
			kind = ParamName
		case next != "(" && kind == Function:
			// Only names followed by a call parenthesis are functions.
			toks = append(toks, Token{Value: Text(t.text), Kind: VariableName})
			continue
		}
		tok, err := classify(t, kind)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// classify creates the token for a scanned entry.
func classify(t lexToken, kind Kind) (Token, error) {
	tok := Token{Kind: kind}
	if t.kind == Numeric {
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Token{}, &NumberError{Text: t.text, Col: t.pos, Err: err}
		}
		// Out of range digit strings parse as infinity.
		tok.Value = Number(f)
	} else {
		tok.Value = Text(t.text)
	}
	switch kind {
	case Operator, Function, ParamName:
		_, _, tok.Arity = Lookup(t.text)
	}
	return tok, nil
}
