package rpn

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the classification of a token.
type Kind int8

const (
	KindNone Kind = iota

	Numeric  // number literal
	Function // name followed by a call parenthesis
	Operator // operator symbol, NEGATE, or declare
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Comma
	ParamName    // entry followed by ':'
	VariableName // bare name
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// Value is either a number or a piece of text. The zero Value is the number 0.
type Value struct {
	num  float64
	text string
	str  bool
}

// Number creates a numeric value.
func Number(f float64) Value {
	return Value{num: f}
}

// Text creates a textual value.
func Text(s string) Value {
	return Value{text: s, str: true}
}

// IsNumber returns whether v holds a number.
func (v Value) IsNumber() bool {
	return !v.str
}

// Float returns the number v holds, if it is numeric.
func (v Value) Float() (float64, bool) {
	if v.str {
		return 0, false
	}
	return v.num, true
}

// Str returns the text v holds, if it is textual.
func (v Value) Str() (string, bool) {
	if !v.str {
		return "", false
	}
	return v.text, true
}

// String renders v. Numbers use the shortest decimal form that round-trips,
// without exponents; infinities render as inf and -inf.
func (v Value) String() string {
	if v.str {
		return v.text
	}
	return formatNum(v.num)
}

func formatNum(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Token is the unit that flows between pipeline stages. Tokens are values;
// stages copy them rather than share them.
type Token struct {
	Value Value
	Kind  Kind
	// Arity is the number of operands an Operator or Function consumes. It is
	// zero for kinds which are never applied.
	Arity int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Value.String() + "/" + strconv.Itoa(t.Arity)
}

// num reads t as a number. Textual values read as 0.
func (t Token) num() float64 {
	f, _ := t.Value.Float()
	return f
}

// text reads t as text. Numeric values read as the empty string.
func (t Token) text() string {
	s, _ := t.Value.Str()
	return s
}

// TokensString renders a token sequence with single spaces between tokens.
func TokensString(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Value.String())
	}
	return b.String()
}
