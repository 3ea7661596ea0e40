package rpn

// Associativity decides grouping between operators of equal precedence.
type Associativity int8

const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "Right"
	}
	return "Left"
}

// operator is the metadata for one symbol.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// assoc is the associativity.
	assoc Associativity
	// arity is the number of operands.
	arity int
}

// defaultop is what symbols missing from the table resolve to.
var defaultop = operator{prec: 90, assoc: Left, arity: 2}

// operators is the metadata table. It is never modified after init.
var operators = map[string]operator{
	"=":       {9, Left, 2},
	"declare": {10, Left, 1},
	"==":      {11, Left, 2},
	"<=":      {11, Left, 2},
	">=":      {11, Left, 2},
	"<":       {11, Left, 2},
	">":       {11, Left, 2},
	"!=":      {11, Left, 2},
	"|":       {12, Left, 2},
	"&":       {12, Left, 2},
	"^":       {12, Left, 2},
	"&&":      {13, Left, 2},
	"||":      {13, Left, 2},
	"+":       {14, Left, 2},
	"-":       {14, Left, 2},
	"/":       {15, Left, 2},
	"*":       {15, Left, 2},
	Negate:    {16, Left, 1},
	"^^":      {17, Right, 2},
	":":       {0, Left, 2},
	// Function calls. Not produced by Tokenize.
	"func": {defaultop.prec, Left, 3},
}

// Negate is the operator symbol Tokenize emits for a unary minus.
const Negate = "NEGATE"

// Declare is the keyword which declares a variable.
const Declare = "declare"

// lookup finds the metadata for a symbol. If the symbol is not in the table,
// the result is the default metadata and false.
func lookup(symbol string) (operator, bool) {
	op, ok := operators[symbol]
	if !ok {
		return defaultop, false
	}
	return op, true
}

// Lookup returns the precedence, associativity, and arity of an operator or
// keyword symbol. Unknown symbols have precedence 90, left associativity, and
// two operands.
func Lookup(symbol string) (prec int, assoc Associativity, arity int) {
	op, _ := lookup(symbol)
	return op.prec, op.assoc, op.arity
}

// tokenop gets the metadata for a token. Numeric tokens always get the
// defaults.
func tokenop(t Token) operator {
	s, ok := t.Value.Str()
	if !ok {
		return defaultop
	}
	op, _ := lookup(s)
	return op
}

// Precedence returns the precedence of the symbol a token holds.
func Precedence(t Token) int {
	return tokenop(t).prec
}

// Assoc returns the associativity of the symbol a token holds.
func Assoc(t Token) Associativity {
	return tokenop(t).assoc
}

// yields reports whether an operator already on the stack must be output
// before pushing next.
func (top operator) yields(next operator) bool {
	if top.prec != next.prec {
		return top.prec > next.prec
	}
	return next.assoc == Left
}
