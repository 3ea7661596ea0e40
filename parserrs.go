package rpn

import (
	"errors"
	"strconv"
)

// ErrUnbalancedParens is the error every *BracketError matches with
// errors.Is.
var ErrUnbalancedParens = errors.New("unbalanced parentheses")

// BracketError is an error indicating a parenthesis with no partner. It
// implements InputError.
type BracketError struct {
	// Index is the position of the offending token in the token sequence.
	Index int
	// Left is the opening bracket, or empty if a close had none.
	Left string
	// Right is the closing bracket, or empty if an open had none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Index, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Index, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Index
}

func (err *BracketError) Unwrap() error {
	return ErrUnbalancedParens
}

// NumberError is an error indicating a run of digits and dots that does not
// form a number. It implements InputError.
type NumberError struct {
	// Text is the malformed number.
	Text string
	// Col is the rune column where the number starts.
	Col int
	// Err is the error from parsing the number.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For tokenizing errors, this is
	// the rune column; for conversion errors, the index of the token.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NumberError)(nil)
)
