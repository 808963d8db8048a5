package graphalith

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is returned when evaluating an Expression already
// known to be invalid.
var ErrInvalidExpression = errors.New("not a valid expression")

// ErrUnsupported is the error that UnaryError unwraps to.
var ErrUnsupported = errors.New("not implemented")

// OperatorError is an error indicating that a token other than a binary
// operator appeared where one was required, e.g. "2 3" or "(2)(3)". It
// implements InputError.
type OperatorError struct {
	// Col is the position of the offending token.
	Col int
	// Got is the text of the token found instead of an operator.
	Got string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "expected operator, got "+strconv.Quote(err.Got))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// UnaryError is an error indicating an operator where an operand was
// expected. Unary operators are not implemented. It implements InputError and
// unwraps to ErrUnsupported.
type UnaryError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator text.
	Operator string
}

func (err *UnaryError) Error() string {
	return errpos(err.Col, "unsupported unary operator "+strconv.Quote(err.Operator))
}

func (err *UnaryError) Pos() int {
	return err.Col
}

func (err *UnaryError) Unwrap() error {
	return ErrUnsupported
}

// BracketError is an error indicating mismatched delimiters in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the delimiter at fault.
	Col int
	// Left is the opening delimiter.
	Left string
	// Right is the mismatched closing delimiter.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close delimiter "+err.Right+" with no open delimiter")
	}
	if err.Right == "" {
		return errpos(err.Col, "open delimiter "+err.Left+" with no close delimiter")
	}
	return errpos(err.Col, "mismatched delimiter: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot be an operand, such
// as "@" or "x". It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token text.
	Text string
	// Kind is the token's classification.
	Kind Kind
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+err.Kind.String()+" token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that an expression nests or chains deeper
// than the configured limit. It implements InputError.
type DepthError struct {
	// Col is the position of the token at which the limit was exceeded.
	Col int
	// Max is the limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// TreeError is an error indicating a tree which cannot be collapsed because of
// its shape, e.g. a leaf that isn't a number or an operator node missing a
// child. BuildTree never produces such trees.
type TreeError struct {
	// Node is the offending node. It may be nil.
	Node *Node
	// Reason describes the problem.
	Reason string
}

func (err *TreeError) Error() string {
	if err.Node == nil {
		return "malformed tree: " + err.Reason
	}
	return "malformed tree at " + err.Node.Value.String() + ": " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*UnaryError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
)
