package graphalith

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse checks the delimiters of text, tokenizes it, and builds its tree. The
// error, if any, is an InputError.
func Parse(text string, opts ...Option) (*Node, error) {
	if err := CheckBalance(text); err != nil {
		return nil, err
	}
	return BuildTree(Tokenize(text), opts...)
}

// Eval parses text and collapses its tree to a Number token.
func Eval(text string, opts ...Option) (Token, error) {
	n, err := Parse(text, opts...)
	if err != nil {
		return Token{}, err
	}
	return Collapse(n)
}

// Expression is an expression string along with what is known about it. An
// Expression remembers its evaluation after the first successful one. It is not
// safe to call Evaluate concurrently on an Expression that hasn't yet been
// evaluated.
type Expression struct {
	text  string
	kind  Kind
	valid bool
	p     parsectx

	tree *Node
	eval *Token
	err  error
}

// New creates an Expression from text. The expression is valid if text is
// not blank and its delimiters are balanced. With AutoEvaluate, New also
// evaluates it, and any error doing so makes it invalid.
func New(text string, opts ...Option) *Expression {
	p := newctx(opts)
	if p.normalize {
		text = Normalize(text)
	} else {
		text = strings.TrimSpace(text)
	}
	e := &Expression{
		text: text,
		kind: Classify(text),
		p:    p,
	}
	switch {
	case text == "":
		e.err = &EmptyExpressionError{Col: 1}
	default:
		e.err = CheckBalance(text)
	}
	e.valid = e.err == nil
	if e.valid && p.auto {
		if _, err := e.attempt(); err != nil {
			e.valid = false
		}
	}
	return e
}

// attempt builds and collapses the expression, remembering the result.
func (e *Expression) attempt() (Token, error) {
	if e.eval != nil {
		return *e.eval, nil
	}
	if e.tree == nil {
		n, err := buildTree(Tokenize(e.text), &e.p)
		if err != nil {
			e.err = errors.Wrapf(err, "building %q", e.text)
			return Token{}, e.err
		}
		e.tree = n
	}
	r, err := Collapse(e.tree)
	if err != nil {
		e.err = errors.Wrapf(err, "collapsing %q", e.text)
		return Token{}, e.err
	}
	e.eval = &r
	return r, nil
}

// Evaluate returns the value of the expression. If the expression is known
// to be invalid, the error wraps ErrInvalidExpression. Otherwise, errors from
// building or collapsing the tree are returned wrapped with the expression
// text; errors.As finds the original.
func (e *Expression) Evaluate() (Token, error) {
	if !e.valid {
		return Token{}, &invalidError{cause: e.err}
	}
	return e.attempt()
}

// Text returns the text of the expression after normalization.
func (e *Expression) Text() string {
	return e.text
}

// Kind returns the classification of the entire text.
func (e *Expression) Kind() Kind {
	return e.kind
}

// Valid returns whether the expression is known to be valid.
func (e *Expression) Valid() bool {
	return e.valid
}

// Evaluation returns the remembered result of evaluating the expression, if
// any.
func (e *Expression) Evaluation() (Token, bool) {
	if e.eval == nil {
		return Token{}, false
	}
	return *e.eval, true
}

// Tree returns the expression's tree if it has been built.
func (e *Expression) Tree() *Node {
	return e.tree
}

// Err returns the reason the expression is invalid, or the last error from
// Evaluate.
func (e *Expression) Err() error {
	return e.err
}

func (e *Expression) String() string {
	var b strings.Builder
	b.WriteString("value: ")
	b.WriteString(e.text)
	b.WriteString(" kind: ")
	b.WriteString(e.kind.String())
	if e.valid {
		b.WriteString(" valid: true")
	} else {
		b.WriteString(" valid: false")
	}
	b.WriteString(" evaluation: ")
	if e.eval != nil {
		b.WriteString(e.eval.Value())
	} else {
		b.WriteString("None")
	}
	return b.String()
}

// invalidError is the error from evaluating an invalid Expression.
type invalidError struct {
	cause error
}

func (err *invalidError) Error() string {
	if err.cause == nil {
		return ErrInvalidExpression.Error()
	}
	return ErrInvalidExpression.Error() + ": " + err.cause.Error()
}

// Is makes errors.Is(err, ErrInvalidExpression) true.
func (err *invalidError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *invalidError) Unwrap() error {
	return err.cause
}
