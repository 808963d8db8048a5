package graphalith

import (
	"unicode/utf8"
)

// Expr = Operand | Operand op Expr
// Operand = num | signed | '(' Expr ')' | '[' Expr ']' | '{' Expr '}' | '<' Expr '>'
// signed = ('+' | '-') num, only after an op or open delimiter and only as
//          the last operand of its Expr
//
// There is no operator precedence. Delimiters are the only way to group terms
// other than the fold direction: "2 * 3 + 4" is "2 * (3 + 4)" unless
// LeftAssociative is used, in which case it is "(2 * 3) + 4".

// BuildTree builds an expression tree from a token sequence, such as one from
// Tokenize. The returned error, if any, is an InputError describing the first
// structural problem found.
func BuildTree(toks []Token, opts ...Option) (*Node, error) {
	p := newctx(opts)
	return buildTree(toks, &p)
}

func buildTree(toks []Token, p *parsectx) (*Node, error) {
	b := builder{toks: toks, p: p}
	return b.expr(0, len(toks), 1)
}

// builder builds trees over index ranges of a single token slice.
type builder struct {
	toks []Token
	p    *parsectx
}

// expr builds the tree for toks[lo:hi].
func (b *builder) expr(lo, hi, depth int) (*Node, error) {
	if lo >= hi {
		return nil, b.empty(hi)
	}
	if err := b.deeper(lo, depth); err != nil {
		return nil, err
	}
	lhs, i, err := b.operand(lo, hi, depth)
	if err != nil {
		return nil, err
	}
	if b.p.left {
		return b.foldLeft(lhs, i, hi, depth)
	}
	if i == hi {
		return lhs, nil
	}
	op, err := b.operator(i, hi)
	if err != nil {
		return nil, err
	}
	rhs, err := b.expr(i+1, hi, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Value: op, Left: lhs, Right: rhs}, nil
}

// foldLeft builds the rest of a chain of operands starting at toks[i], with
// n as the tree for everything before i.
func (b *builder) foldLeft(n *Node, i, hi, depth int) (*Node, error) {
	for i < hi {
		op, err := b.operator(i, hi)
		if err != nil {
			return nil, err
		}
		depth++
		if err := b.deeper(i, depth); err != nil {
			return nil, err
		}
		rhs, j, err := b.operand(i+1, hi, depth)
		if err != nil {
			return nil, err
		}
		n = &Node{Value: op, Left: n, Right: rhs}
		i = j
	}
	return n, nil
}

// operator checks that toks[i] is a binary operator with something after it.
func (b *builder) operator(i, hi int) (Token, error) {
	op := b.toks[i]
	if !op.kind.IsOperator() {
		return Token{}, &OperatorError{Col: op.pos, Got: op.Value()}
	}
	if i+1 >= hi {
		return Token{}, b.empty(hi)
	}
	return op, nil
}

// operand builds the first operand in toks[lo:hi]. It returns the index of
// the first token after the operand.
func (b *builder) operand(lo, hi, depth int) (*Node, int, error) {
	tok := b.toks[lo]
	switch k := tok.kind; {
	case k == Number:
		return Leaf(tok), lo + 1, nil
	case k == DelimiterOpen:
		end, err := b.group(lo, hi)
		if err != nil {
			return nil, 0, err
		}
		inner, err := b.expr(lo+1, end, depth+1)
		if err != nil {
			return nil, 0, err
		}
		return inner, end + 1, nil
	case k == DelimiterClosed:
		return nil, 0, &BracketError{Col: tok.pos, Right: tok.Value()}
	case k == OpAdd, k == OpSub:
		// A sign after a binary operator or an open delimiter is part of a
		// number when everything up to the end of the range is that number:
		// 2 * -3 and (-3), but not 2 * -3 + 1.
		if lo > 0 {
			if prev := b.toks[lo-1].kind; prev.IsOperator() || prev == DelimiterOpen {
				if lit, ok := signed(b.toks[lo:hi]); ok {
					return Leaf(lit), hi, nil
				}
			}
		}
		return nil, 0, &UnaryError{Col: tok.pos, Operator: tok.Value()}
	case k.IsOperator():
		return nil, 0, &UnaryError{Col: tok.pos, Operator: tok.Value()}
	default:
		// The tokenizer splits numbers like 1e-9 around the sign.
		if lit, n := literal(b.toks[lo:hi]); n > 0 {
			return Leaf(lit), lo + n, nil
		}
		return nil, 0, &TokenError{Col: tok.pos, Text: tok.Value(), Kind: k}
	}
}

// group finds the index of the delimiter closing the one at toks[lo].
func (b *builder) group(lo, hi int) (int, error) {
	var stack []Token
	for i := lo; i < hi; i++ {
		tok := b.toks[i]
		switch tok.kind {
		case DelimiterOpen:
			stack = append(stack, tok)
		case DelimiterClosed:
			if len(stack) == 0 {
				// Unreachable while lo is an open delimiter.
				panic("graphalith: delimiter stack underflow at " + tok.String())
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !matches(top.Value(), tok.Value()) {
				return 0, &BracketError{Col: tok.pos, Left: top.Value(), Right: tok.Value()}
			}
			if len(stack) == 0 {
				return i, nil
			}
		}
	}
	top := stack[len(stack)-1]
	return 0, &BracketError{Col: top.pos, Left: top.Value()}
}

// deeper checks the depth limit.
func (b *builder) deeper(i, depth int) error {
	if b.p.maxdepth > 0 && depth > b.p.maxdepth {
		return &DepthError{Col: b.toks[i].pos, Max: b.p.maxdepth}
	}
	return nil
}

// empty creates an error for an empty range ending at toks[hi].
func (b *builder) empty(hi int) error {
	if hi < len(b.toks) {
		tok := b.toks[hi]
		return &EmptyExpressionError{Col: tok.pos, End: tok.Value()}
	}
	if len(b.toks) == 0 {
		return &EmptyExpressionError{Col: 1}
	}
	last := b.toks[len(b.toks)-1]
	return &EmptyExpressionError{Col: last.pos + utf8.RuneCountInString(last.Value())}
}
