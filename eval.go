package graphalith

// Collapse reduces a tree to a single Number token by applying each operator
// to its collapsed children. A leaf collapses to its own token, unchanged.
//
// Arithmetic is float64. Division by zero is not an error; it produces an
// infinity or NaN as IEEE 754 says, whose token is still a Number.
//
// The error, if any, is a *TreeError. Trees from BuildTree always collapse
// without error.
func Collapse(n *Node) (Token, error) {
	if n == nil {
		return Token{}, &TreeError{Reason: "nil node"}
	}
	if n.IsLeaf() {
		if n.Value.kind != Number {
			return Token{}, &TreeError{Node: n, Reason: "leaf is not a number"}
		}
		return n.Value, nil
	}
	if n.Value.kind == Number {
		return Token{}, &TreeError{Node: n, Reason: "number has children"}
	}
	f := arith[n.Value.kind]
	if f == nil {
		return Token{}, &TreeError{Node: n, Reason: "not an operator"}
	}
	if n.Left == nil || n.Right == nil {
		return Token{}, &TreeError{Node: n, Reason: "missing operand"}
	}
	x, err := operand(n, n.Left)
	if err != nil {
		return Token{}, err
	}
	y, err := operand(n, n.Right)
	if err != nil {
		return Token{}, err
	}
	return number(f(x, y)), nil
}

// operand collapses a child of op and parses its value.
func operand(op, child *Node) (float64, error) {
	r, err := Collapse(child)
	if err != nil {
		return 0, err
	}
	x, err := r.Float()
	if err != nil {
		return 0, &TreeError{Node: op, Reason: "operand " + r.String() + " is not a number"}
	}
	return x, nil
}

var arith = map[Kind]func(x, y float64) float64{
	OpAdd: func(x, y float64) float64 { return x + y },
	OpSub: func(x, y float64) float64 { return x - y },
	OpMul: func(x, y float64) float64 { return x * y },
	OpDiv: func(x, y float64) float64 { return x / y },
}
