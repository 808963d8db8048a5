package graphalith

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
)

// diff finds the first pre-order node of n that differs from m, or nil, nil if
// the two trees are equal.
func (n *Node) diff(m *Node) (*Node, *Node) {
	if n == nil || m == nil {
		if n != m {
			return n, m
		}
		return nil, nil
	}
	if !n.Value.Equal(m.Value) {
		return n, m
	}
	if d, e := n.Left.diff(m.Left); d != nil || e != nil {
		return d, e
	}
	return n.Right.diff(m.Right)
}

// tree is a shortcut to build expected trees. Operands are either *Node or
// strings, which become leaves.
func tree(op string, l, r interface{}) *Node {
	return &Node{Value: NewToken(op), Left: sub(l), Right: sub(r)}
}

func sub(x interface{}) *Node {
	switch x := x.(type) {
	case *Node:
		return x
	case string:
		return Leaf(NewToken(x))
	default:
		panic("bad tree operand")
	}
}

func TestBuildTreeExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *Node
	}{
		{"num", "7", sub("7")},
		{"add", "2 + 3", tree("+", "2", "3")},
		{"chain", "8 - 4 - 2", tree("-", "8", tree("-", "4", "2"))},
		{"mixed", "2 * 3 + 4", tree("*", "2", tree("+", "3", "4"))},
		{"group", "(2 + 3) * 4", tree("*", tree("+", "2", "3"), "4")},
		{"group-only", "[2 * 3]", tree("*", "2", "3")},
		{"nested", "((7))", sub("7")},
		{"angle", "<4>*{2}", tree("*", "4", "2")},
		{"groups", "((2 + 3) * 4) - (6 / 2)", tree("-", tree("*", tree("+", "2", "3"), "4"), tree("/", "6", "2"))},
		{"after-group", "(1) - 2 - 3", tree("-", "1", tree("-", "2", "3"))},
		{"signed", "2 * -3", tree("*", "2", "-3")},
		{"signed-group", "(2 * -3)", tree("*", "2", "-3")},
		{"double-sign", "2 - -3", tree("-", "2", "-3")},
		{"signed-only", "(-3)", sub("-3")},
		{"signed-operand", "2 * (-3)", tree("*", "2", "-3")},
		{"signed-first", "(-3) * 2", tree("*", "-3", "2")},
		{"signed-exponent", "2 * -1e-5", tree("*", "2", "-1e-5")},
		{"exponent", "1e-5 + 2", tree("+", "1e-5", "2")},
		{"exponent-end", "2 + 1e+5", tree("+", "2", "1e+5")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := BuildTree(Tokenize(c.src))
			if err != nil {
				t.Fatalf("failed to build %q: %v", c.src, err)
			}
			if d, e := n.diff(c.n); d != nil || e != nil {
				t.Errorf("mismatched tree for %q:\n\tgot %v at %v\n\twant %v at %v\n%s", c.src, n, d, c.n, e, repr.String(n, repr.Indent("\t")))
			}
		})
	}
}

func TestBuildTreeLeft(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    *Node
	}{
		{"num", "7", sub("7")},
		{"chain", "8 - 4 - 2", tree("-", tree("-", "8", "4"), "2")},
		{"mixed", "2 * 3 + 4", tree("+", tree("*", "2", "3"), "4")},
		{"group", "2 * (3 + 4)", tree("*", "2", tree("+", "3", "4"))},
		{"inner", "(1 - 2 - 3) / 4", tree("/", tree("-", tree("-", "1", "2"), "3"), "4")},
		{"signed", "1 - 2 * -3", tree("*", tree("-", "1", "2"), "-3")},
		{"signed-group", "(-3) - 1", tree("-", "-3", "1")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := BuildTree(Tokenize(c.src), LeftAssociative())
			if err != nil {
				t.Fatalf("failed to build %q: %v", c.src, err)
			}
			if d, e := n.diff(c.n); d != nil || e != nil {
				t.Errorf("mismatched tree for %q:\n\tgot %v at %v\n\twant %v at %v\n%s", c.src, n, d, c.n, e, repr.String(n, repr.Indent("\t")))
			}
		})
	}
}

func TestBuildTreeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
	}{
		{"empty", "", &EmptyExpressionError{Col: 1}},
		{"empty-group", "()", &EmptyExpressionError{Col: 2, End: ")"}},
		{"trailing-op", "2 +", &EmptyExpressionError{Col: 4}},
		{"trailing-op-group", "(2 +)", &EmptyExpressionError{Col: 5, End: ")"}},
		{"unary", "-3 * (4 - 6)", &UnaryError{Col: 1, Operator: "-"}},
		{"unary-group", "2 * (-3 + 1)", &UnaryError{Col: 6, Operator: "-"}},
		{"signed-chain", "2 * -3 + 1", &UnaryError{Col: 5, Operator: "-"}},
		{"unary-mul", "*3", &UnaryError{Col: 1, Operator: "*"}},
		{"double-op", "2 + * 3", &UnaryError{Col: 5, Operator: "*"}},
		{"spaced-sign", "2 * - 3", &UnaryError{Col: 5, Operator: "-"}},
		{"implicit-mul", "2 (3)", &OperatorError{Col: 3, Got: "("}},
		{"implicit-groups", "(2)(3)", &OperatorError{Col: 4, Got: "("}},
		{"unknown", "2 + @ * 3", &TokenError{Col: 5, Text: "@", Kind: Unknown}},
		{"alpha", "x + 1", &TokenError{Col: 1, Text: "x", Kind: Alpha}},
		{"terms", "2 3", &TokenError{Col: 1, Text: "2 3", Kind: Unknown}},
		{"close", ") + 1", &BracketError{Col: 1, Right: ")"}},
		{"mismatch", "(2 + [3 - 1))", &BracketError{Col: 12, Left: "[", Right: ")"}},
		{"unclosed", "(2 + 3", &BracketError{Col: 1, Left: "("}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, err := BuildTree(Tokenize(c.src))
			if err == nil {
				t.Fatalf("%q built %v with no error", c.src, n)
			}
			if n != nil {
				t.Errorf("%q gave a tree with an error: %v", c.src, n)
			}
			if err.Error() != c.err.Error() {
				t.Errorf("%q: want error %q, got %q", c.src, c.err, err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.err.Pos() {
				t.Errorf("%q: error at %d, want %d", c.src, ie.Pos(), c.err.Pos())
			}
		})
	}
}

func TestUnaryUnsupported(t *testing.T) {
	_, err := BuildTree(Tokenize("-(1)"))
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("%v does not unwrap to ErrUnsupported", err)
	}
}

func TestSignedRemainder(t *testing.T) {
	// A signed number must be all that is left of its range, whichever way
	// chains fold.
	for _, src := range []string{"2 * -3 + 1", "(2 * -3 - 1)", "(-3 - 1)"} {
		for _, left := range []bool{false, true} {
			var opts []Option
			if left {
				opts = append(opts, LeftAssociative())
			}
			_, err := BuildTree(Tokenize(src), opts...)
			var u *UnaryError
			if !errors.As(err, &u) {
				t.Errorf("%q (left %t): want *UnaryError, got %#v", src, left, err)
				continue
			}
			if u.Operator != "-" {
				t.Errorf("%q (left %t): wrong operator in %v", src, left, u)
			}
		}
	}
}

func TestMaxDepth(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		depth int
		left  bool
		col   int
	}{
		{"chain", "1 + 1", 1, false, 5},
		{"chain-left", "1 + 1", 1, true, 3},
		{"nest", "((1))", 2, false, 3},
		{"nest-left", "((1))", 2, true, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := []Option{MaxDepth(c.depth)}
			if c.left {
				opts = append(opts, LeftAssociative())
			}
			_, err := BuildTree(Tokenize(c.src), opts...)
			var d *DepthError
			if !errors.As(err, &d) {
				t.Fatalf("want *DepthError, got %#v", err)
			}
			if d.Max != c.depth || d.Col != c.col {
				t.Errorf("want depth %d at %d, got %+v", c.depth, c.col, *d)
			}
			// One more level of depth must be enough.
			opts[0] = MaxDepth(c.depth + 1)
			if _, err := BuildTree(Tokenize(c.src), opts...); err != nil {
				t.Errorf("failed with depth %d: %v", c.depth+1, err)
			}
		})
	}
}

func TestDefaultMaxDepth(t *testing.T) {
	deep := strings.Repeat("1 + ", DefaultMaxDepth) + "1"
	if _, err := BuildTree(Tokenize(deep)); err == nil {
		t.Errorf("chain of %d operators built", DefaultMaxDepth)
	}
	if _, err := BuildTree(Tokenize(deep), MaxDepth(0)); err != nil {
		t.Errorf("unlimited depth failed: %v", err)
	}
	if _, err := BuildTree(Tokenize(deep), LeftAssociative()); err == nil {
		t.Errorf("left chain of %d operators built", DefaultMaxDepth)
	}
}

func TestPreset(t *testing.T) {
	preset := Preset(LeftAssociative(), MaxDepth(3))
	n, err := BuildTree(Tokenize("8 - 4 - 2"), preset)
	if err != nil {
		t.Fatal(err)
	}
	if d, e := n.diff(tree("-", tree("-", "8", "4"), "2")); d != nil || e != nil {
		t.Errorf("preset did not group left: %v", n)
	}
	if _, err := BuildTree(Tokenize("1 + 1 + 1 + 1"), preset); err == nil {
		t.Error("preset did not limit depth")
	}
	if _, err := BuildTree(Tokenize("1 + 1 + 1 + 1"), preset, MaxDepth(0)); err != nil {
		t.Errorf("option after preset did not apply: %v", err)
	}
}

func TestNodeString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"7", "(7)"},
		{"2 + 3", "([2] + [3])"},
		{"8 - 4 - 2", "([8] - [(4) - (2)])"},
		{"(2 + 3) * 4", "([(2) + (3)] * [4])"},
	}
	for _, c := range cases {
		n, err := Parse(c.src)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", c.src, err)
		}
		if got := n.String(); got != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, got)
		}
	}
	bad := &Node{Value: NewToken("x"), Left: Leaf(NewToken("1"))}
	if got, want := bad.String(), "($[1]#x#$)"; got != want {
		t.Errorf("malformed tree: want %q, got %q", want, got)
	}
}

func TestNodeBFS(t *testing.T) {
	n, err := Parse("((2 + 3) * 4) - (6 / 2)")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-", "*", "/", "+", "4", "6", "2", "2", "3"}
	got := n.BFS()
	if len(got) != len(want) {
		t.Fatalf("want %q, got %v", want, got)
	}
	for i, tok := range got {
		if tok.Value() != want[i] {
			t.Errorf("node %d: want %q, got %v", i, want[i], tok)
		}
	}
	if d := n.Depth(); d != 4 {
		t.Errorf("want depth 4, got %d", d)
	}
	var nilnode *Node
	if r := nilnode.BFS(); r != nil {
		t.Errorf("nil tree gave %v", r)
	}
}
