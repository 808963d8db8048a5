package graphalith

import (
	"strings"
)

// Node is a node in the binary tree of an expression. Leaves hold Number
// tokens and have no children. Other nodes hold an operator token and have
// both children. Each node belongs to exactly one parent.
type Node struct {
	Left  *Node
	Right *Node
	Value Token
}

// Leaf creates a childless node.
func Leaf(tok Token) *Node {
	return &Node{Value: tok}
}

// IsLeaf returns whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BFS lists the values of the tree in breadth-first order, left to right
// within each level.
func (n *Node) BFS() []Token {
	if n == nil {
		return nil
	}
	var r []Token
	queue := []*Node{n}
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		r = append(r, m.Value)
		if m.Left != nil {
			queue = append(queue, m.Left)
		}
		if m.Right != nil {
			queue = append(queue, m.Right)
		}
	}
	return r
}

// Depth returns the number of nodes on the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// String creates a string representation of the tree, with alternating round
// and square brackets grouping each term.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n == nil {
		// Missing children use invalid characters.
		b.WriteByte('$')
		return
	}
	switch k := n.Value.Kind(); {
	case k == Number && n.IsLeaf():
		b.WriteString(n.Value.Value())
	case k.IsOperator():
		n.Left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.Value.Value())
		b.WriteByte(' ')
		n.Right.fmt(b, !square)
	default:
		b.WriteByte('$')
		if n.Left != nil {
			n.Left.fmt(b, !square)
		}
		b.WriteByte('#')
		b.WriteString(n.Value.Value())
		b.WriteByte('#')
		if n.Right != nil {
			n.Right.fmt(b, !square)
		}
		b.WriteByte('$')
	}
}
