// Package tree models immutable labeled trees whose leaves carry
// sparse numeric value maps, and the algebra over them: key-union
// arithmetic, leaf folds, negation, merging and flattening. Branch
// values are always computed from the leaves beneath them, never
// stored.
package tree

import "github.com/cockroachdb/errors"

type kind uint8

const (
	kindInvalid kind = iota
	kindLeaf
	kindBranch
)

// Node is either a leaf (label + value map) or a branch (label +
// ordered children). Which one it is is an explicit tag set by the
// constructors; a zero Node is neither and is rejected by every
// traversal. Nodes are immutable after construction.
type Node struct {
	kind     kind
	label    string
	values   Value
	children []*Node
}

// NewLeaf returns a leaf node. The value map is copied.
func NewLeaf(label string, values Value) *Node {
	return &Node{kind: kindLeaf, label: label, values: values.clone()}
}

// NewBranch returns a branch node with the given children, in display
// order. Child order is semantically meaningful for rendering, not for
// aggregation.
func NewBranch(label string, children ...*Node) *Node {
	kids := make([]*Node, len(children))
	copy(kids, children)
	return &Node{kind: kindBranch, label: label, children: kids}
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.kind == kindLeaf }

// Label returns the node's label.
func (n *Node) Label() string { return n.label }

// Children returns the node's children in display order, or nil for a
// leaf. The returned slice must not be modified.
func (n *Node) Children() []*Node {
	if n.kind != kindBranch {
		return nil
	}
	return n.children
}

// Value returns the node's value map: a copy of the leaf's own map, or
// for a branch the sum-fold of every leaf transitively beneath it.
// Branch values are recomputed on each call; nothing is cached on the
// node.
func (n *Node) Value() Value {
	if n.kind == kindLeaf {
		return n.values.clone()
	}
	v, err := Fold(func(a, b float64) float64 { return a + b }, 0, n)
	if err != nil {
		// Nodes built through the constructors cannot be malformed.
		panic(err)
	}
	return v
}

// Validate rejects nodes that did not come out of a constructor. A
// zero-valued Node is neither leaf nor branch and every traversal
// refuses it.
func (n *Node) Validate() error {
	if n == nil {
		return errors.New("nil tree node")
	}
	if n.kind != kindLeaf && n.kind != kindBranch {
		return errors.Newf("malformed node %q: neither leaf nor branch", n.label)
	}
	return nil
}
