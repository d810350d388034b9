package tree

import "strings"

// LabelSeparator joins child labels when Shallow collapses a root.
const LabelSeparator = " & "

// NegateTree returns a structurally identical tree with every leaf's
// value map negated. Labels are unchanged. The rebuild is iterative,
// so tree depth is not bounded by the call stack.
func NegateTree(t *Node) *Node {
	return mapLeaves(t, Negate)
}

// mapLeaves rebuilds t with f applied to each leaf value map.
func mapLeaves(t *Node, f func(Value) Value) *Node {
	type frame struct {
		src, dst *Node
	}
	root := &Node{kind: t.kind, label: t.label}
	stack := []frame{{t, root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fr.src.kind == kindLeaf {
			fr.dst.values = f(fr.src.values)
			continue
		}
		fr.dst.children = make([]*Node, len(fr.src.children))
		for i, c := range fr.src.children {
			dc := &Node{kind: c.kind, label: c.label}
			fr.dst.children[i] = dc
			stack = append(stack, frame{c, dc})
		}
	}
	return root
}

// Shallow removes t's root and collapses one level of nesting: the
// result is a branch labeled with t's immediate children's labels
// joined by LabelSeparator, whose children are each immediate leaf
// child kept as-is plus the children of each immediate branch child
// spliced in directly. A leaf is returned unchanged. Unmodified
// subtrees are shared, not copied.
func Shallow(t *Node) *Node {
	if t.kind != kindBranch {
		return t
	}
	labels := make([]string, len(t.children))
	var kids []*Node
	for i, c := range t.children {
		labels[i] = c.label
		if c.kind == kindLeaf {
			kids = append(kids, c)
			continue
		}
		kids = append(kids, c.children...)
	}
	return &Node{kind: kindBranch, label: strings.Join(labels, LabelSeparator), children: kids}
}

// Merge wraps the given trees under one synthetic root, collapses that
// wrapper with Shallow, and relabels the result. Siblings of each
// input tree become siblings under the new root.
func Merge(label string, trees ...*Node) *Node {
	wrapped := NewBranch("", trees...)
	out := Shallow(wrapped)
	return &Node{kind: out.kind, label: label, values: out.values, children: out.children}
}

// TreeSum is the tree-level analogue of Sum: the inputs merged under
// one root, so the merged value is the key-wise sum of the inputs'
// values.
func TreeSum(label string, trees ...*Node) *Node {
	return Merge(label, trees...)
}

// TreeSubtract merges t with the negation of every remaining tree, so
// the result's value is t's value minus the others'. Keys present only
// in a subtrahend come out negative, mirroring Subtract.
func TreeSubtract(label string, t *Node, trees ...*Node) *Node {
	merged := make([]*Node, 0, len(trees)+1)
	merged = append(merged, t)
	for _, o := range trees {
		merged = append(merged, NegateTree(o))
	}
	return Merge(label, merged...)
}
