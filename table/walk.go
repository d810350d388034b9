package table

import (
	"github.com/cockroachdb/errors"

	"github.com/aerissecure/treetab/tree"
)

// DefaultMinLeafDepth is the minimum display depth for leaf rows when
// no option overrides it. Leaves are never shown shallower than this,
// so short trees indent data the same way deeper trees do in the same
// table.
const DefaultMinLeafDepth = 2

// AggregateFunc combines two value maps into one. The walk reduces a
// branch's leaf values left-to-right with it to produce header/total
// aggregates.
type AggregateFunc func(a, b tree.Value) tree.Value

// RenderFunc decides what a single node contributes to the row stream.
// It is called once per node, in preorder, with the label of the
// node's parent (the walked root receives its own label), the depth at
// which the node begins, and the node's aggregate under the configured
// AggregateFunc. It returns the rows emitted before the node's
// children and the rows emitted after them; traversal itself belongs
// to the engine. For a leaf, before and after are emitted adjacently.
type RenderFunc func(parent string, n *tree.Node, depth int, agg tree.Value) (before, after []Row, err error)

// WalkOptions configures a walk. A nil *WalkOptions means all
// defaults; a non-nil value is taken literally, so an explicit
// MinLeafDepth of 0 is honored.
type WalkOptions struct {
	// MinLeafDepth clamps the depth of leaf rows emitted by the
	// built-in policies.
	MinLeafDepth int
	// Aggregate combines leaf value maps for header/total rows.
	// Defaults to key-wise sum.
	Aggregate AggregateFunc
	// Render is the per-node policy. Defaults to
	// DefaultRender(MinLeafDepth).
	Render RenderFunc
}

// Walk traverses t depth-first, children left-to-right, and returns
// the flat row sequence produced by the render policy. The node passed
// in is rendered at depth 0 and each level below it adds exactly 1.
// The traversal keeps an explicit work stack, so tree depth is not
// bounded by the call stack, and it is pure: walking the same tree
// twice yields the same rows.
//
// Errors surface synchronously: a malformed node anywhere in the tree,
// or an error from the render policy (wrapped with the offending
// node's label and depth), fails the whole call before any rows are
// returned.
func Walk(t *tree.Node, opts *WalkOptions) ([]Row, error) {
	o := WalkOptions{MinLeafDepth: DefaultMinLeafDepth}
	if opts != nil {
		o = *opts
	}
	if o.Aggregate == nil {
		o.Aggregate = func(a, b tree.Value) tree.Value { return tree.Sum(a, b) }
	}
	render := o.Render
	if render == nil {
		render = DefaultRender(o.MinLeafDepth)
	}

	// Validate the whole tree and snapshot the leaf values up front, so
	// errors surface before any rows exist and per-branch aggregates
	// reduce a precomputed slice instead of re-walking subtrees.
	leaves, err := tree.Leaves(t)
	if err != nil {
		return nil, err
	}
	leafVals := make([]tree.Value, len(leaves))
	for i, l := range leaves {
		leafVals[i] = l.Value()
	}
	counts := subtreeLeafCounts(t)

	type item struct {
		node   *tree.Node
		parent string
		depth  int
		emit   []Row // deferred footer rows; node is nil
	}
	var out []Row
	nextLeaf := 0
	stack := []item{{node: t, parent: t.Label(), depth: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.node == nil {
			out = append(out, it.emit...)
			continue
		}
		n := it.node
		// Preorder means every leaf left of n has been consumed, so n's
		// leaves are the next counts[n] entries.
		agg := reduceVals(leafVals[nextLeaf:nextLeaf+counts[n]], o.Aggregate)
		if n.IsLeaf() {
			nextLeaf++
		}
		before, after, err := render(it.parent, n, it.depth, agg)
		if err != nil {
			return nil, errors.Wrapf(err, "render %q (depth %d)", n.Label(), it.depth)
		}
		out = append(out, before...)
		if n.IsLeaf() {
			out = append(out, after...)
			continue
		}
		if len(after) > 0 {
			stack = append(stack, item{emit: after})
		}
		kids := n.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{node: kids[i], parent: n.Label(), depth: it.depth + 1})
		}
	}
	return out, nil
}

// reduceVals threads op left-to-right across leaf values. An empty
// slice reduces to the identity (empty) map. The accumulator starts
// from a copy so emitted rows never alias each other.
func reduceVals(vals []tree.Value, op AggregateFunc) tree.Value {
	if len(vals) == 0 {
		return tree.Value{}
	}
	acc := tree.Sum(vals[0])
	for _, v := range vals[1:] {
		acc = op(acc, v)
	}
	return acc
}

// subtreeLeafCounts computes the number of leaves beneath every node
// in one pass: nodes listed in preorder, counts filled in reverse so
// children resolve before parents. Shared subtrees resolve once.
func subtreeLeafCounts(t *tree.Node) map[*tree.Node]int {
	var order []*tree.Node
	stack := []*tree.Node{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, n.Children()...)
	}
	counts := make(map[*tree.Node]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.IsLeaf() {
			counts[n] = 1
			continue
		}
		total := 0
		for _, c := range n.Children() {
			total += counts[c]
		}
		counts[n] = total
	}
	return counts
}

func leafRow(n *tree.Node, depth, minDepth int) Row {
	if depth < minDepth {
		depth = minDepth
	}
	return Row{Depth: depth, Label: n.Label(), Role: Leaf, Values: n.Value()}
}

// DefaultRender is the standard policy: branches emit a plain header
// row, then their children, then a blank-label total row at the
// branch's own depth. The total is skipped when the branch's only
// child is a leaf, whose single visible value would make it redundant,
// and when the branch has no children at all. A branch whose only
// child is itself a branch still gets a total, since that child
// contributes a header and body rather than one scalar line.
func DefaultRender(minLeafDepth int) RenderFunc {
	return func(parent string, n *tree.Node, depth int, agg tree.Value) ([]Row, []Row, error) {
		if n.IsLeaf() {
			return []Row{leafRow(n, depth, minLeafDepth)}, nil, nil
		}
		header := []Row{{Depth: depth, Label: n.Label(), Role: Header}}
		kids := n.Children()
		if len(kids) == 0 || (len(kids) == 1 && kids[0].IsLeaf()) {
			return header, nil, nil
		}
		return header, []Row{{Depth: depth, Role: Total, Values: agg}}, nil
	}
}

// CombinedHeader renders like DefaultRender except each branch's
// header row itself carries the branch aggregate, doubling as the
// subtotal display, and no trailing total row is emitted.
func CombinedHeader(minLeafDepth int) RenderFunc {
	return func(parent string, n *tree.Node, depth int, agg tree.Value) ([]Row, []Row, error) {
		if n.IsLeaf() {
			return []Row{leafRow(n, depth, minLeafDepth)}, nil, nil
		}
		return []Row{{Depth: depth, Label: n.Label(), Role: Header, Values: agg}}, nil, nil
	}
}

// CombinedFooter renders like DefaultRender but unconditionally: every
// branch gets a trailing total row regardless of child count or shape.
// A branch with no leaves totals to the identity (empty) map.
func CombinedFooter(minLeafDepth int) RenderFunc {
	return func(parent string, n *tree.Node, depth int, agg tree.Value) ([]Row, []Row, error) {
		if n.IsLeaf() {
			return []Row{leafRow(n, depth, minLeafDepth)}, nil, nil
		}
		header := []Row{{Depth: depth, Label: n.Label(), Role: Header}}
		return header, []Row{{Depth: depth, Role: Total, Values: agg}}, nil
	}
}
