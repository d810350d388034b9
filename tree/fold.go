package tree

// Fold reduces every leaf value map beneath t into one combined map.
// For each key appearing in any leaf, op is threaded left-to-right
// across the leaves in traversal order, substituting identity where a
// leaf lacks the key: three leaves a, b, c at key k give
// op(op(a, b), c). A tree with no leaves folds to an empty map.
//
// Fold(add, 0, t) is the sum aggregate used for branch values;
// Fold(sub, 0, t) is well-defined and order-sensitive by the same
// rule.
func Fold(op func(a, b float64) float64, identity float64, t *Node) (Value, error) {
	leaves, err := Leaves(t)
	if err != nil {
		return nil, err
	}
	if len(leaves) == 0 {
		return Value{}, nil
	}

	// Keys in first-seen order so repeated folds are deterministic.
	var keys []string
	seen := map[string]bool{}
	for _, l := range leaves {
		for k := range l.values {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}

	out := make(Value, len(keys))
	for _, k := range keys {
		acc, ok := leaves[0].values[k]
		if !ok {
			acc = identity
		}
		for _, l := range leaves[1:] {
			v, ok := l.values[k]
			if !ok {
				v = identity
			}
			acc = op(acc, v)
		}
		out[k] = acc
	}
	return out, nil
}

// Leaves returns every leaf beneath t in preorder, left-to-right. The
// traversal uses an explicit stack so arbitrarily deep trees cannot
// overflow the call stack.
func Leaves(t *Node) ([]*Node, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var out []*Node
	stack := []*Node{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := n.Validate(); err != nil {
			return nil, err
		}
		if n.kind == kindLeaf {
			out = append(out, n)
			continue
		}
		// Push children reversed so they pop left-to-right.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return out, nil
}
