package tree

// Source describes how to read an external hierarchy (a filesystem, a
// parsed document, an API response) while building a tree isomorphic
// to it. Children is called only on nodes IsBranch reports true for,
// and only as the build reaches them, so lazy sources are not forced
// beyond what the resulting tree needs.
type Source[T any] struct {
	// IsBranch reports whether an external node has children.
	IsBranch func(T) bool
	// Children returns an external node's children in display order.
	Children func(T) []T
	// Label extracts the node label.
	Label func(T) string
	// Values extracts a leaf's value map. Called only for leaves.
	Values func(T) Value
}

// Build constructs a tree isomorphic to the external hierarchy rooted
// at root. The walk keeps its own stack, so source depth is not
// limited by the call stack.
func Build[T any](root T, src Source[T]) *Node {
	type frame struct {
		ext T
		dst *Node
	}
	out := &Node{}
	stack := []frame{{root, out}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fr.dst.label = src.Label(fr.ext)
		if !src.IsBranch(fr.ext) {
			fr.dst.kind = kindLeaf
			fr.dst.values = src.Values(fr.ext).clone()
			continue
		}
		fr.dst.kind = kindBranch
		kids := src.Children(fr.ext)
		fr.dst.children = make([]*Node, len(kids))
		for i, k := range kids {
			dc := &Node{}
			fr.dst.children[i] = dc
			stack = append(stack, frame{k, dc})
		}
	}
	return out
}
