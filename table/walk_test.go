package table

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/treetab/tree"
)

func currentAssets() *tree.Node {
	return tree.NewBranch("Current Assets",
		tree.NewLeaf("Cash", tree.Value{"2018": 100, "2017": 85}),
		tree.NewLeaf("Accounts Receivable", tree.Value{"2018": 5, "2017": 45}),
	)
}

func TestWalkDefaultPolicy(t *testing.T) {
	rows, err := Walk(currentAssets(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	require.Equal(t, Row{Depth: 0, Label: "Current Assets", Role: Header}, rows[0])

	require.Equal(t, Leaf, rows[1].Role)
	require.Equal(t, "Cash", rows[1].Label)
	require.Equal(t, DefaultMinLeafDepth, rows[1].Depth)
	require.True(t, rows[1].Values.Equal(tree.Value{"2018": 100, "2017": 85}))

	require.Equal(t, "Accounts Receivable", rows[2].Label)
	require.Equal(t, DefaultMinLeafDepth, rows[2].Depth)

	require.Equal(t, Total, rows[3].Role)
	require.Equal(t, "", rows[3].Label)
	require.Equal(t, 0, rows[3].Depth)
	require.True(t, rows[3].Values.Equal(tree.Value{"2018": 105, "2017": 130}))
}

func TestWalkLeafRoot(t *testing.T) {
	rows, err := Walk(tree.NewLeaf("Cash", tree.Value{"x": 1}), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, Leaf, rows[0].Role)
	require.Equal(t, DefaultMinLeafDepth, rows[0].Depth)
}

func TestWalkSingleLeafChildSuppressesTotal(t *testing.T) {
	tr := tree.NewBranch("Cash Accounts",
		tree.NewLeaf("Checking", tree.Value{"x": 50}),
	)
	rows, err := Walk(tr, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2, "header + leaf, no redundant total")
	require.Equal(t, Header, rows[0].Role)
	require.Equal(t, Leaf, rows[1].Role)
}

// A lone branch child contributes a header and body rather than a
// single scalar line, so its parent still totals; the inner branch,
// whose only child is a leaf, does not.
func TestWalkSingleChainTwoDeep(t *testing.T) {
	tr := tree.NewBranch("Assets",
		tree.NewBranch("Cash Accounts",
			tree.NewLeaf("Checking", tree.Value{"x": 50}),
		),
	)
	rows, err := Walk(tr, nil)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, Row{Depth: 0, Label: "Assets", Role: Header}, rows[0])
	require.Equal(t, Row{Depth: 1, Label: "Cash Accounts", Role: Header}, rows[1])
	require.Equal(t, Leaf, rows[2].Role)
	require.Equal(t, Total, rows[3].Role)
	require.Equal(t, 0, rows[3].Depth)
	require.True(t, rows[3].Values.Equal(tree.Value{"x": 50}))
}

func TestWalkEmptyBranch(t *testing.T) {
	rows, err := Walk(tree.NewBranch("Nothing"), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only; no total to compute")
	require.Equal(t, Header, rows[0].Role)
}

func TestWalkDepthIncrementsPerLevel(t *testing.T) {
	tr := tree.NewBranch("a",
		tree.NewBranch("b",
			tree.NewBranch("c",
				tree.NewLeaf("l1", tree.Value{"x": 1}),
				tree.NewLeaf("l2", tree.Value{"x": 2}),
			),
			tree.NewLeaf("l3", tree.Value{"x": 3}),
		),
		tree.NewLeaf("l4", tree.Value{"x": 4}),
	)
	rows, err := Walk(tr, nil)
	require.NoError(t, err)

	headerDepth := map[string]int{}
	for _, r := range rows {
		switch r.Role {
		case Header:
			headerDepth[r.Label] = r.Depth
		case Leaf:
			require.GreaterOrEqual(t, r.Depth, DefaultMinLeafDepth)
		}
	}
	require.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, headerDepth)

	// Leaves below the minimum keep their natural depth.
	require.Equal(t, 3, findRow(t, rows, "l1").Depth)
	require.Equal(t, 2, findRow(t, rows, "l3").Depth)
	require.Equal(t, 2, findRow(t, rows, "l4").Depth)
}

func findRow(t *testing.T, rows []Row, label string) Row {
	t.Helper()
	for _, r := range rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no row labeled %q", label)
	return Row{}
}

func TestWalkMinLeafDepthZero(t *testing.T) {
	rows, err := Walk(currentAssets(), &WalkOptions{MinLeafDepth: 0})
	require.NoError(t, err)
	require.Equal(t, 1, rows[1].Depth, "explicit zero minimum leaves natural depth")
}

func TestWalkCombinedHeader(t *testing.T) {
	opts := &WalkOptions{
		MinLeafDepth: DefaultMinLeafDepth,
		Render:       CombinedHeader(DefaultMinLeafDepth),
	}
	rows, err := Walk(currentAssets(), opts)
	require.NoError(t, err)
	require.Len(t, rows, 3, "no separate total row")
	require.Equal(t, Header, rows[0].Role)
	require.True(t, rows[0].Values.Equal(tree.Value{"2018": 105, "2017": 130}),
		"header doubles as subtotal")
}

func TestWalkCombinedFooter(t *testing.T) {
	tr := tree.NewBranch("Cash Accounts",
		tree.NewLeaf("Checking", tree.Value{"x": 50}),
	)
	opts := &WalkOptions{
		MinLeafDepth: DefaultMinLeafDepth,
		Render:       CombinedFooter(DefaultMinLeafDepth),
	}
	rows, err := Walk(tr, opts)
	require.NoError(t, err)
	require.Len(t, rows, 3, "total emitted even for a single leaf child")
	require.Equal(t, Total, rows[2].Role)
	require.True(t, rows[2].Values.Equal(tree.Value{"x": 50}))

	rows, err = Walk(tree.NewBranch("Nothing"), opts)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.True(t, rows[1].Values.Equal(tree.Value{}), "empty branch totals to identity")
}

func TestWalkCustomAggregate(t *testing.T) {
	tr := tree.NewBranch("root",
		tree.NewLeaf("a", tree.Value{"x": 10}),
		tree.NewLeaf("b", tree.Value{"x": 4}),
		tree.NewLeaf("c", tree.Value{"x": 1}),
	)
	opts := &WalkOptions{
		MinLeafDepth: DefaultMinLeafDepth,
		Aggregate:    func(a, b tree.Value) tree.Value { return tree.Subtract(a, b) },
	}
	rows, err := Walk(tr, opts)
	require.NoError(t, err)
	total := rows[len(rows)-1]
	require.Equal(t, Total, total.Role)
	require.Equal(t, 5.0, total.Values["x"], "(10 - 4) - 1")
}

func TestWalkParentLabels(t *testing.T) {
	tr := tree.NewBranch("root",
		tree.NewBranch("mid",
			tree.NewLeaf("leaf", tree.Value{"x": 1}),
		),
	)
	parents := map[string]string{}
	opts := &WalkOptions{
		Render: func(parent string, n *tree.Node, depth int, agg tree.Value) ([]Row, []Row, error) {
			parents[n.Label()] = parent
			return nil, nil, nil
		},
	}
	_, err := Walk(tr, opts)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"root": "root", // the walked root receives its own label
		"mid":  "root",
		"leaf": "mid",
	}, parents)
}

func TestWalkRenderErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	opts := &WalkOptions{
		Render: func(parent string, n *tree.Node, depth int, agg tree.Value) ([]Row, []Row, error) {
			if n.Label() == "Cash" {
				return nil, nil, boom
			}
			return nil, nil, nil
		},
	}
	_, err := Walk(currentAssets(), opts)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), `render "Cash" (depth 1)`)
}

func TestWalkMalformedNode(t *testing.T) {
	var bad tree.Node
	_, err := Walk(&bad, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed node")

	_, err = Walk(tree.NewBranch("root", &bad), nil)
	require.Error(t, err)
}

func TestWalkDeepTree(t *testing.T) {
	n := tree.NewLeaf("leaf", tree.Value{"x": 1})
	for i := 0; i < 100000; i++ {
		n = tree.NewBranch("b", n)
	}
	rows, err := Walk(n, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
}

func TestWalkIsPure(t *testing.T) {
	tr := currentAssets()
	first, err := Walk(tr, nil)
	require.NoError(t, err)
	second, err := Walk(tr, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
