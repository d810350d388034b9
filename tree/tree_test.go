package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func currentAssets() *Node {
	return NewBranch("Current Assets",
		NewLeaf("Cash", Value{"2018": 100, "2017": 85}),
		NewLeaf("Accounts Receivable", Value{"2018": 5, "2017": 45}),
	)
}

func TestLeafAccessors(t *testing.T) {
	l := NewLeaf("Cash", Value{"2018": 100})
	require.True(t, l.IsLeaf())
	require.Equal(t, "Cash", l.Label())
	require.Nil(t, l.Children())
	require.True(t, l.Value().Equal(Value{"2018": 100}))
}

func TestBranchAccessors(t *testing.T) {
	b := currentAssets()
	require.False(t, b.IsLeaf())
	require.Equal(t, "Current Assets", b.Label())
	require.Len(t, b.Children(), 2)
	require.Equal(t, "Cash", b.Children()[0].Label())
}

func TestBranchValueIsLeafSum(t *testing.T) {
	b := currentAssets()
	require.True(t, b.Value().Equal(Value{"2018": 105, "2017": 130}))

	folded, err := Fold(func(a, b float64) float64 { return a + b }, 0, b)
	require.NoError(t, err)
	require.True(t, b.Value().Equal(folded))
}

func TestNodeImmutability(t *testing.T) {
	src := Value{"2018": 100}
	l := NewLeaf("Cash", src)
	src["2018"] = 999
	require.True(t, l.Value().Equal(Value{"2018": 100}), "constructor must copy the value map")

	got := l.Value()
	got["2018"] = -1
	require.True(t, l.Value().Equal(Value{"2018": 100}), "Value must return a copy")
}

func TestMalformedNodeRejected(t *testing.T) {
	var n Node
	err := n.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed node")

	_, err = Leaves(&n)
	require.Error(t, err)

	_, err = Leaves(NewBranch("ok", &n))
	require.Error(t, err, "malformed children must be rejected too")
}
