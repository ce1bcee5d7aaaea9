package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectLeavesOrder(t *testing.T) {
	c := newConcat(newConcat(newFlat("a"), newFlat("b")), newFlat("c"))
	leaves := collectLeaves(c)
	require.Len(t, leaves, 3)
	assert.Equal(t, "a", leaves[0].(*flatNode).data)
	assert.Equal(t, "b", leaves[1].(*flatNode).data)
	assert.Equal(t, "c", leaves[2].(*flatNode).data)
}

func TestCollectLeavesSkipsEmpty(t *testing.T) {
	c := newConcat(emptyFlat, newFlat("x"))
	leaves := collectLeaves(c)
	require.Len(t, leaves, 1)
}

func TestBuildBalancedSingleLeaf(t *testing.T) {
	out := buildBalanced([]node{newFlat("solo")}, defaultPolicy())
	assert.Equal(t, "solo", materialize(out))
}

func TestBuildBalancedManyLeavesPreservesOrder(t *testing.T) {
	leaves := []node{newFlat("a"), newFlat("b"), newFlat("c"), newFlat("d"), newFlat("e")}
	out := buildBalanced(leaves, defaultPolicy())
	assert.Equal(t, "abcde", materialize(out))
}

func TestRebalanceRoundTrip(t *testing.T) {
	pol := defaultPolicy()
	c := newConcat(newConcat(newFlat("a"), newFlat("b")), newConcat(newFlat("c"), newFlat("d")))
	out := rebalance(c, pol)
	assert.Equal(t, "abcd", materialize(out))
}
