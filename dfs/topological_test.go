package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_NoEdgesFollowsPriority(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)

	order, err = dfs.TopologicalSort(g, dfs.WithPriority([]string{"C", "B", "A"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

func TestTopo_ParentsFirst(t *testing.T) {
	g, err := core.FromEdges(nil, []core.Edge{
		{From: "SLP", To: "TEMP"},
		{From: "DEWP", To: "TEMP"},
		{From: "TEMP", To: "MAX"},
		{From: "TEMP", To: "MIN"},
		{From: "WDSP", To: "SLP"},
	})
	require.NoError(t, err)

	priority := []string{"SLP", "DEWP", "MAX", "MIN", "TEMP", "WDSP"}
	order, err := dfs.TopologicalSort(g, dfs.WithPriority(priority))
	require.NoError(t, err)
	require.Len(t, order, 6)
	for _, e := range g.Edges() {
		assert.Less(t, position(order, e.From), position(order, e.To), "edge %s", e)
	}
	assert.Equal(t, []string{"WDSP", "SLP", "DEWP", "TEMP", "MAX", "MIN"}, order)
}

func TestTopo_LargeChainReversedPriority(t *testing.T) {
	const n = 2000
	g := buildChain(t, n)
	vs := g.Vertices()
	rev := make([]string, len(vs))
	for i := range vs {
		rev[i] = vs[len(vs)-1-i]
	}
	order, err := dfs.TopologicalSort(g, dfs.WithPriority(rev))
	require.NoError(t, err)
	assert.Equal(t, vs, order)
}
