package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meteobn/core"
	"github.com/katalvlaran/meteobn/dfs"
)

// buildChain returns v0→v1→…→v(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%05d", i-1), fmt.Sprintf("v%05d", i)))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	_, err := dfs.DFS(core.NewGraph(), "A")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.DFS(g, "v00000")
	require.NoError(t, err)
	assert.Equal(t, []string{"v00003", "v00002", "v00001", "v00000"}, res.Order)
	assert.Equal(t, 3, res.Depth["v00003"])
	assert.Equal(t, "v00002", res.Parent["v00003"])
}

func TestDFS_Upward(t *testing.T) {
	g := buildChain(t, 3)
	res, err := dfs.DFS(g, "v00002", dfs.WithUpward())
	require.NoError(t, err)
	assert.Equal(t, []string{"v00000", "v00001", "v00002"}, res.Order)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, "v00000", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 2)

	res, err = dfs.DFS(g, "v00000", dfs.WithFilterNeighbor(func(id string) bool { return id != "v00002" }))
	require.NoError(t, err)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.False(t, res.Visited["v00003"])
}

func TestDFS_HookError(t *testing.T) {
	g := buildChain(t, 3)
	boom := errors.New("boom")
	res, err := dfs.DFS(g, "v00000", dfs.WithOnExit(func(id string) error {
		if id == "v00001" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(buildChain(t, 3), "v00000", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversalRootOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal(), dfs.WithRootOrder([]string{"C", "Z"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, res.Order)
}
