// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/meteobn/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one root are
// safe and all children appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	children, err := g.Children("X")
	require.NoError(t, err)
	require.Len(t, children, num)
}

// TestConcurrentProbesAndMutations mixes dry-run probes, clones and
// mutations; the graph must stay acyclic whatever the interleaving.
func TestConcurrentProbesAndMutations(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		from, to := ids[i%len(ids)], ids[(i*3+1)%len(ids)]
		go func() {
			defer wg.Done()
			_ = g.AddEdge(from, to)
		}()
		go func() {
			defer wg.Done()
			_ = g.CanReverseEdge(to, from)
			_ = g.Clone()
		}()
		go func() {
			defer wg.Done()
			_ = g.ReverseEdge(from, to)
		}()
	}
	wg.Wait()

	for _, e := range g.Edges() {
		require.False(t, g.HasPath(e.To, e.From), "cycle through %s", e)
	}
}
