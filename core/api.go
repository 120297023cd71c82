// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: constructors from edge lists and
//       read-only getters over configuration and catalog sizes.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "fmt"

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	MaxInDegree int
	VertexCount int
	EdgeCount   int
	RootCount   int // vertices without parents
}

// FromEdges builds a Graph holding every vertex in ids plus every endpoint of
// edges, inserting edges in the given order.
//
// Implementation:
//   - Stage 1: Register ids in order (idempotent).
//   - Stage 2: AddEdge each pair; the first failure aborts construction.
//
// Errors:
//   - Any AddEdge sentinel (ErrCycle, ErrEdgeExists, ErrLoopNotAllowed, ...),
//     wrapped with the offending pair.
//
// Complexity:
//   - Time O(E·(V+E)) worst case because every insertion runs the cycle check.
func FromEdges(ids []string, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("core: FromEdges(%s→%s): %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// MaxInDegree reports the construction-time in-degree bound (0 = unbounded).
// Complexity: O(1).
func (g *Graph) MaxInDegree() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.maxInDegree
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Under muVert, snapshot the bound and vertex count.
//   - Stage 2: Under muEdgeAdj, snapshot edge count and count roots.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		MaxInDegree: g.maxInDegree,
		VertexCount: len(g.vertices),
	}
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	for _, id := range ids {
		if len(g.parents[id]) == 0 {
			stats.RootCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
