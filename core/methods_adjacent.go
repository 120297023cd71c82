// File: methods_adjacent.go
// Role: Neighborhood queries (parents, children, degrees, reachability).
//
// Determinism:
//   - Parents/Children/Roots return IDs sorted ascending.
package core

import "sort"

// Parents returns the sorted parent IDs of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k) for k parents.
func (g *Graph) Parents(id string) ([]string, error) {
	return g.neighbors(id, true)
}

// Children returns the sorted child IDs of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Children(id string) ([]string, error) {
	return g.neighbors(id, false)
}

func (g *Graph) neighbors(id string, up bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	set := g.children[id]
	if up {
		set = g.parents[id]
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	g.muEdgeAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// InDegree returns the number of parents of id, or 0 if id is unknown.
// Complexity: O(1).
func (g *Graph) InDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.parents[id])
}

// OutDegree returns the number of children of id, or 0 if id is unknown.
func (g *Graph) OutDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.children[id])
}

// Roots returns the sorted IDs of vertices without parents.
func (g *Graph) Roots() []string {
	ids := g.Vertices()
	out := make([]string, 0, len(ids))

	g.muEdgeAdj.RLock()
	for _, id := range ids {
		if len(g.parents[id]) == 0 {
			out = append(out, id)
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}

// HasPath reports whether a directed path from→…→to exists.
// A vertex trivially reaches itself.
//
// Complexity: O(V+E).
func (g *Graph) HasPath(from, to string) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.reachableLocked(from, to, Edge{})
}
