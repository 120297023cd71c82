// File: methods_clone.go
// Role: Deep structural copies.
//
// Concurrency:
//   - Source is read under muVert (read) then muEdgeAdj (read).
//   - The clone is fresh and unshared; no locks are needed to populate it.
package core

// Clone returns a deep copy of the vertex catalog and both adjacency
// indexes. Vertex Metadata maps are shared, not copied.
//
// Implementation:
//   - Stage 1: Copy configuration and vertices under muVert.
//   - Stage 2: Copy children/parents sets under muEdgeAdj.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	c := NewGraph(WithMaxInDegree(g.maxInDegree))
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for id := range g.vertices {
		c.children[id] = copySet(g.children[id])
		c.parents[id] = copySet(g.parents[id])
	}
	c.edgeCount = g.edgeCount

	return c
}

// CloneEmpty returns a copy holding the same vertices and no edges.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	c := NewGraph(WithMaxInDegree(g.maxInDegree))
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		c.children[id] = make(map[string]struct{})
		c.parents[id] = make(map[string]struct{})
	}

	return c
}

func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}

	return dst
}
