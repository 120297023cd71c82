// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, register the Vertex if absent.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap both adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds muVert for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.children[id] == nil {
		g.children[id] = make(map[string]struct{})
	}
	if g.parents[id] == nil {
		g.parents[id] = make(map[string]struct{})
	}
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored Vertex for id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes id together with every incident edge.
//
// Implementation:
//   - Stage 1: Under muVert write lock, verify presence and drop the catalog entry.
//   - Stage 2: Under muEdgeAdj write lock, unlink id from its parents' child sets
//     and its children's parent sets, then drop both buckets.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for p := range g.parents[id] {
		delete(g.children[p], id)
		g.edgeCount--
	}
	for c := range g.children[id] {
		delete(g.parents[c], id)
		g.edgeCount--
	}
	delete(g.parents, id)
	delete(g.children, id)

	return nil
}

// Vertices returns every vertex ID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
