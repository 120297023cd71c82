// File: methods_edges.go
// Role: Edge lifecycle (add/remove/reverse) with acyclicity and in-degree
// enforcement, plus dry-run probes used by search procedures.
//
// Determinism:
//   - Edges() is sorted by (From, To).
//
// Concurrency:
//   - Mutations take muVert (write) then muEdgeAdj (write).
//   - Probes take muVert (read) then muEdgeAdj (read).
package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the dependency from→to.
//
// Implementation:
//   - Stage 1: Validate IDs and reject self-loops.
//   - Stage 2: Under muVert write lock, auto-add missing endpoints.
//   - Stage 3: Under muEdgeAdj write lock, run checkAddLocked and link both indexes.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrEdgeExists,
//     ErrInDegreeExceeded, ErrCycle.
//
// Complexity:
//   - Time O(V+E) worst case (reachability walk), Space O(V).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if err := g.checkAddLocked(from, to); err != nil {
		return err
	}
	g.linkLocked(from, to)

	return nil
}

// RemoveEdge deletes the dependency from→to.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if err := g.requireLocked(from, to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.children[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(from, to)

	return nil
}

// ReverseEdge replaces from→to by to→from atomically: on any error the
// graph is left exactly as it was.
//
// Implementation:
//   - Stage 1: Verify the edge exists.
//   - Stage 2: Unlink it, then run checkAddLocked(to, from).
//   - Stage 3: On failure relink the original edge and return the error.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//     ErrInDegreeExceeded, ErrCycle.
//
// Complexity:
//   - Time O(V+E) worst case, Space O(V).
func (g *Graph) ReverseEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if err := g.requireLocked(from, to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.children[from][to]; !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(from, to)
	if err := g.checkAddLocked(to, from); err != nil {
		g.linkLocked(from, to)
		return err
	}
	g.linkLocked(to, from)

	return nil
}

// CanAddEdge reports, without mutating, whether AddEdge(from, to) would
// succeed. Both endpoints must already exist.
//
// Errors:
//   - The error AddEdge would return, or ErrVertexNotFound.
func (g *Graph) CanAddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireLocked(from, to); err != nil {
		return err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.checkAddLocked(from, to)
}

// CanReverseEdge reports, without mutating, whether ReverseEdge(from, to)
// would succeed.
//
// Implementation:
//   - Reversal closes a cycle iff some path from→…→to exists besides the
//     direct edge, so the walk skips exactly that edge.
func (g *Graph) CanReverseEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if err := g.requireLocked(from, to); err != nil {
		return err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.children[from][to]; !ok {
		return ErrEdgeNotFound
	}
	if g.maxInDegree > 0 && len(g.parents[from]) >= g.maxInDegree {
		return ErrInDegreeExceeded
	}
	if g.reachableLocked(from, to, Edge{From: from, To: to}) {
		return ErrCycle
	}

	return nil
}

// HasEdge reports whether from→to is present.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.children[from][to]

	return ok
}

// Edges returns every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, set := range g.children {
		for to := range set {
			out = append(out, Edge{From: from, To: to})
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// String renders the edge as "from→to".
func (e Edge) String() string { return fmt.Sprintf("%s→%s", e.From, e.To) }

// requireLocked checks both endpoints exist; caller holds muVert.
func (g *Graph) requireLocked(from, to string) error {
	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}

	return nil
}

// checkAddLocked validates a would-be edge from→to; caller holds muEdgeAdj.
// Adding from→to closes a cycle iff to already reaches from.
func (g *Graph) checkAddLocked(from, to string) error {
	if _, ok := g.children[from][to]; ok {
		return ErrEdgeExists
	}
	if g.maxInDegree > 0 && len(g.parents[to]) >= g.maxInDegree {
		return ErrInDegreeExceeded
	}
	if g.reachableLocked(to, from, Edge{}) {
		return ErrCycle
	}

	return nil
}

// reachableLocked walks children from src looking for dst, ignoring the
// single edge skip (zero Edge skips nothing). Caller holds muEdgeAdj.
func (g *Graph) reachableLocked(src, dst string, skip Edge) bool {
	if src == dst {
		return true
	}
	visited := map[string]struct{}{src: {}}
	stack := []string{src}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range g.children[u] {
			if u == skip.From && v == skip.To {
				continue
			}
			if v == dst {
				return true
			}
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			stack = append(stack, v)
		}
	}

	return false
}

func (g *Graph) linkLocked(from, to string) {
	g.children[from][to] = struct{}{}
	g.parents[to][from] = struct{}{}
	g.edgeCount++
}

func (g *Graph) unlinkLocked(from, to string) {
	delete(g.children[from], to)
	delete(g.parents[to], from)
	g.edgeCount--
}
