// Package dfs implements cycle detection over raw directed edge lists.
//
// A core.Graph is acyclic by construction, so DetectCycles works on the
// edge list a caller intends to load. It enumerates the simple cycles
// closed by DFS back-edges using three-color marking, canonicalizes each one
// via Booth's minimal rotation, and sorts the result for deterministic output.
// Callers use it to explain why a user-supplied structure was rejected.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles found, L=avg cycle length)
//   - Memory: O(V + E)
package dfs

import (
	"sort"

	"github.com/katalvlaran/meteobn/core"
)

// DetectCycles inspects the directed graph (vertices, edges) for cycles.
// Endpoints missing from vertices are added implicitly. Self-loops count as
// cycles of length one.
// Returns (true, cycles, nil) if any cycles are found; otherwise (false, nil, nil).
func DetectCycles(vertices []string, edges []core.Edge) (bool, [][]string, error) {
	// 1) Build a sorted adjacency list
	adj := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		if v == "" {
			return false, nil, core.ErrEmptyVertexID
		}
		if _, ok := adj[v]; !ok {
			adj[v] = nil
		}
	}
	for _, e := range edges {
		if e.From == "" || e.To == "" {
			return false, nil, core.ErrEmptyVertexID
		}
		adj[e.From] = append(adj[e.From], e.To)
		if _, ok := adj[e.To]; !ok {
			adj[e.To] = nil
		}
	}
	verts := make([]string, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
		sort.Strings(adj[v])
	}
	sort.Strings(verts)

	// 2) Three-color DFS from each unvisited vertex
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))
	seen := make(map[string]struct{})
	var cycles [][]string
	for _, v := range verts {
		if state[v] == White {
			dfsVisit(adj, v, state, &path, seen, &cycles)
		}
	}

	// 3) Deterministic output order
	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisit explores id, recording every Gray→Gray back-edge as a cycle.
func dfsVisit(
	adj map[string][]string,
	id string,
	state map[string]int,
	path *[]string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	state[id] = Gray
	*path = append(*path, id)

	for _, nbr := range adj[id] {
		switch state[nbr] {
		case White:
			dfsVisit(adj, nbr, state, path, seen, cycles)
		case Gray:
			recordCycle(nbr, *path, seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black
}

// recordCycle extracts the cycle path[idx(start):] + start, canonicalizes
// and deduplicates it.
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := IndexOf(path, start)
	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical rotates the closed cycle so its smallest rotation comes first.
// Direction is preserved: a directed cycle and its reversal differ.
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	rot := MinimalRotation(cycle[:n])
	closed := append(append([]string(nil), rot...), rot[0])

	return JoinSig(closed), closed
}
