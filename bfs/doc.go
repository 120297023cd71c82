// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance from one or more starts.
//   - Walk children (default) or parents (WithUpward).
//   - Ancestors(g, ids): the ancestral closure used to prune barren
//     variables before exact inference.
//   - Hooks: OnEnqueue, OnVisit (may abort with an error).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Parents/Children return sorted IDs and starts are seeded in the
//	caller's order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
