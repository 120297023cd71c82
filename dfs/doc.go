// Package dfs implements depth-first search traversal, topological sort and
// edge-list cycle detection for the dependency graphs in meteobn.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, following children (default) or parents (WithUpward).
//     Supports pre-/post-order hooks, cancellation, depth limiting,
//     neighbor filtering and forest traversal with a fixed restart order.
//   - TopologicalSort: parents-first ordering of a core.Graph. The sampler
//     draws variables in this order and the network fixes it at fit time.
//   - DetectCycles: lists the simple cycles closed by back-edges in a raw
//     edge list, used to explain a rejected structure.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
