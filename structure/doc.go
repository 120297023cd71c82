// Package structure learns a Dependency Graph from a discretized table by
// greedy hill climbing over directed acyclic graphs.
//
// Each iteration enumerates every single-edge move (add, remove, reverse)
// that keeps the graph acyclic, respects the in-degree bound and is not
// tabu, scores it through the decomposable score's local terms, and applies
// the move with the largest improvement. Only the families whose parent set
// changes are rescored; all other local scores come from the running cache
// in the Scorer.
//
// Determinism: moves are enumerated in column order over ordered pairs
// (from, to): remove then reverse for an existing edge, add otherwise. A
// later move replaces the incumbent only if it improves on it by more than
// a 1e-9 tie tolerance, so among equal moves the first one encountered
// wins. Parallel scoring (WithWorkers) fills a slice indexed by enumeration
// position and selection stays sequential, so results do not depend on the
// worker count.
//
// The search stops when the best improvement is below epsilon (so every
// accepted move strictly raises the score), when the iteration budget is
// spent, or when the context is cancelled. The result is a local optimum.
package structure
