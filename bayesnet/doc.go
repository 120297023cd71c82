// Package bayesnet holds the Fitted Network: a Dependency Graph over discrete
// variables plus one conditional probability table per node.
//
// A Network is an immutable value. New builds an unfitted skeleton; Fit and
// Network.Refit estimate CPTs from a discretized table and return a new
// Network, leaving the receiver untouched. FromTables builds a fitted
// network from hand-written tables.
//
// CPT layout: a row-stochastic matrix.Dense with one row per parent
// configuration and one column per child state. Parents are kept in sorted
// order and configurations are indexed in mixed radix with the first parent
// most significant, the same layout score.Count produces.
//
// Errors:
//   - ErrInvalidGraph: unknown variable, cycle, cardinality mismatch.
//   - ErrUnfitted: a CPT was requested from a skeleton.
//   - ErrInvalidCPT: a hand-written table has the wrong shape or rows that
//     do not sum to 1.
package bayesnet
