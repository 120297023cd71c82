// Package inference answers MAP and posterior queries on a fitted
// bayesnet.Network by variable elimination.
//
// A query runs in four stages:
//
//  1. Prune: keep only the CPTs of the ancestral set of targets ∪ evidence
//     (bfs.Ancestors). Barren descendants sum to 1 and cannot change the
//     answer.
//  2. Reduce: fix every evidence variable inside the remaining factors.
//  3. Eliminate: sum out every hidden variable, one at a time, in a greedy
//     order chosen on the interaction graph (MinDegree by default, or
//     MinFill). Ties between candidates go to the variable that comes first
//     in the network's column order.
//  4. Combine: multiply what is left into one factor over the targets, in
//     the order the caller listed them.
//
// MAP reads the largest entry of that factor. Entries are scanned in flat
// row-major order (first target most significant) and a later entry must be
// strictly larger to win, so ties resolve to the lowest bin indices. Query
// normalises the factor into a posterior.
//
// If the evidence has probability zero the combined factor sums to zero
// and both calls fail with ErrInconsistentEvidence.
//
// An Engine is read-only after construction and safe for concurrent use.
package inference
