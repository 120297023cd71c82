// Package sampling draws synthetic joint observations from a fitted
// bayesnet.Network by forward (ancestral) sampling: nodes are visited in
// topological order and each one is drawn from its CPT row selected by the
// parents already drawn.
//
// Sequences are lazy and restartable. Every call to Sample starts a fresh
// stream from the sampler's seed, so the same seed reproduces the same
// values. Table splits large draws into fixed-size chunks with derived
// seeds; the output therefore does not depend on the worker count.
package sampling
