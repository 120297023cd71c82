// Package discretize maps continuous weather observations to a small ordinal
// alphabet per variable and back.
//
// Fit learns, per column, k contiguous bins described by k+1 increasing
// edges. Three strategies are available:
//
//   - kmeans (default): 1-D Lloyd iterations started from the midpoints of
//     k equal-width bins; inner edges sit halfway between sorted centres.
//   - quantile: equal-frequency edges.
//   - uniform: equal-width edges.
//
// Edges closer than 1e-8 are merged, so a column with fewer distinct values
// than requested ends up with fewer bins; a constant column gets a single
// bin widened by ±0.5. The fitted cardinality is what downstream tables see.
//
// Transform assigns a value to the bin whose half-open interval
// [edge[b], edge[b+1]) contains it (the last bin is closed). Values outside
// [edge[0], edge[k]] are clamped to the nearest bin and counted per column in
// table.Discrete.Clamped. With WithStrictRange the first such value fails
// the call with ErrOutOfRange instead.
//
// Inverse maps a bin to the midpoint of its edges. The round trip is lossy
// but idempotent: Transform(Inverse(Transform(x))) == Transform(x).
package discretize
