// Package score implements decomposable structure scores over a
// discretized table: K2, BDeu and BIC.
//
// A decomposable score is a sum of per-node local scores, each depending
// only on the node and its parent set. Every local formula is a Func over
// the sufficient statistics of one family (Counts): N_ijk, the number of
// rows where the child takes state k while its parents take configuration j.
//
//	K2:   Σ_j [ lnΓ(r) − lnΓ(N_ij + r) ] + Σ_jk lnΓ(N_ijk + 1)
//	BDeu: Σ_j [ lnΓ(α/q) − lnΓ(N_ij + α/q) ] + Σ_jk [ lnΓ(N_ijk + α/qr) − lnΓ(α/qr) ]
//	BIC:  Σ_jk N_ijk ln(N_ijk / N_ij) − ½ ln(N) · q(r − 1)
//
// where r is the child's cardinality, q the number of parent
// configurations and α the BDeu equivalent sample size.
//
// Scorer binds a formula to a table and memoizes local scores by
// (child, sorted parent set), so a search that changes one family only pays
// for that family. Scorer is safe for concurrent use.
package score
