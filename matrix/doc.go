// Package matrix provides a small row-major Dense matrix and the
// row-stochastic helpers used to store conditional probability tables.
//
// A CPT for child X with parents Pa(X) is a Dense of shape
// (∏ card(Pa), card(X)): row = flat index of the parent configuration,
// column = state of X. After NormalizeRowsL1 every row is a distribution.
//
// Numeric policy:
//   - Set/NewDenseFrom reject NaN and ±Inf (ErrNaNInf).
//   - Indexers never panic on user input (ErrOutOfRange); RawRow is the
//     single unchecked fast path for hot loops.
package matrix
