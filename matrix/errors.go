// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All matrix operations return these sentinels (possibly wrapped with
// method context) and callers match them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a data slice or operand of the wrong size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry in a matrix that must hold weights
	// or probabilities.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNotStochastic signals a row that does not sum to 1 within tolerance.
	ErrNotStochastic = errors.New("matrix: row does not sum to one")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
