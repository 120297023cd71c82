// SPDX-License-Identifier: MIT
//
// File: stochastic.go
// Role: Row-stochastic helpers for conditional probability tables: each row
//       is one parent configuration, each column one child state.

package matrix

import (
	"fmt"
	"math"
)

// NormalizeRowsL1 scales every row in place so it sums to 1 and returns the
// original row sums.
//
// Implementation:
//   - Stage 1: Reject negative or non-finite entries (ErrNegative, ErrNaNInf).
//   - Stage 2: Compute per-row sums in fixed i→j order.
//   - Stage 3: Scale rows with a positive sum; a zero row becomes uniform.
//
// Behavior highlights:
//   - A zero row is a parent configuration with no evidence at all; the
//     uniform distribution is the only unbiased choice.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func NormalizeRowsL1(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	sums := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		s := 0.0
		for j := 0; j < m.c; j++ {
			v := m.data[base+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NormalizeRowsL1", i, j, ErrNaNInf)
			}
			if v < 0 {
				return nil, denseErrorf("NormalizeRowsL1", i, j, ErrNegative)
			}
			s += v
		}
		sums[i] = s
	}

	uniform := 1.0 / float64(m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if sums[i] > 0 {
				m.data[base+j] /= sums[i]
			} else {
				m.data[base+j] = uniform
			}
		}
	}

	return sums, nil
}

// ValidateStochastic checks every entry lies in [0,1] and every row sums to 1
// within tol.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNegative, ErrNotStochastic (wrapped with the row).
func ValidateStochastic(m *Dense, tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		s := 0.0
		for j := 0; j < m.c; j++ {
			v := m.data[base+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return denseErrorf("ValidateStochastic", i, j, ErrNaNInf)
			}
			if v < 0 {
				return denseErrorf("ValidateStochastic", i, j, ErrNegative)
			}
			s += v
		}
		if math.Abs(s-1) > tol {
			return fmt.Errorf("ValidateStochastic: row %d sums to %g: %w", i, s, ErrNotStochastic)
		}
	}

	return nil
}

// ArgMaxRow returns the column of the largest entry in row i; ties resolve
// to the lowest column index.
func (m *Dense) ArgMaxRow(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, denseErrorf("ArgMaxRow", i, 0, ErrOutOfRange)
	}
	base := i * m.c
	best := 0
	for j := 1; j < m.c; j++ {
		if m.data[base+j] > m.data[base+best] {
			best = j
		}
	}

	return best, nil
}
