// SPDX-License-Identifier: MIT
// Package: meteobn/builder
//
// impl_discrete.go - discrete tables with a known generating network.
//
// Xor:   A ~ Bernoulli(XorPA), B ~ Bernoulli(XorPB), C = A⊕B (flipped with
//        probability cfg.flip). The true graph is A→C←B.
// Chain: X0 uniform over k states; Xi copies X(i-1) with probability stay,
//        otherwise draws uniformly. The true graph is X0→X1→…→X(n-1).
//
// Determinism: rows are drawn in order from cfg.rng; the same seed and
// options always give the same table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meteobn/table"
)

// Xor returns n rows over columns A, B, C (binary).
func Xor(n int, opts ...BuilderOption) (*table.Discrete, error) {
	if err := validateMin(MethodXor, "rows", n, MinRows); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	r := cfg.rng

	rows := make([][]int, n)
	for i := range rows {
		a, b := bernoulli(r.Float64(), XorPA), bernoulli(r.Float64(), XorPB)
		c := a ^ b
		if r.Float64() < cfg.flip {
			c = 1 - c
		}
		rows[i] = []int{a, b, c}
	}

	return table.NewDiscrete([]string{"A", "B", "C"}, []int{2, 2, 2}, rows)
}

// Chain returns n rows over columns X0..X(length-1), each with k states.
func Chain(n, length, k int, stay float64, opts ...BuilderOption) (*table.Discrete, error) {
	if err := validateMin(MethodChain, "rows", n, MinRows); err != nil {
		return nil, err
	}
	if err := validateMin(MethodChain, "length", length, MinLength); err != nil {
		return nil, err
	}
	if err := validateMin(MethodChain, "states", k, MinStates); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodChain, stay); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	r := cfg.rng

	cols := make([]string, length)
	cards := make([]int, length)
	for j := range cols {
		cols[j] = fmt.Sprintf("X%d", j)
		cards[j] = k
	}

	rows := make([][]int, n)
	for i := range rows {
		row := make([]int, length)
		row[0] = r.Intn(k)
		for j := 1; j < length; j++ {
			if r.Float64() < stay {
				row[j] = row[j-1]
			} else {
				row[j] = r.Intn(k)
			}
		}
		rows[i] = row
	}

	return table.NewDiscrete(cols, cards, rows)
}

func bernoulli(u, p float64) int {
	if u < p {
		return 1
	}

	return 0
}
