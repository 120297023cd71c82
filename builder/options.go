// SPDX-License-Identifier: MIT
// Package: meteobn/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Builders themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builder by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG across builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithFlip sets the probability that Xor's C disagrees with A⊕B. Panics
// outside [0,1].
func WithFlip(p float64) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic("builder: WithFlip outside [0,1]")
	}
	return func(c *builderConfig) { c.flip = p }
}

// WithNoiseScale multiplies every Gaussian residual of Weather. Panics on a
// negative scale.
func WithNoiseScale(s float64) BuilderOption {
	if !(s >= 0) {
		panic("builder: WithNoiseScale(<0)")
	}
	return func(c *builderConfig) { c.noiseScale = s }
}

// WithMissing blanks each cell of the named columns (all columns when none
// are named) with probability p. Panics outside [0,1].
func WithMissing(p float64, columns ...string) BuilderOption {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic("builder: WithMissing outside [0,1]")
	}
	cols := append([]string(nil), columns...)
	return func(c *builderConfig) {
		c.missingRate = p
		c.missingColumns = cols
	}
}

// WithStation sets the STATION value written by WriteWeatherCSV; empty
// resets it to DefaultStation.
func WithStation(id string) BuilderOption {
	return func(c *builderConfig) {
		if id == "" {
			id = DefaultStation
		}
		c.station = id
	}
}
