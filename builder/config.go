// SPDX-License-Identifier: MIT
// Package: meteobn/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng        = nil    (each builder seeds its own stream from seed 1)
//   - flip       = 0.0    (noise-free XOR)
//   - noiseScale = 1.0
//   - missing    = 0.0    (no blank cells)
//   - station    = DefaultStation

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by builders. It is passed by value.
type builderConfig struct {
	rng *rand.Rand

	flip       float64
	noiseScale float64

	missingRate    float64
	missingColumns []string // empty = every column

	station string
}

const (
	defaultSeed       = int64(1)
	defaultFlip       = 0.0
	defaultNoiseScale = 1.0
	defaultMissing    = 0.0
)

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		flip:        defaultFlip,
		noiseScale:  defaultNoiseScale,
		missingRate: defaultMissing,
		station:     DefaultStation,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// missingIn reports whether column c is subject to blanking.
func (c builderConfig) missingIn(column string) bool {
	if c.missingRate == 0 {
		return false
	}
	if len(c.missingColumns) == 0 {
		return true
	}
	for _, m := range c.missingColumns {
		if m == column {
			return true
		}
	}

	return false
}
