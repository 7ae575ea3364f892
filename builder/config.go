// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng      = nil                     (Random requires WithSeed/WithRand)
//   - weightFn = ConstantWeightFn(1)     (fixtures only; Random has its own)
//   - canvas   = 800 × 600

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for fixture edges.
	weightFn WeightFn
	// Canvas size used for node placement.
	width, height float64
}

const (
	// DefaultWidth is the default canvas width.
	DefaultWidth = 800.0
	// DefaultHeight is the default canvas height.
	DefaultHeight = 600.0
)

// newBuilderConfig returns the defaults with opts applied in order
// (later options win).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		width:    DefaultWidth,
		height:   DefaultHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
