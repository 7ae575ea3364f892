// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// weight_fn.go - edge weight generators.
//
// Fixture generators (WeightFn) are public. The two algorithm-specific
// distributions used by Random are internal: their bucket boundaries are
// part of the generated graphs' look and are not meant to be tuned.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of fixture edges when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Negative
// values are allowed; they are meaningful to Bellman-Ford.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

// WithConstantWeight sets a fixed fixture edge weight.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets fixture weights ∼ U[min,max].
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// Dijkstra weight buckets over 1..15: small 1..5 (30%), medium 5..11
// (49%), large 11..15 (21%).
const (
	dijkstraMinWeight = 1
	dijkstraMaxWeight = 15
)

func dijkstraWeight(rng *rand.Rand) int64 {
	switch {
	case rng.Float64() < 0.3:
		return int64(rng.Intn(5)) + dijkstraMinWeight
	case rng.Float64() < 0.7:
		return int64(rng.Intn(7)) + dijkstraMinWeight + 4
	default:
		return int64(rng.Intn(5)) + dijkstraMaxWeight - 4
	}
}

// bellmanFordWeight draws from [min,max] 70% of the time, otherwise from
// the top ten values ending at max. With allowNegative a further 25% of
// edges get a weight in -12..-1.
func bellmanFordWeight(rng *rand.Rand, min, max int64, allowNegative bool) int64 {
	var w int64
	if rng.Float64() < 0.7 {
		w = rng.Int63n(max-min+1) + min
	} else {
		w = int64(rng.Intn(10)) + max - 9
	}
	if allowNegative && rng.Float64() < 0.25 {
		w = -(int64(rng.Intn(12)) + 1)
	}
	return w
}
