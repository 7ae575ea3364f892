// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("<Method>: ...: %w").
//   - Option constructors panic on meaningless values instead.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a density or probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeightRange indicates MinWeight > MaxWeight.
var ErrBadWeightRange = errors.New("builder: invalid weight range")

// ErrConstructFailed indicates a constructor could not complete, e.g. it
// was handed a nil constructor or a non-empty graph where one is required.
var ErrConstructFailed = errors.New("builder: construction failed")
