// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return
// sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with "BuildGraph: %w" and returned immediately; the partial
// graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate builds a random graph for p and reports the chosen source and
// whether a negative cycle was planted.
//
// Example:
//
//	g, meta, err := builder.Generate(builder.DefaultRandomParams(trace.Dijkstra), builder.WithSeed(7))
func Generate(p RandomParams, bopts ...BuilderOption) (*core.Graph, RandomMeta, error) {
	var meta RandomMeta
	g, err := BuildGraph(bopts, Random(p, &meta))
	if err != nil {
		return nil, RandomMeta{}, err
	}

	return g, meta, nil
}
