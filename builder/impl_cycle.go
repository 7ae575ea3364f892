// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i → (i+1)%n for i=0..n-1 in increasing order.
//   - Weights come from cfg.weightFn(cfg.rng); a constant negative weight
//     yields a negative cycle through every node.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := placeOnCircle(g, n, cfg, nil)
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
