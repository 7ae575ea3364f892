// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Places n nodes on the canvas circle in ascending ID order.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//   - Weights come from cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := placeOnCircle(g, n, cfg, nil)
		for i := 1; i < n; i++ {
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(ids[i-1], ids[i], w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodPath, ids[i-1], ids[i], w, err)
			}
		}

		return nil
	}
}
