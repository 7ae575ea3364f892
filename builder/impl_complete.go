// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits both i → j and j → i for every pair i<j, in lexicographic
//     order of (i,j).
//   - Weights come from cfg.weightFn(cfg.rng), drawn in emission order.
//
// Complexity: O(n²) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph
// on n nodes.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := placeOnCircle(g, n, cfg, nil)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addBoth(g, ids[i], ids[j], cfg); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}

func addBoth(g *core.Graph, u, v core.NodeID, cfg builderConfig) error {
	for _, pair := range [2][2]core.NodeID{{u, v}, {v, u}} {
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(pair[0], pair[1], w); err != nil {
			return fmt.Errorf("AddEdge(%d→%d, w=%d): %w", pair[0], pair[1], w, err)
		}
	}
	return nil
}
