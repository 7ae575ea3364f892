// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// layout.go - node placement on a circle centered in the canvas.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/spviz/core"
)

const (
	minLayoutRadius = 150.0
	// Divisor of the shorter canvas side giving the base radius.
	radiusDivisor = 3.2
)

// circleRadius is the base radius for n nodes: a third-ish of the shorter
// canvas side, grown by 3% per node beyond eight, never below 150.
func circleRadius(n int, width, height float64) float64 {
	r := math.Min(width, height) / radiusDivisor
	if n > 8 {
		r *= 1 + float64(n-8)*0.03
	}
	return math.Max(r, minLayoutRadius)
}

// radiusVariance shrinks with n so crowded circles stay readable.
func radiusVariance(n int) float64 {
	switch {
	case n <= 5:
		return 20
	case n <= 8:
		return 15
	case n <= 12:
		return 10
	default:
		return 6
	}
}

// placeOnCircle adds n nodes evenly spaced on the circle, in ascending ID
// order starting at angle 0. With a non-nil rng each node gets a small
// radius and angle jitter; with nil the layout is exact.
// Returns the IDs assigned.
func placeOnCircle(g *core.Graph, n int, cfg builderConfig, rng *rand.Rand) []core.NodeID {
	cx, cy := cfg.width/2, cfg.height/2
	radius := circleRadius(n, cfg.width, cfg.height)
	rVar := radiusVariance(n)
	aVar := math.Pi / (180 * math.Max(1, float64(n)/4))

	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		r := radius
		if rng != nil {
			r += (rng.Float64()*2 - 1) * rVar
			angle += (rng.Float64()*2 - 1) * aVar
		}
		ids[i] = g.AddNode(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	return ids
}
