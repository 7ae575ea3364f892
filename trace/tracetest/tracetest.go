// Package tracetest provides graph fixtures and trace property checks
// shared by the simulator and timeline tests.
package tracetest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// W is a weighted edge literal: {source, target, weight}.
type W [3]int64

// Fixture is a frozen graph plus a source.
type Fixture struct {
	Name   string
	Nodes  []core.Node
	Edges  []core.Edge
	Source core.NodeID
}

// Build lays n nodes on a circle and adds the given edges in order.
func Build(n int, ws ...W) ([]core.Node, []core.Edge) {
	nodes := make([]core.Node, n)
	for i := range nodes {
		a := 2 * math.Pi * float64(i) / float64(max(n, 1))
		nodes[i] = core.Node{
			ID:    core.NodeID(i),
			Label: core.Label(core.NodeID(i)),
			X:     200 + 150*math.Cos(a),
			Y:     200 + 150*math.Sin(a),
		}
	}
	edges := make([]core.Edge, len(ws))
	for i, w := range ws {
		edges[i] = core.NewEdge(core.NodeID(w[0]), core.NodeID(w[1]), w[2])
	}
	return nodes, edges
}

func fixture(name string, n int, ws ...W) Fixture {
	nodes, edges := Build(n, ws...)
	return Fixture{Name: name, Nodes: nodes, Edges: edges}
}

// Triangle is A→B(1), B→C(2), A→C(5).
func Triangle() Fixture { return fixture("triangle", 3, W{0, 1, 1}, W{1, 2, 2}, W{0, 2, 5}) }

// NegativeCycle is A→B(1), B→C(-3), C→B(1); B→C→B weighs -2.
func NegativeCycle() Fixture {
	return fixture("negative-cycle", 3, W{0, 1, 1}, W{1, 2, -3}, W{2, 1, 1})
}

// Disconnected is two nodes and no edges.
func Disconnected() Fixture { return fixture("disconnected", 2) }

// NegativeEdge is A→B(-5).
func NegativeEdge() Fixture { return fixture("negative-edge", 2, W{0, 1, -5}) }

// Grid is a six-node graph with alternative routes, ties and an
// unreachable node F.
func Grid() Fixture {
	return fixture("grid", 6,
		W{0, 1, 4}, W{0, 2, 2}, W{2, 1, 1}, W{1, 3, 5}, W{2, 3, 8},
		W{2, 4, 10}, W{3, 4, 2}, W{4, 3, 2}, W{5, 0, 1},
	)
}

// SlowChain needs every Bellman-Ford pass: edges are listed against the
// direction of the chain A→B→C→D.
func SlowChain() Fixture {
	return fixture("slow-chain", 4, W{2, 3, 1}, W{1, 2, 1}, W{0, 1, 1})
}

// MixedNegative has negative edges but no negative cycle.
func MixedNegative() Fixture {
	return fixture("mixed-negative", 5,
		W{0, 1, 6}, W{0, 2, 7}, W{1, 2, 8}, W{1, 3, 5}, W{1, 4, -4},
		W{2, 3, -3}, W{2, 4, 9}, W{3, 1, -2}, W{4, 0, 2}, W{4, 3, 7},
	)
}

// All returns every fixture.
func All() []Fixture {
	return []Fixture{Triangle(), NegativeCycle(), Disconnected(), NegativeEdge(), Grid(), SlowChain(), MixedNegative()}
}

// CheckMonotone asserts that no distance ever increases between
// consecutive steps and that the source stays at 0.
func CheckMonotone(t testing.TB, tr *trace.Trace) {
	t.Helper()
	for k := 1; k < len(tr.Steps); k++ {
		prev, cur := tr.Steps[k-1].DistanceArray, tr.Steps[k].DistanceArray
		require.Len(t, cur, len(prev), "step %d", k)
		for n := range cur {
			assert.LessOrEqual(t, cur[n], prev[n], "step %d node %d", k, n)
		}
		assert.Equal(t, trace.Distance(0), cur[tr.Source], "step %d source distance", k)
	}
}

// CheckPaths asserts path reconstruction: every path starts at the source,
// ends at its key, follows existing edges, and sums to the final distance.
// Unreachable nodes and the source are absent.
func CheckPaths(t testing.TB, tr *trace.Trace, edges []core.Edge) {
	t.Helper()
	weight := make(map[core.EdgeID]int64, len(edges))
	for _, e := range edges {
		weight[e.ID] = e.Weight
	}
	if tr.NegativeCycle {
		assert.Empty(t, tr.Result.Paths)
		return
	}
	for n, d := range tr.Result.Distances {
		id := core.NodeID(n)
		path, ok := tr.Result.Paths[id]
		if id == tr.Source || d.IsInf() {
			assert.False(t, ok, "node %d must be absent", id)
			continue
		}
		require.True(t, ok, "node %d must have a path", id)
		require.GreaterOrEqual(t, len(path), 2)
		assert.Equal(t, tr.Source, path[0])
		assert.Equal(t, id, path[len(path)-1])
		var sum trace.Distance
		for _, eid := range trace.PathEdges(path) {
			w, ok := weight[eid]
			require.True(t, ok, "edge %s must exist", eid)
			sum += trace.Distance(w)
		}
		assert.Equal(t, d, sum, "path weight to %d", id)
	}
}

// CheckIterations asserts IterationCount never decreases.
func CheckIterations(t testing.TB, tr *trace.Trace) {
	t.Helper()
	for k := 1; k < len(tr.Steps); k++ {
		assert.GreaterOrEqual(t, tr.Steps[k].IterationCount, tr.Steps[k-1].IterationCount, "step %d", k)
	}
}
