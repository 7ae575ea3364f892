// Package dijkstra_test validates the recorded Dijkstra trace: scenario
// outcomes, step shapes, determinism and the trace-wide invariants.
package dijkstra_test

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/dijkstra"
	"github.com/katalvlaran/spviz/trace"
	"github.com/katalvlaran/spviz/trace/tracetest"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSimulate_SourceOutOfRange(t *testing.T) {
	f := tracetest.Triangle()
	_, err := dijkstra.Simulate(f.Nodes, f.Edges, 7)
	assert.ErrorIs(t, err, core.ErrSourceOutOfRange)
}

func TestSimulate_DanglingEdge(t *testing.T) {
	f := tracetest.Triangle()
	edges := append(f.Edges, core.NewEdge(2, 9, 1))
	_, err := dijkstra.Simulate(f.Nodes, edges, 0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestSimulate_EmptyGraph(t *testing.T) {
	tr, err := dijkstra.Simulate(nil, nil, 0)
	require.NoError(t, err)
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Result.Paths)
}

func TestSimulateGraph_Nil(t *testing.T) {
	_, err := dijkstra.SimulateGraph(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

func TestSimulate_Triangle(t *testing.T) {
	f := tracetest.Triangle()
	tr, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)

	assert.Equal(t, trace.DistanceTable{0, 1, 3}, tr.Result.Distances)
	assert.Equal(t, []core.NodeID{0, 1, 2}, tr.Result.Paths[2])
	assert.Equal(t, []core.NodeID{0, 1}, tr.Result.Paths[1])
	assert.False(t, tr.NegativeCycle)

	// init, push, extract A, 2×(candidate, relaxed), extract B,
	// candidate, relaxed, extract C, done.
	require.Len(t, tr.Steps, 12)
	lines := make([]string, len(tr.Steps))
	for i, s := range tr.Steps {
		lines[i] = s.AlgorithmStep
	}
	assert.Equal(t, []string{
		dijkstra.LineInit, dijkstra.LinePush,
		dijkstra.LineExtract, dijkstra.LineRelax, dijkstra.LineRelax, dijkstra.LineRelax, dijkstra.LineRelax,
		dijkstra.LineExtract, dijkstra.LineRelax, dijkstra.LineRelax,
		dijkstra.LineExtract, dijkstra.LineDone,
	}, lines)

	// Relaxing A→C puts C behind B in the queue.
	assert.Equal(t, []trace.HeapEntry{{ID: 1, Dist: 1}, {ID: 2, Dist: 5}}, tr.Steps[6].MinHeap)
	// Extracting B removes it before any relaxation.
	assert.Equal(t, []trace.HeapEntry{{ID: 2, Dist: 5}}, tr.Steps[7].MinHeap)
	assert.Equal(t, []core.EdgeID{"0-1"}, tr.Steps[7].PathEdgeUpdates)
	// Decrease-key keeps a single entry for C.
	assert.Equal(t, []trace.HeapEntry{{ID: 2, Dist: 3}}, tr.Steps[9].MinHeap)
	assert.Equal(t, []core.EdgeID{"1-2"}, tr.Steps[10].PathEdgeUpdates)

	// The Done step rejects A→C, the only non-tree edge.
	done := tr.Steps[len(tr.Steps)-1]
	assert.Equal(t, []trace.EdgeUpdate{{ID: "0-2", Status: core.StatusExcluded}}, done.EdgeUpdates)
	assert.Equal(t, []core.NodeID{0, 1, 2}, done.VisitedNodes)
	assert.Empty(t, done.MinHeap)
	assert.Equal(t, "Dijkstra complete. Distances finalized.", done.Explanation)
}

func TestSimulate_Disconnected(t *testing.T) {
	f := tracetest.Disconnected()
	tr, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)

	assert.Equal(t, trace.DistanceTable{0, trace.Infinity}, tr.Result.Distances)
	assert.Empty(t, tr.Result.Paths)
	for _, s := range tr.Steps {
		assert.NotContains(t, s.VisitedNodes, core.NodeID(1))
	}
}

func TestSimulate_NegativeEdgeExcluded(t *testing.T) {
	f := tracetest.NegativeEdge()
	tr, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)

	assert.Equal(t, trace.DistanceTable{0, trace.Infinity}, tr.Result.Distances)
	assert.Empty(t, tr.Result.Paths)

	var found bool
	for _, s := range tr.Steps {
		for _, u := range s.EdgeUpdates {
			require.Equal(t, core.EdgeID("0-1"), u.ID)
			assert.Equal(t, core.StatusExcluded, u.Status, "a negative edge is never a candidate")
			found = true
		}
	}
	assert.True(t, found)
	assert.Contains(t, tr.Steps[3].Explanation, "is negative")
}

func TestSimulate_Grid(t *testing.T) {
	f := tracetest.Grid()
	tr, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)

	// A=0, C=2, B=3 (via C), D=8 (via B), E=10 (via D), F unreachable.
	assert.Equal(t, trace.DistanceTable{0, 3, 2, 8, 10, trace.Infinity}, tr.Result.Distances)
	assert.Equal(t, []core.NodeID{0, 2, 1, 3}, tr.Result.Paths[3])

	// E is queued at 12 via C and lowered to 10 via D; it is extracted once.
	done := tr.Steps[len(tr.Steps)-1]
	assert.Equal(t, []core.NodeID{0, 2, 1, 3, 4}, done.VisitedNodes)
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestSimulate_Properties(t *testing.T) {
	for _, f := range tracetest.All() {
		t.Run(f.Name, func(t *testing.T) {
			tr, err := dijkstra.Simulate(f.Nodes, f.Edges, f.Source)
			require.NoError(t, err)

			tracetest.CheckMonotone(t, tr)
			tracetest.CheckIterations(t, tr)

			// Visited-once and final visited set = reachable over non-negative edges.
			seen := map[core.NodeID]bool{}
			var last []core.NodeID
			for _, s := range tr.Steps {
				if len(s.VisitedNodes) > len(last) {
					require.Len(t, s.VisitedNodes, len(last)+1)
					added := s.VisitedNodes[len(s.VisitedNodes)-1]
					assert.False(t, seen[added], "node %d visited twice", added)
					seen[added] = true
				}
				last = s.VisitedNodes
			}
			reach := core.Reachable(len(f.Nodes), f.Edges, f.Source, func(e core.Edge) bool { return e.Weight < 0 })
			assert.ElementsMatch(t, reach, last)

			// Paths are only guaranteed without negative edges.
			for _, e := range f.Edges {
				if e.Weight < 0 {
					return
				}
			}
			tracetest.CheckPaths(t, tr, f.Edges)
		})
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	for _, f := range tracetest.All() {
		a, err := dijkstra.Simulate(f.Nodes, f.Edges, f.Source)
		require.NoError(t, err)
		b, err := dijkstra.Simulate(f.Nodes, f.Edges, f.Source)
		require.NoError(t, err)
		if diff := gocmp.Diff(a, b); diff != "" {
			t.Errorf("%s: trace differs between runs (-first +second):\n%s", f.Name, diff)
		}
	}
}

func TestSimulate_InputsUntouched(t *testing.T) {
	f := tracetest.Grid()
	before := append([]core.Edge(nil), f.Edges...)
	_, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)
	assert.Equal(t, before, f.Edges)
}

func TestSimulate_StepsAreIndependentSnapshots(t *testing.T) {
	f := tracetest.Triangle()
	tr, err := dijkstra.Simulate(f.Nodes, f.Edges, 0)
	require.NoError(t, err)

	tr.Steps[0].DistanceArray[1] = -99
	assert.True(t, tr.Steps[1].DistanceArray[1].IsInf())
	assert.Equal(t, trace.Distance(1), tr.Result.Distances[1])
}
