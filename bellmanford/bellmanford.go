package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// ErrNilGraph indicates SimulateGraph was called with a nil graph.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// Pseudocode lines shown next to the trace; AlgorithmStep carries one of them.
const (
	LineInit  = "1. Initialize distances (source=0, others=∞)"
	LineRelax = "2. For i=1 to |V|-1: Relax all edges"
	LineCheck = "3. Check for negative cycles by a final pass"
	LineDone  = "Done"
)

// Simulate runs Bellman-Ford from source over nodes and edges and returns
// the recorded trace together with its final result.
//
// Preconditions are those of core.Validate. A graph with no nodes yields an
// empty trace and no error. The inputs are not modified.
func Simulate(nodes []core.Node, edges []core.Edge, source core.NodeID) (*trace.Trace, error) {
	if len(nodes) == 0 {
		return &trace.Trace{
			Algorithm: trace.BellmanFord,
			Source:    source,
			Result:    trace.Result{Paths: map[core.NodeID][]core.NodeID{}},
		}, nil
	}
	if err := core.Validate(nodes, edges, source); err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}

	r := &runner{
		nodes:  nodes,
		edges:  edges,
		source: source,
		dist:   trace.NewDistanceTable(len(nodes), source),
		prev:   trace.NewPredecessors(len(nodes)),
	}
	r.record(LineInit,
		fmt.Sprintf("Distances initialized. Source %s = 0, rest = ∞", r.label(source)),
		nil, nil)
	r.relaxPasses()
	cycle := r.detect()

	paths := map[core.NodeID][]core.NodeID{}
	if !cycle {
		paths = trace.BuildPaths(r.dist, r.prev, source)
	}

	return &trace.Trace{
		Algorithm:     trace.BellmanFord,
		Source:        source,
		Steps:         r.steps,
		NegativeCycle: cycle,
		Result: trace.Result{
			Distances: r.dist.Clone(),
			Paths:     paths,
		},
	}, nil
}

// SimulateGraph is Simulate over a snapshot of g.
func SimulateGraph(g *core.Graph, source core.NodeID) (*trace.Trace, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return Simulate(g.Nodes(), g.Edges(), source)
}

type runner struct {
	nodes  []core.Node
	edges  []core.Edge
	source core.NodeID

	dist trace.DistanceTable
	prev []core.NodeID
	// iter is the IterationCount stamped on the next recorded step.
	iter int
	// cycle is stamped on the next recorded step as NegativeCycleDetected.
	cycle bool

	steps []trace.Step
}

// relaxPasses runs up to |V|-1 passes, stopping after the first pass that
// relaxes nothing.
func (r *runner) relaxPasses() {
	passes := len(r.nodes) - 1
	for i := 1; i <= passes; i++ {
		r.iter = i
		r.record(LineRelax, fmt.Sprintf("Iteration %d of %d", i, passes), nil, nil)

		relaxed := false
		for _, e := range r.edges {
			if r.relax(e) {
				relaxed = true
			}
		}

		if !relaxed {
			r.record(LineRelax, fmt.Sprintf("No edges relaxed in iteration %d. Early stop.", i), nil, nil)
			return
		}
	}
}

// relax records the decision for e and reports whether it lowered a distance.
func (r *runner) relax(e core.Edge) bool {
	u, v := e.Source, e.Target
	if r.dist[u].IsInf() {
		r.record(LineRelax,
			fmt.Sprintf("Edge %s→%s skipped, %s is unreachable so far.", r.label(u), r.label(v), r.label(u)),
			[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusExcluded}}, nil)
		return false
	}

	r.record(LineRelax,
		fmt.Sprintf("Check edge %s→%s, weight=%d.", r.label(u), r.label(v), e.Weight),
		[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusCandidate}}, nil)

	newDist := r.dist[u].Add(e.Weight)
	if newDist < r.dist[v] {
		old := r.dist[v]
		r.dist[v] = newDist
		r.prev[v] = u
		r.record(LineRelax,
			fmt.Sprintf("Relaxed edge. Distance to %s updated from %s to %s.", r.label(v), old, newDist),
			[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusIncluded}}, []core.EdgeID{e.ID})
		return true
	}

	r.record(LineRelax,
		fmt.Sprintf("No improvement. Dist to %s remains %s.", r.label(v), r.dist[v]),
		[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusExcluded}}, nil)
	return false
}

// detect runs the extra pass and records the closing steps. It stops at the
// first edge that can still be relaxed.
func (r *runner) detect() bool {
	r.iter = len(r.nodes)
	r.record(LineCheck, "Check for negative cycles.", nil, nil)

	for _, e := range r.edges {
		if r.dist[e.Source].IsInf() || r.dist[e.Source].Add(e.Weight) >= r.dist[e.Target] {
			continue
		}
		r.cycle = true
		r.record(LineCheck,
			fmt.Sprintf("Negative cycle found via edge %s→%s.", r.label(e.Source), r.label(e.Target)),
			[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusNegativeCycle}}, nil)
		r.record(LineDone, "Bellman-Ford stopped. Negative cycle detected, no shortest paths exist.", nil, nil)
		return true
	}

	r.record(LineDone, "Bellman-Ford complete. No negative cycle.", nil, nil)
	return false
}

// record appends a step holding a fresh snapshot of the distance table.
func (r *runner) record(line, text string, updates []trace.EdgeUpdate, paths []core.EdgeID) {
	r.steps = append(r.steps, trace.Step{
		Explanation:           text,
		AlgorithmStep:         line,
		VisitedNodes:          []core.NodeID{},
		MinHeap:               []trace.HeapEntry{},
		DistanceArray:         r.dist.Clone(),
		IterationCount:        r.iter,
		NegativeCycleDetected: r.cycle,
		EdgeUpdates:           updates,
		PathEdgeUpdates:       paths,
	})
}

func (r *runner) label(id core.NodeID) string {
	if id >= 0 && int(id) < len(r.nodes) && r.nodes[id].Label != "" {
		return r.nodes[id].Label
	}
	return core.Label(id)
}
