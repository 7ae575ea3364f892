package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// ErrNilGraph indicates SimulateGraph was called with a nil graph.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// Pseudocode lines shown next to the trace; AlgorithmStep carries one of them.
const (
	LineInit    = "1. Initialize distances (source=0, others=∞)"
	LinePush    = "2. Push source into priority queue"
	LineExtract = "3. While queue not empty, pop min-dist node, mark visited"
	LineRelax   = "4. Relax all outgoing edges if it improves distance"
	LineDone    = "Done"
)

// Simulate runs Dijkstra's algorithm from source over nodes and edges and
// returns the recorded trace together with its final result.
//
// Preconditions (checked, see core.Validate): node IDs are dense, every edge
// references existing nodes, and source is in range. A graph with no nodes
// yields an empty trace and no error.
//
// The inputs are not modified.
func Simulate(nodes []core.Node, edges []core.Edge, source core.NodeID) (*trace.Trace, error) {
	// 1) Empty graph: explicit empty state.
	if len(nodes) == 0 {
		return &trace.Trace{
			Algorithm: trace.Dijkstra,
			Source:    source,
			Result:    trace.Result{Paths: map[core.NodeID][]core.NodeID{}},
		}, nil
	}

	// 2) Fail fast on malformed input.
	if err := core.Validate(nodes, edges, source); err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Run.
	r := newRunner(nodes, edges, source)
	r.init()
	r.process()
	r.finish()

	return &trace.Trace{
		Algorithm: trace.Dijkstra,
		Source:    source,
		Steps:     r.steps,
		Result: trace.Result{
			Distances: r.dist.Clone(),
			Paths:     trace.BuildPaths(r.dist, r.prev, source),
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

// runner holds the mutable state of one simulation.
type runner struct {
	nodes  []core.Node
	edges  []core.Edge
	source core.NodeID

	// out maps a node to the indices of its outgoing edges, in input order.
	out     [][]int
	dist    trace.DistanceTable
	prev    []core.NodeID
	visited []bool
	// order lists visited nodes in extraction order.
	order []core.NodeID
	pq    *queue

	steps []trace.Step
}

func newRunner(nodes []core.Node, edges []core.Edge, source core.NodeID) *runner {
	n := len(nodes)
	r := &runner{
		nodes:   nodes,
		edges:   edges,
		source:  source,
		out:     make([][]int, n),
		dist:    trace.NewDistanceTable(n, source),
		prev:    trace.NewPredecessors(n),
		visited: make([]bool, n),
		order:   make([]core.NodeID, 0, n),
		pq:      newQueue(n),
	}
	for i, e := range edges {
		r.out[e.Source] = append(r.out[e.Source], i)
	}
	return r
}

// init records the initialization and source-push steps.
func (r *runner) init() {
	r.record(LineInit,
		fmt.Sprintf("Distances initialized. Source %s = 0, rest = ∞", r.label(r.source)),
		nil, nil)

	r.pq.upsert(r.source, 0)
	r.record(LinePush,
		fmt.Sprintf("Source %s added to priority queue.", r.label(r.source)),
		nil, nil)
}

// process is the main loop: extract the closest node, then relax its
// outgoing edges in input order.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := r.pq.pop()
		u := item.id

		// Stale entry. Unreachable with decrease-key on non-negative
		// weights, kept so the trace stays well-defined regardless.
		if r.visited[u] {
			r.record(LineExtract,
				fmt.Sprintf("Node %s already visited, skipping.", r.label(u)),
				nil, nil)
			continue
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		var confirmed []core.EdgeID
		if p := r.prev[u]; p != trace.NoPredecessor {
			confirmed = []core.EdgeID{core.EdgeIDFor(p, u)}
		}
		r.record(LineExtract,
			fmt.Sprintf("Extracted node %s, distance=%s. Mark visited.", r.label(u), r.dist[u]),
			nil, confirmed)

		for _, ei := range r.out[u] {
			r.relax(r.edges[ei])
		}
	}
}

// relax records the decision for one edge leaving a freshly visited node.
func (r *runner) relax(e core.Edge) {
	u, v := e.Source, e.Target

	if e.Weight < 0 {
		r.record(LineRelax,
			fmt.Sprintf("Edge %s→%s is negative. Skipping.", r.label(u), r.label(v)),
			[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusExcluded}}, nil)
		return
	}

	r.record(LineRelax,
		fmt.Sprintf("Check edge %s→%s, weight=%d.", r.label(u), r.label(v), e.Weight),
		[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusCandidate}}, nil)

	newDist := r.dist[u].Add(e.Weight)
	if newDist < r.dist[v] {
		old := r.dist[v]
		r.dist[v] = newDist
		r.prev[v] = u
		r.pq.upsert(v, newDist)
		r.record(LineRelax,
			fmt.Sprintf("Relaxed edge. Distance to %s updated from %s to %s.", r.label(v), old, newDist),
			[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusRelaxed}}, nil)
		return
	}

	r.record(LineRelax,
		fmt.Sprintf("No improvement. Dist to %s remains %s.", r.label(v), r.dist[v]),
		[]trace.EdgeUpdate{{ID: e.ID, Status: core.StatusExcluded}}, nil)
}

// finish records the Done step. Every examined edge that is not a tree
// edge ends excluded.
func (r *runner) finish() {
	var rejected []trace.EdgeUpdate
	for _, e := range r.edges {
		if !r.visited[e.Source] {
			continue
		}
		if r.prev[e.Target] == e.Source {
			continue
		}
		rejected = append(rejected, trace.EdgeUpdate{ID: e.ID, Status: core.StatusExcluded})
	}

	r.steps = append(r.steps, trace.Step{
		Explanation:   "Dijkstra complete. Distances finalized.",
		AlgorithmStep: LineDone,
		VisitedNodes:  append([]core.NodeID{}, r.order...),
		MinHeap:       []trace.HeapEntry{},
		DistanceArray: r.dist.Clone(),
		EdgeUpdates:   rejected,
	})
}

// record appends a step holding fresh snapshots of the current state.
func (r *runner) record(line, text string, updates []trace.EdgeUpdate, paths []core.EdgeID) {
	r.steps = append(r.steps, trace.Step{
		Explanation:     text,
		AlgorithmStep:   line,
		VisitedNodes:    append([]core.NodeID{}, r.order...),
		MinHeap:         r.pq.snapshot(),
		DistanceArray:   r.dist.Clone(),
		EdgeUpdates:     updates,
		PathEdgeUpdates: paths,
	})
}

func (r *runner) label(id core.NodeID) string {
	if id >= 0 && int(id) < len(r.nodes) && r.nodes[id].Label != "" {
		return r.nodes[id].Label
	}
	return core.Label(id)
}
