package timeline

import (
	"slices"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// EdgeState is the displayed status of one edge.
type EdgeState struct {
	ID     core.EdgeID     `json:"id"`
	Status core.EdgeStatus `json:"status"`
}

// View is everything a renderer needs for one position of the timeline.
type View struct {
	// Index is the number of applied steps.
	Index int `json:"index"`
	// Edges lists every edge of the graph in graph order.
	Edges []EdgeState `json:"edges"`
	// Confirmed lists the confirmed path edges in confirmation order.
	Confirmed     []core.EdgeID       `json:"confirmed"`
	Distances     trace.DistanceTable `json:"distances"`
	Visited       []core.NodeID       `json:"visited"`
	MinHeap       []trace.HeapEntry   `json:"minHeap"`
	Iteration     int                 `json:"iteration"`
	NegativeCycle bool                `json:"negativeCycle"`
	Explanation   string              `json:"explanation"`
	AlgorithmStep string              `json:"algorithmStep"`

	// CurrentEdge is the edge the last step acted on, if it acted on
	// exactly one.
	CurrentEdge core.EdgeID `json:"currentEdge,omitempty"`
	// UpdatedNodes are the nodes whose distance the last step changed.
	UpdatedNodes []core.NodeID `json:"updatedNodes,omitempty"`

	// Answer marks a final-answer projection rather than a replay position.
	Answer bool `json:"answer,omitempty"`
}

// Status returns the displayed status of id, StatusUnvisited if unknown.
func (v View) Status(id core.EdgeID) core.EdgeStatus {
	for _, e := range v.Edges {
		if e.ID == id {
			return e.Status
		}
	}
	return core.StatusUnvisited
}

// IsConfirmed reports whether id is a confirmed path edge.
func (v View) IsConfirmed(id core.EdgeID) bool {
	return slices.Contains(v.Confirmed, id)
}

// IsVisited reports whether n is in the visited set.
func (v View) IsVisited(n core.NodeID) bool {
	return slices.Contains(v.Visited, n)
}

// clone returns a deep copy of v.
func (v View) clone() View {
	out := v
	out.Edges = slices.Clone(v.Edges)
	out.Confirmed = slices.Clone(v.Confirmed)
	out.Distances = v.Distances.Clone()
	out.Visited = slices.Clone(v.Visited)
	out.MinHeap = slices.Clone(v.MinHeap)
	out.UpdatedNodes = slices.Clone(v.UpdatedNodes)
	return out
}

// emptyView is the Reset view: every edge unvisited, nothing else set.
func emptyView(edges []core.EdgeID) View {
	v := View{Edges: make([]EdgeState, len(edges))}
	for i, id := range edges {
		v.Edges[i] = EdgeState{ID: id, Status: core.StatusUnvisited}
	}
	return v
}

// changedNodes diffs two distance snapshots.
func changedNodes(prev, cur trace.DistanceTable) []core.NodeID {
	var out []core.NodeID
	for i, d := range cur {
		if i >= len(prev) || prev[i] != d {
			out = append(out, core.NodeID(i))
		}
	}
	return out
}
