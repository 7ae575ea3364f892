package trace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spviz/core"
)

// ErrUnknownAlgorithm indicates an algorithm name that is not recognised.
var ErrUnknownAlgorithm = errors.New("trace: unknown algorithm")

// Algorithm selects a simulator.
type Algorithm uint8

const (
	// Dijkstra is the priority-queue simulator.
	Dijkstra Algorithm = iota
	// BellmanFord is the |V|-1 pass simulator with negative-cycle check.
	BellmanFord
)

// String returns the configuration name of a.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellmanford"
	}
	return fmt.Sprintf("Algorithm(%d)", a)
}

// Title returns the display name used in explanations.
func (a Algorithm) Title() string {
	switch a {
	case Dijkstra:
		return "Dijkstra's"
	case BellmanFord:
		return "Bellman-Ford"
	}
	return a.String()
}

// ParseAlgorithm accepts "dijkstra" and "bellmanford" (case-insensitive,
// "bellman-ford" also allowed).
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "bellmanford", "bellman-ford", "bellman_ford":
		return BellmanFord, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != Dijkstra && a != BellmanFord {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// EdgeUpdate sets the status of one edge.
type EdgeUpdate struct {
	ID     core.EdgeID     `json:"id"`
	Status core.EdgeStatus `json:"status"`
}

// HeapEntry is one priority-queue entry as shown to the user.
type HeapEntry struct {
	ID   core.NodeID `json:"id"`
	Dist Distance    `json:"dist"`
}

// Step is one atomic unit of algorithm progress. Snapshots describe the
// state after the step; EdgeUpdates and PathEdgeUpdates are deltas.
type Step struct {
	Explanation           string        `json:"explanation"`
	AlgorithmStep         string        `json:"algorithmStep"`
	VisitedNodes          []core.NodeID `json:"visitedNodes"`
	MinHeap               []HeapEntry   `json:"minHeap"`
	DistanceArray         DistanceTable `json:"distanceArray"`
	IterationCount        int           `json:"iterationCount"`
	NegativeCycleDetected bool          `json:"negativeCycleDetected"`
	EdgeUpdates           []EdgeUpdate  `json:"edgeUpdates,omitempty"`
	PathEdgeUpdates       []core.EdgeID `json:"pathEdgeUpdates,omitempty"`
}

// Result is the final output of a simulator run.
//
// When the run detected a negative cycle, Paths is empty and Distances are
// not shortest-path lengths.
type Result struct {
	Distances DistanceTable                `json:"distances"`
	Paths     map[core.NodeID][]core.NodeID `json:"paths"`
}

// Trace bundles everything one simulator run produced.
type Trace struct {
	Algorithm     Algorithm   `json:"algorithm"`
	Source        core.NodeID `json:"source"`
	Steps         []Step      `json:"steps"`
	Result        Result      `json:"result"`
	NegativeCycle bool        `json:"negativeCycle"`
}

// Len returns the number of steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Steps)
}

// Simulator turns a frozen graph and a source into a Trace.
type Simulator func(nodes []core.Node, edges []core.Edge, source core.NodeID) (*Trace, error)
