package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge whose source equals its target.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge for the same ordered pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrSourceOutOfRange indicates a source node outside 0..N-1.
	ErrSourceOutOfRange = errors.New("core: source node out of range")

	// ErrNonDenseIDs indicates node IDs that are not exactly 0..N-1 in order.
	ErrNonDenseIDs = errors.New("core: node IDs must be dense and ordered")

	// ErrBadEdgeID indicates an edge whose ID does not match "source-target".
	ErrBadEdgeID = errors.New("core: edge ID does not match endpoints")

	// ErrBadStatus indicates an unknown edge status name.
	ErrBadStatus = errors.New("core: unknown edge status")
)

// NodeID identifies a node. IDs are dense and 0-based.
type NodeID int

// EdgeID identifies a directed edge; it is always "source-target".
type EdgeID string

// EdgeIDFor returns the canonical ID of the edge source→target.
func EdgeIDFor(source, target NodeID) EdgeID {
	return EdgeID(strconv.Itoa(int(source)) + "-" + strconv.Itoa(int(target)))
}

// EdgeStatus is the presentation label of an edge. It has no effect on
// algorithm semantics.
type EdgeStatus uint8

// Edge statuses in the order the renderer's legend lists them.
const (
	StatusUnvisited EdgeStatus = iota
	StatusCandidate
	StatusRelaxed
	StatusIncluded
	StatusExcluded
	StatusNegativeCycle
)

var statusNames = [...]string{
	StatusUnvisited:     "unvisited",
	StatusCandidate:     "candidate",
	StatusRelaxed:       "relaxed",
	StatusIncluded:      "included",
	StatusExcluded:      "excluded",
	StatusNegativeCycle: "negativecycle",
}

// String returns the lower-case wire name of s.
func (s EdgeStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "EdgeStatus(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the six defined statuses.
func (s EdgeStatus) Valid() bool { return int(s) < len(statusNames) }

// MarshalText implements encoding.TextMarshaler.
func (s EdgeStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrBadStatus
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *EdgeStatus) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStatus maps a wire name back to its EdgeStatus.
func ParseStatus(name string) (EdgeStatus, error) {
	for i, n := range statusNames {
		if n == name {
			return EdgeStatus(i), nil
		}
	}
	return StatusUnvisited, ErrBadStatus
}

// Node is a vertex of the graph. Label is derived from ID and used only for
// display and explanations.
type Node struct {
	ID    NodeID  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Edge is a directed weighted edge.
type Edge struct {
	ID              EdgeID     `json:"id"`
	Source          NodeID     `json:"source"`
	Target          NodeID     `json:"target"`
	Weight          int64      `json:"weight"`
	Status          EdgeStatus `json:"status"`
	IsNegative      bool       `json:"isNegative"`
	InNegativeCycle bool       `json:"inNegativeCycle"`
}

// NewEdge builds an unvisited edge with its canonical ID and negativity flag.
func NewEdge(source, target NodeID, weight int64) Edge {
	return Edge{
		ID:         EdgeIDFor(source, target),
		Source:     source,
		Target:     target,
		Weight:     weight,
		Status:     StatusUnvisited,
		IsNegative: weight < 0,
	}
}

// Graph is a mutable directed graph used for authoring and generation.
//
// mu guards nodes, edges and index. Readers receive copies, so snapshots
// taken for a simulation stay frozen while the graph keeps changing.
type Graph struct {
	mu sync.RWMutex

	nodes []Node
	edges []Edge

	// index maps EdgeID → position in edges.
	index map[EdgeID]int
}

// NewGraph creates an empty graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{index: make(map[EdgeID]int)}
}

// FromParts builds a graph from snapshots, validating the dense-ID and
// edge rules. Statuses are preserved as given.
// Complexity: O(V + E)
func FromParts(nodes []Node, edges []Edge) (*Graph, error) {
	if err := validateShape(nodes, edges); err != nil {
		return nil, err
	}
	g := NewGraph()
	g.nodes = append(make([]Node, 0, len(nodes)), nodes...)
	g.edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if _, dup := g.index[e.ID]; dup {
			return nil, errDuplicate(e.Source, e.Target)
		}
		e.IsNegative = e.Weight < 0
		g.index[e.ID] = len(g.edges)
		g.edges = append(g.edges, e)
	}

	return g, nil
}
