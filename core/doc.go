// Package core provides the graph model shared by the shortest-path tracers:
// dense, 0-based nodes with a display label and a canvas position, and
// directed weighted edges with a presentation status.
//
// The model is deliberately plain data. Algorithms never read Edge.Status;
// it is output written by the timeline, not input. Node IDs form a dense
// range 0..N-1 so that distance tables can be indexed directly.
//
// Two entry points exist:
//
//	// Mutable, thread-safe graph for manual authoring
//	g := core.NewGraph()
//	a := g.AddNode(120, 80)           // "A"
//	b := g.AddNode(300, 80)           // "B"
//	id, err := g.AddEdge(a, b, 4)     // "0-1"
//
//	// Frozen snapshots consumed by the simulators
//	nodes, edges := g.Nodes(), g.Edges()
//	err = core.Validate(nodes, edges, a)
//
// Graph rules:
//
//   - At most one edge per ordered pair; the ID "source-target" is the key.
//   - No self-loops.
//   - Edges keep insertion order. Bellman-Ford relies on it.
//   - RemoveNode drops incident edges and re-densifies IDs, labels and edge IDs.
//
// Errors:
//
//	ErrNodeNotFound     - referenced node ID does not exist.
//	ErrEdgeNotFound     - referenced edge ID does not exist.
//	ErrSelfLoop         - edge source equals target.
//	ErrDuplicateEdge    - an edge for the ordered pair already exists.
//	ErrSourceOutOfRange - source node is not a valid node ID.
//	ErrNonDenseIDs      - node IDs are not exactly 0..N-1 in order.
//	ErrBadEdgeID        - an edge ID does not match "source-target".
//	ErrBadStatus        - unknown EdgeStatus text.
package core
