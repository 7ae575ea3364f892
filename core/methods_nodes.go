// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/Node/Nodes/NodeCount/SetPosition.
// Determinism:
//   - Nodes() returns nodes in ID order.
//   - RemoveNode re-densifies: later nodes shift down by one and are relabelled.
// Concurrency:
//   - Mutations under mu write lock; queries under read lock.

package core

import "fmt"

// AddNode appends a node at (x, y) and returns its ID. The label is derived
// from the ID.
// Complexity: O(1) amortized
func (g *Graph) AddNode(x, y float64) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Label: Label(id), X: x, Y: y})

	return id
}

// RemoveNode deletes node id together with every incident edge. Nodes with
// a higher ID move down by one; their labels and the IDs of surviving edges
// are rewritten so the graph stays dense.
//
// Complexity: O(V + E)
func (g *Graph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	// 1) Drop the node and renumber the tail.
	g.nodes = append(g.nodes[:id], g.nodes[id+1:]...)
	for i := int(id); i < len(g.nodes); i++ {
		g.nodes[i].ID = NodeID(i)
		g.nodes[i].Label = Label(NodeID(i))
	}

	// 2) Drop incident edges, shift endpoints above id, rebuild the index.
	shift := func(n NodeID) NodeID {
		if n > id {
			return n - 1
		}
		return n
	}
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Source == id || e.Target == id {
			continue
		}
		e.Source, e.Target = shift(e.Source), shift(e.Target)
		e.ID = EdgeIDFor(e.Source, e.Target)
		kept = append(kept, e)
	}
	g.edges = kept
	g.reindex()

	return nil
}

// SetPosition moves node id to (x, y).
func (g *Graph) SetPosition(id NodeID, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id].X, g.nodes[id].Y = x, y

	return nil
}

// Node returns a copy of node id.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// HasNode reports whether id is a valid node ID.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && int(id) < len(g.nodes)
}

// Nodes returns a copy of all nodes in ID order.
// Complexity: O(V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Node(nil), g.nodes...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
