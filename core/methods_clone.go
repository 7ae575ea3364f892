// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated by Clone.

package core

// Clone returns a deep copy of the graph, statuses included.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.nodes = append([]Node(nil), g.nodes...)
	c.edges = append([]Edge(nil), g.edges...)
	c.reindex()

	return c
}

// Clear removes all nodes and edges.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.index = make(map[EdgeID]int)
}
