// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Edges/OutEdges,
//       weight and status updates.
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under read lock.

package core

import "fmt"

// AddEdge inserts the directed edge source→target with the given weight and
// returns its ID "source-target".
//
// Errors: ErrNodeNotFound, ErrSelfLoop, ErrDuplicateEdge.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(source, target NodeID, weight int64) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEndpoints(source, target); err != nil {
		return "", err
	}
	e := NewEdge(source, target, weight)
	if _, dup := g.index[e.ID]; dup {
		return "", errDuplicate(source, target)
	}
	g.index[e.ID] = len(g.edges)
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// RemoveEdge deletes edge id, preserving the order of the remaining edges.
// Complexity: O(E)
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	g.edges = append(g.edges[:pos], g.edges[pos+1:]...)
	g.reindex()

	return nil
}

// SetWeight changes the weight of edge id and refreshes IsNegative.
func (g *Graph) SetWeight(id EdgeID, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	g.edges[pos].Weight = weight
	g.edges[pos].IsNegative = weight < 0

	return nil
}

// MarkNegativeCycle flags edge id as part of a planted negative cycle.
func (g *Graph) MarkNegativeCycle(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos, ok := g.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	g.edges[pos].InNegativeCycle = true

	return nil
}

// SetStatuses overwrites the status of every edge present in statuses.
// Unknown IDs are ignored.
func (g *Graph) SetStatuses(statuses map[EdgeID]EdgeStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, s := range statuses {
		if pos, ok := g.index[id]; ok {
			g.edges[pos].Status = s
		}
	}
}

// ResetStatuses marks every edge unvisited.
func (g *Graph) ResetStatuses() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.edges {
		g.edges[i].Status = StatusUnvisited
	}
}

// Edge returns a copy of edge id.
func (g *Graph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos, ok := g.index[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}

	return g.edges[pos], nil
}

// HasEdge reports whether source→target exists.
func (g *Graph) HasEdge(source, target NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[EdgeIDFor(source, target)]
	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// OutEdges returns the edges leaving id in insertion order.
func (g *Graph) OutEdges(id NodeID) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	var out []Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		}
	}

	return out, nil
}

// checkEndpoints validates an edge's endpoints. Caller holds mu.
func (g *Graph) checkEndpoints(source, target NodeID) error {
	n := NodeID(len(g.nodes))
	if source < 0 || source >= n {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, source)
	}
	if target < 0 || target >= n {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, target)
	}
	if source == target {
		return fmt.Errorf("%w: %d", ErrSelfLoop, source)
	}

	return nil
}

// reindex rebuilds the EdgeID → position map. Caller holds mu.
func (g *Graph) reindex() {
	g.index = make(map[EdgeID]int, len(g.edges))
	for i, e := range g.edges {
		g.index[e.ID] = i
	}
}
