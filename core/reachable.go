package core

// Reachable returns every node reachable from source along directed edges,
// source included, in breadth-first discovery order. Edges are followed in
// the order given. Edges whose skip predicate returns true are not
// traversed; pass nil to follow all edges.
//
// An out-of-range source yields nil.
// Complexity: O(V + E)
func Reachable(nodeCount int, edges []Edge, source NodeID, skip func(Edge) bool) []NodeID {
	if source < 0 || int(source) >= nodeCount {
		return nil
	}

	adj := make([][]NodeID, nodeCount)
	for _, e := range edges {
		if e.Source < 0 || int(e.Source) >= nodeCount || e.Target < 0 || int(e.Target) >= nodeCount {
			continue
		}
		if skip != nil && skip(e) {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	seen := make([]bool, nodeCount)
	seen[source] = true
	order := []NodeID{source}
	for head := 0; head < len(order); head++ {
		for _, v := range adj[order[head]] {
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
		}
	}

	return order
}

// Reachable is the method form of the package-level Reachable over the
// graph's current edges.
func (g *Graph) Reachable(source NodeID, skip func(Edge) bool) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Reachable(len(g.nodes), g.edges, source, skip)
}
