package trace

import "github.com/katalvlaran/spviz/core"

// NoPredecessor marks a node without a predecessor in a predecessor table.
const NoPredecessor core.NodeID = -1

// NewPredecessors returns a predecessor table of n entries, all NoPredecessor.
func NewPredecessors(n int) []core.NodeID {
	prev := make([]core.NodeID, n)
	for i := range prev {
		prev[i] = NoPredecessor
	}
	return prev
}

// BuildPaths walks prev from every node with a finite distance back to the
// source and returns the source→node sequences. The source and unreachable
// nodes are omitted.
//
// A walk longer than len(prev) hops means prev contains a cycle; such a
// node is omitted too, so a corrupted table can never loop forever.
//
// Complexity: O(V²) worst case, O(V·depth) typical.
func BuildPaths(dist DistanceTable, prev []core.NodeID, source core.NodeID) map[core.NodeID][]core.NodeID {
	paths := make(map[core.NodeID][]core.NodeID)
	for i := range dist {
		id := core.NodeID(i)
		if id == source || dist[i].IsInf() {
			continue
		}

		var rev []core.NodeID
		cur := id
		for cur != NoPredecessor && len(rev) <= len(prev) {
			rev = append(rev, cur)
			cur = prev[cur]
		}
		if cur != NoPredecessor || rev[len(rev)-1] != source {
			continue
		}

		path := make([]core.NodeID, len(rev))
		for j, n := range rev {
			path[len(rev)-1-j] = n
		}
		paths[id] = path
	}

	return paths
}

// PathEdges lists the edges along path in order.
func PathEdges(path []core.NodeID) []core.EdgeID {
	if len(path) < 2 {
		return nil
	}
	out := make([]core.EdgeID, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		out = append(out, core.EdgeIDFor(path[i], path[i+1]))
	}
	return out
}
