package timeline

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// NoDestination selects every shortest path in Answer.
const NoDestination core.NodeID = -1

// Answer projects the final result of tr onto edges.
//
// Every edge starts unvisited. Without a negative cycle, the edges of the
// shortest path to dest become included, or the edges of every path when
// dest is NoDestination or has no path. With a negative cycle, every edge
// that can still be relaxed under the final distances becomes
// negativecycle. nodes supplies the source label for the explanation.
//
// The result carries the final distances and Answer=true. It does not
// depend on, or change, any Timeline position.
func Answer(tr *trace.Trace, nodes []core.Node, edges []core.Edge, dest core.NodeID) View {
	ids := make([]core.EdgeID, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	v := emptyView(ids)
	v.Answer = true
	if tr == nil {
		return v
	}
	v.Index = tr.Len()
	v.Distances = tr.Result.Distances.Clone()
	v.NegativeCycle = tr.NegativeCycle
	v.AlgorithmStep = "Done"

	if tr.NegativeCycle {
		dist := tr.Result.Distances
		for i, e := range edges {
			d := dist.Get(e.Source)
			if d.IsInf() {
				continue
			}
			if d.Add(e.Weight) < dist.Get(e.Target) {
				v.Edges[i].Status = core.StatusNegativeCycle
			}
		}
		v.Explanation = fmt.Sprintf("%s detected a negative cycle. No shortest paths exist.", tr.Algorithm.Title())
		return v
	}

	var paths [][]core.NodeID
	if p, ok := tr.Result.Paths[dest]; ok && dest != NoDestination {
		paths = [][]core.NodeID{p}
	} else {
		// Node order keeps Confirmed deterministic.
		for n := range tr.Result.Distances {
			if p, ok := tr.Result.Paths[core.NodeID(n)]; ok {
				paths = append(paths, p)
			}
		}
	}

	pos := make(map[core.EdgeID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	seen := make(map[core.EdgeID]bool)
	for _, p := range paths {
		for _, id := range trace.PathEdges(p) {
			if seen[id] {
				continue
			}
			seen[id] = true
			v.Confirmed = append(v.Confirmed, id)
			if i, ok := pos[id]; ok {
				v.Edges[i].Status = core.StatusIncluded
			}
		}
	}

	v.Explanation = fmt.Sprintf("%s complete. Shortest distances from %s shown.",
		tr.Algorithm.Title(), sourceLabel(nodes, tr.Source))
	return v
}

func sourceLabel(nodes []core.Node, id core.NodeID) string {
	if id >= 0 && int(id) < len(nodes) && nodes[id].Label != "" {
		return nodes[id].Label
	}
	return core.Label(id)
}
