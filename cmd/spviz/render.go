package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/timeline"
)

// printView writes one view as a short block: header, distances, queue or
// iteration, and the edges that are not unvisited.
func printView(w io.Writer, v timeline.View, nodes []core.Node) {
	fmt.Fprintf(w, "[%3d] %s\n", v.Index, v.Explanation)
	if v.AlgorithmStep != "" {
		fmt.Fprintf(w, "      step: %s\n", v.AlgorithmStep)
	}
	if len(v.Distances) > 0 {
		parts := make([]string, len(v.Distances))
		for i, d := range v.Distances {
			mark := ""
			for _, u := range v.UpdatedNodes {
				if u == core.NodeID(i) {
					mark = "*"
				}
			}
			parts[i] = fmt.Sprintf("%s=%s%s", label(nodes, core.NodeID(i)), d, mark)
		}
		fmt.Fprintf(w, "      dist: %s\n", strings.Join(parts, " "))
	}
	if len(v.MinHeap) > 0 {
		parts := make([]string, len(v.MinHeap))
		for i, h := range v.MinHeap {
			parts[i] = fmt.Sprintf("%s:%s", label(nodes, h.ID), h.Dist)
		}
		fmt.Fprintf(w, "      heap: [%s]\n", strings.Join(parts, " "))
	}
	if v.Iteration > 0 {
		fmt.Fprintf(w, "      iteration: %d\n", v.Iteration)
	}

	var edges []string
	for _, e := range v.Edges {
		if e.Status == core.StatusUnvisited {
			continue
		}
		s := fmt.Sprintf("%s=%s", e.ID, e.Status)
		if e.ID == v.CurrentEdge {
			s += "<"
		}
		edges = append(edges, s)
	}
	if len(edges) > 0 {
		fmt.Fprintf(w, "      edges: %s\n", strings.Join(edges, " "))
	}
	if v.NegativeCycle {
		fmt.Fprintln(w, "      negative cycle detected")
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func label(nodes []core.Node, id core.NodeID) string {
	if id >= 0 && int(id) < len(nodes) {
		return nodes[id].Label
	}
	return core.Label(id)
}
