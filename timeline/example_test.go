package timeline_test

import (
	"fmt"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/dijkstra"
	"github.com/katalvlaran/spviz/timeline"
)

// ExampleTimeline_SkipToEvent jumps between significant events of a
// Dijkstra run and prints what each one confirmed.
func ExampleTimeline_SkipToEvent() {
	g := core.NewGraph()
	a, b, c := g.AddNode(0, 0), g.AddNode(100, 0), g.AddNode(50, 80)
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)
	_, _ = g.AddEdge(a, c, 5)

	tr, err := dijkstra.SimulateGraph(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tl := timeline.FromTrace(g.Edges(), tr)

	for !tl.Done() {
		tl.SkipToEvent()
		v := tl.View()
		fmt.Printf("%2d %-45s confirmed=%v\n", v.Index, v.Explanation, v.Confirmed)
	}

	tl.Seek(0)
	fmt.Println("back to", tl.Index())
	// Output:
	//  3 Extracted node A, distance=0. Mark visited.   confirmed=[]
	//  8 Extracted node B, distance=1. Mark visited.   confirmed=[0-1]
	// 11 Extracted node C, distance=3. Mark visited.   confirmed=[0-1 1-2]
	// 12 Dijkstra complete. Distances finalized.       confirmed=[0-1 1-2]
	// back to 0
}
