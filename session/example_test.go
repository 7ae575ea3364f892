package session_test

import (
	"fmt"

	"github.com/katalvlaran/spviz/session"
	"github.com/katalvlaran/spviz/trace"
)

// ExampleSession builds a graph by hand, steps to the first event and then
// shows the answer for one destination.
func ExampleSession() {
	s := session.New()
	defer s.Close()

	s.SetAlgorithm(trace.BellmanFord)
	a, b, c := s.AddNode(0, 0), s.AddNode(100, 0), s.AddNode(50, 80)
	_, _ = s.AddEdge(a, b, 4)
	_, _ = s.AddEdge(b, c, -2)
	_, _ = s.AddEdge(a, c, 3)
	_ = s.SetSource(a)

	v, _ := s.SkipToEvent()
	fmt.Println(v.Index, v.Explanation)

	_ = s.SetDestination(c)
	ans, _ := s.ShowAnswer()
	fmt.Println(ans.Confirmed, ans.Distances)

	_, err := s.Step()
	fmt.Println(err)
	// Output:
	// 4 Relaxed edge. Distance to B updated from ∞ to 4.
	// [0-1 1-2] [0 4 2]
	// session: stepping is disabled in view mode
}
