// Package session wires a graph, an algorithm choice and a source/destination
// selection to a lazily recorded trace, its Timeline and a replay Player.
//
// A Session is what an interactive host keeps per open document:
//
//   - The trace is recorded on first use (Start, Step, Back, Seek,
//     SkipToEvent, ShowAnswer, Trace) from a frozen snapshot of the graph.
//   - Any change that affects the trace (graph edit, regeneration, clear,
//     algorithm switch, source change) stops replay, cancels a pending tick
//     and discards the trace, timeline and answer view in one step.
//   - Switching to Dijkstra turns off negative-edge generation; manual
//     negative weights are refused while Dijkstra is selected.
//   - ShowAnswer switches to View mode; stepping is refused there until
//     Explore mode is restored.
//
// All methods are safe for concurrent use. Hooks registered with
// WithOnStep/WithOnFinish run on the replay goroutine and must not call back
// into the Session.
package session
