// Package timeline replays a recorded shortest-path trace one step at a time.
//
// A Timeline owns the step list, the current index and the set of confirmed
// path edges, and turns them into a View: per-edge statuses, the distance
// table, the visited set, the queue snapshot, the iteration counter and the
// explanation of the last applied step.
//
// Navigation:
//
//   - Forward applies the step at the index and advances it.
//   - Back and Seek re-derive the view from scratch, so an index always
//     yields the same View no matter how it was reached.
//   - SkipToEvent applies steps until one confirms a path edge, grows the
//     visited set or detects a negative cycle.
//   - Reset discards the steps and returns to the empty view.
//
// Moving past either end is a no-op, never an error.
//
// The view at index k > 0 is steps[k-1] applied over the edges confirmed by
// steps[0..k-2]: confirmed edges show as included, every other edge as
// unvisited, then the step's EdgeUpdates are laid on top and its
// PathEdgeUpdates are confirmed. Index 0 is the empty view.
//
// A Player drives a Timeline on a fixed tick. Pausing or resetting cancels
// the pending tick; a tick from an earlier run never applies a step.
//
// Answer projects a trace's final result onto the edges without touching
// any Timeline.
package timeline
