// Package bellmanford records a step-by-step trace of the Bellman-Ford
// single-source shortest-path algorithm over a directed weighted graph.
//
// Simulate runs at most |V|-1 relaxation passes over the edges in the order
// they are given (never re-sorted), then one detection pass for negative
// cycles. It emits one trace.Step per decision point:
//
//   - initialization (iteration 0);
//   - the start of each pass ("Iteration i of |V|-1");
//   - each edge in the pass: excluded when its source is unreachable,
//     otherwise a candidate check followed by either an inclusion (the
//     edge is listed in PathEdgeUpdates) or a "no improvement" exclusion;
//   - an early-stop step when a whole pass relaxes nothing;
//   - the detection pass header, the first relaxable edge if any, and a
//     final step.
//
// Negative weights are ordinary input here. A negative cycle is data, not an
// error: the trace and the final step carry NegativeCycleDetected, and the
// result has no paths.
//
// IterationCount holds the 1-based pass number during relaxation and |V|
// for the detection and final steps, so it never decreases. VisitedNodes and
// MinHeap are always empty.
//
// Complexity:
//
//   - Time:  O(V·E) for the algorithm, plus O(V) per step to snapshot the
//     distance table.
//   - Space: O(S·V) for S steps.
package bellmanford
