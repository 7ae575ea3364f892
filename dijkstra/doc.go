// Package dijkstra records a step-by-step trace of Dijkstra's single-source
// shortest-path algorithm over a directed weighted graph.
//
// Simulate runs the classical priority-queue relaxation and emits one
// trace.Step per decision point:
//
//   - initialization (source=0, others=∞);
//   - pushing the source into the queue;
//   - each extraction (or a skip, when a stale entry surfaces);
//   - each outgoing edge: excluded when negative, otherwise a candidate
//     check followed by either a relaxation or a "no improvement" exclusion;
//   - a final "Done" step.
//
// Negative edges are not an error. They are recorded as excluded and never
// relaxed, so the trace can show where Dijkstra goes wrong on such graphs.
//
// Priority order is (distance, node ID) ascending; the queue supports
// decrease-key, so every node has at most one entry. MinHeap snapshots are
// listed in that same order and describe the queue after the step's
// mutation.
//
// When a node other than the source is extracted its predecessor edge is
// final, and the extraction step lists it in PathEdgeUpdates. The Done step
// marks every other examined edge excluded, so the last frame shows the
// shortest-path tree against a background of rejected edges.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the algorithm, plus O(V) per step to
//     snapshot the tables, O(S·V) overall for S steps.
//   - Space: O(S·V) for the snapshots.
package dijkstra
