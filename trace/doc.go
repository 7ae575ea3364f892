// Package trace defines the replayable record a shortest-path simulator
// produces: an ordered, immutable sequence of Step snapshots plus the final
// Result computed eagerly at generation time.
//
// A Step carries full snapshots of the distance table, visited set and
// priority queue, but only the delta of edge statuses (EdgeUpdates) and of
// newly confirmed shortest-path-tree edges (PathEdgeUpdates). Replaying
// Steps in order and applying the deltas cumulatively reproduces the whole
// run; see package timeline.
//
// Distances are int64 with an explicit Infinity sentinel. Arithmetic goes
// through Distance.Add so an unreachable node never overflows into a
// finite value.
//
// Paths are rebuilt from a predecessor table by BuildPaths. The source
// itself and unreachable nodes are absent from the mapping.
package trace
