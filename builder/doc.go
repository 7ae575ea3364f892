// SPDX-License-Identifier: MIT

// Package builder produces graphs for the tracer: seeded random graphs in
// the layout and weight style the visualizer expects, and small
// deterministic fixtures for tests and examples.
//
// Everything flows through BuildGraph(bopts, cons...):
//
//   - BuilderOption values resolve into a builderConfig (RNG, weight
//     function, canvas size).
//   - Constructors (Path, Cycle, Complete, Random) mutate a fresh core.Graph
//     in order.
//
// Random follows a fixed recipe:
//
//   - nodes on a circle with a small radius and angle jitter, labelled
//     A, B, C, ...;
//   - a random source and a breadth-first spanning structure from it, so
//     every node is reachable;
//   - extra edges, nearest first with some noise, up to a density that
//     shrinks as the node count grows; reverse edges are mostly avoided;
//   - algorithm-specific weights (1..15 for Dijkstra, wider for
//     Bellman-Ford, optionally negative);
//   - for Bellman-Ford with negative edges, sometimes a planted negative
//     cycle over three consecutive nodes, flagged InNegativeCycle.
//
// Determinism: the same options, seed and constructor order produce the
// same graph. Option constructors panic on meaningless values; constructors
// return sentinel errors and never panic.
package builder
