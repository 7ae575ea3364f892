// Package spviz is a step-trace engine for single-source shortest paths:
// it records every decision Dijkstra's algorithm and Bellman-Ford make on a
// directed weighted graph, and replays the record one step at a time.
//
// 🚀 What is spviz?
//
//	An in-process tracer built for teaching, which brings together:
//		• Graph model: nodes with positions and labels, directed weighted edges, manual editing
//		• Simulators: Dijkstra (priority queue, negative edges excluded) and Bellman-Ford
//		  (early stop, negative-cycle detection)
//		• Timeline: forward, back, seek and skip-to-event over recorded snapshots,
//		  plus a timed replay Player
//		• Answer view: final shortest-path tree or negative-cycle edges
//		• Generator: seeded random graphs on a circle layout
//
// ✨ Why a recorded trace?
//
//   - Every step is a full snapshot: stepping back is exact, never an undo log
//   - Simulators are pure: same graph and source ⇒ byte-identical trace
//   - Hosts stay thin: a UI or CLI only draws the View it is handed
//
// Under the hood, everything is organized into small packages:
//
//	core/        Graph, Node, Edge, EdgeStatus, validation & reachability
//	trace/       Step, Distance (explicit ∞), Trace, path reconstruction
//	dijkstra/    Dijkstra simulator
//	bellmanford/ Bellman-Ford simulator
//	timeline/    replay controller, state machine, Player, Answer
//	builder/     random graphs and fixtures
//	session/     per-document wiring with lazy trace and invalidation
//	config/      YAML settings and graph documents
//	cmd/spviz/   command-line host
//
// Quick ASCII example:
//
//	    A──1──►B
//	     \     │
//	      5    2
//	       \   ▼
//	        ──►C
//
//	Dijkstra from A records 12 steps and confirms A→B, B→C (C = 3).
//
//	go install github.com/katalvlaran/spviz/cmd/spviz@latest
package spviz
