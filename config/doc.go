// Package config loads host settings and hand-authored graphs from YAML.
//
// A document selects the algorithm, source, optional destination and replay
// interval, and supplies the graph either explicitly (graph:) or as
// parameters for the random generator (random:). When both are present the
// explicit graph wins.
//
//	algorithm: bellmanford
//	source: 0
//	destination: 3
//	interval: 500ms
//	random:
//	  nodes: 6
//	  density: 0.5
//	  min_weight: 1
//	  max_weight: 20
//	  allow_negative: true
//	  seed: 42
//	graph:
//	  nodes: [{id: 0, x: 10, y: 20}, {id: 1, x: 90, y: 20}]
//	  edges: [{source: 0, target: 1, weight: 4}]
//
// Unknown keys are rejected. Every validation failure wraps ErrInvalidConfig.
package config
