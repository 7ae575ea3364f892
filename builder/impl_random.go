// SPDX-License-Identifier: MIT
// Package: spviz/builder
//
// impl_random.go - implementation of Random(p, meta) constructor.
//
// Contract:
//   - p.Nodes ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p.Density ≤ 1 (else ErrInvalidProbability).
//   - p.MinWeight ≤ p.MaxWeight (else ErrBadWeightRange).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - The target graph must be empty (else ErrConstructFailed).
//   - Every node is reachable from meta.Source.
//   - Dijkstra graphs never carry negative weights.
//
// Complexity:
//   - Time: O(n² log n) for candidate ranking, O(n³) worst case for the
//     spanning pass.
//   - Space: O(n²) candidate edges.
//
// Determinism:
//   - All draws come from cfg.rng in a fixed order: source, layout,
//     spanning structure, extra edges, negative cycle.

package builder

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 2

	// Probability of dropping an edge whose reverse already exists.
	reverseSkipProb = 0.8
	// Probability of planting a negative cycle when allowed.
	negativeCycleProb = 0.4
	// Nodes in a planted negative cycle.
	negativeCycleSize = 3
)

// RandomParams describes a random graph request.
type RandomParams struct {
	Nodes         int
	Density       float64
	MinWeight     int64
	MaxWeight     int64
	AllowNegative bool
	Algorithm     trace.Algorithm
}

// DefaultRandomParams returns six nodes at density 0.5 with weights 1..20.
func DefaultRandomParams(alg trace.Algorithm) RandomParams {
	return RandomParams{
		Nodes:     6,
		Density:   0.5,
		MinWeight: 1,
		MaxWeight: 20,
		Algorithm: alg,
	}
}

// RandomMeta reports what Random decided.
type RandomMeta struct {
	// Source is the node every other node is reachable from.
	Source core.NodeID
	// NegativeCycle is true when a negative cycle was planted.
	NegativeCycle bool
	// CycleEdges lists the planted cycle in traversal order.
	CycleEdges []core.EdgeID
}

func (p RandomParams) validate() error {
	if p.Nodes < minRandomNodes {
		return fmt.Errorf("%s: nodes=%d < min=%d: %w", methodRandom, p.Nodes, minRandomNodes, ErrTooFewVertices)
	}
	if p.Density < 0 || p.Density > 1 || math.IsNaN(p.Density) {
		return fmt.Errorf("%s: density=%.3f: %w", methodRandom, p.Density, ErrInvalidProbability)
	}
	if p.MinWeight > p.MaxWeight {
		return fmt.Errorf("%s: min=%d > max=%d: %w", methodRandom, p.MinWeight, p.MaxWeight, ErrBadWeightRange)
	}
	return nil
}

// normalize applies the per-algorithm adjustments: Dijkstra uses a fixed
// 1..15 range, a 15% denser graph and no negative weights; Bellman-Ford
// widens the range to at least 2..25.
func (p RandomParams) normalize() RandomParams {
	if p.Algorithm == trace.Dijkstra {
		p.MinWeight, p.MaxWeight = dijkstraMinWeight, dijkstraMaxWeight
		p.Density = math.Min(p.Density*1.15, 0.5)
		p.AllowNegative = false
		return p
	}
	if p.MinWeight < 2 {
		p.MinWeight = 2
	}
	if p.MaxWeight < 25 {
		p.MaxWeight = 25
	}
	return p
}

// candidate is a possible directed edge ranked by geometry.
type candidate struct {
	source, target core.NodeID
	// adjusted is the Euclidean length scaled by how far apart the nodes
	// sit around the circle.
	adjusted float64
	// circleDist is the number of positions between the nodes, 1..n/2.
	circleDist int
}

// randomGen carries the working state of one Random run.
type randomGen struct {
	p     RandomParams
	rng   *rand.Rand
	n     int
	edges []core.Edge
	// seen holds every ordered pair offered to addEdge, including pairs it
	// then dropped, plus planted cycle edges.
	seen map[core.EdgeID]bool
	// tree holds the spanning edges; they are never removed.
	tree map[core.EdgeID]bool
}

// Random returns a Constructor that builds a connected random graph for p.
// If meta is non-nil it receives the chosen source and cycle information.
func Random(p RandomParams, meta *RandomMeta) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := p.validate(); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		if g.NodeCount() != 0 {
			return fmt.Errorf("%s: graph has %d nodes: %w", methodRandom, g.NodeCount(), ErrConstructFailed)
		}

		gen := &randomGen{
			p:    p.normalize(),
			rng:  cfg.rng,
			n:    p.Nodes,
			seen: make(map[core.EdgeID]bool),
			tree: make(map[core.EdgeID]bool),
		}
		source := core.NodeID(gen.rng.Intn(gen.n))
		placeOnCircle(g, gen.n, cfg, gen.rng)

		cands := gen.candidates(g.Nodes())
		tree := gen.spanningTree(source, cands)
		for _, c := range tree {
			gen.tree[core.EdgeIDFor(c.source, c.target)] = true
			gen.addEdge(c)
		}
		gen.addExtra(cands, len(tree))
		cycle := gen.plantNegativeCycle()

		for _, e := range gen.edges {
			if _, err := g.AddEdge(e.Source, e.Target, e.Weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandom, e.Source, e.Target, e.Weight, err)
			}
			if e.InNegativeCycle {
				if err := g.MarkNegativeCycle(e.ID); err != nil {
					return fmt.Errorf("%s: %w", methodRandom, err)
				}
			}
		}

		if meta != nil {
			*meta = RandomMeta{Source: source, NegativeCycle: len(cycle) > 0, CycleEdges: cycle}
		}
		return nil
	}
}

// candidates returns every ordered pair, nearest first.
func (r *randomGen) candidates(nodes []core.Node) []candidate {
	factor := 0.2
	if r.p.Algorithm == trace.Dijkstra {
		factor = 0.15
	}

	out := make([]candidate, 0, r.n*(r.n-1))
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			if i == j {
				continue
			}
			d := math.Hypot(nodes[j].X-nodes[i].X, nodes[j].Y-nodes[i].Y)
			cd := abs(i - j)
			if r.n-cd < cd {
				cd = r.n - cd
			}
			out = append(out, candidate{
				source:     core.NodeID(i),
				target:     core.NodeID(j),
				adjusted:   d * (1 + float64(cd)*factor),
				circleDist: cd,
			})
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].adjusted < out[b].adjusted })

	return out
}

// spanningTree grows a breadth-first tree from source, attaching each
// processed node to its nearest unconnected neighbour. When the queue runs
// dry a random connected node is requeued, so the loop always ends with
// every node connected.
func (r *randomGen) spanningTree(source core.NodeID, cands []candidate) []candidate {
	connected := make([]bool, r.n)
	processed := make([]bool, r.n)
	order := []core.NodeID{source}
	connected[source], processed[source] = true, true
	queue := []core.NodeID{source}

	tree := make([]candidate, 0, r.n-1)
	for len(order) < r.n {
		if len(queue) == 0 {
			queue = append(queue, order[r.rng.Intn(len(order))])
		}
		cur := queue[0]
		queue = queue[1:]

		for _, c := range cands {
			if c.source != cur || connected[c.target] {
				continue
			}
			tree = append(tree, c)
			connected[c.target] = true
			order = append(order, c.target)
			if !processed[c.target] {
				processed[c.target] = true
				queue = append(queue, c.target)
			}
			break
		}
	}

	return tree
}

// addEdge appends c with a freshly drawn weight unless the pair was offered
// before, or its reverse exists and the 80% reverse filter fires.
func (r *randomGen) addEdge(c candidate) {
	id := core.EdgeIDFor(c.source, c.target)
	if r.seen[id] {
		return
	}
	r.seen[id] = true
	if r.seen[core.EdgeIDFor(c.target, c.source)] && r.rng.Float64() < reverseSkipProb {
		return
	}

	var w int64
	if r.p.Algorithm == trace.Dijkstra {
		w = dijkstraWeight(r.rng)
	} else {
		w = bellmanFordWeight(r.rng, r.p.MinWeight, r.p.MaxWeight, r.p.AllowNegative)
	}
	r.edges = append(r.edges, core.NewEdge(c.source, c.target, w))
}

// addExtra tops the graph up to the effective density. Candidates are
// filtered (reverse pairs and near-diameter chords are mostly dropped),
// ranked by adjusted length plus noise, and offered to addEdge in order.
func (r *randomGen) addExtra(cands []candidate, treeEdges int) {
	mult, chordSkip := 1.0, 0.5
	if r.p.Algorithm == trace.Dijkstra {
		mult, chordSkip = 1.05, 0.4
	}
	maxDensity := math.Min(0.5, 0.8-float64(r.n)*0.04)
	density := math.Min(r.p.Density*mult, maxDensity)
	target := int(math.Ceil(float64(r.n*(r.n-1)) * density))
	remaining := target - treeEdges
	if remaining <= 0 {
		return
	}

	type scored struct {
		c     candidate
		score float64
	}
	pool := make([]scored, 0, len(cands))
	for _, c := range cands {
		if r.seen[core.EdgeIDFor(c.target, c.source)] && r.rng.Float64() < reverseSkipProb {
			continue
		}
		if float64(c.circleDist)/(float64(r.n)/2) > 0.8 && r.rng.Float64() < chordSkip {
			continue
		}
		pool = append(pool, scored{c: c, score: c.adjusted + r.rng.Float64()*20})
	}
	sort.SliceStable(pool, func(a, b int) bool { return pool[a].score < pool[b].score })

	for i := 0; i < remaining && i < len(pool); i++ {
		r.addEdge(pool[i].c)
	}
}

// plantNegativeCycle, for Bellman-Ford with negative edges allowed, turns
// three consecutive nodes into a negative cycle with probability 0.4.
// Reverse edges along the cycle are removed unless they are spanning
// edges. The last cycle edge gets a weight below minus the sum of the
// other two. Graphs with fewer than six nodes never get one.
// Returns the cycle edge IDs, or nil.
func (r *randomGen) plantNegativeCycle() []core.EdgeID {
	if r.p.Algorithm != trace.BellmanFord || !r.p.AllowNegative {
		return nil
	}
	if r.rng.Float64() >= negativeCycleProb {
		return nil
	}
	if min(negativeCycleSize, r.n/2) != negativeCycleSize {
		return nil
	}

	start := r.rng.Intn(r.n)
	nodes := make([]core.NodeID, negativeCycleSize)
	for i := range nodes {
		nodes[i] = core.NodeID((start + i) % r.n)
	}

	var total int64
	ids := make([]core.EdgeID, negativeCycleSize)
	for i := range nodes {
		s, t := nodes[i], nodes[(i+1)%negativeCycleSize]
		r.removeEdge(core.EdgeIDFor(t, s))

		w := int64(r.rng.Intn(10)) + 1
		total += w
		id := core.EdgeIDFor(s, t)
		at := r.indexOf(id)
		if at < 0 {
			r.edges = append(r.edges, core.NewEdge(s, t, w))
			r.seen[id] = true
			at = len(r.edges) - 1
		}
		r.edges[at].Weight = w
		r.edges[at].IsNegative = false
		r.edges[at].InNegativeCycle = true
		ids[i] = id
	}

	// Removals above only touch reverse pairs, never cycle edges.
	last := &r.edges[r.indexOf(ids[negativeCycleSize-1])]
	last.Weight = -(total + int64(r.rng.Intn(3)) + 1)
	last.IsNegative = true

	return ids
}

func (r *randomGen) indexOf(id core.EdgeID) int {
	for i := range r.edges {
		if r.edges[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *randomGen) removeEdge(id core.EdgeID) {
	if r.tree[id] {
		return
	}
	if i := r.indexOf(id); i >= 0 {
		r.edges = append(r.edges[:i], r.edges[i+1:]...)
		delete(r.seen, id)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
