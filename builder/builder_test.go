package builder_test

import (
	"math/rand"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spviz/bellmanford"
	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// ------------------------------------------------------------------------
// Options
// ------------------------------------------------------------------------

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithCanvas(0, 600) })
	assert.Panics(t, func() { builder.WithCanvas(800, -1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(-3, 3)
	assert.Equal(t, int64(-3), fn(nil))

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(-3))
		assert.LessOrEqual(t, w, int64(3))
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

func TestFixtures(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		has   [][2]core.NodeID
	}{
		{"Path(4)", builder.Path(4), 4, 3, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, [][2]core.NodeID{{0, 1}, {3, 4}, {4, 0}}},
		{"Complete(4)", builder.Complete(4), 4, 12, [][2]core.NodeID{{0, 3}, {3, 0}, {1, 2}, {2, 1}}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, p := range tc.has {
				assert.True(t, g.HasEdge(p[0], p[1]), "missing %d→%d", p[0], p[1])
			}
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestFixtures_TooSmall(t *testing.T) {
	for _, ctor := range []builder.Constructor{builder.Path(1), builder.Cycle(2), builder.Complete(0)} {
		_, err := builder.BuildGraph(nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestCycle_NegativeWeightIsDetected(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(-1)}, builder.Cycle(4))
	require.NoError(t, err)

	tr, err := bellmanford.SimulateGraph(g, 0)
	require.NoError(t, err)
	assert.True(t, tr.NegativeCycle)
}

func TestLayout_StaysOnCanvas(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithCanvas(1000, 700)}, builder.Cycle(12))
	require.NoError(t, err)
	for _, n := range g.Nodes() {
		assert.InDelta(t, 500, n.X, 260, "node %s", n.Label)
		assert.InDelta(t, 350, n.Y, 260, "node %s", n.Label)
	}
	// Node 0 sits at angle 0, right of center.
	first, err := g.Node(0)
	require.NoError(t, err)
	assert.Greater(t, first.X, 500.0)
	assert.InDelta(t, 350, first.Y, 1e-9)
}

// ------------------------------------------------------------------------
// Random
// ------------------------------------------------------------------------

func TestRandom_Validation(t *testing.T) {
	ok := builder.DefaultRandomParams(trace.Dijkstra)
	seed := []builder.BuilderOption{builder.WithSeed(1)}

	p := ok
	p.Nodes = 1
	_, err := builder.BuildGraph(seed, builder.Random(p, nil))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	p = ok
	p.Density = 1.5
	_, err = builder.BuildGraph(seed, builder.Random(p, nil))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	p = ok
	p.MinWeight, p.MaxWeight = 10, 2
	_, err = builder.BuildGraph(seed, builder.Random(p, nil))
	assert.ErrorIs(t, err, builder.ErrBadWeightRange)

	_, err = builder.BuildGraph(nil, builder.Random(ok, nil))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(seed, builder.Path(2), builder.Random(ok, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandom_Deterministic(t *testing.T) {
	p := builder.DefaultRandomParams(trace.BellmanFord)
	p.AllowNegative = true
	p.Nodes = 9

	g1, m1, err := builder.Generate(p, builder.WithSeed(99))
	require.NoError(t, err)
	g2, m2, err := builder.Generate(p, builder.WithSeed(99))
	require.NoError(t, err)

	assert.Empty(t, gocmp.Diff(g1.Nodes(), g2.Nodes()))
	assert.Empty(t, gocmp.Diff(g1.Edges(), g2.Edges()))
	assert.Equal(t, m1, m2)
}

func TestRandom_Shape(t *testing.T) {
	for _, alg := range []trace.Algorithm{trace.Dijkstra, trace.BellmanFord} {
		for _, n := range []int{2, 3, 6, 10, 15} {
			for seed := int64(0); seed < 20; seed++ {
				p := builder.DefaultRandomParams(alg)
				p.Nodes = n
				p.AllowNegative = true

				g, meta, err := builder.Generate(p, builder.WithSeed(seed))
				require.NoError(t, err)
				require.Equal(t, n, g.NodeCount())

				// Every node is reachable from the chosen source.
				assert.Len(t, g.Reachable(meta.Source, nil), n, "%s n=%d seed=%d", alg, n, seed)

				for i, node := range g.Nodes() {
					assert.Equal(t, core.NodeID(i), node.ID)
					assert.Equal(t, core.Label(node.ID), node.Label)
				}
				for _, e := range g.Edges() {
					assert.NotEqual(t, e.Source, e.Target)
					assert.Equal(t, e.Weight < 0, e.IsNegative)
					checkWeight(t, alg, e)
				}
				if alg == trace.Dijkstra {
					assert.False(t, meta.NegativeCycle)
				}
			}
		}
	}
}

func checkWeight(t *testing.T, alg trace.Algorithm, e core.Edge) {
	t.Helper()
	switch {
	case alg == trace.Dijkstra:
		assert.GreaterOrEqual(t, e.Weight, int64(1), e.ID)
		assert.LessOrEqual(t, e.Weight, int64(15), e.ID)
	case e.InNegativeCycle:
		assert.NotZero(t, e.Weight, e.ID)
	case e.Weight < 0:
		assert.GreaterOrEqual(t, e.Weight, int64(-12), e.ID)
	default:
		// Bellman-Ford widens the range to at least 2..25.
		assert.GreaterOrEqual(t, e.Weight, int64(2), e.ID)
		assert.LessOrEqual(t, e.Weight, int64(25), e.ID)
	}
}

func TestRandom_DensityGrowsEdges(t *testing.T) {
	sparse := builder.DefaultRandomParams(trace.BellmanFord)
	sparse.Nodes, sparse.Density = 8, 0
	dense := sparse
	dense.Density = 1

	gs, _, err := builder.Generate(sparse, builder.WithSeed(3))
	require.NoError(t, err)
	gd, _, err := builder.Generate(dense, builder.WithSeed(3))
	require.NoError(t, err)

	// Density 0 leaves the spanning structure only.
	assert.Equal(t, 7, gs.EdgeCount())
	assert.Greater(t, gd.EdgeCount(), gs.EdgeCount())
	// Density caps at min(0.5, 0.8-8*0.04) = 0.48, so ceil(56*0.48) = 27 edges.
	assert.LessOrEqual(t, gd.EdgeCount(), 27)
}

func TestRandom_PlantedNegativeCycle(t *testing.T) {
	p := builder.DefaultRandomParams(trace.BellmanFord)
	p.Nodes = 7
	p.AllowNegative = true

	planted := 0
	for seed := int64(0); seed < 60; seed++ {
		g, meta, err := builder.Generate(p, builder.WithSeed(seed))
		require.NoError(t, err)
		if !meta.NegativeCycle {
			continue
		}
		planted++

		require.Len(t, meta.CycleEdges, 3)
		var sum int64
		for i, id := range meta.CycleEdges {
			e, err := g.Edge(id)
			require.NoError(t, err)
			assert.True(t, e.InNegativeCycle)
			sum += e.Weight

			next, err := g.Edge(meta.CycleEdges[(i+1)%3])
			require.NoError(t, err)
			assert.Equal(t, e.Target, next.Source, "cycle edges chain")
		}
		assert.Negative(t, sum)

		tr, err := bellmanford.SimulateGraph(g, meta.Source)
		require.NoError(t, err)
		assert.True(t, tr.NegativeCycle, "seed %d", seed)
	}
	assert.Positive(t, planted, "no seed planted a cycle")
}

func TestRandom_NoCycleBelowSixNodes(t *testing.T) {
	p := builder.DefaultRandomParams(trace.BellmanFord)
	p.Nodes = 5
	p.AllowNegative = true
	for seed := int64(0); seed < 40; seed++ {
		_, meta, err := builder.Generate(p, builder.WithSeed(seed))
		require.NoError(t, err)
		assert.False(t, meta.NegativeCycle)
	}
}
