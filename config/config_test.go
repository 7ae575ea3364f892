package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/config"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

const manual = `
algorithm: bellmanford
source: 0
destination: 2
interval: 250ms
graph:
  nodes:
    - {id: 0, x: 10, y: 20}
    - {id: 1, x: 110, y: 20}
    - {id: 2, x: 60, y: 100}
  edges:
    - {source: 0, target: 1, weight: 4}
    - {source: 1, target: 2, weight: -2}
    - {source: 0, target: 2, weight: 3}
`

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, timeline.NoDestination, cfg.DestinationID())
}

func TestParse_Manual(t *testing.T) {
	cfg, err := config.Parse([]byte(manual))
	require.NoError(t, err)
	assert.Equal(t, trace.BellmanFord, cfg.Algorithm)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, core.NodeID(2), cfg.DestinationID())

	g, src, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), src)
	assert.Equal(t, 3, g.NodeCount())
	e, err := g.Edge("1-2")
	require.NoError(t, err)
	assert.True(t, e.IsNegative)
	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, "C", n.Label)
}

func TestParse_RandomOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("random:\n  nodes: 9\n  seed: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Random.Nodes)
	assert.Equal(t, 0.5, cfg.Random.Density, "unset keys keep their defaults")

	g1, s1, err := cfg.BuildGraph()
	require.NoError(t, err)
	g2, s2, err := cfg.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 9, g1.NodeCount())
	assert.Equal(t, s1, s2)
	assert.Empty(t, gocmp.Diff(g1.Edges(), g2.Edges()))

	p := cfg.RandomParams()
	assert.Equal(t, builder.RandomParams{Nodes: 9, Density: 0.5, MinWeight: 1, MaxWeight: 20, Algorithm: trace.Dijkstra}, p)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":     "colour: red\n",
		"bad algorithm":   "algorithm: astar\n",
		"bad interval":    "interval: 0s\n",
		"few nodes":       "random: {nodes: 1}\n",
		"density":         "random: {density: 2}\n",
		"weights":         "random: {min_weight: 9, max_weight: 3}\n",
		"sparse ids":      "graph: {nodes: [{id: 1}]}\n",
		"source":          "source: 4\ngraph: {nodes: [{id: 0}]}\n",
		"destination":     "destination: 4\ngraph: {nodes: [{id: 0}]}\n",
		"dangling edge":   "graph: {nodes: [{id: 0}], edges: [{source: 0, target: 3, weight: 1}]}\n",
		"not yaml at all": "algorithm: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("random: {nodes: 1}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBuildGraph_EdgeRules(t *testing.T) {
	doc := "graph: {nodes: [{id: 0}, {id: 1}], edges: [{source: 0, target: 1, weight: 1}, {source: 0, target: 1, weight: 2}]}\n"
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	_, _, err = cfg.BuildGraph()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestMarshalGraph_RoundTrip(t *testing.T) {
	cfg, err := config.Parse([]byte(manual))
	require.NoError(t, err)
	g, src, err := cfg.BuildGraph()
	require.NoError(t, err)

	data, err := config.MarshalGraph(g, trace.BellmanFord, src)
	require.NoError(t, err)
	assert.Contains(t, string(data), "algorithm: bellmanford")

	back, err := config.Parse(data)
	require.NoError(t, err)
	g2, src2, err := back.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, src, src2)
	assert.Empty(t, gocmp.Diff(g.Nodes(), g2.Nodes()))
	assert.Empty(t, gocmp.Diff(g.Edges(), g2.Edges()))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manual), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Graph.Edges, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
