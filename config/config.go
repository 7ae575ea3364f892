package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

// ErrInvalidConfig indicates a document that parses but cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Algorithm   trace.Algorithm `yaml:"algorithm"`
	Source      int             `yaml:"source"`
	Destination *int            `yaml:"destination,omitempty"`
	Interval    time.Duration   `yaml:"interval"`
	Random      Random          `yaml:"random"`
	Graph       *Graph          `yaml:"graph,omitempty"`
}

// Random holds generator parameters.
type Random struct {
	Nodes         int     `yaml:"nodes"`
	Density       float64 `yaml:"density"`
	MinWeight     int64   `yaml:"min_weight"`
	MaxWeight     int64   `yaml:"max_weight"`
	AllowNegative bool    `yaml:"allow_negative"`
	// Seed makes generation reproducible; nil seeds from the clock.
	Seed   *int64  `yaml:"seed,omitempty"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Graph is a hand-authored graph. Node IDs must be 0..n-1 in order.
type Graph struct {
	Nodes []Node `yaml:"nodes"`
	Edges []Edge `yaml:"edges"`
}

// Node is one graph node; its label is derived from the ID.
type Node struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Edge is one directed edge.
type Edge struct {
	Source int   `yaml:"source"`
	Target int   `yaml:"target"`
	Weight int64 `yaml:"weight"`
}

// Default returns Dijkstra from node 0 on a generated six-node graph,
// replayed at one step per second.
func Default() Config {
	p := builder.DefaultRandomParams(trace.Dijkstra)
	return Config{
		Algorithm: trace.Dijkstra,
		Interval:  timeline.DefaultInterval,
		Random: Random{
			Nodes:     p.Nodes,
			Density:   p.Density,
			MinWeight: p.MinWeight,
			MaxWeight: p.MaxWeight,
			Width:     builder.DefaultWidth,
			Height:    builder.DefaultHeight,
		},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes data over Default() and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings and whichever graph source is in use.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return invalid("interval must be positive, got %s", c.Interval)
	}
	if c.Graph != nil {
		return c.Graph.validate(c.Source, c.Destination)
	}

	r := c.Random
	switch {
	case r.Nodes < 2:
		return invalid("random.nodes must be at least 2, got %d", r.Nodes)
	case r.Density < 0 || r.Density > 1:
		return invalid("random.density must be in [0,1], got %g", r.Density)
	case r.MinWeight > r.MaxWeight:
		return invalid("random.min_weight %d > random.max_weight %d", r.MinWeight, r.MaxWeight)
	case r.Width <= 0 || r.Height <= 0:
		return invalid("random canvas must be positive, got %gx%g", r.Width, r.Height)
	}
	return nil
}

func (g *Graph) validate(source int, dest *int) error {
	n := len(g.Nodes)
	for i, node := range g.Nodes {
		if node.ID != i {
			return invalid("graph.nodes[%d] has id %d, ids must be 0..%d in order", i, node.ID, n-1)
		}
	}
	if n > 0 && (source < 0 || source >= n) {
		return invalid("source %d out of range [0,%d)", source, n)
	}
	if dest != nil && (*dest < 0 || *dest >= n) {
		return invalid("destination %d out of range [0,%d)", *dest, n)
	}
	for i, e := range g.Edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return invalid("graph.edges[%d] %d→%d references a missing node", i, e.Source, e.Target)
		}
	}
	return nil
}

// DestinationID returns the destination, or timeline.NoDestination.
func (c Config) DestinationID() core.NodeID {
	if c.Destination == nil {
		return timeline.NoDestination
	}
	return core.NodeID(*c.Destination)
}

// RandomParams converts the random section for the configured algorithm.
func (c Config) RandomParams() builder.RandomParams {
	return builder.RandomParams{
		Nodes:         c.Random.Nodes,
		Density:       c.Random.Density,
		MinWeight:     c.Random.MinWeight,
		MaxWeight:     c.Random.MaxWeight,
		AllowNegative: c.Random.AllowNegative,
		Algorithm:     c.Algorithm,
	}
}

// BuilderOptions returns the seed and canvas options of the random section.
func (c Config) BuilderOptions() []builder.BuilderOption {
	seed := time.Now().UnixNano()
	if c.Random.Seed != nil {
		seed = *c.Random.Seed
	}
	return []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithCanvas(c.Random.Width, c.Random.Height),
	}
}

// BuildGraph returns the graph the document describes and its source: the
// explicit graph with the configured source, or a generated graph with the
// generator's source.
func (c Config) BuildGraph() (*core.Graph, core.NodeID, error) {
	if err := c.Validate(); err != nil {
		return nil, 0, err
	}
	if c.Graph == nil {
		g, meta, err := builder.Generate(c.RandomParams(), c.BuilderOptions()...)
		if err != nil {
			return nil, 0, fmt.Errorf("config: %w", err)
		}
		return g, meta.Source, nil
	}

	g := core.NewGraph()
	for _, n := range c.Graph.Nodes {
		g.AddNode(n.X, n.Y)
	}
	for i, e := range c.Graph.Edges {
		if _, err := g.AddEdge(core.NodeID(e.Source), core.NodeID(e.Target), e.Weight); err != nil {
			return nil, 0, fmt.Errorf("%w: graph.edges[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return g, core.NodeID(c.Source), nil
}

// FromGraph returns a document holding g explicitly, with source selected.
func FromGraph(g *core.Graph, alg trace.Algorithm, source core.NodeID) Config {
	c := Default()
	c.Algorithm = alg
	c.Source = int(source)
	c.Graph = &Graph{}
	for _, n := range g.Nodes() {
		c.Graph.Nodes = append(c.Graph.Nodes, Node{ID: int(n.ID), X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges() {
		c.Graph.Edges = append(c.Graph.Edges, Edge{Source: int(e.Source), Target: int(e.Target), Weight: e.Weight})
	}
	return c
}

// MarshalGraph renders g as a YAML document that BuildGraph reproduces.
func MarshalGraph(g *core.Graph, alg trace.Algorithm, source core.NodeID) ([]byte, error) {
	data, err := yaml.Marshal(FromGraph(g, alg, source))
	if err != nil {
		return nil, fmt.Errorf("marshaling graph: %w", err)
	}
	return data, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
