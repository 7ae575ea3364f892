package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/spviz/bellmanford"
	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/dijkstra"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

var (
	// ErrViewMode indicates a stepping call while the answer is shown.
	ErrViewMode = errors.New("session: stepping is disabled in view mode")

	// ErrNoGraph indicates a nil graph was supplied.
	ErrNoGraph = errors.New("session: no graph")

	// ErrNoSource indicates a non-empty graph has no source selected.
	ErrNoSource = errors.New("session: no source node selected")

	// ErrNegativeWeight indicates a negative manual weight under Dijkstra.
	ErrNegativeWeight = errors.New("session: Dijkstra does not support negative weights")
)

// NoNode marks an unselected source.
const NoNode core.NodeID = -1

// Mode is the display mode.
type Mode int

const (
	// Explore shows the timeline position and allows stepping.
	Explore Mode = iota
	// View shows the final-answer projection.
	View
)

// String returns "explore" or "view".
func (m Mode) String() string {
	if m == View {
		return "view"
	}
	return "explore"
}

// Session is the per-document controller. The zero value is not usable;
// call New.
type Session struct {
	mu sync.Mutex

	g      *core.Graph
	alg    trace.Algorithm
	source core.NodeID
	dest   core.NodeID
	params builder.RandomParams
	meta   builder.RandomMeta
	mode   Mode

	rng      *rand.Rand
	canvas   builder.BuilderOption
	interval time.Duration
	onStep   func(timeline.View)
	onFinish func(timeline.View)

	// Derived state, nil until first use.
	tr     *trace.Trace
	nodes  []core.Node
	edges  []core.Edge
	tl     *timeline.Timeline
	player *timeline.Player
	// playCtx is the context of the last Start, reused when the interval
	// changes mid-replay.
	playCtx context.Context
}

// New returns a Session over an empty graph with Dijkstra selected.
// Without WithSeed or WithRand the generator is seeded from the clock.
func New(opts ...Option) *Session {
	s := &Session{
		g:        core.NewGraph(),
		alg:      trace.Dijkstra,
		source:   NoNode,
		dest:     timeline.NoDestination,
		params:   builder.DefaultRandomParams(trace.Dijkstra),
		interval: SpeedInterval(DefaultSpeed),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Graph returns a snapshot of the current graph.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Clone()
}

// Algorithm returns the selected algorithm.
func (s *Session) Algorithm() trace.Algorithm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alg
}

// Source returns the selected source, or NoNode.
func (s *Session) Source() core.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Destination returns the selected destination, or timeline.NoDestination.
func (s *Session) Destination() core.NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dest
}

// Params returns the parameters the next Regenerate will use.
func (s *Session) Params() builder.RandomParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Meta returns what the last generation decided. It is zero after manual
// loading.
func (s *Session) Meta() builder.RandomMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// Mode returns the display mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Interval returns the replay tick.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// LoadGraph replaces the graph with a copy of g and selects source, which
// may be NoNode.
func (s *Session) LoadGraph(g *core.Graph, source core.NodeID) error {
	if g == nil {
		return ErrNoGraph
	}
	if source != NoNode && !g.HasNode(source) {
		return fmt.Errorf("session: source %d: %w", source, core.ErrNodeNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.g = g.Clone()
	s.source = source
	s.dest = timeline.NoDestination
	s.meta = builder.RandomMeta{}
	s.invalidate()
	return nil
}

// Generate builds a random graph for p and selects its source. The session
// switches to p.Algorithm; Dijkstra forces AllowNegative off.
func (s *Session) Generate(p builder.RandomParams) (builder.RandomMeta, error) {
	if p.Algorithm == trace.Dijkstra {
		p.AllowNegative = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bopts := []builder.BuilderOption{builder.WithRand(s.rng)}
	if s.canvas != nil {
		bopts = append(bopts, s.canvas)
	}
	var meta builder.RandomMeta
	g, err := builder.BuildGraph(bopts, builder.Random(p, &meta))
	if err != nil {
		return builder.RandomMeta{}, fmt.Errorf("session: %w", err)
	}

	s.g = g
	s.alg = p.Algorithm
	s.params = p
	s.meta = meta
	s.source = meta.Source
	s.dest = timeline.NoDestination
	s.invalidate()
	return meta, nil
}

// Regenerate builds a new random graph with the current parameters and
// algorithm.
func (s *Session) Regenerate() (builder.RandomMeta, error) {
	s.mu.Lock()
	p := s.params
	p.Algorithm = s.alg
	s.mu.Unlock()

	return s.Generate(p)
}

// SetAlgorithm selects alg and discards the trace. Selecting Dijkstra also
// disables negative-edge generation.
func (s *Session) SetAlgorithm(alg trace.Algorithm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alg = alg
	s.params.Algorithm = alg
	if alg == trace.Dijkstra {
		s.params.AllowNegative = false
	}
	s.invalidate()
}

// SetParams stores generation parameters for the next Regenerate. The
// current graph and trace are untouched.
func (s *Session) SetParams(p builder.RandomParams) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.alg == trace.Dijkstra {
		p.AllowNegative = false
	}
	p.Algorithm = s.alg
	s.params = p
}

// SetSource selects the source node and discards the trace.
func (s *Session) SetSource(id core.NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.g.HasNode(id) {
		return fmt.Errorf("session: source %d: %w", id, core.ErrNodeNotFound)
	}
	s.source = id
	s.invalidate()
	return nil
}

// SetDestination selects the node whose path the answer view highlights.
// timeline.NoDestination selects every path. The trace is kept.
func (s *Session) SetDestination(id core.NodeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != timeline.NoDestination && !s.g.HasNode(id) {
		return fmt.Errorf("session: destination %d: %w", id, core.ErrNodeNotFound)
	}
	s.dest = id
	return nil
}

// SetInterval changes the replay tick; a running replay continues at the
// new rate from the same position. Non-positive values are ignored.
func (s *Session) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = d
	if s.player != nil {
		ctx := s.playCtx
		if ctx == nil {
			ctx = context.Background()
		}
		s.player.SetInterval(ctx, d)
	}
}

// SetSpeed is SetInterval(SpeedInterval(level)).
func (s *Session) SetSpeed(level int) {
	s.SetInterval(SpeedInterval(level))
}

// Close stops replay and waits for the replay goroutine to exit.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil {
		s.player.Stop()
	}
}

// invalidate stops replay and drops every derived value. Caller holds mu.
func (s *Session) invalidate() {
	if s.player != nil {
		s.player.Stop()
	}
	s.tr, s.nodes, s.edges = nil, nil, nil
	s.tl, s.player = nil, nil
	s.mode = Explore
}

// ensure records the trace if it is missing. Caller holds mu.
func (s *Session) ensure() error {
	if s.tr != nil {
		return nil
	}
	nodes, edges := s.g.Nodes(), s.g.Edges()
	if len(nodes) > 0 && s.source == NoNode {
		return ErrNoSource
	}

	var sim trace.Simulator
	switch s.alg {
	case trace.BellmanFord:
		sim = bellmanford.Simulate
	default:
		sim = dijkstra.Simulate
	}
	tr, err := sim(nodes, edges, s.source)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	s.tr, s.nodes, s.edges = tr, nodes, edges
	s.tl = timeline.FromTrace(edges, tr)
	s.player = timeline.NewPlayer(s.tl,
		timeline.WithInterval(s.interval),
		timeline.WithOnStep(s.onStep),
		timeline.WithOnFinish(s.onFinish),
	)
	return nil
}
