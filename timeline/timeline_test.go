package timeline_test

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spviz/bellmanford"
	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/dijkstra"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
	"github.com/katalvlaran/spviz/trace/tracetest"
)

// recorded is one fixture run through one simulator.
type recorded struct {
	name string
	f    tracetest.Fixture
	tr   *trace.Trace
}

func allRecorded(t *testing.T) []recorded {
	t.Helper()
	var out []recorded
	for _, f := range tracetest.All() {
		dj, err := dijkstra.Simulate(f.Nodes, f.Edges, f.Source)
		require.NoError(t, err)
		bf, err := bellmanford.Simulate(f.Nodes, f.Edges, f.Source)
		require.NoError(t, err)
		out = append(out,
			recorded{name: "dijkstra/" + f.Name, f: f, tr: dj},
			recorded{name: "bellmanford/" + f.Name, f: f, tr: bf},
		)
	}
	return out
}

func newTimeline(t *testing.T, f tracetest.Fixture, sim trace.Simulator) *timeline.Timeline {
	t.Helper()
	tr, err := sim(f.Nodes, f.Edges, f.Source)
	require.NoError(t, err)
	return timeline.FromTrace(f.Edges, tr)
}

// ------------------------------------------------------------------------
// Navigation
// ------------------------------------------------------------------------

func TestTimeline_EmptyView(t *testing.T) {
	f := tracetest.Triangle()
	tl := newTimeline(t, f, dijkstra.Simulate)

	v := tl.View()
	assert.Equal(t, 0, v.Index)
	require.Len(t, v.Edges, 3)
	for _, e := range v.Edges {
		assert.Equal(t, core.StatusUnvisited, e.Status)
	}
	assert.Empty(t, v.Distances)
	assert.Empty(t, v.Confirmed)
	assert.Zero(t, v.Iteration)
}

func TestTimeline_ForwardDijkstraTriangle(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)
	require.Equal(t, 12, tl.Len())

	// Index 5 shows step 4: A→B relaxed.
	for i := 0; i < 5; i++ {
		require.True(t, tl.Forward())
	}
	v := tl.View()
	assert.Equal(t, core.StatusRelaxed, v.Status("0-1"))
	assert.Equal(t, core.EdgeID("0-1"), v.CurrentEdge)
	assert.Equal(t, []core.NodeID{1}, v.UpdatedNodes)
	assert.Equal(t, []core.NodeID{0}, v.Visited)

	// Candidate on A→C: the A→B relaxation is not carried over.
	require.True(t, tl.Forward())
	v = tl.View()
	assert.Equal(t, core.StatusUnvisited, v.Status("0-1"))
	assert.Equal(t, core.StatusCandidate, v.Status("0-2"))
	assert.Empty(t, v.UpdatedNodes)

	for tl.Forward() {
	}
	v = tl.View()
	assert.Equal(t, 12, v.Index)
	assert.Equal(t, core.StatusIncluded, v.Status("0-1"))
	assert.Equal(t, core.StatusIncluded, v.Status("1-2"))
	assert.Equal(t, core.StatusExcluded, v.Status("0-2"))
	assert.Equal(t, []core.EdgeID{"0-1", "1-2"}, v.Confirmed)
	assert.Equal(t, trace.DistanceTable{0, 1, 3}, v.Distances)
	assert.Equal(t, dijkstra.LineDone, v.AlgorithmStep)

	// Past the end is a no-op.
	assert.False(t, tl.Forward())
	assert.Equal(t, 12, tl.Index())
}

func TestTimeline_ConfirmedEdgesSurviveLaterSteps(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), bellmanford.Simulate)

	// Index 4 applies step 3, which relaxes A→B and confirms it.
	require.True(t, tl.Seek(4))
	assert.True(t, tl.View().IsConfirmed("0-1"))

	// The next step is a candidate on B→C; A→B stays included underneath.
	require.True(t, tl.Forward())
	v := tl.View()
	assert.Equal(t, core.StatusIncluded, v.Status("0-1"))
	assert.Equal(t, core.StatusCandidate, v.Status("1-2"))
}

func TestTimeline_BackAtZeroIsNoop(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)
	before := tl.View()
	assert.False(t, tl.Back())
	assert.Equal(t, 0, tl.Index())
	assert.Empty(t, gocmp.Diff(before, tl.View()))
}

func TestTimeline_SeekOutOfRange(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)
	require.True(t, tl.Seek(5))
	assert.False(t, tl.Seek(-1))
	assert.False(t, tl.Seek(13))
	assert.Equal(t, 5, tl.Index())
}

func TestTimeline_ReplayIdempotence(t *testing.T) {
	for _, rc := range allRecorded(t) {
		t.Run(rc.name, func(t *testing.T) {
			tl := timeline.FromTrace(rc.f.Edges, rc.tr)
			n := tl.Len()

			forward := make([]timeline.View, n+1)
			forward[0] = tl.View()
			for k := 1; k <= n; k++ {
				require.True(t, tl.Forward())
				forward[k] = tl.View()
			}

			for k := n - 1; k >= 0; k-- {
				require.True(t, tl.Back())
				if diff := gocmp.Diff(forward[k], tl.View()); diff != "" {
					t.Fatalf("index %d differs going back (-forward +back):\n%s", k, diff)
				}
			}

			for _, k := range []int{n, 0, n / 2, 1, n} {
				if k > n {
					continue
				}
				require.True(t, tl.Seek(k))
				if diff := gocmp.Diff(forward[k], tl.View()); diff != "" {
					t.Fatalf("seek %d differs (-forward +seek):\n%s", k, diff)
				}
			}
		})
	}
}

func TestTimeline_ForwardThenBackEqualsReset(t *testing.T) {
	for _, rc := range allRecorded(t) {
		t.Run(rc.name, func(t *testing.T) {
			tl := timeline.FromTrace(rc.f.Edges, rc.tr)
			n := tl.Len()
			for i := 0; i < n; i++ {
				tl.Forward()
			}
			for i := 0; i < n; i++ {
				tl.Back()
			}

			reset := timeline.FromTrace(rc.f.Edges, rc.tr)
			reset.Forward()
			reset.Reset()

			assert.Empty(t, gocmp.Diff(reset.View(), tl.View()))
			assert.Equal(t, 0, reset.Len())
			assert.Equal(t, timeline.NotStarted, reset.State())
		})
	}
}

func TestTimeline_SkipMatchesRepeatedForward(t *testing.T) {
	for _, rc := range allRecorded(t) {
		t.Run(rc.name, func(t *testing.T) {
			skip := timeline.FromTrace(rc.f.Edges, rc.tr)
			step := timeline.FromTrace(rc.f.Edges, rc.tr)

			for !skip.Done() {
				n := skip.SkipToEvent()
				require.Positive(t, n)
				for i := 0; i < n; i++ {
					require.True(t, step.Forward())
				}
				require.Equal(t, step.Index(), skip.Index())
				if diff := gocmp.Diff(step.View(), skip.View()); diff != "" {
					t.Fatalf("skip differs at %d (-forward +skip):\n%s", skip.Index(), diff)
				}
			}
			assert.Zero(t, skip.SkipToEvent())
		})
	}
}

func TestTimeline_SkipStopsAtEvents(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)

	// Extracting A grows the visited set.
	assert.Equal(t, 3, tl.SkipToEvent())
	assert.Equal(t, []core.NodeID{0}, tl.View().Visited)

	// Extracting B confirms A→B.
	assert.Equal(t, 5, tl.SkipToEvent())
	assert.Equal(t, 8, tl.Index())
	assert.Equal(t, []core.EdgeID{"0-1"}, tl.View().Confirmed)

	bf := newTimeline(t, tracetest.NegativeCycle(), bellmanford.Simulate)
	for !bf.View().NegativeCycle && !bf.Done() {
		bf.SkipToEvent()
	}
	v := bf.View()
	assert.True(t, v.NegativeCycle)
	assert.Equal(t, core.StatusNegativeCycle, v.Status("1-2"))
	assert.Equal(t, 17, bf.Index())
}

// ------------------------------------------------------------------------
// State machine
// ------------------------------------------------------------------------

func TestTimeline_StateMachine(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)
	assert.Equal(t, timeline.NotStarted, tl.State())

	assert.ErrorIs(t, tl.Pause(), timeline.ErrBadTransition)
	assert.ErrorIs(t, tl.Resume(), timeline.ErrBadTransition)

	require.NoError(t, tl.Start())
	assert.Equal(t, timeline.Running, tl.State())
	assert.ErrorIs(t, tl.Start(), timeline.ErrBadTransition)

	require.NoError(t, tl.Pause())
	assert.Equal(t, timeline.Paused, tl.State())
	assert.False(t, tl.Tick(), "a paused timeline ignores ticks")
	assert.Equal(t, 0, tl.Index())

	require.NoError(t, tl.Resume())
	for tl.Tick() {
	}
	assert.Equal(t, timeline.Finished, tl.State())
	assert.Equal(t, tl.Len(), tl.Index())
	assert.ErrorIs(t, tl.Resume(), timeline.ErrBadTransition)

	require.True(t, tl.Back())
	assert.Equal(t, timeline.Paused, tl.State())

	tl.Reset()
	assert.Equal(t, timeline.NotStarted, tl.State())
	assert.Equal(t, 0, tl.Index())
}

func TestTimeline_StartAtEndFinishes(t *testing.T) {
	tl := newTimeline(t, tracetest.Disconnected(), dijkstra.Simulate)
	require.True(t, tl.Seek(tl.Len()))
	require.NoError(t, tl.Start())
	assert.Equal(t, timeline.Finished, tl.State())

	empty := timeline.New(nil, nil)
	require.NoError(t, empty.Start())
	assert.Equal(t, timeline.Finished, empty.State())
	assert.False(t, empty.Forward())
}

func TestTimeline_ViewIsACopy(t *testing.T) {
	tl := newTimeline(t, tracetest.Triangle(), dijkstra.Simulate)
	tl.Seek(7)
	v := tl.View()
	v.Edges[0].Status = core.StatusNegativeCycle
	v.Distances[1] = 42
	v.Confirmed = append(v.Confirmed, "9-9")

	again := tl.View()
	assert.NotEqual(t, core.StatusNegativeCycle, again.Edges[0].Status)
	assert.Equal(t, trace.Distance(1), again.Distances[1])
	assert.NotContains(t, again.Confirmed, core.EdgeID("9-9"))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "not-started", timeline.NotStarted.String())
	assert.Equal(t, "running", timeline.Running.String())
	assert.Equal(t, "paused", timeline.Paused.String())
	assert.Equal(t, "finished", timeline.Finished.String())
	assert.Equal(t, "State(9)", timeline.State(9).String())
}
