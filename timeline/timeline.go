package timeline

import (
	"sync"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/trace"
)

// Timeline is the replay controller over one recorded step list.
// It is safe for concurrent use.
type Timeline struct {
	mu sync.Mutex

	edges []core.EdgeID
	pos   map[core.EdgeID]int
	steps []trace.Step

	index     int
	confirmed map[core.EdgeID]struct{}
	// order keeps confirmed edges in confirmation order.
	order []core.EdgeID
	view  View
	state State
}

// New returns a Timeline at index 0 over steps, displaying edges in the
// order given. steps is read, never modified, and must not be modified by
// the caller afterwards.
func New(edges []core.Edge, steps []trace.Step) *Timeline {
	t := &Timeline{
		edges: make([]core.EdgeID, len(edges)),
		pos:   make(map[core.EdgeID]int, len(edges)),
		steps: steps,
	}
	for i, e := range edges {
		t.edges[i] = e.ID
		t.pos[e.ID] = i
	}
	t.rewind()
	return t
}

// FromTrace is New over tr's steps.
func FromTrace(edges []core.Edge, tr *trace.Trace) *Timeline {
	if tr == nil {
		return New(edges, nil)
	}
	return New(edges, tr.Steps)
}

// Len returns the number of steps.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.steps)
}

// Index returns the number of applied steps.
func (t *Timeline) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

// State returns the replay state.
func (t *Timeline) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done reports whether every step has been applied.
func (t *Timeline) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index >= len(t.steps)
}

// View returns a copy of the current view.
func (t *Timeline) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view.clone()
}

// Forward applies the next step. At the end it does nothing and returns
// false.
func (t *Timeline) Forward() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.forward()
}

// Back moves one step back by re-deriving the view. At index 0 it does
// nothing and returns false. Going back from Finished pauses replay.
func (t *Timeline) Back() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.index == 0 {
		return false
	}
	t.derive(t.index - 1)
	if t.state == Finished {
		t.state = Paused
	}
	return true
}

// Seek moves to index k, 0 <= k <= Len(), by re-deriving the view.
// An out-of-range k does nothing and returns false.
func (t *Timeline) Seek(k int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if k < 0 || k > len(t.steps) {
		return false
	}
	t.derive(k)
	switch {
	case t.state == Finished && k < len(t.steps):
		t.state = Paused
	case t.state == Running && k == len(t.steps):
		t.state = Finished
	}
	return true
}

// SkipToEvent applies steps up to and including the next significant one:
// a step that confirms a path edge, grows the visited set beyond the
// current view, or detects a negative cycle. Without such a step it applies
// everything that is left. It returns the number of steps applied.
func (t *Timeline) SkipToEvent() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.index >= len(t.steps) {
		return 0
	}
	target := len(t.steps) - 1
	visited := len(t.view.Visited)
	for i := t.index; i < len(t.steps); i++ {
		s := &t.steps[i]
		if len(s.PathEdgeUpdates) > 0 || len(s.VisitedNodes) > visited || s.NegativeCycleDetected {
			target = i
			break
		}
	}

	n := 0
	for t.index <= target && t.forward() {
		n++
	}
	return n
}

// Reset discards the steps and returns to the empty view in NotStarted.
func (t *Timeline) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = nil
	t.state = NotStarted
	t.rewind()
}

// Start begins replay: NotStarted -> Running.
func (t *Timeline) Start() error {
	return t.move(NotStarted, Running)
}

// Pause suspends replay: Running -> Paused.
func (t *Timeline) Pause() error {
	return t.move(Running, Paused)
}

// Resume continues replay: Paused -> Running.
func (t *Timeline) Resume() error {
	return t.move(Paused, Running)
}

// Tick is one replay tick: while Running it applies the next step and
// switches to Finished once the last step is applied. It returns false when
// nothing was applied.
func (t *Timeline) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return false
	}
	if t.index >= len(t.steps) {
		t.state = Finished
		return false
	}
	return t.forward()
}

// move performs one of the replay transitions:
//
//	NotStarted --start--> Running
//	Running    --pause--> Paused
//	Paused     --resume-> Running
//
// Running becomes Finished once the last step is applied, and Reset returns
// any state to NotStarted.
func (t *Timeline) move(from, to State) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != from {
		return badTransition(t.state, to)
	}
	t.state = to
	if to == Running && t.index >= len(t.steps) {
		t.state = Finished
	}
	return nil
}

// forward applies steps[index]. Caller holds mu.
func (t *Timeline) forward() bool {
	if t.index >= len(t.steps) {
		return false
	}
	t.apply(t.index)
	t.index++
	if t.state == Running && t.index == len(t.steps) {
		t.state = Finished
	}
	return true
}

// derive rebuilds the view at index k from scratch. Caller holds mu.
func (t *Timeline) derive(k int) {
	t.rewind()
	if k == 0 {
		return
	}
	for i := 0; i < k-1; i++ {
		t.confirm(t.steps[i].PathEdgeUpdates)
	}
	t.apply(k - 1)
	t.index = k
}

// rewind sets index 0, no confirmed edges and the empty view.
func (t *Timeline) rewind() {
	t.index = 0
	t.confirmed = make(map[core.EdgeID]struct{})
	t.order = nil
	t.view = emptyView(t.edges)
}

func (t *Timeline) confirm(ids []core.EdgeID) {
	for _, id := range ids {
		if _, ok := t.confirmed[id]; ok {
			continue
		}
		t.confirmed[id] = struct{}{}
		t.order = append(t.order, id)
	}
}

// apply sets the view to steps[i] over the current confirmed set, then
// confirms the step's path edges.
func (t *Timeline) apply(i int) {
	s := &t.steps[i]

	edges := make([]EdgeState, len(t.edges))
	for j, id := range t.edges {
		st := core.StatusUnvisited
		if _, ok := t.confirmed[id]; ok {
			st = core.StatusIncluded
		}
		edges[j] = EdgeState{ID: id, Status: st}
	}
	for _, u := range s.EdgeUpdates {
		if j, ok := t.pos[u.ID]; ok {
			edges[j].Status = u.Status
		}
	}
	t.confirm(s.PathEdgeUpdates)
	for _, id := range s.PathEdgeUpdates {
		if j, ok := t.pos[id]; ok {
			edges[j].Status = core.StatusIncluded
		}
	}

	v := View{
		Index:         i + 1,
		Edges:         edges,
		Confirmed:     append([]core.EdgeID(nil), t.order...),
		Distances:     s.DistanceArray.Clone(),
		Visited:       append([]core.NodeID(nil), s.VisitedNodes...),
		MinHeap:       append([]trace.HeapEntry(nil), s.MinHeap...),
		Iteration:     s.IterationCount,
		NegativeCycle: s.NegativeCycleDetected,
		Explanation:   s.Explanation,
		AlgorithmStep: s.AlgorithmStep,
	}
	if len(s.EdgeUpdates) == 1 {
		v.CurrentEdge = s.EdgeUpdates[0].ID
	}
	if i > 0 {
		v.UpdatedNodes = changedNodes(t.steps[i-1].DistanceArray, s.DistanceArray)
	}
	t.view = v
}
