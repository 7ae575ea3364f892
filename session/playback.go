package session

import (
	"context"

	"github.com/katalvlaran/spviz/core"
	"github.com/katalvlaran/spviz/timeline"
	"github.com/katalvlaran/spviz/trace"
)

// Trace returns the recorded trace, recording it first if needed.
func (s *Session) Trace() (*trace.Trace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s.tr, nil
}

// Start begins or resumes auto-replay. It returns timeline.ErrBadTransition
// when replay is already running or finished.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.explore(); err != nil {
		return err
	}
	s.playCtx = ctx
	return s.player.Play(ctx)
}

// Pause suspends auto-replay.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.explore(); err != nil {
		return err
	}
	return s.player.Pause()
}

// Step applies the next step. A running replay is paused first.
func (s *Session) Step() (timeline.View, error) {
	return s.navigate(func(tl *timeline.Timeline) { tl.Forward() })
}

// Back re-derives the previous index. A running replay is paused first.
func (s *Session) Back() (timeline.View, error) {
	return s.navigate(func(tl *timeline.Timeline) { tl.Back() })
}

// Seek moves to index k; out-of-range values leave the position unchanged.
func (s *Session) Seek(k int) (timeline.View, error) {
	return s.navigate(func(tl *timeline.Timeline) { tl.Seek(k) })
}

// SkipToEvent advances to the next significant step.
func (s *Session) SkipToEvent() (timeline.View, error) {
	return s.navigate(func(tl *timeline.Timeline) { tl.SkipToEvent() })
}

// State returns the replay state; timeline.NotStarted before the first
// stepping call.
func (s *Session) State() timeline.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tl == nil {
		return timeline.NotStarted
	}
	return s.tl.State()
}

// ShowAnswer pauses replay, switches to View mode and returns the
// final-answer projection. The timeline position is kept.
func (s *Session) ShowAnswer() (timeline.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensure(); err != nil {
		return timeline.View{}, err
	}
	if s.tl.State() == timeline.Running {
		_ = s.player.Pause()
	}
	s.mode = View
	return s.answer(), nil
}

// ShowExplore leaves View mode and returns the timeline view.
func (s *Session) ShowExplore() timeline.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = Explore
	return s.current()
}

// View returns what the host should draw: the answer projection in View
// mode, otherwise the timeline view (the empty view before the trace
// exists).
func (s *Session) View() timeline.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == View && s.tr != nil {
		return s.answer()
	}
	return s.current()
}

// Statuses returns the edge statuses of the current view keyed by edge ID,
// for hosts that paint a core.Graph.
func (s *Session) Statuses() map[core.EdgeID]core.EdgeStatus {
	v := s.View()
	out := make(map[core.EdgeID]core.EdgeStatus, len(v.Edges))
	for _, e := range v.Edges {
		out[e.ID] = e.Status
	}
	return out
}

// explore records the trace and checks the mode. Caller holds mu.
func (s *Session) explore() error {
	if s.mode == View {
		return ErrViewMode
	}
	return s.ensure()
}

func (s *Session) navigate(move func(*timeline.Timeline)) (timeline.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.explore(); err != nil {
		return timeline.View{}, err
	}
	if s.tl.State() == timeline.Running {
		_ = s.player.Pause()
	}
	// Stop waits out a tick that was already running.
	s.player.Stop()
	move(s.tl)
	return s.tl.View(), nil
}

// answer is the projection for the current destination. Caller holds mu.
func (s *Session) answer() timeline.View {
	return timeline.Answer(s.tr, s.nodes, s.edges, s.dest)
}

// current is the timeline view, or the empty view. Caller holds mu.
func (s *Session) current() timeline.View {
	if s.tl != nil {
		return s.tl.View()
	}
	return timeline.New(s.g.Edges(), nil).View()
}
