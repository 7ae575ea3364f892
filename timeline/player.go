package timeline

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the replay tick when WithInterval is not given.
const DefaultInterval = time.Second

// Option configures a Player.
type Option func(*Player)

// WithInterval sets the replay tick. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("timeline: WithInterval requires a positive duration")
	}
	return func(p *Player) { p.interval = d }
}

// WithOnStep registers a hook called with the new view after every step the
// Player applies.
func WithOnStep(fn func(View)) Option {
	return func(p *Player) { p.onStep = fn }
}

// WithOnFinish registers a hook called once when replay reaches the end.
func WithOnFinish(fn func(View)) Option {
	return func(p *Player) { p.onFinish = fn }
}

// Player replays a Timeline on a fixed tick in its own goroutine.
//
// Every Play starts a new run with its own generation number; Pause, Stop
// and Reset bump the generation and cancel the run's context, so a tick
// that was already due when they were called finds a stale generation and
// applies nothing.
//
// Hooks run on the replay goroutine with the Player's lock held; they must
// not call back into the Player.
type Player struct {
	mu       sync.Mutex
	tl       *Timeline
	interval time.Duration
	onStep   func(View)
	onFinish func(View)

	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPlayer returns a stopped Player over tl.
func NewPlayer(tl *Timeline, opts ...Option) *Player {
	p := &Player{tl: tl, interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Timeline returns the driven timeline.
func (p *Player) Timeline() *Timeline { return p.tl }

// Interval returns the current tick.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Play starts replay from NotStarted or resumes it from Paused, continuing
// at the current index. The run ends when ctx is cancelled, replay
// finishes, or Pause/Stop/Reset is called.
func (p *Player) Play(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	switch p.tl.State() {
	case Paused:
		err = p.tl.Resume()
	default:
		err = p.tl.Start()
	}
	if err != nil {
		return err
	}
	p.launch(ctx)
	return nil
}

// Pause suspends replay at the current index.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.halt()
	return p.tl.Pause()
}

// SetInterval changes the tick. A running replay restarts its ticker at
// the new rate without applying an extra step.
func (p *Player) SetInterval(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = d
	if p.cancel != nil && p.tl.State() == Running {
		p.halt()
		p.launch(ctx)
	}
}

// Stop cancels any pending tick and waits for the replay goroutine to
// exit. The timeline keeps its position and state.
func (p *Player) Stop() {
	p.mu.Lock()
	p.halt()
	p.mu.Unlock()
	p.wg.Wait()
}

// Reset stops replay and resets the timeline.
func (p *Player) Reset() {
	p.Stop()
	p.tl.Reset()
}

// launch starts a replay goroutine for a new generation. Caller holds mu.
func (p *Player) launch(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	p.gen++
	p.cancel = cancel
	gen, interval := p.gen, p.interval

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()
		p.run(ctx, gen, interval)
	}()
}

// halt invalidates the current generation. Caller holds mu.
func (p *Player) halt() {
	p.gen++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Player) run(ctx context.Context, gen uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.tick(gen) {
				return
			}
		}
	}
}

// tick applies one step for generation gen and reports whether the run
// should continue.
func (p *Player) tick(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return false
	}

	applied := p.tl.Tick()
	if applied && p.onStep != nil {
		p.onStep(p.tl.View())
	}
	if p.tl.State() != Finished {
		return applied
	}

	p.cancel = nil
	if p.onFinish != nil {
		p.onFinish(p.tl.View())
	}
	return false
}
