package session

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/spviz/builder"
	"github.com/katalvlaran/spviz/timeline"
)

// Option configures a Session.
type Option func(*Session)

// WithInterval sets the auto-replay tick. Panics if d <= 0.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("session: WithInterval requires a positive duration")
	}
	return func(s *Session) { s.interval = d }
}

// WithSeed makes graph generation reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the generator RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(s *Session) { s.rng = r }
}

// WithCanvas sets the area random graphs are laid out in.
func WithCanvas(width, height float64) Option {
	opt := builder.WithCanvas(width, height)
	return func(s *Session) { s.canvas = opt }
}

// WithOnStep registers a hook called after every replayed step.
func WithOnStep(fn func(timeline.View)) Option {
	return func(s *Session) { s.onStep = fn }
}

// WithOnFinish registers a hook called when replay reaches the end.
func WithOnFinish(fn func(timeline.View)) Option {
	return func(s *Session) { s.onFinish = fn }
}

// Speed levels accepted by SpeedInterval.
const (
	MinSpeed     = 1
	MaxSpeed     = 5
	DefaultSpeed = 3
)

// SpeedInterval maps a speed level to a replay tick: 1 is 1.8s, 5 is 200ms,
// 400ms apart. Levels outside [MinSpeed, MaxSpeed] are clamped.
func SpeedInterval(level int) time.Duration {
	level = max(MinSpeed, min(MaxSpeed, level))
	return time.Duration(2200-level*400) * time.Millisecond
}
