// Package loop drives a snake engine at a fixed tick interval.
//
// The host (a terminal UI, a test) calls Frame once per iteration of its
// own loop and redraws afterwards. The Driver decides whether enough time
// has passed for a game-state update, samples the held direction for that
// tick, and keeps the score.
package loop

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultInterval is the time between engine steps.
const DefaultInterval = 300 * time.Millisecond

// Input answers whether a direction key is currently held.
type Input interface {
	Held(h snake.Heading) bool
}

// priority is the order in which held directions are considered.
var priority = []snake.Heading{
	snake.HeadingUp,
	snake.HeadingDown,
	snake.HeadingLeft,
	snake.HeadingRight,
}

// Sample returns the first held direction in the order Up, Down, Left,
// Right, or HeadingNone if nothing is held.
func Sample(in Input) snake.Heading {
	if in == nil {
		return snake.HeadingNone
	}
	for _, h := range priority {
		if in.Held(h) {
			return h
		}
	}
	return snake.HeadingNone
}

// State is the driver's lifecycle state.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Reason explains how a session ended.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonCollision        // the engine returned Terminate
	ReasonClosed           // the player closed the window or pressed escape
)

func (r Reason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonClosed:
		return "closed"
	default:
		return "none"
	}
}

// FrameResult reports what happened during one host iteration.
type FrameResult struct {
	Ticked  bool          // whether an engine step ran
	Heading snake.Heading // the sampled heading, if Ticked
	Outcome snake.Outcome // the engine outcome, if Ticked
	State   State
}

// Result summarises a finished (or running) session.
type Result struct {
	Score  int
	Ticks  int
	Reason Reason
	Cause  snake.Cause
}

// Message returns the line printed when the game ends by collision, and an
// empty string otherwise.
func (r Result) Message() string {
	if r.Reason != ReasonCollision {
		return ""
	}
	return fmt.Sprintf("Game over! Score: %d", r.Score)
}

// Driver owns an engine and advances it once per interval.
type Driver struct {
	engine   *snake.Engine
	clock    Clock
	interval time.Duration
	lastTick time.Time
	score    int
	ticks    int
	state    State
	reason   Reason
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(d *Driver) {
		d.clock = c
	}
}

// WithInterval sets the tick interval. Non-positive values keep the default.
func WithInterval(interval time.Duration) Option {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// NewDriver creates a running driver. The tick timer starts now.
func NewDriver(engine *snake.Engine, opts ...Option) *Driver {
	d := &Driver{
		engine:   engine,
		clock:    SystemClock{},
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lastTick = d.clock.Now()
	return d
}

// Frame runs one host iteration. If the interval has elapsed since the last
// tick, it resets the timer, samples in, and steps the engine. It does
// nothing once the driver is terminated.
func (d *Driver) Frame(in Input) FrameResult {
	if d.state == Terminated {
		return FrameResult{State: d.state}
	}

	now := d.clock.Now()
	if now.Sub(d.lastTick) < d.interval {
		return FrameResult{State: d.state}
	}
	d.lastTick = now

	heading := Sample(in)
	outcome := d.engine.Step(heading)
	d.ticks++

	switch outcome {
	case snake.Terminate:
		d.state = Terminated
		d.reason = ReasonCollision
	case snake.Grow:
		d.score++
	}

	return FrameResult{
		Ticked:  true,
		Heading: heading,
		Outcome: outcome,
		State:   d.state,
	}
}

// Close ends the session without a collision. It has no effect on a
// driver that has already terminated.
func (d *Driver) Close() {
	if d.state == Terminated {
		return
	}
	d.state = Terminated
	d.reason = ReasonClosed
}

// Engine returns the driven engine for read-only use by renderers.
func (d *Driver) Engine() *snake.Engine {
	return d.engine
}

// Score returns the number of food items eaten.
func (d *Driver) Score() int {
	return d.score
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Interval returns the tick interval.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Result returns the session summary.
func (d *Driver) Result() Result {
	return Result{
		Score:  d.score,
		Ticks:  d.ticks,
		Reason: d.reason,
		Cause:  d.engine.Cause(),
	}
}
