package loop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// heldSet is a fixed set of held directions.
type heldSet map[snake.Heading]bool

func (h heldSet) Held(d snake.Heading) bool {
	return h[d]
}

func newEngine(t *testing.T, s snake.State) *snake.Engine {
	t.Helper()
	e, err := snake.NewFromState(s, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewFromState() failed: %v", err)
	}
	return e
}

func straightState(food snake.Cell) snake.State {
	return snake.State{
		Head:    snake.Cell{X: 5, Y: 5},
		Body:    []snake.Cell{{X: 4, Y: 5}, {X: 3, Y: 5}},
		Heading: snake.HeadingRight,
		Food:    food,
	}
}

func TestSamplePriority(t *testing.T) {
	tests := []struct {
		name     string
		held     heldSet
		expected snake.Heading
	}{
		{"nothing held", heldSet{}, snake.HeadingNone},
		{"up beats everything", heldSet{snake.HeadingUp: true, snake.HeadingDown: true, snake.HeadingLeft: true, snake.HeadingRight: true}, snake.HeadingUp},
		{"down beats left and right", heldSet{snake.HeadingDown: true, snake.HeadingLeft: true, snake.HeadingRight: true}, snake.HeadingDown},
		{"left beats right", heldSet{snake.HeadingLeft: true, snake.HeadingRight: true}, snake.HeadingLeft},
		{"right alone", heldSet{snake.HeadingRight: true}, snake.HeadingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sample(tc.held); got != tc.expected {
				t.Errorf("Sample() = %v, expected %v", got, tc.expected)
			}
		})
	}

	if got := Sample(nil); got != snake.HeadingNone {
		t.Errorf("Sample(nil) = %v, expected none", got)
	}
}

func TestFrameWaitsForInterval(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(newEngine(t, straightState(snake.Cell{X: 15, Y: 15})),
		WithClock(clock), WithInterval(300*time.Millisecond))

	// Many frames inside one interval never step the engine.
	for i := 0; i < 10; i++ {
		clock.Advance(20 * time.Millisecond)
		if res := d.Frame(nil); res.Ticked {
			t.Fatalf("frame %d ticked after %v", i, time.Duration(i+1)*20*time.Millisecond)
		}
	}
	if d.Engine().Head() != (snake.Cell{X: 5, Y: 5}) {
		t.Errorf("Head moved before the interval elapsed: %v", d.Engine().Head())
	}

	clock.Advance(100 * time.Millisecond)
	res := d.Frame(nil)
	if !res.Ticked || res.Outcome != snake.Continue {
		t.Fatalf("Frame() at the interval = %+v, expected a continue tick", res)
	}
	if d.Engine().Head() != (snake.Cell{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, expected (6,5)", d.Engine().Head())
	}

	// The timer restarts at the tick.
	clock.Advance(299 * time.Millisecond)
	if res := d.Frame(nil); res.Ticked {
		t.Error("Frame() ticked before a full interval after the previous tick")
	}
	clock.Advance(time.Millisecond)
	if res := d.Frame(nil); !res.Ticked {
		t.Error("Frame() did not tick after a full interval")
	}
}

func TestFrameAppliesSampledHeading(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(newEngine(t, straightState(snake.Cell{X: 15, Y: 15})), WithClock(clock))

	clock.Advance(DefaultInterval)
	res := d.Frame(heldSet{snake.HeadingDown: true, snake.HeadingRight: true})

	if res.Heading != snake.HeadingDown {
		t.Errorf("Sampled heading = %v, expected down", res.Heading)
	}
	if d.Engine().Head() != (snake.Cell{X: 5, Y: 6}) {
		t.Errorf("Head() = %v, expected (5,6)", d.Engine().Head())
	}
}

func TestScoreCountsGrowth(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(newEngine(t, straightState(snake.Cell{X: 6, Y: 5})), WithClock(clock))

	clock.Advance(DefaultInterval)
	res := d.Frame(nil)
	if res.Outcome != snake.Grow {
		t.Fatalf("Outcome = %v, expected grow", res.Outcome)
	}
	if d.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", d.Score())
	}

	clock.Advance(DefaultInterval)
	if res := d.Frame(nil); res.Outcome == snake.Grow {
		// Food is re-placed randomly; a second grow here would be unusual
		// but legal, so only check that the score tracks it.
		if d.Score() != 2 {
			t.Errorf("Score() = %d after two grows, expected 2", d.Score())
		}
	} else if d.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", d.Score())
	}
}

func TestCollisionTerminates(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(newEngine(t, snake.State{
		Head:    snake.Cell{X: 19, Y: 5},
		Body:    []snake.Cell{{X: 18, Y: 5}},
		Heading: snake.HeadingRight,
		Food:    snake.Cell{X: 0, Y: 0},
	}), WithClock(clock))

	clock.Advance(DefaultInterval)
	res := d.Frame(heldSet{snake.HeadingRight: true})
	if res.Outcome != snake.Terminate || res.State != Terminated {
		t.Fatalf("Frame() = %+v, expected terminate and terminated", res)
	}

	result := d.Result()
	if result.Reason != ReasonCollision || result.Cause != snake.CauseWall {
		t.Errorf("Result() = %+v, expected collision by wall", result)
	}
	if msg := result.Message(); msg != "Game over! Score: 0" {
		t.Errorf("Message() = %q, expected %q", msg, "Game over! Score: 0")
	}

	// Terminated is absorbing.
	clock.Advance(10 * DefaultInterval)
	if res := d.Frame(nil); res.Ticked || res.State != Terminated {
		t.Errorf("Frame() after terminate = %+v, expected no tick", res)
	}
	d.Close()
	if d.Result().Reason != ReasonCollision {
		t.Error("Close() after a collision should keep the collision reason")
	}
}

func TestCloseEndsSilently(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	d := NewDriver(newEngine(t, straightState(snake.Cell{X: 15, Y: 15})), WithClock(clock))

	d.Close()
	if d.State() != Terminated {
		t.Fatalf("State() = %v, expected terminated", d.State())
	}

	clock.Advance(DefaultInterval)
	if res := d.Frame(nil); res.Ticked {
		t.Error("Frame() after Close() should not tick")
	}
	if msg := d.Result().Message(); msg != "" {
		t.Errorf("Message() after close = %q, expected empty", msg)
	}
	if d.Result().Reason != ReasonClosed {
		t.Errorf("Reason = %v, expected closed", d.Result().Reason)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	d := NewDriver(newEngine(t, straightState(snake.Cell{X: 15, Y: 15})), WithInterval(0))
	if d.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, expected %v", d.Interval(), DefaultInterval)
	}
}
