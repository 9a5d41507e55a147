package snake

import "fmt"

// Snapshot captures the engine state for determinism testing and debug logs.
type Snapshot struct {
	Tick    uint64
	Len     int
	Head    Cell
	Food    Cell
	Heading Heading
	Over    bool
	Cause   Cause
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:    e.tick,
		Len:     e.body.Len(),
		Head:    e.head,
		Food:    e.food,
		Heading: e.heading,
		Over:    e.over,
		Cause:   e.cause,
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d head=(%d,%d) heading=%s len=%d food=(%d,%d) over=%v cause=%s",
		s.Tick, s.Head.X, s.Head.Y, s.Heading, s.Len, s.Food.X, s.Food.Y, s.Over, s.Cause)
}
