// Package snake implements the snake game state and its per-tick transition.
// It has no I/O dependencies: the loop driver feeds it headings and the
// platform reads its state for drawing.
package snake

import (
	"errors"
	"math/rand"
)

var (
	ErrEmptyBody       = errors.New("snake: body must have at least one segment")
	ErrHeadOutOfBounds = errors.New("snake: head is outside the board")
	ErrUnknownHeading  = errors.New("snake: heading cannot be derived from the body")
)

// maxFoodDraws bounds rejection sampling before falling back to a scan of
// the free cells.
const maxFoodDraws = GridWidth * GridHeight * 4

// State describes an engine position. Used to start from a known layout.
type State struct {
	Head    Cell
	Body    []Cell // front (next to head) to tail
	Heading Heading
	Food    Cell // placed randomly when off-board or occupied
}

// InitialState returns the fixed starting layout.
func InitialState() State {
	return State{
		Head:    Cell{X: 5, Y: 5},
		Body:    []Cell{{X: 4, Y: 5}, {X: 3, Y: 5}},
		Heading: HeadingRight,
		Food:    NoCell,
	}
}

// Engine owns the snake, its heading and the food.
type Engine struct {
	rng     *rand.Rand
	tick    uint64
	head    Cell
	body    *Body
	food    Cell
	heading Heading
	over    bool
	cause   Cause
}

// New creates an engine in the initial layout with food placed.
func New(rng *rand.Rand) *Engine {
	e, err := NewFromState(InitialState(), rng)
	if err != nil {
		// InitialState is always valid.
		panic(err)
	}
	return e
}

// NewFromState creates an engine from an explicit layout.
// A HeadingNone heading is derived from the head and the first body segment.
func NewFromState(s State, rng *rand.Rand) (*Engine, error) {
	if len(s.Body) == 0 {
		return nil, ErrEmptyBody
	}
	if !InBounds(s.Head) {
		return nil, ErrHeadOutOfBounds
	}

	heading := s.Heading
	if heading == HeadingNone {
		heading = headingBetween(s.Body[0], s.Head)
		if heading == HeadingNone {
			return nil, ErrUnknownHeading
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	e := &Engine{
		rng:     rng,
		head:    s.Head,
		body:    NewBody(s.Body...),
		heading: heading,
		food:    NoCell,
	}

	if InBounds(s.Food) && e.isFree(s.Food) {
		e.food = s.Food
	} else {
		e.PlaceFood()
	}
	return e, nil
}

// Step advances the snake by one cell and reports what happened.
//
// Requests for HeadingNone or for the reverse of the current heading are
// ignored and the snake keeps going straight. Once Step has returned
// Terminate the engine no longer changes and keeps returning Terminate.
func (e *Engine) Step(requested Heading) Outcome {
	if e.over {
		return Terminate
	}
	e.tick++

	oldHead := e.head
	oldTail, hadTail := e.body.PopBack()

	if requested != HeadingNone && requested != e.heading.Opposite() {
		e.heading = requested
	}
	e.head = e.head.Add(e.heading.Delta())
	e.body.PushFront(oldHead)

	if e.head == e.food {
		if hadTail {
			e.body.PushBack(oldTail)
		}
		e.PlaceFood()
		return Grow
	}
	if e.body.Contains(e.head) {
		return e.terminate(CauseSelf)
	}
	if !InBounds(e.head) {
		return e.terminate(CauseWall)
	}
	return Continue
}

func (e *Engine) terminate(c Cause) Outcome {
	e.over = true
	e.cause = c
	return Terminate
}

// PlaceFood moves the food to a random free cell and returns it.
// ok is false when the snake covers the whole board; the food is then
// parked off-board.
func (e *Engine) PlaceFood() (Cell, bool) {
	food, ok := PlaceFood(e.rng, e.head, e.body)
	e.food = food
	return food, ok
}

// PlaceFood picks a uniformly random cell that is neither head nor part of
// body using rejection sampling. If sampling keeps failing it falls back to
// choosing among the remaining free cells, and reports ok=false when there
// are none.
func PlaceFood(rng *rand.Rand, head Cell, body *Body) (Cell, bool) {
	free := func(c Cell) bool {
		return c != head && !body.Contains(c)
	}

	for range maxFoodDraws {
		c := Cell{X: rng.Intn(GridWidth), Y: rng.Intn(GridHeight)}
		if free(c) {
			return c, true
		}
	}

	var candidates []Cell
	for y := range GridHeight {
		for x := range GridWidth {
			if c := (Cell{X: x, Y: y}); free(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return NoCell, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

func (e *Engine) isFree(c Cell) bool {
	return c != e.head && !e.body.Contains(c)
}

// Head returns the head cell.
func (e *Engine) Head() Cell {
	return e.head
}

// Body returns a copy of the body segments, front to tail.
func (e *Engine) Body() []Cell {
	return e.body.Cells()
}

// Food returns the food cell, or NoCell if the board is full.
func (e *Engine) Food() Cell {
	return e.food
}

// Heading returns the current direction of travel.
func (e *Engine) Heading() Heading {
	return e.heading
}

// Len returns the number of body segments (the head is not counted).
func (e *Engine) Len() int {
	return e.body.Len()
}

// Over reports whether Step has returned Terminate.
func (e *Engine) Over() bool {
	return e.over
}

// Cause returns why the game ended, or CauseNone while it is running.
func (e *Engine) Cause() Cause {
	return e.cause
}

// Occupied reports whether c is covered by the head or the body.
func (e *Engine) Occupied(c Cell) bool {
	return !e.isFree(c)
}
