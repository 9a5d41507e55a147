package snake

// Board dimensions in cells. The board size is fixed at compile time.
const (
	GridWidth  = 20
	GridHeight = 20
)

// Cell is a coordinate on the board.
type Cell struct {
	X, Y int
}

// NoCell marks an absent cell (empty tail, no food).
var NoCell = Cell{X: -1, Y: -1}

// Add returns c moved by delta.
func (c Cell) Add(delta Cell) Cell {
	return Cell{X: c.X + delta.X, Y: c.Y + delta.Y}
}

// InBounds reports whether c lies on the board [0,GridWidth) × [0,GridHeight).
func InBounds(c Cell) bool {
	return c.X >= 0 && c.X < GridWidth && c.Y >= 0 && c.Y < GridHeight
}

// Heading is a direction of travel. HeadingNone means "keep going straight".
type Heading int

const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Opposite returns the reverse heading. HeadingNone has no reverse.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return HeadingNone
	}
}

// Delta returns the one-cell movement vector for h. Y grows downwards.
func (h Heading) Delta() Cell {
	switch h {
	case HeadingUp:
		return Cell{X: 0, Y: -1}
	case HeadingDown:
		return Cell{X: 0, Y: 1}
	case HeadingLeft:
		return Cell{X: -1, Y: 0}
	case HeadingRight:
		return Cell{X: 1, Y: 0}
	default:
		return Cell{}
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// headingBetween returns the heading that moves from one cell to an
// adjacent one, or HeadingNone if they are not neighbours.
func headingBetween(from, to Cell) Heading {
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
		if from.Add(h.Delta()) == to {
			return h
		}
	}
	return HeadingNone
}

// Outcome is the result of a single Step.
type Outcome int

const (
	Continue Outcome = iota
	Grow
	Terminate
)

// Reward returns the signed score signal: +1 for Grow, 0 for Continue,
// -1 for Terminate.
func (o Outcome) Reward() int {
	switch o {
	case Grow:
		return 1
	case Terminate:
		return -1
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Grow:
		return "grow"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Cause records why the game terminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseSelf       // head ran into the body
	CauseWall       // head left the board
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self-collision"
	case CauseWall:
		return "wall collision"
	default:
		return "none"
	}
}
