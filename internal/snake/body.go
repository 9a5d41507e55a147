package snake

// Body is the ordered sequence of segments behind the head.
// Front is the segment adjacent to the head, back is the tail.
type Body struct {
	cells []Cell
}

// NewBody creates a body from cells ordered front to back.
func NewBody(cells ...Cell) *Body {
	b := &Body{cells: make([]Cell, 0, len(cells)+8)}
	b.cells = append(b.cells, cells...)
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Front returns the segment next to the head.
func (b *Body) Front() (Cell, bool) {
	if len(b.cells) == 0 {
		return NoCell, false
	}
	return b.cells[0], true
}

// Back returns the tail segment.
func (b *Body) Back() (Cell, bool) {
	if len(b.cells) == 0 {
		return NoCell, false
	}
	return b.cells[len(b.cells)-1], true
}

// PushFront inserts c before the current front.
func (b *Body) PushFront(c Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = c
}

// PushBack appends c after the tail.
func (b *Body) PushBack(c Cell) {
	b.cells = append(b.cells, c)
}

// PopBack removes and returns the tail.
func (b *Body) PopBack() (Cell, bool) {
	if len(b.cells) == 0 {
		return NoCell, false
	}
	last := b.cells[len(b.cells)-1]
	b.cells = b.cells[:len(b.cells)-1]
	return last, true
}

// Contains reports whether any segment equals c.
func (b *Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments, front to back.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
