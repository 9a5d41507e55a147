package tui

import "github.com/vovakirdan/tui-snake/internal/snake"

// HeldKeys stands in for key state, which terminals do not report.
// A direction counts as held from the moment it is pressed until the
// next game tick consumes it.
type HeldKeys struct {
	pressed map[snake.Heading]bool
}

// NewHeldKeys returns an empty set.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{pressed: make(map[snake.Heading]bool)}
}

// Press marks d as held. HeadingNone is ignored.
func (h *HeldKeys) Press(d snake.Heading) {
	if d == snake.HeadingNone {
		return
	}
	h.pressed[d] = true
}

// Held implements loop.Input.
func (h *HeldKeys) Held(d snake.Heading) bool {
	return h.pressed[d]
}

// Any reports whether any direction is held.
func (h *HeldKeys) Any() bool {
	return len(h.pressed) > 0
}

// Clear releases every direction.
func (h *HeldKeys) Clear() {
	clear(h.pressed)
}
