package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants for terminal rendering.
const (
	// CellChars is the number of terminal columns per board cell; terminal
	// glyphs are roughly twice as tall as they are wide.
	CellChars = 2
	hudHeight = 2
)

// Theme holds the glyphs and colors used to draw the board.
type Theme struct {
	Head      rune
	Body      rune
	Food      rune
	Wall      rune
	Empty     rune
	HeadColor core.Color
	BodyColor core.Color
	FoodColor core.Color
	WallColor core.Color
	HUDColor  core.Color
}

// DefaultTheme mirrors the classic look: grey body and walls, red head,
// green food.
func DefaultTheme() Theme {
	return Theme{
		Head:      '█',
		Body:      '▓',
		Food:      '●',
		Wall:      '█',
		Empty:     '·',
		HeadColor: core.ColorBrightRed,
		BodyColor: core.ColorWhite,
		FoodColor: core.ColorBrightGreen,
		WallColor: core.ColorWhite,
		HUDColor:  core.ColorBrightWhite,
	}
}

// RequiredSize returns the smallest screen that fits the HUD and the board,
// walls included.
func RequiredSize() (w, h int) {
	return (GridWidth + 1) * CellChars, hudHeight + GridHeight + 1
}

// Render draws the HUD and the board into dst. It only reads engine state.
func (e *Engine) Render(dst *core.Screen, theme Theme, score int) {
	dst.Clear()

	hud := fmt.Sprintf(" SNAKE  Score: %d  Length: %d", score, e.body.Len()+1)
	dst.DrawText(0, 0, hud, theme.HUDColor)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	reqW, reqH := RequiredSize()
	if dst.Width() < reqW || dst.Height() < reqH {
		DrawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	originX := (dst.Width() - reqW) / 2
	originY := hudHeight
	put := func(c Cell, r rune, color core.Color) {
		if c.X < 0 || c.X > GridWidth || c.Y < 0 || c.Y > GridHeight {
			return
		}
		for i := range CellChars {
			dst.SetColor(originX+c.X*CellChars+i, originY+c.Y, r, color)
		}
	}

	for y := range GridHeight {
		for x := range GridWidth {
			dst.SetColor(originX+x*CellChars, originY+y, theme.Empty, core.ColorGray)
		}
	}

	// Walls sit just past the right and bottom edges of the board.
	for y := 0; y <= GridHeight; y++ {
		put(Cell{X: GridWidth, Y: y}, theme.Wall, theme.WallColor)
	}
	for x := 0; x <= GridWidth; x++ {
		put(Cell{X: x, Y: GridHeight}, theme.Wall, theme.WallColor)
	}

	for _, seg := range e.body.cells {
		put(seg, theme.Body, theme.BodyColor)
	}
	if InBounds(e.food) {
		put(e.food, theme.Food, theme.FoodColor)
	}
	if InBounds(e.head) {
		put(e.head, theme.Head, theme.HeadColor)
	}
}

// DrawOverlay draws a centered two-line message box.
func DrawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
