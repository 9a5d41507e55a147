// Package picture renders the board as a PNG image of colored squares.
package picture

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// DefaultCellSize is the edge of one board cell in pixels.
const DefaultCellSize = 30

// Palette holds the colors of a frame.
type Palette struct {
	Background color.Color
	Outline    color.Color
	Body       color.Color
	Head       color.Color
	Food       color.Color
	Wall       color.Color
}

// DefaultPalette is the classic look: dark background, grey body and
// walls, red head, green food, black outlines.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 10, G: 10, B: 10, A: 255},
		Outline:    color.Black,
		Body:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Head:       color.RGBA{R: 240, G: 100, B: 100, A: 255},
		Food:       color.RGBA{R: 10, G: 200, B: 10, A: 255},
		Wall:       color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Size returns the image dimensions for cellSize, walls included.
func Size(cellSize int) (w, h int) {
	return (snake.GridWidth + 1) * cellSize, (snake.GridHeight + 1) * cellSize
}

// Render draws the engine state. The wall occupies the column right of the
// board and the row below it.
func Render(e *snake.Engine, cellSize int, p Palette) image.Image {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	w, h := Size(cellSize)
	dc := gg.NewContext(w, h)

	dc.SetColor(p.Background)
	dc.Clear()

	s := float64(cellSize)
	dc.SetColor(p.Wall)
	dc.DrawRectangle(s*snake.GridWidth, 0, s, s*(snake.GridHeight+1))
	dc.DrawRectangle(0, s*snake.GridHeight, s*(snake.GridWidth+1), s)
	dc.Fill()

	outline := max(1, cellSize/10)
	square := func(c snake.Cell, fill color.Color) {
		if !snake.InBounds(c) {
			return
		}
		x, y := float64(c.X)*s, float64(c.Y)*s
		dc.SetColor(p.Outline)
		dc.DrawRectangle(x, y, s, s)
		dc.Fill()
		inset := float64(outline)
		dc.SetColor(fill)
		dc.DrawRectangle(x+inset, y+inset, s-2*inset, s-2*inset)
		dc.Fill()
	}

	for _, seg := range e.Body() {
		square(seg, p.Body)
	}
	square(e.Head(), p.Head)
	square(e.Food(), p.Food)

	return dc.Image()
}

// Scale resizes img to width pixels, keeping the aspect ratio. Nearest
// neighbour sampling keeps the cell edges sharp.
func Scale(img image.Image, width int) image.Image {
	if width <= 0 || width == img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.NearestNeighbor)
}

// SavePNG renders e and writes it to path, creating parent directories.
func SavePNG(path string, e *snake.Engine, cellSize int, p Palette) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("picture: cannot create directory for %s: %w", path, err)
	}
	img := Render(e, cellSize, p)
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("picture: cannot write %s: %w", path, err)
	}
	return nil
}
